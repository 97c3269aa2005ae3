/*******************************************************************************
* Copyright (C) 2026 the Eclipse BaSyx Authors and Fraunhofer IESE
*
* Permission is hereby granted, free of charge, to any person obtaining
* a copy of this software and associated documentation files (the
* "Software"), to deal in the Software without restriction, including
* without limitation the rights to use, copy, modify, merge, publish,
* distribute, sublicense, and/or sell copies of the Software, and to
* permit persons to whom the Software is furnished to do so, subject to
* the following conditions:
*
* The above copyright notice and this permission notice shall be
* included in all copies or substantial portions of the Software.
*
* THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
* EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
* MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
* NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE
* LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION
* OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION
* WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
*
* SPDX-License-Identifier: MIT
******************************************************************************/

package model

import (
	jsoniter "github.com/json-iterator/go"
)

// ModellingKind discriminates reusable templates from concrete instances.
type ModellingKind string

const (
	KindTemplate ModellingKind = "Template"
	KindInstance ModellingKind = "Instance"
)

// Submodel is a named, independently identified element tree attached to a
// shell. An instance keeps the template it was stamped out from in
// Administration.TemplateID.
type Submodel struct {
	ID string `json:"id"`

	//nolint:all
	IdShort string `json:"idShort,omitempty"`

	ModelType string `json:"modelType"`

	Kind ModellingKind `json:"kind,omitempty"`

	DisplayName []LangStringNameType `json:"displayName,omitempty"`

	Description []LangStringTextType `json:"description,omitempty"`

	Administration *AdministrativeInformation `json:"administration,omitempty"`

	SemanticID *Reference `json:"semanticId,omitempty"`

	SubmodelElements []SubmodelElement `json:"submodelElements,omitempty"`
}

// TemplateID returns the template lineage id, or "" for a submodel without
// administrative metadata.
func (s *Submodel) TemplateID() string {
	if s.Administration == nil {
		return ""
	}
	return s.Administration.TemplateID
}

// UnmarshalJSON decodes the polymorphic submodelElements slice.
func (s *Submodel) UnmarshalJSON(data []byte) error {
	type Alias Submodel
	aux := &struct {
		SubmodelElements []jsoniter.RawMessage `json:"submodelElements,omitempty"`
		*Alias
	}{
		Alias: (*Alias)(s),
	}
	var json = jsoniter.ConfigCompatibleWithStandardLibrary
	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}
	elements, err := unmarshalElementSlice(aux.SubmodelElements)
	if err != nil {
		return err
	}
	s.SubmodelElements = elements
	return nil
}
