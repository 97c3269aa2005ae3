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

// EntityType discriminates self-managed from co-managed entities.
type EntityType string

const (
	CoManagedEntity   EntityType = "CoManagedEntity"
	SelfManagedEntity EntityType = "SelfManagedEntity"
)

// Entity represents a (sub-)asset inside a submodel tree, e.g. one node of
// a hierarchical bill of materials. Its statements are ordered child
// elements, semantically equivalent to a collection's children.
type Entity struct {
	elementCommon

	ModelType string `json:"modelType"`

	EntityType EntityType `json:"entityType"`

	GlobalAssetID string `json:"globalAssetId,omitempty"`

	Statements []SubmodelElement `json:"statements,omitempty"`
}

func (e *Entity) GetModelType() string { return e.ModelType }

// UnmarshalJSON decodes the polymorphic statements slice.
func (e *Entity) UnmarshalJSON(data []byte) error {
	type Alias Entity
	aux := &struct {
		Statements []jsoniter.RawMessage `json:"statements,omitempty"`
		*Alias
	}{
		Alias: (*Alias)(e),
	}
	var json = jsoniter.ConfigCompatibleWithStandardLibrary
	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}
	statements, err := unmarshalElementSlice(aux.Statements)
	if err != nil {
		return err
	}
	e.Statements = statements
	return nil
}
