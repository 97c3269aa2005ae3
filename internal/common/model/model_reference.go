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

// ReferenceTypes discriminates external taxonomy references from references
// into the model itself.
type ReferenceTypes string

const (
	ExternalReference ReferenceTypes = "ExternalReference"
	ModelReference    ReferenceTypes = "ModelReference"
)

// KeyTypes names the kind of element a reference key points at.
type KeyTypes string

const (
	KeySubmodel        KeyTypes = "Submodel"
	KeySubmodelElement KeyTypes = "SubmodelElement"
	KeyGlobalReference KeyTypes = "GlobalReference"
	KeyConceptDesc     KeyTypes = "ConceptDescription"
)

// Key is one typed segment of a Reference chain.
type Key struct {
	Type KeyTypes `json:"type"`

	Value string `json:"value"`
}

// Reference is a typed key chain pointing at an Identifiable or at an
// external taxonomy entry. For submodel membership on a shell the first key
// carries the submodel identifier.
type Reference struct {
	Type ReferenceTypes `json:"type"`

	Keys []Key `json:"keys"`
}

// NewSubmodelReference builds the model reference a shell stores for an
// owned submodel.
func NewSubmodelReference(submodelID string) Reference {
	return Reference{
		Type: ModelReference,
		Keys: []Key{{Type: KeySubmodel, Value: submodelID}},
	}
}

// NewExternalReference builds an external taxonomy reference, used for
// semanticId annotations.
func NewExternalReference(value string) *Reference {
	return &Reference{
		Type: ExternalReference,
		Keys: []Key{{Type: KeyGlobalReference, Value: value}},
	}
}

// FirstKeyValue returns the value of the first key, or the empty string for
// a reference without keys. Shell-to-submodel references carry the submodel
// identifier there.
func (r Reference) FirstKeyValue() string {
	if len(r.Keys) == 0 {
		return ""
	}
	return r.Keys[0].Value
}
