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

// SubmodelElementCollection groups child elements keyed by idShort. The
// wire format keeps them as an array; uniqueness of idShort among siblings
// is a structural invariant, not a serialization property.
type SubmodelElementCollection struct {
	elementCommon

	ModelType string `json:"modelType"`

	Value []SubmodelElement `json:"value,omitempty"`
}

// NewSubmodelElementCollection creates an empty collection.
func NewSubmodelElementCollection(idShort string) *SubmodelElementCollection {
	c := &SubmodelElementCollection{ModelType: "SubmodelElementCollection"}
	c.IdShort = idShort
	return c
}

func (c *SubmodelElementCollection) GetModelType() string { return c.ModelType }

// UnmarshalJSON decodes the polymorphic value slice.
func (c *SubmodelElementCollection) UnmarshalJSON(data []byte) error {
	type Alias SubmodelElementCollection
	aux := &struct {
		Value []jsoniter.RawMessage `json:"value,omitempty"`
		*Alias
	}{
		Alias: (*Alias)(c),
	}
	var json = jsoniter.ConfigCompatibleWithStandardLibrary
	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}
	value, err := unmarshalElementSlice(aux.Value)
	if err != nil {
		return err
	}
	c.Value = value
	return nil
}
