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

// SubmodelElementList is an ordered sequence of child elements, homogeneous
// by convention. Element ordering MUST survive a serialization round trip.
type SubmodelElementList struct {
	elementCommon

	ModelType string `json:"modelType"`

	OrderRelevant bool `json:"orderRelevant,omitempty"`

	TypeValueListElement string `json:"typeValueListElement,omitempty"`

	ValueTypeListElement DataTypeDefXsd `json:"valueTypeListElement,omitempty"`

	Value []SubmodelElement `json:"value,omitempty"`
}

func (l *SubmodelElementList) GetModelType() string { return l.ModelType }

// UnmarshalJSON decodes the polymorphic value slice, preserving order.
func (l *SubmodelElementList) UnmarshalJSON(data []byte) error {
	type Alias SubmodelElementList
	aux := &struct {
		Value []jsoniter.RawMessage `json:"value,omitempty"`
		*Alias
	}{
		Alias: (*Alias)(l),
	}
	var json = jsoniter.ConfigCompatibleWithStandardLibrary
	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}
	value, err := unmarshalElementSlice(aux.Value)
	if err != nil {
		return err
	}
	l.Value = value
	return nil
}
