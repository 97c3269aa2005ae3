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
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

// SubmodelElement is the closed polymorphic node type of a submodel tree.
// The concrete variants are Property, MultiLanguageProperty, File, Blob,
// Range, ReferenceElement, Entity, SubmodelElementCollection and
// SubmodelElementList; every consumer dispatches on GetModelType.
type SubmodelElement interface {
	GetModelType() string
	GetIdShort() string
	GetSemanticID() *Reference
	GetDisplayName() []LangStringNameType
	GetDescription() []LangStringTextType

	SetIdShort(string)
	SetSemanticID(*Reference)
}

// elementCommon holds the identity and annotation fields every variant
// shares. Variants embed it; the modelType discriminant stays on the
// concrete struct so the JSON shape matches the wire format.
type elementCommon struct {
	//nolint:all
	IdShort string `json:"idShort,omitempty"`

	DisplayName []LangStringNameType `json:"displayName,omitempty"`

	Description []LangStringTextType `json:"description,omitempty"`

	SemanticID *Reference `json:"semanticId,omitempty"`
}

//nolint:all
func (c *elementCommon) GetIdShort() string { return c.IdShort }

//nolint:all
func (c *elementCommon) SetIdShort(idShort string) { c.IdShort = idShort }

func (c *elementCommon) GetSemanticID() *Reference { return c.SemanticID }

func (c *elementCommon) SetSemanticID(ref *Reference) { c.SemanticID = ref }

func (c *elementCommon) GetDisplayName() []LangStringNameType { return c.DisplayName }

func (c *elementCommon) GetDescription() []LangStringTextType { return c.Description }

// UnmarshalSubmodelElement decodes one element into its concrete variant
// based on the modelType discriminant.
func UnmarshalSubmodelElement(data []byte) (SubmodelElement, error) {
	var raw struct {
		ModelType string `json:"modelType"`
	}
	var json = jsoniter.ConfigCompatibleWithStandardLibrary

	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to determine modelType: %w", err)
	}

	switch raw.ModelType {
	case "Property":
		var prop Property
		if err := json.Unmarshal(data, &prop); err != nil {
			return nil, fmt.Errorf("failed to unmarshal Property: %w", err)
		}
		return &prop, nil
	case "MultiLanguageProperty":
		var mlp MultiLanguageProperty
		if err := json.Unmarshal(data, &mlp); err != nil {
			return nil, fmt.Errorf("failed to unmarshal MultiLanguageProperty: %w", err)
		}
		return &mlp, nil
	case "File":
		var f File
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to unmarshal File: %w", err)
		}
		return &f, nil
	case "Blob":
		var b Blob
		if err := json.Unmarshal(data, &b); err != nil {
			return nil, fmt.Errorf("failed to unmarshal Blob: %w", err)
		}
		return &b, nil
	case "Range":
		var r Range
		if err := json.Unmarshal(data, &r); err != nil {
			return nil, fmt.Errorf("failed to unmarshal Range: %w", err)
		}
		return &r, nil
	case "ReferenceElement":
		var re ReferenceElement
		if err := json.Unmarshal(data, &re); err != nil {
			return nil, fmt.Errorf("failed to unmarshal ReferenceElement: %w", err)
		}
		return &re, nil
	case "Entity":
		var e Entity
		if err := json.Unmarshal(data, &e); err != nil {
			return nil, fmt.Errorf("failed to unmarshal Entity: %w", err)
		}
		return &e, nil
	case "SubmodelElementCollection":
		var sec SubmodelElementCollection
		if err := json.Unmarshal(data, &sec); err != nil {
			return nil, fmt.Errorf("failed to unmarshal SubmodelElementCollection: %w", err)
		}
		return &sec, nil
	case "SubmodelElementList":
		var sel SubmodelElementList
		if err := json.Unmarshal(data, &sel); err != nil {
			return nil, fmt.Errorf("failed to unmarshal SubmodelElementList: %w", err)
		}
		return &sel, nil
	default:
		return nil, fmt.Errorf("unsupported modelType: %s (supported types: Property, MultiLanguageProperty, File, Blob, Range, ReferenceElement, Entity, SubmodelElementCollection, SubmodelElementList)", raw.ModelType)
	}
}

// unmarshalElementSlice decodes a raw JSON array of polymorphic elements,
// preserving order.
func unmarshalElementSlice(raws []jsoniter.RawMessage) ([]SubmodelElement, error) {
	if raws == nil {
		return nil, nil
	}
	elements := make([]SubmodelElement, len(raws))
	for i, raw := range raws {
		elem, err := UnmarshalSubmodelElement(raw)
		if err != nil {
			return nil, err
		}
		elements[i] = elem
	}
	return elements, nil
}
