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

package dpp

import (
	"github.com/eclipse-basyx/dpp-go-components/internal/common/model"
)

// treeProjector walks a submodel tree and produces the generic projection
// shared by all section processors. Nodes without an idShort contribute
// nothing, and containers whose children all project to nothing are
// dropped themselves. A visited set guards against cycles: a revisited
// node stops the descent and projects to a reference marker.
type treeProjector struct {
	visited map[model.SubmodelElement]struct{}
}

func newTreeProjector() *treeProjector {
	return &treeProjector{visited: make(map[model.SubmodelElement]struct{})}
}

// projectSubmodel projects a whole submodel into metadata plus the
// projections of its surviving top-level elements keyed by idShort.
func projectSubmodel(sm *model.Submodel) map[string]any {
	if sm == nil {
		return map[string]any{}
	}

	projector := newTreeProjector()
	elements := map[string]any{}
	for _, el := range sm.SubmodelElements {
		if el.GetIdShort() == "" {
			continue
		}
		if projected := projector.project(el); projected != nil {
			elements[el.GetIdShort()] = projected
		}
	}

	metadata := map[string]any{
		"id":      sm.ID,
		"idShort": sm.IdShort,
	}
	if sm.Administration != nil && sm.Administration.Version != "" {
		metadata["version"] = sm.Administration.Version
	}

	return map[string]any{
		"metadata": metadata,
		"elements": elements,
	}
}

// project dispatches on the element variant. It returns nil when the node
// carries nothing worth showing.
func (p *treeProjector) project(el model.SubmodelElement) map[string]any {
	if el == nil || el.GetIdShort() == "" {
		return nil
	}
	if _, revisited := p.visited[el]; revisited {
		return map[string]any{
			"idShort":   el.GetIdShort(),
			"modelType": el.GetModelType(),
			"reference": true,
		}
	}
	p.visited[el] = struct{}{}

	switch v := el.(type) {
	case *model.Property:
		return projectProperty(v)
	case *model.MultiLanguageProperty:
		return projectMultiLanguageProperty(v)
	case *model.File:
		return projectFile(v)
	case *model.Blob:
		return projectBlob(v)
	case *model.Range:
		return projectRange(v)
	case *model.ReferenceElement:
		return projectReferenceElement(v)
	case *model.SubmodelElementCollection:
		return p.projectChildren(v, "SubmodelElementCollection", v.Value, nil)
	case *model.Entity:
		return p.projectEntity(v)
	case *model.SubmodelElementList:
		return p.projectList(v)
	default:
		// An unknown node contributes nothing rather than aborting the
		// whole projection.
		return nil
	}
}

// projectProperty re-derives the typed value from the declared valueType,
// since projected data usually comes from already-serialized JSON. A value
// that fails conversion is kept as the raw string.
func projectProperty(prop *model.Property) map[string]any {
	if prop.Value == "" {
		return nil
	}
	var value any = prop.Value
	if converted, err := model.ConvertValue(prop.Value, prop.ValueType); err == nil && converted != nil {
		value = converted
	}
	return map[string]any{
		"idShort":   prop.IdShort,
		"modelType": prop.ModelType,
		"valueType": string(prop.ValueType),
		"value":     value,
	}
}

// projectMultiLanguageProperty coalesces the entries to a language-to-text
// map, last write wins.
func projectMultiLanguageProperty(mlp *model.MultiLanguageProperty) map[string]any {
	values := map[string]any{}
	for _, entry := range mlp.Value {
		if entry.Language != "" && entry.Text != "" {
			values[entry.Language] = entry.Text
		}
	}
	if len(values) == 0 {
		return nil
	}
	return map[string]any{
		"idShort":   mlp.IdShort,
		"modelType": mlp.ModelType,
		"value":     values,
	}
}

func projectFile(file *model.File) map[string]any {
	if file.Value == "" {
		return nil
	}
	return map[string]any{
		"idShort":     file.IdShort,
		"modelType":   file.ModelType,
		"value":       file.Value,
		"contentType": file.ContentType,
	}
}

func projectBlob(blob *model.Blob) map[string]any {
	if blob.Value == "" {
		return nil
	}
	return map[string]any{
		"idShort":     blob.IdShort,
		"modelType":   blob.ModelType,
		"contentType": blob.ContentType,
		"value":       blob.Value,
	}
}

func projectRange(rng *model.Range) map[string]any {
	if rng.Min == "" && rng.Max == "" {
		return nil
	}
	result := map[string]any{
		"idShort":   rng.IdShort,
		"modelType": rng.ModelType,
		"valueType": string(rng.ValueType),
	}
	if rng.Min != "" {
		result["min"] = typedOrRaw(rng.Min, rng.ValueType)
	}
	if rng.Max != "" {
		result["max"] = typedOrRaw(rng.Max, rng.ValueType)
	}
	return result
}

func projectReferenceElement(ref *model.ReferenceElement) map[string]any {
	if ref.Value == nil || ref.Value.FirstKeyValue() == "" {
		return nil
	}
	return map[string]any{
		"idShort":   ref.IdShort,
		"modelType": ref.ModelType,
		"value":     ref.Value.FirstKeyValue(),
	}
}

func (p *treeProjector) projectChildren(el model.SubmodelElement, modelType string, children []model.SubmodelElement, extra map[string]any) map[string]any {
	elements := map[string]any{}
	for _, child := range children {
		if child.GetIdShort() == "" {
			continue
		}
		if projected := p.project(child); projected != nil {
			elements[child.GetIdShort()] = projected
		}
	}
	if len(elements) == 0 {
		return nil
	}

	result := map[string]any{
		"idShort":   el.GetIdShort(),
		"modelType": modelType,
		"elements":  elements,
	}
	for key, value := range extra {
		result[key] = value
	}
	return result
}

func (p *treeProjector) projectEntity(entity *model.Entity) map[string]any {
	statements := make([]any, 0, len(entity.Statements))
	for _, statement := range entity.Statements {
		if projected := p.project(statement); projected != nil {
			statements = append(statements, projected)
		}
	}
	if len(statements) == 0 {
		return nil
	}
	return map[string]any{
		"idShort":    entity.IdShort,
		"modelType":  entity.ModelType,
		"entityType": string(entity.EntityType),
		"statements": statements,
	}
}

func (p *treeProjector) projectList(list *model.SubmodelElementList) map[string]any {
	elements := make([]any, 0, len(list.Value))
	for _, child := range list.Value {
		if projected := p.project(child); projected != nil {
			elements = append(elements, projected)
		}
	}
	if len(elements) == 0 {
		return nil
	}
	return map[string]any{
		"idShort":       list.IdShort,
		"modelType":     "SubmodelElementList",
		"orderRelevant": list.OrderRelevant,
		"elements":      elements,
	}
}

func typedOrRaw(raw string, valueType model.DataTypeDefXsd) any {
	if converted, err := model.ConvertValue(raw, valueType); err == nil && converted != nil {
		return converted
	}
	return raw
}
