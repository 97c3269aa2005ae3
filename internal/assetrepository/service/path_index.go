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

package service

import (
	"fmt"
	"strings"

	"github.com/eclipse-basyx/dpp-go-components/internal/common/model"
)

// pathIndex flattens a submodel tree into addressable paths. The canonical
// path of a node is the /-joined idShort chain from the submodel root.
// External path variants additionally carry the submodel's idShort (and
// identifier) as a prefix and use Name[i] bracket notation for children of
// SubmodelElementLists. Nodes without an idShort are not addressable and
// are excluded, including their subtrees.
type pathIndex struct {
	canonical      map[string]model.SubmodelElement
	canonicalOrder []string

	// simplified and full map external path variants to canonical paths.
	simplified      map[string]string
	simplifiedOrder []string
	full            map[string]string
	fullOrder       []string
}

func newPathIndex(sm *model.Submodel) *pathIndex {
	idx := &pathIndex{
		canonical:  make(map[string]model.SubmodelElement),
		simplified: make(map[string]string),
		full:       make(map[string]string),
	}
	for _, el := range sm.SubmodelElements {
		if el.GetIdShort() == "" {
			continue
		}
		idx.walk(sm, el, el.GetIdShort(), el.GetIdShort())
	}
	return idx
}

func (idx *pathIndex) walk(sm *model.Submodel, el model.SubmodelElement, canonical string, external string) {
	idx.register(sm, el, canonical, external)

	switch v := el.(type) {
	case *model.SubmodelElementCollection:
		idx.walkChildren(sm, v.Value, canonical, external)
	case *model.Entity:
		idx.walkChildren(sm, v.Statements, canonical, external)
	case *model.SubmodelElementList:
		for i, child := range v.Value {
			if child.GetIdShort() == "" {
				continue
			}
			childCanonical := canonical + "/" + child.GetIdShort()
			childExternal := fmt.Sprintf("%s[%d]", external, i)
			idx.walk(sm, child, childCanonical, childExternal)
		}
	}
}

func (idx *pathIndex) walkChildren(sm *model.Submodel, children []model.SubmodelElement, canonical string, external string) {
	for _, child := range children {
		if child.GetIdShort() == "" {
			continue
		}
		idx.walk(sm, child, canonical+"/"+child.GetIdShort(), external+"/"+child.GetIdShort())
	}
}

func (idx *pathIndex) register(sm *model.Submodel, el model.SubmodelElement, canonical string, external string) {
	if _, exists := idx.canonical[canonical]; !exists {
		idx.canonicalOrder = append(idx.canonicalOrder, canonical)
	}
	idx.canonical[canonical] = el

	simplified := external
	full := external
	if sm.IdShort != "" {
		simplified = sm.IdShort + "/" + external
		full = sm.IdShort + "/" + sm.ID + "/" + external
	}
	if _, exists := idx.simplified[simplified]; !exists {
		idx.simplifiedOrder = append(idx.simplifiedOrder, simplified)
	}
	idx.simplified[simplified] = canonical
	if _, exists := idx.full[full]; !exists {
		idx.fullOrder = append(idx.fullOrder, full)
	}
	idx.full[full] = canonical
}

// resolverStrategy attempts to resolve an externally supplied path to a
// node, returning the canonical path of the hit.
type resolverStrategy func(idx *pathIndex, path string) (string, bool)

// resolverStrategies is the resolution cascade, tried in order with early
// exit. The order encodes precedence: exact canonical, exact simplified
// external, exact full external, bracket-normalized structural match, and
// finally a basename fallback.
var resolverStrategies = []resolverStrategy{
	resolveCanonical,
	resolveSimplified,
	resolveFull,
	resolveNormalized,
	resolveBasename,
}

// Resolve maps an external path to a node. The second return value is the
// canonical path of the resolved node. An unresolvable path returns false
// and must be tolerated by callers: batch updates may carry stale paths.
func (idx *pathIndex) Resolve(path string) (model.SubmodelElement, string, bool) {
	for _, strategy := range resolverStrategies {
		if canonical, ok := strategy(idx, path); ok {
			return idx.canonical[canonical], canonical, true
		}
	}
	return nil, "", false
}

func resolveCanonical(idx *pathIndex, path string) (string, bool) {
	if _, ok := idx.canonical[path]; ok {
		return path, true
	}
	return "", false
}

func resolveSimplified(idx *pathIndex, path string) (string, bool) {
	canonical, ok := idx.simplified[path]
	return canonical, ok
}

func resolveFull(idx *pathIndex, path string) (string, bool) {
	canonical, ok := idx.full[path]
	return canonical, ok
}

func resolveNormalized(idx *pathIndex, path string) (string, bool) {
	normalized := normalizeBrackets(path)
	for _, key := range idx.simplifiedOrder {
		if normalizeBrackets(key) == normalized {
			return idx.simplified[key], true
		}
	}
	for _, key := range idx.fullOrder {
		if normalizeBrackets(key) == normalized {
			return idx.full[key], true
		}
	}
	return "", false
}

func resolveBasename(idx *pathIndex, path string) (string, bool) {
	if !strings.Contains(path, "/") {
		return "", false
	}
	basename := path[strings.LastIndex(path, "/")+1:]
	for _, key := range idx.canonicalOrder {
		if strings.HasSuffix(key, "/"+basename) {
			return key, true
		}
	}
	return "", false
}

// normalizeBrackets rewrites Name[2] index notation into /-separated
// segments so structurally equal paths compare equal.
func normalizeBrackets(path string) string {
	return strings.ReplaceAll(strings.ReplaceAll(path, "[", "/"), "]", "")
}
