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

import "fmt"

// defaultPreservePaths keeps keys whose presence carries meaning even when
// their value is empty. Availability flags must survive pruning so a reader
// can distinguish "reported as absent" from "never reported".
var defaultPreservePaths = []string{
	"metadata",
	"status",
	"availability",
}

// CleanNulls returns a copy of v with null leaves and the keys that held
// them removed. Maps and slices are rebuilt, never mutated; containers that
// end up empty are kept so the document shape stays recognizable. Keys whose
// dotted path matches an entry in preservePaths are retained verbatim,
// nulls included. The operation is idempotent.
func CleanNulls(v any, preservePaths []string) any {
	preserve := make(map[string]struct{}, len(preservePaths))
	for _, p := range preservePaths {
		preserve[p] = struct{}{}
	}
	cleaned, _ := cleanValue(v, "", preserve)
	return cleaned
}

// cleanValue reports the cleaned value and whether it should be kept at all.
func cleanValue(v any, path string, preserve map[string]struct{}) (any, bool) {
	if _, ok := preserve[path]; ok && path != "" {
		return v, true
	}

	switch typed := v.(type) {
	case nil:
		return nil, false
	case map[string]any:
		out := make(map[string]any, len(typed))
		for key, child := range typed {
			childPath := key
			if path != "" {
				childPath = path + "." + key
			}
			if cleaned, keep := cleanValue(child, childPath, preserve); keep {
				out[key] = cleaned
			}
		}
		return out, true
	case []any:
		out := make([]any, 0, len(typed))
		for i, child := range typed {
			childPath := fmt.Sprintf("%s[%d]", path, i)
			if cleaned, keep := cleanValue(child, childPath, preserve); keep {
				out = append(out, cleaned)
			}
		}
		return out, true
	default:
		return typed, true
	}
}
