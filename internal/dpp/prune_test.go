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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCleanNullsRemovesNullLeavesAndTheirKeys(t *testing.T) {
	input := map[string]any{
		"name":   "Pump",
		"serial": nil,
		"nested": map[string]any{
			"weight": nil,
			"width":  int64(10),
		},
	}

	cleaned := CleanNulls(input, nil).(map[string]any)
	require.Equal(t, map[string]any{
		"name":   "Pump",
		"nested": map[string]any{"width": int64(10)},
	}, cleaned)
}

func TestCleanNullsRetainsEmptyContainers(t *testing.T) {
	input := map[string]any{
		"documents": []any{},
		"meta":      map[string]any{"gone": nil},
	}

	cleaned := CleanNulls(input, nil).(map[string]any)
	require.Equal(t, []any{}, cleaned["documents"])
	require.Equal(t, map[string]any{}, cleaned["meta"])
}

func TestCleanNullsDropsNullSliceEntries(t *testing.T) {
	input := map[string]any{
		"items": []any{"a", nil, "b"},
	}

	cleaned := CleanNulls(input, nil).(map[string]any)
	require.Equal(t, []any{"a", "b"}, cleaned["items"])
}

func TestCleanNullsPreservesDeclaredPaths(t *testing.T) {
	input := map[string]any{
		"status": nil,
		"data": map[string]any{
			"availability": nil,
			"value":        nil,
		},
	}

	cleaned := CleanNulls(input, []string{"status", "data.availability"}).(map[string]any)
	require.Contains(t, cleaned, "status")
	require.Nil(t, cleaned["status"])

	data := cleaned["data"].(map[string]any)
	require.Contains(t, data, "availability")
	require.NotContains(t, data, "value")
}

func TestCleanNullsDoesNotMutateInput(t *testing.T) {
	input := map[string]any{
		"keep": "x",
		"drop": nil,
	}

	CleanNulls(input, nil)
	require.Contains(t, input, "drop")
}

func TestCleanNullsIsIdempotent(t *testing.T) {
	input := map[string]any{
		"a": nil,
		"b": map[string]any{"c": nil, "d": []any{nil, "x"}},
	}

	once := CleanNulls(input, nil)
	twice := CleanNulls(once, nil)
	require.Equal(t, once, twice)
}
