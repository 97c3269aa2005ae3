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

package common

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorPredicatesMatchTheirConstructors(t *testing.T) {
	t.Parallel()

	notFound := NewErrNotFound("urn:uuid:x")
	badRequest := NewErrBadRequest("value out of range")
	conflict := NewErrConflict("urn:uuid:x already exists")

	require.True(t, IsErrNotFound(notFound))
	require.True(t, IsErrBadRequest(badRequest))
	require.True(t, IsErrConflict(conflict))

	// Predicates must not cross-match.
	assert.False(t, IsErrNotFound(badRequest))
	assert.False(t, IsErrBadRequest(conflict))
	assert.False(t, IsErrConflict(notFound))
	assert.False(t, IsErrNotFound(nil))
}

func TestWriteErrorStatusMapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err    error
		status int
	}{
		{NewErrNotFound("urn:uuid:x"), 404},
		{NewErrBadRequest("broken body"), 400},
		{NewErrConflict("urn:uuid:x"), 409},
		{errors.New("disk on fire"), 500},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		WriteError(w, tc.err)
		require.Equal(t, tc.status, w.Code, "error %v", tc.err)
		require.Equal(t, "application/json", w.Header().Get("Content-Type"))
		require.Contains(t, w.Body.String(), "message")
	}

	// Internal errors must not leak their cause to the client.
	w := httptest.NewRecorder()
	WriteError(w, errors.New("disk on fire"))
	assert.NotContains(t, w.Body.String(), "disk on fire")
}
