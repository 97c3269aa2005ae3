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

package inmemory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eclipse-basyx/dpp-go-components/internal/assetrepository/persistence"
	"github.com/eclipse-basyx/dpp-go-components/internal/common"
)

func TestShellLifecycle(t *testing.T) {
	sut := NewInMemoryAssetDatabase()
	ctx := context.Background()

	_, err := sut.GetShell(ctx, "urn:uuid:shell-1")
	require.True(t, common.IsErrNotFound(err))

	require.NoError(t, sut.PutShell(ctx, persistence.Record{
		ID:   "urn:uuid:shell-1",
		Data: []byte(`{"id":"urn:uuid:shell-1"}`),
	}))

	record, err := sut.GetShell(ctx, "urn:uuid:shell-1")
	require.NoError(t, err)
	require.JSONEq(t, `{"id":"urn:uuid:shell-1"}`, string(record.Data))
	require.False(t, record.CreatedAt.IsZero())
	require.False(t, record.UpdatedAt.IsZero())

	require.NoError(t, sut.DeleteShell(ctx, "urn:uuid:shell-1"))
	err = sut.DeleteShell(ctx, "urn:uuid:shell-1")
	require.True(t, common.IsErrNotFound(err))
}

func TestPutPreservesCreatedAt(t *testing.T) {
	sut := NewInMemoryAssetDatabase()
	ctx := context.Background()

	require.NoError(t, sut.PutSubmodel(ctx, persistence.Record{ID: "sm", Data: []byte(`{"v":1}`)}))
	first, err := sut.GetSubmodel(ctx, "sm")
	require.NoError(t, err)

	require.NoError(t, sut.PutSubmodel(ctx, persistence.Record{ID: "sm", Data: []byte(`{"v":2}`)}))
	second, err := sut.GetSubmodel(ctx, "sm")
	require.NoError(t, err)

	require.Equal(t, first.CreatedAt, second.CreatedAt)
	require.JSONEq(t, `{"v":2}`, string(second.Data))
	require.False(t, second.UpdatedAt.Before(first.UpdatedAt))
}

func TestListShellsSortsByID(t *testing.T) {
	sut := NewInMemoryAssetDatabase()
	ctx := context.Background()

	require.NoError(t, sut.PutShell(ctx, persistence.Record{ID: "b", Data: []byte(`{}`)}))
	require.NoError(t, sut.PutShell(ctx, persistence.Record{ID: "a", Data: []byte(`{}`)}))

	records, err := sut.ListShells(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, "a", records[0].ID)
	require.Equal(t, "b", records[1].ID)
}

func TestStoredDataIsIsolatedFromCaller(t *testing.T) {
	sut := NewInMemoryAssetDatabase()
	ctx := context.Background()

	data := []byte(`{"id":"sm"}`)
	require.NoError(t, sut.PutSubmodel(ctx, persistence.Record{ID: "sm", Data: data}))
	data[2] = 'X'

	record, err := sut.GetSubmodel(ctx, "sm")
	require.NoError(t, err)
	require.JSONEq(t, `{"id":"sm"}`, string(record.Data))
}
