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

// Package inmemory provides a thread-safe in-memory implementation of the
// asset database, intended for development and tests.
package inmemory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/eclipse-basyx/dpp-go-components/internal/assetrepository/persistence"
	"github.com/eclipse-basyx/dpp-go-components/internal/common"
)

// InMemoryAssetDatabase keeps shells and submodels in maps guarded by a
// read-write mutex.
type InMemoryAssetDatabase struct {
	mu        sync.RWMutex
	shells    map[string]persistence.Record
	submodels map[string]persistence.Record
}

// NewInMemoryAssetDatabase creates an empty in-memory database.
func NewInMemoryAssetDatabase() *InMemoryAssetDatabase {
	return &InMemoryAssetDatabase{
		shells:    make(map[string]persistence.Record),
		submodels: make(map[string]persistence.Record),
	}
}

// GetShell retrieves a shell record by its identifier.
func (m *InMemoryAssetDatabase) GetShell(_ context.Context, id string) (persistence.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return getRecord(m.shells, id)
}

// PutShell inserts or replaces a shell record.
func (m *InMemoryAssetDatabase) PutShell(_ context.Context, record persistence.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	putRecord(m.shells, record)
	return nil
}

// DeleteShell removes a shell record.
func (m *InMemoryAssetDatabase) DeleteShell(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return deleteRecord(m.shells, id)
}

// ListShells returns all stored shell records ordered by identifier.
func (m *InMemoryAssetDatabase) ListShells(_ context.Context) ([]persistence.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records := make([]persistence.Record, 0, len(m.shells))
	for _, r := range m.shells {
		records = append(records, cloneRecord(r))
	}
	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })
	return records, nil
}

// GetSubmodel retrieves a submodel record by its identifier.
func (m *InMemoryAssetDatabase) GetSubmodel(_ context.Context, id string) (persistence.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return getRecord(m.submodels, id)
}

// PutSubmodel inserts or replaces a submodel record.
func (m *InMemoryAssetDatabase) PutSubmodel(_ context.Context, record persistence.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	putRecord(m.submodels, record)
	return nil
}

// DeleteSubmodel removes a submodel record.
func (m *InMemoryAssetDatabase) DeleteSubmodel(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return deleteRecord(m.submodels, id)
}

func getRecord(store map[string]persistence.Record, id string) (persistence.Record, error) {
	r, ok := store[id]
	if !ok {
		return persistence.Record{}, common.NewErrNotFound(id)
	}
	return cloneRecord(r), nil
}

func putRecord(store map[string]persistence.Record, record persistence.Record) {
	now := time.Now().UTC()
	if existing, ok := store[record.ID]; ok {
		record.CreatedAt = existing.CreatedAt
	} else if record.CreatedAt.IsZero() {
		record.CreatedAt = now
	}
	record.UpdatedAt = now
	store[record.ID] = cloneRecord(record)
}

func deleteRecord(store map[string]persistence.Record, id string) error {
	if _, ok := store[id]; !ok {
		return common.NewErrNotFound(id)
	}
	delete(store, id)
	return nil
}

func cloneRecord(r persistence.Record) persistence.Record {
	data := make([]byte, len(r.Data))
	copy(data, r.Data)
	r.Data = data
	return r
}
