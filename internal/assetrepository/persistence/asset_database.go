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

// Package persistence contains the persistence layer of the asset repository.
// It stores shells and submodels in their canonical serialized form, keyed by
// identifier, and abstracts the underlying database from the service layer.
package persistence

import (
	"context"
	"time"
)

// Record is one stored shell or submodel: the canonical JSON document plus
// bookkeeping timestamps. Data is opaque to the persistence layer.
type Record struct {
	ID        string
	Data      []byte
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AssetDatabase is the storage contract of the asset repository. Writes
// follow last-write-wins semantics: a Put always replaces the stored
// document and bumps UpdatedAt, preserving CreatedAt of an existing record.
// Missing records are reported via the common not-found error.
type AssetDatabase interface {
	GetShell(ctx context.Context, id string) (Record, error)
	PutShell(ctx context.Context, record Record) error
	DeleteShell(ctx context.Context, id string) error
	ListShells(ctx context.Context) ([]Record, error)

	GetSubmodel(ctx context.Context, id string) (Record, error)
	PutSubmodel(ctx context.Context, record Record) error
	DeleteSubmodel(ctx context.Context, id string) error
}
