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

package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // Postgres dialect for goqu
	_ "github.com/lib/pq"                               // PostgreSQL driver

	"github.com/eclipse-basyx/dpp-go-components/internal/common"
)

const (
	shellTable    = "aas_asset"
	submodelTable = "aas_submodel"
)

var dialect = goqu.Dialect("postgres")

// PostgreSQLAssetDatabase stores shells and submodels as JSONB documents in
// the aas_asset and aas_submodel tables.
type PostgreSQLAssetDatabase struct {
	db *sql.DB
}

// NewPostgreSQLAssetDatabase wraps an initialized connection pool and
// ensures the schema exists.
func NewPostgreSQLAssetDatabase(db *sql.DB) (*PostgreSQLAssetDatabase, error) {
	backend := &PostgreSQLAssetDatabase{db: db}
	if err := backend.initializeSchema(); err != nil {
		return nil, fmt.Errorf("initialize schema: %w", err)
	}
	return backend, nil
}

func (p *PostgreSQLAssetDatabase) initializeSchema() error {
	for _, table := range []string{shellTable, submodelTable} {
		statement := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id TEXT PRIMARY KEY,
			data JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`, table)
		if _, err := p.db.Exec(statement); err != nil {
			return err
		}
	}
	return nil
}

// GetShell retrieves a shell record by its identifier.
func (p *PostgreSQLAssetDatabase) GetShell(ctx context.Context, id string) (Record, error) {
	return p.get(ctx, shellTable, id)
}

// PutShell inserts or replaces a shell record.
func (p *PostgreSQLAssetDatabase) PutShell(ctx context.Context, record Record) error {
	return p.put(ctx, shellTable, record)
}

// DeleteShell removes a shell record.
func (p *PostgreSQLAssetDatabase) DeleteShell(ctx context.Context, id string) error {
	return p.delete(ctx, shellTable, id)
}

// ListShells returns all stored shell records ordered by identifier.
func (p *PostgreSQLAssetDatabase) ListShells(ctx context.Context) ([]Record, error) {
	query, args, err := dialect.From(shellTable).
		Select(goqu.C("id"), goqu.C("data"), goqu.C("created_at"), goqu.C("updated_at")).
		Order(goqu.I("id").Asc()).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("failed to build SQL query: %w", err)
	}

	rows, err := p.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute SQL query: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.ID, &r.Data, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// GetSubmodel retrieves a submodel record by its identifier.
func (p *PostgreSQLAssetDatabase) GetSubmodel(ctx context.Context, id string) (Record, error) {
	return p.get(ctx, submodelTable, id)
}

// PutSubmodel inserts or replaces a submodel record.
func (p *PostgreSQLAssetDatabase) PutSubmodel(ctx context.Context, record Record) error {
	return p.put(ctx, submodelTable, record)
}

// DeleteSubmodel removes a submodel record.
func (p *PostgreSQLAssetDatabase) DeleteSubmodel(ctx context.Context, id string) error {
	return p.delete(ctx, submodelTable, id)
}

func (p *PostgreSQLAssetDatabase) get(ctx context.Context, table string, id string) (Record, error) {
	query, args, err := dialect.From(table).
		Select(goqu.C("id"), goqu.C("data"), goqu.C("created_at"), goqu.C("updated_at")).
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return Record{}, fmt.Errorf("failed to build SQL query: %w", err)
	}

	var r Record
	err = p.db.QueryRowContext(ctx, query, args...).Scan(&r.ID, &r.Data, &r.CreatedAt, &r.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, common.NewErrNotFound(id)
	}
	if err != nil {
		return Record{}, fmt.Errorf("failed to execute SQL query: %w", err)
	}
	return r, nil
}

func (p *PostgreSQLAssetDatabase) put(ctx context.Context, table string, record Record) error {
	now := time.Now().UTC()
	createdAt := record.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}

	// Upsert keeps created_at of an existing row and bumps updated_at.
	query, args, err := dialect.Insert(table).Rows(
		goqu.Record{
			"id":         record.ID,
			"data":       string(record.Data),
			"created_at": createdAt,
			"updated_at": now,
		},
	).OnConflict(goqu.DoUpdate("id", goqu.Record{
		"data":       string(record.Data),
		"updated_at": now,
	})).ToSQL()
	if err != nil {
		return fmt.Errorf("failed to build SQL query: %w", err)
	}

	if _, err := p.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to execute SQL query: %w", err)
	}
	return nil
}

func (p *PostgreSQLAssetDatabase) delete(ctx context.Context, table string, id string) error {
	query, args, err := dialect.Delete(table).Where(goqu.Ex{"id": id}).ToSQL()
	if err != nil {
		return fmt.Errorf("failed to build SQL query: %w", err)
	}

	result, err := p.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to execute SQL query: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return common.NewErrNotFound(id)
	}
	return nil
}
