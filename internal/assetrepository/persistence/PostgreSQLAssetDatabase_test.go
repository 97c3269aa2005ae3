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
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/eclipse-basyx/dpp-go-components/internal/common"
)

func newMockDatabase(t *testing.T) (*PostgreSQLAssetDatabase, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &PostgreSQLAssetDatabase{db: db}, mock
}

func TestNewPostgreSQLAssetDatabaseCreatesSchema(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS aas_asset`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS aas_submodel`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err = NewPostgreSQLAssetDatabase(db)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetShellReturnsStoredRecord(t *testing.T) {
	sut, mock := newMockDatabase(t)

	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	updated := created.Add(time.Hour)
	mock.ExpectQuery(`SELECT .*FROM .*aas_asset.*WHERE`).
		WithArgs("urn:uuid:shell-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "data", "created_at", "updated_at"}).
			AddRow("urn:uuid:shell-1", []byte(`{"id":"urn:uuid:shell-1"}`), created, updated))

	record, err := sut.GetShell(context.Background(), "urn:uuid:shell-1")
	require.NoError(t, err)
	require.Equal(t, "urn:uuid:shell-1", record.ID)
	require.JSONEq(t, `{"id":"urn:uuid:shell-1"}`, string(record.Data))
	require.Equal(t, created, record.CreatedAt)
	require.Equal(t, updated, record.UpdatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetShellMissingReturnsNotFound(t *testing.T) {
	sut, mock := newMockDatabase(t)

	mock.ExpectQuery(`SELECT .*FROM .*aas_asset.*WHERE`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id", "data", "created_at", "updated_at"}))

	_, err := sut.GetShell(context.Background(), "missing")
	require.Error(t, err)
	require.True(t, common.IsErrNotFound(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPutShellUpserts(t *testing.T) {
	sut, mock := newMockDatabase(t)

	mock.ExpectExec(`INSERT INTO .*aas_asset.*ON CONFLICT .*DO UPDATE`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := sut.PutShell(context.Background(), Record{
		ID:   "urn:uuid:shell-1",
		Data: []byte(`{"id":"urn:uuid:shell-1"}`),
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPutSubmodelUpserts(t *testing.T) {
	sut, mock := newMockDatabase(t)

	mock.ExpectExec(`INSERT INTO .*aas_submodel.*ON CONFLICT .*DO UPDATE`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := sut.PutSubmodel(context.Background(), Record{
		ID:   "urn:uuid:sm-1",
		Data: []byte(`{"id":"urn:uuid:sm-1"}`),
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteShellMissingReturnsNotFound(t *testing.T) {
	sut, mock := newMockDatabase(t)

	mock.ExpectExec(`DELETE FROM .*aas_asset.*WHERE`).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := sut.DeleteShell(context.Background(), "missing")
	require.Error(t, err)
	require.True(t, common.IsErrNotFound(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteSubmodelRemovesRow(t *testing.T) {
	sut, mock := newMockDatabase(t)

	mock.ExpectExec(`DELETE FROM .*aas_submodel.*WHERE`).
		WithArgs("urn:uuid:sm-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := sut.DeleteSubmodel(context.Background(), "urn:uuid:sm-1")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListShellsReturnsAllRecords(t *testing.T) {
	sut, mock := newMockDatabase(t)

	now := time.Now().UTC()
	mock.ExpectQuery(`SELECT .*FROM .*aas_asset.*ORDER BY`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "data", "created_at", "updated_at"}).
			AddRow("a", []byte(`{"id":"a"}`), now, now).
			AddRow("b", []byte(`{"id":"b"}`), now, now))

	records, err := sut.ListShells(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, "a", records[0].ID)
	require.Equal(t, "b", records[1].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}
