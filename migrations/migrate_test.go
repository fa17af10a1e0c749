// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	_ = mock // no expectations: every statement goose issues fails

	err = Migrate(db, DialectPostgres)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db, DialectPostgres)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db is nil")
}

func TestMigrate_UnknownDialect(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = Migrate(db, "oracle")
	require.ErrorIs(t, err, errUnknownDialect)
}

func TestMigrate_SQLite(t *testing.T) {
	db, err := sql.Open("sqlite3", "file::memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	defer db.Close()

	require.NoError(t, Migrate(db, DialectSQLite))
	// a second run has nothing left to apply
	require.NoError(t, Migrate(db, DialectSQLite))

	_, err = db.Exec(`INSERT INTO accounts (identifier, secret_hash, role) VALUES (?, ?, ?)`,
		"admin@medineo.com", "$2a$04$hash", "administrator")
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO accounts (identifier, secret_hash, role) VALUES (?, ?, ?)`,
		"admin@medineo.com", "$2a$04$other", "standard")
	assert.Error(t, err, "identifier must be unique")

	_, err = db.Exec(`INSERT INTO accounts (identifier, secret_hash, role) VALUES (?, ?, ?)`,
		"clerk@medineo.com", "$2a$04$hash", "superuser")
	assert.Error(t, err, "role must be known")
}
