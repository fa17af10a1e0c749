// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/medineo/erp-auth/internal/logger"
	"github.com/medineo/erp-auth/migrations"
)

// DB is an open SQL connection together with the dialect-specific pieces the
// account repository needs: the placeholder format for generated queries and
// the driver error classifier.
type DB struct {
	*sql.DB
	dialect            string
	placeholder        sq.PlaceholderFormat
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Dialect returns the migration dialect of the connection
// ([migrations.DialectPostgres] or [migrations.DialectSQLite]).
func (db *DB) Dialect() string {
	return db.dialect
}

// Migrate applies all pending schema migrations for the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// builder returns a squirrel statement builder using the connection's
// placeholder format.
func (db *DB) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(db.placeholder)
}
