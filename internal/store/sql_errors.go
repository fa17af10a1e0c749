// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"net"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// ErrorClassificator maps driver-specific errors to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// ErrorClassification is the result type returned by
// [ErrorClassificator.Classify]. It tells a repository how a failed statement
// should be reported.
type ErrorClassification int

const (
	// Permanent is the default classification: the statement failed for a
	// reason retrying will not fix (syntax, data or schema errors).
	Permanent ErrorClassification = iota

	// Transient indicates the store could not be reached or was busy
	// (connection loss, timeouts, lock contention).
	Transient

	// Duplicate indicates a unique constraint rejected the statement.
	Duplicate
)

// String returns the log-friendly name of the classification.
func (c ErrorClassification) String() string {
	switch c {
	case Transient:
		return "transient"
	case Duplicate:
		return "duplicate"
	default:
		return "permanent"
	}
}

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. Errors that are not
// *pgconn.PgError values fall back to [classifyCommon].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return Permanent
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return Transient
	}

	return classifyCommon(err)
}

// ClassifyPgError maps a *pgconn.PgError to an [ErrorClassification] based on
// the PostgreSQL error code.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html for the
// full list of PostgreSQL error codes.
//
// Transient codes:
//   - Class 08: connection exceptions
//   - Class 40: serialization failure, deadlock
//   - Class 53: insufficient resources (too many connections)
//   - Class 57: admin shutdown, cannot connect now, query canceled
//
// Duplicate codes:
//   - 23505: unique_violation
//
// Any other code is classified as [Permanent].
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return Duplicate

	// Class 08: connection exceptions
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		pgerrcode.SQLClientUnableToEstablishSQLConnection,
		pgerrcode.SQLServerRejectedEstablishmentOfSQLConnection:
		return Transient

	// Class 40: transaction rollback
	case pgerrcode.SerializationFailure,
		pgerrcode.DeadlockDetected:
		return Transient

	// Class 53: insufficient resources
	case pgerrcode.TooManyConnections:
		return Transient

	// Class 57: operator intervention
	case pgerrcode.AdminShutdown,
		pgerrcode.CrashShutdown,
		pgerrcode.CannotConnectNow,
		pgerrcode.QueryCanceled:
		return Transient
	}

	return Permanent
}

// SQLiteErrorClassifier implements [ErrorClassificator] for SQLite.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier] ready for use.
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassificator].
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return Permanent
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch {
		case sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique,
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey:
			return Duplicate
		case sqliteErr.Code == sqlite3.ErrBusy,
			sqliteErr.Code == sqlite3.ErrLocked,
			sqliteErr.Code == sqlite3.ErrCantOpen,
			sqliteErr.Code == sqlite3.ErrIoErr:
			return Transient
		}
		return Permanent
	}

	return classifyCommon(err)
}

// classifyCommon recognises driver-independent connectivity failures.
func classifyCommon(err error) ErrorClassification {
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled),
		errors.Is(err, driver.ErrBadConn),
		errors.Is(err, sql.ErrConnDone),
		errors.As(err, &netErr):
		return Transient
	}

	return Permanent
}
