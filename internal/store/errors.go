// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrAccountNotFound is returned when no account carries the requested
	// identifier. It is an ordinary outcome of a lookup, not a store fault.
	ErrAccountNotFound = errors.New("account not found")

	// ErrIdentifierAlreadyExists is returned when provisioning an account
	// fails because another account already uses the same identifier.
	ErrIdentifierAlreadyExists = errors.New("identifier already exists")

	// ErrStoreUnavailable wraps every fault of the backing store itself:
	// lost connections, timeouts, failed statements and unreadable rows.
	ErrStoreUnavailable = errors.New("account store unavailable")
)

// Low-level database operation errors. They are always wrapped together with
// [ErrStoreUnavailable] before leaving the package.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a result
	// row into an account fails.
	ErrScanningRow = errors.New("failed to scan account row")

	// ErrUnsupportedDSN is returned by [NewStorages] when the configured DSN
	// matches none of the supported backends.
	ErrUnsupportedDSN = errors.New("unsupported storage DSN")

	// ErrNilDB is returned when a repository or migration is handed a nil
	// database handle.
	ErrNilDB = errors.New("db is nil")
)

// wrapUnavailable reports err as a store fault.
func wrapUnavailable(err error) error {
	return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
}
