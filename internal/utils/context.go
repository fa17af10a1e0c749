// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, session token generation
// and validation, and UUID generation.
package utils

import (
	"context"

	"github.com/medineo/erp-auth/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

var (
	// AccountIDCtxKey is the key under which the authenticated account ID
	// is stored in the request context.
	AccountIDCtxKey = contextKey("accountID")

	// RoleCtxKey is the key under which the authenticated account's role
	// is stored in the request context.
	RoleCtxKey = contextKey("role")
)

// WithSession returns a copy of ctx carrying the account ID and role of an
// authenticated session.
func WithSession(ctx context.Context, accountID int64, role models.Role) context.Context {
	ctx = context.WithValue(ctx, AccountIDCtxKey, accountID)
	return context.WithValue(ctx, RoleCtxKey, role)
}

// GetAccountIDFromContext retrieves the account identifier from the context.
//
// Returns the account ID and an ok flag:
//   - ok == true: value is found and has the correct int64 type
//   - ok == false: value is missing or has an unexpected type
func GetAccountIDFromContext(ctx context.Context) (int64, bool) {
	accountID, ok := ctx.Value(AccountIDCtxKey).(int64)
	return accountID, ok
}

// GetRoleFromContext retrieves the session role from the context.
func GetRoleFromContext(ctx context.Context) (models.Role, bool) {
	role, ok := ctx.Value(RoleCtxKey).(models.Role)
	return role, ok
}
