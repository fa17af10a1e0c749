// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/medineo/erp-auth/models"
)

// CredentialService decides whether an identifier and a candidate password
// belong together.
type CredentialService interface {
	// FindAccount looks up the account with exactly this identifier. A
	// missing account is reported as found == false with a nil error; only
	// store faults produce an error (wrapping [ErrStoreUnavailable]).
	FindAccount(ctx context.Context, identifier string) (account models.Account, found bool, err error)

	// Verify reports whether candidate hashes to storedHash under the
	// parameters embedded in storedHash, compared in constant time.
	Verify(candidate, storedHash string) bool

	// Authenticate returns the account's role when candidate matches, and
	// otherwise [ErrInvalidCredentials] or [ErrStoreUnavailable].
	Authenticate(ctx context.Context, identifier, candidate string) (models.AuthResult, error)

	// Diagnose runs the same checks as Authenticate and reports them as
	// booleans only.
	Diagnose(ctx context.Context, identifier, candidate string) (models.Diagnosis, error)
}

// AccountService provisions accounts and rotates their passwords.
type AccountService interface {
	Provision(ctx context.Context, identifier, plaintext string, role models.Role) (models.Account, error)
	RotateSecret(ctx context.Context, identifier, plaintext string) error
}

// TokenService issues and validates session tokens.
type TokenService interface {
	CreateToken(ctx context.Context, result models.AuthResult) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AppInfoService exposes build metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
