// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/medineo/erp-auth/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/account_repository_mock.go -package=mock

// AccountRepository is the persistence contract of the credential service.
//
// Identifiers are matched exactly, byte for byte: "Admin@medineo.com" and
// "admin@medineo.com" are different accounts.
type AccountRepository interface {
	// FindAccountByIdentifier returns the single account whose identifier
	// equals identifier. It returns [ErrAccountNotFound] when there is none
	// and an error wrapping [ErrStoreUnavailable] on any store fault.
	FindAccountByIdentifier(ctx context.Context, identifier string) (models.Account, error)

	// CreateAccount persists a new account and returns it with the
	// store-assigned AccountID and timestamps. It returns
	// [ErrIdentifierAlreadyExists] when the identifier is taken.
	CreateAccount(ctx context.Context, account models.Account) (models.Account, error)

	// UpdateSecretHash replaces the stored hash of the account identified by
	// identifier. It returns [ErrAccountNotFound] when there is no such
	// account.
	UpdateSecretHash(ctx context.Context, identifier, secretHash string) error
}
