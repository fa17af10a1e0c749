// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/medineo/erp-auth/models"
)

const accountsTable = "accounts"

var accountColumns = []string{
	"id",
	"identifier",
	"secret_hash",
	"role",
	"created_at",
	"updated_at",
}

// buildFindAccountQuery builds the single-key lookup of an account by its
// exact identifier.
func buildFindAccountQuery(b sq.StatementBuilderType, identifier string) (string, []any, error) {
	query, args, err := b.
		Select(accountColumns...).
		From(accountsTable).
		Where(sq.Eq{"identifier": identifier}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildCreateAccountQuery builds the INSERT of a new account. The statement
// returns the store-assigned id.
func buildCreateAccountQuery(b sq.StatementBuilderType, account models.Account) (string, []any, error) {
	query, args, err := b.
		Insert(accountsTable).
		Columns("identifier", "secret_hash", "role", "created_at", "updated_at").
		Values(account.Identifier, account.SecretHash, string(account.Role), account.CreatedAt, account.UpdatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpdateSecretHashQuery builds the rotation of an account's stored hash.
func buildUpdateSecretHashQuery(b sq.StatementBuilderType, identifier, secretHash string, updatedAt time.Time) (string, []any, error) {
	query, args, err := b.
		Update(accountsTable).
		Set("secret_hash", secretHash).
		Set("updated_at", updatedAt).
		Where(sq.Eq{"identifier": identifier}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
