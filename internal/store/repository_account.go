// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/medineo/erp-auth/internal/logger"
	"github.com/medineo/erp-auth/models"
)

// accountRepository is the SQL implementation of [AccountRepository]. It
// works on both PostgreSQL and SQLite; the dialect differences live in
// [DB].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions. Secret hashes
// are never logged.
type accountRepository struct {
	logger *logger.Logger
	db     *DB
	now    func() time.Time
}

// NewAccountRepository constructs an [AccountRepository] backed by the
// provided database connection and logger.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Str("dialect", db.dialect).Msg("creating account repository")
	return &accountRepository{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

// FindAccountByIdentifier implements [AccountRepository].
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrAccountNotFound].
//   - Any other driver or scan error → wrapped [ErrStoreUnavailable].
//   - A stored role outside [models.Role] values → wrapped [ErrStoreUnavailable].
func (r *accountRepository) FindAccountByIdentifier(ctx context.Context, identifier string) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindAccountQuery(r.db.builder(), identifier)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.FindAccountByIdentifier").Msg("error building query")
		return models.Account{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	var (
		account models.Account
		role    string
	)
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&account.AccountID, &account.Identifier, &account.SecretHash, &role, &account.CreatedAt, &account.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Account{}, ErrAccountNotFound
	}
	if err != nil {
		class := r.db.errorClassificator.Classify(err)
		log.Err(err).Str("func", "*accountRepository.FindAccountByIdentifier").
			Stringer("classification", class).
			Msg("error reading account")
		return models.Account{}, fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, ErrScanningRow, err)
	}
	if account.Role, err = models.ParseRole(role); err != nil {
		log.Error().Str("func", "*accountRepository.FindAccountByIdentifier").
			Int64("account_id", account.AccountID).
			Msg("account has an unknown role")
		return models.Account{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return account, nil
}

// CreateAccount implements [AccountRepository].
//
// Error handling:
//   - unique violation → [ErrIdentifierAlreadyExists].
//   - Any other driver error → wrapped [ErrStoreUnavailable].
func (r *accountRepository) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	now := r.now().UTC().Truncate(time.Microsecond)
	account.CreatedAt = now
	account.UpdatedAt = now

	query, args, err := buildCreateAccountQuery(r.db.builder(), account)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("error building query")
		return models.Account{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&account.AccountID); err != nil {
		class := r.db.errorClassificator.Classify(err)
		if class == Duplicate {
			return models.Account{}, ErrIdentifierAlreadyExists
		}
		log.Err(err).Str("func", "*accountRepository.CreateAccount").
			Stringer("classification", class).
			Msg("error inserting account")
		return models.Account{}, fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, ErrExecutingStatement, err)
	}

	log.Info().Str("func", "*accountRepository.CreateAccount").
		Int64("account_id", account.AccountID).
		Str("role", account.Role.String()).
		Msg("account created")

	return account, nil
}

// UpdateSecretHash implements [AccountRepository].
func (r *accountRepository) UpdateSecretHash(ctx context.Context, identifier, secretHash string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateSecretHashQuery(r.db.builder(), identifier, secretHash, r.now().UTC().Truncate(time.Microsecond))
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.UpdateSecretHash").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		class := r.db.errorClassificator.Classify(err)
		log.Err(err).Str("func", "*accountRepository.UpdateSecretHash").
			Stringer("classification", class).
			Msg("error updating secret hash")
		return fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	if affected == 0 {
		return ErrAccountNotFound
	}

	return nil
}
