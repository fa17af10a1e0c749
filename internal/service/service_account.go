// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/medineo/erp-auth/internal/crypto"
	"github.com/medineo/erp-auth/internal/logger"
	"github.com/medineo/erp-auth/internal/store"
	"github.com/medineo/erp-auth/internal/utils"
	"github.com/medineo/erp-auth/models"
)

// Validation rules applied when an account is provisioned or its password
// rotated. The upper bound on passwords is bcrypt's input limit, counted in
// bytes.
const (
	identifierRules = "required,email,max=254"
	passwordRules   = "required,min=8,maxbytes=72"
)

// accountService is the concrete implementation of [AccountService]. It is
// the only writer of secret hashes; the credential flow only reads them.
type accountService struct {
	accounts store.AccountRepository
	hasher   crypto.PasswordHasher
	validate *validator.Validate
	logger   *logger.Logger
}

// NewAccountService constructs an [AccountService] over the injected account
// store and password hasher.
func NewAccountService(accounts store.AccountRepository, hasher crypto.PasswordHasher, logger *logger.Logger) AccountService {
	return &accountService{
		accounts: accounts,
		hasher:   hasher,
		validate: utils.NewValidator(),
		logger:   logger,
	}
}

// Provision creates an account whose secret hash is computed from plaintext
// with the configured algorithm.
//
// Returns the persisted account or:
//   - ErrInvalidDataProvided if the identifier is not an e-mail address, the
//     password is shorter than 8 or longer than 72 bytes, or role is unknown.
//   - ErrAccountExists if the identifier is taken.
//   - ErrStoreUnavailable on store faults.
func (s *accountService) Provision(ctx context.Context, identifier, plaintext string, role models.Role) (models.Account, error) {
	log := logger.FromContext(ctx)

	if err := s.validateCredentials(identifier, plaintext); err != nil {
		return models.Account{}, err
	}
	if !role.Valid() {
		return models.Account{}, fmt.Errorf("%w: unknown role %q", ErrInvalidDataProvided, role)
	}

	secretHash, err := s.hasher.Hash(plaintext)
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrHashingFailed, err)
	}

	account, err := s.accounts.CreateAccount(ctx, models.Account{
		Identifier: identifier,
		SecretHash: secretHash,
		Role:       role,
	})
	switch {
	case errors.Is(err, store.ErrIdentifierAlreadyExists):
		return models.Account{}, ErrAccountExists
	case err != nil:
		log.Err(err).Str("func", "*accountService.Provision").Msg("account creation ended with error")
		return models.Account{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	log.Info().Int64("account_id", account.AccountID).Str("role", role.String()).Msg("account provisioned")

	return account, nil
}

// RotateSecret replaces the account's secret hash with a fresh hash of
// plaintext.
//
// Returns ErrInvalidDataProvided, ErrAccountNotFound or ErrStoreUnavailable.
func (s *accountService) RotateSecret(ctx context.Context, identifier, plaintext string) error {
	log := logger.FromContext(ctx)

	if err := s.validateCredentials(identifier, plaintext); err != nil {
		return err
	}

	secretHash, err := s.hasher.Hash(plaintext)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrHashingFailed, err)
	}

	err = s.accounts.UpdateSecretHash(ctx, identifier, secretHash)
	switch {
	case errors.Is(err, store.ErrAccountNotFound):
		return ErrAccountNotFound
	case err != nil:
		log.Err(err).Str("func", "*accountService.RotateSecret").Msg("secret rotation ended with error")
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	log.Info().Msg("account secret rotated")

	return nil
}

func (s *accountService) validateCredentials(identifier, plaintext string) error {
	if err := s.validate.Var(identifier, identifierRules); err != nil {
		return fmt.Errorf("%w: identifier: %w", ErrInvalidDataProvided, err)
	}
	// the password itself must not end up in the error message
	if err := s.validate.Var(plaintext, passwordRules); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("%w: password fails %q rule", ErrInvalidDataProvided, verrs[0].Tag())
		}
		return fmt.Errorf("%w: password", ErrInvalidDataProvided)
	}
	return nil
}
