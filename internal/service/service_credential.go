// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"

	"github.com/medineo/erp-auth/internal/config"
	"github.com/medineo/erp-auth/internal/crypto"
	"github.com/medineo/erp-auth/internal/logger"
	"github.com/medineo/erp-auth/internal/store"
	"github.com/medineo/erp-auth/models"
)

// credentialService is the concrete implementation of [CredentialService].
//
// All fields are read-only after construction, so one instance serves any
// number of concurrent requests.
type credentialService struct {
	accounts store.AccountRepository
	hasher   crypto.PasswordHasher

	// dummyHash is verified against when the identifier is unknown, so an
	// absent account costs the same hash computation as a present one.
	dummyHash string

	// diagnostics enables one boolean-only log event per authentication.
	diagnostics bool

	logger *logger.Logger
}

// NewCredentialService constructs a [CredentialService] over the injected
// account store and password hasher.
func NewCredentialService(accounts store.AccountRepository, hasher crypto.PasswordHasher, cfg config.App, logger *logger.Logger) (CredentialService, error) {
	dummyHash, err := hasher.Hash(rand.Text())
	if err != nil {
		return nil, fmt.Errorf("%w: computing dummy hash: %w", ErrHashingFailed, err)
	}

	if cfg.CredentialDiagnostics {
		logger.Warn().Msg("credential diagnostics enabled")
	}

	return &credentialService{
		accounts:    accounts,
		hasher:      hasher,
		dummyHash:   dummyHash,
		diagnostics: cfg.CredentialDiagnostics,
		logger:      logger,
	}, nil
}

// FindAccount implements [CredentialService].
func (s *credentialService) FindAccount(ctx context.Context, identifier string) (models.Account, bool, error) {
	account, err := s.accounts.FindAccountByIdentifier(ctx, identifier)
	if errors.Is(err, store.ErrAccountNotFound) {
		return models.Account{}, false, nil
	}
	if err != nil {
		return models.Account{}, false, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return account, true, nil
}

// Verify implements [CredentialService].
func (s *credentialService) Verify(candidate, storedHash string) bool {
	return s.hasher.Verify(candidate, storedHash)
}

// Authenticate implements [CredentialService].
//
// Every credential failure returns the same [ErrInvalidCredentials] value.
// Store faults return an error wrapping [ErrStoreUnavailable] and are never
// reported as bad credentials.
func (s *credentialService) Authenticate(ctx context.Context, identifier, candidate string) (models.AuthResult, error) {
	log := logger.FromContext(ctx)

	if identifier == "" || candidate == "" {
		log.Debug().Msg("empty identifier or password")
		return models.AuthResult{}, ErrInvalidCredentials
	}

	account, diagnosis, err := s.check(ctx, identifier, candidate)
	if err != nil {
		log.Err(err).Str("func", "*credentialService.Authenticate").Msg("account lookup failed")
		return models.AuthResult{}, err
	}

	if s.diagnostics {
		log.Info().
			Bool("account_found", diagnosis.AccountFound).
			Bool("hash_recognized", diagnosis.HashRecognized).
			Bool("secret_matches", diagnosis.SecretMatches).
			Msg("credential diagnosis")
	}

	if !diagnosis.SecretMatches {
		return models.AuthResult{}, ErrInvalidCredentials
	}

	log.Debug().Int64("account_id", account.AccountID).Msg("account authenticated")

	return models.AuthResult{AccountID: account.AccountID, Role: account.Role}, nil
}

// Diagnose implements [CredentialService].
func (s *credentialService) Diagnose(ctx context.Context, identifier, candidate string) (models.Diagnosis, error) {
	_, diagnosis, err := s.check(ctx, identifier, candidate)
	return diagnosis, err
}

// check looks the account up and verifies candidate against its hash, or
// against the dummy hash when the account does not exist.
func (s *credentialService) check(ctx context.Context, identifier, candidate string) (models.Account, models.Diagnosis, error) {
	account, found, err := s.FindAccount(ctx, identifier)
	if err != nil {
		return models.Account{}, models.Diagnosis{}, err
	}

	if !found {
		s.Verify(candidate, s.dummyHash)
		return models.Account{}, models.Diagnosis{}, nil
	}

	return account, models.Diagnosis{
		AccountFound:   true,
		HashRecognized: s.hasher.Recognizes(account.SecretHash),
		SecretMatches:  s.Verify(candidate, account.SecretHash),
	}, nil
}
