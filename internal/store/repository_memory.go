// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/medineo/erp-auth/internal/logger"
	"github.com/medineo/erp-auth/models"
)

// memoryAccountRepository is a process-local [AccountRepository]. Its
// contents are lost on restart; it serves tests and throwaway deployments.
type memoryAccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]models.Account
	nextID   int64
	now      func() time.Time
}

// NewMemoryAccountRepository returns an empty in-memory [AccountRepository].
func NewMemoryAccountRepository(logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating in-memory account repository")
	return &memoryAccountRepository{
		accounts: make(map[string]models.Account),
		now:      time.Now,
	}
}

// FindAccountByIdentifier implements [AccountRepository].
func (m *memoryAccountRepository) FindAccountByIdentifier(ctx context.Context, identifier string) (models.Account, error) {
	if err := ctx.Err(); err != nil {
		return models.Account{}, wrapUnavailable(err)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	account, ok := m.accounts[identifier]
	if !ok {
		return models.Account{}, ErrAccountNotFound
	}
	if !account.Role.Valid() {
		return models.Account{}, fmt.Errorf("%w: unknown role %q", ErrStoreUnavailable, account.Role)
	}
	return account, nil
}

// CreateAccount implements [AccountRepository].
func (m *memoryAccountRepository) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	if err := ctx.Err(); err != nil {
		return models.Account{}, wrapUnavailable(err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.accounts[account.Identifier]; exists {
		return models.Account{}, ErrIdentifierAlreadyExists
	}

	m.nextID++
	now := m.now().UTC()
	account.AccountID = m.nextID
	account.CreatedAt = now
	account.UpdatedAt = now
	m.accounts[account.Identifier] = account

	return account, nil
}

// UpdateSecretHash implements [AccountRepository].
func (m *memoryAccountRepository) UpdateSecretHash(ctx context.Context, identifier, secretHash string) error {
	if err := ctx.Err(); err != nil {
		return wrapUnavailable(err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	account, ok := m.accounts[identifier]
	if !ok {
		return ErrAccountNotFound
	}
	account.SecretHash = secretHash
	account.UpdatedAt = m.now().UTC()
	m.accounts[identifier] = account

	return nil
}
