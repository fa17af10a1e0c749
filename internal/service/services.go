// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic of the credential service: the
// credential verifier, account provisioning, session tokens and build
// metadata.
package service

import (
	"fmt"

	"github.com/medineo/erp-auth/internal/config"
	"github.com/medineo/erp-auth/internal/crypto"
	"github.com/medineo/erp-auth/internal/logger"
	"github.com/medineo/erp-auth/internal/store"
)

type Services struct {
	CredentialService CredentialService
	AccountService    AccountService
	TokenService      TokenService
	AppInfoService    AppInfoService
}

// NewServices builds every service over the given storages and hasher.
func NewServices(storages *store.Storages, hasher crypto.PasswordHasher, cfg config.App, logger *logger.Logger) (*Services, error) {
	credentialService, err := NewCredentialService(storages.AccountRepository, hasher, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating credential service: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		CredentialService: credentialService,
		AccountService:    NewAccountService(storages.AccountRepository, hasher, logger),
		TokenService:      NewTokenService(cfg, logger),
		AppInfoService:    appInfoService,
	}, nil
}
