// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// validate checks that the final merged [StructuredConfig] is sufficient to
// run the HTTP server.
func (cfg *StructuredConfig) validate() error {
	if err := cfg.validateTooling(); err != nil {
		return err
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 || cfg.Server.ShutdownTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token sign key, issuer and duration are required", ErrInvalidAppConfigs)
	}

	return nil
}

// validateTooling checks the settings needed to reach the account store and
// compute password hashes.
func (cfg *StructuredConfig) validateTooling() error {
	if strings.TrimSpace(cfg.Storage.DB.DSN) == "" {
		return ErrInvalidStorageConfigs
	}

	switch cfg.App.PasswordHashAlgorithm {
	case HashAlgorithmBcrypt:
		if cfg.App.BcryptCost < bcrypt.MinCost || cfg.App.BcryptCost > bcrypt.MaxCost {
			return fmt.Errorf("%w: bcrypt cost %d out of range", ErrInvalidAppConfigs, cfg.App.BcryptCost)
		}
	case HashAlgorithmArgon2id:
		if cfg.App.Argon2Time == 0 || cfg.App.Argon2MemoryKiB == 0 || cfg.App.Argon2Threads == 0 {
			return fmt.Errorf("%w: argon2id parameters must be positive", ErrInvalidAppConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown password hash algorithm %q", ErrInvalidAppConfigs, cfg.App.PasswordHashAlgorithm)
	}

	return nil
}
