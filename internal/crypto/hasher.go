// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the password hashing primitives of the credential
// service: bcrypt and Argon2id hashers and a composite that hashes with the
// configured algorithm while verifying hashes of any supported kind.
package crypto

import (
	"fmt"

	"github.com/medineo/erp-auth/internal/config"
)

// passwordHasher hashes with primary and verifies with whichever known
// hasher recognizes the stored encoding, so accounts hashed before an
// algorithm switch keep authenticating until their secret is rotated.
type passwordHasher struct {
	primary PasswordHasher
	known   []PasswordHasher
}

// NewPasswordHasher builds the composite [PasswordHasher] described by cfg.
func NewPasswordHasher(cfg config.App) (PasswordHasher, error) {
	bcryptH := NewBcryptHasher(cfg.BcryptCost)
	argonH := NewArgon2idHasher(cfg.Argon2Time, cfg.Argon2MemoryKiB, cfg.Argon2Threads)

	var primary PasswordHasher
	switch cfg.PasswordHashAlgorithm {
	case config.HashAlgorithmBcrypt:
		primary = bcryptH
	case config.HashAlgorithmArgon2id:
		primary = argonH
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, cfg.PasswordHashAlgorithm)
	}

	return &passwordHasher{
		primary: primary,
		known:   []PasswordHasher{bcryptH, argonH},
	}, nil
}

func (p *passwordHasher) Hash(plaintext string) (string, error) {
	return p.primary.Hash(plaintext)
}

func (p *passwordHasher) Verify(plaintext, encoded string) bool {
	for _, h := range p.known {
		if h.Recognizes(encoded) {
			return h.Verify(plaintext, encoded)
		}
	}
	return false
}

func (p *passwordHasher) Recognizes(encoded string) bool {
	for _, h := range p.known {
		if h.Recognizes(encoded) {
			return true
		}
	}
	return false
}
