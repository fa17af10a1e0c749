// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptHasher implements [PasswordHasher] with bcrypt. bcrypt generates
// and embeds its own 16-byte salt; CompareHashAndPassword compares digests
// with crypto/subtle.
// maxBcryptPasswordBytes is bcrypt's input limit. Longer candidates would be
// silently truncated by the algorithm, so they never verify.
const maxBcryptPasswordBytes = 72

type bcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a bcrypt [PasswordHasher] using the given work
// factor. Costs outside [bcrypt.MinCost, bcrypt.MaxCost] are rejected at
// hashing time.
func NewBcryptHasher(cost int) PasswordHasher {
	return &bcryptHasher{cost: cost}
}

func (h *bcryptHasher) Hash(plaintext string) (string, error) {
	if h.cost < bcrypt.MinCost || h.cost > bcrypt.MaxCost {
		return "", fmt.Errorf("bcrypt cost %d out of range", h.cost)
	}

	if len(plaintext) > maxBcryptPasswordBytes {
		return "", bcrypt.ErrPasswordTooLong
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password with bcrypt: %w", err)
	}

	return string(hash), nil
}

func (h *bcryptHasher) Verify(plaintext, encoded string) bool {
	if len(plaintext) > maxBcryptPasswordBytes {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(encoded), []byte(plaintext)) == nil
}

func (h *bcryptHasher) Recognizes(encoded string) bool {
	_, err := bcrypt.Cost([]byte(encoded))
	return err == nil
}
