// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrInvalidHash is returned when an encoded hash cannot be parsed.
	ErrInvalidHash = errors.New("encoded hash is not in the expected format")

	// ErrIncompatibleVersion is returned for argon2 hashes produced by a
	// different argon2 version.
	ErrIncompatibleVersion = errors.New("incompatible version of argon2")

	// ErrUnknownAlgorithm is returned by [NewPasswordHasher] for an
	// unsupported algorithm name.
	ErrUnknownAlgorithm = errors.New("unknown password hash algorithm")
)
