// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
)

const (
	argon2idPrefix  = "$argon2id$"
	argon2SaltLen   = 16
	argon2KeyLen    = 32
	argon2MinKeyLen = 16
)

// argon2idHasher implements [PasswordHasher] with Argon2id. Hashes are
// encoded in the PHC string format:
//
//	$argon2id$v=19$m=<memory KiB>,t=<iterations>,p=<threads>$<salt>$<key>
//
// where salt and key are unpadded standard base64.
type argon2idHasher struct {
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// argon2Params are the cost parameters decoded from a stored hash.
type argon2Params struct {
	memory  uint32
	time    uint32
	threads uint8
}

// NewArgon2idHasher returns an Argon2id [PasswordHasher]. OWASP recommends
// at least t=1, m=64 MiB, p=4 for interactive logins.
func NewArgon2idHasher(time, memoryKiB uint32, threads uint8) PasswordHasher {
	return &argon2idHasher{
		argonTime:    time,
		argonMemory:  memoryKiB,
		argonThreads: threads,
		argonKeyLen:  argon2KeyLen,
	}
}

func (h *argon2idHasher) Hash(plaintext string) (string, error) {
	if h.argonTime == 0 || h.argonThreads == 0 {
		return "", fmt.Errorf("argon2id time and threads must be positive")
	}

	salt := make([]byte, argon2SaltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("error generating salt: %w", err)
	}

	key := argon2.IDKey([]byte(plaintext), salt, h.argonTime, h.argonMemory, h.argonThreads, h.argonKeyLen)

	return fmt.Sprintf("%sv=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2idPrefix,
		argon2.Version,
		h.argonMemory, h.argonTime, h.argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

func (h *argon2idHasher) Verify(plaintext, encoded string) bool {
	params, salt, key, err := decodeArgon2id(encoded)
	if err != nil {
		return false
	}

	candidate := argon2.IDKey([]byte(plaintext), salt, params.time, params.memory, params.threads, uint32(len(key)))

	return subtle.ConstantTimeCompare(key, candidate) == 1
}

func (h *argon2idHasher) Recognizes(encoded string) bool {
	_, _, _, err := decodeArgon2id(encoded)
	return err == nil
}

// decodeArgon2id parses a PHC-encoded argon2id hash.
func decodeArgon2id(encoded string) (argon2Params, []byte, []byte, error) {
	var params argon2Params

	if !strings.HasPrefix(encoded, argon2idPrefix) {
		return params, nil, nil, ErrInvalidHash
	}

	// "", "argon2id", "v=19", "m=..,t=..,p=..", salt, key
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 {
		return params, nil, nil, ErrInvalidHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return params, nil, nil, fmt.Errorf("%w: %w", ErrInvalidHash, err)
	}
	if version != argon2.Version {
		return params, nil, nil, ErrIncompatibleVersion
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &params.memory, &params.time, &params.threads); err != nil {
		return params, nil, nil, fmt.Errorf("%w: %w", ErrInvalidHash, err)
	}
	if params.time == 0 || params.threads == 0 {
		return params, nil, nil, ErrInvalidHash
	}

	salt, err := base64.RawStdEncoding.Strict().DecodeString(parts[4])
	if err != nil || len(salt) == 0 {
		return params, nil, nil, ErrInvalidHash
	}

	key, err := base64.RawStdEncoding.Strict().DecodeString(parts[5])
	if err != nil || len(key) < argon2MinKeyLen {
		return params, nil, nil, ErrInvalidHash
	}

	return params, salt, key, nil
}
