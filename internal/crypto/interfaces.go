// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher computes and checks one-way password hashes.
//
// Encoded hashes are self-describing: they carry the algorithm, its cost
// parameters and the random salt, so verification never needs anything but
// the candidate plaintext and the stored string.
type PasswordHasher interface {
	// Hash returns a freshly salted encoded hash of plaintext.
	Hash(plaintext string) (string, error)

	// Verify recomputes the hash of plaintext with the parameters embedded
	// in encoded and compares both in constant time. Malformed or
	// unrecognised encodings yield false.
	Verify(plaintext, encoded string) bool

	// Recognizes reports whether encoded is a well-formed hash this hasher
	// can verify.
	Recognizes(encoded string) bool
}
