// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrInvalidCredentials is the single outcome of every failed
	// authentication: unknown identifier, wrong password, empty input or an
	// unusable stored hash. Callers cannot tell these cases apart.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrStoreUnavailable reports that the account store could not answer.
	// It is never returned for a credential mismatch.
	ErrStoreUnavailable = errors.New("account store unavailable")

	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrAccountExists       = errors.New("account already exists")
	ErrAccountNotFound     = errors.New("account not found")
	ErrHashingFailed       = errors.New("password hashing failed")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
