// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when the merged configuration is incomplete or
// invalid.
var (
	// ErrInvalidStorageConfigs indicates a missing account store DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid hashing or token settings.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates a missing listen address or
	// non-positive timeouts.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
