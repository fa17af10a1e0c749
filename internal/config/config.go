// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container of the
// credential service. It is populated by merging values from command-line
// flags, environment variables, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds password hashing parameters, token settings, diagnostics
	// and versioning.
	App App `envPrefix:"APP_"`

	// Storage holds configuration of the account store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Password hashing algorithms accepted in [App.PasswordHashAlgorithm].
const (
	HashAlgorithmBcrypt   = "bcrypt"
	HashAlgorithmArgon2id = "argon2id"
)

// App holds application-level configuration values that control password
// hashing, the diagnostic mode, session tokens and versioning.
type App struct {
	// PasswordHashAlgorithm selects the algorithm used for newly computed
	// hashes ("bcrypt" or "argon2id"). Stored hashes of either kind are
	// always verifiable.
	// Env: APP_PASSWORD_HASH_ALGORITHM
	PasswordHashAlgorithm string `env:"PASSWORD_HASH_ALGORITHM"`

	// BcryptCost is the bcrypt work factor.
	// Env: APP_BCRYPT_COST
	BcryptCost int `env:"BCRYPT_COST"`

	// Argon2Time is the argon2id iteration count.
	// Env: APP_ARGON2_TIME
	Argon2Time uint32 `env:"ARGON2_TIME"`

	// Argon2MemoryKiB is the argon2id memory cost in KiB.
	// Env: APP_ARGON2_MEMORY_KIB
	Argon2MemoryKiB uint32 `env:"ARGON2_MEMORY_KIB"`

	// Argon2Threads is the argon2id parallelism.
	// Env: APP_ARGON2_THREADS
	Argon2Threads uint8 `env:"ARGON2_THREADS"`

	// CredentialDiagnostics turns on boolean-only diagnostic logging of
	// every authentication attempt.
	// Env: APP_CREDENTIAL_DIAGNOSTICS
	CredentialDiagnostics bool `env:"CREDENTIAL_DIAGNOSTICS"`

	// TokenSignKey is the secret key used to sign and verify session tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued session token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a session token remains valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups the configuration for the account store.
type Storage struct {
	// DB holds the database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the account store.
type DB struct {
	// DSN selects the backend by its form:
	//   - "postgres://..." or "postgresql://..." selects PostgreSQL via pgx;
	//   - "sqlite://<path>" or "file:<path>" selects SQLite;
	//   - "memory" selects a process-local in-memory store.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the handling time of a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// defaults returns the values applied to every field left empty by all
// configuration sources.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			PasswordHashAlgorithm: HashAlgorithmBcrypt,
			BcryptCost:            12,
			Argon2Time:            1,
			Argon2MemoryKiB:       64 * 1024,
			Argon2Threads:         4,
			TokenIssuer:           "medineo-erp",
			TokenDuration:         time.Hour,
			Version:               "dev",
			LogLevel:              "info",
		},
		Server: Server{
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order (earlier
// sources win for non-zero fields):
//  1. Command-line flags
//  2. Environment variables
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags().
		withEnv().
		withJSON().
		build()
}

// GetToolingConfig loads the configuration used by operator tooling. Flags
// are left to the tool's own command-line parser; jsonFilePath, when set,
// takes precedence over the CONFIG environment variable. Only the settings
// needed to reach the store and hash passwords are validated.
func GetToolingConfig(jsonFilePath string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withValidator((*StructuredConfig).validateTooling).
		withJSONPath(jsonFilePath).
		withEnv().
		withJSON().
		build()
}
