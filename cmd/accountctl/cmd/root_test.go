// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupStore points the tooling configuration at a fresh SQLite file with a
// cheap bcrypt cost.
func setupStore(t *testing.T) {
	t.Helper()

	t.Setenv("STORAGE_DB_DATABASE_URI", "sqlite://"+filepath.Join(t.TempDir(), "accounts.db"))
	t.Setenv("APP_PASSWORD_HASH_ALGORITHM", "bcrypt")
	t.Setenv("APP_BCRYPT_COST", "4")
	t.Setenv("APP_LOG_LEVEL", "error")
	t.Setenv("CONFIG", "")
}

func runCmd(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)

	err := root.ExecuteContext(context.Background())
	return stdout.String(), err
}

func TestAccountctl_CreateCheckRotate(t *testing.T) {
	setupStore(t)

	out, err := runCmd(t, "Admin@123\n", "create", "--email", "admin@medineo.com", "--role", "administrator")
	require.NoError(t, err)
	assert.Contains(t, out, "Account created successfully!")
	assert.Contains(t, out, "Email: admin@medineo.com")
	assert.Contains(t, out, "Role: administrator")

	out, err = runCmd(t, "Admin@123\n", "check", "--email", "admin@medineo.com")
	require.NoError(t, err)
	assert.Equal(t, "account_found: true\nhash_recognized: true\nsecret_matches: true\n", out)

	out, err = runCmd(t, "wrongpass\n", "check", "--email", "admin@medineo.com")
	require.NoError(t, err)
	assert.Equal(t, "account_found: true\nhash_recognized: true\nsecret_matches: false\n", out)

	out, err = runCmd(t, "N3w-Secret!\n", "rotate", "--email", "admin@medineo.com")
	require.NoError(t, err)
	assert.Contains(t, out, "rotated")

	out, err = runCmd(t, "N3w-Secret!\n", "check", "--email", "admin@medineo.com")
	require.NoError(t, err)
	assert.Contains(t, out, "secret_matches: true")

	out, err = runCmd(t, "Admin@123\n", "check", "--email", "admin@medineo.com")
	require.NoError(t, err)
	assert.Contains(t, out, "secret_matches: false")
}

func TestAccountctl_CheckUnknownAccount(t *testing.T) {
	setupStore(t)

	out, err := runCmd(t, "Admin@123\n", "check", "--email", "nobody@medineo.com")

	require.NoError(t, err)
	assert.Equal(t, "account_found: false\nhash_recognized: false\nsecret_matches: false\n", out)
	assert.NotContains(t, out, "Admin@123")
}

func TestAccountctl_Errors(t *testing.T) {
	setupStore(t)

	_, err := runCmd(t, "Admin@123\n", "create", "--email", "admin@medineo.com", "--role", "administrator")
	require.NoError(t, err)

	tests := []struct {
		name    string
		stdin   string
		args    []string
		wantErr string
	}{
		{
			name:    "duplicate account",
			stdin:   "Other@1234\n",
			args:    []string{"create", "--email", "admin@medineo.com"},
			wantErr: "failed to create account",
		},
		{
			name:    "unknown role",
			stdin:   "Admin@123\n",
			args:    []string{"create", "--email", "clerk@medineo.com", "--role", "root"},
			wantErr: "unknown role",
		},
		{
			name:    "empty password",
			stdin:   "\n",
			args:    []string{"create", "--email", "clerk@medineo.com"},
			wantErr: errEmptyPassword.Error(),
		},
		{
			name:    "short password",
			stdin:   "short\n",
			args:    []string{"create", "--email", "clerk@medineo.com"},
			wantErr: "failed to create account",
		},
		{
			name:    "rotate unknown account",
			stdin:   "N3w-Secret!\n",
			args:    []string{"rotate", "--email", "nobody@medineo.com"},
			wantErr: "failed to rotate password",
		},
		{
			name:    "missing email",
			stdin:   "Admin@123\n",
			args:    []string{"check"},
			wantErr: `required flag(s) "email" not set`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCmd(t, tt.stdin, tt.args...)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			if secret := strings.TrimSpace(tt.stdin); secret != "" {
				assert.NotContains(t, err.Error(), secret)
			}
		})
	}
}

func TestAccountctl_MissingStoreConfig(t *testing.T) {
	t.Setenv("STORAGE_DB_DATABASE_URI", "")
	t.Setenv("CONFIG", "")

	_, err := runCmd(t, "Admin@123\n", "check", "--email", "admin@medineo.com")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestReadPassword(t *testing.T) {
	tests := []struct {
		name    string
		stdin   string
		want    string
		wantErr error
	}{
		{name: "line", stdin: "Admin@123\n", want: "Admin@123"},
		{name: "crlf", stdin: "Admin@123\r\n", want: "Admin@123"},
		{name: "no newline", stdin: "Admin@123", want: "Admin@123"},
		{name: "inner spaces kept", stdin: " pass word \n", want: " pass word "},
		{name: "empty", stdin: "", wantErr: errEmptyPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newRootCmd()
			c.SetIn(strings.NewReader(tt.stdin))

			got, err := readPassword(c)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
