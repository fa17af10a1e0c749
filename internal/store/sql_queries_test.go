// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medineo/erp-auth/models"
)

func Test_buildFindAccountQuery(t *testing.T) {
	tests := []struct {
		name        string
		placeholder sq.PlaceholderFormat
		wantWhere   string
	}{
		{name: "postgres", placeholder: sq.Dollar, wantWhere: "WHERE identifier = $1"},
		{name: "sqlite", placeholder: sq.Question, wantWhere: "WHERE identifier = ?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildFindAccountQuery(sq.StatementBuilder.PlaceholderFormat(tt.placeholder), "admin@medineo.com")
			require.NoError(t, err)

			assert.Equal(t, []any{"admin@medineo.com"}, args)
			assert.True(t, strings.HasPrefix(query, "SELECT "+strings.Join(accountColumns, ", ")+" FROM accounts"), query)
			assert.Contains(t, query, tt.wantWhere)
		})
	}
}

func Test_buildCreateAccountQuery(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	account := models.Account{
		Identifier: "clerk@medineo.com",
		SecretHash: "$argon2id$hash",
		Role:       models.RoleStandard,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	query, args, err := buildCreateAccountQuery(sq.StatementBuilder.PlaceholderFormat(sq.Dollar), account)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(query, "INSERT INTO accounts"), query)
	assert.Contains(t, query, "$5")
	assert.True(t, strings.HasSuffix(query, "RETURNING id"), query)
	assert.Equal(t, []any{"clerk@medineo.com", "$argon2id$hash", "standard", now, now}, args)
}

func Test_buildUpdateSecretHashQuery(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	query, args, err := buildUpdateSecretHashQuery(sq.StatementBuilder.PlaceholderFormat(sq.Question), "clerk@medineo.com", "new-hash", now)
	require.NoError(t, err)

	assert.Equal(t, "UPDATE accounts SET secret_hash = ?, updated_at = ? WHERE identifier = ?", query)
	assert.Equal(t, []any{"new-hash", now, "clerk@medineo.com"}, args)
}
