// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medineo/erp-auth/models"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name     string
		data     any
		status   int
		wantBody string
	}{
		{name: "role response", data: map[string]string{"role": "administrator"}, status: http.StatusOK, wantBody: `{"role":"administrator"}`},
		{name: "auth result", data: models.AuthResult{AccountID: 3, Role: models.RoleStandard}, status: http.StatusOK, wantBody: `{"account_id":3,"role":"standard"}`},
		{name: "nil", data: nil, status: http.StatusOK, wantBody: "null"},
		{name: "custom status", data: struct{}{}, status: http.StatusCreated, wantBody: "{}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			n, err := WriteJSON(w, tt.data, tt.status)
			require.NoError(t, err)

			assert.Equal(t, len(tt.wantBody), n)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestWriteJSON_InvalidData(t *testing.T) {
	w := httptest.NewRecorder()

	// channels cannot be marshaled to JSON
	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestWriteJSON_AccountHidesSecretHash(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, models.Account{AccountID: 1, Identifier: "admin@medineo.com", SecretHash: "$2a$04$hash"}, http.StatusOK)
	require.NoError(t, err)

	assert.NotContains(t, w.Body.String(), "$2a$04$hash")
	assert.NotContains(t, w.Body.String(), "secret")
}
