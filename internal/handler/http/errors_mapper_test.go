// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/medineo/erp-auth/internal/service"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "invalid credentials", err: service.ErrInvalidCredentials, want: http.StatusUnauthorized},
		{name: "wrapped invalid credentials", err: fmt.Errorf("login: %w", service.ErrInvalidCredentials), want: http.StatusUnauthorized},
		{name: "invalid token", err: service.ErrTokenIsExpiredOrInvalid, want: http.StatusUnauthorized},
		{name: "invalid data", err: service.ErrInvalidDataProvided, want: http.StatusBadRequest},
		{name: "store unavailable", err: fmt.Errorf("%w: connection refused", service.ErrStoreUnavailable), want: http.StatusServiceUnavailable},
		{name: "token creation", err: service.ErrTokenCreationFailed, want: http.StatusInternalServerError},
		{name: "hashing", err: service.ErrHashingFailed, want: http.StatusInternalServerError},
		{name: "unknown", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestMessageFromStatus(t *testing.T) {
	assert.Equal(t, "invalid login/password", messageFromStatus(http.StatusUnauthorized))
	assert.Equal(t, "Service Unavailable", messageFromStatus(http.StatusServiceUnavailable))
	assert.Equal(t, "Internal Server Error", messageFromStatus(http.StatusInternalServerError))
}
