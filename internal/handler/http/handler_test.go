// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/medineo/erp-auth/internal/config"
	"github.com/medineo/erp-auth/internal/logger"
	"github.com/medineo/erp-auth/internal/service"
	"github.com/medineo/erp-auth/models"
)

// ---- Mock: CredentialService ----

// mockCredentialService implements service.CredentialService for unit tests.
// Only Authenticate is used by the handlers.
type mockCredentialService struct {
	authenticateFn func(ctx context.Context, identifier, candidate string) (models.AuthResult, error)
}

func (m *mockCredentialService) FindAccount(context.Context, string) (models.Account, bool, error) {
	return models.Account{}, false, nil
}

func (m *mockCredentialService) Verify(string, string) bool {
	return false
}

func (m *mockCredentialService) Authenticate(ctx context.Context, identifier, candidate string) (models.AuthResult, error) {
	return m.authenticateFn(ctx, identifier, candidate)
}

func (m *mockCredentialService) Diagnose(context.Context, string, string) (models.Diagnosis, error) {
	return models.Diagnosis{}, nil
}

// ---- Mock: TokenService ----

type mockTokenService struct {
	createTokenFn func(ctx context.Context, result models.AuthResult) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockTokenService) CreateToken(ctx context.Context, result models.AuthResult) (models.Token, error) {
	return m.createTokenFn(ctx, result)
}

func (m *mockTokenService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// ---- Mock: AppInfoService ----

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(context.Context) string {
	return m.version
}

// ---- Helpers ----

func newTestHandler(t *testing.T, services *service.Services) *Handler {
	t.Helper()
	if services.AppInfoService == nil {
		services.AppInfoService = &mockAppInfoService{version: "test"}
	}
	return NewHandler(services, config.Server{RequestTimeout: 5 * time.Second}, logger.Nop())
}

// injectNopLogger puts a disabled zerolog logger in the request context the
// same way withTraceID does.
func injectNopLogger(r *http.Request) *http.Request {
	l := zerolog.Nop()
	return r.WithContext(l.WithContext(r.Context()))
}

func TestNewHandler(t *testing.T) {
	services := &service.Services{}
	h := NewHandler(services, config.Server{RequestTimeout: time.Second}, logger.Nop())

	assert.Same(t, services, h.services)
	assert.Equal(t, time.Second, h.requestTimeout)
	assert.NotNil(t, h.validate)
	assert.NotNil(t, h.traceIDs)
}
