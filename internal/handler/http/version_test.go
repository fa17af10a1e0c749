// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/medineo/erp-auth/internal/service"
)

func TestGetServerVersion(t *testing.T) {
	h := newTestHandler(t, &service.Services{AppInfoService: &mockAppInfoService{version: "v1.4.2"}})

	rr := httptest.NewRecorder()
	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/api/version", nil))
	h.getServerVersion(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/plain", rr.Header().Get("Content-Type"))
	assert.Equal(t, "v1.4.2", rr.Body.String())
}
