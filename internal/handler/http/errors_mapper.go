// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/medineo/erp-auth/internal/app"
	"github.com/medineo/erp-auth/internal/service"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrStoreUnavailable:        http.StatusServiceUnavailable,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,
	service.ErrHashingFailed:           http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromStatus returns the response body for an error status. Bad
// credentials always read the same, whatever the cause.
func messageFromStatus(status int) string {
	if status == http.StatusUnauthorized {
		return app.MsgInvalidLoginPassword
	}
	return http.StatusText(status)
}
