// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/medineo/erp-auth/internal/logger"
	"github.com/medineo/erp-auth/internal/utils"
)

// auth is an HTTP middleware that enforces session-token authentication.
//
// It extracts the bearer token from the "Authorization" header, validates
// it via [service.TokenService.ParseToken] and stores the token's account ID
// and role in the request context (see [utils.WithSession]) before
// delegating to the next handler.
//
// Requests without a header, with a malformed header, or with an invalid or
// expired token are rejected with 401 Unauthorized.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Debug().Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Debug().Err(err).Send()
			http.Error(w, ErrInvalidAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.TokenService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Debug().Err(err).Msg("error occurred during parsing token")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		ctx = utils.WithSession(ctx, token.AccountID, token.Role)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
