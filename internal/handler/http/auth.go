// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/medineo/erp-auth/internal/app"
	"github.com/medineo/erp-auth/internal/logger"
	"github.com/medineo/erp-auth/internal/utils"
	"github.com/medineo/erp-auth/models"
)

// maxLoginBodyBytes bounds the login payload.
const maxLoginBodyBytes = 4 << 10

type loginResponse struct {
	Role models.Role `json:"role"`
}

// login authenticates the request body's credentials. On success it answers
// 200 with the session token in the Authorization header and the account's
// role in the body. Unknown accounts and wrong passwords get the same 401.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxLoginBodyBytes)).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		ev := log.Debug()
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				ev = ev.Str(fe.Field(), fe.Tag())
			}
		}
		ev.Msg("invalid login payload")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	result, err := h.services.CredentialService.Authenticate(ctx, req.Login, req.Password)
	if err != nil {
		status := statusFromError(err)
		if status == http.StatusUnauthorized {
			log.Info().Msg("login rejected")
		} else {
			log.Err(err).Msg("unexpected error occurred during login")
		}
		http.Error(w, messageFromStatus(status), status)
		return
	}

	token, err := h.services.TokenService.CreateToken(ctx, result)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	log.Debug().Int64("account_id", result.AccountID).Msg("account logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	if _, err = utils.WriteJSON(w, loginResponse{Role: result.Role}, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing login response")
	}
}

// session answers with the account ID and role carried by the request's
// session token.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	accountID, okID := utils.GetAccountIDFromContext(ctx)
	role, okRole := utils.GetRoleFromContext(ctx)
	if !okID || !okRole {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	if _, err := utils.WriteJSON(w, models.AuthResult{AccountID: accountID, Role: role}, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing session response")
	}
}
