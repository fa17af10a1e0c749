// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/medineo/erp-auth/internal/config"
	"github.com/medineo/erp-auth/internal/logger"
	"github.com/medineo/erp-auth/internal/service"
	"github.com/medineo/erp-auth/internal/utils"
)

type Handler struct {
	services *service.Services

	validate       *validator.Validate
	traceIDs       *utils.UUIDGenerator
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		validate:       utils.NewValidator(),
		traceIDs:       utils.NewUUIDGenerator(),
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
