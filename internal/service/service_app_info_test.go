// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medineo/erp-auth/internal/config"
	"github.com/medineo/erp-auth/internal/logger"
)

func TestNewAppInfoService_EmptyVersion_ReturnsError(t *testing.T) {
	svc, err := NewAppInfoService(config.App{}, logger.Nop())

	assert.Nil(t, svc)
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}

func TestGetAppVersion(t *testing.T) {
	for _, version := range []string{"dev", "1.0.0", "v1.2.3-beta+build.42"} {
		svc, err := NewAppInfoService(config.App{Version: version}, logger.Nop())
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		assert.Equal(t, version, svc.GetAppVersion(ctx))
		assert.Equal(t, version, svc.GetAppVersion(context.Background()), "version must not change between calls")
	}
}
