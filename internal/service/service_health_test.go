// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-vault-bridge/internal/logger"
	"github.com/MKhiriev/go-vault-bridge/internal/mock"
	"github.com/MKhiriev/go-vault-bridge/internal/store"
)

func TestHealthService_Ping(t *testing.T) {
	ctrl := gomock.NewController(t)
	settings := mock.NewMockSettingsRepository(ctrl)
	svc := NewHealthService(settings, logger.Nop())

	settings.EXPECT().Ping(gomock.Any()).Return(nil)
	assert.NoError(t, svc.Ping(context.Background()))

	settings.EXPECT().Ping(gomock.Any()).Return(fmt.Errorf("ping: %w", store.ErrStorageUnavailable))
	assert.ErrorIs(t, svc.Ping(context.Background()), store.ErrStorageUnavailable)
}
