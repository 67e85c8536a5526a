// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-vault-bridge/internal/logger"
	"github.com/MKhiriev/go-vault-bridge/internal/store"
)

type healthService struct {
	settings store.SettingsRepository

	logger *logger.Logger
}

func NewHealthService(settings store.SettingsRepository, logger *logger.Logger) HealthService {
	return &healthService{settings: settings, logger: logger}
}

func (s *healthService) Ping(ctx context.Context) error {
	if err := s.settings.Ping(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "healthService.Ping").Msg("settings store is unavailable")
		return err
	}
	return nil
}
