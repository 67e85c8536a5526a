// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-vault-bridge/internal/config"
	"github.com/MKhiriev/go-vault-bridge/internal/crypto"
	"github.com/MKhiriev/go-vault-bridge/internal/logger"
	"github.com/MKhiriev/go-vault-bridge/internal/store"
)

// Services groups the daemon services.
type Services struct {
	VaultService     VaultService
	ClipboardService ClipboardService
	AppInfoService   AppInfoService
	AuthService      AuthService
	HealthService    HealthService
}

func NewServices(storages *store.Storages, cipher crypto.VaultCipher, cfg config.DaemonConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		VaultService:     NewVaultService(storages, cipher, cfg.Vault, logger),
		ClipboardService: NewClipboardService(logger),
		AppInfoService:   appInfo,
		AuthService:      NewAuthService(cfg.App, logger),
		HealthService:    NewHealthService(storages.Settings, logger),
	}, nil
}
