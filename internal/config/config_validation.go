// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

func (cfg *DaemonConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token sign key and duration are required", ErrInvalidAppConfigs)
	}
	if cfg.App.DeviceSecret == "" {
		return fmt.Errorf("%w: device secret is required", ErrInvalidAppConfigs)
	}

	if cfg.Storage.VaultDir == "" || cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, ":memory:") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Bridge.QueueSize <= 0 || cfg.Bridge.Workers <= 0 {
		return ErrInvalidBridgeConfigs
	}

	if cfg.Vault.AutoLockTimeout < 0 || cfg.Vault.AutoLockCheckInterval <= 0 {
		return ErrInvalidVaultConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.TokenSignKey == "" || cfg.TokenDuration <= 0 {
		return fmt.Errorf("%w: token sign key and duration are required", ErrInvalidAppConfigs)
	}

	if cfg.Client.DaemonAddress == "" || cfg.Client.RequestTimeout <= 0 {
		return ErrInvalidClientConfigs
	}

	return nil
}
