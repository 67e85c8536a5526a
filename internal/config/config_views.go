// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"path/filepath"
	"time"
)

// SettingsDBFileName is the sqlite file used when no DSN is configured.
const SettingsDBFileName = "settings.db"

// DaemonConfig is the subset of settings used by cmd/vaultd.
type DaemonConfig struct {
	App     App
	Storage Storage
	Server  Server
	Bridge  Bridge
	Vault   Vault
}

// ClientConfig is the subset of settings used by cmd/vault.
type ClientConfig struct {
	TokenSignKey  string
	TokenIssuer   string
	TokenDuration time.Duration
	HashKey       string
	Version       string

	Client Client
}

// GetDaemonConfig loads and validates the daemon view.
func GetDaemonConfig() (*DaemonConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	daemonCfg := cfg.daemonView()
	return daemonCfg, daemonCfg.validate()
}

// GetClientConfig loads and validates the client view.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := cfg.clientView()
	return clientCfg, clientCfg.validate()
}

func (cfg *StructuredConfig) daemonView() *DaemonConfig {
	storage := cfg.Storage
	if storage.DB.DSN == "" && storage.VaultDir != "" {
		storage.DB.DSN = filepath.Join(storage.VaultDir, SettingsDBFileName)
	}

	return &DaemonConfig{
		App:     cfg.App,
		Storage: storage,
		Server:  cfg.Server,
		Bridge:  cfg.Bridge,
		Vault:   cfg.Vault,
	}
}

func (cfg *StructuredConfig) clientView() *ClientConfig {
	return &ClientConfig{
		TokenSignKey:  cfg.App.TokenSignKey,
		TokenIssuer:   cfg.App.TokenIssuer,
		TokenDuration: cfg.App.TokenDuration,
		HashKey:       cfg.App.HashKey,
		Version:       cfg.App.Version,
		Client:        cfg.Client,
	}
}
