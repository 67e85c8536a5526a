// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-vault-bridge/internal/adapter"
	"github.com/MKhiriev/go-vault-bridge/internal/config"
	"github.com/MKhiriev/go-vault-bridge/internal/logger"
	"github.com/MKhiriev/go-vault-bridge/internal/tui"
	"github.com/MKhiriev/go-vault-bridge/models"
)

// ui is the part of the terminal UI the app drives.
type ui interface {
	Run(ctx context.Context) error
}

type App struct {
	vault adapter.VaultAdapter
	ui    ui

	logger *logger.Logger
}

// NewApp builds the daemon adapter and the terminal UI from cfg.
func NewApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	vault, err := adapter.NewHTTPVaultAdapter(*cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("create vault adapter: %w", err)
	}

	return &App{
		vault:  vault,
		ui:     tui.New(vault, cfg.Client, buildInfo, logger),
		logger: logger,
	}, nil
}

// Run logs the daemon version and blocks in the terminal UI. Leaving with
// Ctrl+C is not an error.
func (a *App) Run(ctx context.Context) error {
	version, err := a.vault.Version(ctx)
	if err != nil {
		a.logger.Warn().Err(err).Msg("vault daemon version is unknown")
	} else {
		a.logger.Info().Str("daemon_version", version).Msg("connected to vault daemon")
	}

	if err = a.ui.Run(ctx); err != nil && !errors.Is(err, tui.ErrUserQuit) {
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}
