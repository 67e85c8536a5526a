// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the terminal client of the vault daemon: an unlock
// screen for the master password and a searchable credential list that
// copies secrets to the clipboard and asks the daemon to clear it again.
package tui

import (
	"context"
	"errors"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-vault-bridge/internal/adapter"
	"github.com/MKhiriev/go-vault-bridge/internal/config"
	"github.com/MKhiriev/go-vault-bridge/internal/logger"
	"github.com/MKhiriev/go-vault-bridge/models"
)

var ErrUserQuit = errors.New("user quit")

// clipboardWriter puts text on the system clipboard.
type clipboardWriter func(text string) error

type TUI struct {
	vault      adapter.VaultAdapter
	clipboard  clipboardWriter
	clearDelay time.Duration
	buildInfo  models.AppBuildInfo

	logger *logger.Logger
}

func New(vault adapter.VaultAdapter, cfg config.Client, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		vault:      vault,
		clipboard:  clipboard.WriteAll,
		clearDelay: cfg.ClipboardClearDelay,
		buildInfo:  buildInfo,
		logger:     logger,
	}
}

// Run shows the unlock screen, or the credential list when the vault is
// already unlocked, and blocks until the user leaves. Ctrl+C returns
// ErrUserQuit.
func (t *TUI) Run(ctx context.Context) error {
	finalModel, err := tea.NewProgram(t.newRootModel(ctx), tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}

func (t *TUI) newRootModel(ctx context.Context) RootModel {
	pages := map[string]tea.Model{
		pageUnlock:      NewUnlockModel(ctx, t.vault, t.logger),
		pageCredentials: NewCredentialsModel(ctx, t.vault, t.clipboard, t.clearDelay, t.logger),
	}
	return NewRootModel(pages, pageUnlock, t.buildInfo)
}
