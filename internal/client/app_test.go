// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-vault-bridge/internal/config"
	"github.com/MKhiriev/go-vault-bridge/internal/logger"
	"github.com/MKhiriev/go-vault-bridge/internal/mock"
	"github.com/MKhiriev/go-vault-bridge/internal/tui"
	"github.com/MKhiriev/go-vault-bridge/models"
)

type stubUI struct {
	err error
	ran bool
}

func (s *stubUI) Run(context.Context) error {
	s.ran = true
	return s.err
}

func TestApp_Run(t *testing.T) {
	tests := []struct {
		name       string
		versionErr error
		uiErr      error
		wantErr    bool
	}{
		{name: "clean exit"},
		{name: "user quit", uiErr: tui.ErrUserQuit},
		{name: "daemon down still opens ui", versionErr: errors.New("connection refused")},
		{name: "ui failure", uiErr: errors.New("no tty"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vault := mock.NewMockVaultAdapter(gomock.NewController(t))
			vault.EXPECT().Version(gomock.Any()).Return("1.0.0", tt.versionErr)
			ui := &stubUI{err: tt.uiErr}

			app := &App{vault: vault, ui: ui, logger: logger.Nop()}
			err := app.Run(context.Background())

			assert.True(t, ui.ran)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNewApp(t *testing.T) {
	_, err := NewApp(&config.ClientConfig{}, models.AppBuildInfo{}, logger.Nop())
	assert.Error(t, err)

	app, err := NewApp(&config.ClientConfig{Client: config.Client{DaemonAddress: "localhost:8080"}}, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, app.ui)
}
