// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	b := newConfigBuilder()
	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{TokenIssuer: "env"}},
		&StructuredConfig{App: App{TokenIssuer: "flag", HashKey: "from-flag"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "env", cfg.App.TokenIssuer)
	assert.Equal(t, "from-flag", cfg.App.HashKey)
}

// ── sources ───────────────────────────────────────────────────────────────────

func TestWithFlags_UsesBuilderArgs(t *testing.T) {
	b := newConfigBuilder()
	b.args = []string{"-token-sign-key", "from-args"}

	cfg, err := b.withFlags().build()
	require.NoError(t, err)
	assert.Equal(t, "from-args", cfg.App.TokenSignKey)
}

func TestWithFlags_SetsErrorOnBadArgs(t *testing.T) {
	b := newConfigBuilder()
	b.args = []string{"-a", "bad"}

	_, err := b.withFlags().build()
	assert.Error(t, err)
}

func TestWithJSON_NoOpWhenNoPath(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()
	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_AppendsConfig(t *testing.T) {
	path := writeRawJSON(t, `{"app": {"token_issuer": "from-json"}}`)
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})

	cfg, err := b.withJSON().build()
	require.NoError(t, err)
	assert.Equal(t, "from-json", cfg.App.TokenIssuer)
}

func TestWithJSON_SetsErrorWhenFileMissing(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: filepath.Join(t.TempDir(), "nope.json")})

	_, err := b.withJSON().build()
	assert.Error(t, err)
}

func TestWithDefaults_FillsOnlyEmptyFields(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Server: Server{HTTPAddress: "127.0.0.1:1234"}})

	cfg, err := b.withDefaults().build()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:1234", cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultGRPCAddress, cfg.Server.GRPCAddress)
	assert.Equal(t, DefaultAutoLockTimeout, cfg.Vault.AutoLockTimeout)
	assert.Equal(t, DefaultQueueSize, cfg.Bridge.QueueSize)
}

// ── views ─────────────────────────────────────────────────────────────────────

func validStructured() *StructuredConfig {
	cfg := defaultConfig()
	cfg.App.TokenSignKey = "sign"
	cfg.App.HashKey = "hash"
	cfg.App.DeviceSecret = "device"
	return cfg
}

func TestDaemonView_DefaultsSettingsDSNIntoVaultDir(t *testing.T) {
	view := validStructured().daemonView()
	assert.Equal(t, filepath.Join(DefaultVaultDir, SettingsDBFileName), view.Storage.DB.DSN)
	assert.NoError(t, view.validate())
}

func TestDaemonView_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "missing sign key", mutate: func(c *StructuredConfig) { c.App.TokenSignKey = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "missing device secret", mutate: func(c *StructuredConfig) { c.App.DeviceSecret = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "memory dsn", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = ":memory:" }, wantErr: ErrInvalidStorageConfigs},
		{name: "no http address", mutate: func(c *StructuredConfig) { c.Server.HTTPAddress = "" }, wantErr: ErrInvalidServerConfigs},
		{name: "no workers", mutate: func(c *StructuredConfig) { c.Bridge.Workers = 0 }, wantErr: ErrInvalidBridgeConfigs},
		{name: "negative auto lock", mutate: func(c *StructuredConfig) { c.Vault.AutoLockTimeout = -time.Second }, wantErr: ErrInvalidVaultConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validStructured()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.daemonView().validate(), tt.wantErr)
		})
	}
}

func TestClientView_Validation(t *testing.T) {
	cfg := validStructured()
	require.NoError(t, cfg.clientView().validate())

	cfg.Client.DaemonAddress = ""
	assert.ErrorIs(t, cfg.clientView().validate(), ErrInvalidClientConfigs)

	cfg = validStructured()
	cfg.App.TokenSignKey = ""
	assert.ErrorIs(t, cfg.clientView().validate(), ErrInvalidAppConfigs)
}
