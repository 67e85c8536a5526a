// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRawJSON(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestParseJSON_Success(t *testing.T) {
	path := writeRawJSON(t, `{
		"app": {"token_sign_key": "k", "token_duration": "10m", "hash_key": "h", "device_secret": "d"},
		"storage": {"vault_dir": "/srv/vault", "dsn": "/srv/vault/settings.db"},
		"server": {"http_address": "localhost:9000", "request_timeout": 5000000000},
		"bridge": {"queue_size": 10, "workers": 2},
		"vault": {"auto_lock_timeout": "30m", "auto_lock_check_interval": "15s"},
		"client": {"daemon_address": "http://localhost:9000", "clipboard_clear_delay": "45s"}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "k", cfg.App.TokenSignKey)
	assert.Equal(t, 10*time.Minute, cfg.App.TokenDuration)
	assert.Equal(t, "h", cfg.App.HashKey)
	assert.Equal(t, "d", cfg.App.DeviceSecret)
	assert.Equal(t, "/srv/vault", cfg.Storage.VaultDir)
	assert.Equal(t, "/srv/vault/settings.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 10, cfg.Bridge.QueueSize)
	assert.Equal(t, 2, cfg.Bridge.Workers)
	assert.Equal(t, 30*time.Minute, cfg.Vault.AutoLockTimeout)
	assert.Equal(t, 15*time.Second, cfg.Vault.AutoLockCheckInterval)
	assert.Equal(t, "http://localhost:9000", cfg.Client.DaemonAddress)
	assert.Equal(t, 45*time.Second, cfg.Client.ClipboardClearDelay)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	_, err := parseJSON(writeRawJSON(t, `{"app":`))
	assert.Error(t, err)
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	_, err := parseJSON(writeRawJSON(t, `{"server": {"request_timeout": "soon"}}`))
	assert.Error(t, err)

	_, err = parseJSON(writeRawJSON(t, `{"server": {"request_timeout": true}}`))
	assert.Error(t, err)
}

func TestParseJSON_EmptyObject(t *testing.T) {
	cfg, err := parseJSON(writeRawJSON(t, `{}`))
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(90 * time.Second).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}
