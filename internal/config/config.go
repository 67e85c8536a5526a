// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the merged configuration shared by both binaries.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env: environment variable name of a scalar field.
type StructuredConfig struct {
	App     App     `envPrefix:"APP_"`
	Storage Storage `envPrefix:"STORAGE_"`
	Server  Server  `envPrefix:"SERVER_"`
	Bridge  Bridge  `envPrefix:"BRIDGE_"`
	Vault   Vault   `envPrefix:"VAULT_"`
	Client  Client  `envPrefix:"CLIENT_"`

	// JSONFilePath points to an optional JSON file merged last.
	JSONFilePath string `env:"CONFIG"`
}

// App holds secrets and token parameters.
type App struct {
	// TokenSignKey signs the bearer tokens the client presents to the daemon.
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`
	TokenIssuer  string `env:"TOKEN_ISSUER"`

	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// HashKey is the HMAC key of the request/response integrity header.
	HashKey string `env:"HASH_KEY"`

	// DeviceSecret protects the keychain entry holding the vault key.
	DeviceSecret string `env:"DEVICE_SECRET"`

	Version string `env:"VERSION"`
}

// Storage groups the on-disk locations of the daemon.
type Storage struct {
	// VaultDir holds the encrypted database, the keychain file and, unless
	// DB.DSN says otherwise, the settings database.
	VaultDir string `env:"VAULT_DIR"`

	DB DB `envPrefix:"DB_"`
}

// DB is the settings database. A DSN starting with postgres:// or
// postgresql:// selects PostgreSQL, anything else is a sqlite path.
type DB struct {
	DSN string `env:"DSN"`
}

// Server holds listener addresses of the daemon.
type Server struct {
	HTTPAddress    string        `env:"ADDRESS"`
	GRPCAddress    string        `env:"GRPC_ADDRESS"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Bridge sizes the method queue the bridge dispatches calls on.
type Bridge struct {
	QueueSize int `env:"QUEUE_SIZE"`
	Workers   int `env:"WORKERS"`
}

// Vault holds auto-lock behaviour.
type Vault struct {
	// AutoLockTimeout is used until the user stores their own timeout.
	AutoLockTimeout time.Duration `env:"AUTO_LOCK_TIMEOUT"`

	// AutoLockCheckInterval is how often the idle check runs.
	AutoLockCheckInterval time.Duration `env:"AUTO_LOCK_CHECK_INTERVAL"`
}

// Client holds settings of the terminal client.
type Client struct {
	DaemonAddress       string        `env:"DAEMON_ADDRESS"`
	RequestTimeout      time.Duration `env:"REQUEST_TIMEOUT"`
	ClipboardClearDelay time.Duration `env:"CLIPBOARD_CLEAR_DELAY"`
	LogFile             string        `env:"LOG_FILE"`
	Name                string        `env:"NAME"`
}

// GetStructuredConfig merges env, os.Args flags, the JSON file and the
// defaults into one StructuredConfig.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
