// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	DefaultHTTPAddress           = "localhost:8080"
	DefaultGRPCAddress           = "localhost:3200"
	DefaultRequestTimeout        = 30 * time.Second
	DefaultTokenIssuer           = "vault-bridge"
	DefaultTokenDuration         = 15 * time.Minute
	DefaultVaultDir              = "vault-data"
	DefaultQueueSize             = 64
	DefaultBridgeWorkers         = 4
	DefaultAutoLockTimeout       = time.Hour
	DefaultAutoLockCheckInterval = 30 * time.Second
	DefaultDaemonAddress         = "http://localhost:8080"
	DefaultClientTimeout         = 10 * time.Second
	DefaultClipboardClearDelay   = 30 * time.Second
	DefaultClientName            = "vault-cli"
	DefaultVersion               = "dev"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
			Version:       DefaultVersion,
		},
		Storage: Storage{
			VaultDir: DefaultVaultDir,
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			GRPCAddress:    DefaultGRPCAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Bridge: Bridge{
			QueueSize: DefaultQueueSize,
			Workers:   DefaultBridgeWorkers,
		},
		Vault: Vault{
			AutoLockTimeout:       DefaultAutoLockTimeout,
			AutoLockCheckInterval: DefaultAutoLockCheckInterval,
		},
		Client: Client{
			DaemonAddress:       DefaultDaemonAddress,
			RequestTimeout:      DefaultClientTimeout,
			ClipboardClearDelay: DefaultClipboardClearDelay,
			Name:                DefaultClientName,
		},
	}
}
