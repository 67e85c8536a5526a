// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package bridge is the asynchronous boundary between the application layer
// and the vault. Every call returns a *Promise that settles exactly once;
// rejections are *BridgeError values carrying a code and an ErrorKind.
package bridge

import (
	"github.com/MKhiriev/go-vault-bridge/internal/config"
	"github.com/MKhiriev/go-vault-bridge/internal/logger"
	"github.com/MKhiriev/go-vault-bridge/internal/service"
)

// Module is a named capability surface exposed to the application layer.
type Module interface {
	ModuleName() string
}

// Bridge groups the modules and the queue their calls run on.
type Bridge struct {
	VaultManager      *VaultManager
	CredentialManager *CredentialManager
	Queue             *MethodQueue
}

func NewBridge(services *service.Services, cfg config.Bridge, logger *logger.Logger) *Bridge {
	queue := NewMethodQueue(cfg, logger)

	return &Bridge{
		VaultManager:      NewVaultManager(services.VaultService, services.ClipboardService, queue, logger),
		CredentialManager: NewCredentialManager(),
		Queue:             queue,
	}
}

// Modules lists the registered modules.
func (b *Bridge) Modules() []Module {
	return []Module{b.VaultManager, b.CredentialManager}
}
