// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-vault-bridge/internal/config"
	"github.com/MKhiriev/go-vault-bridge/internal/crypto"
	"github.com/MKhiriev/go-vault-bridge/internal/logger"
)

// Storages groups every storage the vault service depends on.
type Storages struct {
	Files       VaultFileStorage
	Settings    SettingsRepository
	Vault       VaultDatabase
	Keys        KeyStore
	Credentials CredentialRepository

	db *DB
}

// NewStorages opens the settings database, runs migrations and creates the
// vault directory storages.
func NewStorages(ctx context.Context, cfg config.Storage, deviceSecret string, cipher crypto.VaultCipher, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	files, err := NewVaultFileStorage(cfg.VaultDir)
	if err != nil {
		return nil, err
	}

	db, err := NewConnect(ctx, cfg.DB.DSN, log)
	if err != nil {
		return nil, fmt.Errorf("settings database connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	vault := NewMemoryVaultDatabase(log)

	return &Storages{
		Files:       files,
		Settings:    NewSettingsRepository(db, log),
		Vault:       vault,
		Keys:        NewFileKeyStore(cfg.VaultDir, deviceSecret, cipher),
		Credentials: NewCredentialRepository(vault),
		db:          db,
	}, nil
}

// Close closes the in-memory vault and the settings database.
func (s *Storages) Close() error {
	vaultErr := s.Vault.Close()
	if s.db == nil {
		return vaultErr
	}
	if err := s.db.Close(); err != nil {
		return err
	}
	return vaultErr
}
