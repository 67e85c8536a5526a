// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-vault-bridge/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// VaultFileStorage keeps the encrypted database blob on disk.
type VaultFileStorage interface {
	SaveEncryptedDatabase(ctx context.Context, encrypted string) error
	LoadEncryptedDatabase(ctx context.Context) (string, error)
	HasEncryptedDatabase(ctx context.Context) (bool, error)
	RemoveEncryptedDatabase(ctx context.Context) error
}

// SettingsRepository is a small key/value table for vault settings:
// metadata, key derivation params, auto-lock timeout, auth methods.
type SettingsRepository interface {
	// Get returns ErrSettingNotFound when name is absent.
	Get(ctx context.Context, name string) (string, error)
	Set(ctx context.Context, name, value string) error
	Delete(ctx context.Context, names ...string) error

	// Update reads the current value and writes what fn returns in a single
	// transaction. found is false when the setting does not exist yet.
	Update(ctx context.Context, name string, fn func(current string, found bool) (string, error)) error

	Ping(ctx context.Context) error
}

// VaultDatabase is the decrypted vault held in memory while unlocked.
type VaultDatabase interface {
	// Load replaces the current contents with the sqlite file image.
	Load(ctx context.Context, image []byte) error
	// Export serialises the current contents to a sqlite file image.
	Export(ctx context.Context) ([]byte, error)

	Query(ctx context.Context, query string, params []any) ([]models.QueryRow, error)
	Update(ctx context.Context, query string, params []any) (int64, error)
	Raw(ctx context.Context, query string) error
	Select(ctx context.Context, dest any, query string, args ...any) error

	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	Close() error
	IsOpen() bool
}

// KeyStore is the device keychain holding the vault key between unlocks.
type KeyStore interface {
	StoreKey(ctx context.Context, key []byte) error
	// LoadKey returns ErrKeyNotFound when nothing is stored and
	// ErrKeychainAuthFailed when the entry cannot be unwrapped.
	LoadKey(ctx context.Context) ([]byte, error)
	DeleteKey(ctx context.Context) error
}

// CredentialRepository reads credentials out of the unlocked vault.
type CredentialRepository interface {
	GetAllCredentials(ctx context.Context) ([]models.Credential, error)
}
