// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-vault-bridge/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// VaultService owns the vault: the encrypted database on disk, its
// settings, the encryption key and the decrypted database while unlocked.
type VaultService interface {
	// StoreDatabase replaces the encrypted database blob (base64).
	StoreDatabase(ctx context.Context, encryptedDatabase string) error
	// GetEncryptedDatabase returns the stored blob or
	// store.ErrEncryptedDatabaseNotFound.
	GetEncryptedDatabase(ctx context.Context) (string, error)
	HasEncryptedDatabase(ctx context.Context) (bool, error)

	// StoreMetadata replaces the vault metadata JSON document.
	StoreMetadata(ctx context.Context, metadata string) error
	// GetVaultMetadata returns "" when no metadata was stored yet.
	GetVaultMetadata(ctx context.Context) (string, error)

	// GetCurrentVaultRevisionNumber reads vaultRevisionNumber from the
	// metadata. It returns 0 when the metadata or the field is absent.
	GetCurrentVaultRevisionNumber(ctx context.Context) (int64, error)
	// SetCurrentVaultRevisionNumber rewrites vaultRevisionNumber inside the
	// metadata, keeping every other field. No range check is applied.
	SetCurrentVaultRevisionNumber(ctx context.Context, revision int64) error

	// StoreEncryptionKey caches a base64 32 byte key. The key also goes to
	// the keychain when faceid is enabled.
	StoreEncryptionKey(ctx context.Context, base64Key string) error
	StoreEncryptionKeyDerivationParams(ctx context.Context, params string) error
	// GetEncryptionKeyDerivationParams returns "" when none are stored.
	GetEncryptionKeyDerivationParams(ctx context.Context) (string, error)

	// UnlockWithPassword derives the key from the stored params and unlocks.
	// A wrong password resolves false.
	UnlockWithPassword(ctx context.Context, password string) (bool, error)
	// UnlockVault decrypts and loads the database. It resolves false when
	// there is no database or no usable key.
	UnlockVault(ctx context.Context) (bool, error)
	IsVaultUnlocked(ctx context.Context) bool
	// ClearVault removes every trace of the vault from the device.
	ClearVault(ctx context.Context) error
	// Lock drops the decrypted database and the cached key.
	Lock(ctx context.Context) error
	// LockIfIdle locks the vault when the auto-lock timeout elapsed since
	// the last call. It reports whether the vault was locked.
	LockIfIdle(ctx context.Context, now time.Time) (bool, error)

	ExecuteQuery(ctx context.Context, query string, params []any) ([]models.QueryRow, error)
	ExecuteUpdate(ctx context.Context, query string, params []any) (int64, error)
	ExecuteRaw(ctx context.Context, query string) error
	BeginTransaction(ctx context.Context) error
	// CommitTransaction commits and persists the re-encrypted database.
	CommitTransaction(ctx context.Context) error
	RollbackTransaction(ctx context.Context) error

	SetAutoLockTimeout(ctx context.Context, seconds int64) error
	GetAutoLockTimeout(ctx context.Context) (int64, error)
	SetAuthMethods(ctx context.Context, methods []string) error
	GetAuthMethods(ctx context.Context) ([]string, error)

	GetAllCredentials(ctx context.Context) ([]models.Credential, error)
}

// ClipboardService manages the system clipboard on behalf of the vault.
type ClipboardService interface {
	// ClearClipboardAfterDelay schedules the clipboard to be emptied. A
	// non-positive delay does nothing; a new call replaces a pending clear.
	ClearClipboardAfterDelay(ctx context.Context, delay time.Duration) error
	// Flush runs a pending clear immediately. Without one it does nothing.
	Flush(ctx context.Context) error
}

// AppInfoService reports build information of the daemon.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// AuthService issues and checks the bearer tokens exchanged between the
// client and the daemon.
type AuthService interface {
	CreateToken(ctx context.Context, client string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// HealthService reports whether the daemon can reach its settings store.
type HealthService interface {
	Ping(ctx context.Context) error
}
