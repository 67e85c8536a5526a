// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bridge

import (
	"context"
	"math"
	"time"

	"github.com/MKhiriev/go-vault-bridge/internal/logger"
	"github.com/MKhiriev/go-vault-bridge/internal/service"
	"github.com/MKhiriev/go-vault-bridge/models"
)

// VaultManagerModuleName is the name the application layer resolves the
// vault module by.
const VaultManagerModuleName = "NativeVaultManager"

// VaultManager exposes the vault service as promise-returning calls. It
// keeps no state of its own.
type VaultManager struct {
	vault     service.VaultService
	clipboard service.ClipboardService
	queue     *MethodQueue

	logger *logger.Logger
}

func NewVaultManager(vault service.VaultService, clipboard service.ClipboardService, queue *MethodQueue, logger *logger.Logger) *VaultManager {
	return &VaultManager{
		vault:     vault,
		clipboard: clipboard,
		queue:     queue,
		logger:    logger,
	}
}

func (m *VaultManager) ModuleName() string {
	return VaultManagerModuleName
}

// ── encrypted database ──────────────────────────────────────────────────────

func (m *VaultManager) GetEncryptedDatabase(ctx context.Context) *Promise[string] {
	return call(ctx, m.queue, "VaultManager.GetEncryptedDatabase", CodeDBError, "failed to get encrypted database", m.vault.GetEncryptedDatabase)
}

func (m *VaultManager) StoreDatabase(ctx context.Context, encryptedDatabase string) *Promise[struct{}] {
	return call(ctx, m.queue, "VaultManager.StoreDatabase", CodeDBError, "failed to store database", unit(func(ctx context.Context) error {
		return m.vault.StoreDatabase(ctx, encryptedDatabase)
	}))
}

func (m *VaultManager) HasEncryptedDatabase(ctx context.Context) *Promise[bool] {
	return call(ctx, m.queue, "VaultManager.HasEncryptedDatabase", CodeDBError, "failed to check encrypted database", m.vault.HasEncryptedDatabase)
}

func (m *VaultManager) ClearVault(ctx context.Context) *Promise[struct{}] {
	return call(ctx, m.queue, "VaultManager.ClearVault", CodeDBError, "failed to clear vault", unit(m.vault.ClearVault))
}

// ── metadata and revision ───────────────────────────────────────────────────

func (m *VaultManager) StoreMetadata(ctx context.Context, metadata string) *Promise[struct{}] {
	return call(ctx, m.queue, "VaultManager.StoreMetadata", CodeMetadataError, "failed to store metadata", unit(func(ctx context.Context) error {
		return m.vault.StoreMetadata(ctx, metadata)
	}))
}

func (m *VaultManager) GetVaultMetadata(ctx context.Context) *Promise[string] {
	return call(ctx, m.queue, "VaultManager.GetVaultMetadata", CodeMetadataError, "failed to get metadata", m.vault.GetVaultMetadata)
}

func (m *VaultManager) GetCurrentVaultRevisionNumber(ctx context.Context) *Promise[int64] {
	return call(ctx, m.queue, "VaultManager.GetCurrentVaultRevisionNumber", CodeGetRevision, "failed to get vault revision number", m.vault.GetCurrentVaultRevisionNumber)
}

func (m *VaultManager) SetCurrentVaultRevisionNumber(ctx context.Context, revision int64) *Promise[struct{}] {
	return call(ctx, m.queue, "VaultManager.SetCurrentVaultRevisionNumber", CodeSetRevision, "failed to set vault revision number", unit(func(ctx context.Context) error {
		return m.vault.SetCurrentVaultRevisionNumber(ctx, revision)
	}))
}

// ── keys and unlock ─────────────────────────────────────────────────────────

func (m *VaultManager) StoreEncryptionKey(ctx context.Context, base64Key string) *Promise[struct{}] {
	return call(ctx, m.queue, "VaultManager.StoreEncryptionKey", CodeKeychainError, "failed to store encryption key", unit(func(ctx context.Context) error {
		return m.vault.StoreEncryptionKey(ctx, base64Key)
	}))
}

func (m *VaultManager) StoreEncryptionKeyDerivationParams(ctx context.Context, params string) *Promise[struct{}] {
	return call(ctx, m.queue, "VaultManager.StoreEncryptionKeyDerivationParams", CodeKeychainError, "failed to store encryption key derivation params", unit(func(ctx context.Context) error {
		return m.vault.StoreEncryptionKeyDerivationParams(ctx, params)
	}))
}

func (m *VaultManager) GetEncryptionKeyDerivationParams(ctx context.Context) *Promise[string] {
	return call(ctx, m.queue, "VaultManager.GetEncryptionKeyDerivationParams", CodeKeychainError, "failed to get encryption key derivation params", m.vault.GetEncryptionKeyDerivationParams)
}

func (m *VaultManager) UnlockWithPassword(ctx context.Context, password string) *Promise[bool] {
	return call(ctx, m.queue, "VaultManager.UnlockWithPassword", CodeInitError, "failed to unlock vault", func(ctx context.Context) (bool, error) {
		return m.vault.UnlockWithPassword(ctx, password)
	})
}

func (m *VaultManager) UnlockVault(ctx context.Context) *Promise[bool] {
	return call(ctx, m.queue, "VaultManager.UnlockVault", CodeInitError, "failed to unlock vault", m.vault.UnlockVault)
}

func (m *VaultManager) IsVaultUnlocked(ctx context.Context) *Promise[bool] {
	return call(ctx, m.queue, "VaultManager.IsVaultUnlocked", CodeDBError, "failed to check vault state", func(ctx context.Context) (bool, error) {
		return m.vault.IsVaultUnlocked(ctx), nil
	})
}

func (m *VaultManager) Lock(ctx context.Context) *Promise[struct{}] {
	return call(ctx, m.queue, "VaultManager.Lock", CodeDBError, "failed to lock vault", unit(m.vault.Lock))
}

// ── queries and transactions ────────────────────────────────────────────────

func (m *VaultManager) ExecuteQuery(ctx context.Context, query string, params []any) *Promise[[]models.QueryRow] {
	return call(ctx, m.queue, "VaultManager.ExecuteQuery", CodeQueryError, "failed to execute query", func(ctx context.Context) ([]models.QueryRow, error) {
		return m.vault.ExecuteQuery(ctx, query, params)
	})
}

func (m *VaultManager) ExecuteUpdate(ctx context.Context, query string, params []any) *Promise[int64] {
	return call(ctx, m.queue, "VaultManager.ExecuteUpdate", CodeUpdateError, "failed to execute update", func(ctx context.Context) (int64, error) {
		return m.vault.ExecuteUpdate(ctx, query, params)
	})
}

func (m *VaultManager) ExecuteRaw(ctx context.Context, query string) *Promise[struct{}] {
	return call(ctx, m.queue, "VaultManager.ExecuteRaw", CodeRawError, "failed to execute raw query", unit(func(ctx context.Context) error {
		return m.vault.ExecuteRaw(ctx, query)
	}))
}

func (m *VaultManager) BeginTransaction(ctx context.Context) *Promise[struct{}] {
	return call(ctx, m.queue, "VaultManager.BeginTransaction", CodeTransactionError, "failed to begin transaction", unit(m.vault.BeginTransaction))
}

func (m *VaultManager) CommitTransaction(ctx context.Context) *Promise[struct{}] {
	return call(ctx, m.queue, "VaultManager.CommitTransaction", CodeTransactionError, "failed to commit transaction", unit(m.vault.CommitTransaction))
}

func (m *VaultManager) RollbackTransaction(ctx context.Context) *Promise[struct{}] {
	return call(ctx, m.queue, "VaultManager.RollbackTransaction", CodeTransactionError, "failed to rollback transaction", unit(m.vault.RollbackTransaction))
}

// ── settings ────────────────────────────────────────────────────────────────

func (m *VaultManager) SetAutoLockTimeout(ctx context.Context, seconds int64) *Promise[struct{}] {
	return call(ctx, m.queue, "VaultManager.SetAutoLockTimeout", CodeSettingsError, "failed to set auto-lock timeout", unit(func(ctx context.Context) error {
		return m.vault.SetAutoLockTimeout(ctx, seconds)
	}))
}

func (m *VaultManager) GetAutoLockTimeout(ctx context.Context) *Promise[int64] {
	return call(ctx, m.queue, "VaultManager.GetAutoLockTimeout", CodeSettingsError, "failed to get auto-lock timeout", m.vault.GetAutoLockTimeout)
}

func (m *VaultManager) SetAuthMethods(ctx context.Context, methods []string) *Promise[struct{}] {
	return call(ctx, m.queue, "VaultManager.SetAuthMethods", CodeAuthMethodError, "failed to set authentication methods", unit(func(ctx context.Context) error {
		return m.vault.SetAuthMethods(ctx, methods)
	}))
}

func (m *VaultManager) GetAuthMethods(ctx context.Context) *Promise[[]string] {
	return call(ctx, m.queue, "VaultManager.GetAuthMethods", CodeAuthMethodError, "failed to get authentication methods", m.vault.GetAuthMethods)
}

// ── credentials and clipboard ───────────────────────────────────────────────

func (m *VaultManager) GetAllCredentials(ctx context.Context) *Promise[[]models.Credential] {
	return call(ctx, m.queue, "VaultManager.GetAllCredentials", CodeQueryError, "failed to get credentials", m.vault.GetAllCredentials)
}

// maxClipboardDelay caps a scheduled clear so the conversion to
// time.Duration cannot overflow.
const maxClipboardDelay = 24 * time.Hour

// ClearClipboardAfterDelay empties the clipboard after delayInSeconds. A
// non-positive delay resolves without scheduling anything.
func (m *VaultManager) ClearClipboardAfterDelay(ctx context.Context, delayInSeconds float64) *Promise[struct{}] {
	delay := clipboardDelay(delayInSeconds)
	return call(ctx, m.queue, "VaultManager.ClearClipboardAfterDelay", CodeClipboardError, "failed to schedule clipboard clear", unit(func(ctx context.Context) error {
		return m.clipboard.ClearClipboardAfterDelay(ctx, delay)
	}))
}

func clipboardDelay(seconds float64) time.Duration {
	switch {
	case math.IsNaN(seconds) || seconds <= 0:
		return 0
	case seconds >= maxClipboardDelay.Seconds():
		return maxClipboardDelay
	}
	return time.Duration(seconds * float64(time.Second))
}
