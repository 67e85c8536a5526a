// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the vault daemon's HTTP API.
//
// [VaultAdapter] mirrors the operations of the daemon's NativeVaultManager
// module as plain blocking calls. The HTTP implementation
// ([NewHTTPVaultAdapter]) signs its own bearer tokens, attaches the
// HashSHA256 integrity header to request bodies and verifies it on
// responses.
//
// Rejections from the daemon are returned as [*RejectionError] wrapped in
// one of the sentinel values from errors.go, so callers can branch with
// [errors.Is] (e.g. [ErrVaultLocked] for a locked vault) and still read the
// rejection code with [errors.As].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-vault-bridge/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/vault_adapter_mock.go -package=mock

// VaultAdapter defines transport-agnostic communication with the vault
// daemon.
type VaultAdapter interface {
	// Version returns the daemon version string. It needs no token.
	Version(ctx context.Context) (string, error)

	// Modules lists the bridge module names the daemon exposes.
	Modules(ctx context.Context) ([]string, error)

	GetEncryptedDatabase(ctx context.Context) (string, error)
	StoreDatabase(ctx context.Context, encryptedDatabase string) error
	HasEncryptedDatabase(ctx context.Context) (bool, error)
	ClearVault(ctx context.Context) error

	StoreMetadata(ctx context.Context, metadata string) error
	GetVaultMetadata(ctx context.Context) (string, error)
	GetCurrentVaultRevisionNumber(ctx context.Context) (int64, error)
	SetCurrentVaultRevisionNumber(ctx context.Context, revision int64) error

	StoreEncryptionKey(ctx context.Context, base64Key string) error
	StoreEncryptionKeyDerivationParams(ctx context.Context, params string) error
	GetEncryptionKeyDerivationParams(ctx context.Context) (string, error)

	// UnlockWithPassword derives the vault key from password and opens the
	// vault. It reports false without an error when the password is wrong.
	UnlockWithPassword(ctx context.Context, password string) (bool, error)
	// UnlockVault opens the vault with the key held in the keychain.
	UnlockVault(ctx context.Context) (bool, error)
	IsVaultUnlocked(ctx context.Context) (bool, error)
	Lock(ctx context.Context) error

	ExecuteQuery(ctx context.Context, query string, params []any) ([]models.QueryRow, error)
	ExecuteUpdate(ctx context.Context, query string, params []any) (int64, error)
	ExecuteRaw(ctx context.Context, query string) error
	BeginTransaction(ctx context.Context) error
	CommitTransaction(ctx context.Context) error
	RollbackTransaction(ctx context.Context) error

	SetAutoLockTimeout(ctx context.Context, seconds int64) error
	GetAutoLockTimeout(ctx context.Context) (int64, error)
	SetAuthMethods(ctx context.Context, methods []string) error
	GetAuthMethods(ctx context.Context) ([]string, error)

	// GetAllCredentials returns every non-deleted credential of the
	// unlocked vault.
	GetAllCredentials(ctx context.Context) ([]models.Credential, error)

	// ClearClipboardAfterDelay asks the daemon to clear the clipboard once
	// delayInSeconds have passed. A non-positive delay clears it at once.
	ClearClipboardAfterDelay(ctx context.Context, delayInSeconds float64) error
}
