// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-vault-bridge/models"
)

// Version implements [VaultAdapter]. It GETs the public version route, which
// needs neither a token nor an integrity hash.
func (h *httpVaultAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get(models.RouteVersion)
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}

// Modules implements [VaultAdapter].
func (h *httpVaultAdapter) Modules(ctx context.Context) ([]string, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	var result models.BridgeResult[[]string]
	resp, err := req.SetResult(&result).Get(models.RouteModules)
	if err != nil {
		return nil, fmt.Errorf("modules request: %w", err)
	}
	if err = h.verifyResponse(resp); err != nil {
		return nil, fmt.Errorf("modules response: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return result.Result, nil
}

func (h *httpVaultAdapter) GetEncryptedDatabase(ctx context.Context) (string, error) {
	return post[string](ctx, h, models.RouteGetEncryptedDatabase, nil)
}

func (h *httpVaultAdapter) StoreDatabase(ctx context.Context, encryptedDatabase string) error {
	return postUnit(ctx, h, models.RouteStoreDatabase, models.StoreDatabaseRequest{EncryptedDatabase: encryptedDatabase})
}

func (h *httpVaultAdapter) HasEncryptedDatabase(ctx context.Context) (bool, error) {
	return post[bool](ctx, h, models.RouteHasEncryptedDatabase, nil)
}

func (h *httpVaultAdapter) ClearVault(ctx context.Context) error {
	return postUnit(ctx, h, models.RouteClearVault, nil)
}

func (h *httpVaultAdapter) StoreMetadata(ctx context.Context, metadata string) error {
	return postUnit(ctx, h, models.RouteStoreMetadata, models.StoreMetadataRequest{Metadata: metadata})
}

func (h *httpVaultAdapter) GetVaultMetadata(ctx context.Context) (string, error) {
	return post[string](ctx, h, models.RouteGetVaultMetadata, nil)
}

func (h *httpVaultAdapter) GetCurrentVaultRevisionNumber(ctx context.Context) (int64, error) {
	return post[int64](ctx, h, models.RouteGetCurrentVaultRevisionNumber, nil)
}

func (h *httpVaultAdapter) SetCurrentVaultRevisionNumber(ctx context.Context, revision int64) error {
	return postUnit(ctx, h, models.RouteSetCurrentVaultRevisionNumber, models.RevisionNumberRequest{RevisionNumber: revision})
}

func (h *httpVaultAdapter) StoreEncryptionKey(ctx context.Context, base64Key string) error {
	return postUnit(ctx, h, models.RouteStoreEncryptionKey, models.StoreEncryptionKeyRequest{EncryptionKey: base64Key})
}

func (h *httpVaultAdapter) StoreEncryptionKeyDerivationParams(ctx context.Context, params string) error {
	return postUnit(ctx, h, models.RouteStoreEncryptionKeyDerivationParams, models.StoreKeyDerivationParamsRequest{KeyDerivationParams: params})
}

func (h *httpVaultAdapter) GetEncryptionKeyDerivationParams(ctx context.Context) (string, error) {
	return post[string](ctx, h, models.RouteGetEncryptionKeyDerivationParams, nil)
}

func (h *httpVaultAdapter) UnlockWithPassword(ctx context.Context, password string) (bool, error) {
	return post[bool](ctx, h, models.RouteUnlockWithPassword, models.UnlockWithPasswordRequest{Password: password})
}

func (h *httpVaultAdapter) UnlockVault(ctx context.Context) (bool, error) {
	return post[bool](ctx, h, models.RouteUnlockVault, nil)
}

func (h *httpVaultAdapter) IsVaultUnlocked(ctx context.Context) (bool, error) {
	return post[bool](ctx, h, models.RouteIsVaultUnlocked, nil)
}

func (h *httpVaultAdapter) Lock(ctx context.Context) error {
	return postUnit(ctx, h, models.RouteLock, nil)
}

func (h *httpVaultAdapter) ExecuteQuery(ctx context.Context, query string, params []any) ([]models.QueryRow, error) {
	return post[[]models.QueryRow](ctx, h, models.RouteExecuteQuery, models.QueryRequest{Query: query, Params: params})
}

func (h *httpVaultAdapter) ExecuteUpdate(ctx context.Context, query string, params []any) (int64, error) {
	return post[int64](ctx, h, models.RouteExecuteUpdate, models.QueryRequest{Query: query, Params: params})
}

func (h *httpVaultAdapter) ExecuteRaw(ctx context.Context, query string) error {
	return postUnit(ctx, h, models.RouteExecuteRaw, models.RawQueryRequest{Query: query})
}

func (h *httpVaultAdapter) BeginTransaction(ctx context.Context) error {
	return postUnit(ctx, h, models.RouteBeginTransaction, nil)
}

func (h *httpVaultAdapter) CommitTransaction(ctx context.Context) error {
	return postUnit(ctx, h, models.RouteCommitTransaction, nil)
}

func (h *httpVaultAdapter) RollbackTransaction(ctx context.Context) error {
	return postUnit(ctx, h, models.RouteRollbackTransaction, nil)
}

func (h *httpVaultAdapter) SetAutoLockTimeout(ctx context.Context, seconds int64) error {
	return postUnit(ctx, h, models.RouteSetAutoLockTimeout, models.AutoLockTimeoutRequest{Timeout: seconds})
}

func (h *httpVaultAdapter) GetAutoLockTimeout(ctx context.Context) (int64, error) {
	return post[int64](ctx, h, models.RouteGetAutoLockTimeout, nil)
}

func (h *httpVaultAdapter) SetAuthMethods(ctx context.Context, methods []string) error {
	return postUnit(ctx, h, models.RouteSetAuthMethods, models.AuthMethodsRequest{AuthMethods: methods})
}

func (h *httpVaultAdapter) GetAuthMethods(ctx context.Context) ([]string, error) {
	return post[[]string](ctx, h, models.RouteGetAuthMethods, nil)
}

func (h *httpVaultAdapter) GetAllCredentials(ctx context.Context) ([]models.Credential, error) {
	return post[[]models.Credential](ctx, h, models.RouteGetAllCredentials, nil)
}

func (h *httpVaultAdapter) ClearClipboardAfterDelay(ctx context.Context, delayInSeconds float64) error {
	return postUnit(ctx, h, models.RouteClearClipboardAfterDelay, models.ClipboardClearRequest{DelayInSeconds: delayInSeconds})
}
