// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-vault-bridge/internal/bridge"
	"github.com/MKhiriev/go-vault-bridge/models"
)

func (h *Handler) getEncryptedDatabase(w http.ResponseWriter, r *http.Request) {
	respond(w, r, "*Handler.getEncryptedDatabase", h.bridge.VaultManager.GetEncryptedDatabase(r.Context()))
}

func (h *Handler) storeDatabase(w http.ResponseWriter, r *http.Request) {
	var req models.StoreDatabaseRequest
	if !h.decode(w, r, "*Handler.storeDatabase", bridge.CodeDBError, &req) {
		return
	}
	respond(w, r, "*Handler.storeDatabase", h.bridge.VaultManager.StoreDatabase(r.Context(), req.EncryptedDatabase))
}

func (h *Handler) hasEncryptedDatabase(w http.ResponseWriter, r *http.Request) {
	respond(w, r, "*Handler.hasEncryptedDatabase", h.bridge.VaultManager.HasEncryptedDatabase(r.Context()))
}

func (h *Handler) clearVault(w http.ResponseWriter, r *http.Request) {
	respond(w, r, "*Handler.clearVault", h.bridge.VaultManager.ClearVault(r.Context()))
}

func (h *Handler) storeMetadata(w http.ResponseWriter, r *http.Request) {
	var req models.StoreMetadataRequest
	if !h.decode(w, r, "*Handler.storeMetadata", bridge.CodeMetadataError, &req) {
		return
	}
	respond(w, r, "*Handler.storeMetadata", h.bridge.VaultManager.StoreMetadata(r.Context(), req.Metadata))
}

func (h *Handler) getVaultMetadata(w http.ResponseWriter, r *http.Request) {
	respond(w, r, "*Handler.getVaultMetadata", h.bridge.VaultManager.GetVaultMetadata(r.Context()))
}

func (h *Handler) getCurrentVaultRevisionNumber(w http.ResponseWriter, r *http.Request) {
	respond(w, r, "*Handler.getCurrentVaultRevisionNumber", h.bridge.VaultManager.GetCurrentVaultRevisionNumber(r.Context()))
}

func (h *Handler) setCurrentVaultRevisionNumber(w http.ResponseWriter, r *http.Request) {
	var req models.RevisionNumberRequest
	if !h.decode(w, r, "*Handler.setCurrentVaultRevisionNumber", bridge.CodeSetRevision, &req) {
		return
	}
	respond(w, r, "*Handler.setCurrentVaultRevisionNumber", h.bridge.VaultManager.SetCurrentVaultRevisionNumber(r.Context(), req.RevisionNumber))
}

func (h *Handler) storeEncryptionKey(w http.ResponseWriter, r *http.Request) {
	var req models.StoreEncryptionKeyRequest
	if !h.decode(w, r, "*Handler.storeEncryptionKey", bridge.CodeKeychainError, &req) {
		return
	}
	respond(w, r, "*Handler.storeEncryptionKey", h.bridge.VaultManager.StoreEncryptionKey(r.Context(), req.EncryptionKey))
}

func (h *Handler) storeEncryptionKeyDerivationParams(w http.ResponseWriter, r *http.Request) {
	var req models.StoreKeyDerivationParamsRequest
	if !h.decode(w, r, "*Handler.storeEncryptionKeyDerivationParams", bridge.CodeKeychainError, &req) {
		return
	}
	respond(w, r, "*Handler.storeEncryptionKeyDerivationParams", h.bridge.VaultManager.StoreEncryptionKeyDerivationParams(r.Context(), req.KeyDerivationParams))
}

func (h *Handler) getEncryptionKeyDerivationParams(w http.ResponseWriter, r *http.Request) {
	respond(w, r, "*Handler.getEncryptionKeyDerivationParams", h.bridge.VaultManager.GetEncryptionKeyDerivationParams(r.Context()))
}

func (h *Handler) unlockWithPassword(w http.ResponseWriter, r *http.Request) {
	var req models.UnlockWithPasswordRequest
	if !h.decode(w, r, "*Handler.unlockWithPassword", bridge.CodeInitError, &req) {
		return
	}
	respond(w, r, "*Handler.unlockWithPassword", h.bridge.VaultManager.UnlockWithPassword(r.Context(), req.Password))
}

func (h *Handler) unlockVault(w http.ResponseWriter, r *http.Request) {
	respond(w, r, "*Handler.unlockVault", h.bridge.VaultManager.UnlockVault(r.Context()))
}

func (h *Handler) isVaultUnlocked(w http.ResponseWriter, r *http.Request) {
	respond(w, r, "*Handler.isVaultUnlocked", h.bridge.VaultManager.IsVaultUnlocked(r.Context()))
}

func (h *Handler) lock(w http.ResponseWriter, r *http.Request) {
	respond(w, r, "*Handler.lock", h.bridge.VaultManager.Lock(r.Context()))
}

func (h *Handler) executeQuery(w http.ResponseWriter, r *http.Request) {
	var req models.QueryRequest
	if !h.decode(w, r, "*Handler.executeQuery", bridge.CodeQueryError, &req) {
		return
	}
	respond(w, r, "*Handler.executeQuery", h.bridge.VaultManager.ExecuteQuery(r.Context(), req.Query, req.Params))
}

func (h *Handler) executeUpdate(w http.ResponseWriter, r *http.Request) {
	var req models.QueryRequest
	if !h.decode(w, r, "*Handler.executeUpdate", bridge.CodeUpdateError, &req) {
		return
	}
	respond(w, r, "*Handler.executeUpdate", h.bridge.VaultManager.ExecuteUpdate(r.Context(), req.Query, req.Params))
}

func (h *Handler) executeRaw(w http.ResponseWriter, r *http.Request) {
	var req models.RawQueryRequest
	if !h.decode(w, r, "*Handler.executeRaw", bridge.CodeRawError, &req) {
		return
	}
	respond(w, r, "*Handler.executeRaw", h.bridge.VaultManager.ExecuteRaw(r.Context(), req.Query))
}

func (h *Handler) beginTransaction(w http.ResponseWriter, r *http.Request) {
	respond(w, r, "*Handler.beginTransaction", h.bridge.VaultManager.BeginTransaction(r.Context()))
}

func (h *Handler) commitTransaction(w http.ResponseWriter, r *http.Request) {
	respond(w, r, "*Handler.commitTransaction", h.bridge.VaultManager.CommitTransaction(r.Context()))
}

func (h *Handler) rollbackTransaction(w http.ResponseWriter, r *http.Request) {
	respond(w, r, "*Handler.rollbackTransaction", h.bridge.VaultManager.RollbackTransaction(r.Context()))
}

func (h *Handler) setAutoLockTimeout(w http.ResponseWriter, r *http.Request) {
	var req models.AutoLockTimeoutRequest
	if !h.decode(w, r, "*Handler.setAutoLockTimeout", bridge.CodeSettingsError, &req) {
		return
	}
	respond(w, r, "*Handler.setAutoLockTimeout", h.bridge.VaultManager.SetAutoLockTimeout(r.Context(), req.Timeout))
}

func (h *Handler) getAutoLockTimeout(w http.ResponseWriter, r *http.Request) {
	respond(w, r, "*Handler.getAutoLockTimeout", h.bridge.VaultManager.GetAutoLockTimeout(r.Context()))
}

func (h *Handler) setAuthMethods(w http.ResponseWriter, r *http.Request) {
	var req models.AuthMethodsRequest
	if !h.decode(w, r, "*Handler.setAuthMethods", bridge.CodeInvalidAuthMethod, &req) {
		return
	}
	respond(w, r, "*Handler.setAuthMethods", h.bridge.VaultManager.SetAuthMethods(r.Context(), req.AuthMethods))
}

func (h *Handler) getAuthMethods(w http.ResponseWriter, r *http.Request) {
	respond(w, r, "*Handler.getAuthMethods", h.bridge.VaultManager.GetAuthMethods(r.Context()))
}

func (h *Handler) getAllCredentials(w http.ResponseWriter, r *http.Request) {
	respond(w, r, "*Handler.getAllCredentials", h.bridge.VaultManager.GetAllCredentials(r.Context()))
}

func (h *Handler) clearClipboardAfterDelay(w http.ResponseWriter, r *http.Request) {
	var req models.ClipboardClearRequest
	if !h.decode(w, r, "*Handler.clearClipboardAfterDelay", bridge.CodeClipboardError, &req) {
		return
	}
	respond(w, r, "*Handler.clearClipboardAfterDelay", h.bridge.VaultManager.ClearClipboardAfterDelay(r.Context(), req.DelayInSeconds))
}
