// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-vault-bridge/models"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer, withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get(models.RouteVersion, h.getServerVersion)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth, h.withHashing)

		r.Get(models.RouteModules, h.listModules)

		r.Post(models.RouteGetEncryptedDatabase, h.getEncryptedDatabase)
		r.Post(models.RouteStoreDatabase, h.storeDatabase)
		r.Post(models.RouteHasEncryptedDatabase, h.hasEncryptedDatabase)
		r.Post(models.RouteClearVault, h.clearVault)

		r.Post(models.RouteStoreMetadata, h.storeMetadata)
		r.Post(models.RouteGetVaultMetadata, h.getVaultMetadata)
		r.Post(models.RouteGetCurrentVaultRevisionNumber, h.getCurrentVaultRevisionNumber)
		r.Post(models.RouteSetCurrentVaultRevisionNumber, h.setCurrentVaultRevisionNumber)

		r.Post(models.RouteStoreEncryptionKey, h.storeEncryptionKey)
		r.Post(models.RouteStoreEncryptionKeyDerivationParams, h.storeEncryptionKeyDerivationParams)
		r.Post(models.RouteGetEncryptionKeyDerivationParams, h.getEncryptionKeyDerivationParams)
		r.Post(models.RouteUnlockWithPassword, h.unlockWithPassword)
		r.Post(models.RouteUnlockVault, h.unlockVault)
		r.Post(models.RouteIsVaultUnlocked, h.isVaultUnlocked)
		r.Post(models.RouteLock, h.lock)

		r.Post(models.RouteExecuteQuery, h.executeQuery)
		r.Post(models.RouteExecuteUpdate, h.executeUpdate)
		r.Post(models.RouteExecuteRaw, h.executeRaw)
		r.Post(models.RouteBeginTransaction, h.beginTransaction)
		r.Post(models.RouteCommitTransaction, h.commitTransaction)
		r.Post(models.RouteRollbackTransaction, h.rollbackTransaction)

		r.Post(models.RouteSetAutoLockTimeout, h.setAutoLockTimeout)
		r.Post(models.RouteGetAutoLockTimeout, h.getAutoLockTimeout)
		r.Post(models.RouteSetAuthMethods, h.setAuthMethods)
		r.Post(models.RouteGetAuthMethods, h.getAuthMethods)

		r.Post(models.RouteGetAllCredentials, h.getAllCredentials)
		r.Post(models.RouteClearClipboardAfterDelay, h.clearClipboardAfterDelay)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
