// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// HTTP routes of the vault daemon. Every vault route takes a POST with a
// JSON body (possibly empty) and answers with BridgeResult or
// BridgeRejection.
const (
	RouteVersion = "/api/version"
	RouteModules = "/api/modules"

	RouteVaultPrefix = "/api/vault"

	RouteGetEncryptedDatabase               = RouteVaultPrefix + "/get-encrypted-database"
	RouteStoreDatabase                      = RouteVaultPrefix + "/store-database"
	RouteHasEncryptedDatabase               = RouteVaultPrefix + "/has-encrypted-database"
	RouteClearVault                         = RouteVaultPrefix + "/clear-vault"
	RouteStoreMetadata                      = RouteVaultPrefix + "/store-metadata"
	RouteGetVaultMetadata                   = RouteVaultPrefix + "/get-vault-metadata"
	RouteGetCurrentVaultRevisionNumber      = RouteVaultPrefix + "/get-current-vault-revision-number"
	RouteSetCurrentVaultRevisionNumber      = RouteVaultPrefix + "/set-current-vault-revision-number"
	RouteStoreEncryptionKey                 = RouteVaultPrefix + "/store-encryption-key"
	RouteStoreEncryptionKeyDerivationParams = RouteVaultPrefix + "/store-encryption-key-derivation-params"
	RouteGetEncryptionKeyDerivationParams   = RouteVaultPrefix + "/get-encryption-key-derivation-params"
	RouteUnlockWithPassword                 = RouteVaultPrefix + "/unlock-with-password"
	RouteUnlockVault                        = RouteVaultPrefix + "/unlock-vault"
	RouteIsVaultUnlocked                    = RouteVaultPrefix + "/is-vault-unlocked"
	RouteLock                               = RouteVaultPrefix + "/lock"
	RouteExecuteQuery                       = RouteVaultPrefix + "/execute-query"
	RouteExecuteUpdate                      = RouteVaultPrefix + "/execute-update"
	RouteExecuteRaw                         = RouteVaultPrefix + "/execute-raw"
	RouteBeginTransaction                   = RouteVaultPrefix + "/begin-transaction"
	RouteCommitTransaction                  = RouteVaultPrefix + "/commit-transaction"
	RouteRollbackTransaction                = RouteVaultPrefix + "/rollback-transaction"
	RouteSetAutoLockTimeout                 = RouteVaultPrefix + "/set-auto-lock-timeout"
	RouteGetAutoLockTimeout                 = RouteVaultPrefix + "/get-auto-lock-timeout"
	RouteSetAuthMethods                     = RouteVaultPrefix + "/set-auth-methods"
	RouteGetAuthMethods                     = RouteVaultPrefix + "/get-auth-methods"
	RouteGetAllCredentials                  = RouteVaultPrefix + "/get-all-credentials"
	RouteClearClipboardAfterDelay           = RouteVaultPrefix + "/clear-clipboard-after-delay"
)

// HashHeader carries the hex HMAC-SHA256 of a request or response body.
const HashHeader = "HashSHA256"
