// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by the storages. Match them with errors.Is.
var (
	ErrEncryptedDatabaseNotFound = errors.New("encrypted database not found")
	ErrSettingNotFound           = errors.New("setting not found")
	ErrDatabaseNotInitialized    = errors.New("database not initialized")
	ErrInvalidDatabaseImage      = errors.New("invalid sqlite database image")
	ErrInvalidBlobParam          = errors.New("invalid base64 blob parameter")
	ErrKeyNotFound               = errors.New("no key in keychain")
	ErrKeychainAuthFailed        = errors.New("keychain authentication failed")
	ErrStorageUnavailable        = errors.New("storage unavailable")
)

// Low-level database errors wrapped by the repositories.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrScanningRow          = errors.New("failed to scan row")
)
