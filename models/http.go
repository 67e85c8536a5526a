// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Request bodies of the bridge HTTP endpoints. Field tags follow the names
// the application layer already uses when calling the native module.

// StoreDatabaseRequest carries a new encrypted database blob.
type StoreDatabaseRequest struct {
	EncryptedDatabase string `json:"encryptedDatabase" validate:"required,base64"`
}

// StoreMetadataRequest carries the raw vault metadata JSON.
type StoreMetadataRequest struct {
	Metadata string `json:"metadata" validate:"required,json"`
}

// RevisionNumberRequest sets the current vault revision number. No range is
// enforced.
type RevisionNumberRequest struct {
	RevisionNumber int64 `json:"revisionNumber"`
}

// StoreEncryptionKeyRequest carries the base64 encoded vault key.
type StoreEncryptionKeyRequest struct {
	EncryptionKey string `json:"encryptionKey" validate:"required,base64"`
}

// StoreKeyDerivationParamsRequest carries the raw key derivation params JSON.
type StoreKeyDerivationParamsRequest struct {
	KeyDerivationParams string `json:"keyDerivationParams" validate:"required,json"`
}

// UnlockWithPasswordRequest unlocks the vault with the master password.
type UnlockWithPasswordRequest struct {
	Password string `json:"password" validate:"required"`
}

// QueryRequest is a parameterised SQL statement for the unlocked vault.
type QueryRequest struct {
	Query  string `json:"query" validate:"required"`
	Params []any  `json:"params"`
}

// RawQueryRequest is an unparameterised, possibly multi-statement SQL script.
type RawQueryRequest struct {
	Query string `json:"query" validate:"required"`
}

// AutoLockTimeoutRequest sets the auto-lock timeout in seconds.
type AutoLockTimeoutRequest struct {
	Timeout int64 `json:"timeout" validate:"min=0"`
}

// AuthMethodsRequest sets the enabled auth methods by wire name.
type AuthMethodsRequest struct {
	AuthMethods []string `json:"authMethods" validate:"dive,oneof=faceid password"`
}

// ClipboardClearRequest schedules a clipboard clear.
type ClipboardClearRequest struct {
	DelayInSeconds float64 `json:"delayInSeconds"`
}
