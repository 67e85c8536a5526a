// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// EncryptionTypeArgon2id is the only key derivation function understood by
// the vault.
const EncryptionTypeArgon2id = "Argon2Id"

// KeyDerivationParams describes how the vault encryption key is derived from
// the master password. It is stored as-is so that the vault can be unlocked
// again without a round trip to the server.
type KeyDerivationParams struct {
	Salt               string `json:"salt" validate:"required"`
	EncryptionType     string `json:"encryptionType" validate:"required"`
	EncryptionSettings string `json:"encryptionSettings" validate:"required"`
}

// Argon2Settings is the decoded form of KeyDerivationParams.EncryptionSettings.
// Field names follow the server's JSON casing.
type Argon2Settings struct {
	Iterations          uint32 `json:"Iterations"`
	MemorySize          uint32 `json:"MemorySize"`
	DegreeOfParallelism uint8  `json:"DegreeOfParallelism"`
}
