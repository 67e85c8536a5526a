// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "github.com/MKhiriev/go-vault-bridge/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/vault_cipher_mock.go -package=mock

// VaultCipher holds all symmetric cryptography of the vault. It knows
// nothing about files, settings or the bridge.
//
// Layout of a sealed blob:
//
//	nonce (12 bytes) ‖ ciphertext ‖ GCM tag (16 bytes)
//
// An encrypted database as stored on disk is
//
//	base64( Seal( base64(sqlite file bytes), key ) )
type VaultCipher interface {
	// GenerateKey returns 32 random bytes usable as a vault or wrapping key.
	GenerateKey() ([]byte, error)

	// GenerateSalt returns a random printable salt for key derivation.
	GenerateSalt() (string, error)

	// DeriveKey runs the key derivation described by params over password
	// and returns a 32 byte key.
	DeriveKey(password string, params models.KeyDerivationParams) ([]byte, error)

	// Seal encrypts plaintext with AES-256-GCM under key.
	Seal(plaintext, key []byte) ([]byte, error)

	// Open reverses Seal. Authentication failures return ErrDecryptionFailed.
	Open(blob, key []byte) ([]byte, error)

	// SealDatabase turns a sqlite file image into the stored base64 form.
	SealDatabase(sqlite, key []byte) (string, error)

	// OpenDatabase turns the stored base64 form back into a sqlite file
	// image. A payload that decrypts but is not base64 returns
	// ErrInvalidPayload.
	OpenDatabase(encrypted string, key []byte) ([]byte, error)
}
