// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-vault-bridge/models"
	"golang.org/x/crypto/argon2"
)

// KeySize is the length in bytes of every AES key used by the vault.
const KeySize = 32

const saltSize = 16

type vaultCipher struct {
	random io.Reader
}

// NewVaultCipher returns a VaultCipher reading randomness from crypto/rand.
func NewVaultCipher() VaultCipher {
	return &vaultCipher{random: rand.Reader}
}

func (v *vaultCipher) GenerateKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := io.ReadFull(v.random, key); err != nil {
		return nil, fmt.Errorf("generate key: %w", err)
	}
	return key, nil
}

func (v *vaultCipher) GenerateSalt() (string, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(v.random, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	return base64.RawStdEncoding.EncodeToString(salt), nil
}

// DeriveKey implements VaultCipher. Only Argon2id is supported; the salt is
// used as its UTF-8 bytes.
func (v *vaultCipher) DeriveKey(password string, params models.KeyDerivationParams) ([]byte, error) {
	if !strings.EqualFold(params.EncryptionType, models.EncryptionTypeArgon2id) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedKDF, params.EncryptionType)
	}

	var settings models.Argon2Settings
	if err := json.Unmarshal([]byte(params.EncryptionSettings), &settings); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKDFSettings, err)
	}
	if settings.Iterations == 0 || settings.MemorySize == 0 || settings.DegreeOfParallelism == 0 {
		return nil, ErrInvalidKDFSettings
	}

	return argon2.IDKey(
		[]byte(password),
		[]byte(params.Salt),
		settings.Iterations,
		settings.MemorySize,
		settings.DegreeOfParallelism,
		KeySize,
	), nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, ErrInvalidKeyLength
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}

func (v *vaultCipher) Seal(plaintext, key []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(v.random, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

func (v *vaultCipher) Open(blob, key []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonceSize := gcm.NonceSize()
	if len(blob) < nonceSize+gcm.Overhead() {
		return nil, ErrCiphertextTooShort
	}

	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}

	return plaintext, nil
}

func (v *vaultCipher) SealDatabase(sqlite, key []byte) (string, error) {
	inner := base64.StdEncoding.EncodeToString(sqlite)
	sealed, err := v.Seal([]byte(inner), key)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(sealed), nil
}

func (v *vaultCipher) OpenDatabase(encrypted string, key []byte) ([]byte, error) {
	blob, err := base64.StdEncoding.DecodeString(encrypted)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEncoding, err)
	}

	inner, err := v.Open(blob, key)
	if err != nil {
		return nil, err
	}

	sqlite, err := base64.StdEncoding.DecodeString(string(inner))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}

	return sqlite, nil
}
