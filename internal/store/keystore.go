// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-vault-bridge/internal/crypto"
	"github.com/MKhiriev/go-vault-bridge/models"
)

// KeychainFileName is the keychain entry inside the vault directory.
const KeychainFileName = "keychain.json"

// keychainKDFSettings are the Argon2id parameters used to derive the
// wrapping key from the device secret.
const keychainKDFSettings = `{"Iterations":1,"MemorySize":65536,"DegreeOfParallelism":4}`

type keychainEntry struct {
	Salt       string `json:"salt"`
	WrappedKey string `json:"wrappedKey"`
}

// fileKeyStore is a device keychain backed by one file. The vault key is
// sealed with a key derived from the device secret.
type fileKeyStore struct {
	path         string
	deviceSecret string
	cipher       crypto.VaultCipher
	mu           sync.Mutex
}

func NewFileKeyStore(dir, deviceSecret string, cipher crypto.VaultCipher) KeyStore {
	return &fileKeyStore{
		path:         filepath.Join(dir, KeychainFileName),
		deviceSecret: deviceSecret,
		cipher:       cipher,
	}
}

func (k *fileKeyStore) wrappingKey(salt string) ([]byte, error) {
	return k.cipher.DeriveKey(k.deviceSecret, models.KeyDerivationParams{
		Salt:               salt,
		EncryptionType:     models.EncryptionTypeArgon2id,
		EncryptionSettings: keychainKDFSettings,
	})
}

func (k *fileKeyStore) StoreKey(ctx context.Context, key []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	salt, err := k.cipher.GenerateSalt()
	if err != nil {
		return err
	}
	kek, err := k.wrappingKey(salt)
	if err != nil {
		return err
	}
	wrapped, err := k.cipher.Seal(key, kek)
	if err != nil {
		return fmt.Errorf("wrap key: %w", err)
	}

	data, err := json.Marshal(keychainEntry{
		Salt:       salt,
		WrappedKey: base64.StdEncoding.EncodeToString(wrapped),
	})
	if err != nil {
		return err
	}

	k.mu.Lock()
	defer k.mu.Unlock()
	if err = os.WriteFile(k.path, data, 0o600); err != nil {
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	return nil
}

func (k *fileKeyStore) LoadKey(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	k.mu.Lock()
	data, err := os.ReadFile(k.path)
	k.mu.Unlock()
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	var entry keychainEntry
	if err = json.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKeychainAuthFailed, err)
	}
	wrapped, err := base64.StdEncoding.DecodeString(entry.WrappedKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKeychainAuthFailed, err)
	}

	kek, err := k.wrappingKey(entry.Salt)
	if err != nil {
		return nil, err
	}
	key, err := k.cipher.Open(wrapped, kek)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKeychainAuthFailed, err)
	}
	return key, nil
}

func (k *fileKeyStore) DeleteKey(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	k.mu.Lock()
	defer k.mu.Unlock()

	if err := os.Remove(k.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete key: %w", err)
	}
	return nil
}
