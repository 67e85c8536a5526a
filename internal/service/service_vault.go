// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/MKhiriev/go-vault-bridge/internal/config"
	"github.com/MKhiriev/go-vault-bridge/internal/crypto"
	"github.com/MKhiriev/go-vault-bridge/internal/logger"
	"github.com/MKhiriev/go-vault-bridge/internal/store"
	"github.com/MKhiriev/go-vault-bridge/models"
)

// Names of the rows in the settings table.
const (
	settingVaultMetadata       = "vault_metadata"
	settingKeyDerivationParams = "encryption_key_derivation_params"
	settingAutoLockTimeout     = "auto_lock_timeout"
	settingAuthMethods         = "auth_methods"
)

// vaultService is the concrete implementation of VaultService.
//
// The encryption key is cached in memory while the vault is in use. The
// decrypted database lives in store.VaultDatabase and is dropped on Lock.
type vaultService struct {
	files       store.VaultFileStorage
	settings    store.SettingsRepository
	vault       store.VaultDatabase
	keys        store.KeyStore
	credentials store.CredentialRepository
	cipher      crypto.VaultCipher

	// defaultAutoLock is used until the user stores a timeout.
	defaultAutoLock time.Duration

	// unlockMu serialises unlock, lock and commit so the cached key and the
	// loaded database always belong together.
	unlockMu sync.Mutex

	mu           sync.Mutex // guards key and lastActivity
	key          []byte
	lastActivity time.Time

	now    func() time.Time
	logger *logger.Logger
}

// NewVaultService wires the vault service to its storages.
func NewVaultService(storages *store.Storages, cipher crypto.VaultCipher, cfg config.Vault, logger *logger.Logger) VaultService {
	return &vaultService{
		files:           storages.Files,
		settings:        storages.Settings,
		vault:           storages.Vault,
		keys:            storages.Keys,
		credentials:     storages.Credentials,
		cipher:          cipher,
		defaultAutoLock: cfg.AutoLockTimeout,
		lastActivity:    time.Now(),
		now:             time.Now,
		logger:          logger,
	}
}

// touch records activity for the auto-lock.
func (v *vaultService) touch() {
	v.mu.Lock()
	v.lastActivity = v.now()
	v.mu.Unlock()
}

func (v *vaultService) cachedKey() []byte {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.key
}

func (v *vaultService) setKey(key []byte) {
	v.mu.Lock()
	v.key = key
	v.mu.Unlock()
}

// ── encrypted database ──────────────────────────────────────────────────────

func (v *vaultService) StoreDatabase(ctx context.Context, encryptedDatabase string) error {
	log := logger.FromContext(ctx)
	v.touch()

	if encryptedDatabase == "" {
		return fmt.Errorf("%w: empty encrypted database", ErrInvalidDataProvided)
	}

	if err := v.files.SaveEncryptedDatabase(ctx, encryptedDatabase); err != nil {
		log.Err(err).Str("func", "vaultService.StoreDatabase").Msg("error saving encrypted database")
		return fmt.Errorf("error saving encrypted database: %w", err)
	}
	return nil
}

func (v *vaultService) GetEncryptedDatabase(ctx context.Context) (string, error) {
	v.touch()

	encrypted, err := v.files.LoadEncryptedDatabase(ctx)
	if err != nil {
		return "", fmt.Errorf("error loading encrypted database: %w", err)
	}
	return encrypted, nil
}

func (v *vaultService) HasEncryptedDatabase(ctx context.Context) (bool, error) {
	return v.files.HasEncryptedDatabase(ctx)
}

// ── metadata ────────────────────────────────────────────────────────────────

func (v *vaultService) StoreMetadata(ctx context.Context, metadata string) error {
	v.touch()

	if !json.Valid([]byte(metadata)) {
		return ErrInvalidMetadata
	}
	if err := v.settings.Set(ctx, settingVaultMetadata, metadata); err != nil {
		return fmt.Errorf("error storing vault metadata: %w", err)
	}
	return nil
}

func (v *vaultService) GetVaultMetadata(ctx context.Context) (string, error) {
	v.touch()

	metadata, err := v.settings.Get(ctx, settingVaultMetadata)
	if errors.Is(err, store.ErrSettingNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("error loading vault metadata: %w", err)
	}
	return metadata, nil
}

func (v *vaultService) GetCurrentVaultRevisionNumber(ctx context.Context) (int64, error) {
	v.touch()

	metadata, err := v.settings.Get(ctx, settingVaultMetadata)
	if errors.Is(err, store.ErrSettingNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("error loading vault metadata: %w", err)
	}

	doc, err := decodeMetadata(metadata)
	if err != nil {
		return 0, err
	}

	raw, ok := doc[models.VaultRevisionNumberField]
	if !ok || string(raw) == "null" {
		return 0, nil
	}

	var revision int64
	if err = json.Unmarshal(raw, &revision); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidMetadata, err)
	}
	return revision, nil
}

func (v *vaultService) SetCurrentVaultRevisionNumber(ctx context.Context, revision int64) error {
	log := logger.FromContext(ctx)
	v.touch()

	err := v.settings.Update(ctx, settingVaultMetadata, func(current string, found bool) (string, error) {
		doc := make(map[string]json.RawMessage)
		if found && current != "" {
			decoded, err := decodeMetadata(current)
			if err != nil {
				return "", err
			}
			doc = decoded
		}

		doc[models.VaultRevisionNumberField] = json.RawMessage(strconv.FormatInt(revision, 10))

		updated, err := json.Marshal(doc)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrInvalidMetadata, err)
		}
		return string(updated), nil
	})
	if err != nil {
		log.Err(err).Str("func", "vaultService.SetCurrentVaultRevisionNumber").Int64("revision", revision).Msg("error setting revision number")
		return fmt.Errorf("error setting revision number: %w", err)
	}
	return nil
}

// decodeMetadata keeps every field as raw JSON so unknown fields survive a
// rewrite.
func decodeMetadata(metadata string) (map[string]json.RawMessage, error) {
	doc := make(map[string]json.RawMessage)
	if err := json.Unmarshal([]byte(metadata), &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMetadata, err)
	}
	return doc, nil
}

// ── keys ────────────────────────────────────────────────────────────────────

func (v *vaultService) StoreEncryptionKey(ctx context.Context, base64Key string) error {
	v.touch()

	key, err := base64.StdEncoding.DecodeString(base64Key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEncryptionKey, err)
	}
	if len(key) != crypto.KeySize {
		return fmt.Errorf("%w: %w", ErrInvalidEncryptionKey, crypto.ErrInvalidKeyLength)
	}

	v.storeKey(ctx, key)
	return nil
}

// storeKey caches key and mirrors it into the keychain when faceid is
// enabled. A keychain failure is logged only: the key stays usable for this
// session.
func (v *vaultService) storeKey(ctx context.Context, key []byte) {
	log := logger.FromContext(ctx)
	v.setKey(key)

	methods, err := v.authMethods(ctx)
	if err != nil {
		log.Err(err).Str("func", "vaultService.storeKey").Msg("error reading auth methods")
		return
	}
	if !methods.Contains(models.AuthMethodFaceID) {
		return
	}
	if err = v.keys.StoreKey(ctx, key); err != nil {
		log.Err(err).Str("func", "vaultService.storeKey").Msg("failed to save encryption key to keychain")
	}
}

func (v *vaultService) StoreEncryptionKeyDerivationParams(ctx context.Context, params string) error {
	v.touch()

	var decoded models.KeyDerivationParams
	if err := json.Unmarshal([]byte(params), &decoded); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidKeyDerivationParams, err)
	}
	if err := v.settings.Set(ctx, settingKeyDerivationParams, params); err != nil {
		return fmt.Errorf("error storing key derivation params: %w", err)
	}
	return nil
}

func (v *vaultService) GetEncryptionKeyDerivationParams(ctx context.Context) (string, error) {
	v.touch()

	params, err := v.settings.Get(ctx, settingKeyDerivationParams)
	if errors.Is(err, store.ErrSettingNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("error loading key derivation params: %w", err)
	}
	return params, nil
}

// ── settings ────────────────────────────────────────────────────────────────

func (v *vaultService) SetAutoLockTimeout(ctx context.Context, seconds int64) error {
	v.touch()

	if seconds < 0 {
		return ErrInvalidAutoLockTimeout
	}
	if err := v.settings.Set(ctx, settingAutoLockTimeout, strconv.FormatInt(seconds, 10)); err != nil {
		return fmt.Errorf("error storing auto-lock timeout: %w", err)
	}
	return nil
}

func (v *vaultService) GetAutoLockTimeout(ctx context.Context) (int64, error) {
	value, err := v.settings.Get(ctx, settingAutoLockTimeout)
	if errors.Is(err, store.ErrSettingNotFound) {
		return int64(v.defaultAutoLock / time.Second), nil
	}
	if err != nil {
		return 0, fmt.Errorf("error loading auto-lock timeout: %w", err)
	}

	seconds, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error parsing auto-lock timeout %q: %w", value, err)
	}
	return seconds, nil
}

func (v *vaultService) SetAuthMethods(ctx context.Context, names []string) error {
	log := logger.FromContext(ctx)
	v.touch()

	methods, err := models.ParseAuthMethods(names)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err = v.settings.Set(ctx, settingAuthMethods, strconv.Itoa(int(methods))); err != nil {
		return fmt.Errorf("error storing auth methods: %w", err)
	}

	if !methods.Contains(models.AuthMethodFaceID) {
		if err = v.keys.DeleteKey(ctx); err != nil {
			log.Err(err).Str("func", "vaultService.SetAuthMethods").Msg("error removing key from keychain")
			return fmt.Errorf("error removing key from keychain: %w", err)
		}
		return nil
	}

	// faceid just got enabled while the key is known: keep it for the next
	// unlock.
	if key := v.cachedKey(); key != nil {
		if err = v.keys.StoreKey(ctx, key); err != nil {
			log.Err(err).Str("func", "vaultService.SetAuthMethods").Msg("failed to save encryption key to keychain")
		}
	}
	return nil
}

func (v *vaultService) GetAuthMethods(ctx context.Context) ([]string, error) {
	methods, err := v.authMethods(ctx)
	if err != nil {
		return nil, err
	}
	return methods.Strings(), nil
}

func (v *vaultService) authMethods(ctx context.Context) (models.AuthMethods, error) {
	value, err := v.settings.Get(ctx, settingAuthMethods)
	if errors.Is(err, store.ErrSettingNotFound) {
		return models.DefaultAuthMethods, nil
	}
	if err != nil {
		return 0, fmt.Errorf("error loading auth methods: %w", err)
	}

	raw, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("error parsing auth methods %q: %w", value, err)
	}
	return models.AuthMethods(raw), nil
}
