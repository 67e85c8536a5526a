// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-vault-bridge/internal/crypto"
	"github.com/MKhiriev/go-vault-bridge/internal/logger"
	"github.com/MKhiriev/go-vault-bridge/internal/store"
	"github.com/MKhiriev/go-vault-bridge/models"
)

// UnlockVault decrypts the stored database and loads it into memory.
//
// A cached key gets one attempt; when it fails the cache is dropped and the
// keychain key is tried. The call resolves false instead of failing when
// there is no database, no key, the keychain entry cannot be opened or the
// decrypted payload is not base64.
func (v *vaultService) UnlockVault(ctx context.Context) (bool, error) {
	log := logger.FromContext(ctx)

	v.unlockMu.Lock()
	defer v.unlockMu.Unlock()

	has, err := v.files.HasEncryptedDatabase(ctx)
	if err != nil {
		return false, fmt.Errorf("error checking encrypted database: %w", err)
	}
	if !has {
		log.Info().Str("func", "vaultService.UnlockVault").Msg("no encrypted database found")
		return false, nil
	}

	encrypted, err := v.files.LoadEncryptedDatabase(ctx)
	if errors.Is(err, store.ErrEncryptedDatabaseNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("error loading encrypted database: %w", err)
	}

	if key := v.cachedKey(); key != nil {
		if err = v.openVault(ctx, encrypted, key); err == nil {
			v.touch()
			return true, nil
		}
		log.Warn().Err(err).Str("func", "vaultService.UnlockVault").Msg("first decryption attempt with cached key failed")
		v.setKey(nil)
	}

	key, err := v.keychainKey(ctx)
	if errors.Is(err, ErrNoEncryptionKey) || errors.Is(err, store.ErrKeyNotFound) || errors.Is(err, store.ErrKeychainAuthFailed) {
		log.Info().Err(err).Str("func", "vaultService.UnlockVault").Msg("no usable encryption key")
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("error loading key from keychain: %w", err)
	}

	if err = v.openVault(ctx, encrypted, key); err != nil {
		if errors.Is(err, crypto.ErrInvalidPayload) {
			return false, nil
		}
		log.Err(err).Str("func", "vaultService.UnlockVault").Msg("second decryption attempt failed")
		return false, fmt.Errorf("%w: %w", ErrUnlockFailed, err)
	}

	v.setKey(key)
	v.touch()
	return true, nil
}

// keychainKey returns the keychain key when faceid is enabled.
func (v *vaultService) keychainKey(ctx context.Context) ([]byte, error) {
	methods, err := v.authMethods(ctx)
	if err != nil {
		return nil, err
	}
	if !methods.Contains(models.AuthMethodFaceID) {
		return nil, ErrNoEncryptionKey
	}
	return v.keys.LoadKey(ctx)
}

func (v *vaultService) openVault(ctx context.Context, encrypted string, key []byte) error {
	image, err := v.cipher.OpenDatabase(encrypted, key)
	if err != nil {
		return err
	}
	return v.vault.Load(ctx, image)
}

func (v *vaultService) UnlockWithPassword(ctx context.Context, password string) (bool, error) {
	log := logger.FromContext(ctx)

	if password == "" {
		return false, fmt.Errorf("%w: empty password", ErrInvalidDataProvided)
	}

	raw, err := v.settings.Get(ctx, settingKeyDerivationParams)
	if errors.Is(err, store.ErrSettingNotFound) {
		return false, ErrNoKeyDerivationParams
	}
	if err != nil {
		return false, fmt.Errorf("error loading key derivation params: %w", err)
	}

	var params models.KeyDerivationParams
	if err = json.Unmarshal([]byte(raw), &params); err != nil {
		return false, fmt.Errorf("%w: %w", ErrInvalidKeyDerivationParams, err)
	}

	key, err := v.cipher.DeriveKey(password, params)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrInvalidKeyDerivationParams, err)
	}

	v.unlockMu.Lock()
	defer v.unlockMu.Unlock()

	encrypted, err := v.files.LoadEncryptedDatabase(ctx)
	if errors.Is(err, store.ErrEncryptedDatabaseNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("error loading encrypted database: %w", err)
	}

	if err = v.openVault(ctx, encrypted, key); err != nil {
		if errors.Is(err, crypto.ErrDecryptionFailed) || errors.Is(err, crypto.ErrInvalidPayload) {
			log.Info().Str("func", "vaultService.UnlockWithPassword").Msg("wrong master password")
			return false, nil
		}
		return false, fmt.Errorf("%w: %w", ErrUnlockFailed, err)
	}

	v.storeKey(ctx, key)
	v.touch()
	return true, nil
}

func (v *vaultService) IsVaultUnlocked(ctx context.Context) bool {
	return v.vault.IsOpen()
}

func (v *vaultService) Lock(ctx context.Context) error {
	v.unlockMu.Lock()
	defer v.unlockMu.Unlock()
	return v.lock(ctx)
}

func (v *vaultService) lock(ctx context.Context) error {
	v.setKey(nil)
	if err := v.vault.Close(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "vaultService.lock").Msg("error closing vault database")
		return fmt.Errorf("error closing vault database: %w", err)
	}
	return nil
}

// ClearVault locks the vault and removes the encrypted database, the
// metadata and the keychain entry.
func (v *vaultService) ClearVault(ctx context.Context) error {
	v.unlockMu.Lock()
	defer v.unlockMu.Unlock()

	var errs []error
	if err := v.lock(ctx); err != nil {
		errs = append(errs, err)
	}
	if err := v.files.RemoveEncryptedDatabase(ctx); err != nil {
		errs = append(errs, fmt.Errorf("error removing encrypted database: %w", err))
	}
	if err := v.settings.Delete(ctx, settingVaultMetadata, settingKeyDerivationParams); err != nil {
		errs = append(errs, fmt.Errorf("error removing vault settings: %w", err))
	}
	if err := v.keys.DeleteKey(ctx); err != nil {
		errs = append(errs, fmt.Errorf("error removing key from keychain: %w", err))
	}
	return errors.Join(errs...)
}

// LockIfIdle locks an unlocked vault once the auto-lock timeout elapsed
// since the last activity. A timeout of 0 disables the auto-lock.
func (v *vaultService) LockIfIdle(ctx context.Context, now time.Time) (bool, error) {
	if !v.vault.IsOpen() {
		return false, nil
	}

	seconds, err := v.GetAutoLockTimeout(ctx)
	if err != nil {
		return false, err
	}
	if seconds <= 0 {
		return false, nil
	}

	v.mu.Lock()
	idle := now.Sub(v.lastActivity)
	v.mu.Unlock()

	if idle < time.Duration(seconds)*time.Second {
		return false, nil
	}

	logger.FromContext(ctx).Info().
		Str("func", "vaultService.LockIfIdle").
		Dur("idle", idle).
		Msg("auto-lock timeout elapsed, locking vault")
	if err = v.Lock(ctx); err != nil {
		return false, err
	}
	return true, nil
}
