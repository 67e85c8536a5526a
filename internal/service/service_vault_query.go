// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-vault-bridge/internal/logger"
	"github.com/MKhiriev/go-vault-bridge/internal/store"
	"github.com/MKhiriev/go-vault-bridge/models"
)

// lockedErr turns store.ErrDatabaseNotInitialized into ErrVaultLocked while
// keeping the original error in the chain.
func lockedErr(err error) error {
	if errors.Is(err, store.ErrDatabaseNotInitialized) {
		return fmt.Errorf("%w: %w", ErrVaultLocked, err)
	}
	return err
}

func (v *vaultService) ExecuteQuery(ctx context.Context, query string, params []any) ([]models.QueryRow, error) {
	v.touch()

	rows, err := v.vault.Query(ctx, query, params)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "vaultService.ExecuteQuery").Msg("error executing query")
		return nil, lockedErr(err)
	}
	return rows, nil
}

func (v *vaultService) ExecuteUpdate(ctx context.Context, query string, params []any) (int64, error) {
	v.touch()

	affected, err := v.vault.Update(ctx, query, params)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "vaultService.ExecuteUpdate").Msg("error executing update")
		return 0, lockedErr(err)
	}
	return affected, nil
}

func (v *vaultService) ExecuteRaw(ctx context.Context, query string) error {
	v.touch()

	if err := v.vault.Raw(ctx, query); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "vaultService.ExecuteRaw").Msg("error executing raw query")
		return lockedErr(err)
	}
	return nil
}

func (v *vaultService) BeginTransaction(ctx context.Context) error {
	v.touch()
	return lockedErr(v.vault.Begin(ctx))
}

// CommitTransaction commits the open transaction and writes the database
// back to disk: export, encrypt with the cached key, store.
func (v *vaultService) CommitTransaction(ctx context.Context) error {
	log := logger.FromContext(ctx)
	v.touch()

	v.unlockMu.Lock()
	defer v.unlockMu.Unlock()

	if err := v.vault.Commit(ctx); err != nil {
		return lockedErr(err)
	}

	if err := v.persist(ctx); err != nil {
		log.Err(err).Str("func", "vaultService.CommitTransaction").Msg("error persisting vault database")
		return err
	}
	return nil
}

func (v *vaultService) persist(ctx context.Context) error {
	key := v.cachedKey()
	if key == nil {
		return fmt.Errorf("%w: %w", ErrVaultLocked, ErrNoEncryptionKey)
	}

	image, err := v.vault.Export(ctx)
	if err != nil {
		return fmt.Errorf("error exporting vault database: %w", lockedErr(err))
	}

	encrypted, err := v.cipher.SealDatabase(image, key)
	if err != nil {
		return fmt.Errorf("error encrypting vault database: %w", err)
	}

	if err = v.files.SaveEncryptedDatabase(ctx, encrypted); err != nil {
		return fmt.Errorf("error saving encrypted database: %w", err)
	}
	return nil
}

func (v *vaultService) RollbackTransaction(ctx context.Context) error {
	v.touch()
	return lockedErr(v.vault.Rollback(ctx))
}

func (v *vaultService) GetAllCredentials(ctx context.Context) ([]models.Credential, error) {
	v.touch()

	credentials, err := v.credentials.GetAllCredentials(ctx)
	if err != nil {
		return nil, lockedErr(err)
	}
	return credentials, nil
}
