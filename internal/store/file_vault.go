// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// EncryptedDatabaseFileName is the file inside the vault directory that
// holds the encrypted database.
const EncryptedDatabaseFileName = "encrypted_db.sqlite"

// vaultFileStorage keeps the base64 encrypted database as a single file.
// Writes go to a temp file first and are renamed into place.
type vaultFileStorage struct {
	dir string
	mu  sync.RWMutex
}

func NewVaultFileStorage(dir string) (VaultFileStorage, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create vault dir: %w", err)
	}
	return &vaultFileStorage{dir: dir}, nil
}

func (s *vaultFileStorage) path() string {
	return filepath.Join(s.dir, EncryptedDatabaseFileName)
}

func (s *vaultFileStorage) SaveEncryptedDatabase(ctx context.Context, encrypted string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(s.dir, EncryptedDatabaseFileName+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err = tmp.WriteString(encrypted); err != nil {
		tmp.Close()
		return fmt.Errorf("write encrypted database: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync encrypted database: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close encrypted database: %w", err)
	}
	if err = os.Chmod(tmpName, 0o600); err != nil {
		return fmt.Errorf("chmod encrypted database: %w", err)
	}

	if err = os.Rename(tmpName, s.path()); err != nil {
		return fmt.Errorf("replace encrypted database: %w", err)
	}
	return nil
}

func (s *vaultFileStorage) LoadEncryptedDatabase(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path())
	if errors.Is(err, fs.ErrNotExist) {
		return "", ErrEncryptedDatabaseNotFound
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	return string(data), nil
}

func (s *vaultFileStorage) HasEncryptedDatabase(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	info, err := os.Stat(s.path())
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	return info.Size() > 0, nil
}

func (s *vaultFileStorage) RemoveEncryptedDatabase(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove encrypted database: %w", err)
	}
	return nil
}
