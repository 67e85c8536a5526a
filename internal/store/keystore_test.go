// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-vault-bridge/internal/crypto"
)

func TestFileKeyStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	ks := NewFileKeyStore(dir, "device-secret", crypto.NewVaultCipher())

	_, err := ks.LoadKey(ctx)
	assert.ErrorIs(t, err, ErrKeyNotFound)

	key := bytes.Repeat([]byte{9}, crypto.KeySize)
	require.NoError(t, ks.StoreKey(ctx, key))

	raw, err := os.ReadFile(filepath.Join(dir, KeychainFileName))
	require.NoError(t, err)
	assert.NotContains(t, string(raw), string(key))

	got, err := ks.LoadKey(ctx)
	require.NoError(t, err)
	assert.Equal(t, key, got)

	require.NoError(t, ks.DeleteKey(ctx))
	require.NoError(t, ks.DeleteKey(ctx))
	_, err = ks.LoadKey(ctx)
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestFileKeyStore_WrongDeviceSecret(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	cipher := crypto.NewVaultCipher()

	require.NoError(t, NewFileKeyStore(dir, "right", cipher).StoreKey(ctx, bytes.Repeat([]byte{1}, crypto.KeySize)))

	_, err := NewFileKeyStore(dir, "wrong", cipher).LoadKey(ctx)
	assert.ErrorIs(t, err, ErrKeychainAuthFailed)
}

func TestFileKeyStore_CorruptEntry(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, KeychainFileName), []byte("{not json"), 0o600))

	_, err := NewFileKeyStore(dir, "s", crypto.NewVaultCipher()).LoadKey(context.Background())
	assert.ErrorIs(t, err, ErrKeychainAuthFailed)
}
