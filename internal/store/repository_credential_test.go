// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-vault-bridge/internal/logger"
)

const (
	credNewer   = "11111111-1111-1111-1111-111111111111"
	credOlder   = "22222222-2222-2222-2222-222222222222"
	credDeleted = "33333333-3333-3333-3333-333333333333"
	credOrphan  = "44444444-4444-4444-4444-444444444444"
	serviceA    = "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa"
	aliasA      = "bbbbbbbb-bbbb-bbbb-bbbb-bbbbbbbbbbbb"
	pwOld       = "cccccccc-cccc-cccc-cccc-cccccccccccc"
	pwNew       = "dddddddd-dddd-dddd-dddd-dddddddddddd"
	pwRemoved   = "eeeeeeee-eeee-eeee-eeee-eeeeeeeeeeee"
)

func credentialVault(t *testing.T) VaultDatabase {
	t.Helper()
	image := buildImage(t,
		`CREATE TABLE Services (Id TEXT PRIMARY KEY, Name TEXT, Url TEXT, Logo BLOB, CreatedAt TEXT NOT NULL, UpdatedAt TEXT NOT NULL, IsDeleted INTEGER NOT NULL DEFAULT 0)`,
		`CREATE TABLE Aliases (Id TEXT PRIMARY KEY, Gender TEXT, FirstName TEXT, LastName TEXT, NickName TEXT, BirthDate TEXT, Email TEXT, CreatedAt TEXT NOT NULL, UpdatedAt TEXT NOT NULL, IsDeleted INTEGER NOT NULL DEFAULT 0)`,
		`CREATE TABLE Credentials (Id TEXT PRIMARY KEY, AliasId TEXT, ServiceId TEXT, Username TEXT, Notes TEXT, CreatedAt TEXT NOT NULL, UpdatedAt TEXT NOT NULL, IsDeleted INTEGER NOT NULL DEFAULT 0)`,
		`CREATE TABLE Passwords (Id TEXT PRIMARY KEY, CredentialId TEXT, Value TEXT, CreatedAt TEXT NOT NULL, UpdatedAt TEXT NOT NULL, IsDeleted INTEGER NOT NULL DEFAULT 0)`,

		`INSERT INTO Services VALUES ('`+serviceA+`', 'Example', 'https://example.com', x'89504e47', '2024-01-01 10:00:00', '2024-01-01 10:00:00', 0)`,
		`INSERT INTO Aliases VALUES ('`+aliasA+`', 'Female', 'Ada', 'Lovelace', 'ada', NULL, 'ada@example.com', '2024-01-01T10:00:00Z', '2024-01-01T10:00:00Z', 0)`,

		`INSERT INTO Credentials VALUES ('`+credNewer+`', '`+aliasA+`', '`+serviceA+`', 'ada', 'note', '2024-02-01 08:00:00.123', '2024-02-01 08:00:00.123', 0)`,
		`INSERT INTO Credentials VALUES ('`+credOlder+`', NULL, '`+serviceA+`', 'old', NULL, '2024-01-15 08:00:00', '2024-01-15 08:00:00', 0)`,
		`INSERT INTO Credentials VALUES ('`+credDeleted+`', NULL, '`+serviceA+`', 'gone', NULL, '2024-03-01 08:00:00', '2024-03-01 08:00:00', 1)`,
		`INSERT INTO Credentials VALUES ('`+credOrphan+`', NULL, NULL, 'no-service', NULL, '2024-03-02 08:00:00', '2024-03-02 08:00:00', 0)`,

		`INSERT INTO Passwords VALUES ('`+pwOld+`', '`+credNewer+`', 'old-secret', '2024-02-01 08:00:00', '2024-02-01 08:00:00', 0)`,
		`INSERT INTO Passwords VALUES ('`+pwNew+`', '`+credNewer+`', 'new-secret', '2024-02-02 08:00:00', '2024-02-02 08:00:00', 0)`,
		`INSERT INTO Passwords VALUES ('`+pwRemoved+`', '`+credNewer+`', 'removed', '2024-02-03 08:00:00', '2024-02-03 08:00:00', 1)`,
	)

	v := NewMemoryVaultDatabase(logger.Nop())
	require.NoError(t, v.Load(context.Background(), image))
	t.Cleanup(func() { v.Close() })
	return v
}

func TestGetAllCredentials(t *testing.T) {
	repo := NewCredentialRepository(credentialVault(t))

	creds, err := repo.GetAllCredentials(context.Background())
	require.NoError(t, err)
	require.Len(t, creds, 2, "deleted and service-less credentials are skipped")

	newest := creds[0]
	assert.Equal(t, credNewer, newest.ID.String())
	assert.Equal(t, "Example", *newest.Service.Name)
	assert.Equal(t, []byte{0x89, 0x50, 0x4e, 0x47}, newest.Service.Logo)
	assert.Equal(t, "ada", *newest.Username)
	assert.Equal(t, "note", *newest.Notes)
	assert.Equal(t, time.Date(2024, 2, 1, 8, 0, 0, 123_000_000, time.UTC), newest.CreatedAt)

	require.NotNil(t, newest.Password)
	assert.Equal(t, "new-secret", newest.Password.Value)
	assert.Equal(t, pwNew, newest.Password.ID.String())
	assert.Equal(t, newest.ID, newest.Password.CredentialID)

	require.NotNil(t, newest.Alias)
	assert.Equal(t, "Ada", *newest.Alias.FirstName)
	assert.Equal(t, time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC), newest.Alias.BirthDate)

	older := creds[1]
	assert.Equal(t, credOlder, older.ID.String())
	assert.Nil(t, older.Alias)
	assert.Nil(t, older.Password)
	assert.Nil(t, older.Notes)
}

func TestGetAllCredentials_LockedVault(t *testing.T) {
	repo := NewCredentialRepository(NewMemoryVaultDatabase(logger.Nop()))
	_, err := repo.GetAllCredentials(context.Background())
	assert.ErrorIs(t, err, ErrDatabaseNotInitialized)
}
