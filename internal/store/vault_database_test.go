// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-vault-bridge/internal/logger"
	"github.com/MKhiriev/go-vault-bridge/models"
)

// buildImage creates a sqlite file with the given statements and returns
// its bytes.
func buildImage(t *testing.T, statements ...string) []byte {
	t.Helper()
	path := filepath.Join(t.TempDir(), "image.sqlite")
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	for _, stmt := range statements {
		_, err = db.Exec(stmt)
		require.NoError(t, err, stmt)
	}
	require.NoError(t, db.Close())

	image, err := os.ReadFile(path)
	require.NoError(t, err)
	return image
}

func sampleImage(t *testing.T) []byte {
	return buildImage(t,
		`CREATE TABLE Items (Id TEXT PRIMARY KEY, Name TEXT NOT NULL, Data BLOB, Score REAL, Count INTEGER)`,
		`CREATE INDEX IX_Items_Name ON Items (Name)`,
		`CREATE TABLE Counters (Id INTEGER PRIMARY KEY AUTOINCREMENT, Label TEXT)`,
		`INSERT INTO Items VALUES ('a', 'first', x'0102', 1.5, 10)`,
		`INSERT INTO Items VALUES ('b', 'second', NULL, NULL, 20)`,
		`INSERT INTO Counters (Label) VALUES ('one'), ('two')`,
	)
}

func loadedVault(t *testing.T) VaultDatabase {
	t.Helper()
	v := NewMemoryVaultDatabase(logger.Nop())
	require.NoError(t, v.Load(context.Background(), sampleImage(t)))
	t.Cleanup(func() { v.Close() })
	return v
}

func TestVaultDatabase_ClosedOperationsFail(t *testing.T) {
	ctx := context.Background()
	v := NewMemoryVaultDatabase(logger.Nop())

	assert.False(t, v.IsOpen())
	_, err := v.Query(ctx, "SELECT 1", nil)
	assert.ErrorIs(t, err, ErrDatabaseNotInitialized)
	_, err = v.Update(ctx, "DELETE FROM Items", nil)
	assert.ErrorIs(t, err, ErrDatabaseNotInitialized)
	assert.ErrorIs(t, v.Raw(ctx, "SELECT 1"), ErrDatabaseNotInitialized)
	assert.ErrorIs(t, v.Begin(ctx), ErrDatabaseNotInitialized)
	assert.ErrorIs(t, v.Commit(ctx), ErrDatabaseNotInitialized)
	assert.ErrorIs(t, v.Rollback(ctx), ErrDatabaseNotInitialized)
	_, err = v.Export(ctx)
	assert.ErrorIs(t, err, ErrDatabaseNotInitialized)
	assert.NoError(t, v.Close())
}

func TestVaultDatabase_LoadRejectsGarbage(t *testing.T) {
	v := NewMemoryVaultDatabase(logger.Nop())
	err := v.Load(context.Background(), []byte("definitely not sqlite"))
	assert.ErrorIs(t, err, ErrInvalidDatabaseImage)
	assert.False(t, v.IsOpen())
}

func TestVaultDatabase_QueryValues(t *testing.T) {
	v := loadedVault(t)

	rows, err := v.Query(context.Background(), "SELECT Id, Name, Data, Score, Count FROM Items ORDER BY Id", nil)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, models.QueryRow{
		"Id":    "a",
		"Name":  "first",
		"Data":  base64.StdEncoding.EncodeToString([]byte{1, 2}),
		"Score": 1.5,
		"Count": int64(10),
	}, rows[0])
	assert.Nil(t, rows[1]["Data"])
	assert.Nil(t, rows[1]["Score"])
}

func TestVaultDatabase_QueryEmptyResultIsNotNil(t *testing.T) {
	v := loadedVault(t)
	rows, err := v.Query(context.Background(), "SELECT * FROM Items WHERE Id = ?", []any{"zzz"})
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestVaultDatabase_LoadCopiesIndexesAndSequence(t *testing.T) {
	v := loadedVault(t)
	ctx := context.Background()

	rows, err := v.Query(ctx, "SELECT name FROM sqlite_master WHERE type = 'index' AND name = 'IX_Items_Name'", nil)
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	_, err = v.Update(ctx, "INSERT INTO Counters (Label) VALUES (?)", []any{"three"})
	require.NoError(t, err)
	rows, err = v.Query(ctx, "SELECT Id FROM Counters WHERE Label = 'three'", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(3), rows[0]["Id"])
}

func TestVaultDatabase_UpdateBindsParams(t *testing.T) {
	v := loadedVault(t)
	ctx := context.Background()

	blob := base64.StdEncoding.EncodeToString([]byte("logo"))
	affected, err := v.Update(ctx, "INSERT INTO Items (Id, Name, Data, Count) VALUES (?, ?, ?, ?)",
		[]any{"c", "third", models.BlobParamPrefix + blob, float64(30)})
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	rows, err := v.Query(ctx, "SELECT Data, typeof(Data) AS t, typeof(Count) AS ct FROM Items WHERE Id = ?", []any{"c"})
	require.NoError(t, err)
	assert.Equal(t, blob, rows[0]["Data"])
	assert.Equal(t, "blob", rows[0]["t"])
	assert.Equal(t, "integer", rows[0]["ct"])

	affected, err = v.Update(ctx, "UPDATE Items SET Count = Count + 1", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(3), affected)
}

func TestVaultDatabase_UpdateRejectsBadBlob(t *testing.T) {
	v := loadedVault(t)
	_, err := v.Update(context.Background(), "UPDATE Items SET Data = ?", []any{models.BlobParamPrefix + "%%%"})
	assert.ErrorIs(t, err, ErrInvalidBlobParam)
}

func TestVaultDatabase_RawSkipsTransactionControl(t *testing.T) {
	v := loadedVault(t)
	ctx := context.Background()

	err := v.Raw(ctx, `BEGIN TRANSACTION;
		CREATE TABLE Notes (Id TEXT);
		INSERT INTO Notes VALUES ('n1');
		COMMIT;`)
	require.NoError(t, err)

	rows, err := v.Query(ctx, "SELECT Id FROM Notes", nil)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func Test_isTransactionControl(t *testing.T) {
	tests := []struct {
		stmt string
		want bool
	}{
		{stmt: "BEGIN TRANSACTION", want: true},
		{stmt: "begin transaction", want: true},
		{stmt: "COMMIT", want: true},
		{stmt: "ROLLBACK", want: true},
		{stmt: "BEGIN IMMEDIATE", want: false},
		{stmt: "BEGIN", want: false},
		{stmt: "INSERT INTO Notes VALUES ('BEGIN TRANSACTION')", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.stmt, func(t *testing.T) {
			assert.Equal(t, tt.want, isTransactionControl(tt.stmt))
		})
	}
}

func TestVaultDatabase_TransactionRollback(t *testing.T) {
	v := loadedVault(t)
	ctx := context.Background()

	require.NoError(t, v.Begin(ctx))
	_, err := v.Update(ctx, "DELETE FROM Items", nil)
	require.NoError(t, err)
	require.NoError(t, v.Rollback(ctx))

	rows, err := v.Query(ctx, "SELECT Id FROM Items", nil)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestVaultDatabase_ExportRoundTrip(t *testing.T) {
	v := loadedVault(t)
	ctx := context.Background()

	require.NoError(t, v.Begin(ctx))
	_, err := v.Update(ctx, "DELETE FROM Items WHERE Id = ?", []any{"b"})
	require.NoError(t, err)
	require.NoError(t, v.Commit(ctx))

	image, err := v.Export(ctx)
	require.NoError(t, err)
	assert.Equal(t, sqliteHeader, image[:len(sqliteHeader)])

	other := NewMemoryVaultDatabase(logger.Nop())
	require.NoError(t, other.Load(ctx, image))
	defer other.Close()

	rows, err := other.Query(ctx, "SELECT Id FROM Items", nil)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "a", rows[0]["Id"])
}

func TestVaultDatabase_CloseThenReload(t *testing.T) {
	v := loadedVault(t)
	require.NoError(t, v.Close())
	assert.False(t, v.IsOpen())

	require.NoError(t, v.Load(context.Background(), sampleImage(t)))
	assert.True(t, v.IsOpen())
}

func Test_bindParams(t *testing.T) {
	args, err := bindParams([]any{"plain", float64(7), 2.5, nil, true})
	require.NoError(t, err)
	assert.Equal(t, []any{"plain", int64(7), 2.5, nil, true}, args)
}
