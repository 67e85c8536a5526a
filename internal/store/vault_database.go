// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-vault-bridge/internal/logger"
	"github.com/MKhiriev/go-vault-bridge/models"
)

var sqliteHeader = []byte("SQLite format 3\x00")

// sqliteTimestampLayout formats DATETIME columns the driver hands back as
// time.Time.
const sqliteTimestampLayout = "2006-01-02 15:04:05.000"

// memoryVaultDatabase holds the decrypted vault in a private in-memory
// sqlite database. The pool is pinned to one connection: the database lives
// only as long as that connection, and BEGIN/COMMIT issued as plain SQL must
// reach the same session.
type memoryVaultDatabase struct {
	mu     sync.RWMutex
	db     *sqlx.DB
	logger *logger.Logger
}

func NewMemoryVaultDatabase(logger *logger.Logger) VaultDatabase {
	return &memoryVaultDatabase{logger: logger}
}

func openMemoryDB(ctx context.Context) (*sqlx.DB, error) {
	db, err := sqlx.Open(DialectSQLite, ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open memory database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("open memory database: %w", err)
	}
	return db, nil
}

func (m *memoryVaultDatabase) Load(ctx context.Context, image []byte) error {
	if !bytes.HasPrefix(image, sqliteHeader) {
		return ErrInvalidDatabaseImage
	}

	db, err := openMemoryDB(ctx)
	if err != nil {
		return err
	}

	if err = importImage(ctx, db, image); err != nil {
		db.Close()
		m.logger.Err(err).Str("func", "memoryVaultDatabase.Load").Msg("error importing vault database")
		return err
	}

	m.mu.Lock()
	old := m.db
	m.db = db
	m.mu.Unlock()

	if old != nil {
		old.Close()
	}
	return nil
}

type schemaObject struct {
	Type string `db:"type"`
	Name string `db:"name"`
	SQL  string `db:"sql"`
}

// importImage copies every table, row, index, trigger and view of image
// into db by attaching a temp copy of the file.
func importImage(ctx context.Context, db *sqlx.DB, image []byte) error {
	dir, err := os.MkdirTemp("", "vault-import-*")
	if err != nil {
		return fmt.Errorf("create import dir: %w", err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "vault.sqlite")
	if err = os.WriteFile(path, image, 0o600); err != nil {
		return fmt.Errorf("write import file: %w", err)
	}

	if _, err = db.ExecContext(ctx, "ATTACH DATABASE ? AS source", path); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDatabaseImage, err)
	}
	defer db.ExecContext(context.Background(), "DETACH DATABASE source")

	var objects []schemaObject
	err = db.SelectContext(ctx, &objects, `SELECT type, name, sql FROM source.sqlite_master
		WHERE sql IS NOT NULL AND name NOT LIKE 'sqlite_%'
		ORDER BY CASE type WHEN 'table' THEN 0 WHEN 'index' THEN 1 ELSE 2 END, rowid`)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDatabaseImage, err)
	}

	for _, obj := range objects {
		if obj.Type != "table" {
			continue
		}
		if _, err = db.ExecContext(ctx, obj.SQL); err != nil {
			return fmt.Errorf("create table %s: %w", obj.Name, err)
		}
		copyRows := fmt.Sprintf(`INSERT INTO main.%[1]s SELECT * FROM source.%[1]s`, quoteIdent(obj.Name))
		if _, err = db.ExecContext(ctx, copyRows); err != nil {
			return fmt.Errorf("copy table %s: %w", obj.Name, err)
		}
	}

	var hasSequence int
	if err = db.GetContext(ctx, &hasSequence, `SELECT COUNT(*) FROM source.sqlite_master WHERE name = 'sqlite_sequence'`); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDatabaseImage, err)
	}
	if hasSequence > 0 {
		// copying rows already advanced the counters; take the source values
		if _, err = db.ExecContext(ctx, `DELETE FROM main.sqlite_sequence`); err != nil {
			return fmt.Errorf("copy sqlite_sequence: %w", err)
		}
		if _, err = db.ExecContext(ctx, `INSERT INTO main.sqlite_sequence SELECT * FROM source.sqlite_sequence`); err != nil {
			return fmt.Errorf("copy sqlite_sequence: %w", err)
		}
	}

	for _, obj := range objects {
		if obj.Type == "table" {
			continue
		}
		if _, err = db.ExecContext(ctx, obj.SQL); err != nil {
			return fmt.Errorf("create %s %s: %w", obj.Type, obj.Name, err)
		}
	}

	return nil
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func (m *memoryVaultDatabase) Export(ctx context.Context) ([]byte, error) {
	db, err := m.handle()
	if err != nil {
		return nil, err
	}

	dir, err := os.MkdirTemp("", "vault-export-*")
	if err != nil {
		return nil, fmt.Errorf("create export dir: %w", err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "vault.sqlite")
	if _, err = db.ExecContext(ctx, "VACUUM INTO ?", path); err != nil {
		return nil, fmt.Errorf("export database: %w", err)
	}

	image, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read export file: %w", err)
	}
	return image, nil
}

func (m *memoryVaultDatabase) handle() (*sqlx.DB, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.db == nil {
		return nil, ErrDatabaseNotInitialized
	}
	return m.db, nil
}

func (m *memoryVaultDatabase) Query(ctx context.Context, query string, params []any) ([]models.QueryRow, error) {
	db, err := m.handle()
	if err != nil {
		return nil, err
	}
	args, err := bindParams(params)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	result := make([]models.QueryRow, 0)
	for rows.Next() {
		row := make(map[string]any)
		if err = rows.MapScan(row); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		for column, value := range row {
			row[column] = columnValue(value)
		}
		result = append(result, row)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return result, nil
}

func (m *memoryVaultDatabase) Update(ctx context.Context, query string, params []any) (int64, error) {
	db, err := m.handle()
	if err != nil {
		return 0, err
	}
	args, err := bindParams(params)
	if err != nil {
		return 0, err
	}

	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return res.RowsAffected()
}

// Raw runs a semicolon separated script. Transaction control statements in
// the script are skipped; callers use Begin/Commit/Rollback instead.
func (m *memoryVaultDatabase) Raw(ctx context.Context, query string) error {
	db, err := m.handle()
	if err != nil {
		return err
	}

	for _, stmt := range strings.Split(query, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" || isTransactionControl(stmt) {
			continue
		}
		if _, err = db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}
	return nil
}

func isTransactionControl(stmt string) bool {
	upper := strings.ToUpper(stmt)
	return strings.HasPrefix(upper, "BEGIN TRANSACTION") ||
		strings.HasPrefix(upper, "COMMIT") ||
		strings.HasPrefix(upper, "ROLLBACK")
}

func (m *memoryVaultDatabase) Select(ctx context.Context, dest any, query string, args ...any) error {
	db, err := m.handle()
	if err != nil {
		return err
	}
	if err = db.SelectContext(ctx, dest, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

func (m *memoryVaultDatabase) exec(ctx context.Context, stmt string) error {
	db, err := m.handle()
	if err != nil {
		return err
	}
	if _, err = db.ExecContext(ctx, stmt); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

func (m *memoryVaultDatabase) Begin(ctx context.Context) error {
	return m.exec(ctx, "BEGIN TRANSACTION")
}

func (m *memoryVaultDatabase) Commit(ctx context.Context) error {
	return m.exec(ctx, "COMMIT")
}

func (m *memoryVaultDatabase) Rollback(ctx context.Context) error {
	return m.exec(ctx, "ROLLBACK")
}

func (m *memoryVaultDatabase) Close() error {
	m.mu.Lock()
	db := m.db
	m.db = nil
	m.mu.Unlock()

	if db == nil {
		return nil
	}
	return db.Close()
}

func (m *memoryVaultDatabase) IsOpen() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.db != nil
}

// bindParams converts JSON decoded parameters into driver values: strings
// carrying models.BlobParamPrefix become blobs and whole floats become
// integers.
func bindParams(params []any) ([]any, error) {
	args := make([]any, len(params))
	for i, p := range params {
		switch v := p.(type) {
		case string:
			if encoded, ok := strings.CutPrefix(v, models.BlobParamPrefix); ok {
				blob, err := base64.StdEncoding.DecodeString(encoded)
				if err != nil {
					return nil, fmt.Errorf("%w at %d: %w", ErrInvalidBlobParam, i, err)
				}
				args[i] = blob
				continue
			}
			args[i] = v
		case float64:
			if v == math.Trunc(v) && math.Abs(v) < 1<<53 {
				args[i] = int64(v)
				continue
			}
			args[i] = v
		default:
			args[i] = v
		}
	}
	return args, nil
}

// columnValue normalises a scanned value to what callers receive: blobs as
// base64 strings, booleans as 0/1, timestamps as text.
func columnValue(v any) any {
	switch t := v.(type) {
	case []byte:
		return base64.StdEncoding.EncodeToString(t)
	case bool:
		if t {
			return int64(1)
		}
		return int64(0)
	case time.Time:
		return t.UTC().Format(sqliteTimestampLayout)
	default:
		return t
	}
}
