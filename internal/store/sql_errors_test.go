// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-vault-bridge/internal/logger"
)

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: NonRetryable},
		{name: "plain error", err: errors.New("x"), want: NonRetryable},
		{name: "deadlock", err: &pgconn.PgError{Code: pgerrcode.DeadlockDetected}, want: Retryable},
		{name: "wrapped connection failure", err: fmt.Errorf("q: %w", &pgconn.PgError{Code: pgerrcode.ConnectionFailure}), want: Retryable},
		{name: "cannot connect now", err: &pgconn.PgError{Code: pgerrcode.CannotConnectNow}, want: Retryable},
		{name: "unique violation", err: &pgconn.PgError{Code: pgerrcode.UniqueViolation}, want: NonRetryable},
		{name: "syntax error", err: &pgconn.PgError{Code: pgerrcode.SyntaxError}, want: NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestSQLiteErrorClassifier(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	assert.Equal(t, Retryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrBusy}))
	assert.Equal(t, Retryable, c.Classify(fmt.Errorf("wrap: %w", sqlite3.Error{Code: sqlite3.ErrLocked})))
	assert.Equal(t, NonRetryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrConstraint}))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("other")))
}

func TestWithRetry(t *testing.T) {
	db := &DB{errorClassificator: NewSQLiteErrorClassifier(), logger: logger.Nop()}

	calls := 0
	err := db.withRetry(context.Background(), func() error {
		calls++
		if calls < 3 {
			return sqlite3.Error{Code: sqlite3.ErrBusy}
		}
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 3, calls)

	calls = 0
	err = db.withRetry(context.Background(), func() error {
		calls++
		return assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, 1, calls)
}

func TestWithRetry_StopsOnCancelledContext(t *testing.T) {
	db := &DB{errorClassificator: NewSQLiteErrorClassifier(), logger: logger.Nop()}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := db.withRetry(ctx, func() error {
		calls++
		return sqlite3.Error{Code: sqlite3.ErrBusy}
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestWrapQueryErr(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		unavailable bool
	}{
		{name: "conn done", err: sql.ErrConnDone, unavailable: true},
		{name: "bad conn", err: fmt.Errorf("exec: %w", driver.ErrBadConn), unavailable: true},
		{name: "closed db", err: errors.New("sql: database is closed"), unavailable: true},
		{name: "pg connection failure", err: &pgconn.PgError{Code: pgerrcode.ConnectionFailure}, unavailable: true},
		{name: "pg cannot connect now", err: &pgconn.PgError{Code: pgerrcode.CannotConnectNow}, unavailable: true},
		{name: "pg undefined table", err: &pgconn.PgError{Code: pgerrcode.UndefinedTable}},
		{name: "sqlite constraint", err: sqlite3.Error{Code: sqlite3.ErrConstraint}},
		{name: "plain", err: errors.New("disk full")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := wrapQueryErr(tt.err)

			assert.ErrorIs(t, err, tt.err)
			if tt.unavailable {
				assert.ErrorIs(t, err, ErrStorageUnavailable)
				assert.NotErrorIs(t, err, ErrExecutingQuery)
				return
			}
			assert.ErrorIs(t, err, ErrExecutingQuery)
			assert.NotErrorIs(t, err, ErrStorageUnavailable)
		})
	}
}
