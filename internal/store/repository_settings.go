// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-vault-bridge/internal/logger"
)

// settingsRepository stores vault settings in the "settings" table of a
// sqlite or PostgreSQL database.
type settingsRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

func NewSettingsRepository(db *DB, logger *logger.Logger) SettingsRepository {
	logger.Debug().Str("dialect", db.dialect).Msg("creating settings repository")
	return &settingsRepository{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (r *settingsRepository) get(ctx context.Context, q queryRower, name string, forUpdate bool) (string, error) {
	query, args, err := buildGetSettingQuery(r.db.placeholder(), name, forUpdate)
	if err != nil {
		return "", err
	}

	var value string
	if err = q.QueryRowContext(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrSettingNotFound
		}
		return "", wrapQueryErr(err)
	}
	return value, nil
}

func (r *settingsRepository) Get(ctx context.Context, name string) (string, error) {
	log := logger.FromContext(ctx)

	var value string
	err := r.db.withRetry(ctx, func() error {
		var getErr error
		value, getErr = r.get(ctx, r.db, name, false)
		return getErr
	})
	if err != nil && !errors.Is(err, ErrSettingNotFound) {
		log.Err(err).Str("func", "settingsRepository.Get").Str("name", name).Msg("error reading setting")
	}
	return value, err
}

func (r *settingsRepository) Set(ctx context.Context, name, value string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertSettingQuery(r.db.placeholder(), name, value, r.now())
	if err != nil {
		return err
	}

	err = r.db.withRetry(ctx, func() error {
		_, execErr := r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "settingsRepository.Set").Str("name", name).Msg("error writing setting")
		return wrapQueryErr(err)
	}
	return nil
}

func (r *settingsRepository) Delete(ctx context.Context, names ...string) error {
	if len(names) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteSettingsQuery(r.db.placeholder(), names)
	if err != nil {
		return err
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "settingsRepository.Delete").Strs("names", names).Msg("error deleting settings")
		return wrapQueryErr(err)
	}
	return nil
}

func (r *settingsRepository) Update(ctx context.Context, name string, fn func(current string, found bool) (string, error)) error {
	log := logger.FromContext(ctx)

	err := r.db.withRetry(ctx, func() error {
		return r.update(ctx, name, fn)
	})
	if err != nil {
		log.Err(err).Str("func", "settingsRepository.Update").Str("name", name).Msg("error updating setting")
	}
	return err
}

func (r *settingsRepository) update(ctx context.Context, name string, fn func(current string, found bool) (string, error)) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		if isConnectionLost(err) {
			return fmt.Errorf("%w: %w: %w", ErrStorageUnavailable, ErrBeginningTransaction, err)
		}
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	current, err := r.get(ctx, tx, name, true)
	found := true
	if errors.Is(err, ErrSettingNotFound) {
		found = false
	} else if err != nil {
		return err
	}

	next, err := fn(current, found)
	if err != nil {
		return err
	}

	query, args, err := buildUpsertSettingQuery(r.db.placeholder(), name, next, r.now())
	if err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return wrapQueryErr(err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return nil
}

func (r *settingsRepository) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	return nil
}
