// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
)

const settingsTable = "settings"

const upsertSettingSuffix = "ON CONFLICT (name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at"

func buildGetSettingQuery(ph sq.PlaceholderFormat, name string, forUpdate bool) (string, []any, error) {
	b := sq.Select("value").
		From(settingsTable).
		Where(sq.Eq{"name": name}).
		PlaceholderFormat(ph)

	// sqlite locks the whole database on write and has no row locks.
	if forUpdate && ph == sq.Dollar {
		b = b.Suffix("FOR UPDATE")
	}

	query, args, err := b.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildUpsertSettingQuery(ph sq.PlaceholderFormat, name, value string, now time.Time) (string, []any, error) {
	query, args, err := sq.Insert(settingsTable).
		Columns("name", "value", "updated_at").
		Values(name, value, now.UTC()).
		Suffix(upsertSettingSuffix).
		PlaceholderFormat(ph).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteSettingsQuery(ph sq.PlaceholderFormat, names []string) (string, []any, error) {
	query, args, err := sq.Delete(settingsTable).
		Where(sq.Eq{"name": names}).
		PlaceholderFormat(ph).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
