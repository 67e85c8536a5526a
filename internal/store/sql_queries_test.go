// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildGetSettingQuery(t *testing.T) {
	tests := []struct {
		name      string
		ph        sq.PlaceholderFormat
		forUpdate bool
		contains  []string
		absent    []string
	}{
		{name: "sqlite", ph: sq.Question, contains: []string{"SELECT value FROM settings", "name = ?"}, absent: []string{"$1", "FOR UPDATE"}},
		{name: "sqlite ignores row lock", ph: sq.Question, forUpdate: true, absent: []string{"FOR UPDATE"}},
		{name: "postgres", ph: sq.Dollar, contains: []string{"name = $1"}, absent: []string{"FOR UPDATE"}},
		{name: "postgres row lock", ph: sq.Dollar, forUpdate: true, contains: []string{"FOR UPDATE"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildGetSettingQuery(tt.ph, "vault_metadata", tt.forUpdate)
			require.NoError(t, err)
			require.Equal(t, []any{"vault_metadata"}, args)
			for _, c := range tt.contains {
				assert.Contains(t, query, c)
			}
			for _, a := range tt.absent {
				assert.NotContains(t, query, a)
			}
		})
	}
}

func Test_buildUpsertSettingQuery(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	query, args, err := buildUpsertSettingQuery(sq.Dollar, "auth_methods", `["password"]`, now)
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "insert into settings (name,value,updated_at)")
	assert.Contains(t, query, "VALUES ($1,$2,$3)")
	assert.Contains(t, q, "on conflict (name) do update")
	assert.Equal(t, []any{"auth_methods", `["password"]`, now}, args)
}

func Test_buildDeleteSettingsQuery(t *testing.T) {
	query, args, err := buildDeleteSettingsQuery(sq.Question, []string{"a", "b"})
	require.NoError(t, err)

	assert.Contains(t, query, "DELETE FROM settings WHERE name IN (?,?)")
	assert.Equal(t, []any{"a", "b"}, args)
}
