// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-vault-bridge/internal/config"
	"github.com/MKhiriev/go-vault-bridge/internal/logger"
	"github.com/MKhiriev/go-vault-bridge/internal/utils"
	"github.com/MKhiriev/go-vault-bridge/models"
)

const (
	testHashKey = "testhashkey"
	testSignKey = "testsignkey"
	testIssuer  = "vault-bridge"
)

func newTestAdapter(t *testing.T, serverURL string) *httpVaultAdapter {
	t.Helper()
	cfg := config.ClientConfig{
		TokenSignKey:  testSignKey,
		TokenIssuer:   testIssuer,
		TokenDuration: time.Minute,
		HashKey:       testHashKey,
		Client: config.Client{
			DaemonAddress:  serverURL,
			RequestTimeout: 5 * time.Second,
			Name:           "vault-cli",
		},
	}

	a, err := NewHTTPVaultAdapter(cfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpVaultAdapter)
}

// daemonStub checks auth and the integrity header the way the daemon does,
// then answers with status and body signed by the shared hash key.
func daemonStub(t *testing.T, wantPath string, wantBody any, status int, body any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, wantPath, r.URL.Path)

		raw, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		assert.NoError(t, err)
		token, err := utils.ValidateAndParseJWTToken(raw, testSignKey, testIssuer)
		assert.NoError(t, err)
		assert.Equal(t, "vault-cli", token.Client)

		payload, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		if wantBody == nil {
			assert.Empty(t, payload)
		} else {
			expected, err := json.Marshal(wantBody)
			assert.NoError(t, err)
			assert.JSONEq(t, string(expected), string(payload))
			assert.Equal(t, utils.SignBody(payload), r.Header.Get(models.HashHeader))
		}

		out, err := json.Marshal(body)
		assert.NoError(t, err)
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set(models.HashHeader, utils.SignBody(out))
		w.WriteHeader(status)
		_, _ = w.Write(out)
	}
}

func TestVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, models.RouteVersion, r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte("1.2.3\n"))
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.2.3", got)
}

func TestUnlockWithPassword_Success(t *testing.T) {
	srv := httptest.NewServer(daemonStub(t,
		models.RouteUnlockWithPassword,
		models.UnlockWithPasswordRequest{Password: "hunter2"},
		http.StatusOK,
		models.BridgeResult[bool]{Result: true},
	))
	defer srv.Close()

	ok, err := newTestAdapter(t, srv.URL).UnlockWithPassword(context.Background(), "hunter2")

	require.NoError(t, err)
	assert.True(t, ok)
}

func TestGetAllCredentials_Locked(t *testing.T) {
	srv := httptest.NewServer(daemonStub(t,
		models.RouteGetAllCredentials,
		nil,
		http.StatusLocked,
		models.BridgeRejection{Code: "QUERY_ERROR", Kind: "Locked", Message: "vault is locked"},
	))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).GetAllCredentials(context.Background())

	require.ErrorIs(t, err, ErrVaultLocked)
	var rejection *RejectionError
	require.ErrorAs(t, err, &rejection)
	assert.Equal(t, "QUERY_ERROR", rejection.Rejection.Code)
	assert.Equal(t, http.StatusLocked, rejection.Status)
}

func TestGetAllCredentials_Decodes(t *testing.T) {
	name := "example.com"
	creds := []models.Credential{{
		ID:      uuid.New(),
		Service: models.Service{ID: uuid.New(), Name: &name},
		Password: &models.Password{
			ID:    uuid.New(),
			Value: "secret",
		},
	}}
	srv := httptest.NewServer(daemonStub(t, models.RouteGetAllCredentials, nil, http.StatusOK, models.BridgeResult[[]models.Credential]{Result: creds}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).GetAllCredentials(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, creds[0].ID, got[0].ID)
	assert.Equal(t, "example.com", got[0].DisplayName())
	assert.Equal(t, "secret", got[0].Password.Value)
}

func TestUnitCalls(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		wantBody any
		call     func(a *httpVaultAdapter) error
	}{
		{
			name: "lock",
			path: models.RouteLock,
			call: func(a *httpVaultAdapter) error { return a.Lock(context.Background()) },
		},
		{
			name:     "set revision",
			path:     models.RouteSetCurrentVaultRevisionNumber,
			wantBody: models.RevisionNumberRequest{RevisionNumber: 7},
			call: func(a *httpVaultAdapter) error {
				return a.SetCurrentVaultRevisionNumber(context.Background(), 7)
			},
		},
		{
			name:     "clear clipboard",
			path:     models.RouteClearClipboardAfterDelay,
			wantBody: models.ClipboardClearRequest{DelayInSeconds: 2.5},
			call: func(a *httpVaultAdapter) error {
				return a.ClearClipboardAfterDelay(context.Background(), 2.5)
			},
		},
		{
			name:     "set auth methods",
			path:     models.RouteSetAuthMethods,
			wantBody: models.AuthMethodsRequest{AuthMethods: []string{"password"}},
			call: func(a *httpVaultAdapter) error {
				return a.SetAuthMethods(context.Background(), []string{"password"})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(daemonStub(t, tt.path, tt.wantBody, http.StatusOK, models.BridgeResult[struct{}]{}))
			defer srv.Close()

			assert.NoError(t, tt.call(newTestAdapter(t, srv.URL)))
		})
	}
}

func TestExecuteQuery(t *testing.T) {
	rows := []models.QueryRow{{"id": float64(1), "name": "alice"}}
	srv := httptest.NewServer(daemonStub(t,
		models.RouteExecuteQuery,
		models.QueryRequest{Query: "SELECT * FROM t WHERE id = ?", Params: []any{1}},
		http.StatusOK,
		models.BridgeResult[[]models.QueryRow]{Result: rows},
	))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).ExecuteQuery(context.Background(), "SELECT * FROM t WHERE id = ?", []any{1})

	require.NoError(t, err)
	assert.Equal(t, rows, got)
}

func TestIntegrityCheckFailed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(models.HashHeader, "deadbeef")
		_, _ = w.Write([]byte(`{"result":true}`))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).IsVaultUnlocked(context.Background())

	assert.ErrorIs(t, err, ErrIntegrityCheckFailed)
}

func TestPlainErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "token is expired", http.StatusUnauthorized)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.hashKey = ""
	_, err := a.HasEncryptedDatabase(context.Background())

	assert.ErrorIs(t, err, ErrUnauthorized)
	var rejection *RejectionError
	assert.False(t, errors.As(err, &rejection))
}

func TestBearerIsReused(t *testing.T) {
	a := newTestAdapter(t, "http://localhost:1")

	first, err := a.bearer()
	require.NoError(t, err)
	second, err := a.bearer()
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "localhost:8080", want: "http://localhost:8080"},
		{raw: " https://vault.local/ ", want: "https://vault.local"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPVaultAdapter_EmptyAddress(t *testing.T) {
	_, err := NewHTTPVaultAdapter(config.ClientConfig{}, logger.Nop())

	assert.ErrorIs(t, err, ErrEmptyAddress)
}
