// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-vault-bridge/internal/adapter"
	"github.com/MKhiriev/go-vault-bridge/internal/logger"
	"github.com/MKhiriev/go-vault-bridge/internal/mock"
	"github.com/MKhiriev/go-vault-bridge/models"
)

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "f1":
		return tea.KeyMsg{Type: tea.KeyF1}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(m tea.Model, text string) tea.Model {
	for _, r := range text {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func requireNavigate(t *testing.T, cmd tea.Cmd, page string) {
	t.Helper()
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: page}, cmd())
}

func strPtr(s string) *string { return &s }

func testCredential(name, username, password string) models.Credential {
	return models.Credential{
		ID:       uuid.New(),
		Service:  models.Service{ID: uuid.New(), Name: strPtr(name)},
		Username: strPtr(username),
		Password: &models.Password{ID: uuid.New(), Value: password},
		Alias:    &models.Alias{ID: uuid.New(), Email: strPtr(username + "@alias.example")},
	}
}

func TestUnlockModel_EmptyPassword(t *testing.T) {
	vault := mock.NewMockVaultAdapter(gomock.NewController(t))
	m := NewUnlockModel(context.Background(), vault, logger.Nop())

	_, cmd := m.Update(keyPress("enter"))

	assert.Nil(t, cmd)
	assert.Equal(t, "Master password is required", m.errMsg)
}

func TestUnlockModel_Unlock(t *testing.T) {
	tests := []struct {
		name       string
		ok         bool
		err        error
		wantPage   string
		wantErrMsg string
	}{
		{name: "success", ok: true, wantPage: pageCredentials},
		{name: "wrong password", ok: false, wantErrMsg: "Wrong master password"},
		{name: "daemon error", err: fmt.Errorf("%w: boom", adapter.ErrUnavailable), wantErrMsg: "daemon storage unavailable: boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vault := mock.NewMockVaultAdapter(gomock.NewController(t))
			vault.EXPECT().UnlockWithPassword(gomock.Any(), "hunter2").Return(tt.ok, tt.err)

			m := NewUnlockModel(context.Background(), vault, logger.Nop())
			typeText(m, "hunter2")

			_, cmd := m.Update(keyPress("enter"))
			require.NotNil(t, cmd)
			assert.True(t, m.submitting)

			_, cmd = m.Update(cmd())
			assert.False(t, m.submitting)
			assert.Empty(t, m.password.Value())
			if tt.wantPage != "" {
				requireNavigate(t, cmd, tt.wantPage)
				return
			}
			assert.Nil(t, cmd)
			assert.Equal(t, tt.wantErrMsg, m.errMsg)
		})
	}
}

func TestUnlockModel_SkipsWhenUnlocked(t *testing.T) {
	vault := mock.NewMockVaultAdapter(gomock.NewController(t))
	vault.EXPECT().IsVaultUnlocked(gomock.Any()).Return(true, nil)

	m := NewUnlockModel(context.Background(), vault, logger.Nop())
	m.Init()
	assert.True(t, m.checking)

	_, cmd := m.Update(m.cmdCheckUnlocked()())

	assert.False(t, m.checking)
	requireNavigate(t, cmd, pageCredentials)
}

func TestUnlockModel_DaemonUnreachable(t *testing.T) {
	vault := mock.NewMockVaultAdapter(gomock.NewController(t))
	vault.EXPECT().IsVaultUnlocked(gomock.Any()).Return(false, errors.New("dial tcp 127.0.0.1:8080: connect: connection refused"))

	m := NewUnlockModel(context.Background(), vault, logger.Nop())
	_, cmd := m.Update(m.cmdCheckUnlocked()())

	assert.Nil(t, cmd)
	assert.Equal(t, "Vault daemon is not reachable", m.errMsg)
	assert.Contains(t, m.View(), "Vault daemon is not reachable")
}

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) write(text string) error {
	f.text = text
	return f.err
}

func newLoadedCredentialsModel(t *testing.T, vault *mock.MockVaultAdapter, clip *fakeClipboard, creds ...models.Credential) *CredentialsModel {
	t.Helper()
	vault.EXPECT().GetAllCredentials(gomock.Any()).Return(creds, nil)

	m := NewCredentialsModel(context.Background(), vault, clip.write, 30*time.Second, logger.Nop())
	m.Init()
	m.Update(m.cmdLoad()())
	require.False(t, m.loading)
	return m
}

func TestCredentialsModel_LoadSkipsDeleted(t *testing.T) {
	vault := mock.NewMockVaultAdapter(gomock.NewController(t))
	deleted := testCredential("old.example", "bob", "x")
	deleted.IsDeleted = true

	m := newLoadedCredentialsModel(t, vault, &fakeClipboard{},
		testCredential("example.com", "alice", "secret"), deleted)

	require.Len(t, m.list.Items(), 1)
	item, ok := m.selected()
	require.True(t, ok)
	assert.Equal(t, "example.com", item.DisplayName())
}

func TestCredentialsModel_LockedVaultGoesToUnlock(t *testing.T) {
	vault := mock.NewMockVaultAdapter(gomock.NewController(t))
	vault.EXPECT().GetAllCredentials(gomock.Any()).Return(nil, fmt.Errorf("%w: %w", adapter.ErrVaultLocked, &adapter.RejectionError{}))

	m := NewCredentialsModel(context.Background(), vault, (&fakeClipboard{}).write, time.Second, logger.Nop())
	m.Init()
	_, cmd := m.Update(m.cmdLoad()())

	requireNavigate(t, cmd, pageUnlock)
}

func TestCredentialsModel_CopyPassword(t *testing.T) {
	vault := mock.NewMockVaultAdapter(gomock.NewController(t))
	clip := &fakeClipboard{}
	m := newLoadedCredentialsModel(t, vault, clip, testCredential("example.com", "alice", "secret"))
	vault.EXPECT().ClearClipboardAfterDelay(gomock.Any(), float64(30)).Return(nil)

	_, cmd := m.Update(keyPress("c"))
	require.NotNil(t, cmd)
	msg := cmd()

	assert.Equal(t, "secret", clip.text)
	assert.Equal(t, copiedMsg{field: "Password", clearAfter: 30 * time.Second}, msg)

	_, cmd = m.Update(msg)
	assert.NotNil(t, cmd)
	assert.Equal(t, "Password copied, clipboard clears in 30s", m.status)

	m.Update(clearStatusMsg{})
	assert.Empty(t, m.status)
}

func TestCredentialsModel_CopyFailsWithoutClearing(t *testing.T) {
	vault := mock.NewMockVaultAdapter(gomock.NewController(t))
	clip := &fakeClipboard{err: errors.New("no clipboard utility")}
	m := newLoadedCredentialsModel(t, vault, clip, testCredential("example.com", "alice", "secret"))

	_, cmd := m.Update(keyPress("u"))
	require.NotNil(t, cmd)
	m.Update(cmd())

	assert.Equal(t, "alice", clip.text)
	assert.Contains(t, m.errMsg, "no clipboard utility")
}

func TestCredentialsModel_DetailView(t *testing.T) {
	vault := mock.NewMockVaultAdapter(gomock.NewController(t))
	clip := &fakeClipboard{}
	m := newLoadedCredentialsModel(t, vault, clip, testCredential("example.com", "alice", "secret"))

	m.Update(keyPress("enter"))
	require.True(t, m.detail)
	assert.NotContains(t, m.View(), "secret")

	m.Update(keyPress("p"))
	assert.Contains(t, m.View(), "secret")

	vault.EXPECT().ClearClipboardAfterDelay(gomock.Any(), float64(30)).Return(nil)
	_, cmd := m.Update(keyPress("e"))
	require.NotNil(t, cmd)
	cmd()
	assert.Equal(t, "alice@alias.example", clip.text)

	m.Update(keyPress("esc"))
	assert.False(t, m.detail)
	assert.False(t, m.reveal)
}

func TestCredentialsModel_Lock(t *testing.T) {
	vault := mock.NewMockVaultAdapter(gomock.NewController(t))
	m := newLoadedCredentialsModel(t, vault, &fakeClipboard{}, testCredential("example.com", "alice", "secret"))
	vault.EXPECT().Lock(gomock.Any()).Return(nil)

	_, cmd := m.Update(keyPress("L"))
	require.NotNil(t, cmd)
	_, cmd = m.Update(cmd())

	requireNavigate(t, cmd, pageUnlock)
}

func TestRootModel(t *testing.T) {
	vault := mock.NewMockVaultAdapter(gomock.NewController(t))
	unlock := NewUnlockModel(context.Background(), vault, logger.Nop())
	creds := NewCredentialsModel(context.Background(), vault, (&fakeClipboard{}).write, time.Second, logger.Nop())
	root := NewRootModel(map[string]tea.Model{pageUnlock: unlock, pageCredentials: creds}, pageUnlock,
		models.NewAppBuildInfo("1.0.0", "2026-10-01", "abc123"))

	t.Run("build info toggles", func(t *testing.T) {
		next, _ := root.Update(keyPress("f1"))
		assert.Contains(t, next.View(), "abc123")

		next, _ = next.Update(keyPress("esc"))
		assert.NotContains(t, next.View(), "abc123")
	})

	t.Run("navigate", func(t *testing.T) {
		next, cmd := root.Update(NavigateTo{Page: pageCredentials})
		assert.Same(t, creds, next.(RootModel).page())
		assert.NotNil(t, cmd)
		assert.True(t, creds.loading)
	})

	t.Run("unknown page", func(t *testing.T) {
		next, cmd := root.Update(NavigateTo{Page: "nope"})
		assert.Same(t, unlock, next.(RootModel).page())
		assert.Nil(t, cmd)
	})

	t.Run("ctrl+c", func(t *testing.T) {
		next, cmd := root.Update(keyPress("ctrl+c"))
		assert.True(t, next.(RootModel).quitByUser)
		require.NotNil(t, cmd)
		assert.Equal(t, tea.Quit(), cmd())
	})
}

func TestHumanizeDaemonError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "locked", err: fmt.Errorf("%w: x", adapter.ErrVaultLocked), want: "Vault is locked"},
		{name: "rejection", err: &adapter.RejectionError{Rejection: models.BridgeRejection{Message: "no database"}}, want: "no database"},
		{name: "timeout", err: errors.New("Post \"http://x\": context deadline exceeded"), want: "Vault daemon is not reachable"},
		{name: "other", err: errors.New("boom"), want: "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, humanizeDaemonError(tt.err))
		})
	}
}
