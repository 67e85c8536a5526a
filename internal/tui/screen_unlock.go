// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-vault-bridge/internal/adapter"
	"github.com/MKhiriev/go-vault-bridge/internal/logger"
)

// UnlockModel is the Bubble Tea model of the unlock screen. On Init it asks
// the daemon whether the vault is already open and skips straight to the
// credential list if so; otherwise it reads the master password and calls
// UnlockWithPassword.
type UnlockModel struct {
	ctx   context.Context
	vault adapter.VaultAdapter

	password   textinput.Model
	checking   bool
	submitting bool
	errMsg     string

	logger *logger.Logger
}

func NewUnlockModel(ctx context.Context, vault adapter.VaultAdapter, logger *logger.Logger) *UnlockModel {
	password := textinput.New()
	password.Placeholder = "master password"
	password.CharLimit = 256
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'
	password.Focus()

	return &UnlockModel{
		ctx:      ctx,
		vault:    vault,
		password: password,
		logger:   logger,
	}
}

// Init implements [tea.Model]. Starts the cursor blink and the vault status
// check.
func (m *UnlockModel) Init() tea.Cmd {
	m.checking = true
	return tea.Batch(textinput.Blink, m.cmdCheckUnlocked())
}

// Update implements [tea.Model]. Handled messages:
//   - vaultStatusMsg  opens the credential list when the vault is unlocked.
//   - unlockResultMsg opens the credential list or shows why unlocking failed.
//   - esc             clears the input and the error line.
//   - enter           submits the master password.
//
// All other key events are forwarded to the password input.
func (m *UnlockModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case vaultStatusMsg:
		m.checking = false
		if msg.err != nil {
			m.errMsg = humanizeDaemonError(msg.err)
			return m, nil
		}
		if msg.unlocked {
			return m, navigate(pageCredentials)
		}
		return m, nil
	case unlockResultMsg:
		m.submitting = false
		switch {
		case msg.err != nil:
			m.logger.Err(msg.err).Str("func", "*UnlockModel.Update").Msg("unlock failed")
			m.errMsg = humanizeDaemonError(msg.err)
		case !msg.ok:
			m.errMsg = "Wrong master password"
		default:
			m.errMsg = ""
			m.password.Reset()
			return m, navigate(pageCredentials)
		}
		m.password.Reset()
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			m.errMsg = ""
			m.password.Reset()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}
			pass := m.password.Value()
			if strings.TrimSpace(pass) == "" {
				m.errMsg = "Master password is required"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdUnlock(pass)
		}
	}

	var cmd tea.Cmd
	m.password, cmd = m.password.Update(msg)
	return m, cmd
}

func (m *UnlockModel) View() string {
	var b strings.Builder
	b.WriteString(labelStyle.Render("Password"))
	b.WriteString("[")
	b.WriteString(m.password.View())
	b.WriteString("]\n")

	switch {
	case m.checking:
		b.WriteString("\nChecking vault status...\n")
	case m.submitting:
		b.WriteString("\n[Unlocking...]\n")
	default:
		b.WriteString("\n[Unlock]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("UNLOCK VAULT", strings.TrimRight(b.String(), "\n"), "enter: unlock │ esc: clear")
}

func (m *UnlockModel) cmdCheckUnlocked() tea.Cmd {
	ctx := m.ctx
	vault := m.vault

	return func() tea.Msg {
		unlocked, err := vault.IsVaultUnlocked(ctx)
		return vaultStatusMsg{unlocked: unlocked, err: err}
	}
}

func (m *UnlockModel) cmdUnlock(password string) tea.Cmd {
	ctx := m.ctx
	vault := m.vault

	return func() tea.Msg {
		ok, err := vault.UnlockWithPassword(ctx, password)
		return unlockResultMsg{ok: ok, err: err}
	}
}

func navigate(page string) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: page} }
}
