// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-vault-bridge/internal/adapter"
	"github.com/MKhiriev/go-vault-bridge/internal/logger"
	"github.com/MKhiriev/go-vault-bridge/models"
)

const statusTimeout = 3 * time.Second

// credentialItem adapts a credential to the bubbles list.
type credentialItem struct {
	models.Credential
}

func (i credentialItem) Title() string { return i.DisplayName() }

func (i credentialItem) Description() string {
	if i.Username != nil && *i.Username != "" {
		return *i.Username
	}
	if i.Alias != nil && i.Alias.Email != nil {
		return *i.Alias.Email
	}
	return valueOrDash(i.Service.URL)
}

func (i credentialItem) FilterValue() string {
	return strings.Join([]string{i.DisplayName(), valueOrDash(i.Username), valueOrDash(i.Service.URL)}, " ")
}

// CredentialsModel lists the credentials of the unlocked vault. A secret
// copied from it is cleared from the clipboard by the daemon after
// clearDelay.
type CredentialsModel struct {
	ctx            context.Context
	vault          adapter.VaultAdapter
	writeClipboard clipboardWriter
	clearDelay     time.Duration

	list    list.Model
	spinner spinner.Model
	loading bool
	detail  bool
	reveal  bool
	status  string
	errMsg  string

	logger *logger.Logger
}

func NewCredentialsModel(ctx context.Context, vault adapter.VaultAdapter, writeClipboard clipboardWriter, clearDelay time.Duration, logger *logger.Logger) *CredentialsModel {
	l := list.New(nil, list.NewDefaultDelegate(), 60, 20)
	l.Title = "Credentials"
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &CredentialsModel{
		ctx:            ctx,
		vault:          vault,
		writeClipboard: writeClipboard,
		clearDelay:     clearDelay,
		list:           l,
		spinner:        s,
		logger:         logger,
	}
}

// Init implements [tea.Model]. Every visit reloads the credentials.
func (m *CredentialsModel) Init() tea.Cmd {
	m.loading = true
	m.detail = false
	m.reveal = false
	m.errMsg = ""
	return tea.Batch(m.spinner.Tick, m.cmdLoad())
}

func (m *CredentialsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := appStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v-8)
		return m, nil
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case credentialsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			if errors.Is(msg.err, adapter.ErrVaultLocked) {
				return m, navigate(pageUnlock)
			}
			m.errMsg = humanizeDaemonError(msg.err)
			return m, nil
		}
		items := make([]list.Item, 0, len(msg.items))
		for _, c := range msg.items {
			if c.IsDeleted {
				continue
			}
			items = append(items, credentialItem{Credential: c})
		}
		return m, m.list.SetItems(items)
	case copiedMsg:
		if msg.err != nil {
			m.logger.Err(msg.err).Str("func", "*CredentialsModel.Update").Str("field", msg.field).Msg("copy failed")
			m.errMsg = humanizeDaemonError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = fmt.Sprintf("%s copied, clipboard clears in %s", msg.field, msg.clearAfter)
		return m, tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{} })
	case lockDoneMsg:
		if msg.err != nil {
			m.errMsg = humanizeDaemonError(msg.err)
			return m, nil
		}
		m.list.SetItems(nil)
		return m, navigate(pageUnlock)
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		if m.detail {
			return m.updateDetail(msg)
		}
		if cmd, handled := m.updateListKeys(msg); handled {
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *CredentialsModel) updateListKeys(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, keys.quit):
		return tea.Quit, true
	case key.Matches(msg, keys.lock):
		return m.cmdLock(), true
	case key.Matches(msg, keys.reload):
		return m.Init(), true
	case key.Matches(msg, keys.enter):
		if _, ok := m.selected(); ok {
			m.detail = true
			m.reveal = false
		}
		return nil, true
	case key.Matches(msg, keys.copyPassword), key.Matches(msg, keys.copyUsername):
		item, ok := m.selected()
		if !ok {
			return nil, true
		}
		return m.copyField(item, msg), true
	}
	return nil, false
}

func (m *CredentialsModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	item, ok := m.selected()
	if !ok {
		m.detail = false
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.esc):
		m.detail = false
		m.reveal = false
	case key.Matches(msg, keys.reveal):
		m.reveal = !m.reveal
	case key.Matches(msg, keys.lock):
		return m, m.cmdLock()
	case key.Matches(msg, keys.copyPassword), key.Matches(msg, keys.copyUsername), key.Matches(msg, keys.copyEmail):
		return m, m.copyField(item, msg)
	}
	return m, nil
}

func (m *CredentialsModel) copyField(item models.Credential, msg tea.KeyMsg) tea.Cmd {
	var field, value string
	switch {
	case key.Matches(msg, keys.copyPassword):
		field = "Password"
		if item.Password != nil {
			value = item.Password.Value
		}
	case key.Matches(msg, keys.copyUsername):
		field = "Username"
		value = valueOrEmpty(item.Username)
	case key.Matches(msg, keys.copyEmail):
		field = "Email"
		if item.Alias != nil {
			value = valueOrEmpty(item.Alias.Email)
		}
	}

	if value == "" {
		m.status = "Nothing to copy"
		return nil
	}
	return m.cmdCopy(field, value)
}

func (m *CredentialsModel) selected() (models.Credential, bool) {
	item, ok := m.list.SelectedItem().(credentialItem)
	if !ok {
		return models.Credential{}, false
	}
	return item.Credential, true
}

func (m *CredentialsModel) View() string {
	if m.detail {
		if item, ok := m.selected(); ok {
			return renderPage(strings.ToUpper(fitText(item.DisplayName(), 40)), m.withStatus(renderCredential(item, m.reveal)),
				hotKeys(keys.copyPassword, keys.copyUsername, keys.copyEmail, keys.reveal, keys.esc))
		}
	}

	var body string
	if m.loading {
		body = m.spinner.View() + " Loading credentials..."
	} else {
		body = m.list.View()
	}

	return renderPage("VAULT", m.withStatus(body),
		hotKeys(keys.enter, keys.copyPassword, keys.copyUsername, keys.reload, keys.lock, keys.quit)+" │ /: filter")
}

func (m *CredentialsModel) withStatus(body string) string {
	if m.status != "" {
		body += "\n\n" + statusStyle.Render(m.status)
	}
	if m.errMsg != "" {
		body += "\n\n" + errorStyle.Render("Error: "+m.errMsg)
	}
	return body
}

func (m *CredentialsModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	vault := m.vault

	return func() tea.Msg {
		items, err := vault.GetAllCredentials(ctx)
		return credentialsLoadedMsg{items: items, err: err}
	}
}

// cmdCopy writes value to the clipboard and schedules the clear on the
// daemon.
func (m *CredentialsModel) cmdCopy(field, value string) tea.Cmd {
	ctx := m.ctx
	vault := m.vault
	write := m.writeClipboard
	delay := m.clearDelay

	return func() tea.Msg {
		if err := write(value); err != nil {
			return copiedMsg{field: field, err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		if err := vault.ClearClipboardAfterDelay(ctx, delay.Seconds()); err != nil {
			return copiedMsg{field: field, err: fmt.Errorf("schedule clipboard clear: %w", err)}
		}
		return copiedMsg{field: field, clearAfter: delay}
	}
}

func (m *CredentialsModel) cmdLock() tea.Cmd {
	ctx := m.ctx
	vault := m.vault

	return func() tea.Msg {
		return lockDoneMsg{err: vault.Lock(ctx)}
	}
}

func valueOrEmpty(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
