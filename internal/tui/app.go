// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-vault-bridge/models"
)

const (
	pageUnlock      = "unlock"
	pageCredentials = "credentials"
)

// RootModel routes messages to the active page and owns the global keys:
// ctrl+c leaves the program, F1 toggles the about window.
type RootModel struct {
	pages  map[string]tea.Model
	active string

	buildInfo  models.AppBuildInfo
	showAbout  bool
	quitByUser bool
}

// NewRootModel opens startPage out of pages.
func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{pages: pages, active: startPage, buildInfo: buildInfo}
}

func (r RootModel) page() tea.Model {
	return r.pages[r.active]
}

func (r RootModel) Init() tea.Cmd {
	if p := r.page(); p != nil {
		return p.Init()
	}
	return nil
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if next, cmd, handled := r.globalKey(msg); handled {
			return next, cmd
		}
	case NavigateTo:
		return r.navigate(msg)
	}

	p := r.page()
	if p == nil {
		return r, nil
	}
	updated, cmd := p.Update(msg)
	r.pages[r.active] = updated
	return r, cmd
}

// globalKey handles keys that work on every page. While the about window
// is open it swallows everything else.
func (r RootModel) globalKey(msg tea.KeyMsg) (RootModel, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, keys.interrupt):
		r.quitByUser = true
		return r, tea.Quit, true
	case key.Matches(msg, keys.about):
		r.showAbout = !r.showAbout
		return r, nil, true
	case r.showAbout:
		if key.Matches(msg, keys.esc) {
			r.showAbout = false
		}
		return r, nil, true
	}
	return r, nil, false
}

func (r RootModel) navigate(nav NavigateTo) (tea.Model, tea.Cmd) {
	next, ok := r.pages[nav.Page]
	if !ok {
		return r, nil
	}

	r.active = nav.Page
	r.showAbout = false
	if payload := nav.Payload; payload != nil {
		return r, func() tea.Msg { return payload }
	}
	return r, next.Init()
}

func (r RootModel) View() string {
	if r.showAbout {
		return renderBuildInfoWindow(r.buildInfo)
	}
	if p := r.page(); p != nil {
		return p.View()
	}
	return renderPage("VAULT", "", "")
}
