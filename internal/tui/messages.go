// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"time"

	"github.com/MKhiriev/go-vault-bridge/models"
)

// NavigateTo switches the active page. A non-nil Payload is delivered to
// the new page instead of calling its Init.
type NavigateTo struct {
	Page    string
	Payload any
}

type vaultStatusMsg struct {
	unlocked bool
	err      error
}

type unlockResultMsg struct {
	ok  bool
	err error
}

type credentialsLoadedMsg struct {
	items []models.Credential
	err   error
}

type copiedMsg struct {
	field      string
	clearAfter time.Duration
	err        error
}

type lockDoneMsg struct {
	err error
}

type clearStatusMsg struct{}
