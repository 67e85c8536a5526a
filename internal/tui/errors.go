// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-vault-bridge/internal/adapter"
)

// humanizeDaemonError turns adapter errors into a line for the status bar.
func humanizeDaemonError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, adapter.ErrVaultLocked):
		return "Vault is locked"
	case errors.Is(err, adapter.ErrUnauthorized):
		return "Daemon rejected the client token, check TOKEN_SIGN_KEY"
	case errors.Is(err, adapter.ErrIntegrityCheckFailed):
		return "Daemon response failed the integrity check, check HASH_KEY"
	}

	var rejection *adapter.RejectionError
	if errors.As(err, &rejection) {
		return rejection.Rejection.Message
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Vault daemon is not reachable"
	}

	return err.Error()
}
