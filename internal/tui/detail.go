// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"
	"time"

	"github.com/MKhiriev/go-vault-bridge/models"
)

func renderCredential(c models.Credential, reveal bool) string {
	var b strings.Builder
	row := func(label, value string) {
		b.WriteString(labelStyle.Render(label))
		b.WriteString(value)
		b.WriteString("\n")
	}

	row("Service", c.DisplayName())
	row("URL", valueOrDash(c.Service.URL))
	row("Username", valueOrDash(c.Username))

	password := ""
	if c.Password != nil {
		password = c.Password.Value
	}
	row("Password", maskSecret(password, reveal))

	if c.Alias != nil {
		row("Email", valueOrDash(c.Alias.Email))
		row("Alias", aliasName(c.Alias))
	}

	row("Notes", valueOrDash(c.Notes))
	if !c.UpdatedAt.IsZero() {
		row("Updated", c.UpdatedAt.Local().Format(time.DateTime))
	}

	return strings.TrimRight(b.String(), "\n")
}

func aliasName(a *models.Alias) string {
	parts := make([]string, 0, 2)
	for _, p := range []*string{a.FirstName, a.LastName} {
		if p != nil && *p != "" {
			parts = append(parts, *p)
		}
	}
	if len(parts) == 0 {
		return valueOrDash(a.NickName)
	}
	return strings.Join(parts, " ")
}
