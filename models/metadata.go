// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// VaultMetadata is the JSON document stored next to the encrypted database.
// It is written by the application layer after every vault download and is
// the home of the vault revision number.
type VaultMetadata struct {
	// PublicEmailDomains are the shared email domains offered for aliases.
	PublicEmailDomains []string `json:"publicEmailDomains"`

	// PrivateEmailDomains are the user's own email domains.
	PrivateEmailDomains []string `json:"privateEmailDomains"`

	// VaultRevisionNumber is the revision of the vault the local copy of the
	// encrypted database corresponds to.
	VaultRevisionNumber int64 `json:"vaultRevisionNumber"`
}

// VaultRevisionNumberField is the metadata key holding the revision number.
const VaultRevisionNumberField = "vaultRevisionNumber"
