// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// Credential is a login stored in the vault together with the service it
// belongs to, the generated alias identity and its most recent password.
type Credential struct {
	ID        uuid.UUID `json:"id"`
	Alias     *Alias    `json:"alias,omitempty"`
	Service   Service   `json:"service"`
	Username  *string   `json:"username,omitempty"`
	Notes     *string   `json:"notes,omitempty"`
	Password  *Password `json:"password,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	IsDeleted bool      `json:"isDeleted"`
}

// Service is the website or application a credential is used for.
type Service struct {
	ID        uuid.UUID `json:"id"`
	Name      *string   `json:"name,omitempty"`
	URL       *string   `json:"url,omitempty"`
	Logo      []byte    `json:"logo,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	IsDeleted bool      `json:"isDeleted"`
}

// Alias is the generated identity attached to a credential.
type Alias struct {
	ID        uuid.UUID `json:"id"`
	Gender    *string   `json:"gender,omitempty"`
	FirstName *string   `json:"firstName,omitempty"`
	LastName  *string   `json:"lastName,omitempty"`
	NickName  *string   `json:"nickName,omitempty"`
	BirthDate time.Time `json:"birthDate"`
	Email     *string   `json:"email,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	IsDeleted bool      `json:"isDeleted"`
}

// Password is one password revision of a credential.
type Password struct {
	ID           uuid.UUID `json:"id"`
	CredentialID uuid.UUID `json:"credentialId"`
	Value        string    `json:"value"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	IsDeleted    bool      `json:"isDeleted"`
}

// DisplayName returns the service name, falling back to the URL.
func (c Credential) DisplayName() string {
	if c.Service.Name != nil && *c.Service.Name != "" {
		return *c.Service.Name
	}
	if c.Service.URL != nil {
		return *c.Service.URL
	}
	return c.ID.String()
}
