// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-vault-bridge/internal/logger"
	"github.com/MKhiriev/go-vault-bridge/models"
)

const getAllCredentials = `
WITH LatestPasswords AS (
    SELECT
        p.Id AS password_id,
        p.CredentialId,
        p.Value,
        p.CreatedAt,
        p.UpdatedAt,
        p.IsDeleted,
        ROW_NUMBER() OVER (PARTITION BY p.CredentialId ORDER BY p.CreatedAt DESC) AS rn
    FROM Passwords p
    WHERE p.IsDeleted = 0
)
SELECT
    c.Id AS id,
    c.Username AS username,
    c.Notes AS notes,
    c.CreatedAt AS created_at,
    c.UpdatedAt AS updated_at,
    c.IsDeleted AS is_deleted,
    s.Id AS service_id,
    s.Name AS service_name,
    s.Url AS service_url,
    s.Logo AS service_logo,
    s.CreatedAt AS service_created_at,
    s.UpdatedAt AS service_updated_at,
    s.IsDeleted AS service_is_deleted,
    lp.password_id AS password_id,
    lp.Value AS password_value,
    lp.CreatedAt AS password_created_at,
    lp.UpdatedAt AS password_updated_at,
    lp.IsDeleted AS password_is_deleted,
    a.Id AS alias_id,
    a.Gender AS alias_gender,
    a.FirstName AS alias_first_name,
    a.LastName AS alias_last_name,
    a.NickName AS alias_nick_name,
    a.BirthDate AS alias_birth_date,
    a.Email AS alias_email,
    a.CreatedAt AS alias_created_at,
    a.UpdatedAt AS alias_updated_at,
    a.IsDeleted AS alias_is_deleted
FROM Credentials c
LEFT JOIN Services s ON s.Id = c.ServiceId AND s.IsDeleted = 0
LEFT JOIN LatestPasswords lp ON lp.CredentialId = c.Id AND lp.rn = 1
LEFT JOIN Aliases a ON a.Id = c.AliasId AND a.IsDeleted = 0
WHERE c.IsDeleted = 0
ORDER BY c.CreatedAt DESC`

type credentialRow struct {
	ID        sql.NullString `db:"id"`
	Username  sql.NullString `db:"username"`
	Notes     sql.NullString `db:"notes"`
	CreatedAt sql.NullString `db:"created_at"`
	UpdatedAt sql.NullString `db:"updated_at"`
	IsDeleted sql.NullBool   `db:"is_deleted"`

	ServiceID        sql.NullString `db:"service_id"`
	ServiceName      sql.NullString `db:"service_name"`
	ServiceURL       sql.NullString `db:"service_url"`
	ServiceLogo      []byte         `db:"service_logo"`
	ServiceCreatedAt sql.NullString `db:"service_created_at"`
	ServiceUpdatedAt sql.NullString `db:"service_updated_at"`
	ServiceIsDeleted sql.NullBool   `db:"service_is_deleted"`

	PasswordID        sql.NullString `db:"password_id"`
	PasswordValue     sql.NullString `db:"password_value"`
	PasswordCreatedAt sql.NullString `db:"password_created_at"`
	PasswordUpdatedAt sql.NullString `db:"password_updated_at"`
	PasswordIsDeleted sql.NullBool   `db:"password_is_deleted"`

	AliasID        sql.NullString `db:"alias_id"`
	AliasGender    sql.NullString `db:"alias_gender"`
	AliasFirstName sql.NullString `db:"alias_first_name"`
	AliasLastName  sql.NullString `db:"alias_last_name"`
	AliasNickName  sql.NullString `db:"alias_nick_name"`
	AliasBirthDate sql.NullString `db:"alias_birth_date"`
	AliasEmail     sql.NullString `db:"alias_email"`
	AliasCreatedAt sql.NullString `db:"alias_created_at"`
	AliasUpdatedAt sql.NullString `db:"alias_updated_at"`
	AliasIsDeleted sql.NullBool   `db:"alias_is_deleted"`
}

type credentialRepository struct {
	vault VaultDatabase
}

func NewCredentialRepository(vault VaultDatabase) CredentialRepository {
	return &credentialRepository{vault: vault}
}

// GetAllCredentials returns the non-deleted credentials, newest first, each
// with its latest password. Rows without a service or with unparsable
// timestamps are skipped.
func (r *credentialRepository) GetAllCredentials(ctx context.Context) ([]models.Credential, error) {
	log := logger.FromContext(ctx)

	var rows []credentialRow
	if err := r.vault.Select(ctx, &rows, getAllCredentials); err != nil {
		log.Err(err).Str("func", "credentialRepository.GetAllCredentials").Msg("error selecting credentials")
		return nil, err
	}

	result := make([]models.Credential, 0, len(rows))
	for _, row := range rows {
		credential, ok := row.toCredential()
		if !ok {
			log.Debug().Str("id", row.ID.String).Msg("skipping incomplete credential row")
			continue
		}
		result = append(result, credential)
	}
	return result, nil
}

func (row credentialRow) toCredential() (models.Credential, bool) {
	id, err := uuid.Parse(row.ID.String)
	if err != nil {
		return models.Credential{}, false
	}
	createdAt, ok1 := parseVaultTime(row.CreatedAt)
	updatedAt, ok2 := parseVaultTime(row.UpdatedAt)
	if !ok1 || !ok2 {
		return models.Credential{}, false
	}

	serviceID, err := uuid.Parse(row.ServiceID.String)
	if err != nil {
		return models.Credential{}, false
	}
	serviceCreatedAt, ok1 := parseVaultTime(row.ServiceCreatedAt)
	serviceUpdatedAt, ok2 := parseVaultTime(row.ServiceUpdatedAt)
	if !ok1 || !ok2 {
		return models.Credential{}, false
	}

	return models.Credential{
		ID: id,
		Service: models.Service{
			ID:        serviceID,
			Name:      nullString(row.ServiceName),
			URL:       nullString(row.ServiceURL),
			Logo:      row.ServiceLogo,
			CreatedAt: serviceCreatedAt,
			UpdatedAt: serviceUpdatedAt,
			IsDeleted: row.ServiceIsDeleted.Bool,
		},
		Alias:     row.alias(),
		Password:  row.password(id),
		Username:  nullString(row.Username),
		Notes:     nullString(row.Notes),
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
		IsDeleted: row.IsDeleted.Bool,
	}, true
}

func (row credentialRow) alias() *models.Alias {
	id, err := uuid.Parse(row.AliasID.String)
	if err != nil {
		return nil
	}
	createdAt, ok1 := parseVaultTime(row.AliasCreatedAt)
	updatedAt, ok2 := parseVaultTime(row.AliasUpdatedAt)
	if !ok1 || !ok2 {
		return nil
	}

	birthDate, ok := parseVaultTime(row.AliasBirthDate)
	if !ok {
		birthDate = time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)
	}

	return &models.Alias{
		ID:        id,
		Gender:    nullString(row.AliasGender),
		FirstName: nullString(row.AliasFirstName),
		LastName:  nullString(row.AliasLastName),
		NickName:  nullString(row.AliasNickName),
		BirthDate: birthDate,
		Email:     nullString(row.AliasEmail),
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
		IsDeleted: row.AliasIsDeleted.Bool,
	}
}

func (row credentialRow) password(credentialID uuid.UUID) *models.Password {
	id, err := uuid.Parse(row.PasswordID.String)
	if err != nil || !row.PasswordValue.Valid {
		return nil
	}
	createdAt, ok1 := parseVaultTime(row.PasswordCreatedAt)
	updatedAt, ok2 := parseVaultTime(row.PasswordUpdatedAt)
	if !ok1 || !ok2 {
		return nil
	}

	return &models.Password{
		ID:           id,
		CredentialID: credentialID,
		Value:        row.PasswordValue.String,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
		IsDeleted:    row.PasswordIsDeleted.Bool,
	}
}

func nullString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

var vaultTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
}

// parseVaultTime accepts ISO 8601 and the "yyyy-MM-dd HH:mm:ss[.SSS]" form
// used by the vault. Zone-less values are UTC.
func parseVaultTime(s sql.NullString) (time.Time, bool) {
	if !s.Valid {
		return time.Time{}, false
	}
	value := strings.TrimSpace(s.String)
	for _, layout := range vaultTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
