// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-vault-bridge/models"
)

const validParams = `{"salt":"c2FsdA==","encryptionType":"Argon2Id","encryptionSettings":"{\"Iterations\":1,\"MemorySize\":1024,\"DegreeOfParallelism\":1}"}`

func TestRequestValidator_Validate(t *testing.T) {
	v := NewRequestValidator()

	tests := []struct {
		name    string
		obj     any
		fields  []string
		wantErr error
		wantMsg string
	}{
		{name: "valid database", obj: models.StoreDatabaseRequest{EncryptedDatabase: "YWJj"}},
		{name: "pointer is fine", obj: &models.StoreDatabaseRequest{EncryptedDatabase: "YWJj"}},
		{name: "database not base64", obj: models.StoreDatabaseRequest{EncryptedDatabase: "%%%"}, wantErr: ErrInvalidRequest, wantMsg: "encryptedDatabase failed on base64"},
		{name: "empty database", obj: models.StoreDatabaseRequest{}, wantErr: ErrInvalidRequest, wantMsg: "encryptedDatabase failed on required"},
		{name: "metadata not json", obj: models.StoreMetadataRequest{Metadata: "{"}, wantErr: ErrInvalidRequest, wantMsg: "metadata failed on json"},
		{name: "valid metadata", obj: models.StoreMetadataRequest{Metadata: `{"vaultRevisionNumber":3}`}},
		{name: "negative timeout", obj: models.AutoLockTimeoutRequest{Timeout: -1}, wantErr: ErrInvalidRequest, wantMsg: "timeout failed on min"},
		{name: "zero timeout disables", obj: models.AutoLockTimeoutRequest{Timeout: 0}},
		{name: "unknown auth method", obj: models.AuthMethodsRequest{AuthMethods: []string{"password", "pin"}}, wantErr: ErrInvalidRequest, wantMsg: "oneof"},
		{name: "empty auth methods", obj: models.AuthMethodsRequest{}},
		{name: "valid kdf params", obj: models.StoreKeyDerivationParamsRequest{KeyDerivationParams: validParams}},
		{name: "kdf params missing salt", obj: models.StoreKeyDerivationParamsRequest{KeyDerivationParams: `{"encryptionType":"Argon2Id","encryptionSettings":"{}"}`}, wantErr: ErrInvalidRequest, wantMsg: "kdfparams"},
		{name: "kdf params wrong type", obj: models.StoreKeyDerivationParamsRequest{KeyDerivationParams: `{"salt":"x","encryptionType":"PBKDF2","encryptionSettings":"{}"}`}, wantErr: ErrInvalidRequest, wantMsg: "kdfparams"},
		{name: "partial check skips other fields", obj: models.QueryRequest{}, fields: []string{"Params"}},
		{name: "not a struct", obj: "query", wantErr: ErrUnsupportedType},
		{name: "nil pointer", obj: (*models.QueryRequest)(nil), wantErr: ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.obj, tt.fields...)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}
