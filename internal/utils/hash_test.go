// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-vault-bridge/models"
)

const testHashKey = "test-secret-key"

func TestHash_MatchesPlainHMAC(t *testing.T) {
	InitHasherPool(testHashKey)

	body, err := json.Marshal(models.RevisionNumberRequest{RevisionNumber: 42})
	require.NoError(t, err)

	mac := hmac.New(sha256.New, []byte(testHashKey))
	mac.Write(body)

	assert.Equal(t, mac.Sum(nil), Hash(body))
	assert.Equal(t, Hash(body), Hash(body), "pooled signer must be reset between calls")
}

func TestSignBody(t *testing.T) {
	first, _ := json.Marshal(models.RevisionNumberRequest{RevisionNumber: 1})
	second, _ := json.Marshal(models.RevisionNumberRequest{RevisionNumber: 2})

	InitHasherPool("key-one")
	signedOne := SignBody(first)
	assert.NotEqual(t, signedOne, SignBody(second))
	assert.Equal(t, HashString(string(first), "key-one"), signedOne)

	InitHasherPool("key-two")
	assert.NotEqual(t, signedOne, SignBody(first))
}

func TestVerifyBody(t *testing.T) {
	InitHasherPool(testHashKey)
	body := []byte(`{"metadata":"{\"vaultRevisionNumber\":3}"}`)

	tests := []struct {
		name      string
		signature string
		want      bool
	}{
		{name: "own signature", signature: SignBody(body), want: true},
		{name: "foreign key", signature: HashString(string(body), "other-key"), want: false},
		{name: "empty", signature: "", want: false},
		{name: "garbage", signature: "not-hex", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, VerifyBody(body, tt.signature))
		})
	}
}
