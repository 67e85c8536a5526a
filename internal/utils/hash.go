// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// signers hands out HMAC-SHA256 instances keyed with the bridge integrity key.
var signers sync.Pool

// InitHasherPool keys every signer handed out by Hash, SignBody and VerifyBody.
// It must run before the first bridge request is signed or checked.
func InitHasherPool(hashKey string) {
	key := []byte(hashKey)
	signers = sync.Pool{
		New: func() any { return hmac.New(sha256.New, key) },
	}
}

// Hash returns the raw HMAC-SHA256 of data under the pooled key.
func Hash(data []byte) []byte {
	mac := signers.Get().(hash.Hash)
	defer signers.Put(mac)

	mac.Reset()
	mac.Write(data)
	return mac.Sum(nil)
}

// SignBody returns the value of the HashSHA256 header for body.
func SignBody(body []byte) string {
	return hex.EncodeToString(Hash(body))
}

// VerifyBody reports whether signature is the HashSHA256 header value for body.
func VerifyBody(body []byte, signature string) bool {
	return hmac.Equal([]byte(SignBody(body)), []byte(signature))
}

// HashString signs data with an explicit key, bypassing the pool.
func HashString(data string, hashKey string) string {
	mac := hmac.New(sha256.New, []byte(hashKey))
	mac.Write([]byte(data))
	return hex.EncodeToString(mac.Sum(nil))
}
