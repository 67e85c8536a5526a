// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	ErrInvalidKeyLength   = errors.New("encryption key must be 32 bytes")
	ErrCiphertextTooShort = errors.New("ciphertext too short")
	ErrDecryptionFailed   = errors.New("decryption failed")
	ErrInvalidEncoding    = errors.New("encrypted data is not valid base64")
	ErrInvalidPayload     = errors.New("decrypted payload is not valid base64")
	ErrUnsupportedKDF     = errors.New("unsupported key derivation type")
	ErrInvalidKDFSettings = errors.New("invalid key derivation settings")
)
