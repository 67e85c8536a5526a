// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided        = errors.New("invalid data provided")
	ErrInvalidEncryptionKey       = errors.New("invalid encryption key")
	ErrInvalidMetadata            = errors.New("invalid vault metadata")
	ErrInvalidKeyDerivationParams = errors.New("invalid key derivation params")
	ErrNoKeyDerivationParams      = errors.New("no key derivation params stored")
	ErrInvalidAutoLockTimeout     = errors.New("auto-lock timeout must not be negative")

	ErrVaultLocked     = errors.New("vault is locked")
	ErrNoEncryptionKey = errors.New("no encryption key found")
	ErrUnlockFailed    = errors.New("could not unlock vault")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
