// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Errors of the auth and integrity middleware.
var (
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")
	ErrIntegrityCheckFailed     = errors.New("integrity check failed")
	ErrMissingHash              = errors.New("missing `HashSHA256` header")
	ErrInvalidJSON              = errors.New("invalid JSON was passed")
)
