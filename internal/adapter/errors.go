// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-vault-bridge/models"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrVaultLocked         = errors.New("vault is locked")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnavailable         = errors.New("daemon storage unavailable")

	ErrEmptyAddress         = errors.New("empty address")
	ErrIntegrityCheckFailed = errors.New("response integrity check failed")
)

// RejectionError is a bridge call the daemon rejected.
type RejectionError struct {
	Status    int
	Rejection models.BridgeRejection
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("%s (%s): %s", e.Rejection.Code, e.Rejection.Kind, e.Rejection.Message)
}
