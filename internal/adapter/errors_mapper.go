// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-vault-bridge/models"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusLocked:              ErrVaultLocked,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusServiceUnavailable:  ErrUnavailable,
}

// mapHTTPError returns nil for 2xx responses. A body holding a bridge
// rejection becomes a *RejectionError wrapped in the status sentinel.
func mapHTTPError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	var rejection models.BridgeRejection
	if err := json.Unmarshal(resp.Body(), &rejection); err == nil && rejection.Code != "" {
		rejectionErr := &RejectionError{Status: status, Rejection: rejection}
		if sentinel, ok := statusErrors[status]; ok {
			return fmt.Errorf("%w: %w", sentinel, rejectionErr)
		}
		return rejectionErr
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(status)
	}
	if sentinel, ok := statusErrors[status]; ok {
		return fmt.Errorf("%w: %s", sentinel, body)
	}
	return fmt.Errorf("http %d: %s", status, body)
}
