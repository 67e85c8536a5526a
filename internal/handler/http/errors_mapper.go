// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-vault-bridge/internal/bridge"
)

var errorStatusMap = map[bridge.ErrorKind]int{
	bridge.KindUnknown:          http.StatusInternalServerError,
	bridge.KindStoreUnavailable: http.StatusServiceUnavailable,
	bridge.KindNotFound:         http.StatusNotFound,
	bridge.KindPermissionDenied: http.StatusForbidden,
	bridge.KindInvalidArgument:  http.StatusBadRequest,
	bridge.KindLocked:           http.StatusLocked,
}

func statusFromError(err error) int {
	if status, ok := errorStatusMap[bridge.ClassifyError(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}
