// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-vault-bridge/internal/logger"
	"github.com/MKhiriev/go-vault-bridge/internal/utils"
	"github.com/MKhiriev/go-vault-bridge/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}

// listModules names the bridge modules the daemon registers.
func (h *Handler) listModules(w http.ResponseWriter, r *http.Request) {
	modules := h.bridge.Modules()
	names := make([]string, 0, len(modules))
	for _, module := range modules {
		names = append(names, module.ModuleName())
	}

	if _, err := utils.WriteJSON(w, models.BridgeResult[[]string]{Result: names}, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.listModules").Send()
	}
}
