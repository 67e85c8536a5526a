// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-vault-bridge/internal/app"
	"github.com/MKhiriev/go-vault-bridge/internal/bridge"
	"github.com/MKhiriev/go-vault-bridge/internal/logger"
	"github.com/MKhiriev/go-vault-bridge/internal/utils"
	"github.com/MKhiriev/go-vault-bridge/models"
)

// respond waits for p and writes its value as models.BridgeResult or its
// rejection as models.BridgeRejection.
func respond[T any](w http.ResponseWriter, r *http.Request, method string, p *bridge.Promise[T]) {
	log := logger.FromRequest(r)

	value, err := p.Await(r.Context())
	if err != nil {
		writeRejection(w, r, method, err)
		return
	}

	if _, err = utils.WriteJSON(w, models.BridgeResult[T]{Result: value}, http.StatusOK); err != nil {
		log.Err(err).Str("func", method).Msg("failed to write bridge result")
	}
}

func writeRejection(w http.ResponseWriter, r *http.Request, method string, err error) {
	log := logger.FromRequest(r)

	var bridgeErr *bridge.BridgeError
	if !errors.As(err, &bridgeErr) {
		// the request went away before the call settled
		bridgeErr = &bridge.BridgeError{Kind: bridge.ClassifyError(err), Code: bridge.CodeDBError, Message: app.MsgRequestAborted, Err: err}
	}

	status := statusFromError(bridgeErr)
	log.Err(err).Str("func", method).Int("status", status).Str("code", bridgeErr.Code).Msg("bridge call rejected")

	if _, err = utils.WriteJSON(w, bridgeErr.Rejection(), status); err != nil {
		log.Err(err).Str("func", method).Msg("failed to write bridge rejection")
	}
}

// decode reads the JSON body into dst and validates it. On failure it
// writes an InvalidArgument rejection under code and returns false.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, method, code string, dst any) bool {
	err := json.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) {
		err = fmt.Errorf("%w: empty body", ErrInvalidJSON)
	} else if err != nil {
		err = fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	if err == nil {
		err = h.validator.Validate(r.Context(), dst)
	}
	if err == nil {
		return true
	}

	writeRejection(w, r, method, &bridge.BridgeError{
		Kind:    bridge.KindInvalidArgument,
		Code:    code,
		Message: app.MsgInvalidDataProvided,
		Err:     err,
	})
	return false
}
