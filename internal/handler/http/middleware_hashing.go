// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/MKhiriev/go-vault-bridge/internal/app"
	"github.com/MKhiriev/go-vault-bridge/internal/logger"
	"github.com/MKhiriev/go-vault-bridge/internal/utils"
	"github.com/MKhiriev/go-vault-bridge/models"
)

// withHashing checks the HashSHA256 header of non-empty request bodies and
// signs every response body the same way. Without a hash key it does
// nothing.
func (h *Handler) withHashing(next http.Handler) http.Handler {
	if h.hashKey == "" {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Err(err).Str("func", "*Handler.withHashing").Msg("failed to read request body")
			http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		if len(body) > 0 {
			hashFromRequest := r.Header.Get(models.HashHeader)
			if hashFromRequest == "" {
				log.Err(ErrMissingHash).Str("func", "*Handler.withHashing").Send()
				http.Error(w, ErrMissingHash.Error(), http.StatusBadRequest)
				return
			}

			if !utils.VerifyBody(body, hashFromRequest) {
				log.Error().Str("func", "*Handler.withHashing").
					Str("hash from request", hashFromRequest).
					Msg("hashes are not equal")
				http.Error(w, ErrIntegrityCheckFailed.Error(), http.StatusBadRequest)
				return
			}
		}

		bw := &bufferedResponseWriter{ResponseWriter: w}
		next.ServeHTTP(bw, r)

		w.Header().Set(models.HashHeader, utils.SignBody(bw.body.Bytes()))
		w.WriteHeader(bw.statusCode())
		if _, err = w.Write(bw.body.Bytes()); err != nil {
			log.Err(err).Str("func", "*Handler.withHashing").Msg("failed to write response")
		}
	})
}
