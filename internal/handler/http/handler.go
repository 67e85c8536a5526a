// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-vault-bridge/internal/bridge"
	"github.com/MKhiriev/go-vault-bridge/internal/logger"
	"github.com/MKhiriev/go-vault-bridge/internal/service"
	"github.com/MKhiriev/go-vault-bridge/internal/utils"
	"github.com/MKhiriev/go-vault-bridge/internal/validators"
)

type Handler struct {
	bridge    *bridge.Bridge
	services  *service.Services
	validator validators.Validator

	hashKey string

	logger *logger.Logger
}

// NewHandler prepares the hasher pool when hashKey is set.
func NewHandler(bridge *bridge.Bridge, services *service.Services, validator validators.Validator, hashKey string, logger *logger.Logger) *Handler {
	if hashKey != "" {
		utils.InitHasherPool(hashKey)
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		bridge:    bridge,
		services:  services,
		validator: validator,
		hashKey:   hashKey,
		logger:    logger,
	}
}
