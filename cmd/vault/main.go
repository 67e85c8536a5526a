// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"

	"github.com/MKhiriev/go-vault-bridge/internal/client"
	"github.com/MKhiriev/go-vault-bridge/internal/config"
	"github.com/MKhiriev/go-vault-bridge/internal/logger"
	"github.com/MKhiriev/go-vault-bridge/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("vault").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("vault", cfg.Client.LogFile)

	app, err := client.NewApp(cfg, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
