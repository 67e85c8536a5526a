// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-vault-bridge/internal/bridge"
	"github.com/MKhiriev/go-vault-bridge/internal/config"
	"github.com/MKhiriev/go-vault-bridge/internal/crypto"
	"github.com/MKhiriev/go-vault-bridge/internal/handler"
	"github.com/MKhiriev/go-vault-bridge/internal/logger"
	"github.com/MKhiriev/go-vault-bridge/internal/server"
	"github.com/MKhiriev/go-vault-bridge/internal/service"
	"github.com/MKhiriev/go-vault-bridge/internal/store"
	"github.com/MKhiriev/go-vault-bridge/internal/workers"
	"github.com/MKhiriev/go-vault-bridge/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	log := logger.NewLogger("vaultd")
	cfg, err := config.GetDaemonConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if buildInfo.Known() {
		cfg.App.Version = buildInfo.Version
	}

	log.Debug().Any("server", cfg.Server).Any("bridge", cfg.Bridge).Any("vault", cfg.Vault).Msg("received configs")

	ctx := context.Background()
	cipher := crypto.NewVaultCipher()

	storages, err := store.NewStorages(ctx, cfg.Storage, cfg.App.DeviceSecret, cipher, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, cipher, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}
	defer func() {
		if err := services.ClipboardService.Flush(ctx); err != nil {
			log.Err(err).Msg("error clearing clipboard on shutdown")
		}
	}()

	b := bridge.NewBridge(services, cfg.Bridge, log)

	jobs := workers.NewWorkers(
		b.Queue,
		workers.NewAutoLockWorker(services.VaultService, cfg.Vault, log),
	)
	jobs.Run(ctx)
	defer jobs.Stop()

	handlers, err := handler.NewHandlers(b, services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
