// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/vpn-portal/internal/adapter"
	"github.com/MKhiriev/vpn-portal/internal/config"
	"github.com/MKhiriev/vpn-portal/internal/handler"
	"github.com/MKhiriev/vpn-portal/internal/logger"
	"github.com/MKhiriev/vpn-portal/internal/server"
	"github.com/MKhiriev/vpn-portal/internal/service"
	"github.com/MKhiriev/vpn-portal/internal/store"
	"github.com/MKhiriev/vpn-portal/internal/workers"
	"github.com/MKhiriev/vpn-portal/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("vpn-portal-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	logger.SetLevel(cfg.App.LogLevel)

	log.Debug().
		Str("http_address", cfg.Server.HTTPAddress).
		Str("grpc_address", cfg.Server.GRPCAddress).
		Str("db_driver", cfg.Storage.DB.Driver).
		Str("upstream", cfg.Upstream.BaseURL).
		Msg("received configs")

	for _, warning := range cfg.Warnings() {
		log.Warn().Msg(warning)
	}
	if cfg.App.AdminToken == "" {
		log.Info().Msg("admin routes are disabled")
	}

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	reseller, err := adapter.NewResellerClient(cfg.Upstream, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating reseller client")
	}

	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services, err := service.NewServices(storages, reseller, *cfg, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	sweep := workers.NewProvisionSweep(services.AccountService, services.AuthService, cfg.Workers.ProvisionInterval, log)

	srv, err := server.NewServer(handlers, cfg.Server, log, workers.NewWorkers(sweep))
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
