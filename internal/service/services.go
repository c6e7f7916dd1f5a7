// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/vpn-portal/internal/adapter"
	"github.com/MKhiriev/vpn-portal/internal/config"
	"github.com/MKhiriev/vpn-portal/internal/crypto"
	"github.com/MKhiriev/vpn-portal/internal/logger"
	"github.com/MKhiriev/vpn-portal/internal/store"
	"github.com/MKhiriev/vpn-portal/models"
)

type Services struct {
	AuthService     AuthService
	ConfigService   ConfigService
	AccountService  AccountService
	ResellerService ResellerService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, reseller adapter.ResellerClient, cfg config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, build)
	if err != nil {
		return nil, err
	}

	authService := NewAuthService(
		storages.UserRepository,
		reseller,
		crypto.NewPasswordHasher(),
		crypto.NewSecretGenerator(cfg.App.Brand),
		cfg.App,
		logger,
	)

	configService := NewConfigService(storages.UserRepository, reseller, cfg.App, logger)

	return &Services{
		AuthService:     authService,
		ConfigService:   NewConfigValidationService().Wrap(configService),
		AccountService:  NewAccountService(storages.UserRepository, reseller, logger),
		ResellerService: NewResellerService(reseller, logger),
		AppInfoService:  appInfoService,
	}, nil
}
