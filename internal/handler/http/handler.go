// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/vpn-portal/internal/config"
	"github.com/MKhiriev/vpn-portal/internal/logger"
	"github.com/MKhiriev/vpn-portal/internal/service"
)

type Handler struct {
	services *service.Services

	// secureCookies marks the session cookie Secure.
	secureCookies bool
	// sessionTTL is the Max-Age of the session cookie.
	sessionTTL time.Duration
	// adminToken guards /admin; empty disables those routes.
	adminToken string
	// requestTimeout bounds every request; 0 means no limit.
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		secureCookies:  cfg.App.SecureCookies,
		sessionTTL:     cfg.App.TokenDuration,
		adminToken:     cfg.App.AdminToken,
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
}
