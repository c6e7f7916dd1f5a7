// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc exposes the standard gRPC health service of the portal so
// orchestrators can probe the server without going through the HTTP API.
package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/vpn-portal/internal/logger"
	"github.com/MKhiriev/vpn-portal/internal/service"
)

// ServiceName is the health service name reported next to the overall ("")
// server status.
const ServiceName = "vpnportal.Portal"

// Handler is the root gRPC transport handler.
//
// It owns the health server whose statuses follow the lifecycle of the
// process: SERVING once registered, NOT_SERVING after [Handler.Shutdown].
type Handler struct {
	services *service.Services
	health   *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container and
// logger.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
}

// Register attaches the health service to s and marks the portal as serving.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)

	h.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	h.health.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)

	if h.services != nil && h.services.AppInfoService != nil {
		h.logger.Info().
			Str("version", h.services.AppInfoService.GetAppVersion(context.Background())).
			Msg("gRPC health service registered")
	}
}

// Shutdown flips every status to NOT_SERVING so watchers see the server
// draining before the listener closes.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

// UnaryLogging is a unary interceptor that logs every call with its status
// code and duration.
func (h *Handler) UnaryLogging(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()

	resp, err := handler(ctx, req)

	h.logger.Debug().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Msg("gRPC call")

	return resp, err
}
