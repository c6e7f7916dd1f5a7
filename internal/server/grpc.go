// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"fmt"
	"net"

	"google.golang.org/grpc"

	"github.com/MKhiriev/vpn-portal/internal/config"
	myGRPC "github.com/MKhiriev/vpn-portal/internal/handler/grpc"
	"github.com/MKhiriev/vpn-portal/internal/logger"
)

type grpcServer struct {
	handler *myGRPC.Handler

	server          *grpc.Server
	address         string
	gRPCNetListener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	s := grpc.NewServer(grpc.UnaryInterceptor(handler.UnaryLogging))
	handler.Register(s)

	return &grpcServer{
		handler: handler,
		server:  s,
		address: cfg.GRPCAddress,
		logger:  logger,
	}
}

func (g *grpcServer) listen() error {
	if g.gRPCNetListener != nil {
		return nil
	}

	listener, err := net.Listen("tcp", g.address)
	if err != nil {
		return fmt.Errorf("error listening on gRPC address %s: %w", g.address, err)
	}
	g.gRPCNetListener = listener
	return nil
}

func (g *grpcServer) RunServer() {
	if g.gRPCNetListener == nil {
		if err := g.listen(); err != nil {
			g.logger.Error().Err(err).Msg("gRPC server listen")
			return
		}
	}

	if err := g.server.Serve(g.gRPCNetListener); err != nil {
		g.logger.Error().Err(err).Msg("gRPC server Serve")
	}
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("GRPC server Shutdown")
	g.handler.Shutdown()
	g.server.GracefulStop()
}
