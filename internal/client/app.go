// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/vpn-portal/internal/logger"
	"github.com/MKhiriev/vpn-portal/internal/tui"
)

type App struct {
	ui     UI
	logger *logger.Logger
}

func NewApp(ui UI, logger *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, errors.New("ui is required")
	}

	return &App{ui: ui, logger: logger}, nil
}

// Run blocks until the user quits or a stop signal arrives. Quitting is not
// an error.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	a.logger.Info().Msg("client started")

	err := a.ui.Run(ctx)
	switch {
	case err == nil, errors.Is(err, tui.ErrUserQuit):
		a.logger.Info().Msg("client stopped by user")
		return nil
	case ctx.Err() != nil:
		a.logger.Info().Msg("client interrupted")
		return nil
	default:
		return fmt.Errorf("ui error: %w", err)
	}
}

var _ Client = (*App)(nil)
