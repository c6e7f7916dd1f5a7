// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the terminal dashboard of the VPN portal on top of
// Bubble Tea. Every screen talks to the portal through
// [adapter.PortalClient].
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/vpn-portal/internal/adapter"
	"github.com/MKhiriev/vpn-portal/internal/config"
	"github.com/MKhiriev/vpn-portal/internal/logger"
	"github.com/MKhiriev/vpn-portal/models"
)

type TUI struct {
	portal    adapter.PortalClient
	outputDir string
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(portal adapter.PortalClient, cfg config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if portal == nil {
		return nil, errors.New("portal client is required")
	}

	return &TUI{
		portal:    portal,
		outputDir: cfg.OutputDir,
		buildInfo: buildInfo,
		logger:    logger,
	}, nil
}

// Run blocks until the user quits. The session cookie lives only as long as
// the process, so every run starts at the menu.
func (t *TUI) Run(ctx context.Context) error {
	root := t.newRootModel(ctx)

	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	return nil
}

func (t *TUI) newRootModel(ctx context.Context) RootModel {
	pages := map[string]tea.Model{
		pageMenu:      NewMenuModel(),
		pageLogin:     NewLoginModel(ctx, t.portal),
		pageRegister:  NewRegisterModel(ctx, t.portal),
		pageDashboard: NewDashboardModel(ctx, t.portal, t.outputDir, t.logger),
	}

	return NewRootModel(pages, pageMenu, t.buildInfo)
}
