// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/vpn-portal/internal/config"
	"github.com/MKhiriev/vpn-portal/models"
)

type appInfoService struct {
	build models.AppBuildInfo
}

// NewAppInfoService combines the linker-injected build metadata with the
// configured version. A configured version wins over the build version.
func NewAppInfoService(cfg config.App, build models.AppBuildInfo) (AppInfoService, error) {
	version := cfg.Version
	if version == "" {
		version = build.BuildVersion()
	}
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		build: models.NewAppBuildInfo(version, build.BuildDate(), build.BuildCommit()),
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.build.BuildVersion()
}

func (s *appInfoService) GetBuildInfo(ctx context.Context) models.AppBuildInfo {
	return s.build
}
