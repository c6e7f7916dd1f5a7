// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/vpn-portal/internal/config"
	"github.com/MKhiriev/vpn-portal/models"
)

func TestNewAppInfoService(t *testing.T) {
	tests := []struct {
		name        string
		cfgVersion  string
		build       models.AppBuildInfo
		wantVersion string
		wantErr     error
	}{
		{
			name:        "configured version wins",
			cfgVersion:  "1.0.0",
			build:       models.NewAppBuildInfo("0.9.0", "2026-01-01", "abc123"),
			wantVersion: "1.0.0",
		},
		{
			name:        "build version as fallback",
			build:       models.NewAppBuildInfo("0.9.0", "2026-01-01", "abc123"),
			wantVersion: "0.9.0",
		},
		{
			name:    "no version at all",
			wantErr: ErrVersionIsNotSpecified,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewAppInfoService(config.App{Version: tt.cfgVersion}, tt.build)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, svc)
				return
			}
			require.NoError(t, err)

			ctx := context.Background()
			assert.Equal(t, tt.wantVersion, svc.GetAppVersion(ctx))

			info := svc.GetBuildInfo(ctx)
			assert.Equal(t, tt.wantVersion, info.BuildVersion())
			assert.Equal(t, tt.build.BuildDate(), info.BuildDate())
			assert.Equal(t, tt.build.BuildCommit(), info.BuildCommit())
		})
	}
}

func TestGetAppVersion_CancelledContext(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, models.AppBuildInfo{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, "1.0.0", svc.GetAppVersion(ctx))
}
