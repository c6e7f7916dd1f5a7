// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/vpn-portal/internal/adapter"
	"github.com/MKhiriev/vpn-portal/internal/config"
	"github.com/MKhiriev/vpn-portal/internal/logger"
	"github.com/MKhiriev/vpn-portal/internal/mock"
	"github.com/MKhiriev/vpn-portal/internal/store"
	"github.com/MKhiriev/vpn-portal/internal/validators"
	"github.com/MKhiriev/vpn-portal/models"
)

var testServers = []models.VPNServer{
	{ID: "1", Name: "uk-lon-1", City: "London", CountryCode: "GB"},
	{ID: "2", Name: "us-nyc-1", City: "New York", CountryCode: "US"},
	{ID: "3", Name: "de-fra-1", City: "Frankfurt", CountryCode: "DE"},
}

func provisionedUser() models.User {
	return models.User{
		ID:           "u-1",
		Email:        "a@b.com",
		LicenseKey:   "S24-1-ABCDEF01",
		VPNAccountID: "42",
		VPNUsername:  "S24-1-ABCDEF01",
		VPNPassword:  "vpnpass",
		Status:       models.UserStatusActive,
	}
}

func newConfigFixture(t *testing.T) (ConfigService, *mock.MockUserRepository, *mock.MockResellerClient) {
	t.Helper()
	ctrl := gomock.NewController(t)

	users := mock.NewMockUserRepository(ctrl)
	reseller := mock.NewMockResellerClient(ctrl)

	svc := NewConfigService(users, reseller, config.App{Brand: "s24", BrandName: "S24 VPN"}, logger.Nop())
	return svc, users, reseller
}

func TestConfigService_WireGuardDesktop(t *testing.T) {
	svc, users, reseller := newConfigFixture(t)
	ctx := context.Background()

	users.EXPECT().GetUserByLicense(ctx, "S24-1-ABCDEF01").Return(provisionedUser(), nil)
	reseller.EXPECT().ListServers(ctx).Return(testServers, nil)
	reseller.EXPECT().GetWireGuardConfig(ctx, "42", "2").
		Return(models.ConfigArtifact{FileBody: "[Interface]\nPrivateKey = x\n", FileName: "upstream.conf"}, nil)

	got, err := svc.GenerateForLicense(ctx, models.ConfigRequest{
		LicenseKey: "S24-1-ABCDEF01",
		ServerID:   "2",
		Protocol:   models.WireGuard,
		Platform:   models.Desktop,
	})
	require.NoError(t, err)

	assert.Equal(t, "[Interface]\nPrivateKey = x\n", got.FileBody)
	assert.Equal(t, "s24-vpn-desktop-new-york-wireguard.conf", got.FileName)
	assert.Equal(t, "text/plain", got.ContentType)
	assert.Equal(t, "us-nyc-1", got.ServerName)
	assert.Equal(t, models.WireGuard, got.Protocol)
	assert.Equal(t, models.Desktop, got.Platform)
}

func TestConfigService_UnknownServerFallsBackToFirst(t *testing.T) {
	for _, serverID := range []string{"", "999"} {
		t.Run("server="+serverID, func(t *testing.T) {
			svc, users, reseller := newConfigFixture(t)
			ctx := context.Background()

			users.EXPECT().GetUserByLicense(ctx, gomock.Any()).Return(provisionedUser(), nil)
			reseller.EXPECT().ListServers(ctx).Return(testServers, nil)
			reseller.EXPECT().GetWireGuardConfig(ctx, "42", "1").Return(models.ConfigArtifact{FileBody: "wg"}, nil)

			got, err := svc.GenerateForLicense(ctx, models.ConfigRequest{
				LicenseKey: "S24-1-ABCDEF01",
				ServerID:   serverID,
				Protocol:   models.WireGuard,
				Platform:   models.Desktop,
			})
			require.NoError(t, err)
			assert.Equal(t, "uk-lon-1", got.ServerName)
		})
	}
}

func TestConfigService_WireGuardIOSProfile(t *testing.T) {
	svc, users, reseller := newConfigFixture(t)
	ctx := context.Background()

	users.EXPECT().GetUserByLicense(ctx, gomock.Any()).Return(provisionedUser(), nil)
	reseller.EXPECT().ListServers(ctx).Return(testServers, nil)
	reseller.EXPECT().GetWireGuardConfig(ctx, "42", "1").
		Return(models.ConfigArtifact{FileBody: "[Interface]\nAddress = 10.0.0.2/32\n"}, nil)

	got, err := svc.GenerateForLicense(ctx, models.ConfigRequest{
		LicenseKey: "S24-1-ABCDEF01",
		Protocol:   models.WireGuard,
		Platform:   models.IOS,
	})
	require.NoError(t, err)

	assert.Equal(t, "application/x-apple-aspen-config", got.ContentType)
	assert.Equal(t, "s24-vpn-ios-london-wireguard.mobileconfig", got.FileName)
	assert.True(t, strings.HasPrefix(got.FileBody, "<?xml"))
	assert.Contains(t, got.FileBody, "<string>S24 VPN - uk-lon-1</string>")
	assert.Contains(t, got.FileBody, `[Interface]\nAddress = 10.0.0.2/32\n`)
	assert.Contains(t, got.FileBody, "<string>com.s24vpn.")
}

func TestConfigService_OpenVPNInjectsCredentials(t *testing.T) {
	svc, users, reseller := newConfigFixture(t)
	ctx := context.Background()

	users.EXPECT().GetUserByLicense(ctx, gomock.Any()).Return(provisionedUser(), nil)
	reseller.EXPECT().ListServers(ctx).Return(testServers, nil)
	reseller.EXPECT().GetOpenVPNConfig(ctx, "3").Return(models.ConfigArtifact{FileBody: "client\nremote de-fra-1 1194"}, nil)

	got, err := svc.GenerateForLicense(ctx, models.ConfigRequest{
		LicenseKey: "S24-1-ABCDEF01",
		ServerID:   "3",
		Protocol:   models.OpenVPN,
		Platform:   models.Android,
	})
	require.NoError(t, err)

	want := "client\nremote de-fra-1 1194\n\n<auth-user-pass>\nS24-1-ABCDEF01\nvpnpass\n</auth-user-pass>\n"
	assert.Equal(t, want, got.FileBody)
	assert.Equal(t, 1, strings.Count(got.FileBody, "<auth-user-pass>"))
	assert.Equal(t, "s24-vpn-android-frankfurt-openvpn.ovpn", got.FileName)
	assert.Equal(t, "text/plain", got.ContentType)
}

func TestConfigService_OpenVPNWithoutCredentials(t *testing.T) {
	svc, users, reseller := newConfigFixture(t)
	ctx := context.Background()

	user := provisionedUser()
	user.VPNPassword = ""

	users.EXPECT().GetUserByLicense(ctx, gomock.Any()).Return(user, nil)
	reseller.EXPECT().ListServers(ctx).Return(testServers, nil)
	reseller.EXPECT().GetOpenVPNConfig(ctx, "1").Return(models.ConfigArtifact{FileBody: "client"}, nil)

	got, err := svc.GenerateForLicense(ctx, models.ConfigRequest{LicenseKey: "K", Protocol: models.OpenVPN, Platform: models.Desktop})
	require.NoError(t, err)
	assert.Equal(t, "client", got.FileBody)
}

func TestConfigService_FailClosed(t *testing.T) {
	upstreamErr := &adapter.UpstreamError{StatusCode: 502, Body: "bad gateway"}
	unprovisioned := provisionedUser()
	unprovisioned.VPNAccountID = ""

	tests := []struct {
		name    string
		req     models.ConfigRequest
		setup   func(users *mock.MockUserRepository, reseller *mock.MockResellerClient)
		wantErr error
	}{
		{
			name: "unknown license",
			req:  models.ConfigRequest{LicenseKey: "nope", Protocol: models.WireGuard, Platform: models.Desktop},
			setup: func(users *mock.MockUserRepository, _ *mock.MockResellerClient) {
				users.EXPECT().GetUserByLicense(gomock.Any(), "nope").Return(models.User{}, store.ErrUserNotFound)
			},
			wantErr: ErrInvalidLicense,
		},
		{
			name: "not provisioned",
			req:  models.ConfigRequest{LicenseKey: "K", Protocol: models.WireGuard, Platform: models.Desktop},
			setup: func(users *mock.MockUserRepository, _ *mock.MockResellerClient) {
				users.EXPECT().GetUserByLicense(gomock.Any(), "K").Return(unprovisioned, nil)
			},
			wantErr: ErrNotProvisioned,
		},
		{
			name: "empty server list",
			req:  models.ConfigRequest{LicenseKey: "K", Protocol: models.WireGuard, Platform: models.Desktop},
			setup: func(users *mock.MockUserRepository, reseller *mock.MockResellerClient) {
				users.EXPECT().GetUserByLicense(gomock.Any(), "K").Return(provisionedUser(), nil)
				reseller.EXPECT().ListServers(gomock.Any()).Return([]models.VPNServer{}, nil)
			},
			wantErr: ErrNoServersAvailable,
		},
		{
			name: "server list upstream error",
			req:  models.ConfigRequest{LicenseKey: "K", Protocol: models.WireGuard, Platform: models.Desktop},
			setup: func(users *mock.MockUserRepository, reseller *mock.MockResellerClient) {
				users.EXPECT().GetUserByLicense(gomock.Any(), "K").Return(provisionedUser(), nil)
				reseller.EXPECT().ListServers(gomock.Any()).Return(nil, upstreamErr)
			},
			wantErr: adapter.ErrUpstream,
		},
		{
			name: "config upstream error",
			req:  models.ConfigRequest{LicenseKey: "K", Protocol: models.OpenVPN, Platform: models.Desktop},
			setup: func(users *mock.MockUserRepository, reseller *mock.MockResellerClient) {
				users.EXPECT().GetUserByLicense(gomock.Any(), "K").Return(provisionedUser(), nil)
				reseller.EXPECT().ListServers(gomock.Any()).Return(testServers, nil)
				reseller.EXPECT().GetOpenVPNConfig(gomock.Any(), "1").Return(models.ConfigArtifact{}, upstreamErr)
			},
			wantErr: adapter.ErrUpstream,
		},
		{
			name: "empty wireguard body",
			req:  models.ConfigRequest{LicenseKey: "K", Protocol: models.WireGuard, Platform: models.Desktop},
			setup: func(users *mock.MockUserRepository, reseller *mock.MockResellerClient) {
				users.EXPECT().GetUserByLicense(gomock.Any(), "K").Return(provisionedUser(), nil)
				reseller.EXPECT().ListServers(gomock.Any()).Return(testServers, nil)
				reseller.EXPECT().GetWireGuardConfig(gomock.Any(), "42", "1").Return(models.ConfigArtifact{Protocol: models.WireGuard}, nil)
			},
			wantErr: adapter.ErrUpstream,
		},
		{
			name: "empty wireguard body for ios",
			req:  models.ConfigRequest{LicenseKey: "K", Protocol: models.WireGuard, Platform: models.IOS},
			setup: func(users *mock.MockUserRepository, reseller *mock.MockResellerClient) {
				users.EXPECT().GetUserByLicense(gomock.Any(), "K").Return(provisionedUser(), nil)
				reseller.EXPECT().ListServers(gomock.Any()).Return(testServers, nil)
				reseller.EXPECT().GetWireGuardConfig(gomock.Any(), "42", "1").Return(models.ConfigArtifact{}, nil)
			},
			wantErr: adapter.ErrUpstream,
		},
		{
			name: "empty openvpn body",
			req:  models.ConfigRequest{LicenseKey: "K", Protocol: models.OpenVPN, Platform: models.Desktop},
			setup: func(users *mock.MockUserRepository, reseller *mock.MockResellerClient) {
				users.EXPECT().GetUserByLicense(gomock.Any(), "K").Return(provisionedUser(), nil)
				reseller.EXPECT().ListServers(gomock.Any()).Return(testServers, nil)
				reseller.EXPECT().GetOpenVPNConfig(gomock.Any(), "1").Return(models.ConfigArtifact{}, nil)
			},
			wantErr: adapter.ErrUpstream,
		},
		{
			name: "unknown license wins over invalid protocol",
			req:  models.ConfigRequest{LicenseKey: "nope", Protocol: "bogus", Platform: models.Desktop},
			setup: func(users *mock.MockUserRepository, _ *mock.MockResellerClient) {
				users.EXPECT().GetUserByLicense(gomock.Any(), "nope").Return(models.User{}, store.ErrUserNotFound)
			},
			wantErr: ErrInvalidLicense,
		},
		{
			name: "not provisioned wins over invalid platform",
			req:  models.ConfigRequest{LicenseKey: "K", Protocol: models.WireGuard, Platform: "router"},
			setup: func(users *mock.MockUserRepository, _ *mock.MockResellerClient) {
				users.EXPECT().GetUserByLicense(gomock.Any(), "K").Return(unprovisioned, nil)
			},
			wantErr: ErrNotProvisioned,
		},
		{
			name: "empty server list wins over invalid protocol",
			req:  models.ConfigRequest{LicenseKey: "K", Protocol: "bogus", Platform: models.Desktop},
			setup: func(users *mock.MockUserRepository, reseller *mock.MockResellerClient) {
				users.EXPECT().GetUserByLicense(gomock.Any(), "K").Return(provisionedUser(), nil)
				reseller.EXPECT().ListServers(gomock.Any()).Return(nil, nil)
			},
			wantErr: ErrNoServersAvailable,
		},
		{
			name: "invalid platform",
			req:  models.ConfigRequest{LicenseKey: "K", Protocol: models.WireGuard, Platform: "router"},
			setup: func(users *mock.MockUserRepository, reseller *mock.MockResellerClient) {
				users.EXPECT().GetUserByLicense(gomock.Any(), "K").Return(provisionedUser(), nil)
				reseller.EXPECT().ListServers(gomock.Any()).Return(testServers, nil)
			},
			wantErr: validators.ErrInvalidPlatform,
		},
		{
			name: "invalid protocol",
			req:  models.ConfigRequest{LicenseKey: "K", Protocol: "ipsec", Platform: models.Desktop},
			setup: func(users *mock.MockUserRepository, reseller *mock.MockResellerClient) {
				users.EXPECT().GetUserByLicense(gomock.Any(), "K").Return(provisionedUser(), nil)
				reseller.EXPECT().ListServers(gomock.Any()).Return(testServers, nil)
			},
			wantErr: ErrInvalidProtocol,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, users, reseller := newConfigFixture(t)
			tt.setup(users, reseller)

			got, err := svc.GenerateForLicense(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, models.ConfigArtifact{}, got)
		})
	}

	t.Run("upstream status is kept", func(t *testing.T) {
		svc, users, reseller := newConfigFixture(t)
		users.EXPECT().GetUserByLicense(gomock.Any(), "K").Return(provisionedUser(), nil)
		reseller.EXPECT().ListServers(gomock.Any()).Return(nil, upstreamErr)

		_, err := svc.GenerateForLicense(context.Background(), models.ConfigRequest{LicenseKey: "K", Protocol: models.WireGuard})

		var uErr *adapter.UpstreamError
		require.True(t, errors.As(err, &uErr))
		assert.Equal(t, 502, uErr.StatusCode)
	})
}

func TestConfigService_GenerateForAccount(t *testing.T) {
	tests := []struct {
		name            string
		platform        models.Platform
		setup           func(reseller *mock.MockResellerClient)
		wantFileName    string
		wantContentType string
		wantProtocol    models.Protocol
		check           func(t *testing.T, body string)
	}{
		{
			name:     "desktop wireguard",
			platform: models.Desktop,
			setup: func(reseller *mock.MockResellerClient) {
				reseller.EXPECT().GetWireGuardConfig(gomock.Any(), "42", "7").Return(models.ConfigArtifact{FileBody: "wg"}, nil)
			},
			wantFileName:    "s24-vpn-7.conf",
			wantContentType: "text/plain",
			wantProtocol:    models.WireGuard,
			check:           func(t *testing.T, body string) { assert.Equal(t, "wg", body) },
		},
		{
			name:     "wireguard platform",
			platform: models.PlatformWireGuard,
			setup: func(reseller *mock.MockResellerClient) {
				reseller.EXPECT().GetWireGuardConfig(gomock.Any(), "42", "7").Return(models.ConfigArtifact{FileBody: "wg"}, nil)
			},
			wantFileName:    "s24-vpn-7.conf",
			wantContentType: "text/plain",
			wantProtocol:    models.WireGuard,
			check:           func(t *testing.T, body string) { assert.Equal(t, "wg", body) },
		},
		{
			name:     "ios profile",
			platform: models.IOS,
			setup: func(reseller *mock.MockResellerClient) {
				reseller.EXPECT().GetWireGuardConfig(gomock.Any(), "42", "7").Return(models.ConfigArtifact{FileBody: "wg"}, nil)
			},
			wantFileName:    "s24-vpn.mobileconfig",
			wantContentType: "application/x-apple-aspen-config",
			wantProtocol:    models.WireGuard,
			check: func(t *testing.T, body string) {
				assert.Contains(t, body, "<string>S24 VPN</string>")
				assert.Contains(t, body, "com.wireguard.ios.config")
			},
		},
		{
			name:     "openvpn is not injected",
			platform: models.PlatformOpenVPN,
			setup: func(reseller *mock.MockResellerClient) {
				reseller.EXPECT().GetOpenVPNConfig(gomock.Any(), "7").Return(models.ConfigArtifact{FileBody: "client"}, nil)
			},
			wantFileName:    "s24-vpn-7.ovpn",
			wantContentType: "text/plain",
			wantProtocol:    models.OpenVPN,
			check:           func(t *testing.T, body string) { assert.Equal(t, "client", body) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, reseller := newConfigFixture(t)
			tt.setup(reseller)

			got, err := svc.GenerateForAccount(context.Background(), models.AccountConfigRequest{
				AccountID: "42",
				ServerID:  "7",
				Platform:  tt.platform,
			})
			require.NoError(t, err)

			assert.Equal(t, tt.wantFileName, got.FileName)
			assert.Equal(t, tt.wantContentType, got.ContentType)
			assert.Equal(t, tt.wantProtocol, got.Protocol)
			tt.check(t, got.FileBody)
		})
	}

	t.Run("unknown platform", func(t *testing.T) {
		svc, _, _ := newConfigFixture(t)

		_, err := svc.GenerateForAccount(context.Background(), models.AccountConfigRequest{AccountID: "42", ServerID: "7", Platform: models.Android})
		assert.ErrorIs(t, err, ErrInvalidProtocol)
	})

	t.Run("empty upstream body", func(t *testing.T) {
		for _, platform := range []models.Platform{models.Desktop, models.IOS, models.PlatformOpenVPN} {
			svc, _, reseller := newConfigFixture(t)
			reseller.EXPECT().GetWireGuardConfig(gomock.Any(), "42", "7").Return(models.ConfigArtifact{}, nil).AnyTimes()
			reseller.EXPECT().GetOpenVPNConfig(gomock.Any(), "7").Return(models.ConfigArtifact{}, nil).AnyTimes()

			got, err := svc.GenerateForAccount(context.Background(), models.AccountConfigRequest{AccountID: "42", ServerID: "7", Platform: platform})
			assert.ErrorIs(t, err, adapter.ErrUpstream, platform)
			assert.Equal(t, models.ConfigArtifact{}, got)
		}
	})
}

func TestConfigValidationService(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockConfigService(ctrl)
	svc := NewConfigValidationService().Wrap(inner)
	ctx := context.Background()

	t.Run("defaults are applied", func(t *testing.T) {
		inner.EXPECT().
			GenerateForLicense(ctx, models.ConfigRequest{LicenseKey: "K", Protocol: models.WireGuard, Platform: models.Desktop}).
			Return(models.ConfigArtifact{FileBody: "ok"}, nil)

		got, err := svc.GenerateForLicense(ctx, models.ConfigRequest{LicenseKey: "K"})
		require.NoError(t, err)
		assert.Equal(t, "ok", got.FileBody)
	})

	t.Run("invalid requests never reach the pipeline", func(t *testing.T) {
		_, err := svc.GenerateForLicense(ctx, models.ConfigRequest{})
		assert.ErrorIs(t, err, validators.ErrLicenseRequired)

		_, err = svc.GenerateForAccount(ctx, models.AccountConfigRequest{ServerID: "7"})
		assert.ErrorIs(t, err, validators.ErrAccountAndServerRequired)
	})

	t.Run("protocol and platform are left to the pipeline", func(t *testing.T) {
		req := models.ConfigRequest{LicenseKey: "nope", Protocol: "pptp", Platform: "router"}
		inner.EXPECT().GenerateForLicense(ctx, req).Return(models.ConfigArtifact{}, ErrInvalidLicense)

		_, err := svc.GenerateForLicense(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidLicense)
	})

	t.Run("account defaults", func(t *testing.T) {
		inner.EXPECT().
			GenerateForAccount(ctx, models.AccountConfigRequest{AccountID: "1", ServerID: "7", Platform: models.Desktop}).
			Return(models.ConfigArtifact{}, nil)

		_, err := svc.GenerateForAccount(ctx, models.AccountConfigRequest{AccountID: "1", ServerID: "7"})
		require.NoError(t, err)
	})

	t.Run("servers pass through", func(t *testing.T) {
		inner.EXPECT().ListServers(ctx).Return(testServers, nil)

		got, err := svc.ListServers(ctx)
		require.NoError(t, err)
		assert.Len(t, got, 3)
	})
}
