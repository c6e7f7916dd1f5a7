// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
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

const testLicense = "S24-1700000000000-ABCDEF01"

type authFixture struct {
	svc      *authService
	users    *mock.MockUserRepository
	reseller *mock.MockResellerClient
	hasher   *mock.MockPasswordHasher
	secrets  *mock.MockSecretGenerator
}

func newAuthFixture(t *testing.T) authFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := authFixture{
		users:    mock.NewMockUserRepository(ctrl),
		reseller: mock.NewMockResellerClient(ctrl),
		hasher:   mock.NewMockPasswordHasher(ctrl),
		secrets:  mock.NewMockSecretGenerator(ctrl),
	}

	cfg := config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "vpn-portal",
		TokenDuration: time.Hour,
	}
	f.svc = NewAuthService(f.users, f.reseller, f.hasher, f.secrets, cfg, logger.Nop()).(*authService)

	return f
}

// expectUserCreated sets up phase one of a registration of a@b.com.
func (f authFixture) expectUserCreated(ctx context.Context) {
	f.hasher.EXPECT().Hash("password123").Return("argon-hash", nil)
	f.secrets.EXPECT().LicenseKey().Return(testLicense, nil)
	f.users.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
		u.ID = "u-1"
		return u, nil
	})
}

func TestAuthService_Register(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	f.hasher.EXPECT().Hash("password123").Return("argon-hash", nil)
	f.secrets.EXPECT().LicenseKey().Return(testLicense, nil)
	f.users.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
		assert.Equal(t, "a@b.com", u.Email)
		assert.Equal(t, "argon-hash", u.PasswordHash)
		assert.Equal(t, testLicense, u.LicenseKey)
		assert.Equal(t, models.UserStatusActive, u.Status)
		assert.Empty(t, u.VPNAccountID)

		u.ID = "u-1"
		return u, nil
	})
	f.secrets.EXPECT().VPNPassword().Return("vpnpw", nil)
	f.reseller.EXPECT().CreateAccount(ctx, testLicense, "vpnpw").Return(models.VPNAccount{
		ID:                  "42",
		Username:            testLicense,
		WireGuardIP:         "10.0.0.2",
		WireGuardPrivateKey: "priv",
		WireGuardPublicKey:  "pub",
	}, nil)
	f.users.EXPECT().UpdateVPNCredentials(ctx, "u-1", models.VPNCredentials{
		VPNAccountID: "42",
		VPNUsername:  testLicense,
		VPNPassword:  "vpnpw",
		WGPrivateKey: "priv",
		WGPublicKey:  "pub",
		WGIPAddress:  "10.0.0.2",
	}).Return(nil)

	got, err := f.svc.Register(ctx, models.Credentials{Email: "  A@B.com ", Password: "password123"})
	require.NoError(t, err)

	assert.Equal(t, models.ProvisioningOK, got.Provisioning.Status)
	assert.Equal(t, "u-1", got.User.ID)
	assert.Equal(t, "42", got.User.VPNAccountID)
	assert.True(t, got.User.IsProvisioned())
}

func TestAuthService_RegisterSurvivesProvisioningFailure(t *testing.T) {
	upstreamErr := &adapter.UpstreamError{StatusCode: 500, Body: "boom"}

	tests := []struct {
		name  string
		setup func(f authFixture)
	}{
		{
			name: "upstream rejects the account",
			setup: func(f authFixture) {
				f.secrets.EXPECT().VPNPassword().Return("vpnpw", nil)
				f.reseller.EXPECT().CreateAccount(gomock.Any(), testLicense, "vpnpw").Return(models.VPNAccount{}, upstreamErr)
			},
		},
		{
			name: "password generation fails",
			setup: func(f authFixture) {
				f.secrets.EXPECT().VPNPassword().Return("", errors.New("entropy exhausted"))
			},
		},
		{
			name: "credentials cannot be stored",
			setup: func(f authFixture) {
				f.secrets.EXPECT().VPNPassword().Return("vpnpw", nil)
				f.reseller.EXPECT().CreateAccount(gomock.Any(), testLicense, "vpnpw").Return(models.VPNAccount{ID: "42"}, nil)
				f.users.EXPECT().UpdateVPNCredentials(gomock.Any(), "u-1", gomock.Any()).Return(store.ErrExecutingQuery)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFixture(t)
			ctx := context.Background()

			f.expectUserCreated(ctx)
			tt.setup(f)

			got, err := f.svc.Register(ctx, models.Credentials{Email: "a@b.com", Password: "password123"})
			require.NoError(t, err)

			assert.Equal(t, "u-1", got.User.ID)
			assert.False(t, got.User.IsProvisioned())
			assert.Equal(t, models.ProvisioningFailed, got.Provisioning.Status)
			assert.Error(t, got.Provisioning.Reason)
		})
	}
}

func TestAuthService_UnsavedUpstreamAccountIsLogged(t *testing.T) {
	f := newAuthFixture(t)

	var buf bytes.Buffer
	ctx := zerolog.New(&buf).WithContext(context.Background())

	f.expectUserCreated(ctx)
	f.secrets.EXPECT().VPNPassword().Return("vpnpw", nil)
	f.reseller.EXPECT().CreateAccount(gomock.Any(), testLicense, "vpnpw").
		Return(models.VPNAccount{ID: "42", Username: testLicense}, nil)
	f.users.EXPECT().UpdateVPNCredentials(gomock.Any(), "u-1", gomock.Any()).Return(store.ErrExecutingStatement)

	got, err := f.svc.Register(ctx, models.Credentials{Email: "a@b.com", Password: "password123"})
	require.NoError(t, err)

	assert.Equal(t, models.ProvisioningFailed, got.Provisioning.Status)
	assert.ErrorIs(t, got.Provisioning.Reason, ErrUpstreamAccountNotSaved)
	assert.ErrorIs(t, got.Provisioning.Reason, store.ErrExecutingStatement)

	logged := buf.String()
	assert.Contains(t, logged, `"vpn_account_id":"42"`)
	assert.Contains(t, logged, `"vpn_username":"`+testLicense+`"`)
	assert.Contains(t, logged, `"user_id":"u-1"`)
}

func TestAuthService_RegisterUsesLicenseAsUsernameFallback(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	f.expectUserCreated(ctx)
	f.secrets.EXPECT().VPNPassword().Return("vpnpw", nil)
	f.reseller.EXPECT().CreateAccount(ctx, testLicense, "vpnpw").Return(models.VPNAccount{ID: "42"}, nil)
	f.users.EXPECT().UpdateVPNCredentials(ctx, "u-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, creds models.VPNCredentials) error {
			assert.Equal(t, testLicense, creds.VPNUsername)
			return nil
		})

	got, err := f.svc.Register(ctx, models.Credentials{Email: "a@b.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, testLicense, got.User.VPNUsername)
}

func TestAuthService_RegisterRejected(t *testing.T) {
	tests := []struct {
		name    string
		creds   models.Credentials
		setup   func(f authFixture)
		wantErr error
	}{
		{
			name:    "missing email",
			creds:   models.Credentials{Password: "password123"},
			setup:   func(authFixture) {},
			wantErr: validators.ErrCredentialsRequired,
		},
		{
			name:    "short password",
			creds:   models.Credentials{Email: "a@b.com", Password: "short"},
			setup:   func(authFixture) {},
			wantErr: validators.ErrPasswordTooShort,
		},
		{
			name:    "no at sign",
			creds:   models.Credentials{Email: "ab.com", Password: "password123"},
			setup:   func(authFixture) {},
			wantErr: validators.ErrInvalidEmail,
		},
		{
			name:  "duplicate email",
			creds: models.Credentials{Email: "a@b.com", Password: "password123"},
			setup: func(f authFixture) {
				f.hasher.EXPECT().Hash("password123").Return("argon-hash", nil)
				f.secrets.EXPECT().LicenseKey().Return(testLicense, nil)
				f.users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)
			},
			wantErr: store.ErrEmailAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFixture(t)
			tt.setup(f)

			_, err := f.svc.Register(context.Background(), tt.creds)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuthService_SimpleRegister(t *testing.T) {
	f := newAuthFixture(t)
	f.svc.now = func() time.Time { return time.UnixMilli(1700000000123) }

	got, err := f.svc.SimpleRegister(context.Background(), models.Credentials{Email: "X@Y.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, models.PublicUser{ID: "user-1700000000123", Email: "x@y.com"}, got)

	_, err = f.svc.SimpleRegister(context.Background(), models.Credentials{Email: "x@y.com", Password: "short"})
	assert.ErrorIs(t, err, validators.ErrPasswordTooShort)
}

func TestAuthService_Login(t *testing.T) {
	stored := models.User{ID: "u-1", Email: "a@b.com", PasswordHash: "argon-hash"}

	tests := []struct {
		name    string
		setup   func(f authFixture)
		wantErr error
	}{
		{
			name: "ok",
			setup: func(f authFixture) {
				f.users.EXPECT().GetUserByEmail(gomock.Any(), "a@b.com").Return(stored, nil)
				f.hasher.EXPECT().Verify("password123", "argon-hash").Return(true, nil)
			},
		},
		{
			name: "unknown email",
			setup: func(f authFixture) {
				f.users.EXPECT().GetUserByEmail(gomock.Any(), "a@b.com").Return(models.User{}, store.ErrUserNotFound)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name: "wrong password",
			setup: func(f authFixture) {
				f.users.EXPECT().GetUserByEmail(gomock.Any(), "a@b.com").Return(stored, nil)
				f.hasher.EXPECT().Verify("password123", "argon-hash").Return(false, nil)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name: "store failure",
			setup: func(f authFixture) {
				f.users.EXPECT().GetUserByEmail(gomock.Any(), "a@b.com").Return(models.User{}, store.ErrScanningRow)
			},
			wantErr: store.ErrScanningRow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFixture(t)
			tt.setup(f)

			got, err := f.svc.Login(context.Background(), models.Credentials{Email: "A@b.com", Password: "password123"})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "u-1", got.ID)
		})
	}
}

func TestAuthService_LoginWithoutPassword(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.svc.Login(context.Background(), models.Credentials{Email: "a@b.com"})
	assert.ErrorIs(t, err, validators.ErrCredentialsRequired)
}

func TestAuthService_Provision(t *testing.T) {
	t.Run("already provisioned", func(t *testing.T) {
		f := newAuthFixture(t)
		f.users.EXPECT().GetUserByID(gomock.Any(), "u-1").Return(provisionedUser(), nil)

		got, err := f.svc.Provision(context.Background(), "u-1")
		require.NoError(t, err)
		assert.Equal(t, models.ProvisioningOK, got.Status)
	})

	t.Run("retry succeeds", func(t *testing.T) {
		f := newAuthFixture(t)
		f.users.EXPECT().GetUserByID(gomock.Any(), "u-1").Return(models.User{ID: "u-1", LicenseKey: testLicense}, nil)
		f.secrets.EXPECT().VPNPassword().Return("vpnpw", nil)
		f.reseller.EXPECT().CreateAccount(gomock.Any(), testLicense, "vpnpw").Return(models.VPNAccount{ID: "42"}, nil)
		f.users.EXPECT().UpdateVPNCredentials(gomock.Any(), "u-1", gomock.Any()).Return(nil)

		got, err := f.svc.Provision(context.Background(), "u-1")
		require.NoError(t, err)
		assert.Equal(t, models.ProvisioningOK, got.Status)
	})

	t.Run("retry fails", func(t *testing.T) {
		f := newAuthFixture(t)
		f.users.EXPECT().GetUserByID(gomock.Any(), "u-1").Return(models.User{ID: "u-1", LicenseKey: testLicense}, nil)
		f.secrets.EXPECT().VPNPassword().Return("vpnpw", nil)
		f.reseller.EXPECT().CreateAccount(gomock.Any(), testLicense, "vpnpw").
			Return(models.VPNAccount{}, &adapter.UpstreamError{StatusCode: 503, Body: "down"})

		got, err := f.svc.Provision(context.Background(), "u-1")
		assert.ErrorIs(t, err, ErrProvisioningFailed)
		assert.ErrorIs(t, err, adapter.ErrUpstream)
		assert.Equal(t, models.ProvisioningFailed, got.Status)
	})

	t.Run("unknown user", func(t *testing.T) {
		f := newAuthFixture(t)
		f.users.EXPECT().GetUserByID(gomock.Any(), "ghost").Return(models.User{}, store.ErrUserNotFound)

		_, err := f.svc.Provision(context.Background(), "ghost")
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})
}

func TestAuthService_SessionToken(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	token, err := f.svc.IssueSessionToken(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(token.SignedString, "."))

	parsed, err := f.svc.ParseSessionToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "u-1", parsed.UserID)

	_, err = f.svc.ParseSessionToken(ctx, token.SignedString+"x")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)

	_, err = f.svc.ParseSessionToken(ctx, "")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)

	_, err = f.svc.IssueSessionToken(ctx, "")
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestAuthService_Session(t *testing.T) {
	f := newAuthFixture(t)
	f.users.EXPECT().GetUserByID(gomock.Any(), "u-1").Return(provisionedUser(), nil)
	f.users.EXPECT().GetUserByID(gomock.Any(), "gone").Return(models.User{}, store.ErrUserNotFound)

	got, err := f.svc.Session(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", got.Email)

	_, err = f.svc.Session(context.Background(), "gone")
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}
