// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/vpn-portal/internal/config"
	"github.com/MKhiriev/vpn-portal/internal/logger"
	"github.com/MKhiriev/vpn-portal/models"
)

func TestNewStorages_Memory(t *testing.T) {
	for _, driver := range []string{"", config.DriverMemory} {
		s, err := NewStorages(context.Background(), config.Storage{DB: config.DB{Driver: driver}}, logger.Nop())
		require.NoError(t, err)
		require.NotNil(t, s.UserRepository)
		assert.NoError(t, s.Close())
	}
}

func TestNewStorages_UnknownDriver(t *testing.T) {
	_, err := NewStorages(context.Background(), config.Storage{DB: config.DB{Driver: "mysql"}}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnknownDriver)
}

// TestNewStorages_SQLite runs the SQL repository against a real SQLite file,
// migrations included.
func TestNewStorages_SQLite(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "portal.db")

	s, err := NewStorages(ctx, config.Storage{DB: config.DB{Driver: config.DriverSQLite, DSN: dsn}}, logger.Nop())
	if err != nil && strings.Contains(err.Error(), "cgo") {
		t.Skip("go-sqlite3 needs cgo")
	}
	require.NoError(t, err)
	defer s.Close()

	repo := s.UserRepository

	u, err := repo.CreateUser(ctx, models.User{Email: "a@b.com", PasswordHash: "h", LicenseKey: "K-1"})
	require.NoError(t, err)

	_, err = repo.CreateUser(ctx, models.User{Email: "a@b.com", PasswordHash: "h", LicenseKey: "K-2"})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)

	require.NoError(t, repo.UpdateVPNCredentials(ctx, u.ID, models.VPNCredentials{VPNAccountID: "42", VPNUsername: "K-1", VPNPassword: "pw"}))

	got, err := repo.GetUserByLicense(ctx, "K-1")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, "42", got.VPNAccountID)
	assert.True(t, got.CreatedAt.Equal(u.CreatedAt))

	_, err = repo.GetUserByEmail(ctx, "nobody@b.com")
	assert.ErrorIs(t, err, ErrUserNotFound)

	users, err := repo.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}
