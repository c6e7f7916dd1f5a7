// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/vpn-portal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists portal users. Every implementation reports lookup
// misses as [ErrUserNotFound] and duplicate emails as [ErrEmailAlreadyExists],
// so callers never branch on the backing store.
type UserRepository interface {
	// CreateUser stores a new user. An empty ID is replaced with a fresh
	// UUID v7, a zero CreatedAt with the current time and an empty Status
	// with active. The stored user is returned.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	GetUserByID(ctx context.Context, id string) (models.User, error)
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
	GetUserByLicense(ctx context.Context, licenseKey string) (models.User, error)

	// UpdateVPNCredentials writes the upstream account fields of a user.
	UpdateVPNCredentials(ctx context.Context, userID string, creds models.VPNCredentials) error

	UpdateStatus(ctx context.Context, userID string, status models.UserStatus) error

	// ListUsers returns every user ordered by creation time.
	ListUsers(ctx context.Context) ([]models.User, error)
}
