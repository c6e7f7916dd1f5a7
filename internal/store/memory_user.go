// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/vpn-portal/internal/utils"
	"github.com/MKhiriev/vpn-portal/models"
)

// memoryUserRepository keeps users in process memory. It is the default
// store; its contents are lost on restart.
type memoryUserRepository struct {
	mu        sync.RWMutex
	byID      map[string]models.User
	byEmail   map[string]string
	byLicense map[string]string

	ids utils.IDGenerator
	now func() time.Time
}

// NewMemoryUserRepository returns an empty in-memory [UserRepository].
func NewMemoryUserRepository(ids utils.IDGenerator) UserRepository {
	return &memoryUserRepository{
		byID:      make(map[string]models.User),
		byEmail:   make(map[string]string),
		byLicense: make(map[string]string),
		ids:       ids,
		now:       time.Now,
	}
}

// emailKey is the lookup form of an email.
func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r *memoryUserRepository) CreateUser(_ context.Context, user models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[emailKey(user.Email)]; ok {
		return models.User{}, ErrEmailAlreadyExists
	}
	if _, ok := r.byLicense[user.LicenseKey]; ok {
		return models.User{}, ErrLicenseAlreadyExists
	}

	user = prepareNewUser(user, r.ids, r.now)

	r.byID[user.ID] = user
	r.byEmail[emailKey(user.Email)] = user.ID
	r.byLicense[user.LicenseKey] = user.ID

	return user, nil
}

func (r *memoryUserRepository) GetUserByID(_ context.Context, id string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return user, nil
}

func (r *memoryUserRepository) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	r.mu.RLock()
	id, ok := r.byEmail[emailKey(email)]
	r.mu.RUnlock()

	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return r.GetUserByID(ctx, id)
}

func (r *memoryUserRepository) GetUserByLicense(ctx context.Context, licenseKey string) (models.User, error) {
	r.mu.RLock()
	id, ok := r.byLicense[licenseKey]
	r.mu.RUnlock()

	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return r.GetUserByID(ctx, id)
}

func (r *memoryUserRepository) UpdateVPNCredentials(_ context.Context, userID string, creds models.VPNCredentials) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byID[userID]
	if !ok {
		return ErrUserNotFound
	}

	user.VPNAccountID = creds.VPNAccountID
	user.VPNUsername = creds.VPNUsername
	user.VPNPassword = creds.VPNPassword
	user.WGPrivateKey = creds.WGPrivateKey
	user.WGPublicKey = creds.WGPublicKey
	user.WGIPAddress = creds.WGIPAddress
	r.byID[userID] = user

	return nil
}

func (r *memoryUserRepository) UpdateStatus(_ context.Context, userID string, status models.UserStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byID[userID]
	if !ok {
		return ErrUserNotFound
	}

	user.Status = status
	r.byID[userID] = user

	return nil
}

func (r *memoryUserRepository) ListUsers(_ context.Context) ([]models.User, error) {
	r.mu.RLock()
	users := make([]models.User, 0, len(r.byID))
	for _, u := range r.byID {
		users = append(users, u)
	}
	r.mu.RUnlock()

	slices.SortFunc(users, func(a, b models.User) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})

	return users, nil
}
