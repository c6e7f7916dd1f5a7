// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/vpn-portal/internal/adapter"
	"github.com/MKhiriev/vpn-portal/internal/logger"
	"github.com/MKhiriev/vpn-portal/internal/store"
	"github.com/MKhiriev/vpn-portal/models"
)

type accountService struct {
	users    store.UserRepository
	reseller adapter.ResellerClient
	logger   *logger.Logger
}

func NewAccountService(users store.UserRepository, reseller adapter.ResellerClient, logger *logger.Logger) AccountService {
	return &accountService{
		users:    users,
		reseller: reseller,
		logger:   logger,
	}
}

func (s *accountService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.users.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}

	return users, nil
}

// SetAccountEnabled implements [AccountService]. The upstream call goes
// first; the local status only changes once it succeeded.
func (s *accountService) SetAccountEnabled(ctx context.Context, userID string, enabled bool) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("error loading user: %w", err)
	}
	if !user.IsProvisioned() {
		return models.User{}, ErrNotProvisioned
	}

	status := models.UserStatusActive
	toggle := s.reseller.EnableAccount
	if !enabled {
		status = models.UserStatusSuspended
		toggle = s.reseller.DisableAccount
	}

	if err = toggle(ctx, user.VPNAccountID); err != nil {
		log.Err(err).
			Str("user_id", user.ID).
			Str("vpn_account_id", user.VPNAccountID).
			Bool("enabled", enabled).
			Msg("upstream account toggle failed")
		return models.User{}, fmt.Errorf("error toggling upstream account: %w", err)
	}

	if err = s.users.UpdateStatus(ctx, user.ID, status); err != nil {
		return models.User{}, fmt.Errorf("error updating user status: %w", err)
	}
	user.Status = status

	log.Info().Str("user_id", user.ID).Str("status", string(status)).Msg("account status changed")

	return user, nil
}
