// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/vpn-portal/internal/adapter"
	"github.com/MKhiriev/vpn-portal/internal/logger"
	"github.com/MKhiriev/vpn-portal/models"
)

type resellerService struct {
	reseller adapter.ResellerClient
	logger   *logger.Logger
}

func NewResellerService(reseller adapter.ResellerClient, logger *logger.Logger) ResellerService {
	return &resellerService{
		reseller: reseller,
		logger:   logger,
	}
}

// CreateAccount creates an upstream account. Validation and upstream errors
// are returned unwrapped so the handler can pass their message through.
func (s *resellerService) CreateAccount(ctx context.Context, req models.ResellerAccountRequest) (models.VPNAccount, error) {
	account, err := s.reseller.CreateAccount(ctx, req.Username, req.Password)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("username", req.Username).Msg("reseller account creation failed")
		return models.VPNAccount{}, err
	}

	return account, nil
}

func (s *resellerService) CheckUsername(ctx context.Context, username string) (bool, error) {
	if err := adapter.ValidateAccountCredentials(username, "placeholder"); err != nil {
		return false, err
	}

	available, err := s.reseller.CheckUsername(ctx, username)
	if err != nil {
		return false, fmt.Errorf("error checking username: %w", err)
	}

	return available, nil
}

func (s *resellerService) ListServersRaw(ctx context.Context) (json.RawMessage, error) {
	raw, err := s.reseller.ListServersRaw(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing servers: %w", err)
	}

	return raw, nil
}
