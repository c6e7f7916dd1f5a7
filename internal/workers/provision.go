// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/vpn-portal/internal/logger"
	"github.com/MKhiriev/vpn-portal/internal/service"
	"github.com/MKhiriev/vpn-portal/models"
)

// ProvisionSweep retries upstream account creation for active users that
// registered while the reseller API was failing. Each tick provisions every
// such user at most once.
type ProvisionSweep struct {
	accounts service.AccountService
	auth     service.AuthService
	interval time.Duration

	logger *logger.Logger
}

// NewProvisionSweep creates the sweep. A non-positive interval disables it.
func NewProvisionSweep(accounts service.AccountService, auth service.AuthService, interval time.Duration, logger *logger.Logger) *ProvisionSweep {
	return &ProvisionSweep{
		accounts: accounts,
		auth:     auth,
		interval: interval,
		logger:   logger,
	}
}

// Run sweeps once per interval until ctx is cancelled. It returns at once
// when the sweep is disabled.
func (p *ProvisionSweep) Run(ctx context.Context) {
	if p.interval <= 0 {
		return
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.logger.Info().Dur("interval", p.interval).Msg("provisioning sweep started")

	for {
		select {
		case <-ctx.Done():
			p.logger.Info().Msg("provisioning sweep stopped")
			return
		case <-ticker.C:
			provisioned, failed := p.Sweep(ctx)
			if provisioned+failed > 0 {
				p.logger.Info().
					Int("provisioned", provisioned).
					Int("failed", failed).
					Msg("provisioning sweep finished")
			}
		}
	}
}

// Sweep runs a single pass and reports how many users were provisioned and
// how many attempts failed.
func (p *ProvisionSweep) Sweep(ctx context.Context) (provisioned, failed int) {
	users, err := p.accounts.ListUsers(ctx)
	if err != nil {
		p.logger.Err(err).Msg("provisioning sweep could not list users")
		return 0, 0
	}

	for _, user := range users {
		if ctx.Err() != nil {
			return provisioned, failed
		}
		if user.IsProvisioned() || user.Status != models.UserStatusActive {
			continue
		}

		if _, err = p.auth.Provision(ctx, user.ID); err != nil {
			p.logger.Warn().Err(err).Str("user_id", user.ID).Msg("provisioning retry failed")
			failed++
			continue
		}
		provisioned++
	}

	return provisioned, failed
}
