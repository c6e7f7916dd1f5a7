// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// validate checks that the merged [StructuredConfig] satisfies the start-up
// invariants of the server. A missing upstream token is deliberately not an
// error here; the server logs a warning instead.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.DB.Driver {
	case DriverMemory:
	case DriverPostgres, DriverSQLite:
		if cfg.Storage.DB.DSN == "" {
			return fmt.Errorf("%w: %s driver requires a DSN", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
		}
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}

	if err := validateURL(cfg.Upstream.BaseURL); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidUpstreamConfigs, err)
	}

	if cfg.Workers.ProvisionInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if err := validateURL(cfg.PortalURL); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidClientConfigs, err)
	}

	if cfg.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidClientConfigs)
	}

	return nil
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("url %q must include scheme and host", raw)
	}
	return nil
}

// Warnings lists settings that are legal but leave part of the server
// inoperative. Each message names the environment variable that fixes it.
func (cfg *StructuredConfig) Warnings() []string {
	var warnings []string
	if cfg.Upstream.Token == "" {
		warnings = append(warnings, "VPN_RESELLERS_API_TOKEN is not set; every reseller API call will be rejected")
	}
	return warnings
}
