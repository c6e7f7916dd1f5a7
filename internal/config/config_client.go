// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"time"
)

// ClientConfig is the configuration of the terminal portal client assembled
// from [StructuredConfig].
type ClientConfig struct {
	// PortalURL is the base URL of the portal HTTP API.
	PortalURL string
	// OutputDir is where downloaded configuration files are written.
	OutputDir string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// LogLevel is the zerolog level of the client log file.
	LogLevel string
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// Server-only requirements such as the token sign key are not enforced here.
func GetClientConfig() (*ClientConfig, error) {
	return loadClientConfig(os.Args[1:])
}

func loadClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags(args).
		withFile().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		PortalURL:      cfg.Client.PortalURL,
		OutputDir:      cfg.Client.OutputDir,
		RequestTimeout: cfg.Server.RequestTimeout,
		LogLevel:       cfg.App.LogLevel,
	}

	if err = clientCfg.validate(); err != nil {
		return nil, err
	}

	return clientCfg, nil
}
