// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a HTTP server address in format [host]:[port]
//	-grpc-address gRPC health server address in format [host]:[port]
//	-driver identity store driver (memory, postgres, sqlite)
//	-d database DSN
//	-c/-config JSON or YAML file path with configs
//	-brand short brand used in file names
//	-brand-name brand display name
//	-token-sign-key session token signing key
//	-token-issuer session token issuer
//	-token-duration session lifetime (e.g., "168h")
//	-admin-token bearer token of the admin routes
//	-secure-cookies mark the session cookie Secure
//	-log-level zerolog level
//	-request-timeout inbound request timeout (e.g., "30s")
//	-upstream-url reseller API base URL
//	-upstream-token reseller API bearer token
//	-upstream-timeout reseller API timeout
//	-provision-interval provisioning sweep period, 0 disables it
//	-portal-url portal base URL used by the terminal client
//	-out directory for downloaded configuration files
func parseFlags(args []string) (*StructuredConfig, error) {
	var httpAddress, grpcAddress NetAddress
	var cfg StructuredConfig

	fs := flag.NewFlagSet("vpn-portal", flag.ContinueOnError)

	fs.Var(&httpAddress, "a", "Net address host:port")
	fs.Var(&grpcAddress, "grpc-address", "Net grpc health server address host:port")
	fs.StringVar(&cfg.Storage.DB.Driver, "driver", "", "Identity store driver: memory, postgres, sqlite")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.ConfigFilePath, "c", "", "JSON or YAML config file path")
	fs.StringVar(&cfg.ConfigFilePath, "config", "", "JSON or YAML config file path (alias)")
	fs.StringVar(&cfg.App.Brand, "brand", "", "Short brand used in file names")
	fs.StringVar(&cfg.App.BrandName, "brand-name", "", "Brand display name")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "Session duration (e.g., 168h)")
	fs.StringVar(&cfg.App.AdminToken, "admin-token", "", "Admin bearer token")
	fs.BoolVar(&cfg.App.SecureCookies, "secure-cookies", false, "Mark the session cookie Secure")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&cfg.Upstream.BaseURL, "upstream-url", "", "Reseller API base URL")
	fs.StringVar(&cfg.Upstream.Token, "upstream-token", "", "Reseller API token")
	fs.DurationVar(&cfg.Upstream.Timeout, "upstream-timeout", 0, "Reseller API timeout (e.g., 15s)")
	fs.DurationVar(&cfg.Workers.ProvisionInterval, "provision-interval", 0, "Provisioning sweep period, 0 disables it")
	fs.StringVar(&cfg.Client.PortalURL, "portal-url", "", "Portal base URL")
	fs.StringVar(&cfg.Client.OutputDir, "out", "", "Directory for downloaded configs")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Server.HTTPAddress = httpAddress.String()
	cfg.Server.GRPCAddress = grpcAddress.String()

	return &cfg, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host means all interfaces. Any other host must be "localhost" or
// a valid IP address.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}

// compile-time check
var _ flag.Value = (*NetAddress)(nil)

