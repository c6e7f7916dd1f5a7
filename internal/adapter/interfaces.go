// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound HTTP clients of the portal.
//
// [ResellerClient] talks to the VPN reseller REST API. Every non-2xx answer
// becomes an [*UpstreamError] that wraps [ErrUpstream], so callers can use
// [errors.Is] without caring about status codes, and [errors.As] when they
// need them. Input the upstream would reject anyway is caught locally as a
// [*ValidationError] before any request is sent.
//
// [PortalClient] is the typed client of the portal's own HTTP API used by
// the terminal dashboard.
package adapter

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/vpn-portal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ResellerClient is the contract of the VPN reseller API. Implementations
// never retry; retry policy belongs to the caller.
type ResellerClient interface {
	// ListServers returns the upstream server list in upstream order. An
	// empty list is not an error.
	ListServers(ctx context.Context) ([]models.VPNServer, error)

	// ListServersRaw returns the upstream "data" array untouched, or an
	// empty JSON array when it is missing.
	ListServersRaw(ctx context.Context) (json.RawMessage, error)

	// CreateAccount creates an upstream VPN account. username must match
	// [a-zA-Z0-9_-]{3,50} and password must be 3 to 50 characters long,
	// otherwise a [*ValidationError] is returned without any request.
	CreateAccount(ctx context.Context, username, password string) (models.VPNAccount, error)

	// GetWireGuardConfig fetches the wg-quick config of an account on a
	// server. The returned body is never empty.
	GetWireGuardConfig(ctx context.Context, accountID, serverID string) (models.ConfigArtifact, error)

	// GetOpenVPNConfig fetches the server-level OpenVPN config. It carries no
	// account credentials. The returned body is never empty.
	GetOpenVPNConfig(ctx context.Context, serverID string) (models.ConfigArtifact, error)

	// CheckUsername reports whether username is still free upstream.
	CheckUsername(ctx context.Context, username string) (bool, error)

	// EnableAccount and DisableAccount toggle an upstream account. Both are
	// idempotent upstream.
	EnableAccount(ctx context.Context, accountID string) error
	DisableAccount(ctx context.Context, accountID string) error
}

// PortalClient is the contract of the portal HTTP API as seen by the
// terminal dashboard. The session cookie is kept between calls.
type PortalClient interface {
	Register(ctx context.Context, creds models.Credentials) (models.UserResponse, error)
	Login(ctx context.Context, creds models.Credentials) (models.UserResponse, error)
	Session(ctx context.Context) (models.PublicUser, error)
	Servers(ctx context.Context) ([]models.ServerSummary, error)
	DownloadConfig(ctx context.Context, req models.ConfigRequest) (models.ConfigArtifact, error)
	Provision(ctx context.Context) (models.ProvisioningOutcome, error)
	Logout(ctx context.Context) error
}
