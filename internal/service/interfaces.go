// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic of the portal: registration and
// sessions, VPN configuration synthesis, reseller passthrough and account
// administration. Handlers depend only on the interfaces declared here.
package service

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/vpn-portal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ConfigService turns an identity, a server and a platform/protocol choice
// into a downloadable configuration artifact. It never returns a partial
// artifact: any failure is an error.
type ConfigService interface {
	// GenerateForLicense resolves the user by license key and builds the
	// artifact for the selected server. An unknown or empty server id falls
	// back to the first upstream server.
	GenerateForLicense(ctx context.Context, req models.ConfigRequest) (models.ConfigArtifact, error)

	// GenerateForAccount builds an artifact straight from an upstream account
	// id, without a portal user.
	GenerateForAccount(ctx context.Context, req models.AccountConfigRequest) (models.ConfigArtifact, error)

	// ListServers returns the current upstream server list.
	ListServers(ctx context.Context) ([]models.VPNServer, error)
}

// AuthService manages portal users and their session tokens.
type AuthService interface {
	// Register creates a user and then provisions an upstream VPN account for
	// it. A provisioning failure is reported in the result, not as an error.
	Register(ctx context.Context, creds models.Credentials) (models.RegistrationResult, error)

	// SimpleRegister validates creds and mints a transient identity without
	// touching the store or the upstream API.
	SimpleRegister(ctx context.Context, creds models.Credentials) (models.PublicUser, error)

	Login(ctx context.Context, creds models.Credentials) (models.User, error)
	Session(ctx context.Context, userID string) (models.User, error)

	// Provision retries upstream account creation for a user. It is a no-op
	// with status ok when the user already has an account.
	Provision(ctx context.Context, userID string) (models.ProvisioningOutcome, error)

	IssueSessionToken(ctx context.Context, userID string) (models.SessionToken, error)
	ParseSessionToken(ctx context.Context, token string) (models.SessionToken, error)
}

// AccountService is the admin view of portal users.
type AccountService interface {
	ListUsers(ctx context.Context) ([]models.User, error)

	// SetAccountEnabled toggles the upstream account of a user and mirrors the
	// result into the user status.
	SetAccountEnabled(ctx context.Context, userID string, enabled bool) (models.User, error)
}

// ResellerService passes requests through to the reseller API.
type ResellerService interface {
	CreateAccount(ctx context.Context, req models.ResellerAccountRequest) (models.VPNAccount, error)
	CheckUsername(ctx context.Context, username string) (bool, error)
	ListServersRaw(ctx context.Context) (json.RawMessage, error)
}

// AppInfoService exposes build metadata of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
