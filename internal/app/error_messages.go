// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// portal's HTTP handlers and middleware.
//
// All Msg* constants are human-readable message strings written into the
// "error" or "message" field of HTTP responses. Server errors use them as the
// error text while the cause goes into "details".
package app

// Auth routes.
const (
	// MsgRegistrationFailed is the error of a failed POST /auth/register or
	// POST /auth/simple-register.
	MsgRegistrationFailed = "Registration failed"

	// MsgLoginFailed is the error of a failed POST /auth/login.
	MsgLoginFailed = "Login failed"

	// MsgNotAuthenticated is returned when a session-only route is called
	// without a valid session cookie.
	MsgNotAuthenticated = "Not authenticated"

	// MsgLoggedOut acknowledges POST /auth/logout.
	MsgLoggedOut = "Logged out successfully"

	// MsgProvisioningFailed is the error of a failed POST /vpn/provision.
	MsgProvisioningFailed = "VPN provisioning failed"
)

// VPN routes.
const (
	// MsgConfigFailed is the error of GET /vpn/config.
	MsgConfigFailed = "Failed to generate configuration"

	// MsgResellerConfigFailed is the error of GET /vpn/resellers-config.
	MsgResellerConfigFailed = "Failed to get configuration"

	// MsgFetchServersFailed is the error of both server list routes.
	MsgFetchServersFailed = "Failed to fetch servers"

	MsgCreateAccountFailed      = "Failed to create account"
	MsgCheckUsernameFailed      = "Failed to check username"
	MsgUsernamePasswordRequired = "Username and password required"

	// MsgServerError is used when a reseller request cannot even be read.
	MsgServerError = "Server error"
)

// Admin routes.
const (
	MsgAdminDisabled       = "Admin API is disabled"
	MsgInvalidAdminToken   = "Invalid admin token"
	MsgListUsersFailed     = "Failed to list users"
	MsgAccountStatusFailed = "Failed to change account status"
)
