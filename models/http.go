// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// Credentials is the body of POST /auth/register and POST /auth/login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ResellerAccountRequest is the body of POST /vpn/resellers-create-account.
type ResellerAccountRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ErrorResponse is the JSON envelope of every failed API call.
type ErrorResponse struct {
	Success *bool  `json:"success,omitempty"`
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// UserResponse is returned by the auth endpoints.
type UserResponse struct {
	Success      bool                 `json:"success,omitempty"`
	User         *PublicUser          `json:"user"`
	Provisioning *ProvisioningOutcome `json:"provisioning,omitempty"`
}

// MessageResponse is a generic success acknowledgement.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ServerSummary is the client-facing projection of [VPNServer] used by
// GET /vpn/servers.
type ServerSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	City     string `json:"city"`
	Country  string `json:"country"`
	Hostname string `json:"hostname"`
}

// ServersResponse is returned by GET /vpn/servers.
type ServersResponse struct {
	Success bool            `json:"success"`
	Servers []ServerSummary `json:"servers"`
}

// RawServersResponse is returned by GET /vpn/resellers-servers.
type RawServersResponse struct {
	Success bool            `json:"success"`
	Servers json.RawMessage `json:"servers"`
}

// ResellerAccountResponse is returned by POST /vpn/resellers-create-account.
type ResellerAccountResponse struct {
	Success bool       `json:"success"`
	Account VPNAccount `json:"account"`
}

// UsernameAvailabilityResponse is returned by
// GET /vpn/resellers-check-username.
type UsernameAvailabilityResponse struct {
	Success   bool `json:"success"`
	Available bool `json:"available"`
}

// ProvisionResponse is returned by POST /vpn/provision.
type ProvisionResponse struct {
	Success      bool                `json:"success"`
	Provisioning ProvisioningOutcome `json:"provisioning"`
}

// AdminUser is the admin projection of [User]; it reveals whether an
// upstream account is linked but never the credentials themselves.
type AdminUser struct {
	PublicUser
	Provisioned bool   `json:"provisioned"`
	CreatedAt   string `json:"createdAt"`
}

// AdminUsersResponse is returned by GET /admin/users.
type AdminUsersResponse struct {
	Success bool        `json:"success"`
	Users   []AdminUser `json:"users"`
}
