// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// UserStatus is the lifecycle state of a portal account.
type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
	UserStatusExpired   UserStatus = "expired"
)

// User represents a portal account. Sensitive fields must never be exposed
// outside trusted boundaries: the password hash and every VPN credential are
// excluded from JSON.
type User struct {
	// ID is the unique identifier of the user (UUID v7 string).
	ID string `json:"id"`

	// Email is the unique login of the user.
	Email string `json:"email"`

	// PasswordHash is the encoded argon2id hash of the user's password.
	// Never plaintext, never reversible.
	PasswordHash string `json:"-"`

	// LicenseKey is the durable per-user identifier used to authorize
	// configuration downloads independently of the session cookie.
	LicenseKey string `json:"licenseKey"`

	// VPNAccountID is the upstream reseller account id. Empty until
	// provisioning succeeded.
	VPNAccountID string `json:"-"`

	// VPNUsername and VPNPassword are the upstream OpenVPN credentials.
	VPNUsername string `json:"-"`
	VPNPassword string `json:"-"`

	// WireGuard material as returned by the upstream account creation.
	WGPrivateKey string `json:"-"`
	WGPublicKey  string `json:"-"`
	WGIPAddress  string `json:"-"`

	// Status is the account lifecycle state.
	Status UserStatus `json:"status"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"-"`
}

// IsProvisioned reports whether an upstream VPN account is linked to the user.
func (u User) IsProvisioned() bool {
	return u.VPNAccountID != ""
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// VPNCredentials is the set of fields written to a user once upstream
// provisioning succeeded.
type VPNCredentials struct {
	VPNAccountID string
	VPNUsername  string
	VPNPassword  string
	WGPrivateKey string
	WGPublicKey  string
	WGIPAddress  string
}

// PublicUser is the client-facing projection of [User]. VPN fields are never
// returned to clients.
type PublicUser struct {
	ID         string     `json:"id"`
	Email      string     `json:"email"`
	LicenseKey string     `json:"licenseKey,omitempty"`
	Status     UserStatus `json:"status,omitempty"`
}

// Public returns the client-facing projection of the user.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:         u.ID,
		Email:      u.Email,
		LicenseKey: u.LicenseKey,
		Status:     u.Status,
	}
}
