// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrTokenCreationFailed     = errors.New("session token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("session token is expired or invalid")

	// ErrNotProvisioned is returned for a user without an upstream VPN
	// account.
	ErrNotProvisioned = errors.New("VPN account not provisioned. Please contact support.")

	// ErrNoServersAvailable is returned when the upstream server list is
	// empty.
	ErrNoServersAvailable = errors.New("No VPN servers available")

	ErrInvalidProtocol = errors.New(`Invalid protocol. Use "wireguard" or "openvpn"`)

	// ErrInvalidLicense wraps the store miss of a license lookup.
	ErrInvalidLicense = errors.New("Invalid license key")

	ErrProvisioningFailed = errors.New("VPN provisioning failed")

	// ErrUpstreamAccountNotSaved is a provisioning failure after the upstream
	// account was created. The account has to be linked to the user by hand.
	ErrUpstreamAccountNotSaved = errors.New("upstream VPN account created but not saved")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
