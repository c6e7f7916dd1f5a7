// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Protocol is the VPN tunnel protocol of an artifact.
type Protocol string

const (
	WireGuard Protocol = "wireguard"
	OpenVPN   Protocol = "openvpn"
)

// DefaultProtocol is used when a request does not name a protocol.
const DefaultProtocol = WireGuard

// Extension returns the file extension of a raw config for the protocol.
func (p Protocol) Extension() string {
	switch p {
	case OpenVPN:
		return "ovpn"
	default:
		return "conf"
	}
}

// Platform is the target device family of an artifact.
type Platform string

const (
	Desktop Platform = "desktop"
	IOS     Platform = "ios"
	Android Platform = "android"
	Generic Platform = "generic"
	Linux   Platform = "linux"
	MacOS   Platform = "macos"
	Windows Platform = "windows"

	// PlatformWireGuard and PlatformOpenVPN are only meaningful for the
	// reseller naming scheme, where the platform parameter selects the
	// protocol.
	PlatformWireGuard Platform = "wireguard"
	PlatformOpenVPN   Platform = "openvpn"
)

// DefaultPlatform is used when a request does not name a platform.
const DefaultPlatform = Desktop

var knownPlatforms = map[Platform]struct{}{
	Desktop: {},
	IOS:     {},
	Android: {},
	Generic: {},
	Linux:   {},
	MacOS:   {},
	Windows: {},
}

// IsKnown reports whether p is a device platform accepted by /vpn/config.
func (p Platform) IsKnown() bool {
	_, ok := knownPlatforms[p]
	return ok
}

// AccountProtocol maps a platform of the reseller naming scheme to the
// protocol it selects: wireguard, desktop and ios pick WireGuard, openvpn
// picks OpenVPN. ok is false for anything else.
func (p Platform) AccountProtocol() (protocol Protocol, ok bool) {
	switch p {
	case PlatformWireGuard, Desktop, IOS:
		return WireGuard, true
	case PlatformOpenVPN:
		return OpenVPN, true
	default:
		return "", false
	}
}

// ProvisioningStatus is the outcome of the best-effort upstream account
// creation attached to registration.
type ProvisioningStatus string

const (
	ProvisioningOK      ProvisioningStatus = "ok"
	ProvisioningFailed  ProvisioningStatus = "failed"
	ProvisioningSkipped ProvisioningStatus = "skipped"
)

// ProvisioningOutcome is the second phase of a [RegistrationResult].
type ProvisioningOutcome struct {
	Status ProvisioningStatus `json:"status"`

	// Reason is set when Status is failed. It is logged, never returned to
	// clients.
	Reason error `json:"-"`
}

// RegistrationResult is the explicit two-phase result of a registration:
// the persisted user plus the outcome of VPN provisioning. A failed
// provisioning never invalidates the user.
type RegistrationResult struct {
	User         User
	Provisioning ProvisioningOutcome
}
