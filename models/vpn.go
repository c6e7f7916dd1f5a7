// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// VPNServer is an immutable snapshot of an upstream VPN endpoint. It is
// fetched per request and never persisted.
type VPNServer struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Hostname    string `json:"hostname"`
	IP          string `json:"ip"`
	CountryCode string `json:"country_code"`
	City        string `json:"city"`
	Capacity    int    `json:"capacity"`
}

// VPNAccount is an upstream reseller account. Its ID is the durable join key
// stored on the [User].
type VPNAccount struct {
	ID                  string  `json:"id"`
	Username            string  `json:"username"`
	Status              string  `json:"status"`
	WireGuardIP         string  `json:"wg_ip"`
	WireGuardPrivateKey string  `json:"wg_private_key"`
	WireGuardPublicKey  string  `json:"wg_public_key"`
	ExpiredAt           *string `json:"expired_at"`
	CreatedAt           string  `json:"created"`
	UpdatedAt           string  `json:"updated"`
}

// ConfigArtifact is a downloadable configuration file together with its
// transport metadata. Computed per request, never persisted.
type ConfigArtifact struct {
	Protocol    Protocol
	Platform    Platform
	FileBody    string
	FileName    string
	ContentType string

	// ServerName is echoed back to clients in the X-VPN-Server header.
	ServerName string

	// DownloadURL is the upstream suggested download location, if any.
	DownloadURL string
}

// ConfigRequest selects an artifact by license key (the /vpn/config scheme).
type ConfigRequest struct {
	LicenseKey string
	ServerID   string
	Protocol   Protocol
	Platform   Platform
}

// WithDefaults fills an empty protocol with wireguard and an empty platform
// with desktop.
func (r ConfigRequest) WithDefaults() ConfigRequest {
	if r.Protocol == "" {
		r.Protocol = DefaultProtocol
	}
	if r.Platform == "" {
		r.Platform = DefaultPlatform
	}
	return r
}

// AccountConfigRequest selects an artifact by raw upstream ids
// (the /vpn/resellers-config scheme). Platform doubles as protocol selector.
type AccountConfigRequest struct {
	AccountID string
	ServerID  string
	Platform  Platform
}

// WithDefaults fills an empty platform with desktop.
func (r AccountConfigRequest) WithDefaults() AccountConfigRequest {
	if r.Platform == "" {
		r.Platform = DefaultPlatform
	}
	return r
}
