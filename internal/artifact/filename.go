// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package artifact

import (
	"strings"

	"github.com/MKhiriev/vpn-portal/models"
)

const (
	// AppleConfigContentType is the MIME type iOS opens as a configuration
	// profile.
	AppleConfigContentType = "application/x-apple-aspen-config"
	// PlainTextContentType is used for raw WireGuard and OpenVPN files.
	PlainTextContentType = "text/plain"

	mobileConfigExt = "mobileconfig"
	unknownSegment  = "unknown"
)

// IsProfile reports whether an artifact for platform and protocol is
// wrapped into an iOS configuration profile.
func IsProfile(platform models.Platform, protocol models.Protocol) bool {
	return platform == models.IOS && protocol == models.WireGuard
}

// FileName builds {brand}-vpn-{platform}-{city}-{protocol}.{ext}.
// ext is mobileconfig for iOS WireGuard profiles, conf for other WireGuard
// files and ovpn for OpenVPN.
func FileName(brand string, platform models.Platform, city string, protocol models.Protocol) string {
	ext := protocol.Extension()
	if IsProfile(platform, protocol) {
		ext = mobileConfigExt
	}

	return strings.Join([]string{
		Slug(brand),
		"vpn",
		Slug(string(platform)),
		Slug(city),
		Slug(string(protocol)),
	}, "-") + "." + ext
}

// AccountFileName names artifacts of the reseller scheme:
// {brand}-vpn-{serverId}.conf, {brand}-vpn-{serverId}.ovpn and
// {brand}-vpn.mobileconfig for iOS profiles.
func AccountFileName(brand, serverID string, platform models.Platform, protocol models.Protocol) string {
	if IsProfile(platform, protocol) {
		return Slug(brand) + "-vpn." + mobileConfigExt
	}

	return Slug(brand) + "-vpn-" + Slug(serverID) + "." + protocol.Extension()
}

// ContentType returns the MIME type of an artifact.
func ContentType(platform models.Platform, protocol models.Protocol) string {
	if IsProfile(platform, protocol) {
		return AppleConfigContentType
	}
	return PlainTextContentType
}

// Slug lower-cases s and replaces every rune outside [a-z0-9_-] with '-'.
// An empty input becomes "unknown" so file names never contain "--".
func Slug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return unknownSegment
	}

	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '-':
			return r
		default:
			return '-'
		}
	}, s)
}
