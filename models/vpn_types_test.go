// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlatform_AccountProtocol(t *testing.T) {
	tests := []struct {
		platform Platform
		want     Protocol
		wantOK   bool
	}{
		{PlatformWireGuard, WireGuard, true},
		{Desktop, WireGuard, true},
		{IOS, WireGuard, true},
		{PlatformOpenVPN, OpenVPN, true},
		{Android, "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.platform), func(t *testing.T) {
			got, ok := tt.platform.AccountProtocol()
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestPlatform_IsKnown(t *testing.T) {
	for _, p := range []Platform{Desktop, IOS, Android, Generic, Linux, MacOS, Windows} {
		assert.True(t, p.IsKnown(), p)
	}
	assert.False(t, PlatformWireGuard.IsKnown())
	assert.False(t, Platform("router").IsKnown())
}

func TestRequestDefaults(t *testing.T) {
	assert.Equal(t,
		ConfigRequest{LicenseKey: "K", Protocol: WireGuard, Platform: Desktop},
		ConfigRequest{LicenseKey: "K"}.WithDefaults())
	assert.Equal(t,
		ConfigRequest{Protocol: OpenVPN, Platform: IOS},
		ConfigRequest{Protocol: OpenVPN, Platform: IOS}.WithDefaults())
	assert.Equal(t,
		AccountConfigRequest{AccountID: "1", ServerID: "2", Platform: Desktop},
		AccountConfigRequest{AccountID: "1", ServerID: "2"}.WithDefaults())
}

func TestUser_Public(t *testing.T) {
	u := User{ID: "u", Email: "e", LicenseKey: "K", VPNPassword: "secret", Status: UserStatusActive}

	assert.Equal(t, PublicUser{ID: "u", Email: "e", LicenseKey: "K", Status: UserStatusActive}, u.Public())
	assert.False(t, u.IsProvisioned())
}
