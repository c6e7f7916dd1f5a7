// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
	"time"
)

type secretGenerator struct {
	brand string
	now   func() time.Time
}

// NewSecretGenerator returns a [SecretGenerator] whose license keys start with
// the upper-cased brand.
func NewSecretGenerator(brand string) SecretGenerator {
	return &secretGenerator{brand: brand, now: time.Now}
}

// LicenseKey implements [SecretGenerator].
func (g *secretGenerator) LicenseKey() (string, error) {
	suffix := make([]byte, 4)
	if _, err := io.ReadFull(rand.Reader, suffix); err != nil {
		return "", fmt.Errorf("error generating license key: %w", err)
	}

	key := fmt.Sprintf("%s-%d-%s", g.brand, g.now().UnixMilli(), hex.EncodeToString(suffix))
	return strings.ToUpper(key), nil
}

// VPNPassword implements [SecretGenerator]. It base64-encodes 16 random bytes
// and keeps only letters and digits, which leaves roughly 20 characters.
func (g *secretGenerator) VPNPassword() (string, error) {
	raw := make([]byte, 16)
	if _, err := io.ReadFull(rand.Reader, raw); err != nil {
		return "", fmt.Errorf("error generating vpn password: %w", err)
	}

	encoded := base64.StdEncoding.EncodeToString(raw)
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return -1
		}
	}, encoded), nil
}
