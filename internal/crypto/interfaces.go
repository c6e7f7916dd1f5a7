// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// PasswordHasher turns portal passwords into self-describing argon2id hashes
// and checks candidates against them.
type PasswordHasher interface {
	// Hash derives a hash of password with a fresh random salt. The result
	// carries its own parameters, so it stays verifiable after the defaults
	// change.
	Hash(password string) (string, error)

	// Verify reports whether password matches encoded. A malformed encoding
	// is an error, a mismatch is not.
	Verify(password, encoded string) (bool, error)
}

// SecretGenerator produces the random identifiers handed to new users.
type SecretGenerator interface {
	// LicenseKey returns an upper-case key of the form
	// {BRAND}-{unixMillis}-{8 hex}.
	LicenseKey() (string, error)

	// VPNPassword returns a random alphanumeric password for the upstream
	// VPN account.
	VPNPassword() (string, error)
}
