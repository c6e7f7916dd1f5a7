// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

// Error is a failed check on one request field. Message is client-facing.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

var (
	ErrCredentialsRequired = &Error{Field: FieldEmail, Message: "Email and password are required"}
	ErrInvalidEmail        = &Error{Field: FieldEmail, Message: "Invalid email address"}
	ErrPasswordTooShort    = &Error{Field: FieldPassword, Message: "Password must be at least 8 characters"}

	ErrLicenseRequired = &Error{Field: FieldLicense, Message: "License key is required"}
	ErrInvalidProtocol = &Error{Field: FieldProtocol, Message: `Invalid protocol. Use "wireguard" or "openvpn"`}
	ErrInvalidPlatform = &Error{Field: FieldPlatform, Message: "Invalid platform. Use desktop, ios, android, generic, linux, macos or windows"}

	ErrAccountAndServerRequired = &Error{Field: FieldAccountID, Message: "Account ID and Server ID required"}
	ErrInvalidAccountPlatform   = &Error{Field: FieldPlatform, Message: `Invalid platform. Use "wireguard", "desktop", "ios" or "openvpn"`}
)
