// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/vpn-portal/models"
)

// Field names accepted by [RequestValidator.Validate].
const (
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldLicense   = "license"
	FieldProtocol  = "protocol"
	FieldPlatform  = "platform"
	FieldAccountID = "account_id"
	FieldServerID  = "server_id"
)

// MinPasswordLength is the shortest portal password accepted at
// registration.
const MinPasswordLength = 8

// RequestValidator validates [models.Credentials], [models.ConfigRequest]
// and [models.AccountConfigRequest]. Defaults are expected to be applied
// before validation.
type RequestValidator struct{}

func NewRequestValidator() *RequestValidator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(ctx context.Context, value any, fields ...string) error {
	switch value := value.(type) {
	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)

	case models.ConfigRequest:
		return v.validateConfigRequest(value, fields...)
	case *models.ConfigRequest:
		return v.validateConfigRequest(*value, fields...)

	case models.AccountConfigRequest:
		return v.validateAccountConfigRequest(value, fields...)
	case *models.AccountConfigRequest:
		return v.validateAccountConfigRequest(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateCredentials checks registration input. Login only needs the
// presence checks, so it passes FieldEmail alone.
func (v *RequestValidator) validateCredentials(creds models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	if strings.TrimSpace(creds.Email) == "" || creds.Password == "" {
		return ErrCredentialsRequired
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !strings.Contains(creds.Email, "@") {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if len(creds.Password) < MinPasswordLength {
				return ErrPasswordTooShort
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateConfigRequest(req models.ConfigRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLicense, FieldProtocol, FieldPlatform}
	}

	for _, f := range fields {
		switch f {
		case FieldLicense:
			if strings.TrimSpace(req.LicenseKey) == "" {
				return ErrLicenseRequired
			}
		case FieldProtocol:
			if req.Protocol != models.WireGuard && req.Protocol != models.OpenVPN {
				return ErrInvalidProtocol
			}
		case FieldPlatform:
			if !req.Platform.IsKnown() {
				return ErrInvalidPlatform
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateAccountConfigRequest(req models.AccountConfigRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAccountID, FieldServerID, FieldPlatform}
	}

	for _, f := range fields {
		switch f {
		case FieldAccountID, FieldServerID:
			if req.AccountID == "" || req.ServerID == "" {
				return ErrAccountAndServerRequired
			}
		case FieldPlatform:
			if _, ok := req.Platform.AccountProtocol(); !ok {
				return ErrInvalidAccountPlatform
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
