// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"

	"github.com/MKhiriev/vpn-portal/internal/app"
)

// Sentinel errors of the session and admin middleware.
var (
	// ErrNoSession is returned when the session cookie is absent.
	ErrNoSession = errors.New(app.MsgNotAuthenticated)

	// ErrAdminDisabled is returned for /admin requests while no admin token
	// is configured.
	ErrAdminDisabled = errors.New(app.MsgAdminDisabled)

	// ErrInvalidAdminToken is returned when the bearer token does not match.
	ErrInvalidAdminToken = errors.New(app.MsgInvalidAdminToken)

	// ErrInvalidJSON is returned for a request body that cannot be decoded.
	ErrInvalidJSON = errors.New("Invalid JSON was passed")
)
