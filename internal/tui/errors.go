// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/vpn-portal/internal/adapter"
)

// ErrUserQuit is returned by [TUI.Run] when the user closed the program.
var ErrUserQuit = errors.New("user quit the program")

var portalErrors = []error{
	adapter.ErrBadRequest,
	adapter.ErrUnauthorized,
	adapter.ErrNotFound,
	adapter.ErrConflict,
	adapter.ErrServiceUnavailable,
	adapter.ErrInternalServer,
}

// humanizeError turns transport failures into a short message and keeps the
// portal's own error text otherwise.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Network is down or the portal is unreachable"
	}

	// portal errors read "<status sentinel>: <message>"; show the message
	for _, sentinel := range portalErrors {
		if errors.Is(err, sentinel) {
			if _, message, ok := strings.Cut(err.Error(), ": "); ok && message != "" {
				return message
			}
		}
	}

	return err.Error()
}
