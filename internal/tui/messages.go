// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/vpn-portal/models"
)

// Page names known to [RootModel].
const (
	pageMenu      = "menu"
	pageLogin     = "login"
	pageRegister  = "register"
	pageDashboard = "dashboard"
)

// NavigateTo switches the active page. A non-nil Payload is delivered to the
// new page as the next message instead of calling its Init.
type NavigateTo struct {
	Page    string
	Payload any
}

// SessionStarted is produced once login, registration or session restore
// succeeded. Provisioning is set only for registrations.
type SessionStarted struct {
	User         models.PublicUser
	Provisioning *models.ProvisioningOutcome
}

// authResult is the outcome of a login or register command.
type authResult struct {
	resp models.UserResponse
	err  error
}

type serversLoadedMsg struct {
	servers []models.ServerSummary
	err     error
}

type configSavedMsg struct {
	path string
	err  error
}

type provisionedMsg struct {
	outcome models.ProvisioningOutcome
	err     error
}

type loggedOutMsg struct {
	err error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
