// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/vpn-portal/internal/adapter"
	"github.com/MKhiriev/vpn-portal/models"
)

// LoginModel is the Bubble Tea model for the login screen. It renders email
// and password inputs and dispatches an async login command on submission.
// On success the dashboard is opened with a [SessionStarted] payload.
type LoginModel struct {
	ctx    context.Context
	portal adapter.PortalClient

	form       form
	submitting bool
	errMsg     string
}

// NewLoginModel creates a [LoginModel]; the email field receives focus.
func NewLoginModel(ctx context.Context, portal adapter.PortalClient) *LoginModel {
	return &LoginModel{
		ctx:    ctx,
		portal: portal,
		form:   newForm(newEmailInput(), newPasswordInput("password")),
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the active input.
func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - authResult: clears submitting state; opens the dashboard or shows the error.
//   - esc: cancels and navigates back to the menu.
//   - tab: moves focus to the next input, shift+tab to the previous one.
//   - enter: checks both fields are filled and dispatches the login.
//
// All other key events are forwarded to the focused input widget.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(authResult); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = humanizeError(result.err)
			return m, nil
		}

		m.errMsg = ""
		m.form.reset()
		return m, navigateToDashboard(result.resp)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(keyMsg, keys.tab):
			m.form.next()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.form.prev()
			return m, nil
		case keyMsg.String() == "enter":
			if m.submitting {
				return m, nil
			}

			email := strings.TrimSpace(m.form.value(0))
			pass := m.form.value(1)
			if email == "" || pass == "" {
				m.errMsg = "Email and password are required"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdLogin(models.Credentials{Email: email, Password: pass})
		}
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString("Field     │ Value\n")
	b.WriteString("──────────┼────────────────────────────────────────────\n")
	b.WriteString("Email     │ [")
	b.WriteString(m.form.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Password  │ [")
	b.WriteString(m.form.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Log in...]\n")
	} else {
		b.WriteString("\n[Log in]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("LOG IN", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *LoginModel) cmdLogin(creds models.Credentials) tea.Cmd {
	ctx := m.ctx
	portal := m.portal

	return func() tea.Msg {
		resp, err := portal.Login(ctx, creds)
		return authResult{resp: resp, err: err}
	}
}

// navigateToDashboard opens the dashboard for an authenticated response.
func navigateToDashboard(resp models.UserResponse) tea.Cmd {
	started := SessionStarted{Provisioning: resp.Provisioning}
	if resp.User != nil {
		started.User = *resp.User
	}

	return func() tea.Msg {
		return NavigateTo{Page: pageDashboard, Payload: started}
	}
}
