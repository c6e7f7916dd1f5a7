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

const minPasswordLength = 8

// RegisterModel is the Bubble Tea model for the registration screen: email,
// password and password confirmation. A successful registration opens the
// dashboard right away, the portal having already started a session.
type RegisterModel struct {
	ctx    context.Context
	portal adapter.PortalClient

	form       form
	submitting bool
	errMsg     string
}

// NewRegisterModel creates a [RegisterModel]; the email field receives focus.
func NewRegisterModel(ctx context.Context, portal adapter.PortalClient) *RegisterModel {
	return &RegisterModel{
		ctx:    ctx,
		portal: portal,
		form: newForm(
			newEmailInput(),
			newPasswordInput("password"),
			newPasswordInput("repeat password"),
		),
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the active input.
func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Passwords are checked locally for length and
// confirmation before the request is sent.
func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			repeat := m.form.value(2)

			switch {
			case email == "" || pass == "":
				m.errMsg = "Email and password are required"
				return m, nil
			case len(pass) < minPasswordLength:
				m.errMsg = "Password must be at least 8 characters"
				return m, nil
			case pass != repeat:
				m.errMsg = "Passwords do not match"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(models.Credentials{Email: email, Password: pass})
		}
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *RegisterModel) View() string {
	var b strings.Builder
	b.WriteString("Field            │ Value\n")
	b.WriteString("─────────────────┼────────────────────────────────────\n")
	b.WriteString("Email            │ [")
	b.WriteString(m.form.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Password         │ [")
	b.WriteString(m.form.inputs[1].View())
	b.WriteString("]\n")
	b.WriteString("Repeat password  │ [")
	b.WriteString(m.form.inputs[2].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Create account...]\n")
	} else {
		b.WriteString("\n[Create account]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("CREATE ACCOUNT", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *RegisterModel) cmdRegister(creds models.Credentials) tea.Cmd {
	ctx := m.ctx
	portal := m.portal

	return func() tea.Msg {
		resp, err := portal.Register(ctx, creds)
		return authResult{resp: resp, err: err}
	}
}
