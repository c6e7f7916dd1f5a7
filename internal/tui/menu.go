// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type menuItem struct {
	title string
	page  string
}

// MenuModel is the start page for users without a session.
type MenuModel struct {
	items  []menuItem
	idx    int
	status string
}

func NewMenuModel() *MenuModel {
	return &MenuModel{
		items: []menuItem{
			{title: "Log in", page: pageLogin},
			{title: "Create account", page: pageRegister},
		},
	}
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loggedOutMsg:
		m.status = "Logged out"
		if msg.err != nil {
			m.status = "Logged out locally: " + humanizeError(msg.err)
		}
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.up):
			if m.idx > 0 {
				m.idx--
			}
		case key.Matches(msg, keys.down):
			if m.idx < len(m.items)-1 {
				m.idx++
			}
		case msg.String() == "enter":
			m.status = ""
			page := m.items[m.idx].page
			return m, func() tea.Msg { return NavigateTo{Page: page} }
		}
	}

	return m, nil
}

func (m *MenuModel) View() string {
	var b strings.Builder

	actionColWidth := lipgloss.Width("Action")
	for _, item := range m.items {
		if w := lipgloss.Width(item.title); w > actionColWidth {
			actionColWidth = w
		}
	}

	if m.status != "" {
		b.WriteString(okStyle.Render(m.status))
		b.WriteString("\n\n")
	}

	b.WriteString(fmt.Sprintf("%-4s │ %-*s\n", "#", actionColWidth, "Action"))
	b.WriteString(strings.Repeat("─", 4))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", actionColWidth))
	b.WriteString("\n")

	for i, item := range m.items {
		cursor := " "
		title := item.title
		if i == m.idx {
			cursor = ">"
			title = selectedStyle.Render(fmt.Sprintf("%-*s", actionColWidth, item.title))
		}
		b.WriteString(fmt.Sprintf("%-4s │ %s\n", fmt.Sprintf("%s %d", cursor, i+1), title))
	}

	return renderPage("VPN PORTAL", strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: navigate │ v: version")
}
