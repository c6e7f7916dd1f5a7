// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/vpn-portal/internal/adapter"
	"github.com/MKhiriev/vpn-portal/internal/logger"
	"github.com/MKhiriev/vpn-portal/models"
)

const statusTTL = 4 * time.Second

var (
	protocols = []models.Protocol{models.WireGuard, models.OpenVPN}
	platforms = []models.Platform{
		models.Desktop,
		models.IOS,
		models.Android,
		models.Linux,
		models.MacOS,
		models.Windows,
		models.Generic,
	}
)

// writeClipboard is swapped in tests; headless terminals have no clipboard.
var writeClipboard = clipboard.WriteAll

// DashboardModel shows the session user, the server list and the protocol
// and platform selection, and downloads configuration files into outputDir.
type DashboardModel struct {
	ctx       context.Context
	portal    adapter.PortalClient
	outputDir string
	logger    *logger.Logger

	user     models.PublicUser
	servers  []models.ServerSummary
	idx      int
	protocol int
	platform int

	loading bool
	busy    bool
	spinner spinner.Model

	status  string
	lastErr error
	overlay *errorOverlayModel
}

func NewDashboardModel(ctx context.Context, portal adapter.PortalClient, outputDir string, logger *logger.Logger) *DashboardModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &DashboardModel{
		ctx:       ctx,
		portal:    portal,
		outputDir: outputDir,
		logger:    logger,
		spinner:   s,
	}
}

// Init loads the server list.
func (m *DashboardModel) Init() tea.Cmd {
	m.loading = true
	return tea.Batch(m.spinner.Tick, m.cmdLoadServers())
}

func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SessionStarted:
		m.user = msg.User
		m.status = ""
		m.lastErr = nil
		if msg.Provisioning != nil && msg.Provisioning.Status == models.ProvisioningFailed {
			m.status = "VPN account is not ready yet, press r to retry provisioning"
		}
		return m, m.Init()

	case serversLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.lastErr = msg.err
			return m, nil
		}
		m.lastErr = nil
		m.servers = msg.servers
		if m.idx >= len(m.servers) {
			m.idx = 0
		}
		return m, nil

	case configSavedMsg:
		m.busy = false
		if msg.err != nil {
			m.overlay = &errorOverlayModel{message: humanizeError(msg.err)}
			return m, nil
		}
		return m, m.setStatus("Saved to " + msg.path)

	case provisionedMsg:
		m.busy = false
		if msg.err != nil {
			m.overlay = &errorOverlayModel{message: humanizeError(msg.err)}
			return m, nil
		}
		return m, m.setStatus("VPN account provisioned")

	case copiedMsg:
		if msg.err != nil {
			m.overlay = &errorOverlayModel{message: "Clipboard is not available: " + msg.err.Error()}
			return m, nil
		}
		return m, m.setStatus("License key copied to clipboard")

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		if !m.loading && !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m *DashboardModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.overlay != nil {
		if msg.String() == "enter" || key.Matches(msg, keys.esc) {
			m.overlay = nil
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.servers)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.protocol):
		m.protocol = (m.protocol + 1) % len(protocols)
	case key.Matches(msg, keys.platform):
		m.platform = (m.platform + 1) % len(platforms)
	case key.Matches(msg, keys.refresh):
		if m.loading {
			return m, nil
		}
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdLoadServers())
	case key.Matches(msg, keys.enter):
		if m.busy {
			return m, nil
		}
		m.busy = true
		return m, tea.Batch(m.spinner.Tick, m.cmdDownload(m.configRequest()))
	case key.Matches(msg, keys.provision):
		if m.busy {
			return m, nil
		}
		m.busy = true
		return m, tea.Batch(m.spinner.Tick, m.cmdProvision())
	case key.Matches(msg, keys.copy):
		return m, m.cmdCopyLicense()
	case key.Matches(msg, keys.logout):
		return m, m.cmdLogout()
	}

	return m, nil
}

// configRequest builds the download request for the current selection. An
// empty server list leaves the server to the portal's fallback.
func (m *DashboardModel) configRequest() models.ConfigRequest {
	req := models.ConfigRequest{
		LicenseKey: m.user.LicenseKey,
		Protocol:   protocols[m.protocol],
		Platform:   platforms[m.platform],
	}
	if m.idx < len(m.servers) {
		req.ServerID = m.servers[m.idx].ID
	}
	return req
}

func (m *DashboardModel) setStatus(status string) tea.Cmd {
	m.status = status
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m *DashboardModel) View() string {
	if m.overlay != nil {
		return m.overlay.View()
	}

	var b strings.Builder

	b.WriteString(fmt.Sprintf("Account   │ %s\n", valueOrDash(m.user.Email)))
	b.WriteString(fmt.Sprintf("License   │ %s\n", valueOrDash(m.user.LicenseKey)))
	b.WriteString(fmt.Sprintf("Status    │ %s\n", valueOrDash(string(m.user.Status))))
	b.WriteString(fmt.Sprintf("Protocol  │ %s\n", protocols[m.protocol]))
	b.WriteString(fmt.Sprintf("Platform  │ %s\n", platforms[m.platform]))
	b.WriteString("\n")

	header := "Servers"
	if m.loading || m.busy {
		header += "  " + m.spinner.View()
	}
	b.WriteString(header)
	b.WriteString("\n")

	switch {
	case m.loading && len(m.servers) == 0:
		b.WriteString("Loading...\n")
	case len(m.servers) == 0:
		b.WriteString("No servers available\n")
	default:
		for i, s := range m.servers {
			cursor := "  "
			line := fmt.Sprintf("%-24s %-16s %s", fitText(s.Name, 24), fitText(s.City, 16), s.Country)
			if i == m.idx {
				cursor = "> "
				line = selectedStyle.Render(line)
			}
			b.WriteString(cursor)
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(okStyle.Render(m.status))
		b.WriteString("\n")
	}
	if m.lastErr != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + humanizeError(m.lastErr)))
		b.WriteString("\n")
	}

	return renderPage(
		"VPN DASHBOARD",
		strings.TrimRight(b.String(), "\n"),
		"enter/d: download │ p: protocol │ o: platform │ c: copy license │ r: provision │ s: refresh │ l: log out",
	)
}

func (m *DashboardModel) cmdLoadServers() tea.Cmd {
	ctx := m.ctx
	portal := m.portal

	return func() tea.Msg {
		servers, err := portal.Servers(ctx)
		return serversLoadedMsg{servers: servers, err: err}
	}
}

func (m *DashboardModel) cmdDownload(req models.ConfigRequest) tea.Cmd {
	ctx := m.ctx
	portal := m.portal
	dir := m.outputDir
	log := m.logger

	return func() tea.Msg {
		artifact, err := portal.DownloadConfig(ctx, req)
		if err != nil {
			log.Err(err).Str("server", req.ServerID).Msg("config download failed")
			return configSavedMsg{err: err}
		}

		path, err := saveArtifact(dir, artifact)
		if err != nil {
			log.Err(err).Str("file", artifact.FileName).Msg("config save failed")
		}
		return configSavedMsg{path: path, err: err}
	}
}

func (m *DashboardModel) cmdProvision() tea.Cmd {
	ctx := m.ctx
	portal := m.portal

	return func() tea.Msg {
		outcome, err := portal.Provision(ctx)
		return provisionedMsg{outcome: outcome, err: err}
	}
}

func (m *DashboardModel) cmdCopyLicense() tea.Cmd {
	license := m.user.LicenseKey

	return func() tea.Msg {
		return copiedMsg{err: writeClipboard(license)}
	}
}

func (m *DashboardModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	portal := m.portal

	return func() tea.Msg {
		err := portal.Logout(ctx)
		return NavigateTo{Page: pageMenu, Payload: loggedOutMsg{err: err}}
	}
}

// saveArtifact writes the artifact into dir under its own base name and
// returns the full path.
func saveArtifact(dir string, artifact models.ConfigArtifact) (string, error) {
	name := filepath.Base(artifact.FileName)
	if name == "." || name == string(filepath.Separator) || name == "" {
		return "", fmt.Errorf("config file has no name")
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("error creating output directory: %w", err)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(artifact.FileBody), 0o600); err != nil {
		return "", fmt.Errorf("error writing config file: %w", err)
	}

	return path, nil
}
