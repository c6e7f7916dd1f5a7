// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/MKhiriev/vpn-portal/internal/config"
	"github.com/MKhiriev/vpn-portal/internal/logger"
	"github.com/MKhiriev/vpn-portal/internal/utils"
	"github.com/MKhiriev/vpn-portal/models"
	"github.com/go-resty/resty/v2"
)

const usernameNotTakenMessage = "The username is not taken."

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

type httpResellerClient struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewResellerClient constructs the resty implementation of [ResellerClient]
// from the upstream settings. A missing token is allowed; the upstream will
// answer 401 and the error surfaces as an [*UpstreamError].
func NewResellerClient(cfg config.Upstream, log *logger.Logger) (ResellerClient, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid upstream base url: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.Timeout, utils.WithBearerToken(cfg.Token))

	return &httpResellerClient{client: client, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// ListServers implements [ResellerClient]. Name and hostname fill in for
// each other when one is absent.
func (c *httpResellerClient) ListServers(ctx context.Context) ([]models.VPNServer, error) {
	var envelope struct {
		Data []upstreamServer `json:"data"`
	}
	if err := c.getJSON(ctx, "list servers", "/servers", nil, &envelope); err != nil {
		return nil, err
	}

	servers := make([]models.VPNServer, 0, len(envelope.Data))
	for _, s := range envelope.Data {
		servers = append(servers, s.toModel())
	}

	return servers, nil
}

// ListServersRaw implements [ResellerClient].
func (c *httpResellerClient) ListServersRaw(ctx context.Context) (json.RawMessage, error) {
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := c.getJSON(ctx, "list servers", "/servers", nil, &envelope); err != nil {
		return nil, err
	}

	if len(envelope.Data) == 0 || bytes.Equal(envelope.Data, []byte("null")) {
		return json.RawMessage("[]"), nil
	}

	return envelope.Data, nil
}

// CreateAccount implements [ResellerClient].
func (c *httpResellerClient) CreateAccount(ctx context.Context, username, password string) (models.VPNAccount, error) {
	if err := ValidateAccountCredentials(username, password); err != nil {
		return models.VPNAccount{}, err
	}

	resp, err := c.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.ResellerAccountRequest{Username: username, Password: password}).
		Post("/accounts")
	if err = c.check("create account", resp, err); err != nil {
		return models.VPNAccount{}, err
	}

	var envelope struct {
		Data upstreamAccount `json:"data"`
	}
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return models.VPNAccount{}, fmt.Errorf("%w: decode create account response: %w", ErrUpstream, err)
	}
	if envelope.Data.ID == "" {
		return models.VPNAccount{}, fmt.Errorf("%w: create account response has no account id", ErrUpstream)
	}

	return envelope.Data.toModel(), nil
}

// GetWireGuardConfig implements [ResellerClient]. A 200 answer without a
// file body is an upstream failure.
func (c *httpResellerClient) GetWireGuardConfig(ctx context.Context, accountID, serverID string) (models.ConfigArtifact, error) {
	path := "/accounts/" + url.PathEscape(accountID) + "/wireguard-configuration"

	var envelope struct {
		Data upstreamConfig `json:"data"`
	}
	if err := c.getJSON(ctx, "get wireguard config", path, map[string]string{"server_id": serverID}, &envelope); err != nil {
		return models.ConfigArtifact{}, err
	}
	if envelope.Data.FileBody == "" {
		return models.ConfigArtifact{}, fmt.Errorf("%w: get wireguard config response has no file body", ErrUpstream)
	}

	return envelope.Data.toModel(models.WireGuard), nil
}

// GetOpenVPNConfig implements [ResellerClient]. A 200 answer without a file
// body is an upstream failure.
func (c *httpResellerClient) GetOpenVPNConfig(ctx context.Context, serverID string) (models.ConfigArtifact, error) {
	var envelope struct {
		Data upstreamConfig `json:"data"`
	}
	if err := c.getJSON(ctx, "get openvpn config", "/configuration", map[string]string{"server_id": serverID}, &envelope); err != nil {
		return models.ConfigArtifact{}, err
	}
	if envelope.Data.FileBody == "" {
		return models.ConfigArtifact{}, fmt.Errorf("%w: get openvpn config response has no file body", ErrUpstream)
	}

	return envelope.Data.toModel(models.OpenVPN), nil
}

// CheckUsername implements [ResellerClient].
func (c *httpResellerClient) CheckUsername(ctx context.Context, username string) (bool, error) {
	var body struct {
		Message string `json:"message"`
		Data    struct {
			Message string `json:"message"`
		} `json:"data"`
	}
	if err := c.getJSON(ctx, "check username", "/accounts/check_username", map[string]string{"username": username}, &body); err != nil {
		return false, err
	}

	message := body.Data.Message
	if message == "" {
		message = body.Message
	}

	return usernameAvailable(message), nil
}

// usernameAvailable is the only place that knows how the upstream phrases a
// free username.
func usernameAvailable(message string) bool {
	return strings.TrimSpace(message) == usernameNotTakenMessage
}

// EnableAccount implements [ResellerClient].
func (c *httpResellerClient) EnableAccount(ctx context.Context, accountID string) error {
	return c.toggleAccount(ctx, accountID, "enable")
}

// DisableAccount implements [ResellerClient].
func (c *httpResellerClient) DisableAccount(ctx context.Context, accountID string) error {
	return c.toggleAccount(ctx, accountID, "disable")
}

func (c *httpResellerClient) toggleAccount(ctx context.Context, accountID, action string) error {
	resp, err := c.request(ctx).Put("/accounts/" + url.PathEscape(accountID) + "/" + action)
	return c.check(action+" account", resp, err)
}

func (c *httpResellerClient) request(ctx context.Context) *resty.Request {
	return c.client.R().SetContext(ctx)
}

func (c *httpResellerClient) getJSON(ctx context.Context, op, path string, query map[string]string, out any) error {
	resp, err := c.request(ctx).SetQueryParams(query).Get(path)
	if err = c.check(op, resp, err); err != nil {
		return err
	}

	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("%w: decode %s response: %w", ErrUpstream, op, err)
	}

	return nil
}

// check turns transport failures and non-2xx answers into upstream errors
// and logs the exchange.
func (c *httpResellerClient) check(op string, resp *resty.Response, err error) error {
	if err != nil {
		c.logger.Err(err).Str("op", op).Msg("upstream request failed")
		return fmt.Errorf("%w: %s: %w", ErrUpstream, op, err)
	}

	c.logger.Debug().
		Str("op", op).
		Str("method", resp.Request.Method).
		Str("url", resp.Request.URL).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Msg("upstream request")

	return mapHTTPError(resp)
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	return &UpstreamError{StatusCode: resp.StatusCode(), Body: string(resp.Body())}
}

// ValidateAccountCredentials applies the upstream account rules locally.
func ValidateAccountCredentials(username, password string) error {
	switch {
	case username == "":
		return &ValidationError{Err: ErrInvalidUsername, Message: "Username is required"}
	case len(username) < 3 || len(username) > 50:
		return &ValidationError{Err: ErrInvalidUsername, Message: "Username must be between 3 and 50 characters"}
	case !usernamePattern.MatchString(username):
		return &ValidationError{Err: ErrInvalidUsername, Message: "Username may only contain letters, numbers, underscores and hyphens"}
	case password == "":
		return &ValidationError{Err: ErrInvalidPassword, Message: "Password is required"}
	case len(password) < 3 || len(password) > 50:
		return &ValidationError{Err: ErrInvalidPassword, Message: "Password must be between 3 and 50 characters"}
	}

	return nil
}

// flexibleID accepts both JSON numbers and strings.
type flexibleID string

func (id *flexibleID) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = flexibleID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id must be a string or a number: %w", err)
	}
	*id = flexibleID(n.String())
	return nil
}

type upstreamServer struct {
	ID          flexibleID `json:"id"`
	Name        string     `json:"name"`
	Hostname    string     `json:"hostname"`
	IP          string     `json:"ip"`
	CountryCode string     `json:"country_code"`
	City        string     `json:"city"`
	Capacity    *int       `json:"capacity"`
}

func (s upstreamServer) toModel() models.VPNServer {
	server := models.VPNServer{
		ID:          string(s.ID),
		Name:        s.Name,
		Hostname:    s.Hostname,
		IP:          s.IP,
		CountryCode: s.CountryCode,
		City:        s.City,
	}
	if server.Name == "" {
		server.Name = server.Hostname
	}
	if server.Hostname == "" {
		server.Hostname = server.Name
	}
	if s.Capacity != nil {
		server.Capacity = *s.Capacity
	}
	return server
}

type upstreamAccount struct {
	ID                  flexibleID `json:"id"`
	Username            string     `json:"username"`
	Status              string     `json:"status"`
	WireGuardIP         string     `json:"wg_ip"`
	WireGuardPrivateKey string     `json:"wg_private_key"`
	WireGuardPublicKey  string     `json:"wg_public_key"`
	ExpiredAt           *string    `json:"expired_at"`
	CreatedAt           string     `json:"created"`
	UpdatedAt           string     `json:"updated"`
}

func (a upstreamAccount) toModel() models.VPNAccount {
	return models.VPNAccount{
		ID:                  string(a.ID),
		Username:            a.Username,
		Status:              a.Status,
		WireGuardIP:         a.WireGuardIP,
		WireGuardPrivateKey: a.WireGuardPrivateKey,
		WireGuardPublicKey:  a.WireGuardPublicKey,
		ExpiredAt:           a.ExpiredAt,
		CreatedAt:           a.CreatedAt,
		UpdatedAt:           a.UpdatedAt,
	}
}

type upstreamConfig struct {
	FileBody    string `json:"file_body"`
	FileName    string `json:"file_name"`
	DownloadURL string `json:"download_url"`
}

func (c upstreamConfig) toModel(protocol models.Protocol) models.ConfigArtifact {
	return models.ConfigArtifact{
		Protocol:    protocol,
		FileBody:    c.FileBody,
		FileName:    c.FileName,
		DownloadURL: c.DownloadURL,
	}
}
