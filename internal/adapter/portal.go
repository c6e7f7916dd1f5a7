// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"net/http/cookiejar"
	"strings"

	"github.com/MKhiriev/vpn-portal/internal/config"
	"github.com/MKhiriev/vpn-portal/internal/logger"
	"github.com/MKhiriev/vpn-portal/internal/utils"
	"github.com/MKhiriev/vpn-portal/models"
	"github.com/go-resty/resty/v2"
)

// Response headers describing a downloaded artifact.
const (
	HeaderVPNProtocol = "X-VPN-Protocol"
	HeaderVPNServer   = "X-VPN-Server"
	HeaderVPNPlatform = "X-VPN-Platform"
)

type httpPortalClient struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewPortalClient constructs the resty implementation of [PortalClient].
// Cookies, the session cookie among them, live in an in-memory jar for the
// lifetime of the client.
func NewPortalClient(cfg config.ClientConfig, log *logger.Logger) (PortalClient, error) {
	baseURL, err := normalizeBaseURL(cfg.PortalURL)
	if err != nil {
		return nil, fmt.Errorf("invalid portal url: %w", err)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("error creating cookie jar: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout, utils.WithCookieJar(jar))

	return &httpPortalClient{client: client, logger: log}, nil
}

// Register implements [PortalClient].
func (p *httpPortalClient) Register(ctx context.Context, creds models.Credentials) (models.UserResponse, error) {
	return p.authenticate(ctx, "/auth/register", creds)
}

// Login implements [PortalClient].
func (p *httpPortalClient) Login(ctx context.Context, creds models.Credentials) (models.UserResponse, error) {
	return p.authenticate(ctx, "/auth/login", creds)
}

func (p *httpPortalClient) authenticate(ctx context.Context, path string, creds models.Credentials) (models.UserResponse, error) {
	var result models.UserResponse

	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		SetResult(&result).
		Post(path)
	if err != nil {
		return models.UserResponse{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapPortalError(resp); err != nil {
		return models.UserResponse{}, err
	}
	if result.User == nil {
		return models.UserResponse{}, fmt.Errorf("%s response has no user", path)
	}

	return result, nil
}

// Session implements [PortalClient].
func (p *httpPortalClient) Session(ctx context.Context) (models.PublicUser, error) {
	var result models.UserResponse

	resp, err := p.client.R().SetContext(ctx).SetResult(&result).Get("/auth/session")
	if err != nil {
		return models.PublicUser{}, fmt.Errorf("session request: %w", err)
	}
	if err = mapPortalError(resp); err != nil {
		return models.PublicUser{}, err
	}
	if result.User == nil {
		return models.PublicUser{}, ErrUnauthorized
	}

	return *result.User, nil
}

// Servers implements [PortalClient].
func (p *httpPortalClient) Servers(ctx context.Context) ([]models.ServerSummary, error) {
	var result models.ServersResponse

	resp, err := p.client.R().SetContext(ctx).SetResult(&result).Get("/vpn/servers")
	if err != nil {
		return nil, fmt.Errorf("servers request: %w", err)
	}
	if err = mapPortalError(resp); err != nil {
		return nil, err
	}

	return result.Servers, nil
}

// DownloadConfig implements [PortalClient]. The file name comes from the
// Content-Disposition header.
func (p *httpPortalClient) DownloadConfig(ctx context.Context, req models.ConfigRequest) (models.ConfigArtifact, error) {
	query := map[string]string{"license": req.LicenseKey}
	if req.Protocol != "" {
		query["protocol"] = string(req.Protocol)
	}
	if req.Platform != "" {
		query["platform"] = string(req.Platform)
	}
	if req.ServerID != "" {
		query["server"] = req.ServerID
	}

	resp, err := p.client.R().SetContext(ctx).SetQueryParams(query).Get("/vpn/config")
	if err != nil {
		return models.ConfigArtifact{}, fmt.Errorf("config request: %w", err)
	}
	if err = mapPortalError(resp); err != nil {
		return models.ConfigArtifact{}, err
	}

	artifact := models.ConfigArtifact{
		Protocol:    models.Protocol(resp.Header().Get(HeaderVPNProtocol)),
		Platform:    models.Platform(resp.Header().Get(HeaderVPNPlatform)),
		ServerName:  resp.Header().Get(HeaderVPNServer),
		ContentType: resp.Header().Get("Content-Type"),
		FileBody:    string(resp.Body()),
	}
	if _, params, err := mime.ParseMediaType(resp.Header().Get("Content-Disposition")); err == nil {
		artifact.FileName = params["filename"]
	}

	p.logger.Debug().
		Str("file", artifact.FileName).
		Int("size", len(artifact.FileBody)).
		Msg("config downloaded")

	return artifact, nil
}

// Provision implements [PortalClient].
func (p *httpPortalClient) Provision(ctx context.Context) (models.ProvisioningOutcome, error) {
	var result models.ProvisionResponse

	resp, err := p.client.R().SetContext(ctx).SetResult(&result).Post("/vpn/provision")
	if err != nil {
		return models.ProvisioningOutcome{}, fmt.Errorf("provision request: %w", err)
	}
	if err = mapPortalError(resp); err != nil {
		return models.ProvisioningOutcome{}, err
	}

	return result.Provisioning, nil
}

// Logout implements [PortalClient].
func (p *httpPortalClient) Logout(ctx context.Context) error {
	resp, err := p.client.R().SetContext(ctx).Post("/auth/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}

	return mapPortalError(resp)
}

// mapPortalError maps portal status codes to the sentinel errors of this
// package, keeping the server's error text.
func mapPortalError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := portalErrorText(resp.Body())

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, body)
	case http.StatusServiceUnavailable:
		return fmt.Errorf("%w: %s", ErrServiceUnavailable, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServer, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}

func portalErrorText(raw []byte) string {
	var body models.ErrorResponse
	if err := json.Unmarshal(raw, &body); err == nil && body.Error != "" {
		if body.Details != "" {
			return body.Error + ": " + body.Details
		}
		return body.Error
	}

	return strings.TrimSpace(string(raw))
}
