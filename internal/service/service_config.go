// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/vpn-portal/internal/adapter"
	"github.com/MKhiriev/vpn-portal/internal/artifact"
	"github.com/MKhiriev/vpn-portal/internal/config"
	"github.com/MKhiriev/vpn-portal/internal/logger"
	"github.com/MKhiriev/vpn-portal/internal/store"
	"github.com/MKhiriev/vpn-portal/internal/validators"
	"github.com/MKhiriev/vpn-portal/models"
)

// configService is the configuration synthesis pipeline. It keeps no state
// between calls: servers and config bodies are fetched fresh every time.
type configService struct {
	users    store.UserRepository
	reseller adapter.ResellerClient

	// brand is the short brand used in file names and profile identifiers.
	brand string
	// brandName prefixes the display name of iOS profiles.
	brandName string

	validator validators.Validator
	logger    *logger.Logger
}

func NewConfigService(users store.UserRepository, reseller adapter.ResellerClient, cfg config.App, logger *logger.Logger) ConfigService {
	return &configService{
		users:     users,
		reseller:  reseller,
		brand:     cfg.Brand,
		brandName: cfg.BrandName,
		validator: validators.NewRequestValidator(),
		logger:    logger,
	}
}

func (s *configService) ListServers(ctx context.Context) ([]models.VPNServer, error) {
	servers, err := s.reseller.ListServers(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing servers: %w", err)
	}

	return servers, nil
}

// GenerateForLicense implements [ConfigService].
//
// The user must have an upstream account and at least one server must exist.
// Protocol and platform are checked only after that, so an unknown license
// is reported before a bad parameter. WireGuard bodies are wrapped into a
// mobileconfig for iOS; OpenVPN bodies get the user's credentials injected.
func (s *configService) GenerateForLicense(ctx context.Context, req models.ConfigRequest) (models.ConfigArtifact, error) {
	log := logger.FromContext(ctx)

	user, err := s.users.GetUserByLicense(ctx, req.LicenseKey)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.ConfigArtifact{}, fmt.Errorf("%w: %w", ErrInvalidLicense, err)
	}
	if err != nil {
		return models.ConfigArtifact{}, fmt.Errorf("error resolving license: %w", err)
	}
	if !user.IsProvisioned() {
		log.Warn().Str("user_id", user.ID).Msg("config requested for user without VPN account")
		return models.ConfigArtifact{}, ErrNotProvisioned
	}

	server, err := s.selectServer(ctx, req.ServerID)
	if err != nil {
		return models.ConfigArtifact{}, err
	}

	log.Info().
		Str("user_id", user.ID).
		Str("protocol", string(req.Protocol)).
		Str("platform", string(req.Platform)).
		Str("server", server.Name).
		Msg("generating config")

	if err = s.validator.Validate(ctx, req, validators.FieldPlatform); err != nil {
		return models.ConfigArtifact{}, err
	}

	var result models.ConfigArtifact

	switch req.Protocol {
	case models.WireGuard:
		result, err = s.reseller.GetWireGuardConfig(ctx, user.VPNAccountID, server.ID)
		if err = requireBody(result, err); err != nil {
			return models.ConfigArtifact{}, fmt.Errorf("error fetching wireguard config: %w", err)
		}

		if req.Platform == models.IOS {
			displayName := fmt.Sprintf("%s - %s", s.brandName, server.Name)
			if result.FileBody, err = s.renderProfile(displayName, result.FileBody); err != nil {
				return models.ConfigArtifact{}, err
			}
		}

	case models.OpenVPN:
		result, err = s.reseller.GetOpenVPNConfig(ctx, server.ID)
		if err = requireBody(result, err); err != nil {
			return models.ConfigArtifact{}, fmt.Errorf("error fetching openvpn config: %w", err)
		}

		if user.VPNUsername != "" && user.VPNPassword != "" {
			result.FileBody = artifact.InjectCredentials(result.FileBody, user.VPNUsername, user.VPNPassword)
		} else {
			log.Warn().Str("user_id", user.ID).Msg("openvpn config served without credentials: user has no VPN username or password")
		}

	default:
		return models.ConfigArtifact{}, ErrInvalidProtocol
	}

	result.Protocol = req.Protocol
	result.Platform = req.Platform
	result.ServerName = server.Name
	result.FileName = artifact.FileName(s.brand, req.Platform, server.City, req.Protocol)
	result.ContentType = artifact.ContentType(req.Platform, req.Protocol)

	return result, nil
}

// GenerateForAccount implements [ConfigService] for the reseller naming
// scheme, where the platform picks the protocol. OpenVPN bodies are returned
// as the upstream sends them.
func (s *configService) GenerateForAccount(ctx context.Context, req models.AccountConfigRequest) (models.ConfigArtifact, error) {
	protocol, ok := req.Platform.AccountProtocol()
	if !ok {
		return models.ConfigArtifact{}, ErrInvalidProtocol
	}

	var (
		result models.ConfigArtifact
		err    error
	)

	switch protocol {
	case models.WireGuard:
		result, err = s.reseller.GetWireGuardConfig(ctx, req.AccountID, req.ServerID)
		if err = requireBody(result, err); err != nil {
			return models.ConfigArtifact{}, fmt.Errorf("error fetching wireguard config: %w", err)
		}

		if req.Platform == models.IOS {
			if result.FileBody, err = s.renderProfile(s.brandName, result.FileBody); err != nil {
				return models.ConfigArtifact{}, err
			}
		}
	case models.OpenVPN:
		result, err = s.reseller.GetOpenVPNConfig(ctx, req.ServerID)
		if err = requireBody(result, err); err != nil {
			return models.ConfigArtifact{}, fmt.Errorf("error fetching openvpn config: %w", err)
		}
	}

	result.Protocol = protocol
	result.Platform = req.Platform
	result.ServerName = req.ServerID
	result.FileName = artifact.AccountFileName(s.brand, req.ServerID, req.Platform, protocol)
	result.ContentType = artifact.ContentType(req.Platform, protocol)

	return result, nil
}

// selectServer picks the server with id serverID, or the first one when
// serverID is empty or unknown.
func (s *configService) selectServer(ctx context.Context, serverID string) (models.VPNServer, error) {
	servers, err := s.ListServers(ctx)
	if err != nil {
		return models.VPNServer{}, err
	}
	if len(servers) == 0 {
		return models.VPNServer{}, ErrNoServersAvailable
	}

	if serverID != "" {
		for _, server := range servers {
			if server.ID == serverID {
				return server, nil
			}
		}
		logger.FromContext(ctx).Debug().Str("server_id", serverID).Msg("server not found, using the first one")
	}

	return servers[0], nil
}

// requireBody passes err through and turns an empty upstream body into an
// upstream error, so no artifact is ever built around missing content.
func requireBody(result models.ConfigArtifact, err error) error {
	if err != nil {
		return err
	}
	if result.FileBody == "" {
		return fmt.Errorf("%w: empty config body", adapter.ErrUpstream)
	}
	return nil
}

func (s *configService) renderProfile(displayName, wgConfig string) (string, error) {
	profile, err := artifact.MobileConfig{
		DisplayName:      displayName,
		IdentifierPrefix: artifact.IdentifierPrefix(s.brand),
		WireGuardConfig:  wgConfig,
	}.Render()
	if err != nil {
		return "", fmt.Errorf("error rendering mobileconfig: %w", err)
	}

	return string(profile), nil
}
