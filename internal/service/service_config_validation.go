// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/vpn-portal/internal/validators"
	"github.com/MKhiriev/vpn-portal/models"
)

// ConfigServiceWrapper decorates a ConfigService with additional behavior
// such as request validation.
type ConfigServiceWrapper interface {
	Wrap(ConfigService) ConfigService
}

// ConfigValidationService applies request defaults and validates config
// requests before they reach the wrapped [ConfigService].
type ConfigValidationService struct {
	inner     ConfigService
	validator validators.Validator
}

func NewConfigValidationService() ConfigServiceWrapper {
	return &ConfigValidationService{
		validator: validators.NewRequestValidator(),
	}
}

// GenerateForLicense only requires the license key here. Protocol and
// platform are checked by the pipeline once the license is resolved.
func (v *ConfigValidationService) GenerateForLicense(ctx context.Context, req models.ConfigRequest) (models.ConfigArtifact, error) {
	req = req.WithDefaults()
	if err := v.validator.Validate(ctx, req, validators.FieldLicense); err != nil {
		return models.ConfigArtifact{}, err
	}

	return v.inner.GenerateForLicense(ctx, req)
}

func (v *ConfigValidationService) GenerateForAccount(ctx context.Context, req models.AccountConfigRequest) (models.ConfigArtifact, error) {
	req = req.WithDefaults()
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.ConfigArtifact{}, err
	}

	return v.inner.GenerateForAccount(ctx, req)
}

func (v *ConfigValidationService) ListServers(ctx context.Context) ([]models.VPNServer, error) {
	return v.inner.ListServers(ctx)
}

func (v *ConfigValidationService) Wrap(inner ConfigService) ConfigService {
	v.inner = inner
	return v
}
