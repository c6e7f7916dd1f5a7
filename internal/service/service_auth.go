// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/vpn-portal/internal/adapter"
	"github.com/MKhiriev/vpn-portal/internal/config"
	"github.com/MKhiriev/vpn-portal/internal/crypto"
	"github.com/MKhiriev/vpn-portal/internal/logger"
	"github.com/MKhiriev/vpn-portal/internal/store"
	"github.com/MKhiriev/vpn-portal/internal/utils"
	"github.com/MKhiriev/vpn-portal/internal/validators"
	"github.com/MKhiriev/vpn-portal/models"
)

// authService is the concrete implementation of [AuthService].
type authService struct {
	users    store.UserRepository
	reseller adapter.ResellerClient
	hasher   crypto.PasswordHasher
	secrets  crypto.SecretGenerator

	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify session tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	tokenIssuer string

	// tokenDuration controls how long a session stays valid.
	tokenDuration time.Duration

	now    func() time.Time
	logger *logger.Logger
}

func NewAuthService(
	users store.UserRepository,
	reseller adapter.ResellerClient,
	hasher crypto.PasswordHasher,
	secrets crypto.SecretGenerator,
	cfg config.App,
	logger *logger.Logger,
) AuthService {
	return &authService{
		users:         users,
		reseller:      reseller,
		hasher:        hasher,
		secrets:       secrets,
		validator:     validators.NewRequestValidator(),
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		now:           time.Now,
		logger:        logger,
	}
}

// Register implements [AuthService] as a two-phase operation. Phase one
// validates the input, hashes the password and stores the user under a fresh
// license key; its errors fail the registration. Phase two provisions the
// upstream VPN account and never fails the registration: the outcome is
// returned in the result and failures are logged.
func (a *authService) Register(ctx context.Context, creds models.Credentials) (models.RegistrationResult, error) {
	log := logger.FromContext(ctx)

	creds.Email = normalizeEmail(creds.Email)
	if err := a.validator.Validate(ctx, creds); err != nil {
		return models.RegistrationResult{}, err
	}

	passwordHash, err := a.hasher.Hash(creds.Password)
	if err != nil {
		return models.RegistrationResult{}, fmt.Errorf("error hashing password: %w", err)
	}

	licenseKey, err := a.secrets.LicenseKey()
	if err != nil {
		return models.RegistrationResult{}, fmt.Errorf("error generating license key: %w", err)
	}

	user, err := a.users.CreateUser(ctx, models.User{
		Email:        creds.Email,
		PasswordHash: passwordHash,
		LicenseKey:   licenseKey,
		Status:       models.UserStatusActive,
	})
	if err != nil {
		log.Err(err).Str("email", creds.Email).Msg("user creation ended with error")
		return models.RegistrationResult{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("user_id", user.ID).Msg("user registered")

	user, outcome := a.provision(ctx, user)

	return models.RegistrationResult{User: user, Provisioning: outcome}, nil
}

// SimpleRegister implements [AuthService]. The returned identity exists only
// in the session token issued for it.
func (a *authService) SimpleRegister(ctx context.Context, creds models.Credentials) (models.PublicUser, error) {
	creds.Email = normalizeEmail(creds.Email)
	if err := a.validator.Validate(ctx, creds, validators.FieldPassword); err != nil {
		return models.PublicUser{}, err
	}

	return models.PublicUser{
		ID:    fmt.Sprintf("user-%d", a.now().UnixMilli()),
		Email: creds.Email,
	}, nil
}

// Login implements [AuthService]. Unknown emails and wrong passwords both
// yield [ErrInvalidCredentials].
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	creds.Email = normalizeEmail(creds.Email)
	if err := a.validator.Validate(ctx, creds, validators.FieldEmail); err != nil {
		return models.User{}, err
	}

	user, err := a.users.GetUserByEmail(ctx, creds.Email)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Debug().Str("email", creds.Email).Msg("login for unknown email")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	ok, err := a.hasher.Verify(creds.Password, user.PasswordHash)
	if err != nil {
		log.Err(err).Str("user_id", user.ID).Msg("stored password hash is unreadable")
		return models.User{}, fmt.Errorf("error verifying password: %w", err)
	}
	if !ok {
		log.Debug().Str("user_id", user.ID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return user, nil
}

func (a *authService) Session(ctx context.Context, userID string) (models.User, error) {
	user, err := a.users.GetUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("error loading session user: %w", err)
	}

	return user, nil
}

// Provision implements [AuthService]. Unlike registration, a failed attempt
// is returned as an error wrapping [ErrProvisioningFailed] together with the
// failed outcome.
func (a *authService) Provision(ctx context.Context, userID string) (models.ProvisioningOutcome, error) {
	user, err := a.users.GetUserByID(ctx, userID)
	if err != nil {
		return models.ProvisioningOutcome{}, fmt.Errorf("error loading user: %w", err)
	}

	if user.IsProvisioned() {
		return models.ProvisioningOutcome{Status: models.ProvisioningOK}, nil
	}

	_, outcome := a.provision(ctx, user)
	if outcome.Status == models.ProvisioningFailed {
		return outcome, fmt.Errorf("%w: %w", ErrProvisioningFailed, outcome.Reason)
	}

	return outcome, nil
}

// provision creates the upstream account of user, named after its license
// key, and stores the credentials. It returns the updated user.
func (a *authService) provision(ctx context.Context, user models.User) (models.User, models.ProvisioningOutcome) {
	log := logger.FromContext(ctx).With().
		Str("user_id", user.ID).
		Str("license_key", user.LicenseKey).
		Logger()

	failed := func(reason error) (models.User, models.ProvisioningOutcome) {
		log.Error().Err(reason).Msg("VPN provisioning failed")
		return user, models.ProvisioningOutcome{Status: models.ProvisioningFailed, Reason: reason}
	}

	vpnPassword, err := a.secrets.VPNPassword()
	if err != nil {
		return failed(fmt.Errorf("error generating VPN password: %w", err))
	}

	account, err := a.reseller.CreateAccount(ctx, user.LicenseKey, vpnPassword)
	if err != nil {
		return failed(err)
	}

	creds := models.VPNCredentials{
		VPNAccountID: account.ID,
		VPNUsername:  account.Username,
		VPNPassword:  vpnPassword,
		WGPrivateKey: account.WireGuardPrivateKey,
		WGPublicKey:  account.WireGuardPublicKey,
		WGIPAddress:  account.WireGuardIP,
	}
	if creds.VPNUsername == "" {
		creds.VPNUsername = user.LicenseKey
	}

	if err = a.users.UpdateVPNCredentials(ctx, user.ID, creds); err != nil {
		// the upstream username is taken from now on, so retries cannot succeed
		log = log.With().
			Str("vpn_account_id", account.ID).
			Str("vpn_username", creds.VPNUsername).
			Logger()
		return failed(fmt.Errorf("%w: account %s: %w", ErrUpstreamAccountNotSaved, account.ID, err))
	}

	user.VPNAccountID = creds.VPNAccountID
	user.VPNUsername = creds.VPNUsername
	user.VPNPassword = creds.VPNPassword
	user.WGPrivateKey = creds.WGPrivateKey
	user.WGPublicKey = creds.WGPublicKey
	user.WGIPAddress = creds.WGIPAddress

	log.Info().Str("vpn_account_id", account.ID).Msg("VPN account provisioned")

	return user, models.ProvisioningOutcome{Status: models.ProvisioningOK}
}

// IssueSessionToken signs a session token whose subject is userID.
func (a *authService) IssueSessionToken(ctx context.Context, userID string) (models.SessionToken, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, userID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.SessionToken{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseSessionToken verifies signature, issuer and expiry of token. Any
// failure is reported as [ErrTokenIsExpiredOrInvalid].
func (a *authService) ParseSessionToken(ctx context.Context, token string) (models.SessionToken, error) {
	parsed, err := utils.ValidateAndParseJWTToken(token, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("session token rejected")
		return models.SessionToken{}, ErrTokenIsExpiredOrInvalid
	}

	return parsed, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
