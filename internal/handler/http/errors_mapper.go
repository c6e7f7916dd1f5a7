// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/vpn-portal/internal/adapter"
	"github.com/MKhiriev/vpn-portal/internal/logger"
	"github.com/MKhiriev/vpn-portal/internal/service"
	"github.com/MKhiriev/vpn-portal/internal/store"
	"github.com/MKhiriev/vpn-portal/internal/utils"
	"github.com/MKhiriev/vpn-portal/internal/validators"
	"github.com/MKhiriev/vpn-portal/models"
)

type errorStatus struct {
	target error
	status int
}

// errorStatuses is checked in order; the first match wins, so wrapping
// sentinels come before the ones they wrap.
var errorStatuses = []errorStatus{
	{ErrInvalidJSON, http.StatusBadRequest},
	{ErrNoSession, http.StatusUnauthorized},
	{ErrInvalidAdminToken, http.StatusUnauthorized},
	{ErrAdminDisabled, http.StatusNotFound},

	{service.ErrInvalidLicense, http.StatusNotFound},
	{service.ErrNotProvisioned, http.StatusBadRequest},
	{service.ErrInvalidProtocol, http.StatusBadRequest},
	{service.ErrNoServersAvailable, http.StatusServiceUnavailable},
	{service.ErrInvalidCredentials, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{service.ErrProvisioningFailed, http.StatusInternalServerError},
	{service.ErrTokenCreationFailed, http.StatusInternalServerError},

	{store.ErrUserNotFound, http.StatusNotFound},
	{store.ErrEmailAlreadyExists, http.StatusConflict},
	{store.ErrLicenseAlreadyExists, http.StatusInternalServerError},

	{adapter.ErrUpstream, http.StatusInternalServerError},
}

// statusFromError returns the HTTP status of err together with the sentinel
// it matched, or nil when nothing matched. Validation failures map to 400.
func statusFromError(err error) (int, error) {
	var validationErr *validators.Error
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, validationErr
	}

	var upstreamValidationErr *adapter.ValidationError
	if errors.As(err, &upstreamValidationErr) {
		return http.StatusBadRequest, upstreamValidationErr
	}

	for _, es := range errorStatuses {
		if errors.Is(err, es.target) {
			return es.status, es.target
		}
	}

	return http.StatusInternalServerError, nil
}

// writeError writes the JSON error envelope for err. Client errors carry the
// text of the matched sentinel. Server errors carry fallback as the error and
// the cause as details; upstream causes are reduced to the upstream message.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	log := logger.FromRequest(r)

	status, matched := statusFromError(err)

	resp := models.ErrorResponse{Error: fallback}
	switch {
	case status < http.StatusInternalServerError && matched != nil:
		resp.Error = matched.Error()
		log.Warn().Err(err).Int("status", status).Msg(fallback)
	case status == http.StatusServiceUnavailable:
		resp.Error = matched.Error()
		log.Error().Err(err).Int("status", status).Msg(fallback)
	default:
		resp.Details = errorDetails(err)
		log.Error().Err(err).Int("status", status).Msg(fallback)
	}

	utils.WriteJSON(w, resp, status)
}

func errorDetails(err error) string {
	var upstreamErr *adapter.UpstreamError
	if errors.As(err, &upstreamErr) {
		return upstreamErr.Message()
	}

	return err.Error()
}

// decodingError marks a body decoding failure as [ErrInvalidJSON].
func decodingError(err error) error {
	return errors.Join(ErrInvalidJSON, err)
}
