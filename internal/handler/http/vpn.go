// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/vpn-portal/internal/adapter"
	"github.com/MKhiriev/vpn-portal/internal/app"
	"github.com/MKhiriev/vpn-portal/internal/logger"
	"github.com/MKhiriev/vpn-portal/internal/utils"
	"github.com/MKhiriev/vpn-portal/models"
)

// config serves GET /vpn/config?license&protocol&server&platform.
func (h *Handler) config(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	artifact, err := h.services.ConfigService.GenerateForLicense(r.Context(), models.ConfigRequest{
		LicenseKey: query.Get("license"),
		ServerID:   query.Get("server"),
		Protocol:   models.Protocol(query.Get("protocol")),
		Platform:   models.Platform(query.Get("platform")),
	})
	if err != nil {
		h.writeError(w, r, err, app.MsgConfigFailed)
		return
	}

	h.writeArtifact(w, r, artifact)
}

// resellersConfig serves GET /vpn/resellers-config?account_id&server_id&platform.
func (h *Handler) resellersConfig(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	artifact, err := h.services.ConfigService.GenerateForAccount(r.Context(), models.AccountConfigRequest{
		AccountID: query.Get("account_id"),
		ServerID:  query.Get("server_id"),
		Platform:  models.Platform(query.Get("platform")),
	})
	if err != nil {
		h.writeError(w, r, err, app.MsgResellerConfigFailed)
		return
	}

	h.writeArtifact(w, r, artifact)
}

func (h *Handler) writeArtifact(w http.ResponseWriter, r *http.Request, artifact models.ConfigArtifact) {
	_, err := utils.WriteAttachment(w, []byte(artifact.FileBody), artifact.FileName, artifact.ContentType, map[string]string{
		adapter.HeaderVPNProtocol: string(artifact.Protocol),
		adapter.HeaderVPNServer:   artifact.ServerName,
		adapter.HeaderVPNPlatform: string(artifact.Platform),
	})
	if err != nil {
		logger.FromRequest(r).Err(err).Str("file", artifact.FileName).Msg("error writing config file")
	}
}

func (h *Handler) servers(w http.ResponseWriter, r *http.Request) {
	servers, err := h.services.ConfigService.ListServers(r.Context())
	if err != nil {
		h.writeError(w, r, err, app.MsgFetchServersFailed)
		return
	}

	summaries := make([]models.ServerSummary, 0, len(servers))
	for _, s := range servers {
		summaries = append(summaries, models.ServerSummary{
			ID:       s.ID,
			Name:     s.Name,
			City:     s.City,
			Country:  s.CountryCode,
			Hostname: s.Hostname,
		})
	}

	utils.WriteJSON(w, models.ServersResponse{Success: true, Servers: summaries}, http.StatusOK)
}

func (h *Handler) resellersServers(w http.ResponseWriter, r *http.Request) {
	raw, err := h.services.ResellerService.ListServersRaw(r.Context())
	if err != nil {
		h.writeResellerError(w, r, err, app.MsgFetchServersFailed)
		return
	}

	utils.WriteJSON(w, models.RawServersResponse{Success: true, Servers: raw}, http.StatusOK)
}

func (h *Handler) resellersCreateAccount(w http.ResponseWriter, r *http.Request) {
	var req models.ResellerAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeResellerError(w, r, decodingError(err), app.MsgServerError)
		return
	}

	if req.Username == "" || req.Password == "" {
		h.writeResellerError(w, r, &adapter.ValidationError{Message: app.MsgUsernamePasswordRequired}, app.MsgServerError)
		return
	}

	account, err := h.services.ResellerService.CreateAccount(r.Context(), req)
	if err != nil {
		h.writeResellerError(w, r, err, app.MsgCreateAccountFailed)
		return
	}

	utils.WriteJSON(w, models.ResellerAccountResponse{Success: true, Account: account}, http.StatusOK)
}

func (h *Handler) resellersCheckUsername(w http.ResponseWriter, r *http.Request) {
	available, err := h.services.ResellerService.CheckUsername(r.Context(), r.URL.Query().Get("username"))
	if err != nil {
		h.writeResellerError(w, r, err, app.MsgCheckUsernameFailed)
		return
	}

	utils.WriteJSON(w, models.UsernameAvailabilityResponse{Success: true, Available: available}, http.StatusOK)
}

// writeResellerError writes the {success:false,error} envelope of the
// reseller routes. Upstream answers keep their status code and message.
func (h *Handler) writeResellerError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	log := logger.FromRequest(r)
	failure := false

	var upstreamErr *adapter.UpstreamError
	if errors.As(err, &upstreamErr) {
		message := upstreamErr.Message()
		if message == "" {
			message = fallback
		}

		log.Error().Err(err).Int("status", upstreamErr.StatusCode).Msg(fallback)
		utils.WriteJSON(w, models.ErrorResponse{Success: &failure, Error: message}, upstreamErr.StatusCode)
		return
	}

	status, matched := statusFromError(err)

	resp := models.ErrorResponse{Success: &failure, Error: fallback}
	if status < http.StatusInternalServerError && matched != nil {
		resp.Error = matched.Error()
	}

	log.Err(err).Int("status", status).Msg(fallback)
	utils.WriteJSON(w, resp, status)
}
