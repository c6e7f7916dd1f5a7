// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/vpn-portal/internal/app"
	"github.com/MKhiriev/vpn-portal/internal/utils"
	"github.com/MKhiriev/vpn-portal/models"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.AccountService.ListUsers(r.Context())
	if err != nil {
		h.writeError(w, r, err, app.MsgListUsersFailed)
		return
	}

	result := make([]models.AdminUser, 0, len(users))
	for _, u := range users {
		result = append(result, models.AdminUser{
			PublicUser:  u.Public(),
			Provisioned: u.IsProvisioned(),
			CreatedAt:   u.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	utils.WriteJSON(w, models.AdminUsersResponse{Success: true, Users: result}, http.StatusOK)
}

func (h *Handler) enableUser(w http.ResponseWriter, r *http.Request) {
	h.setAccountEnabled(w, r, true)
}

func (h *Handler) disableUser(w http.ResponseWriter, r *http.Request) {
	h.setAccountEnabled(w, r, false)
}

func (h *Handler) setAccountEnabled(w http.ResponseWriter, r *http.Request, enabled bool) {
	updated, err := h.services.AccountService.SetAccountEnabled(r.Context(), chi.URLParam(r, "id"), enabled)
	if err != nil {
		h.writeError(w, r, err, app.MsgAccountStatusFailed)
		return
	}

	user := updated.Public()
	utils.WriteJSON(w, models.UserResponse{Success: true, User: &user}, http.StatusOK)
}
