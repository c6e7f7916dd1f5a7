// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"crypto/subtle"
	"net/http"

	"github.com/MKhiriev/vpn-portal/internal/app"
	"github.com/MKhiriev/vpn-portal/internal/utils"
)

// sessionAuth resolves the session cookie and stores the user id in the
// request context under [utils.UserIDCtxKey]. Requests without a valid
// session get 401.
func (h *Handler) sessionAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := h.sessionUserID(r)
		if err != nil {
			h.writeError(w, r, err, app.MsgNotAuthenticated)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUserID(r.Context(), userID)))
	})
}

// adminAuth guards the admin routes with a static bearer token. Without a
// configured token every admin route answers 404.
func (h *Handler) adminAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.adminToken == "" {
			h.writeError(w, r, ErrAdminDisabled, app.MsgAdminDisabled)
			return
		}

		token, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil || subtle.ConstantTimeCompare([]byte(token), []byte(h.adminToken)) != 1 {
			h.writeError(w, r, ErrInvalidAdminToken, app.MsgInvalidAdminToken)
			return
		}

		next.ServeHTTP(w, r)
	})
}
