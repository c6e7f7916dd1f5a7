// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/vpn-portal/internal/app"
	"github.com/MKhiriev/vpn-portal/internal/logger"
	"github.com/MKhiriev/vpn-portal/internal/store"
	"github.com/MKhiriev/vpn-portal/internal/utils"
	"github.com/MKhiriev/vpn-portal/models"
)

// SessionCookieName is the cookie holding the signed session token.
const SessionCookieName = "session"

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		h.writeError(w, r, decodingError(err), app.MsgRegistrationFailed)
		return
	}

	result, err := h.services.AuthService.Register(ctx, creds)
	if err != nil {
		h.writeError(w, r, err, app.MsgRegistrationFailed)
		return
	}

	if err = h.startSession(ctx, w, result.User.ID); err != nil {
		h.writeError(w, r, err, app.MsgRegistrationFailed)
		return
	}

	log.Info().
		Str("user_id", result.User.ID).
		Str("provisioning", string(result.Provisioning.Status)).
		Msg("user registered")

	user := result.User.Public()
	utils.WriteJSON(w, models.UserResponse{
		Success:      true,
		User:         &user,
		Provisioning: &result.Provisioning,
	}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		h.writeError(w, r, decodingError(err), app.MsgLoginFailed)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, creds)
	if err != nil {
		h.writeError(w, r, err, app.MsgLoginFailed)
		return
	}

	if err = h.startSession(ctx, w, foundUser.ID); err != nil {
		h.writeError(w, r, err, app.MsgLoginFailed)
		return
	}

	logger.FromRequest(r).Debug().Str("user_id", foundUser.ID).Msg("user successfully logged in")

	user := foundUser.Public()
	utils.WriteJSON(w, models.UserResponse{Success: true, User: &user}, http.StatusOK)
}

// simpleRegister issues a session for an identity that is never stored.
func (h *Handler) simpleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		h.writeError(w, r, decodingError(err), app.MsgRegistrationFailed)
		return
	}

	user, err := h.services.AuthService.SimpleRegister(ctx, creds)
	if err != nil {
		h.writeError(w, r, err, app.MsgRegistrationFailed)
		return
	}

	if err = h.startSession(ctx, w, user.ID); err != nil {
		h.writeError(w, r, err, app.MsgRegistrationFailed)
		return
	}

	utils.WriteJSON(w, models.UserResponse{Success: true, User: &user}, http.StatusOK)
}

// session answers 401 with a null user whenever the cookie does not lead to
// a stored user.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := h.sessionUserID(r)
	if err != nil {
		log.Debug().Err(err).Msg("no valid session")
		utils.WriteJSON(w, models.UserResponse{}, http.StatusUnauthorized)
		return
	}

	found, err := h.services.AuthService.Session(ctx, userID)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Debug().Str("user_id", userID).Msg("session of unknown user")
		utils.WriteJSON(w, models.UserResponse{}, http.StatusUnauthorized)
		return
	}
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("session lookup failed")
		utils.WriteJSON(w, models.UserResponse{}, http.StatusInternalServerError)
		return
	}

	user := found.Public()
	utils.WriteJSON(w, models.UserResponse{User: &user}, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})

	logger.FromRequest(r).Debug().Msg("user logged out")

	utils.WriteJSON(w, models.MessageResponse{Success: true, Message: app.MsgLoggedOut}, http.StatusOK)
}

// provision retries the upstream account creation of the session user.
func (h *Handler) provision(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, _ := utils.GetUserIDFromContext(ctx)

	outcome, err := h.services.AuthService.Provision(ctx, userID)
	if err != nil {
		h.writeError(w, r, err, app.MsgProvisioningFailed)
		return
	}

	utils.WriteJSON(w, models.ProvisionResponse{Success: true, Provisioning: outcome}, http.StatusOK)
}

func (h *Handler) startSession(ctx context.Context, w http.ResponseWriter, userID string) error {
	token, err := h.services.AuthService.IssueSessionToken(ctx, userID)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token.SignedString,
		Path:     "/",
		MaxAge:   int(h.sessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

// sessionUserID resolves the user id carried by the session cookie.
func (h *Handler) sessionUserID(r *http.Request) (string, error) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return "", ErrNoSession
	}

	token, err := h.services.AuthService.ParseSessionToken(r.Context(), cookie.Value)
	if err != nil {
		return "", err
	}

	return token.UserID, nil
}
