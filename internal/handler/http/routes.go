// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/auth/register", h.register)
		r.Post("/auth/login", h.login)
		r.Post("/auth/simple-register", h.simpleRegister)
		r.Get("/auth/session", h.session)
		r.Post("/auth/logout", h.logout)

		r.Get("/vpn/config", h.config)
		r.Get("/vpn/servers", h.servers)

		r.Post("/vpn/resellers-create-account", h.resellersCreateAccount)
		r.Get("/vpn/resellers-check-username", h.resellersCheckUsername)
		r.Get("/vpn/resellers-config", h.resellersConfig)
		r.Get("/vpn/resellers-servers", h.resellersServers)

		r.Get("/version", h.getServerVersion)
	})

	// routes with session cookie
	router.Group(func(r chi.Router) {
		r.Use(h.sessionAuth)
		r.Post("/vpn/provision", h.provision)
	})

	// admin routes
	router.Group(func(r chi.Router) {
		r.Use(h.adminAuth)
		r.Get("/admin/users", h.listUsers)
		r.Post("/admin/users/{id}/enable", h.enableUser)
		r.Post("/admin/users/{id}/disable", h.disableUser)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
