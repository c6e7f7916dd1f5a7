// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the portal REST API on top of chi: the auth and
// session routes, configuration downloads, the reseller passthrough routes
// and the admin routes, together with their middleware.
package http
