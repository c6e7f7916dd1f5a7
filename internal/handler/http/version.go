// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	build := h.services.AppInfoService.GetBuildInfo(r.Context())

	if commit := build.BuildCommit(); commit != "" {
		w.Header().Set("X-Build-Commit", commit)
	}
	if date := build.BuildDate(); date != "" {
		w.Header().Set("X-Build-Date", date)
	}

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(h.services.AppInfoService.GetAppVersion(r.Context())))
}
