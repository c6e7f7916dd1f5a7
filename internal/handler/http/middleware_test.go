// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/vpn-portal/internal/logger"
	"github.com/MKhiriev/vpn-portal/internal/utils"
)

func bufferedLogger(buf *bytes.Buffer) *logger.Logger {
	return &logger.Logger{Logger: zerolog.New(buf)}
}

// ─────────────────────────────────────────────
// withTraceID
// ─────────────────────────────────────────────

func TestWithTraceID(t *testing.T) {
	t.Run("keeps incoming id", func(t *testing.T) {
		var buf bytes.Buffer
		h := &Handler{logger: bufferedLogger(&buf)}

		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger.FromRequest(r).Info().Msg("inside")
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(traceIDHeader, "abc")
		rec := httptest.NewRecorder()
		h.withTraceID(next).ServeHTTP(rec, req)

		assert.Equal(t, "abc", rec.Header().Get(traceIDHeader))

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "abc", entry["trace_id"])
		assert.Equal(t, "inside", entry["message"])
	})

	t.Run("generates id", func(t *testing.T) {
		h := &Handler{logger: logger.Nop()}

		rec := httptest.NewRecorder()
		h.withTraceID(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).
			ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
	})
}

// ─────────────────────────────────────────────
// withLogging
// ─────────────────────────────────────────────

func TestWithLogging(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: bufferedLogger(&buf)}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, map[string]string{"k": "v"}, http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodPost, "/auth/login?x=1", nil)
	rec := httptest.NewRecorder()
	h.withTraceID(h.withLogging(next)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusTeapot, rec.Code)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "/auth/login?x=1", entry["uri"])
	assert.Equal(t, http.MethodPost, entry["method"])
	assert.EqualValues(t, http.StatusTeapot, entry["status"])
	assert.EqualValues(t, rec.Body.Len(), entry["size"])
	assert.NotEmpty(t, entry["trace_id"])
}

// ─────────────────────────────────────────────
// responseWriter
// ─────────────────────────────────────────────

func TestResponseWriter(t *testing.T) {
	t.Run("write implies 200", func(t *testing.T) {
		rec := httptest.NewRecorder()
		w := &responseWriter{ResponseWriter: rec}

		n, err := w.Write([]byte("hello"))
		require.NoError(t, err)

		assert.Equal(t, 5, n)
		assert.Equal(t, http.StatusOK, w.status)
		assert.Equal(t, 5, w.size)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("header written once", func(t *testing.T) {
		rec := httptest.NewRecorder()
		w := &responseWriter{ResponseWriter: rec}

		w.WriteHeader(http.StatusCreated)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("a"))
		_, _ = w.Write([]byte("bc"))

		assert.Equal(t, http.StatusCreated, w.status)
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, 3, w.size)
	})

	t.Run("unwrap", func(t *testing.T) {
		rec := httptest.NewRecorder()
		w := &responseWriter{ResponseWriter: rec}

		assert.Same(t, rec, w.Unwrap())
	})
}

// ─────────────────────────────────────────────
// CheckHTTPMethod
// ─────────────────────────────────────────────

func TestCheckHTTPMethod(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	tests := []struct {
		method string
		want   int
	}{
		{http.MethodGet, http.StatusNoContent},
		{http.MethodPost, http.StatusNotFound},
		{http.MethodDelete, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, "/ping", nil))

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
