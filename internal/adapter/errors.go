// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUpstream marks every failure of the reseller API, transport errors
	// included.
	ErrUpstream = errors.New("upstream request failed")

	ErrInvalidUsername = errors.New("invalid username")
	ErrInvalidPassword = errors.New("invalid password")
)

// Portal API errors, mapped from HTTP status codes by mapPortalError.
var (
	ErrBadRequest         = errors.New("bad request")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrServiceUnavailable = errors.New("service unavailable")
	ErrInternalServer     = errors.New("internal server error")
)

// UpstreamError is a non-2xx answer of the reseller API.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream responded with status %d: %s", e.StatusCode, e.Message())
}

func (e *UpstreamError) Unwrap() error {
	return ErrUpstream
}

// Message extracts a human readable reason from the body: the "message"
// field, else the first "errors.username" entry, else the raw body.
func (e *UpstreamError) Message() string {
	var body struct {
		Message string `json:"message"`
		Errors  struct {
			Username []string `json:"username"`
		} `json:"errors"`
	}

	if err := json.Unmarshal([]byte(e.Body), &body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		if len(body.Errors.Username) > 0 {
			return body.Errors.Username[0]
		}
	}

	return strings.TrimSpace(e.Body)
}

// ValidationError is returned when input is rejected locally, before any
// request.
type ValidationError struct {
	Err     error
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
