// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOption customises a client built by [NewHTTPClient].
type HTTPClientOption func(c *resty.Client)

// WithBearerToken sends "Authorization: Bearer token" on every request.
// An empty token leaves the header unset.
func WithBearerToken(token string) HTTPClientOption {
	return func(c *resty.Client) {
		if token != "" {
			c.SetAuthToken(token)
		}
	}
}

// WithCookieJar keeps cookies between requests, which the portal client
// needs for its session cookie.
func WithCookieJar(jar http.CookieJar) HTTPClientOption {
	return func(c *resty.Client) {
		c.SetCookieJar(jar)
	}
}

// NewHTTPClient creates a client bound to baseURL that asks for JSON and
// gives up after timeout. Retries stay disabled: upstream calls are not
// idempotent.
//
// Example usage:
//
//	client := utils.NewHTTPClient("https://api.vpnresellers.com/v3_2", 15*time.Second,
//	    utils.WithBearerToken(token))
//	resp, err := client.R().SetContext(ctx).Get("/servers")
func NewHTTPClient(baseURL string, timeout time.Duration, opts ...HTTPClientOption) *HTTPClient {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetRetryCount(0)

	for _, opt := range opts {
		opt(c)
	}

	return &HTTPClient{Client: c}
}
