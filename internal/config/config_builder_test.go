// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// TestBuild_EmptyBuilder verifies that building with no sources yields the
// package defaults.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)

	assert.Equal(t, DefaultBrand, cfg.App.Brand)
	assert.Equal(t, DefaultBrandName, cfg.App.BrandName)
	assert.Equal(t, DefaultTokenDuration, cfg.App.TokenDuration)
	assert.Equal(t, DriverMemory, cfg.Storage.DB.Driver)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, DefaultUpstreamBaseURL, cfg.Upstream.BaseURL)
	assert.Equal(t, DefaultUpstreamTimeout, cfg.Upstream.Timeout)
	assert.Zero(t, cfg.Workers.ProvisionInterval)
	assert.Empty(t, cfg.Server.GRPCAddress)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourceOverrides verifies that a later non-zero field wins and
// zero fields never erase earlier values.
func TestBuild_LaterSourceOverrides(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "1.0.0", TokenIssuer: "first"}},
		&StructuredConfig{App: App{TokenIssuer: "second"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "second", cfg.App.TokenIssuer)
}

func TestWithFile_MissingFileSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{ConfigFilePath: "/definitely/not/here.json"})

	b.withFile()
	require.Error(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithFile_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withFile()
	require.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

// ── loadStructuredConfig ──────────────────────────────────────────────────────

func TestLoadStructuredConfig_Precedence(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{"brand": "file-brand"},
	})

	t.Setenv("APP_TOKEN_SIGN_KEY", "secret")
	t.Setenv("APP_BRAND", "env-brand")
	t.Setenv("APP_TOKEN_ISSUER", "env-issuer")
	t.Setenv("SERVER_ADDRESS", "localhost:7000")

	cfg, err := loadStructuredConfig([]string{
		"-a", "localhost:7001",
		"-token-issuer", "flag-issuer",
		"-c", path,
	})
	require.NoError(t, err)

	assert.Equal(t, "file-brand", cfg.App.Brand)
	assert.Equal(t, "flag-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, "localhost:7001", cfg.Server.HTTPAddress)
	assert.Equal(t, "secret", cfg.App.TokenSignKey)
}

func TestLoadStructuredConfig_YAMLFile(t *testing.T) {
	path := writeTempFile(t, "portal.yaml", `
app:
  token_sign_key: yaml-secret
  token_duration: 2h
storage:
  db:
    driver: sqlite
    dsn: /tmp/portal.db
workers:
  provision_interval: 45s
`)

	cfg, err := loadStructuredConfig([]string{"-config", path})
	require.NoError(t, err)

	assert.Equal(t, "yaml-secret", cfg.App.TokenSignKey)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, DriverSQLite, cfg.Storage.DB.Driver)
	assert.Equal(t, "/tmp/portal.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 45*time.Second, cfg.Workers.ProvisionInterval)
}

func TestLoadStructuredConfig_ValidationFails(t *testing.T) {
	cfg, err := loadStructuredConfig(nil)
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

// ── loadClientConfig ──────────────────────────────────────────────────────────

func TestLoadClientConfig_DoesNotRequireSignKey(t *testing.T) {
	cfg, err := loadClientConfig([]string{"-portal-url", "http://portal.test:8080", "-out", "/tmp/out"})
	require.NoError(t, err)

	assert.Equal(t, "http://portal.test:8080", cfg.PortalURL)
	assert.Equal(t, "/tmp/out", cfg.OutputDir)
	assert.Equal(t, DefaultRequestTimeout, cfg.RequestTimeout)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
}

func TestLoadClientConfig_InvalidPortalURL(t *testing.T) {
	cfg, err := loadClientConfig([]string{"-portal-url", "portal-without-scheme"})
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidClientConfigs)
}
