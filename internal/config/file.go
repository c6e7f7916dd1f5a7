// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors [StructuredConfig] for JSON and YAML config files.
// Durations are accepted as strings ("30s") or integer nanoseconds.
type fileConfig struct {
	App struct {
		Brand         string   `json:"brand" yaml:"brand"`
		BrandName     string   `json:"brand_name" yaml:"brand_name"`
		TokenSignKey  string   `json:"token_sign_key" yaml:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer" yaml:"token_issuer"`
		TokenDuration Duration `json:"token_duration" yaml:"token_duration"`
		SecureCookies bool     `json:"secure_cookies" yaml:"secure_cookies"`
		AdminToken    string   `json:"admin_token" yaml:"admin_token"`
		Version       string   `json:"version" yaml:"version"`
		LogLevel      string   `json:"log_level" yaml:"log_level"`
	} `json:"app,omitempty" yaml:"app,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver" yaml:"driver"`
			DSN    string `json:"dsn" yaml:"dsn"`
		} `json:"db,omitempty" yaml:"db,omitempty"`
	} `json:"storage,omitempty" yaml:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		GRPCAddress    string   `json:"grpc_address" yaml:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"server,omitempty" yaml:"server,omitempty"`

	Upstream struct {
		BaseURL string   `json:"base_url" yaml:"base_url"`
		Token   string   `json:"token" yaml:"token"`
		Timeout Duration `json:"timeout" yaml:"timeout"`
	} `json:"upstream,omitempty" yaml:"upstream,omitempty"`

	Workers struct {
		ProvisionInterval Duration `json:"provision_interval" yaml:"provision_interval"`
	} `json:"workers,omitempty" yaml:"workers,omitempty"`

	Client struct {
		PortalURL string `json:"portal_url" yaml:"portal_url"`
		OutputDir string `json:"output_dir" yaml:"output_dir"`
	} `json:"client,omitempty" yaml:"client,omitempty"`
}

// parseFile reads a config file. Files ending in .yaml or .yml are decoded as
// YAML, everything else as JSON.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err = json.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return fc.toStructured(), nil
}

func (fc *fileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Brand:         fc.App.Brand,
			BrandName:     fc.App.BrandName,
			TokenSignKey:  fc.App.TokenSignKey,
			TokenIssuer:   fc.App.TokenIssuer,
			TokenDuration: time.Duration(fc.App.TokenDuration),
			SecureCookies: fc.App.SecureCookies,
			AdminToken:    fc.App.AdminToken,
			Version:       fc.App.Version,
			LogLevel:      fc.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				Driver: fc.Storage.DB.Driver,
				DSN:    fc.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    fc.Server.HTTPAddress,
			GRPCAddress:    fc.Server.GRPCAddress,
			RequestTimeout: time.Duration(fc.Server.RequestTimeout),
		},
		Upstream: Upstream{
			BaseURL: fc.Upstream.BaseURL,
			Token:   fc.Upstream.Token,
			Timeout: time.Duration(fc.Upstream.Timeout),
		},
		Workers: Workers{
			ProvisionInterval: time.Duration(fc.Workers.ProvisionInterval),
		},
		Client: Client{
			PortalURL: fc.Client.PortalURL,
			OutputDir: fc.Client.OutputDir,
		},
	}
}

// Duration is a wrapper around time.Duration that supports JSON and YAML
// unmarshaling from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}

	if n, err := time.ParseDuration(raw); err == nil {
		*d = Duration(n)
		return nil
	}

	var ns int64
	if err := node.Decode(&ns); err != nil {
		return fmt.Errorf("invalid duration %q", raw)
	}
	*d = Duration(time.Duration(ns))
	return nil
}

func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}
