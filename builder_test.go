package adminkit

import (
	"net/http"
	"testing"
	"time"
)

func TestBuildDefaults(t *testing.T) {
	ctrl, err := New().Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	defer ctrl.Close()

	if got := ctrl.Status(); got != StatusAuthenticating {
		t.Fatalf("initial status = %v, want StatusAuthenticating", got)
	}
	if ctrl.API() == nil || ctrl.HTTPClient() == nil || ctrl.Registry() == nil {
		t.Fatal("Build left a dependency nil")
	}
	if ctrl.API().BaseURL() != "http://localhost:3000/api" {
		t.Fatalf("base URL = %q, want the default", ctrl.API().BaseURL())
	}
}

func TestBuildRejectsSecondUse(t *testing.T) {
	b := New()
	ctrl, err := b.Build()
	if err != nil {
		t.Fatalf("first Build: %v", err)
	}
	defer ctrl.Close()

	if _, err := b.Build(); err == nil {
		t.Fatal("second Build on the same builder succeeded")
	}
}

func TestBuildValidatesConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty base url", func(c *Config) { c.API.BaseURL = "" }},
		{"relative base url", func(c *Config) { c.API.BaseURL = "/api" }},
		{"negative timeout", func(c *Config) { c.API.Timeout = -time.Second }},
		{"invalid storage mode", func(c *Config) { c.Storage.Mode = StorageMode(99) }},
		{"no required roles", func(c *Config) { c.Access.RequiredRoles = nil }},
		{"blank required role", func(c *Config) { c.Access.RequiredRoles = []string{" "} }},
		{"audit enabled without buffer", func(c *Config) {
			c.Audit.Enabled = true
			c.Audit.BufferSize = 0
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(&cfg)

			if _, err := New().WithConfig(cfg).Build(); err == nil {
				t.Fatal("Build accepted an invalid config")
			}
		})
	}
}

func TestBuildRedisModeRequiresClient(t *testing.T) {
	cfg := defaultConfig()
	cfg.Storage.Mode = StorageRedis

	if _, err := New().WithConfig(cfg).Build(); err == nil {
		t.Fatal("Build accepted redis mode without a client")
	}
}

func TestBuildWrapsCallerClient(t *testing.T) {
	base := &http.Client{Timeout: 3 * time.Second}

	ctrl, err := New().WithHTTPClient(base).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	defer ctrl.Close()

	wrapped := ctrl.HTTPClient()
	if wrapped == base {
		t.Fatal("Build must wrap the caller's client, not reuse it")
	}
	if wrapped.Timeout != base.Timeout {
		t.Fatalf("wrapped timeout = %v, want the caller's %v", wrapped.Timeout, base.Timeout)
	}
	if base.Transport != nil {
		t.Fatal("caller's client was mutated")
	}
}

func TestConfigCloneIsolatesRoles(t *testing.T) {
	cfg := defaultConfig()
	cfg.Access.RequiredRoles = []string{"admin"}

	b := New().WithConfig(cfg)
	cfg.Access.RequiredRoles[0] = "tampered"

	ctrl, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	defer ctrl.Close()

	if ctrl.config.Access.RequiredRoles[0] != "admin" {
		t.Fatalf("roles = %v, caller mutation leaked in", ctrl.config.Access.RequiredRoles)
	}
}
