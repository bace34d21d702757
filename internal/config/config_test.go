package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_DefaultsAndEnv(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("SHOPHUB_AUTH_JWT_SECRET", "test-secret")
	t.Setenv("SHOPHUB_CATALOG_STALE_TIME", "1m")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Addr != ":8080" {
		t.Errorf("expected :8080, got %q", cfg.Server.Addr)
	}
	if cfg.Catalog.BaseURL != "https://fakestoreapi.com" {
		t.Errorf("unexpected base url %q", cfg.Catalog.BaseURL)
	}
	if cfg.Catalog.StaleTime != time.Minute {
		t.Errorf("expected stale time 1m from env, got %v", cfg.Catalog.StaleTime)
	}
	if cfg.Auth.JWTSecret != "test-secret" {
		t.Errorf("expected secret from env, got %q", cfg.Auth.JWTSecret)
	}
	if cfg.Persistence.Backend != "none" {
		t.Errorf("expected in-memory only by default, got %q", cfg.Persistence.Backend)
	}
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shophub.yaml")
	content := `
auth:
  jwt_secret: from-file
persistence:
  backend: redis
redis:
  addr: cache:6379
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Persistence.Backend != "redis" || cfg.Redis.Addr != "cache:6379" {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	base := Config{
		Catalog:     CatalogConfig{Source: "remote"},
		Cache:       CacheConfig{Backend: "memory"},
		Persistence: PersistenceConfig{Backend: "none"},
		Auth:        AuthConfig{JWTSecret: "s"},
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "unknown source", mutate: func(c *Config) { c.Catalog.Source = "ftp" }, wantErr: true},
		{name: "unknown cache", mutate: func(c *Config) { c.Cache.Backend = "disk" }, wantErr: true},
		{name: "postgres without url", mutate: func(c *Config) { c.Persistence.Backend = "postgres" }, wantErr: true},
		{name: "missing secret", mutate: func(c *Config) { c.Auth.JWTSecret = "" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr != (err != nil) {
				t.Fatalf("wantErr %v, got %v", tt.wantErr, err)
			}
			if err != nil && !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
		})
	}
}
