package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
app:
  port: 9090
  gin_mode: test
identity:
  base_url: https://identity.example.com/v1
  api_key: file-key
  timeout: 5s
mongo:
  uri: mongodb://localhost:27017
  database: gridly
redis:
  addr: localhost:6379
  db: 2
  session_key: authToken
`)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.Port)
	}
	if cfg.IdentityBaseURL != "https://identity.example.com/v1" {
		t.Errorf("unexpected identity base url %s", cfg.IdentityBaseURL)
	}
	if cfg.IdentityTimeout != 5*time.Second {
		t.Errorf("expected 5s timeout, got %v", cfg.IdentityTimeout)
	}
	if cfg.RedisDB != 2 {
		t.Errorf("expected redis db 2, got %d", cfg.RedisDB)
	}
	if cfg.SessionKey != "authToken" {
		t.Errorf("expected session key authToken, got %s", cfg.SessionKey)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, `
app:
  port: 9090
identity:
  base_url: https://identity.example.com/v1
  api_key: file-key
  timeout: 5s
mongo:
  uri: mongodb://localhost:27017
  database: gridly
`)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("IDENTITY_API_KEY", "env-key")
	t.Setenv("PORT", "3000")
	t.Setenv("REDIS_DB", "7")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.IdentityAPIKey != "env-key" {
		t.Errorf("expected env override for api key, got %s", cfg.IdentityAPIKey)
	}
	if cfg.Port != "3000" {
		t.Errorf("expected env override for port, got %s", cfg.Port)
	}
	if cfg.RedisDB != 7 {
		t.Errorf("expected env override for redis db, got %d", cfg.RedisDB)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "nope.yml"))

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoad_BadTimeout(t *testing.T) {
	path := writeConfig(t, `
identity:
  timeout: soon
`)
	t.Setenv("CONFIG_PATH", path)

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unparsable timeout")
	}
}
