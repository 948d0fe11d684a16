package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "planly.toml")
	content := `
[server]
port = "9000"

[database]
driver = "postgres"
url = "postgres://localhost/planly"

[auth]
access-ttl = "15m"
allow-registration = false
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config failed: %v", err)
	}
	t.Setenv("PORT", "9100")
	t.Setenv("REFRESH_TOKEN_TTL", "24h")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != "9100" {
		t.Fatalf("expected env port override, got %q", cfg.Server.Port)
	}
	if cfg.Database.Driver != "postgres" || cfg.Database.URL != "postgres://localhost/planly" {
		t.Fatalf("unexpected database config: %+v", cfg.Database)
	}
	if cfg.Auth.AccessTTL.Duration != 15*time.Minute {
		t.Fatalf("expected access ttl 15m, got %s", cfg.Auth.AccessTTL)
	}
	if cfg.Auth.RefreshTTL.Duration != 24*time.Hour {
		t.Fatalf("expected refresh ttl 24h, got %s", cfg.Auth.RefreshTTL)
	}
	if cfg.Auth.AllowRegistration {
		t.Fatalf("expected registration disabled")
	}
	if len(cfg.Server.CORSOrigins) != 2 || cfg.Server.CORSOrigins[1] != "http://b.test" {
		t.Fatalf("unexpected cors origins: %v", cfg.Server.CORSOrigins)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatalf("expected error for missing explicit config file")
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"DATABASE_DRIVER": "firestore",
		"BCRYPT_COST":     "10",
	}
	cfg := Default()
	err := cfg.applyEnv(func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	})
	if err != nil {
		t.Fatalf("applyEnv failed: %v", err)
	}
	if cfg.Database.Driver != "firestore" || cfg.Auth.BcryptCost != 10 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected firestore without project to fail validation")
	}

	bad := Default()
	err = bad.applyEnv(func(key string) (string, bool) {
		if key == "ACCESS_TOKEN_TTL" {
			return "soon", true
		}
		return "", false
	})
	if err == nil {
		t.Fatalf("expected error for invalid duration")
	}
}

func TestRequireSecrets(t *testing.T) {
	cfg := Default()
	if err := cfg.RequireSecrets(); err == nil {
		t.Fatalf("expected missing secrets error")
	}
	cfg.Auth.AccessSecret, cfg.Auth.RefreshSecret = "a", "b"
	if err := cfg.RequireSecrets(); err != nil {
		t.Fatalf("RequireSecrets failed: %v", err)
	}
}
