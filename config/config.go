// Package config loads runtime settings from .env, an optional planly.toml
// file and the process environment, in increasing order of precedence.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const DefaultFile = "planly.toml"

type Config struct {
	Server   Server   `toml:"server"`
	Database Database `toml:"database"`
	Auth     Auth     `toml:"auth"`
}

type Server struct {
	Port        string   `toml:"port"`
	GinMode     string   `toml:"gin-mode"`
	CORSOrigins []string `toml:"cors-origins"`
}

type Database struct {
	// Driver is sqlite, postgres or firestore.
	Driver string `toml:"driver"`
	URL    string `toml:"url"`
	// Credentials and ProjectID are used by the firestore driver only.
	Credentials string `toml:"credentials"`
	ProjectID   string `toml:"project-id"`
}

type Auth struct {
	AccessSecret      string   `toml:"access-secret"`
	RefreshSecret     string   `toml:"refresh-secret"`
	AccessTTL         Duration `toml:"access-ttl"`
	RefreshTTL        Duration `toml:"refresh-ttl"`
	AllowRegistration bool     `toml:"allow-registration"`
	BcryptCost        int      `toml:"bcrypt-cost"`
}

// Duration decodes TOML strings such as "15m" or "168h".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func Default() *Config {
	return &Config{
		Server: Server{Port: "8080", GinMode: "release"},
		Database: Database{
			Driver: "sqlite",
			URL:    "planly.db",
		},
		Auth: Auth{
			AccessTTL:         Duration{60 * time.Minute},
			RefreshTTL:        Duration{7 * 24 * time.Hour},
			AllowRegistration: true,
			BcryptCost:        12,
		},
	}
}

// Load reads .env when present, then path (DefaultFile when empty, silently
// skipped if missing), then environment overrides.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	case os.IsNotExist(err) && !explicit:
	default:
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	str("PORT", &c.Server.Port)
	str("GIN_MODE", &c.Server.GinMode)
	str("DATABASE_DRIVER", &c.Database.Driver)
	str("DATABASE_URL", &c.Database.URL)
	str("GOOGLE_APPLICATION_CREDENTIALS", &c.Database.Credentials)
	str("FIREBASE_PROJECT_ID", &c.Database.ProjectID)
	str("JWT_SECRET_KEY", &c.Auth.AccessSecret)
	str("JWT_REFRESH_SECRET_KEY", &c.Auth.RefreshSecret)

	if v, ok := lookup("CORS_ORIGINS"); ok && v != "" {
		c.Server.CORSOrigins = nil
		for _, origin := range strings.Split(v, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				c.Server.CORSOrigins = append(c.Server.CORSOrigins, origin)
			}
		}
	}
	for key, dst := range map[string]*Duration{
		"ACCESS_TOKEN_TTL":  &c.Auth.AccessTTL,
		"REFRESH_TOKEN_TTL": &c.Auth.RefreshTTL,
	} {
		if v, ok := lookup(key); ok && v != "" {
			if err := dst.UnmarshalText([]byte(v)); err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
		}
	}
	if v, ok := lookup("ALLOW_REGISTRATION"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("ALLOW_REGISTRATION: %w", err)
		}
		c.Auth.AllowRegistration = b
	}
	if v, ok := lookup("BCRYPT_COST"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("BCRYPT_COST: %w", err)
		}
		c.Auth.BcryptCost = n
	}
	return nil
}

// Validate checks the settings every command needs. Secrets are checked by
// RequireSecrets since only the server issues tokens.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "sqlite", "postgres":
		if c.Database.URL == "" {
			return fmt.Errorf("database url is required for driver %s", c.Database.Driver)
		}
	case "firestore":
		if c.Database.ProjectID == "" && c.Database.Credentials == "" {
			return fmt.Errorf("firestore needs FIREBASE_PROJECT_ID or GOOGLE_APPLICATION_CREDENTIALS")
		}
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	if c.Auth.BcryptCost < 4 || c.Auth.BcryptCost > 31 {
		return fmt.Errorf("bcrypt cost %d out of range 4..31", c.Auth.BcryptCost)
	}
	return nil
}

func (c *Config) RequireSecrets() error {
	if c.Auth.AccessSecret == "" || c.Auth.RefreshSecret == "" {
		return fmt.Errorf("JWT_SECRET_KEY and JWT_REFRESH_SECRET_KEY must be set")
	}
	return nil
}
