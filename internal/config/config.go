package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v2"
)

const (
	EnvDev  = "DEV"
	EnvProd = "PROD"

	defaultPort              = "4001"
	defaultDatabaseURL       = "duckdb://reviews_microservice.db"
	defaultVerificationURL   = "http://localhost:8080/v1/token/verify"
	defaultLogLevel          = "info"
	defaultLogFormat         = "json"
	defaultCORSAllowedOrigin = "*"
)

var (
	ErrInvalidEnvironment = errors.New("config: invalid environment")
	ErrUnsetServerToken   = errors.New("config: BOOKBNB_TOKEN is required outside DEV")
)

type Config struct {
	Env    string `yaml:"env"`
	Server struct {
		Port               string   `yaml:"port"`
		CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`
	} `yaml:"server"`
	Database struct {
		URL         string `yaml:"url"`
		AutoMigrate bool   `yaml:"auto_migrate"`
	} `yaml:"database"`
	Auth struct {
		TokenVerificationURL string `yaml:"token_verification_url"`
		ServerToken          string `yaml:"server_token"`
	} `yaml:"auth"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
}

// IsDev reports whether the service runs in local development mode, where
// inbound token verification is skipped.
func (c Config) IsDev() bool {
	return c.Env == EnvDev
}

// LoadConfig reads the optional YAML file at CONFIG_PATH, then applies
// environment overrides and defaults.
func LoadConfig() (Config, error) {
	var cfg Config

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("unmarshal config file: %w", err)
		}
	}

	overrideString(&cfg.Env, "ENV")
	overrideString(&cfg.Server.Port, "PORT")
	overrideString(&cfg.Database.URL, "DATABASE_URL")
	overrideString(&cfg.Auth.TokenVerificationURL, "TOKEN_VERIFICATION_URL")
	overrideString(&cfg.Auth.ServerToken, "BOOKBNB_TOKEN")
	overrideString(&cfg.Log.Level, "LOG_LEVEL")
	overrideString(&cfg.Log.Format, "LOG_FORMAT")

	if v := os.Getenv("AUTO_MIGRATE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse AUTO_MIGRATE: %w", err)
		}
		cfg.Database.AutoMigrate = b
	}
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		cfg.Server.CORSAllowedOrigins = splitList(v)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the environment name and that a server token is present
// whenever inbound requests are verified.
func (c Config) Validate() error {
	switch c.Env {
	case EnvDev, EnvProd:
	default:
		return fmt.Errorf("%w: %q (expected %s or %s)", ErrInvalidEnvironment, c.Env, EnvDev, EnvProd)
	}
	if !c.IsDev() && c.Auth.ServerToken == "" {
		return ErrUnsetServerToken
	}
	return nil
}

func applyDefaults(cfg *Config) {
	cfg.Env = strings.ToUpper(strings.TrimSpace(cfg.Env))
	if cfg.Env == "" {
		cfg.Env = EnvDev
	}
	if cfg.Server.Port == "" {
		cfg.Server.Port = defaultPort
	}
	if len(cfg.Server.CORSAllowedOrigins) == 0 {
		cfg.Server.CORSAllowedOrigins = []string{defaultCORSAllowedOrigin}
	}
	if cfg.Database.URL == "" {
		cfg.Database.URL = defaultDatabaseURL
	}
	if cfg.Auth.TokenVerificationURL == "" {
		cfg.Auth.TokenVerificationURL = defaultVerificationURL
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = defaultLogFormat
	}
}

func overrideString(dst *string, name string) {
	if v := os.Getenv(name); v != "" {
		*dst = v
	}
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
