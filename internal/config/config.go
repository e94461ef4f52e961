// Package config loads settings for the console, the CLI and the reference
// backend. Sources are applied in order: built-in defaults, an optional YAML
// file, then environment variables (a .env file is read first if present).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultListenAddr    = ":8080"
	DefaultAPIListenAddr = ":8081"
	DefaultAPIBaseURL    = "http://localhost:8081"
	DefaultDBPath        = "employees.db"
	DefaultStatusTTL     = 3 * time.Second
)

// Config is the full application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	API      APIConfig      `yaml:"api"`
	Database DatabaseConfig `yaml:"database"`
	Status   StatusConfig   `yaml:"status"`
}

// ServerConfig is the web console listener.
type ServerConfig struct {
	ListenAddr string `yaml:"listen_addr"`
}

// APIConfig describes the REST backend the console talks to, and where the
// reference backend listens when it is the one being run.
type APIConfig struct {
	BaseURL    string        `yaml:"base_url"`
	ListenAddr string        `yaml:"listen_addr"`
	Timeout    time.Duration `yaml:"-"`
	TimeoutRaw string        `yaml:"timeout"`
}

// DatabaseConfig is the SQLite file used by the reference backend.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// StatusConfig controls transient notifications.
type StatusConfig struct {
	TTL    time.Duration `yaml:"-"`
	TTLRaw string        `yaml:"ttl"`
}

// Default returns the configuration used when nothing else is provided.
func Default() *Config {
	return &Config{
		Server:   ServerConfig{ListenAddr: DefaultListenAddr},
		API:      APIConfig{BaseURL: DefaultAPIBaseURL, ListenAddr: DefaultAPIListenAddr},
		Database: DatabaseConfig{Path: DefaultDBPath},
		Status:   StatusConfig{TTL: DefaultStatusTTL},
	}
}

// Load reads .env (if any), the YAML file at path (if path is non-empty) and
// the environment, in that order of increasing precedence.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("error loading .env file", "err", err)
	}

	cfg := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("config: parse yaml: %w", err)
		}
	}

	cfg.applyEnv(os.Getenv)

	if err := cfg.validateAndNormalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// EffectivePath picks the config file: the flag value, then CONFIG_PATH.
// An empty result means "no file".
func EffectivePath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv("CONFIG_PATH")
}

func (c *Config) applyEnv(getenv func(string) string) {
	if v := getenv("PORT"); v != "" {
		c.Server.ListenAddr = ":" + strings.TrimPrefix(v, ":")
	}
	if v := getenv("API_PORT"); v != "" {
		c.API.ListenAddr = ":" + strings.TrimPrefix(v, ":")
	}
	if v := getenv("API_BASE_URL"); v != "" {
		c.API.BaseURL = v
	}
	if v := getenv("API_TIMEOUT"); v != "" {
		c.API.TimeoutRaw = v
	}
	if v := getenv("DB_PATH"); v != "" {
		c.Database.Path = v
	}
	if v := getenv("STATUS_TTL"); v != "" {
		c.Status.TTLRaw = v
	}
}

func (c *Config) validateAndNormalize() error {
	if c.Server.ListenAddr == "" {
		return fmt.Errorf("config: server.listen_addr must be set")
	}
	if c.API.ListenAddr == "" {
		return fmt.Errorf("config: api.listen_addr must be set")
	}
	if c.API.BaseURL == "" {
		return fmt.Errorf("config: api.base_url must be set")
	}
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("config: api.base_url %q is not an absolute URL", c.API.BaseURL)
	}
	c.API.BaseURL = strings.TrimRight(c.API.BaseURL, "/")

	timeout, err := parseDurationAllowEmpty(c.API.TimeoutRaw)
	if err != nil {
		return fmt.Errorf("config: api.timeout: %w", err)
	}
	if c.API.TimeoutRaw != "" {
		c.API.Timeout = timeout
	}

	if c.Database.Path == "" {
		c.Database.Path = DefaultDBPath
	}

	ttl, err := parseDurationAllowEmpty(c.Status.TTLRaw)
	if err != nil {
		return fmt.Errorf("config: status.ttl: %w", err)
	}
	if c.Status.TTLRaw != "" {
		c.Status.TTL = ttl
	}
	if c.Status.TTL <= 0 {
		return fmt.Errorf("config: status.ttl must be positive")
	}
	return nil
}

func parseDurationAllowEmpty(raw string) (time.Duration, error) {
	if raw == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	return d, nil
}
