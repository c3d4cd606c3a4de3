// ABOUTME: Client configuration layered from defaults, a YAML file, a .env file, and GIFBOX_* variables.
// ABOUTME: Validate rejects unknown session backends, bad durations, and empty API URLs.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/2389-research/gifbox/session"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Configuration errors.
var (
	ErrEmptyAPIURL    = errors.New("GIFBOX_API_URL must not be empty")
	ErrInvalidTimeout = errors.New("GIFBOX_TIMEOUT must be a positive duration")
	ErrUnknownBackend = fmt.Errorf("GIFBOX_SESSION: %w", session.ErrUnknownBackend)
	errFileUnreadable = errors.New("config file unreadable")
)

// Defaults for fields that have them.
const (
	DefaultAPIURL         = "http://127.0.0.1:8080/api"
	DefaultSessionBackend = session.BackendSqlite
	DefaultTimeout        = 10 * time.Second
	DefaultStartPath      = "/ui"
	FileName              = "config.yaml"
)

// Config holds the client's runtime settings.
type Config struct {
	APIURL         string        `yaml:"api_url"`         // API root (GIFBOX_API_URL)
	DataDir        string        `yaml:"data_dir"`        // Session database directory (GIFBOX_DATA_DIR)
	SessionBackend string        `yaml:"session_backend"` // sqlite, bolt, or memory (GIFBOX_SESSION)
	LogFile        string        `yaml:"log_file"`        // Log destination (GIFBOX_LOG_FILE, default: <data>/gifbox.log)
	RequestTimeout time.Duration `yaml:"request_timeout"` // Per-request timeout (GIFBOX_TIMEOUT)
	StartPath      string        `yaml:"start_path"`      // Location opened at startup (GIFBOX_START_PATH)
}

// Defaults returns the built-in configuration.
func Defaults() (Config, error) {
	dataDir, err := DefaultDataDir()
	if err != nil {
		return Config{}, err
	}
	return Config{
		APIURL:         DefaultAPIURL,
		DataDir:        dataDir,
		SessionBackend: DefaultSessionBackend,
		RequestTimeout: DefaultTimeout,
		StartPath:      DefaultStartPath,
	}, nil
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// absent), and the variables found via lookup, then applies overrides in
// order and validates the result. An empty path uses config.yaml in the
// default config directory.
func Load(path string, lookup func(string) (string, bool), overrides ...func(*Config)) (Config, error) {
	cfg, err := Defaults()
	if err != nil {
		return Config{}, err
	}
	if path == "" {
		dir, err := DefaultConfigDir()
		if err != nil {
			return Config{}, err
		}
		path = filepath.Join(dir, FileName)
	}
	if err := cfg.LoadFile(path); err != nil {
		return Config{}, err
	}
	if err := cfg.ApplyEnv(lookup); err != nil {
		return Config{}, err
	}
	for _, o := range overrides {
		o(&cfg)
	}
	cfg.Finalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile overlays fields set in the YAML file at path. A missing file is
// not an error.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %v", errFileUnreadable, path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overlays GIFBOX_* variables found via lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}
	if v, ok := get("GIFBOX_API_URL"); ok {
		c.APIURL = v
	}
	if v, ok := get("GIFBOX_DATA_DIR"); ok {
		c.DataDir = v
	}
	if v, ok := get("GIFBOX_SESSION"); ok {
		c.SessionBackend = v
	}
	if v, ok := get("GIFBOX_LOG_FILE"); ok {
		c.LogFile = v
	}
	if v, ok := get("GIFBOX_START_PATH"); ok {
		c.StartPath = v
	}
	if v, ok := get("GIFBOX_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidTimeout, v)
		}
		c.RequestTimeout = d
	}
	return nil
}

// Finalize fills fields derived from others.
func (c *Config) Finalize() {
	if c.LogFile == "" && c.DataDir != "" {
		c.LogFile = filepath.Join(c.DataDir, "gifbox.log")
	}
	if c.StartPath == "" {
		c.StartPath = DefaultStartPath
	}
}

// Validate checks the configuration is usable.
func (c Config) Validate() error {
	if strings.TrimSpace(c.APIURL) == "" {
		return ErrEmptyAPIURL
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidTimeout, c.RequestTimeout)
	}
	switch c.SessionBackend {
	case session.BackendSqlite, session.BackendBolt, session.BackendMemory:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.SessionBackend)
	}
	return nil
}

// LoadDotEnv loads KEY=VALUE pairs from path into the environment without
// overriding variables that are already set. A missing file is ignored.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}
