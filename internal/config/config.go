package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"slices"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Session store drivers.
const (
	DriverMemory = "memory"
	DriverRedis  = "redis"
	DriverValkey = "valkey"
)

// Config holds the finsite API configuration.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Session  SessionConfig  `yaml:"session"`
	Dialogue DialogueConfig `yaml:"dialogue"`
	Search   SearchConfig   `yaml:"search"`
	Catalog  CatalogConfig  `yaml:"catalog"`
	Auth     AuthConfig     `yaml:"auth"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// AuthConfig holds API authentication settings.
type AuthConfig struct {
	APIKeys []string `yaml:"api_keys"`
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Port            int `yaml:"port"`
	ReadTimeoutSec  int `yaml:"read_timeout_sec"`
	WriteTimeoutSec int `yaml:"write_timeout_sec"`
	ShutdownSec     int `yaml:"shutdown_timeout_sec"`
}

// SessionConfig holds the session store settings.
type SessionConfig struct {
	Driver           string   `yaml:"driver"` // memory, redis, valkey (default: memory)
	Addrs            []string `yaml:"addrs"`
	Username         string   `yaml:"username"`
	Password         string   `yaml:"password"`
	DB               int      `yaml:"db"`
	TTLSec           int      `yaml:"ttl_sec"`
	ReadinessTimeout int      `yaml:"readiness_timeout_sec"`
	KeyPrefix        string   `yaml:"key_prefix"`
}

// TTL returns the session lifetime.
func (s SessionConfig) TTL() time.Duration { return time.Duration(s.TTLSec) * time.Second }

// DialogueConfig holds the scripted advisor pacing.
type DialogueConfig struct {
	TypingDelayMs int `yaml:"typing_delay_ms"`
	SubmitDelayMs int `yaml:"submit_delay_ms"`
	VisibleRoles  int `yaml:"visible_roles"`
}

// TypingDelay returns the simulated typing delay.
func (d DialogueConfig) TypingDelay() time.Duration {
	return time.Duration(d.TypingDelayMs) * time.Millisecond
}

// SubmitDelay returns the simulated demo submission delay.
func (d DialogueConfig) SubmitDelay() time.Duration {
	return time.Duration(d.SubmitDelayMs) * time.Millisecond
}

// SearchConfig holds search settings.
type SearchConfig struct {
	SuggestLimit int `yaml:"suggest_limit"`
}

// CatalogConfig points at an external catalog document. Empty uses the embedded one.
type CatalogConfig struct {
	Path string `yaml:"path"`
}

// Load reads configuration from a YAML file by environment name (local, dev, prod).
func Load(env string) (Config, error) {
	configPath := findConfigPath(env)

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}
	return Parse(data)
}

// Parse expands env variables in data, decodes it, applies defaults and validates.
func Parse(data []byte) (Config, error) {
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// MustLoad loads configuration or panics.
func MustLoad(env string) Config {
	cfg, err := Load(env)
	if err != nil {
		panic(err)
	}
	return cfg
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.HTTP.ReadTimeoutSec <= 0 {
		c.HTTP.ReadTimeoutSec = 10
	}
	if c.HTTP.WriteTimeoutSec <= 0 {
		c.HTTP.WriteTimeoutSec = 15
	}
	if c.HTTP.ShutdownSec <= 0 {
		c.HTTP.ShutdownSec = 10
	}
	if c.Session.Driver == "" {
		c.Session.Driver = DriverMemory
	}
	if c.Session.TTLSec <= 0 {
		c.Session.TTLSec = 1800
	}
	if c.Session.ReadinessTimeout <= 0 {
		c.Session.ReadinessTimeout = 10
	}
	if c.Session.KeyPrefix == "" {
		c.Session.KeyPrefix = "finsite"
	}
	if c.Dialogue.VisibleRoles <= 0 {
		c.Dialogue.VisibleRoles = 6
	}
	if c.Search.SuggestLimit <= 0 {
		c.Search.SuggestLimit = 8
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port must be between 1 and 65535, got %d", c.HTTP.Port)
	}
	drivers := []string{DriverMemory, DriverRedis, DriverValkey}
	if !slices.Contains(drivers, c.Session.Driver) {
		return fmt.Errorf("session.driver must be one of %v, got %q", drivers, c.Session.Driver)
	}
	if c.Session.Driver != DriverMemory && len(c.Session.Addrs) == 0 {
		return fmt.Errorf("session.addrs is required for driver %q", c.Session.Driver)
	}
	if c.Dialogue.TypingDelayMs < 0 || c.Dialogue.SubmitDelayMs < 0 {
		return fmt.Errorf("dialogue delays must not be negative")
	}
	return nil
}

// findConfigPath locates the config file.
func findConfigPath(env string) string {
	filename := fmt.Sprintf("%s.yaml", env)

	// 1. Check ./config/
	if path := filepath.Join("config", filename); fileExists(path) {
		return path
	}

	// 2. Check relative to the source file
	_, b, _, _ := runtime.Caller(0)
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(b))) // internal/config -> project root
	if path := filepath.Join(projectRoot, "config", filename); fileExists(path) {
		return path
	}

	return filepath.Join("config", filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1])
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
