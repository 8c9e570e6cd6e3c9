// Package config handles configuration loading and saving for gompei.
package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/diogo/gompei/internal/models"
)

// Environment variables that override file configuration
const (
	EnvEndpoint = "GOMPEI_ENDPOINT"
	EnvTheme    = "GOMPEI_THEME"
)

// MarkdownConfig configures markdown rendering options
type MarkdownConfig struct {
	Style            string `json:"style" toml:"style"`                           // "dark", "light", "notty" or path to JSON theme
	EnableEmoji      bool   `json:"enable_emoji" toml:"enable_emoji"`             // Convert :emoji: to unicode
	PreserveNewLines bool   `json:"preserve_newlines" toml:"preserve_newlines"`   // Preserve original line breaks
	TableWrap        bool   `json:"table_wrap" toml:"table_wrap"`                 // Enable word wrap in table cells
	InlineTableLinks bool   `json:"inline_table_links" toml:"inline_table_links"` // Render links inline in tables
}

// Config represents the user configuration
type Config struct {
	// Endpoint is the full URL of the answering service's chat route.
	Endpoint string `json:"endpoint" toml:"endpoint"`
	// RequestTimeoutSeconds bounds a single question. Zero means the request
	// runs until the service answers or the connection fails.
	RequestTimeoutSeconds int `json:"request_timeout_seconds" toml:"request_timeout_seconds"`
	// Verbose enables the debug log file and [verbose] lines in one-shot mode.
	Verbose         bool           `json:"verbose" toml:"verbose"`
	LogFile         string         `json:"log_file,omitempty" toml:"log_file,omitempty"`
	CopyToClipboard bool           `json:"copy_to_clipboard" toml:"copy_to_clipboard"`
	TUITheme        string         `json:"tui_theme,omitempty" toml:"tui_theme,omitempty"`
	Markdown        MarkdownConfig `json:"markdown,omitempty" toml:"markdown,omitempty"`
}

// DefaultMarkdownConfig returns the default markdown configuration
func DefaultMarkdownConfig() MarkdownConfig {
	return MarkdownConfig{
		Style:            "dark",
		EnableEmoji:      true,
		PreserveNewLines: true,
		TableWrap:        true,
		InlineTableLinks: false,
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Endpoint:              models.DefaultEndpoint,
		RequestTimeoutSeconds: 0,
		Verbose:               false,
		CopyToClipboard:       false,
		TUITheme:              "wpi",
		Markdown:              DefaultMarkdownConfig(),
	}
}

// RequestTimeout returns the configured request timeout (0 = none)
func (c Config) RequestTimeout() time.Duration {
	if c.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// ApplyEnvOverrides replaces file values with environment values when set
func (c *Config) ApplyEnvOverrides() {
	if v := strings.TrimSpace(os.Getenv(EnvEndpoint)); v != "" {
		c.Endpoint = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvTheme)); v != "" {
		c.TUITheme = v
	}
}

// Validate checks that the configuration can be used
func (c Config) Validate() error {
	if err := ValidateEndpoint(c.Endpoint); err != nil {
		return err
	}
	if c.RequestTimeoutSeconds < 0 {
		return fmt.Errorf("request_timeout_seconds cannot be negative: %d", c.RequestTimeoutSeconds)
	}
	return nil
}

// ValidateEndpoint checks that endpoint is an absolute http(s) URL
func ValidateEndpoint(endpoint string) error {
	if endpoint == "" {
		return fmt.Errorf("endpoint cannot be empty")
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("invalid endpoint %q: %w", endpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid endpoint %q: scheme must be http or https", endpoint)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid endpoint %q: missing host", endpoint)
	}
	return nil
}

// GetConfigDir returns the configuration directory path
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(home, ".gompei"), nil
}

// EnsureConfigDir creates the configuration directory if it doesn't exist
func EnsureConfigDir() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// GetConfigPath returns the path to the JSON config file
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.json"), nil
}

// GetTOMLConfigPath returns the path to the TOML config file
func GetTOMLConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// GetLogPath returns the log file path from config, defaulting to the config dir
func GetLogPath(cfg Config) (string, error) {
	if cfg.LogFile != "" {
		return cfg.LogFile, nil
	}
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "gompei.log"), nil
}

// ActiveConfigPath returns the file LoadConfig reads from, or "" when
// neither config file exists.
func ActiveConfigPath() string {
	if path, err := GetTOMLConfigPath(); err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			return path
		}
	}
	if path, err := GetConfigPath(); err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			return path
		}
	}
	return ""
}

// LoadConfig loads the configuration from disk. config.toml takes precedence
// over config.json; defaults are used when neither exists. Environment
// overrides are applied last.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	path := ActiveConfigPath()
	if path != "" {
		var err error
		if strings.HasSuffix(path, ".toml") {
			err = loadTOML(&cfg, path)
		} else {
			err = loadJSON(&cfg, path)
		}
		if err != nil {
			return fallbackConfig(), err
		}
	}

	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return fallbackConfig(), fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// fallbackConfig is used when the config file is unusable: the defaults
// with environment overrides, or the bare defaults if the overrides are invalid
func fallbackConfig() Config {
	cfg := DefaultConfig()
	cfg.ApplyEnvOverrides()
	if cfg.Validate() != nil {
		return DefaultConfig()
	}
	return cfg
}

func loadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return nil
}

func loadJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return nil
}

// SaveConfig saves the configuration to disk as JSON
func SaveConfig(cfg Config) error {
	configDir, err := EnsureConfigDir()
	if err != nil {
		return err
	}

	configPath := filepath.Join(configDir, "config.json")

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// SaveTOMLConfig saves the configuration to disk as TOML
func SaveTOMLConfig(cfg Config) error {
	configDir, err := EnsureConfigDir()
	if err != nil {
		return err
	}

	file, err := os.OpenFile(filepath.Join(configDir, "config.toml"), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}
