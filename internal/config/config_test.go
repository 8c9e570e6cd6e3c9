package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/diogo/gompei/internal/models"
)

func setupHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvEndpoint, "")
	t.Setenv(EnvTheme, "")
	return home
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Endpoint != models.DefaultEndpoint {
		t.Errorf("Expected default endpoint %q, got %q", models.DefaultEndpoint, cfg.Endpoint)
	}
	if cfg.RequestTimeout() != 0 {
		t.Errorf("Expected no request timeout by default, got %v", cfg.RequestTimeout())
	}
	if cfg.Verbose {
		t.Error("Expected Verbose to be false")
	}
	if cfg.TUITheme != "wpi" {
		t.Errorf("Expected theme wpi, got %q", cfg.TUITheme)
	}
	if cfg.Markdown.Style != "dark" {
		t.Errorf("Expected markdown style dark, got %q", cfg.Markdown.Style)
	}
}

func TestRequestTimeout(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RequestTimeoutSeconds = 30
	if cfg.RequestTimeout() != 30*time.Second {
		t.Errorf("RequestTimeout() = %v, want 30s", cfg.RequestTimeout())
	}
	cfg.RequestTimeoutSeconds = -5
	if cfg.RequestTimeout() != 0 {
		t.Errorf("RequestTimeout() = %v, want 0 for negative", cfg.RequestTimeout())
	}
}

func TestValidateEndpoint(t *testing.T) {
	tests := []struct {
		endpoint string
		wantErr  bool
	}{
		{"http://localhost:8000/chat", false},
		{"https://chat.example.edu/chat", false},
		{"", true},
		{"localhost:8000/chat", true},
		{"ftp://localhost/chat", true},
		{"http:///chat", true},
	}

	for _, tt := range tests {
		t.Run(tt.endpoint, func(t *testing.T) {
			err := ValidateEndpoint(tt.endpoint)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateEndpoint(%q) error = %v, wantErr %v", tt.endpoint, err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfig_FileNotExists(t *testing.T) {
	setupHome(t)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() returned error: %v", err)
	}
	if cfg.Endpoint != models.DefaultEndpoint {
		t.Errorf("Expected default endpoint, got %q", cfg.Endpoint)
	}
	if ActiveConfigPath() != "" {
		t.Errorf("Expected no active config path, got %q", ActiveConfigPath())
	}
}

func TestSaveAndLoadJSON(t *testing.T) {
	setupHome(t)

	cfg := DefaultConfig()
	cfg.Endpoint = "http://127.0.0.1:9000/chat"
	cfg.Verbose = true
	cfg.TUITheme = "nord"

	if err := SaveConfig(cfg); err != nil {
		t.Fatalf("SaveConfig() returned error: %v", err)
	}

	path, _ := GetConfigPath()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("config file mode = %v, want 0600", info.Mode().Perm())
	}

	loaded, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() returned error: %v", err)
	}
	if loaded.Endpoint != cfg.Endpoint || !loaded.Verbose || loaded.TUITheme != "nord" {
		t.Errorf("LoadConfig() = %+v, want %+v", loaded, cfg)
	}
}

func TestLoadConfig_TOMLTakesPrecedence(t *testing.T) {
	setupHome(t)

	jsonCfg := DefaultConfig()
	jsonCfg.Endpoint = "http://json.local/chat"
	if err := SaveConfig(jsonCfg); err != nil {
		t.Fatalf("SaveConfig() returned error: %v", err)
	}

	tomlPath, _ := GetTOMLConfigPath()
	content := "endpoint = \"http://toml.local/chat\"\ntui_theme = \"dracula\"\n\n[markdown]\nstyle = \"light\"\n"
	if err := os.WriteFile(tomlPath, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write toml: %v", err)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() returned error: %v", err)
	}
	if cfg.Endpoint != "http://toml.local/chat" {
		t.Errorf("Endpoint = %q, want TOML value", cfg.Endpoint)
	}
	if cfg.TUITheme != "dracula" {
		t.Errorf("TUITheme = %q, want dracula", cfg.TUITheme)
	}
	if cfg.Markdown.Style != "light" {
		t.Errorf("Markdown.Style = %q, want light", cfg.Markdown.Style)
	}
	if ActiveConfigPath() != tomlPath {
		t.Errorf("ActiveConfigPath() = %q, want %q", ActiveConfigPath(), tomlPath)
	}
}

func TestSaveTOMLConfig(t *testing.T) {
	setupHome(t)

	cfg := DefaultConfig()
	cfg.RequestTimeoutSeconds = 45
	if err := SaveTOMLConfig(cfg); err != nil {
		t.Fatalf("SaveTOMLConfig() returned error: %v", err)
	}

	loaded, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() returned error: %v", err)
	}
	if loaded.RequestTimeoutSeconds != 45 {
		t.Errorf("RequestTimeoutSeconds = %d, want 45", loaded.RequestTimeoutSeconds)
	}
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	home := setupHome(t)

	dir := filepath.Join(home, ".gompei")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig()
	if err == nil {
		t.Fatal("Expected parse error")
	}
	if cfg.Endpoint != models.DefaultEndpoint {
		t.Errorf("Expected defaults on parse error, got %q", cfg.Endpoint)
	}
}

func TestLoadConfig_InvalidEndpoint(t *testing.T) {
	setupHome(t)

	cfg := DefaultConfig()
	cfg.Endpoint = "not-a-url"
	if err := SaveConfig(cfg); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadConfig()
	if err == nil {
		t.Fatal("Expected validation error")
	}
	if loaded.Endpoint != models.DefaultEndpoint {
		t.Errorf("Expected defaults on validation error, got %q", loaded.Endpoint)
	}
}

func TestLoadConfig_InvalidFileKeepsEnvOverrides(t *testing.T) {
	tests := []struct {
		name         string
		envEndpoint  string
		wantEndpoint string
	}{
		{"valid env endpoint", "http://env.local:8000/chat", "http://env.local:8000/chat"},
		{"invalid env endpoint", "ftp://env.local/chat", models.DefaultEndpoint},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupHome(t)

			cfg := DefaultConfig()
			cfg.RequestTimeoutSeconds = -1
			if err := SaveConfig(cfg); err != nil {
				t.Fatal(err)
			}

			t.Setenv(EnvEndpoint, tt.envEndpoint)
			t.Setenv(EnvTheme, "nord")

			loaded, err := LoadConfig()
			if err == nil {
				t.Fatal("Expected validation error")
			}
			if loaded.Endpoint != tt.wantEndpoint {
				t.Errorf("Endpoint = %q, want %q", loaded.Endpoint, tt.wantEndpoint)
			}
			if loaded.RequestTimeoutSeconds != 0 {
				t.Errorf("RequestTimeoutSeconds = %d, want default", loaded.RequestTimeoutSeconds)
			}
			if tt.wantEndpoint != models.DefaultEndpoint && loaded.TUITheme != "nord" {
				t.Errorf("TUITheme = %q, want env override", loaded.TUITheme)
			}
		})
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	setupHome(t)
	t.Setenv(EnvEndpoint, "http://env.local:8000/chat")
	t.Setenv(EnvTheme, "catppuccin")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() returned error: %v", err)
	}
	if cfg.Endpoint != "http://env.local:8000/chat" {
		t.Errorf("Endpoint = %q, want env override", cfg.Endpoint)
	}
	if cfg.TUITheme != "catppuccin" {
		t.Errorf("TUITheme = %q, want env override", cfg.TUITheme)
	}
}

func TestGetLogPath(t *testing.T) {
	home := setupHome(t)

	path, err := GetLogPath(DefaultConfig())
	if err != nil {
		t.Fatalf("GetLogPath() returned error: %v", err)
	}
	if path != filepath.Join(home, ".gompei", "gompei.log") {
		t.Errorf("GetLogPath() = %q", path)
	}

	cfg := DefaultConfig()
	cfg.LogFile = "/tmp/custom.log"
	path, _ = GetLogPath(cfg)
	if path != "/tmp/custom.log" {
		t.Errorf("GetLogPath() = %q, want custom path", path)
	}
}
