package config

import (
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestGetConfigDir(t *testing.T) {
	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}

	// Should not be empty
	if configDir == "" {
		t.Error("GetConfigDir() returned empty string")
	}

	// Should contain "easel"
	if !strings.Contains(configDir, "easel") {
		t.Errorf("GetConfigDir() = %v, should contain 'easel'", configDir)
	}

	// Platform-specific checks
	switch runtime.GOOS {
	case "windows":
		if !strings.Contains(configDir, "AppData") && !strings.Contains(configDir, "Local") {
			t.Errorf("Windows config dir should contain 'AppData' or 'Local', got: %v", configDir)
		}
	case "darwin", "linux":
		if !strings.Contains(configDir, ".config") {
			t.Errorf("Unix config dir should contain '.config', got: %v", configDir)
		}
	}

	t.Logf("Config directory: %s", configDir)
}

func TestGetConfigPath(t *testing.T) {
	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}

	// Should end with config.yaml
	if filepath.Base(configPath) != "config.yaml" {
		t.Errorf("GetConfigPath() should end with 'config.yaml', got: %v", configPath)
	}

	t.Logf("Config path: %s", configPath)
}

func TestNewConfig(t *testing.T) {
	cfg := NewConfig()

	if cfg.Version != 1 {
		t.Errorf("NewConfig().Version = %v, want 1", cfg.Version)
	}

	if cfg.Token != "" {
		t.Errorf("NewConfig().Token = %q, want empty", cfg.Token)
	}

	if cfg.HasToken() {
		t.Error("NewConfig().HasToken() should be false")
	}
}

func TestHasToken(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{"empty", "", false},
		{"placeholder", TokenPlaceholder, false},
		{"real token", "hf_abcdefghij1234", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Version: 1, Token: tt.token}
			if got := cfg.HasToken(); got != tt.want {
				t.Errorf("HasToken() with %q = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

func TestParseConfig(t *testing.T) {
	data := []byte(`# Easel Configuration File
version: 1
token: hf_testtoken123456
endpoint: https://example.com/models/custom
`)

	cfg, err := parseConfig(data)
	if err != nil {
		t.Fatalf("parseConfig() error = %v", err)
	}

	if cfg.Token != "hf_testtoken123456" {
		t.Errorf("Token = %q, want %q", cfg.Token, "hf_testtoken123456")
	}
	if cfg.Endpoint != "https://example.com/models/custom" {
		t.Errorf("Endpoint = %q, want %q", cfg.Endpoint, "https://example.com/models/custom")
	}
}

func TestParseConfigUnsupportedVersion(t *testing.T) {
	data := []byte("version: 2\ntoken: hf_x\n")

	if _, err := parseConfig(data); err == nil {
		t.Error("parseConfig() should reject version 2")
	}
}

func TestParseConfigInvalidYAML(t *testing.T) {
	data := []byte("version: [not closed\n")

	if _, err := parseConfig(data); err == nil {
		t.Error("parseConfig() should fail on invalid YAML")
	}
}

func TestConfigSaveLoadRoundTrip(t *testing.T) {
	isolateConfig(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	cfg.Token = "hf_roundtrip_token"
	cfg.Endpoint = "https://example.com/models/x"

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Reload()
	if err != nil {
		t.Fatalf("Reload() error = %v", err)
	}

	if loaded.Token != "hf_roundtrip_token" {
		t.Errorf("Reloaded token = %q, want %q", loaded.Token, "hf_roundtrip_token")
	}
	if loaded.Endpoint != "https://example.com/models/x" {
		t.Errorf("Reloaded endpoint = %q, want %q", loaded.Endpoint, "https://example.com/models/x")
	}
	if loaded.Version != 1 {
		t.Errorf("Reloaded version = %v, want 1", loaded.Version)
	}
}

// isolateConfig points the config directory at a temp location and resets
// the cached global so tests never touch the real user config.
func isolateConfig(t *testing.T) {
	t.Helper()

	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	if runtime.GOOS == "windows" {
		t.Setenv("LOCALAPPDATA", tmp)
	}

	if _, err := Reload(); err != nil {
		t.Fatalf("Reload() error = %v", err)
	}

	t.Cleanup(func() { _, _ = Reload() })
}

func BenchmarkGetConfigDir(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = GetConfigDir()
	}
}
