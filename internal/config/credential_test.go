package config

import "testing"

func TestResolveTokenFromFlag(t *testing.T) {
	isolateConfig(t)
	t.Setenv(TokenEnvVar, "hf_env_primary")

	token, source := ResolveToken("hf_flag_value")
	if token != "hf_flag_value" {
		t.Errorf("ResolveToken() token = %q, want %q", token, "hf_flag_value")
	}
	if source != "flag" {
		t.Errorf("ResolveToken() source = %q, want %q", source, "flag")
	}
}

func TestResolveTokenEnvOrder(t *testing.T) {
	isolateConfig(t)
	t.Setenv(TokenEnvVar, "hf_env_primary")
	t.Setenv(TokenEnvVarAlt, "hf_env_alt")

	token, source := ResolveToken("")
	if token != "hf_env_primary" {
		t.Errorf("ResolveToken() token = %q, want primary env value", token)
	}
	if source != "env:"+TokenEnvVar {
		t.Errorf("ResolveToken() source = %q, want %q", source, "env:"+TokenEnvVar)
	}

	// With the primary unset, the conventional HF variable is used.
	t.Setenv(TokenEnvVar, "")
	token, source = ResolveToken("")
	if token != "hf_env_alt" {
		t.Errorf("ResolveToken() token = %q, want alt env value", token)
	}
	if source != "env:"+TokenEnvVarAlt {
		t.Errorf("ResolveToken() source = %q, want %q", source, "env:"+TokenEnvVarAlt)
	}
}

func TestResolveTokenPlaceholderSkipped(t *testing.T) {
	isolateConfig(t)
	t.Setenv(TokenEnvVar, TokenPlaceholder)
	t.Setenv(TokenEnvVarAlt, "")

	token, source := ResolveToken(TokenPlaceholder)
	if token != "" {
		t.Errorf("ResolveToken() token = %q, want empty for placeholder values", token)
	}
	if source != "" {
		t.Errorf("ResolveToken() source = %q, want empty", source)
	}
}

func TestResolveTokenFromConfigFile(t *testing.T) {
	isolateConfig(t)
	t.Setenv(TokenEnvVar, "")
	t.Setenv(TokenEnvVarAlt, "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	cfg.Token = "hf_from_file"
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if _, err := Reload(); err != nil {
		t.Fatalf("Reload() error = %v", err)
	}

	token, source := ResolveToken("")
	if token != "hf_from_file" {
		t.Errorf("ResolveToken() token = %q, want %q", token, "hf_from_file")
	}
	if source != "config" {
		t.Errorf("ResolveToken() source = %q, want %q", source, "config")
	}
}

func TestResolveTokenTrimsWhitespace(t *testing.T) {
	isolateConfig(t)

	token, _ := ResolveToken("  hf_padded  ")
	if token != "hf_padded" {
		t.Errorf("ResolveToken() token = %q, want trimmed value", token)
	}
}

func TestResolveEndpoint(t *testing.T) {
	isolateConfig(t)
	t.Setenv(EndpointEnvVar, "")

	if got := ResolveEndpoint(""); got != "" {
		t.Errorf("ResolveEndpoint() = %q, want empty with nothing configured", got)
	}

	t.Setenv(EndpointEnvVar, "https://env.example.com/models/m")
	if got := ResolveEndpoint(""); got != "https://env.example.com/models/m" {
		t.Errorf("ResolveEndpoint() = %q, want env value", got)
	}

	// Explicit override wins over environment.
	if got := ResolveEndpoint("https://flag.example.com/models/m"); got != "https://flag.example.com/models/m" {
		t.Errorf("ResolveEndpoint() = %q, want override value", got)
	}
}

func TestMaskToken(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{"", "(not set)"},
		{"short", "****"},
		{"hf_abcdefghijklmnop", "hf_ab...mnop"},
	}

	for _, tt := range tests {
		if got := MaskToken(tt.token); got != tt.want {
			t.Errorf("MaskToken(%q) = %q, want %q", tt.token, got, tt.want)
		}
	}
}
