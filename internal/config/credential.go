package config

import (
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/easelart/easel/internal/logging"
)

const (
	// TokenPlaceholder is the documented placeholder value. Anywhere it
	// appears (env or config file), it is treated as "not configured".
	TokenPlaceholder = "hf_your_token_here"

	// TokenEnvVar is the primary environment variable for the API token.
	TokenEnvVar = "EASEL_HF_TOKEN"

	// TokenEnvVarAlt is the conventional Hugging Face variable, honored
	// when the primary is unset.
	TokenEnvVarAlt = "HF_TOKEN"

	// EndpointEnvVar overrides the inference endpoint URL.
	EndpointEnvVar = "EASEL_ENDPOINT"
)

// ResolveToken returns the API token and the source it was resolved from:
// "flag", "env:EASEL_HF_TOKEN", "env:HF_TOKEN" or "config". An empty token
// means nothing usable is configured. Resolution order is override first,
// then environment, then the config file; placeholder values are skipped
// at every step.
func ResolveToken(override string) (token, source string) {
	if usable(override) {
		return strings.TrimSpace(override), "flag"
	}

	if v := os.Getenv(TokenEnvVar); usable(v) {
		return strings.TrimSpace(v), "env:" + TokenEnvVar
	}
	if v := os.Getenv(TokenEnvVarAlt); usable(v) {
		return strings.TrimSpace(v), "env:" + TokenEnvVarAlt
	}

	cfg, err := Load()
	if err != nil {
		// A broken config file must not block env-less runs entirely; the
		// caller will surface a missing-credential error with remediation.
		logging.Warn("Failed to load config while resolving token", zap.Error(err))
		return "", ""
	}
	if cfg.HasToken() {
		return cfg.Token, "config"
	}

	return "", ""
}

// ResolveEndpoint returns the inference endpoint URL override, or empty
// when none is configured. Resolution order matches ResolveToken: override,
// environment, config file.
func ResolveEndpoint(override string) string {
	if v := strings.TrimSpace(override); v != "" {
		return v
	}
	if v := strings.TrimSpace(os.Getenv(EndpointEnvVar)); v != "" {
		return v
	}
	cfg, err := Load()
	if err != nil {
		logging.Warn("Failed to load config while resolving endpoint", zap.Error(err))
		return ""
	}
	return strings.TrimSpace(cfg.Endpoint)
}

// MaskToken returns a display-safe form of a token, keeping just enough to
// recognize it.
func MaskToken(token string) string {
	if token == "" {
		return "(not set)"
	}
	if len(token) <= 10 {
		return "****"
	}
	return token[:5] + "..." + token[len(token)-4:]
}

// usable reports whether a candidate token value is non-empty and not the
// placeholder.
func usable(v string) bool {
	v = strings.TrimSpace(v)
	return v != "" && v != TokenPlaceholder
}
