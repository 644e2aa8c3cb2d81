// Package config provides user configuration management for easel.
//
// This package manages a YAML-based configuration file holding the Hugging
// Face API token and an optional inference endpoint override, and resolves
// the effective credential from flags, environment and the file. The
// configuration follows OS-specific conventions for storage location.
//
// # Configuration File Location
//
// The configuration file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/easel/config.yaml or $HOME/.config/easel/config.yaml
//   - macOS: $HOME/.config/easel/config.yaml
//   - Windows: %LOCALAPPDATA%\easel\config.yaml
//
// # Credential Resolution
//
// The effective API token is resolved in order: explicit override (command
// flag), EASEL_HF_TOKEN, HF_TOKEN, then the config file. The documented
// placeholder value "hf_your_token_here" counts as unset at every step, so
// a template config never authenticates by accident.
//
// # Usage Example
//
//	token, source := config.ResolveToken("")
//	if token == "" {
//	    // surface a missing-credential error with remediation
//	}
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cfg.Token = "hf_..."
//	if err := cfg.Save(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Thread Safety
//
// The global config uses sync.Once for safe initialization across
// goroutines. File operations are protected by a mutex to ensure atomic
// writes.
package config
