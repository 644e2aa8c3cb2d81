package store

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

const appName = "easel"

// Store bundles the two persistence surfaces: the string key-value state
// store and the image blob store.
type Store struct {
	KV    *KV
	Blobs *BlobStore
}

// DefaultRoot returns the OS-appropriate data directory for the application.
// This follows platform conventions:
//   - Linux: $XDG_DATA_HOME/easel or $HOME/.local/share/easel
//   - macOS: $HOME/.local/share/easel (following XDG convention on macOS)
//   - Windows: %LOCALAPPDATA%\easel
func DefaultRoot() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "windows":
		// Windows: Use LOCALAPPDATA
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			// Fallback to USERPROFILE\AppData\Local if LOCALAPPDATA not set
			userProfile := os.Getenv("USERPROFILE")
			if userProfile == "" {
				return "", fmt.Errorf("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
			}
			baseDir = filepath.Join(userProfile, "AppData", "Local", appName)
		} else {
			baseDir = filepath.Join(localAppData, appName)
		}

	case "darwin":
		// macOS: Use $HOME/.local/share/easel (following XDG convention)
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		baseDir = filepath.Join(homeDir, ".local", "share", appName)

	default:
		// Linux and other Unix-like systems: Use XDG_DATA_HOME or $HOME/.local/share
		xdgDataHome := os.Getenv("XDG_DATA_HOME")
		if xdgDataHome != "" {
			baseDir = filepath.Join(xdgDataHome, appName)
		} else {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("cannot determine home directory: %w", err)
			}
			baseDir = filepath.Join(homeDir, ".local", "share", appName)
		}
	}

	return baseDir, nil
}

// Open opens the store rooted at dir, creating its directories if needed.
// State values live under dir/state, image blobs under dir/images.
func Open(dir string) (*Store, error) {
	stateDir := filepath.Join(dir, "state")
	imageDir := filepath.Join(dir, "images")

	// Create directories with user-only permissions (0700)
	for _, d := range []string{stateDir, imageDir} {
		if err := os.MkdirAll(d, 0700); err != nil {
			return nil, fmt.Errorf("failed to create store directory: %w", err)
		}
	}

	return &Store{
		KV:    NewKV(stateDir),
		Blobs: NewBlobStore(imageDir),
	}, nil
}

// OpenDefault opens the store at the platform default location.
func OpenDefault() (*Store, error) {
	root, err := DefaultRoot()
	if err != nil {
		return nil, err
	}
	return Open(root)
}
