// ABOUTME: XDG-based data and config directory resolution for gifbox.
// ABOUTME: Checks XDG_DATA_HOME / XDG_CONFIG_HOME, falls back to ~/.local/share/gifbox and ~/.config/gifbox.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultDataDir returns the directory for session databases and logs.
// It checks XDG_DATA_HOME first, then falls back to ~/.local/share/gifbox.
func DefaultDataDir() (string, error) {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "gifbox"), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return filepath.Join(home, ".local", "share", "gifbox"), nil
}

// DefaultConfigDir returns the directory holding config.yaml.
// It checks XDG_CONFIG_HOME first, then falls back to ~/.config/gifbox.
func DefaultConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "gifbox"), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return filepath.Join(home, ".config", "gifbox"), nil
}
