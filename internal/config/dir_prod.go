//go:build prod

package config

import (
	"log"
	"os"
	"path/filepath"
)

// DefaultConfigDir returns the settings directory for production builds,
// inside the user's config directory.
func DefaultConfigDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		log.Printf("Warning: Failed to get user config dir: %v. Using fallback.", err)
		return "polish-language"
	}
	return filepath.Join(configDir, "polish-language")
}

func IsDevelopment() bool {
	return false
}
