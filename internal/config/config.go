// Package config loads application configuration from the environment.
package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"polishlang/internal/utils"
)

const envPrefix = "POLISHLANG"

const (
	SettingsBackendJSON   = "json"
	SettingsBackendSQLite = "sqlite"

	KeyBackendSettings = "settings"
	KeyBackendKeyring  = "keyring"
)

// Config holds the application configuration.
type Config struct {
	ConfigDir       string
	SettingsBackend string
	KeyBackend      string
	// KeyringBackends restricts which 99designs/keyring backends may be used
	// (e.g. "keychain", "secret-service", "wincred", "file"). Empty allows all.
	KeyringBackends []string
	KeyringPassword string
	StoreTimeout    time.Duration
	LogLevel        string
	LogFile         string
}

// SettingsPath is the location of the JSON settings document.
func (c *Config) SettingsPath() string {
	return filepath.Join(c.ConfigDir, "settings.json")
}

// DBPath is the location of the SQLite settings database.
func (c *Config) DBPath() string {
	return filepath.Join(c.ConfigDir, "settings.db")
}

// KeyringDir is where the file keyring backend stores encrypted items.
func (c *Config) KeyringDir() string {
	return filepath.Join(c.ConfigDir, "keys")
}

// Load reads configuration from a .env file (if any) and POLISHLANG_*
// environment variables. Defaults: POLISHLANG_CONFIG_DIR (see DefaultConfigDir),
// POLISHLANG_SETTINGS_BACKEND (json), POLISHLANG_KEY_BACKEND (settings),
// POLISHLANG_STORE_TIMEOUT (0, no timeout), POLISHLANG_LOG_LEVEL (see DefaultLogLevel).
func Load() (*Config, error) {
	if err := utils.LoadEnv(); err != nil {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("config_dir", DefaultConfigDir())
	v.SetDefault("settings_backend", SettingsBackendJSON)
	v.SetDefault("key_backend", KeyBackendSettings)
	v.SetDefault("keyring_backends", "")
	v.SetDefault("keyring_password", "")
	v.SetDefault("store_timeout", "0s")
	v.SetDefault("log_level", DefaultLogLevel())
	v.SetDefault("log_file", "")

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	settingsBackend := strings.ToLower(strings.TrimSpace(v.GetString("settings_backend")))
	switch settingsBackend {
	case SettingsBackendJSON, SettingsBackendSQLite:
	default:
		return nil, fmt.Errorf("%s_SETTINGS_BACKEND must be %q or %q, got %q",
			envPrefix, SettingsBackendJSON, SettingsBackendSQLite, settingsBackend)
	}

	keyBackend := strings.ToLower(strings.TrimSpace(v.GetString("key_backend")))
	switch keyBackend {
	case KeyBackendSettings, KeyBackendKeyring:
	default:
		return nil, fmt.Errorf("%s_KEY_BACKEND must be %q or %q, got %q",
			envPrefix, KeyBackendSettings, KeyBackendKeyring, keyBackend)
	}

	rawTimeout := strings.TrimSpace(v.GetString("store_timeout"))
	timeout, err := time.ParseDuration(rawTimeout)
	if err != nil {
		return nil, fmt.Errorf("%s_STORE_TIMEOUT has invalid duration %q: %w", envPrefix, rawTimeout, err)
	}
	if timeout < 0 {
		return nil, fmt.Errorf("%s_STORE_TIMEOUT must not be negative, got %s", envPrefix, timeout)
	}

	logLevel := strings.ToLower(strings.TrimSpace(v.GetString("log_level")))
	if _, err := ParseLogLevel(logLevel); err != nil {
		return nil, err
	}

	configDir := strings.TrimSpace(v.GetString("config_dir"))
	if configDir == "" {
		configDir = DefaultConfigDir()
	}

	var backends []string
	for _, b := range strings.Split(v.GetString("keyring_backends"), ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			backends = append(backends, b)
		}
	}

	return &Config{
		ConfigDir:       configDir,
		SettingsBackend: settingsBackend,
		KeyBackend:      keyBackend,
		KeyringBackends: backends,
		KeyringPassword: v.GetString("keyring_password"),
		StoreTimeout:    timeout,
		LogLevel:        logLevel,
		LogFile:         strings.TrimSpace(v.GetString("log_file")),
	}, nil
}
