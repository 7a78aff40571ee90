package services

import (
	"fmt"

	"github.com/wailsapp/wails/v2/pkg/logger"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"polishlang/internal/config"
	"polishlang/internal/database"
	"polishlang/internal/repositories"
)

// Services aggregates the application services and the stores chosen by
// configuration.
type Services struct {
	Settings     SettingsService
	Catalog      ProviderCatalog
	SettingsRepo repositories.SettingsRepository
	Keys         repositories.ProviderKeyRepository
	// Keyring is set only when credentials live in the OS keyring.
	Keyring *KeyringService

	db *gorm.DB
}

// NewServices constructs the service container for cfg.
func NewServices(cfg *config.Config, log logger.Logger) (*Services, error) {
	catalog, err := NewProviderCatalog()
	if err != nil {
		return nil, err
	}

	svc := &Services{Catalog: catalog}

	switch cfg.SettingsBackend {
	case config.SettingsBackendSQLite:
		level := gormlogger.Warn
		if cfg.LogLevel == "debug" || cfg.LogLevel == "trace" {
			level = gormlogger.Info
		}
		db, err := database.Init(database.Config{Path: cfg.DBPath(), LogLevel: level, Logger: log})
		if err != nil {
			return nil, fmt.Errorf("open settings database: %w", err)
		}
		svc.db = db
		svc.SettingsRepo = repositories.NewSettingsRepository(db)
	default:
		svc.SettingsRepo = repositories.NewSettingsFileRepository(cfg.SettingsPath())
	}

	switch cfg.KeyBackend {
	case config.KeyBackendKeyring:
		ring, err := OpenKeyring(KeyringConfig{
			AllowedBackends: cfg.KeyringBackends,
			FileDir:         cfg.KeyringDir(),
			FilePassword:    cfg.KeyringPassword,
		})
		if err != nil {
			svc.Close()
			return nil, err
		}
		svc.Keyring = NewKeyringService(ring)
		svc.Keys = svc.Keyring
	default:
		svc.Keys = repositories.NewSettingsKeyRepository(svc.SettingsRepo)
	}

	svc.Settings = NewSettingsService(svc.SettingsRepo, svc.Keys, catalog, SettingsServiceOptions{
		Timeout: cfg.StoreTimeout,
		Logger:  log,
	})
	return svc, nil
}

// Close releases the settings database, if one was opened.
func (s *Services) Close() error {
	if s.db == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	s.db = nil
	return sqlDB.Close()
}
