package services

import (
	"context"
	"fmt"

	"github.com/wailsapp/wails/v2/pkg/logger"

	"polishlang/internal/models"
	"polishlang/internal/repositories"
)

// SettingsLoader reads the persisted settings, migrates the legacy
// single-key shape and fills defaults for absent fields. It never writes.
type SettingsLoader struct {
	settings repositories.SettingsRepository
	catalog  ProviderCatalog
	log      logger.Logger
}

func NewSettingsLoader(settings repositories.SettingsRepository, catalog ProviderCatalog, log logger.Logger) *SettingsLoader {
	return &SettingsLoader{settings: settings, catalog: catalog, log: orDefaultLogger(log)}
}

// Defaults returns the first-run settings.
func (l *SettingsLoader) Defaults() *models.Settings {
	p := l.catalog.DefaultProvider()
	return &models.Settings{
		Shortcut:             models.DefaultShortcut,
		TranslateShortcut:    models.DefaultTranslateShortcut,
		Provider:             p.ID,
		APIKeys:              map[string]string{},
		Model:                p.DefaultModel(),
		BaseURL:              p.DefaultBaseURL,
		Prompt:               "",
		SoundEnabled:         models.DefaultSoundEnabled,
		NotificationsEnabled: models.DefaultNotifications,
	}
}

// Initialize loads the settings and seeds a credential cache from them.
// A store failure is returned wrapped in ErrLoadFailed; only an absent
// record yields defaults.
func (l *SettingsLoader) Initialize(ctx context.Context) (*models.Settings, *CredentialCache, error) {
	record, err := l.settings.Load(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	if record == nil {
		l.log.Info("no saved settings found, using defaults")
		return l.Defaults(), NewCredentialCache(), nil
	}

	cache := NewCredentialCacheFrom(record.APIKeys)
	settings := l.normalize(record)

	if record.APIKey != nil && *record.APIKey != "" && cache.Get(settings.Provider) == "" {
		cache.Set(settings.Provider, *record.APIKey)
		l.log.Info(fmt.Sprintf("migrated legacy API key to provider %s", settings.Provider))
	}
	settings.APIKeys = cache.Snapshot()

	return settings, cache, nil
}

func (l *SettingsLoader) normalize(record *models.SettingsRecord) *models.Settings {
	s := l.Defaults()

	if record.Shortcut != "" {
		s.Shortcut = record.Shortcut
	}
	if record.TranslateShortcut != nil {
		s.TranslateShortcut = *record.TranslateShortcut
	}
	if record.SoundEnabled != nil {
		s.SoundEnabled = *record.SoundEnabled
	}
	if record.NotificationsEnabled != nil {
		s.NotificationsEnabled = *record.NotificationsEnabled
	}
	s.Prompt = record.Prompt

	provider, ok := l.catalog.GetProvider(record.Provider)
	if !ok {
		provider = l.catalog.DefaultProvider()
		if record.Provider != "" {
			l.notice(s, fmt.Sprintf("Unknown provider %q in saved settings, using %s", record.Provider, provider.ID))
		}
	}
	s.Provider = provider.ID

	s.Model = record.Model
	if !provider.HasModel(s.Model) {
		if s.Model != "" {
			l.notice(s, fmt.Sprintf("Model %q is not offered by %s, using %s", s.Model, provider.ID, provider.DefaultModel()))
		}
		s.Model = provider.DefaultModel()
	}

	s.BaseURL = record.BaseURL
	if s.BaseURL == "" {
		s.BaseURL = provider.DefaultBaseURL
	}

	return s
}

func (l *SettingsLoader) notice(s *models.Settings, message string) {
	l.log.Warning(message)
	s.Notices = append(s.Notices, message)
}
