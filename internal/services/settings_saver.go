package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/wailsapp/wails/v2/pkg/logger"

	"polishlang/internal/models"
	"polishlang/internal/repositories"
)

// SettingsSaver persists the settings form together with every credential
// entered during the session.
type SettingsSaver struct {
	settings repositories.SettingsRepository
	keys     repositories.ProviderKeyRepository
	catalog  ProviderCatalog
	log      logger.Logger
}

func NewSettingsSaver(settings repositories.SettingsRepository, keys repositories.ProviderKeyRepository, catalog ProviderCatalog, log logger.Logger) *SettingsSaver {
	return &SettingsSaver{settings: settings, keys: keys, catalog: catalog, log: orDefaultLogger(log)}
}

// Save writes a full snapshot built from state and cache. The displayed
// credential is committed to the cache only once the snapshot is stored, so
// a failed save leaves the cache exactly as it was.
func (s *SettingsSaver) Save(ctx context.Context, state models.FormState, cache *CredentialCache) error {
	if err := s.validate(state); err != nil {
		return fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}

	if state.APIKey != "" {
		if err := s.keys.SetProviderKey(ctx, state.Provider, state.APIKey); err != nil {
			s.log.Warning(fmt.Sprintf("%v for %s: %v", ErrKeySaveFailed, state.Provider, err))
		}
	}

	keys := cache.Snapshot()
	if state.APIKey != "" {
		keys[state.Provider] = state.APIKey
	}

	snapshot := SnapshotFromForm(state, keys)
	if err := s.settings.Save(ctx, snapshot.Record()); err != nil {
		return fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}

	if state.APIKey != "" {
		cache.Set(state.Provider, state.APIKey)
	}
	s.log.Debug(fmt.Sprintf("settings saved for provider %s with %d credential(s)", state.Provider, len(keys)))
	return nil
}

func (s *SettingsSaver) validate(state models.FormState) error {
	if strings.TrimSpace(state.Shortcut) == "" {
		return fmt.Errorf("shortcut is required")
	}
	provider, ok := s.catalog.GetProvider(state.Provider)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownProvider, state.Provider)
	}
	if !provider.HasModel(state.Model) {
		return fmt.Errorf("model %q is not offered by %s", state.Model, provider.ID)
	}
	return nil
}

// SnapshotFromForm builds the settings to persist from the form and the
// full credential map.
func SnapshotFromForm(state models.FormState, keys map[string]string) *models.Settings {
	return &models.Settings{
		Shortcut:             state.Shortcut,
		TranslateShortcut:    state.TranslateShortcut,
		Provider:             state.Provider,
		APIKeys:              keys,
		Model:                state.Model,
		BaseURL:              state.BaseURL,
		Prompt:               state.Prompt,
		SoundEnabled:         state.SoundEnabled,
		NotificationsEnabled: state.NotificationsEnabled,
	}
}
