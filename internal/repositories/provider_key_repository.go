package repositories

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"polishlang/internal/models"
)

// ProviderKeyRepository reads and writes a single provider's credential.
// GetProviderKey returns ("", nil) when no credential is stored. Setting an
// empty key removes the stored credential.
type ProviderKeyRepository interface {
	GetProviderKey(ctx context.Context, provider string) (string, error)
	SetProviderKey(ctx context.Context, provider, key string) error
}

type settingsKeyRepository struct {
	settings SettingsRepository
	mu       sync.Mutex
}

// NewSettingsKeyRepository stores credentials inside the settings document's
// apiKeys map, doing a read-modify-write on every update.
func NewSettingsKeyRepository(settings SettingsRepository) ProviderKeyRepository {
	return &settingsKeyRepository{settings: settings}
}

func (r *settingsKeyRepository) GetProviderKey(ctx context.Context, provider string) (string, error) {
	provider = strings.TrimSpace(provider)
	if provider == "" {
		return "", fmt.Errorf("provider is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	record, err := r.settings.Load(ctx)
	if err != nil {
		return "", err
	}
	if record == nil {
		return "", nil
	}
	if key := record.APIKeys[provider]; key != "" {
		return key, nil
	}
	// Records written before multi-provider support hold the key of their
	// active provider in the legacy field.
	if record.APIKey != nil && record.Provider == provider {
		return *record.APIKey, nil
	}
	return "", nil
}

func (r *settingsKeyRepository) SetProviderKey(ctx context.Context, provider, key string) error {
	provider = strings.TrimSpace(provider)
	if provider == "" {
		return fmt.Errorf("provider is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	record, err := r.settings.Load(ctx)
	if err != nil {
		return err
	}
	if record == nil {
		record = &models.SettingsRecord{Shortcut: models.DefaultShortcut}
	}
	if record.APIKeys == nil {
		record.APIKeys = make(map[string]string)
	}

	if record.APIKey != nil {
		legacy := *record.APIKey
		if legacy != "" && record.Provider != "" {
			if _, ok := record.APIKeys[record.Provider]; !ok {
				record.APIKeys[record.Provider] = legacy
			}
		}
		record.APIKey = nil
	}

	if key == "" {
		delete(record.APIKeys, provider)
	} else {
		record.APIKeys[provider] = key
	}

	return r.settings.Save(ctx, record)
}
