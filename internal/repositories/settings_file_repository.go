package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"polishlang/internal/models"
	"polishlang/internal/utils"
)

type settingsFileRepository struct {
	path string
	mu   sync.Mutex
}

// NewSettingsFileRepository returns a SettingsRepository that keeps the
// settings document as indented JSON at path.
func NewSettingsFileRepository(path string) SettingsRepository {
	return &settingsFileRepository{path: path}
}

func (r *settingsFileRepository) Load(ctx context.Context) (*models.SettingsRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading settings %s: %w", r.path, err)
	}

	var settings models.SettingsRecord
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("parsing settings %s: %w", r.path, err)
	}
	return &settings, nil
}

func (r *settingsFileRepository) Save(ctx context.Context, settings *models.SettingsRecord) error {
	if settings == nil {
		return fmt.Errorf("settings are required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := utils.AtomicWriteFile(r.path, data, fs.FileMode(0o600)); err != nil {
		return fmt.Errorf("writing settings %s: %w", r.path, err)
	}
	return nil
}
