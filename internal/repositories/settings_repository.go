package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"polishlang/internal/models"
)

// SettingsRepository loads and stores the settings document.
// Load returns (nil, nil) when nothing has been persisted yet.
type SettingsRepository interface {
	Load(ctx context.Context) (*models.SettingsRecord, error)
	Save(ctx context.Context, settings *models.SettingsRecord) error
}

type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository returns a SettingsRepository backed by a
// single-row SQLite table.
func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) Load(ctx context.Context) (*models.SettingsRecord, error) {
	var settings models.SettingsRecord
	if err := r.db.WithContext(ctx).First(&settings, 1).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("loading settings: %w", err)
	}
	return &settings, nil
}

func (r *settingsRepository) Save(ctx context.Context, settings *models.SettingsRecord) error {
	if settings == nil {
		return fmt.Errorf("settings are required")
	}
	settings.ID = 1
	if err := r.db.WithContext(ctx).Save(settings).Error; err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}
	return nil
}
