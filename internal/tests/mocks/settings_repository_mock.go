package mocks

import (
	"context"
	"polishlang/internal/models"
)

type SettingsRepositoryMock struct {
	LoadFunc func(ctx context.Context) (*models.SettingsRecord, error)
	SaveFunc func(ctx context.Context, settings *models.SettingsRecord) error
}

func (m *SettingsRepositoryMock) Load(ctx context.Context) (*models.SettingsRecord, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx)
	}
	return nil, nil
}

func (m *SettingsRepositoryMock) Save(ctx context.Context, settings *models.SettingsRecord) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, settings)
	}
	return nil
}
