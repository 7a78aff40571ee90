package unit_tests

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"polishlang/internal/models"
	"polishlang/internal/services"
	"polishlang/internal/tests/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() models.FormState {
	return models.FormState{
		Shortcut:          models.DefaultShortcut,
		TranslateShortcut: models.DefaultTranslateShortcut,
		Provider:          "openai",
		PreviousProvider:  "openai",
		Model:             "gpt-4o",
		BaseURL:           openAIURL,
		Prompt:            "Polish this:",
		SoundEnabled:      true,
	}
}

func TestSettingsSaver_LegacyMigrationIsOneDirectional(t *testing.T) {
	ctx := context.Background()
	catalog := newCatalog(t)

	var saved *models.SettingsRecord
	repo := &mocks.SettingsRepositoryMock{
		LoadFunc: func(ctx context.Context) (*models.SettingsRecord, error) {
			return &models.SettingsRecord{
				Shortcut: models.DefaultShortcut,
				Provider: "openai",
				APIKey:   strPtr("k1"),
				Model:    "gpt-3.5-turbo",
				BaseURL:  openAIURL,
			}, nil
		},
		SaveFunc: func(ctx context.Context, settings *models.SettingsRecord) error {
			saved = settings
			return nil
		},
	}
	keys := mocks.MemoryKeys(nil)

	settings, cache, err := services.NewSettingsLoader(repo, catalog, &mocks.LoggerMock{}).Initialize(ctx)
	require.NoError(t, err)

	form := models.NewFormState(settings)
	form.Provider, form.PreviousProvider = "openai", "openai"
	saver := services.NewSettingsSaver(repo, keys, catalog, &mocks.LoggerMock{})
	require.NoError(t, saver.Save(ctx, form, cache))

	require.NotNil(t, saved)
	assert.Equal(t, map[string]string{"openai": "k1"}, saved.APIKeys)
	assert.Nil(t, saved.APIKey)

	data, err := json.Marshal(saved)
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"apiKey":`)
	assert.Contains(t, string(data), `"apiKeys":{"openai":"k1"}`)
}

func TestSettingsSaver_SnapshotContainsEveryCredential(t *testing.T) {
	var saved *models.SettingsRecord
	repo := &mocks.SettingsRepositoryMock{
		SaveFunc: func(ctx context.Context, settings *models.SettingsRecord) error {
			saved = settings
			return nil
		},
	}
	keys := mocks.MemoryKeys(nil)
	cache := services.NewCredentialCacheFrom(map[string]string{"gemini": "G"})

	form := validForm()
	form.APIKey = "O"
	saver := services.NewSettingsSaver(repo, keys, newCatalog(t), &mocks.LoggerMock{})
	require.NoError(t, saver.Save(context.Background(), form, cache))

	require.NotNil(t, saved)
	assert.Equal(t, map[string]string{"openai": "O", "gemini": "G"}, saved.APIKeys)
	assert.Equal(t, "openai", saved.Provider)
	assert.Equal(t, "gpt-4o", saved.Model)
	assert.Equal(t, "Polish this:", saved.Prompt)
	require.NotNil(t, saved.SoundEnabled)
	assert.True(t, *saved.SoundEnabled)
	require.NotNil(t, saved.NotificationsEnabled)
	assert.False(t, *saved.NotificationsEnabled)
	assert.Equal(t, []mocks.KeyCall{{Provider: "openai", Key: "O"}}, keys.SetCalls)
	assert.Equal(t, "O", cache.Get("openai"))
}

func TestSettingsSaver_FailedSaveLeavesStateIntact(t *testing.T) {
	var attempts []*models.SettingsRecord
	repo := &mocks.SettingsRepositoryMock{
		SaveFunc: func(ctx context.Context, settings *models.SettingsRecord) error {
			attempts = append(attempts, settings)
			return errors.New("disk full")
		},
	}
	cache := services.NewCredentialCacheFrom(map[string]string{"gemini": "G"})
	form := validForm()
	form.APIKey = "O"
	before := form

	saver := services.NewSettingsSaver(repo, mocks.MemoryKeys(nil), newCatalog(t), &mocks.LoggerMock{})

	err := saver.Save(context.Background(), form, cache)
	assert.ErrorIs(t, err, services.ErrSaveFailed)
	assert.Contains(t, err.Error(), "disk full")
	assert.Equal(t, map[string]string{"gemini": "G"}, cache.Snapshot())
	assert.Equal(t, before, form)

	err = saver.Save(context.Background(), form, cache)
	assert.ErrorIs(t, err, services.ErrSaveFailed)
	require.Len(t, attempts, 2)
	assert.Equal(t, attempts[0], attempts[1])
}

func TestSettingsSaver_KeySaveFailureIsNotFatal(t *testing.T) {
	log := &mocks.LoggerMock{}
	keys := &mocks.ProviderKeyRepositoryMock{
		SetProviderKeyFunc: func(ctx context.Context, provider, key string) error {
			return errors.New("keyring locked")
		},
	}
	saved := false
	repo := &mocks.SettingsRepositoryMock{
		SaveFunc: func(ctx context.Context, settings *models.SettingsRecord) error {
			saved = true
			assert.Equal(t, "O", settings.APIKeys["openai"])
			return nil
		},
	}

	form := validForm()
	form.APIKey = "O"
	saver := services.NewSettingsSaver(repo, keys, newCatalog(t), log)

	require.NoError(t, saver.Save(context.Background(), form, services.NewCredentialCache()))
	assert.True(t, saved)
	assert.True(t, log.Has("WARN", "keyring locked"))
}

func TestSettingsSaver_EmptyCredentialIsNotWritten(t *testing.T) {
	keys := mocks.MemoryKeys(nil)
	saver := services.NewSettingsSaver(&mocks.SettingsRepositoryMock{}, keys, newCatalog(t), &mocks.LoggerMock{})

	require.NoError(t, saver.Save(context.Background(), validForm(), services.NewCredentialCache()))
	assert.Empty(t, keys.SetCalls)
}

func TestSettingsSaver_Validation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*models.FormState)
		msg    string
	}{
		{"missing shortcut", func(f *models.FormState) { f.Shortcut = " " }, "shortcut is required"},
		{"unknown provider", func(f *models.FormState) { f.Provider = "mistral" }, "unknown provider"},
		{"model of another provider", func(f *models.FormState) { f.Model = "gemini-1.5-pro" }, `model "gemini-1.5-pro" is not offered by openai`},
		{"no model", func(f *models.FormState) { f.Model = "" }, `model "" is not offered by openai`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &mocks.SettingsRepositoryMock{
				SaveFunc: func(ctx context.Context, settings *models.SettingsRecord) error {
					t.Fatal("invalid settings must not be persisted")
					return nil
				},
			}
			keys := mocks.MemoryKeys(nil)
			form := validForm()
			form.APIKey = "O"
			tc.mutate(&form)

			err := services.NewSettingsSaver(repo, keys, newCatalog(t), &mocks.LoggerMock{}).
				Save(context.Background(), form, services.NewCredentialCache())
			assert.ErrorIs(t, err, services.ErrSaveFailed)
			assert.Contains(t, err.Error(), tc.msg)
			assert.Empty(t, keys.SetCalls)
		})
	}
}
