package repositories

import (
	"context"
	"path/filepath"
	"testing"

	"polishlang/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newKeyRepo(t *testing.T, initial *models.SettingsRecord) (ProviderKeyRepository, SettingsRepository) {
	t.Helper()
	settings := NewSettingsFileRepository(filepath.Join(t.TempDir(), "settings.json"))
	if initial != nil {
		require.NoError(t, settings.Save(context.Background(), initial))
	}
	return NewSettingsKeyRepository(settings), settings
}

func TestSettingsKeyRepository_NoDocument(t *testing.T) {
	ctx := context.Background()
	keys, settings := newKeyRepo(t, nil)

	key, err := keys.GetProviderKey(ctx, "openai")
	require.NoError(t, err)
	assert.Equal(t, "", key)

	require.NoError(t, keys.SetProviderKey(ctx, "openai", "O"))
	rec, err := settings.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultShortcut, rec.Shortcut)
	assert.Equal(t, map[string]string{"openai": "O"}, rec.APIKeys)
}

func TestSettingsKeyRepository_LegacyKey(t *testing.T) {
	ctx := context.Background()
	keys, settings := newKeyRepo(t, &models.SettingsRecord{
		Shortcut: models.DefaultShortcut,
		Provider: "openai",
		APIKey:   strPtr("sk-old"),
		Model:    "gpt-4",
	})

	key, err := keys.GetProviderKey(ctx, "openai")
	require.NoError(t, err)
	assert.Equal(t, "sk-old", key)

	key, err = keys.GetProviderKey(ctx, "gemini")
	require.NoError(t, err)
	assert.Equal(t, "", key)

	require.NoError(t, keys.SetProviderKey(ctx, "gemini", "G"))
	rec, err := settings.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, rec.APIKey)
	assert.Equal(t, map[string]string{"openai": "sk-old", "gemini": "G"}, rec.APIKeys)
}

func TestSettingsKeyRepository_EmptyKeyRemoves(t *testing.T) {
	ctx := context.Background()
	keys, settings := newKeyRepo(t, &models.SettingsRecord{
		Shortcut: models.DefaultShortcut,
		Provider: "openai",
		APIKeys:  map[string]string{"openai": "O", "gemini": "G"},
	})

	require.NoError(t, keys.SetProviderKey(ctx, "gemini", ""))
	rec, err := settings.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"openai": "O"}, rec.APIKeys)
	assert.Equal(t, "openai", rec.Provider)
}

func TestSettingsKeyRepository_RequiresProvider(t *testing.T) {
	keys, _ := newKeyRepo(t, nil)
	_, err := keys.GetProviderKey(context.Background(), "")
	assert.EqualError(t, err, "provider is required")
	assert.EqualError(t, keys.SetProviderKey(context.Background(), "  ", "k"), "provider is required")
}
