package unit_tests

import (
	"testing"

	"polishlang/internal/models"
	"polishlang/internal/services"

	"github.com/stretchr/testify/require"
)

const (
	openAIURL = "https://api.openai.com/v1"
	geminiURL = "https://generativelanguage.googleapis.com"
)

func newCatalog(t *testing.T) services.ProviderCatalog {
	t.Helper()
	catalog, err := services.NewProviderCatalog()
	require.NoError(t, err)
	return catalog
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func formWithKey(key string) models.FormState {
	return models.FormState{APIKey: key}
}
