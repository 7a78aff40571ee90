package unit_tests

import (
	"testing"

	"polishlang/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviderCatalog_EmbeddedOrderAndDefaults(t *testing.T) {
	catalog := newCatalog(t)

	providers := catalog.ListProviders()
	require.Len(t, providers, 2)
	assert.Equal(t, "openai", providers[0].ID)
	assert.Equal(t, "gemini", providers[1].ID)

	def := catalog.DefaultProvider()
	assert.Equal(t, "openai", def.ID)
	assert.Equal(t, "gpt-3.5-turbo", def.DefaultModel())
	assert.Equal(t, openAIURL, def.DefaultBaseURL)

	gemini, ok := catalog.GetProvider("gemini")
	require.True(t, ok)
	assert.True(t, gemini.HasModel("gemini-1.5-pro"))
	assert.False(t, gemini.HasModel("gpt-4"))

	_, ok = catalog.GetProvider("mistral")
	assert.False(t, ok)
}

func TestProviderCatalog_IsDefaultBaseURL(t *testing.T) {
	catalog := newCatalog(t)
	assert.True(t, catalog.IsDefaultBaseURL(openAIURL))
	assert.True(t, catalog.IsDefaultBaseURL(geminiURL))
	assert.False(t, catalog.IsDefaultBaseURL(""))
	assert.False(t, catalog.IsDefaultBaseURL("https://api.openai.com/v1/"))
}

func TestProviderCatalog_ReturnsCopies(t *testing.T) {
	catalog := newCatalog(t)
	p, _ := catalog.GetProvider("openai")
	p.Models[0].ID = "mutated"

	again, _ := catalog.GetProvider("openai")
	assert.Equal(t, "gpt-3.5-turbo", again.Models[0].ID)
}

func TestParseProviderCatalog_Errors(t *testing.T) {
	cases := []struct {
		name string
		data string
		msg  string
	}{
		{"invalid json", `{`, "parse providers asset"},
		{"empty", `{"providers":[]}`, "provider catalog is empty"},
		{"missing id", `{"providers":[{"id":" ","models":[{"id":"m"}]}]}`, "provider without id"},
		{"no models", `{"providers":[{"id":"a","models":[]}]}`, "provider a has no models"},
		{"duplicate", `{"providers":[{"id":"a","models":[{"id":"m"}]},{"id":"a","models":[{"id":"m"}]}]}`, "duplicate provider a"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := services.ParseProviderCatalog([]byte(tc.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestParseProviderCatalog_DisplayNameFallsBackToID(t *testing.T) {
	catalog, err := services.ParseProviderCatalog([]byte(`{"providers":[{"id":"local","models":[{"id":"llama3","label":"Llama 3"}]}]}`))
	require.NoError(t, err)
	assert.Equal(t, "local", catalog.DefaultProvider().DisplayName)
}
