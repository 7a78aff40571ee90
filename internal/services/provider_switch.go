package services

import (
	"context"
	"fmt"

	"github.com/wailsapp/wails/v2/pkg/logger"

	"polishlang/internal/models"
	"polishlang/internal/repositories"
)

// ProviderSwitcher keeps the settings form consistent when the selected
// provider changes.
type ProviderSwitcher struct {
	keys    repositories.ProviderKeyRepository
	catalog ProviderCatalog
	log     logger.Logger
}

func NewProviderSwitcher(keys repositories.ProviderKeyRepository, catalog ProviderCatalog, log logger.Logger) *ProviderSwitcher {
	return &ProviderSwitcher{keys: keys, catalog: catalog, log: orDefaultLogger(log)}
}

// OnProviderChange flushes the outgoing provider's credential, then loads
// the model list, base URL and credential of newProvider into state. The
// model selection is cleared; callers choose one afterwards.
//
// Credential store failures are logged and fall back to the cache. An
// unknown provider returns ErrUnknownProvider with state unchanged.
func (s *ProviderSwitcher) OnProviderChange(ctx context.Context, newProvider string, state models.FormState, cache *CredentialCache) (models.FormState, error) {
	next, ok := s.catalog.GetProvider(newProvider)
	if !ok {
		return state, fmt.Errorf("%w: %q", ErrUnknownProvider, newProvider)
	}

	if outgoing := state.PreviousProvider; outgoing != "" && state.APIKey != "" {
		cache.Set(outgoing, state.APIKey)
		if err := s.keys.SetProviderKey(ctx, outgoing, state.APIKey); err != nil {
			s.log.Warning(fmt.Sprintf("%v for %s: %v", ErrKeySaveFailed, outgoing, err))
		}
	}

	state.ModelOptions = next.Models
	state.Model = ""

	if state.BaseURL == "" || s.catalog.IsDefaultBaseURL(state.BaseURL) {
		state.BaseURL = next.DefaultBaseURL
	}

	state.APIKey = s.resolveKey(ctx, next.ID, cache)
	state.APIKeyPlaceholder = next.KeyPlaceholder
	state.Provider = next.ID
	state.PreviousProvider = next.ID

	return state, nil
}

func (s *ProviderSwitcher) resolveKey(ctx context.Context, provider string, cache *CredentialCache) string {
	key, err := s.keys.GetProviderKey(ctx, provider)
	if err != nil {
		s.log.Warning(fmt.Sprintf("%v for %s, using session value: %v", ErrKeyLookupFailed, provider, err))
		return cache.Get(provider)
	}
	if key == "" {
		// A key typed this session may not have reached the store yet.
		return cache.Get(provider)
	}
	cache.Set(provider, key)
	return key
}
