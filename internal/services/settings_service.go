package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/wailsapp/wails/v2/pkg/logger"

	"polishlang/internal/events"
	"polishlang/internal/models"
	"polishlang/internal/repositories"
)

// SettingsService is the settings window's backend. It owns the session's
// credential cache and serializes provider switches and saves.
type SettingsService interface {
	Startup(ctx context.Context)
	Load() (*models.FormState, error)
	ChangeProvider(state models.FormState, provider string) (*models.FormState, error)
	Save(state models.FormState) error
	ClearProviderKey(provider string) error
	ListProviders() []models.ProviderConfig
}

type settingsService struct {
	context context.Context
	timeout time.Duration
	log     logger.Logger

	loader   *SettingsLoader
	switcher *ProviderSwitcher
	saver    *SettingsSaver
	keys     repositories.ProviderKeyRepository
	catalog  ProviderCatalog

	mu    sync.Mutex
	cache *CredentialCache
}

// SettingsServiceOptions configures NewSettingsService. Timeout bounds each
// call to the settings and key stores; zero means no limit.
type SettingsServiceOptions struct {
	Timeout time.Duration
	Logger  logger.Logger
}

func NewSettingsService(settings repositories.SettingsRepository, keys repositories.ProviderKeyRepository, catalog ProviderCatalog, opts SettingsServiceOptions) SettingsService {
	log := orDefaultLogger(opts.Logger)
	return &settingsService{
		context:  context.Background(),
		timeout:  opts.Timeout,
		log:      log,
		loader:   NewSettingsLoader(settings, catalog, log),
		switcher: NewProviderSwitcher(keys, catalog, log),
		saver:    NewSettingsSaver(settings, keys, catalog, log),
		keys:     keys,
		catalog:  catalog,
		cache:    NewCredentialCache(),
	}
}

func (s *settingsService) Startup(ctx context.Context) {
	s.context = ctx
}

func (s *settingsService) callContext() (context.Context, context.CancelFunc) {
	if s.timeout > 0 {
		return context.WithTimeout(s.context, s.timeout)
	}
	return context.WithCancel(s.context)
}

// Load initializes the session from the settings store and returns the
// form primed for the active provider. A store failure does not fail
// startup: the defaults are shown and a status event reports the error.
func (s *settingsService) Load() (*models.FormState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, cancel := s.callContext()
	defer cancel()

	settings, cache, err := s.loader.Initialize(ctx)
	if err != nil {
		if !errors.Is(err, ErrLoadFailed) {
			return nil, err
		}
		s.log.Error(err.Error())
		events.Emit(s.context, events.SettingsStatus, events.NewError("Could not load settings, showing defaults: "+err.Error()))
		settings, cache = s.loader.Defaults(), NewCredentialCache()
	}
	for _, notice := range settings.Notices {
		events.Emit(s.context, events.SettingsStatus, events.NewWarn(notice))
	}
	s.cache = cache

	state, err := s.switcher.OnProviderChange(ctx, settings.Provider, models.NewFormState(settings), s.cache)
	if err != nil {
		return nil, err
	}
	state.Model = settings.Model
	return &state, nil
}

// ChangeProvider applies a provider switch and selects the new provider's
// default model.
func (s *settingsService) ChangeProvider(state models.FormState, provider string) (*models.FormState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, cancel := s.callContext()
	defer cancel()

	next, err := s.switcher.OnProviderChange(ctx, provider, state, s.cache)
	if err != nil {
		return nil, err
	}
	if p, ok := s.catalog.GetProvider(next.Provider); ok {
		next.Model = p.DefaultModel()
	}
	return &next, nil
}

func (s *settingsService) Save(state models.FormState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, cancel := s.callContext()
	defer cancel()

	if err := s.saver.Save(ctx, state, s.cache); err != nil {
		s.log.Error(err.Error())
		events.Emit(s.context, events.SettingsStatus, events.NewError("Failed to save settings: "+err.Error()))
		return err
	}
	events.Emit(s.context, events.SettingsStatus, events.NewSuccess("Settings saved"))
	return nil
}

// ClearProviderKey forgets a provider's credential in the session and the
// key store.
func (s *settingsService) ClearProviderKey(provider string) error {
	if _, ok := s.catalog.GetProvider(provider); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownProvider, provider)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, cancel := s.callContext()
	defer cancel()

	if err := s.keys.SetProviderKey(ctx, provider, ""); err != nil {
		return fmt.Errorf("%w for %s: %w", ErrKeySaveFailed, provider, err)
	}
	s.cache.Delete(provider)
	events.Emit(s.context, events.SettingsStatus, events.NewInfo(fmt.Sprintf("Removed %s API key", provider)))
	return nil
}

func (s *settingsService) ListProviders() []models.ProviderConfig {
	return s.catalog.ListProviders()
}

func orDefaultLogger(log logger.Logger) logger.Logger {
	if log == nil {
		return logger.NewDefaultLogger()
	}
	return log
}
