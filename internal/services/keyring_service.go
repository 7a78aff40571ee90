package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/99designs/keyring"
)

const serviceName = "polish-language"

// KeyringConfig selects the OS keyring backends. FileDir and FilePassword
// are only used by the encrypted file backend.
type KeyringConfig struct {
	AllowedBackends []string
	FileDir         string
	FilePassword    string
}

// OpenKeyring opens the platform keyring for the application.
func OpenKeyring(cfg KeyringConfig) (keyring.Keyring, error) {
	var backends []keyring.BackendType
	for _, b := range cfg.AllowedBackends {
		backends = append(backends, keyring.BackendType(b))
	}
	ring, err := keyring.Open(keyring.Config{
		ServiceName:              serviceName,
		AllowedBackends:          backends,
		KeychainTrustApplication: true,
		FileDir:                  cfg.FileDir,
		FilePasswordFunc:         keyring.FixedStringPrompt(cfg.FilePassword),
		LibSecretCollectionName:  "login",
	})
	if err != nil {
		return nil, fmt.Errorf("open keyring: %w", err)
	}
	return ring, nil
}

// KeyringService stores provider credentials in the OS keyring, one item
// per provider.
type KeyringService struct {
	ring keyring.Keyring
}

func NewKeyringService(ring keyring.Keyring) *KeyringService {
	return &KeyringService{ring: ring}
}

func (s *KeyringService) GetProviderKey(_ context.Context, provider string) (string, error) {
	provider = strings.TrimSpace(provider)
	if provider == "" {
		return "", errors.New("provider is required")
	}
	item, err := s.ring.Get(provider)
	if errors.Is(err, keyring.ErrKeyNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("keyring get %s: %w", provider, err)
	}
	return string(item.Data), nil
}

func (s *KeyringService) SetProviderKey(_ context.Context, provider, key string) error {
	provider = strings.TrimSpace(provider)
	if provider == "" {
		return errors.New("provider is required")
	}
	if key == "" {
		return s.DeleteApiKey(provider)
	}
	err := s.ring.Set(keyring.Item{
		Key:         provider,
		Data:        []byte(key),
		Label:       provider + " API key",
		Description: "API key for " + provider + " used by Polish Language",
	})
	if err != nil {
		return fmt.Errorf("keyring set %s: %w", provider, err)
	}
	return nil
}

func (s *KeyringService) DeleteApiKey(provider string) error {
	if provider == "" {
		return errors.New("provider is required")
	}
	err := s.ring.Remove(provider)
	if err != nil && !errors.Is(err, keyring.ErrKeyNotFound) {
		return fmt.Errorf("keyring remove %s: %w", provider, err)
	}
	return nil
}

// ListApiKeys describes the stored credentials without revealing them.
func (s *KeyringService) ListApiKeys() ([]map[string]string, error) {
	providers, err := s.ring.Keys()
	if err != nil {
		return nil, fmt.Errorf("keyring keys: %w", err)
	}
	sort.Strings(providers)

	results := make([]map[string]string, 0, len(providers))
	for _, provider := range providers {
		results = append(results, map[string]string{
			"provider":    provider,
			"label":       provider + " API key",
			"description": "API key for " + provider + " used by Polish Language",
		})
	}
	return results, nil
}
