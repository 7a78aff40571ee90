package mocks

import (
	"context"
	"sync"
)

type ProviderKeyRepositoryMock struct {
	GetProviderKeyFunc func(ctx context.Context, provider string) (string, error)
	SetProviderKeyFunc func(ctx context.Context, provider, key string) error

	mu       sync.Mutex
	SetCalls []KeyCall
}

// KeyCall records one SetProviderKey invocation.
type KeyCall struct {
	Provider string
	Key      string
}

func (m *ProviderKeyRepositoryMock) GetProviderKey(ctx context.Context, provider string) (string, error) {
	if m.GetProviderKeyFunc != nil {
		return m.GetProviderKeyFunc(ctx, provider)
	}
	return "", nil
}

func (m *ProviderKeyRepositoryMock) SetProviderKey(ctx context.Context, provider, key string) error {
	m.mu.Lock()
	m.SetCalls = append(m.SetCalls, KeyCall{Provider: provider, Key: key})
	m.mu.Unlock()
	if m.SetProviderKeyFunc != nil {
		return m.SetProviderKeyFunc(ctx, provider, key)
	}
	return nil
}

// MemoryKeys returns a mock that behaves like a working key store.
func MemoryKeys(initial map[string]string) *ProviderKeyRepositoryMock {
	var mu sync.Mutex
	keys := make(map[string]string)
	for k, v := range initial {
		keys[k] = v
	}
	return &ProviderKeyRepositoryMock{
		GetProviderKeyFunc: func(ctx context.Context, provider string) (string, error) {
			mu.Lock()
			defer mu.Unlock()
			return keys[provider], nil
		},
		SetProviderKeyFunc: func(ctx context.Context, provider, key string) error {
			mu.Lock()
			defer mu.Unlock()
			if key == "" {
				delete(keys, provider)
				return nil
			}
			keys[provider] = key
			return nil
		},
	}
}
