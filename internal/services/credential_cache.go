package services

import "sync"

// CredentialCache is the in-memory provider -> credential map for the
// running session. Empty credentials are never stored.
type CredentialCache struct {
	mu   sync.RWMutex
	keys map[string]string
}

func NewCredentialCache() *CredentialCache {
	return &CredentialCache{keys: make(map[string]string)}
}

// NewCredentialCacheFrom seeds a cache with a copy of keys.
func NewCredentialCacheFrom(keys map[string]string) *CredentialCache {
	c := NewCredentialCache()
	for provider, key := range keys {
		if key != "" {
			c.keys[provider] = key
		}
	}
	return c
}

func (c *CredentialCache) Get(provider string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.keys[provider]
}

// Set stores key for provider; an empty key removes the entry.
func (c *CredentialCache) Set(provider, key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if key == "" {
		delete(c.keys, provider)
		return
	}
	c.keys[provider] = key
}

func (c *CredentialCache) Delete(provider string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.keys, provider)
}

// Snapshot returns a copy of every cached credential.
func (c *CredentialCache) Snapshot() map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[string]string, len(c.keys))
	for provider, key := range c.keys {
		out[provider] = key
	}
	return out
}

func (c *CredentialCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.keys)
}
