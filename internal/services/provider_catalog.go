package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"polishlang/internal/assets"
	"polishlang/internal/models"
)

// ProviderCatalog exposes the static provider configuration in its
// declared order. The first provider is the default one.
type ProviderCatalog interface {
	ListProviders() []models.ProviderConfig
	GetProvider(id string) (models.ProviderConfig, bool)
	DefaultProvider() models.ProviderConfig
	IsDefaultBaseURL(url string) bool
}

type providerCatalog struct {
	order     []string
	providers map[string]models.ProviderConfig
}

type rawCatalogFile struct {
	Providers []models.ProviderConfig `json:"providers"`
}

// NewProviderCatalog parses the embedded providers asset.
func NewProviderCatalog() (ProviderCatalog, error) {
	return ParseProviderCatalog(assets.ProvidersData)
}

// ParseProviderCatalog builds a catalog from raw JSON. Every provider needs
// an id and at least one model.
func ParseProviderCatalog(data []byte) (ProviderCatalog, error) {
	var parsed rawCatalogFile
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parse providers asset: %w", err)
	}

	c := &providerCatalog{
		order:     make([]string, 0, len(parsed.Providers)),
		providers: make(map[string]models.ProviderConfig, len(parsed.Providers)),
	}
	for _, p := range parsed.Providers {
		p.ID = strings.TrimSpace(p.ID)
		if p.ID == "" {
			return nil, fmt.Errorf("provider without id in catalog")
		}
		if _, dup := c.providers[p.ID]; dup {
			return nil, fmt.Errorf("duplicate provider %s in catalog", p.ID)
		}
		if len(p.Models) == 0 {
			return nil, fmt.Errorf("provider %s has no models", p.ID)
		}
		if strings.TrimSpace(p.DisplayName) == "" {
			p.DisplayName = p.ID
		}
		c.order = append(c.order, p.ID)
		c.providers[p.ID] = p
	}
	if len(c.order) == 0 {
		return nil, fmt.Errorf("provider catalog is empty")
	}
	return c, nil
}

func (c *providerCatalog) ListProviders() []models.ProviderConfig {
	out := make([]models.ProviderConfig, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, cloneProvider(c.providers[id]))
	}
	return out
}

func (c *providerCatalog) GetProvider(id string) (models.ProviderConfig, bool) {
	p, ok := c.providers[strings.TrimSpace(id)]
	if !ok {
		return models.ProviderConfig{}, false
	}
	return cloneProvider(p), true
}

func (c *providerCatalog) DefaultProvider() models.ProviderConfig {
	return cloneProvider(c.providers[c.order[0]])
}

// IsDefaultBaseURL reports whether url is the default endpoint of any
// known provider.
func (c *providerCatalog) IsDefaultBaseURL(url string) bool {
	for _, p := range c.providers {
		if p.DefaultBaseURL == url {
			return true
		}
	}
	return false
}

func cloneProvider(p models.ProviderConfig) models.ProviderConfig {
	p.Models = append([]models.ModelOption(nil), p.Models...)
	return p
}
