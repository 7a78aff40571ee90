package models

// ModelOption is a single selectable model of a provider.
type ModelOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// ProviderConfig describes a supported AI provider. It is static data
// shipped with the application and never persisted.
type ProviderConfig struct {
	ID             string        `json:"id"`
	DisplayName    string        `json:"displayName"`
	Models         []ModelOption `json:"models"`
	DefaultBaseURL string        `json:"defaultBaseUrl"`
	KeyPlaceholder string        `json:"keyPlaceholder"`
}

// DefaultModel returns the first configured model id.
func (p ProviderConfig) DefaultModel() string {
	if len(p.Models) == 0 {
		return ""
	}
	return p.Models[0].ID
}

func (p ProviderConfig) HasModel(id string) bool {
	for _, m := range p.Models {
		if m.ID == id {
			return true
		}
	}
	return false
}
