package models

import "time"

const (
	DefaultShortcut          = "CmdOrCtrl+Alt+P"
	DefaultTranslateShortcut = "CmdOrCtrl+Alt+T"
	DefaultSoundEnabled      = true
	DefaultNotifications     = false
)

// SettingsRecord is the persisted shape of the settings document. Optional
// fields are pointers so a loader can tell "absent" from a zero value.
// APIKey is the single-credential field written before multi-provider
// support; it is read for migration and never written back.
type SettingsRecord struct {
	ID                   uint              `gorm:"primaryKey" json:"-"` // single-row table (ID=1)
	Shortcut             string            `gorm:"not null" json:"shortcut"`
	TranslateShortcut    *string           `json:"translateShortcut,omitempty"`
	Provider             string            `json:"provider,omitempty"`
	APIKeys              map[string]string `gorm:"serializer:json" json:"apiKeys,omitempty"`
	APIKey               *string           `json:"apiKey,omitempty"`
	Model                string            `json:"model"`
	BaseURL              string            `json:"baseUrl"`
	Prompt               string            `gorm:"type:text" json:"prompt"`
	SoundEnabled         *bool             `json:"soundEnabled,omitempty"`
	NotificationsEnabled *bool             `json:"notificationsEnabled,omitempty"`
	UpdatedAt            time.Time         `json:"-"`
}

func (SettingsRecord) TableName() string {
	return "settings"
}

// Settings is the normalized, fully defaulted view of a SettingsRecord.
type Settings struct {
	Shortcut             string            `json:"shortcut"`
	TranslateShortcut    string            `json:"translateShortcut"`
	Provider             string            `json:"provider"`
	APIKeys              map[string]string `json:"apiKeys"`
	Model                string            `json:"model"`
	BaseURL              string            `json:"baseUrl"`
	Prompt               string            `json:"prompt"`
	SoundEnabled         bool              `json:"soundEnabled"`
	NotificationsEnabled bool              `json:"notificationsEnabled"`

	// Notices describes corrections made while loading a saved record.
	Notices []string `json:"-"`
}

// CurrentAPIKey returns the credential stored for the active provider.
func (s *Settings) CurrentAPIKey() string {
	if s == nil || s.APIKeys == nil {
		return ""
	}
	return s.APIKeys[s.Provider]
}

// Record converts s into its persisted shape. The legacy field is always nil.
func (s *Settings) Record() *SettingsRecord {
	translate := s.TranslateShortcut
	sound := s.SoundEnabled
	notifications := s.NotificationsEnabled

	keys := make(map[string]string, len(s.APIKeys))
	for provider, key := range s.APIKeys {
		if key != "" {
			keys[provider] = key
		}
	}

	return &SettingsRecord{
		ID:                   1,
		Shortcut:             s.Shortcut,
		TranslateShortcut:    &translate,
		Provider:             s.Provider,
		APIKeys:              keys,
		Model:                s.Model,
		BaseURL:              s.BaseURL,
		Prompt:               s.Prompt,
		SoundEnabled:         &sound,
		NotificationsEnabled: &notifications,
	}
}
