package models

// FormState is what the settings window currently displays.
//
// PreviousProvider names the provider whose credential is in APIKey. It is
// empty until the first provider change has been applied, and lets the
// switch logic flush the outgoing credential without inspecting UI labels.
type FormState struct {
	Shortcut             string        `json:"shortcut"`
	TranslateShortcut    string        `json:"translateShortcut"`
	Provider             string        `json:"provider"`
	PreviousProvider     string        `json:"previousProvider"`
	APIKey               string        `json:"apiKey"`
	APIKeyPlaceholder    string        `json:"apiKeyPlaceholder"`
	Model                string        `json:"model"`
	ModelOptions         []ModelOption `json:"modelOptions"`
	BaseURL              string        `json:"baseUrl"`
	Prompt               string        `json:"prompt"`
	SoundEnabled         bool          `json:"soundEnabled"`
	NotificationsEnabled bool          `json:"notificationsEnabled"`
}

// NewFormState fills a form from loaded settings. Provider-dependent
// fields (model options, credential, placeholder) are left for the first
// provider change to resolve.
func NewFormState(s *Settings) FormState {
	return FormState{
		Shortcut:             s.Shortcut,
		TranslateShortcut:    s.TranslateShortcut,
		Provider:             s.Provider,
		Model:                s.Model,
		BaseURL:              s.BaseURL,
		Prompt:               s.Prompt,
		SoundEnabled:         s.SoundEnabled,
		NotificationsEnabled: s.NotificationsEnabled,
	}
}
