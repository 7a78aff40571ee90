package events

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventInfo    EventType = "info"
	EventWarn    EventType = "warn"
	EventSuccess EventType = "success"
	EventError   EventType = "error"
)

// SettingsStatus carries transient status messages for the settings window.
const SettingsStatus = "events:settings:status"

// SettingsEvent is a backend event payload shown to the user.
type SettingsEvent struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

func CreateSettingsEvent(eventType EventType, message string) SettingsEvent {
	return SettingsEvent{
		ID:        uuid.NewString(),
		Type:      eventType,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// NewInfo creates an info SettingsEvent.
func NewInfo(message string) SettingsEvent {
	return CreateSettingsEvent(EventInfo, message)
}

// NewWarn creates a warn SettingsEvent.
func NewWarn(message string) SettingsEvent {
	return CreateSettingsEvent(EventWarn, message)
}

// NewError creates an error SettingsEvent.
func NewError(message string) SettingsEvent {
	return CreateSettingsEvent(EventError, message)
}

// NewSuccess creates a success SettingsEvent.
func NewSuccess(message string) SettingsEvent {
	return CreateSettingsEvent(EventSuccess, message)
}
