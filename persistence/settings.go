package persistence

import (
	"encoding/json"
	"fmt"
)

const settingsKey = "settings"

// Settings represents the player preferences stored on disk
type Settings struct {
	Muted      bool `json:"muted"`
	Fullscreen bool `json:"fullscreen"`
}

// SettingsStore loads and saves player preferences
type SettingsStore interface {
	LoadSettings() (*Settings, error)
	SaveSettings(s *Settings) error
}

// LoadSettings returns the saved settings, or nil when none were saved yet
func (s *GDataStore) LoadSettings() (*Settings, error) {
	data, err := s.manager.LoadItem(settingsKey)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	return decodeSettings(data)
}

// SaveSettings writes the settings
func (s *GDataStore) SaveSettings(settings *Settings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := s.manager.SaveItem(settingsKey, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

func decodeSettings(data []byte) (*Settings, error) {
	if data == nil {
		return nil, nil
	}
	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("parse settings: %w", err)
	}
	return &settings, nil
}

func (s *MemoryStore) LoadSettings() (*Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	if s.settings == nil {
		return nil, nil
	}
	copied := *s.settings
	return &copied, nil
}

func (s *MemoryStore) SaveSettings(settings *Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	copied := *settings
	s.settings = &copied
	return nil
}
