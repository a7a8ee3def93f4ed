// Package persistence stores the best score between sessions.
package persistence

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"

	cfg "github.com/automoto/cosmicdash/config"
	"github.com/quasilyte/gdata"
)

// Store loads and saves the high score
type Store interface {
	LoadHighScore() (int, error)
	SaveHighScore(score int) error
}

// GDataStore keeps the high score in the platform's app data directory
type GDataStore struct {
	manager *gdata.Manager
	key     string
}

// OpenGData opens the gdata manager for the configured app name
func OpenGData() (*GDataStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Persistence.AppName,
	})
	if err != nil {
		return nil, fmt.Errorf("open app data: %w", err)
	}
	return &GDataStore{manager: m, key: cfg.Persistence.HighScoreKey}, nil
}

// LoadHighScore returns the stored score, or 0 when nothing was saved yet
func (s *GDataStore) LoadHighScore() (int, error) {
	data, err := s.manager.LoadItem(s.key)
	if err != nil {
		return 0, fmt.Errorf("load %s: %w", s.key, err)
	}
	return decodeScore(data)
}

// SaveHighScore writes the score
func (s *GDataStore) SaveHighScore(score int) error {
	data, err := json.Marshal(score)
	if err != nil {
		return fmt.Errorf("encode high score: %w", err)
	}
	if err := s.manager.SaveItem(s.key, data); err != nil {
		return fmt.Errorf("save %s: %w", s.key, err)
	}
	return nil
}

func decodeScore(data []byte) (int, error) {
	if data == nil {
		// No saved score yet
		return 0, nil
	}
	var score int
	if err := json.Unmarshal(data, &score); err != nil {
		return 0, fmt.Errorf("parse high score: %w", err)
	}
	if score < 0 {
		return 0, nil
	}
	return score, nil
}

// MemoryStore keeps the high score in memory. Used by tests and --no-save runs.
type MemoryStore struct {
	mu    sync.Mutex
	score int
	saves int
	err   error

	settings *Settings
}

// NewMemoryStore returns a store preloaded with score
func NewMemoryStore(score int) *MemoryStore {
	return &MemoryStore{score: score}
}

// FailWith makes every later call return err
func (s *MemoryStore) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

func (s *MemoryStore) LoadHighScore() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return 0, s.err
	}
	return s.score, nil
}

func (s *MemoryStore) SaveHighScore(score int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.score = score
	s.saves++
	return nil
}

// Saves returns how many successful writes happened
func (s *MemoryStore) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}

// Open returns the gdata store, falling back to memory when the platform has
// no usable app data directory
func Open(noSave bool) Store {
	if noSave {
		return NewMemoryStore(0)
	}
	store, err := OpenGData()
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return NewMemoryStore(0)
	}
	return store
}

// LoadOrZero reads the high score, logging and returning 0 on failure
func LoadOrZero(s Store) int {
	score, err := s.LoadHighScore()
	if err != nil {
		log.Printf("Warning: Could not load high score: %v", err)
		return 0
	}
	return score
}
