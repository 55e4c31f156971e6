package storage

import (
	"context"
	"sync"
)

// MemoryRepository is an in-memory stand-in for Store, used by tests and as
// the fallback when the database cannot be opened.
type MemoryRepository struct {
	mu       sync.Mutex
	scores   map[string]int
	sessions []SessionRecord
	saves    int

	// LoadErr and SaveErr, when set, are returned by Load and Save.
	LoadErr error
	SaveErr error
}

// NewMemoryRepository creates a repository seeded with the given scores.
func NewMemoryRepository(seed map[string]int) *MemoryRepository {
	m := &MemoryRepository{scores: make(map[string]int, len(seed))}
	for name, score := range seed {
		m.scores[name] = score
	}
	return m
}

// Load returns a copy of the stored mapping.
func (m *MemoryRepository) Load(_ context.Context) (map[string]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return copyScores(m.scores), nil
}

// Save replaces the stored mapping.
func (m *MemoryRepository) Save(_ context.Context, scores map[string]int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.scores = copyScores(scores)
	m.saves++
	return nil
}

// RecordSession appends a session to the in-memory history.
func (m *MemoryRepository) RecordSession(_ context.Context, name string, score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions = append(m.sessions, SessionRecord{
		ID:    int64(len(m.sessions) + 1),
		Name:  name,
		Score: score,
	})
	return nil
}

// Scores returns a copy of the stored mapping.
func (m *MemoryRepository) Scores() map[string]int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return copyScores(m.scores)
}

// Sessions returns the recorded history, oldest first.
func (m *MemoryRepository) Sessions() []SessionRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]SessionRecord(nil), m.sessions...)
}

// Saves returns how many successful saves happened.
func (m *MemoryRepository) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

func copyScores(src map[string]int) map[string]int {
	dst := make(map[string]int, len(src))
	for name, score := range src {
		dst[name] = score
	}
	return dst
}
