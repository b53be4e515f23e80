// Package progress defines the write-only sink the simulation reports
// finished levels and unlocked achievements to, and the achievement catalog.
package progress

import (
	"sync"
	"time"
)

// LevelResult describes one completed level attempt.
type LevelResult struct {
	Mode        string
	Level       int
	Elapsed     time.Duration
	Stars       int
	Coins       int // Food collected
	Score       int // Score gained during the level
	TotalScore  int
	GhostsEaten int
	PowerUps    int
	MaxCombo    int
	LivesLost   int
}

// Unlock is an achievement earned for the first time in a session.
type Unlock struct {
	ID    AchievementID
	Level int
	At    time.Duration
}

// Sink receives progress records. Implementations must not block the tick
// for long; errors are reported back but never change simulation state.
type Sink interface {
	RecordLevel(r LevelResult) error
	RecordUnlock(u Unlock) error
}

// Discard is a Sink that drops everything.
type Discard struct{}

func (Discard) RecordLevel(LevelResult) error { return nil }
func (Discard) RecordUnlock(Unlock) error     { return nil }

// Memory is an in-memory Sink, used by tests and by sessions without a database.
type Memory struct {
	mu      sync.Mutex
	Levels  []LevelResult
	Unlocks []Unlock
}

// RecordLevel appends the result.
func (m *Memory) RecordLevel(r LevelResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Levels = append(m.Levels, r)
	return nil
}

// RecordUnlock appends the unlock.
func (m *Memory) RecordUnlock(u Unlock) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Unlocks = append(m.Unlocks, u)
	return nil
}
