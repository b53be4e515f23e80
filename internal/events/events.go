// Package events carries the discrete notifications the simulation emits
// each tick. Consumers (audio, UI feedback) drain the queue after Step; the
// simulation never reads it back.
package events

import (
	"time"

	"github.com/vovakirdan/maze-chase/internal/core"
)

// Name identifies an event kind.
type Name string

const (
	Move             Name = "move"
	Collect          Name = "collect"
	ComboTierChange  Name = "combo-tier-change"
	PowerUpCollected Name = "power-up-collected"
	PowerUpExpired   Name = "power-up-expired"
	GhostAlert       Name = "ghost-alert"
	GhostEaten       Name = "ghost-eaten"
	PlayerHit        Name = "player-hit"
	PlayerDied       Name = "player-died"
	LevelStart       Name = "level-start"
	LevelComplete    Name = "level-complete"
	GameOver         Name = "game-over"
)

// Event is a single fire-and-forget notification.
type Event struct {
	Name Name
	At   time.Duration // Simulation time
	Cell core.Point

	// Optional payload, meaning depends on Name: combo count, score gained,
	// power-up type, level number.
	Value int
	Label string
}

// Queue is an append-only buffer of events for the current tick.
// It is not safe for concurrent use; the simulation owns it.
type Queue struct {
	items []Event
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{items: make([]Event, 0, 16)}
}

// Push appends an event.
func (q *Queue) Push(e Event) {
	q.items = append(q.items, e)
}

// Emit is shorthand for pushing an event with only a name, time and cell.
func (q *Queue) Emit(name Name, at time.Duration, cell core.Point) {
	q.Push(Event{Name: name, At: at, Cell: cell})
}

// Len returns the number of queued events.
func (q *Queue) Len() int {
	return len(q.items)
}

// Drain returns all queued events in order and empties the queue.
func (q *Queue) Drain() []Event {
	if len(q.items) == 0 {
		return nil
	}
	out := make([]Event, len(q.items))
	copy(out, q.items)
	q.items = q.items[:0]
	return out
}

// Reset discards all queued events.
func (q *Queue) Reset() {
	q.items = q.items[:0]
}

// Limiter lets an event through at most once per cooldown.
// The zero value with a cooldown set allows the first call.
type Limiter struct {
	Cooldown time.Duration

	last  time.Duration
	fired bool
}

// NewLimiter creates a limiter with the given cooldown.
func NewLimiter(cooldown time.Duration) *Limiter {
	return &Limiter{Cooldown: cooldown}
}

// Allow reports whether an event at time now may fire, and records it if so.
func (l *Limiter) Allow(now time.Duration) bool {
	if l.fired && now-l.last < l.Cooldown {
		return false
	}
	l.last = now
	l.fired = true
	return true
}

// Reset forgets the last firing.
func (l *Limiter) Reset() {
	l.fired = false
	l.last = 0
}
