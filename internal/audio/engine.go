package audio

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/maze-chase/internal/events"
)

// DefaultSampleRate is the speaker rate.
const DefaultSampleRate = beep.SampleRate(44100)

// maxVoices caps concurrently mixed cues; extra cues are dropped.
const maxVoices = 16

// Engine plays cues for drained events. It starts silent: Start must
// succeed before anything is heard, and a failed Start leaves a working
// no-op engine.
type Engine struct {
	mu      sync.Mutex
	rate    beep.SampleRate
	mixer   *beep.Mixer
	volume  float64
	running bool

	muted   atomic.Bool
	played  atomic.Uint64
	dropped atomic.Uint64
}

// NewEngine creates an engine at the given master volume (0.0-1.0).
func NewEngine(volume float64) *Engine {
	e := &Engine{
		rate:  DefaultSampleRate,
		mixer: &beep.Mixer{},
	}
	e.SetVolume(volume)
	return e
}

// Start opens the speaker. Only one engine per process may be started.
func (e *Engine) Start() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.running {
		return nil
	}
	if err := speaker.Init(e.rate, e.rate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(e.mixer)
	e.running = true
	return nil
}

// Stop silences everything still playing.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.running {
		return
	}
	speaker.Lock()
	e.mixer.Clear()
	speaker.Unlock()
	e.running = false
}

// Handle plays the cue for every event, in order.
func (e *Engine) Handle(evs []events.Event) {
	for _, ev := range evs {
		if c, count := CueFor(ev); c != CueNone {
			e.Play(c, count)
		}
	}
}

// Play queues a cue. It reports whether the cue was mixed in.
func (e *Engine) Play(c Cue, count int) bool {
	if e.muted.Load() {
		return false
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.running || e.volume <= 0 {
		return false
	}
	notes := Notes(c, count)
	if len(notes) == 0 {
		return false
	}
	s := Render(notes, e.rate, e.volume)

	speaker.Lock()
	defer speaker.Unlock()
	if e.mixer.Len() >= maxVoices {
		e.dropped.Add(1)
		return false
	}
	e.mixer.Add(s)
	e.played.Add(1)
	return true
}

// ToggleMute flips the mute state and reports whether sound is now on.
func (e *Engine) ToggleMute() bool {
	muted := !e.muted.Load()
	e.muted.Store(muted)
	return !muted
}

// SetMuted sets the mute state.
func (e *Engine) SetMuted(m bool) {
	e.muted.Store(m)
}

// Muted reports the mute state.
func (e *Engine) Muted() bool {
	return e.muted.Load()
}

// Running reports whether the speaker was opened.
func (e *Engine) Running() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.running
}

// SetVolume updates master volume, clamped to 0.0-1.0.
func (e *Engine) SetVolume(vol float64) {
	vol = min(max(vol, 0), 1)
	e.mu.Lock()
	e.volume = vol
	e.mu.Unlock()
}

// Stats returns how many cues were played and dropped.
func (e *Engine) Stats() (played, dropped uint64) {
	return e.played.Load(), e.dropped.Load()
}
