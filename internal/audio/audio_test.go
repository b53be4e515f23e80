package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/maze-chase/internal/events"
	"github.com/vovakirdan/maze-chase/internal/games/chase/powerups"
)

// drain streams s to the end and returns the sample count and peak.
func drain(s beep.Streamer) (int, float64) {
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for range 10000 {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = max(peak, buf[i][0], -buf[i][0])
		}
		total += n
		if !ok {
			break
		}
	}
	return total, peak
}

func TestOscillatorWaves(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, w := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveTriangle} {
		osc := NewOscillator(440, 10*time.Millisecond, w, rate)
		n, peak := drain(osc)
		if n != rate.N(10*time.Millisecond) {
			t.Errorf("wave %d streamed %d samples, expected %d", w, n, rate.N(10*time.Millisecond))
		}
		if peak > 1 {
			t.Errorf("wave %d peak %f out of range", w, peak)
		}
		if osc.Err() != nil {
			t.Errorf("wave %d error: %v", w, osc.Err())
		}
	}
}

func TestSquareWaveValues(t *testing.T) {
	osc := NewOscillator(220, 5*time.Millisecond, WaveSquare, beep.SampleRate(44100))
	buf := make([][2]float64, 100)
	n, _ := osc.Stream(buf)
	for i := 0; i < n; i++ {
		if v := buf[i][0]; v != 1 && v != -1 {
			t.Fatalf("square sample %d = %f, expected -1 or 1", i, v)
		}
	}
}

func TestDecayFades(t *testing.T) {
	rate := beep.SampleRate(8000)
	d := NewDecay(NewOscillator(100, 100*time.Millisecond, WaveSquare, rate), 100*time.Millisecond, rate)
	buf := make([][2]float64, rate.N(100*time.Millisecond))
	n, _ := d.Stream(buf)

	head := buf[0][0]
	if head != 1 {
		t.Errorf("first sample = %f, expected 1", head)
	}
	tail := buf[n-1][0]
	if tail > 0.02 || tail < -0.02 {
		t.Errorf("last sample = %f, expected close to silence", tail)
	}
}

func TestRenderIsFinite(t *testing.T) {
	rate := DefaultSampleRate
	for c := CueMove; c <= CueGameOver; c++ {
		notes := Notes(c, 6)
		if len(notes) == 0 {
			t.Errorf("%s has no notes", c)
			continue
		}
		n, peak := drain(Render(notes, rate, 1))
		// The mix pads its final buffer with silence
		if want := rate.N(Length(notes)); n < want-1 || n > want+512 {
			t.Errorf("%s streamed %d samples, expected about %d", c, n, want)
		}
		if peak > 1 {
			t.Errorf("%s peak %f clips", c, peak)
		}
	}
}

func TestComboPitchRises(t *testing.T) {
	low, high := Notes(CueCombo, 2), Notes(CueCombo, 8)
	if high[0].Freq <= low[0].Freq {
		t.Errorf("combo x8 (%v Hz) should be higher than x2 (%v Hz)", high[0].Freq, low[0].Freq)
	}
	if len(low) != 2 || len(high) != 3 {
		t.Errorf("voices = %d and %d, expected 2 and 3", len(low), len(high))
	}
}

func TestCueFor(t *testing.T) {
	tests := []struct {
		event events.Event
		cue   Cue
	}{
		{events.Event{Name: events.Move}, CueMove},
		{events.Event{Name: events.Collect, Value: 10}, CueEat},
		{events.Event{Name: events.ComboTierChange, Value: 5}, CueCombo},
		{events.Event{Name: events.PowerUpCollected, Value: int(powerups.Speed)}, CuePowerUp},
		{events.Event{Name: events.PowerUpCollected, Value: int(powerups.Freeze)}, CueFreeze},
		{events.Event{Name: events.PowerUpCollected, Value: int(powerups.Invincible)}, CueInvincible},
		{events.Event{Name: events.PowerUpCollected, Value: int(powerups.Multiplier)}, CueMultiplier},
		{events.Event{Name: events.PowerUpExpired}, CuePowerUpEnd},
		{events.Event{Name: events.GhostAlert}, CueGhostAlert},
		{events.Event{Name: events.GhostEaten}, CueGhostEaten},
		{events.Event{Name: events.PlayerHit, Value: 2}, CueHit},
		{events.Event{Name: events.PlayerHit, Value: 0}, CueNone},
		{events.Event{Name: events.PlayerDied}, CueDie},
		{events.Event{Name: events.LevelStart}, CueLevelStart},
		{events.Event{Name: events.LevelComplete}, CueWin},
		{events.Event{Name: events.GameOver}, CueGameOver},
		{events.Event{Name: events.GameOver, Label: "won"}, CueNone},
		{events.Event{Name: "unknown"}, CueNone},
	}

	for _, tt := range tests {
		t.Run(string(tt.event.Name), func(t *testing.T) {
			if got, _ := CueFor(tt.event); got != tt.cue {
				t.Errorf("CueFor(%+v) = %s, expected %s", tt.event, got, tt.cue)
			}
		})
	}

	if _, count := CueFor(events.Event{Name: events.ComboTierChange, Value: 7}); count != 7 {
		t.Errorf("combo count = %d, expected 7", count)
	}
}

func TestEngineSilentUntilStarted(t *testing.T) {
	e := NewEngine(0.8)
	if e.Running() {
		t.Fatal("new engine should not be running")
	}

	e.Handle([]events.Event{{Name: events.Collect}, {Name: events.PlayerDied}})
	if e.Play(CueEat, 0) {
		t.Error("Play on a stopped engine should report false")
	}
	if played, _ := e.Stats(); played != 0 {
		t.Errorf("played = %d, expected 0", played)
	}
	e.Stop()
}

func TestEngineMute(t *testing.T) {
	e := NewEngine(1)
	if e.Muted() {
		t.Error("new engine should not be muted")
	}
	if on := e.ToggleMute(); on {
		t.Error("ToggleMute should turn sound off first")
	}
	if !e.Muted() {
		t.Error("engine should be muted")
	}
	e.SetMuted(false)
	if e.Muted() {
		t.Error("SetMuted(false) should unmute")
	}
}
