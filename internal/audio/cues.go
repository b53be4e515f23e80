package audio

import (
	"time"

	"github.com/vovakirdan/maze-chase/internal/events"
	"github.com/vovakirdan/maze-chase/internal/games/chase/powerups"
)

// Cue identifies a sound effect.
type Cue int

const (
	CueNone Cue = iota
	CueMove
	CueEat
	CueCombo
	CuePowerUp
	CuePowerUpEnd
	CueFreeze
	CueInvincible
	CueMultiplier
	CueGhostAlert
	CueGhostEaten
	CueHit
	CueDie
	CueLevelStart
	CueWin
	CueGameOver
)

var cueNames = map[Cue]string{
	CueNone:       "none",
	CueMove:       "move",
	CueEat:        "eat",
	CueCombo:      "combo",
	CuePowerUp:    "power-up",
	CuePowerUpEnd: "power-up-end",
	CueFreeze:     "freeze",
	CueInvincible: "invincible",
	CueMultiplier: "multiplier",
	CueGhostAlert: "ghost-alert",
	CueGhostEaten: "ghost-eaten",
	CueHit:        "hit",
	CueDie:        "die",
	CueLevelStart: "level-start",
	CueWin:        "win",
	CueGameOver:   "game-over",
}

// String returns the cue name.
func (c Cue) String() string {
	if s, ok := cueNames[c]; ok {
		return s
	}
	return "unknown"
}

// CueFor picks the cue for an event. The second value is the combo count
// for CueCombo and zero otherwise.
func CueFor(e events.Event) (Cue, int) {
	switch e.Name {
	case events.Move:
		return CueMove, 0
	case events.Collect:
		return CueEat, 0
	case events.ComboTierChange:
		return CueCombo, e.Value
	case events.PowerUpCollected:
		switch powerups.Type(e.Value) {
		case powerups.Freeze:
			return CueFreeze, 0
		case powerups.Invincible:
			return CueInvincible, 0
		case powerups.Multiplier:
			return CueMultiplier, 0
		default:
			return CuePowerUp, 0
		}
	case events.PowerUpExpired:
		return CuePowerUpEnd, 0
	case events.GhostAlert:
		return CueGhostAlert, 0
	case events.GhostEaten:
		return CueGhostEaten, 0
	case events.PlayerHit:
		if e.Value > 0 {
			return CueHit, 0
		}
		return CueNone, 0 // The death cue follows
	case events.PlayerDied:
		return CueDie, 0
	case events.LevelStart:
		return CueLevelStart, 0
	case events.LevelComplete:
		return CueWin, 0
	case events.GameOver:
		if e.Label == "won" {
			return CueNone, 0
		}
		return CueGameOver, 0
	default:
		return CueNone, 0
	}
}

const ms = time.Millisecond

// Musical notes used by the cues.
const (
	noteC5 = 523.25
	noteE5 = 659.25
	noteG5 = 783.99
	noteB5 = 987.77
	noteC6 = 1046.5
	noteE6 = 1318.51
)

var cueNotes = map[Cue][]Note{
	CueMove: {
		{Wave: WaveSine, Freq: 800, Duration: 50 * ms, Volume: 0.04},
	},
	CueEat: {
		{Wave: WaveSquare, Freq: 1200, Duration: 100 * ms},
		{Wave: WaveSine, Freq: 1800, Duration: 100 * ms, Start: 50 * ms},
	},
	CuePowerUp: {
		{Wave: WaveSine, Freq: noteC5, Duration: 100 * ms},
		{Wave: WaveSine, Freq: noteE5, Duration: 100 * ms, Start: 50 * ms},
		{Wave: WaveSine, Freq: noteG5, Duration: 100 * ms, Start: 100 * ms},
		{Wave: WaveTriangle, Freq: noteC6, Duration: 300 * ms, Start: 150 * ms, Volume: 0.15},
	},
	CuePowerUpEnd: {
		{Wave: WaveSine, Freq: 600, Duration: 150 * ms},
		{Wave: WaveSine, Freq: 400, Duration: 150 * ms, Start: 100 * ms},
		{Wave: WaveSine, Freq: 300, Duration: 200 * ms, Start: 200 * ms},
	},
	CueFreeze: {
		{Wave: WaveSine, Freq: 1000, Duration: 200 * ms},
		{Wave: WaveTriangle, Freq: 800, Duration: 300 * ms, Start: 100 * ms, Volume: 0.15},
		{Wave: WaveSine, Freq: 1200, Duration: 200 * ms, Start: 200 * ms},
	},
	CueInvincible: {
		{Wave: WaveTriangle, Freq: 800, Duration: 100 * ms, Volume: 0.05},
		{Wave: WaveTriangle, Freq: 1000, Duration: 100 * ms, Start: 50 * ms, Volume: 0.05},
	},
	CueMultiplier: {
		{Wave: WaveSine, Freq: 600, Duration: 100 * ms, Volume: 0.08},
		{Wave: WaveSine, Freq: 900, Duration: 100 * ms, Start: 50 * ms, Volume: 0.08},
	},
	CueGhostAlert: {
		{Wave: WaveSaw, Freq: 150, Duration: 300 * ms},
		{Wave: WaveSaw, Freq: 100, Duration: 300 * ms, Start: 100 * ms},
	},
	CueGhostEaten: {
		{Wave: WaveSine, Freq: noteE5, Duration: 150 * ms},
		{Wave: WaveSine, Freq: noteG5, Duration: 150 * ms, Start: 100 * ms},
		{Wave: WaveSine, Freq: noteB5, Duration: 150 * ms, Start: 200 * ms},
		{Wave: WaveTriangle, Freq: noteE6, Duration: 500 * ms, Start: 300 * ms, Volume: 0.2},
	},
	CueHit: {
		{Wave: WaveSaw, Freq: 300, Duration: 200 * ms, Volume: 0.15},
		{Wave: WaveSquare, Freq: 150, Duration: 300 * ms, Start: 100 * ms},
	},
	CueDie: {
		{Wave: WaveSaw, Freq: 400, EndFreq: 50, Duration: 500 * ms, Volume: 0.2},
	},
	CueLevelStart: {
		{Wave: WaveSine, Freq: 400, Duration: 100 * ms},
		{Wave: WaveSine, Freq: 500, Duration: 100 * ms, Start: 100 * ms},
		{Wave: WaveSine, Freq: 600, Duration: 150 * ms, Start: 200 * ms},
	},
	CueWin: {
		{Wave: WaveSquare, Freq: noteC5, Duration: 100 * ms},
		{Wave: WaveSquare, Freq: noteE5, Duration: 100 * ms, Start: 100 * ms},
		{Wave: WaveSquare, Freq: noteG5, Duration: 100 * ms, Start: 200 * ms},
		{Wave: WaveSquare, Freq: noteC6, Duration: 400 * ms, Start: 300 * ms},
		{Wave: WaveTriangle, Freq: noteE6, Duration: 400 * ms, Start: 400 * ms, Volume: 0.15},
	},
	CueGameOver: {
		{Wave: WaveSaw, Freq: 300, Duration: 200 * ms, Volume: 0.15},
		{Wave: WaveSaw, Freq: 250, Duration: 200 * ms, Start: 150 * ms, Volume: 0.15},
		{Wave: WaveSaw, Freq: 200, Duration: 300 * ms, Start: 300 * ms, Volume: 0.12},
		{Wave: WaveSine, Freq: 100, Duration: 500 * ms, Start: 450 * ms},
	},
}

// Notes returns the voices of a cue. Combo cues rise in pitch with the
// count and gain a third voice from x5 on.
func Notes(c Cue, count int) []Note {
	if c != CueCombo {
		return cueNotes[c]
	}
	base := 800 + float64(count)*100
	notes := []Note{
		{Wave: WaveSquare, Freq: base, Duration: 80 * ms},
		{Wave: WaveSine, Freq: base * 1.5, Duration: 80 * ms, Start: 20 * ms},
	}
	if count >= 5 {
		notes = append(notes, Note{Wave: WaveTriangle, Freq: base * 2, Duration: 100 * ms, Start: 50 * ms, Volume: 0.15})
	}
	return notes
}
