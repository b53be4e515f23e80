package chase

import (
	"time"

	"github.com/vovakirdan/maze-chase/internal/core"
	"github.com/vovakirdan/maze-chase/internal/games/chase/ai"
	"github.com/vovakirdan/maze-chase/internal/games/chase/combo"
	"github.com/vovakirdan/maze-chase/internal/games/chase/effects"
	"github.com/vovakirdan/maze-chase/internal/games/chase/powerups"
	"github.com/vovakirdan/maze-chase/internal/maze"
	"github.com/vovakirdan/maze-chase/internal/progress"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying       GameStateType = "playing"
	StatePaused        GameStateType = "paused"
	StateLevelComplete GameStateType = "level_complete"
	StateGameOver      GameStateType = "game_over"
	StateWin           GameStateType = "win"
	StateLoadError     GameStateType = "load_error"
	StatePausedSmall   GameStateType = "paused_small_window"
)

// PlayerView is the player as seen by presentation.
type PlayerView struct {
	Cell      maze.Point
	Position  core.Vec
	Path      []maze.Point
	Lives     int
	Combo     int
	Tier      combo.Tier
	Modifiers []powerups.Active
	Grace     bool // Recently hit, ghosts pass through
}

// GhostView is one ghost as seen by presentation.
type GhostView struct {
	ID       int
	Variant  ai.Variant
	Cell     maze.Point
	Position core.Vec
	Frozen   bool
	Chasing  bool
}

// Snapshot captures the complete game state for determinism testing and
// the presentation layer. It shares no memory with the game.
type Snapshot struct {
	Tick      uint64
	Now       time.Duration
	Mode      string
	Level     int // 1-indexed
	LevelName string
	Boss      bool
	Score     int
	Player    PlayerView
	Ghosts    []GhostView
	Food      []maze.Point // Row-major order
	PowerUps  []powerups.Instance
	Effects   effects.Set
	Result    *progress.LevelResult
	Unlocked  []progress.AchievementID // Earned on the last clear
	State     GameStateType
}

// Snapshot returns a deep copy of the current state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:  g.tick,
		Now:   g.now,
		Mode:  string(g.mode),
		Level: g.levelNum,
		Score: g.score,
		State: g.stateType(),
	}
	if g.level == nil {
		return s
	}
	s.LevelName = g.level.Name
	s.Boss = g.level.Boss

	s.Player = PlayerView{
		Cell:      g.player.Cell(),
		Position:  g.player.Position(),
		Path:      g.player.Path(),
		Lives:     g.lives,
		Combo:     g.combo.Count(g.now),
		Tier:      combo.TierFor(g.combo.Count(g.now)),
		Modifiers: g.mods.List(),
		Grace:     g.now < g.hitUntil,
	}

	for _, gh := range g.ghosts.Ghosts {
		s.Ghosts = append(s.Ghosts, GhostView{
			ID:       gh.ID,
			Variant:  gh.Variant,
			Cell:     gh.Cell(),
			Position: gh.Position(),
			Frozen:   gh.Frozen,
			Chasing:  gh.Chasing(),
		})
	}

	for _, p := range g.grid.Cells(maze.Food) {
		if g.food[p] {
			s.Food = append(s.Food, p)
		}
	}
	for _, pu := range g.powerUps {
		if !pu.Collected {
			s.PowerUps = append(s.PowerUps, pu)
		}
	}

	s.Effects = g.fx.Clone()
	if g.result != nil {
		r := *g.result
		s.Result = &r
	}
	s.Unlocked = append([]progress.AchievementID(nil), g.newUnlock...)
	return s
}

// stateType summarizes the flags.
func (g *Game) stateType() GameStateType {
	switch {
	case g.loadErr != nil:
		return StateLoadError
	case g.tooSmall:
		return StatePausedSmall
	case g.won:
		return StateWin
	case g.gameOver:
		return StateGameOver
	case g.levelComplete:
		return StateLevelComplete
	case g.paused:
		return StatePaused
	default:
		return StatePlaying
	}
}
