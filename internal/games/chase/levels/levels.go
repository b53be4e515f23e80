// Package levels provides level definitions, validation and loading for the
// maze chase game. Levels come from YAML files or from the maze generator.
package levels

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/maze-chase/internal/games/chase/ai"
	"github.com/vovakirdan/maze-chase/internal/games/chase/levels/formats"
	"github.com/vovakirdan/maze-chase/internal/maze"
)

// Validation error codes.
const (
	CodeBadFile         = "BAD_FILE"
	CodeBadLayout       = "BAD_LAYOUT"
	CodeNoStart         = "NO_START"
	CodeNoGoal          = "NO_GOAL"
	CodeGoalUnreachable = "GOAL_UNREACHABLE"
	CodeGhostOnWall     = "GHOST_ON_WALL"
	CodeWaypointOnWall  = "WAYPOINT_ON_WALL"
	CodeGhostCutOff     = "GHOST_CUT_OFF"
	CodeWaypointCutOff  = "WAYPOINT_CUT_OFF"
	CodeBadVariant      = "BAD_VARIANT"
)

// ValidationError contains details about a level that cannot be played.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// GhostSpec describes where a ghost spawns and how it behaves.
type GhostSpec struct {
	Variant   ai.Variant
	At        maze.Point
	Waypoints []maze.Point
	Speed     float64 // Multiplier on the difficulty ghost speed, 0 means 1
}

// Definition is a level as authored, before validation.
type Definition struct {
	Number int
	Name   string
	Theme  string
	Boss   bool
	Layout []string
	Ghosts []GhostSpec
}

// Level is a validated definition with its parsed grid.
type Level struct {
	Definition
	Grid     *maze.Grid
	FilePath string // Empty for embedded and generated levels
}

// bossSpeed is the default ghost speed multiplier on boss levels.
const bossSpeed = 1.15

// Build validates the definition and parses its grid. A level is returned
// only when every check passes.
func (d Definition) Build() (*Level, error) {
	g, err := maze.Parse(d.Layout)
	if err != nil {
		return nil, layoutError(err)
	}
	if err := g.Validate(); err != nil {
		return nil, ValidationError{
			Code:    CodeGoalUnreachable,
			Message: fmt.Sprintf("goal %v cannot be reached from start %v", g.Goal(), g.Start()),
		}
	}

	for i, gs := range d.Ghosts {
		if !g.Walkable(gs.At) {
			return nil, ValidationError{
				Code:    CodeGhostOnWall,
				Message: fmt.Sprintf("ghost %d spawns on a wall at %v", i, gs.At),
			}
		}
		if !g.Reachable(g.Start(), gs.At) {
			return nil, ValidationError{
				Code:    CodeGhostCutOff,
				Message: fmt.Sprintf("ghost %d at %v cannot reach start %v", i, gs.At, g.Start()),
			}
		}
		for _, wp := range gs.Waypoints {
			if !g.Walkable(wp) {
				return nil, ValidationError{
					Code:    CodeWaypointOnWall,
					Message: fmt.Sprintf("ghost %d has a waypoint on a wall at %v", i, wp),
				}
			}
			if !g.Reachable(gs.At, wp) {
				return nil, ValidationError{
					Code:    CodeWaypointCutOff,
					Message: fmt.Sprintf("ghost %d cannot reach its waypoint %v", i, wp),
				}
			}
		}
	}

	return &Level{Definition: d, Grid: g}, nil
}

// layoutError maps grid parse failures onto validation codes.
func layoutError(err error) error {
	code := CodeBadLayout
	switch {
	case errors.Is(err, maze.ErrNoStart):
		code = CodeNoStart
	case errors.Is(err, maze.ErrNoGoal):
		code = CodeNoGoal
	}
	return ValidationError{Code: code, Message: err.Error()}
}

// NewGhosts creates fresh ghosts for a new attempt at the level.
func (l *Level) NewGhosts() []*ai.Ghost {
	ghosts := make([]*ai.Ghost, 0, len(l.Ghosts))
	for i, gs := range l.Ghosts {
		gh := ai.NewGhost(i, gs.Variant, gs.At, gs.Waypoints)
		switch {
		case gs.Speed > 0:
			gh.Speed = gs.Speed
		case l.Boss:
			gh.Speed = bossSpeed
		}
		ghosts = append(ghosts, gh)
	}
	return ghosts
}

// Title returns the display title, e.g. "Level 3: Lookout".
func (l *Level) Title() string {
	if l.Name == "" {
		return fmt.Sprintf("Level %d", l.Number)
	}
	return fmt.Sprintf("Level %d: %s", l.Number, l.Name)
}

// FromYAML converts a parsed file into a definition.
func FromYAML(yl formats.YAMLLevel) (Definition, error) {
	d := Definition{
		Number: yl.Number,
		Name:   yl.Name,
		Theme:  yl.Theme,
		Boss:   yl.Boss,
		Layout: yl.Layout,
	}
	for i, yg := range yl.Ghosts {
		v, err := ai.ParseVariant(yg.Variant)
		if err != nil {
			return Definition{}, ValidationError{
				Code:    CodeBadVariant,
				Message: fmt.Sprintf("ghost %d: %v", i, err),
			}
		}
		gs := GhostSpec{
			Variant: v,
			At:      maze.Point{X: yg.At.X, Y: yg.At.Y},
			Speed:   yg.Speed,
		}
		for _, wp := range yg.Waypoints {
			gs.Waypoints = append(gs.Waypoints, maze.Point{X: wp.X, Y: wp.Y})
		}
		d.Ghosts = append(d.Ghosts, gs)
	}
	return d, nil
}

// ToYAML converts a definition into its file representation.
func ToYAML(d Definition) formats.YAMLLevel {
	yl := formats.YAMLLevel{
		Number: d.Number,
		Name:   d.Name,
		Theme:  d.Theme,
		Boss:   d.Boss,
		Layout: append([]string(nil), d.Layout...),
	}
	for _, gs := range d.Ghosts {
		yg := formats.YAMLGhost{
			Variant: gs.Variant.String(),
			At:      formats.YAMLPoint{X: gs.At.X, Y: gs.At.Y},
			Speed:   gs.Speed,
		}
		for _, wp := range gs.Waypoints {
			yg.Waypoints = append(yg.Waypoints, formats.YAMLPoint{X: wp.X, Y: wp.Y})
		}
		yl.Ghosts = append(yl.Ghosts, yg)
	}
	return yl
}

// Parse decodes and validates a YAML level.
func Parse(data []byte) (*Level, error) {
	yl, err := formats.ParseYAML(data)
	if err != nil {
		return nil, ValidationError{Code: CodeBadFile, Message: err.Error()}
	}
	d, err := FromYAML(yl)
	if err != nil {
		return nil, err
	}
	return d.Build()
}
