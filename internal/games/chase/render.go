package chase

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/maze-chase/internal/core"
	"github.com/vovakirdan/maze-chase/internal/games/chase/ai"
	"github.com/vovakirdan/maze-chase/internal/games/chase/combo"
	"github.com/vovakirdan/maze-chase/internal/games/chase/effects"
	"github.com/vovakirdan/maze-chase/internal/games/chase/powerups"
	"github.com/vovakirdan/maze-chase/internal/maze"
	"github.com/vovakirdan/maze-chase/internal/progress"
)

// Map glyphs.
const (
	glyphWall   = '█'
	glyphFood   = '·'
	glyphGoal   = '◎'
	glyphPlayer = '●'
	glyphGhost  = 'ᗣ'
	glyphTarget = '×'
)

var ghostColors = map[ai.Variant]core.Color{
	ai.Chase:      core.ColorBrightRed,
	ai.Patrol:     core.ColorOrange,
	ai.Predictive: core.ColorPink,
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.loadErr != nil {
		g.renderOverlay(dst, core.ColorBrightRed, "Level failed to load", truncate(g.loadErr.Error(), dst.Width()-6))
		return
	}
	if g.level == nil {
		return
	}

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, core.ColorYellow, "Window too small", "Resize to continue")
		return
	}

	view := g.viewport()
	effects.ApplyShake(dst, view, g.fx.Shake, g.now, g.fxRng)
	g.renderMaze(dst)
	g.renderPowerUps(dst)
	g.renderTarget(dst)
	g.renderGhosts(dst)
	g.renderPlayer(dst)
	g.fx.Draw(dst, view)
	dst.SetOffset(0, 0)

	if g.fx.Transition != nil {
		effects.DrawTransition(dst, g.mazeRect(), *g.fx.Transition)
	}

	// Draw overlays
	switch {
	case g.won:
		g.renderResult(dst, "You Win!", "R: new run  |  Q: quit")
	case g.gameOver:
		g.renderOverlay(dst, core.ColorBrightRed, "Game Over", fmt.Sprintf("Score: %d  |  R: restart", g.score))
	case g.levelComplete:
		g.renderResult(dst, fmt.Sprintf("Level %d cleared!", g.levelNum), "Enter: next level  |  R: replay")
	case g.paused:
		g.renderOverlay(dst, core.ColorCyan, "Paused", "P: continue  |  R: restart  |  Q: quit")
	}
}

// viewport maps effect units onto the maze drawing area.
func (g *Game) viewport() effects.Viewport {
	return effects.Viewport{OriginX: g.origin.X, OriginY: g.origin.Y, CellW: cellW, CellH: cellH}
}

// mazeRect is the screen area the maze occupies.
func (g *Game) mazeRect() core.Rect {
	return core.NewRect(g.origin.X, g.origin.Y, g.grid.Cols()*cellW, g.grid.Rows()*cellH)
}

// put draws a glyph in the left column of a maze cell.
func (g *Game) put(dst *core.Screen, p maze.Point, r rune, c core.Color) {
	dst.SetColor(g.origin.X+p.X*cellW, g.origin.Y+p.Y*cellH, r, c)
}

// putAt draws a glyph at an interpolated cell position.
func (g *Game) putAt(dst *core.Screen, v core.Vec, r rune, c core.Color) {
	p := v.Round()
	g.put(dst, p, r, c)
}

// renderHUD draws the two status lines.
func (g *Game) renderHUD(dst *core.Screen) {
	title := " " + g.level.Title()
	if g.level.Boss {
		title += " [BOSS]"
	}
	dst.DrawTextColor(0, 0, title, g.theme.Accent)

	score := fmt.Sprintf("Score: %d ", g.score)
	dst.DrawTextColor(dst.Width()-utf8.RuneCountInString(score), 0, score, core.ColorBrightWhite)

	x := 1
	lives := strings.Repeat("♥", g.lives)
	dst.DrawTextColor(x, 1, lives, core.ColorBrightRed)
	x += utf8.RuneCountInString(lives) + 2

	dst.DrawTextColor(x, 1, fmt.Sprintf("Food: %d", len(g.food)), g.theme.Food)
	x += 10

	if count := g.combo.Count(g.now); count > 1 {
		tier := combo.TierFor(count)
		label := fmt.Sprintf("x%d %s", count, tier.Label())
		dst.DrawTextColor(x, 1, label, effects.ComboColor(count))
		x += utf8.RuneCountInString(label) + 2
	}

	for _, a := range g.mods.List() {
		info := powerups.Lookup(a.Type)
		secs := int((a.Expires - g.now + time.Second - 1) / time.Second)
		label := fmt.Sprintf("%c %ds", info.Glyph, secs)
		dst.DrawTextColor(x, 1, label, info.Color)
		x += utf8.RuneCountInString(label) + 2
	}
}

// renderMaze draws walls, food and the goal.
func (g *Game) renderMaze(dst *core.Screen) {
	for y := range g.grid.Rows() {
		for x := range g.grid.Cols() {
			p := maze.Point{X: x, Y: y}
			sx, sy := g.origin.X+x*cellW, g.origin.Y+y*cellH
			switch g.grid.At(p) {
			case maze.Wall:
				dst.SetColor(sx, sy, glyphWall, g.theme.Wall)
				dst.SetColor(sx+1, sy, glyphWall, g.theme.Wall)
			case maze.Goal:
				c := g.theme.Goal
				if effects.Pulse(g.now, 1) > 0.5 {
					c = core.ColorBrightWhite
				}
				dst.SetColor(sx, sy, glyphGoal, c)
			default:
				if g.food[p] {
					dst.SetColor(sx, sy, glyphFood, g.theme.Food)
				}
			}
		}
	}
}

// renderPowerUps draws uncollected power-ups, blinking gently.
func (g *Game) renderPowerUps(dst *core.Screen) {
	for _, pu := range g.powerUps {
		if pu.Collected {
			continue
		}
		info := powerups.Lookup(pu.Type)
		c := info.Color
		if effects.Pulse(g.now, 2) < 0.2 {
			c = core.ColorWhite
		}
		g.put(dst, pu.Pos, info.Glyph, c)
	}
}

// renderTarget marks the end of the player's committed path.
func (g *Game) renderTarget(dst *core.Screen) {
	if !g.player.Moving() || g.levelComplete {
		return
	}
	g.put(dst, g.player.Target(), glyphTarget, core.ColorGray)
}

// renderGhosts draws ghosts tinted by variant, frozen or vulnerable state.
func (g *Game) renderGhosts(dst *core.Screen) {
	eff := g.mods.Effect(g.now)
	for _, gh := range g.ghosts.Ghosts {
		c := ghostColors[gh.Variant]
		switch {
		case gh.Frozen:
			c = core.ColorBrightCyan
		case eff.Invincible:
			c = core.ColorBlue
			if g.mods.Remaining(powerups.Invincible, g.now) < 2*time.Second && effects.Pulse(g.now, 4) > 0.5 {
				c = core.ColorWhite
			}
		}
		g.putAt(dst, gh.Position(), glyphGhost, c)
	}
}

// renderPlayer draws the player, blinking during the grace period after a hit.
func (g *Game) renderPlayer(dst *core.Screen) {
	if g.now < g.hitUntil && effects.Pulse(g.now, 6) < 0.4 {
		return
	}
	g.putAt(dst, g.player.Position(), glyphPlayer, g.playerColor(g.mods.Effect(g.now)))
}

// renderResult draws the level result box with stars.
func (g *Game) renderResult(dst *core.Screen, title, hint string) {
	lines := []string{title}
	if r := g.result; r != nil {
		stars := strings.Repeat("★", r.Stars) + strings.Repeat("☆", 3-r.Stars)
		lines = append(lines,
			stars,
			fmt.Sprintf("Score %d  Coins %d  Time %.1fs", r.Score, r.Coins, r.Elapsed.Seconds()),
			fmt.Sprintf("Max combo %d  Ghosts %d  Power-ups %d", r.MaxCombo, r.GhostsEaten, r.PowerUps),
		)
	}
	for _, id := range g.newUnlock {
		if a, ok := progress.Lookup(id); ok {
			lines = append(lines, a.Icon+" "+a.Title)
		}
	}
	lines = append(lines, "", hint)
	g.renderBox(dst, core.ColorGold, lines)
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, c core.Color, line1, line2 string) {
	g.renderBox(dst, c, []string{line1, "", line2})
}

// renderBox draws a bordered box with centered lines.
func (g *Game) renderBox(dst *core.Screen, c core.Color, lines []string) {
	maxLen := 0
	for _, l := range lines {
		maxLen = max(maxLen, utf8.RuneCountInString(l))
	}
	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, c)
	for i, l := range lines {
		dst.DrawTextCenteredColor(box.Y+1+i, l, core.ColorBrightWhite)
	}
	dst.DrawTextCenteredColor(box.Y+1, lines[0], c)
}

// truncate shortens s to at most n runes.
func truncate(s string, n int) string {
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-1]) + "…"
}
