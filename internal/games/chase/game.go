// Package chase is the maze chase game: the player clicks or steers through a
// maze eating food while ghosts hunt them, and power-ups turn the tables for
// a few seconds. The simulation advances in fixed ticks on its own clock.
package chase

import (
	"math/rand"
	"strconv"
	"time"

	"github.com/vovakirdan/maze-chase/internal/config"
	"github.com/vovakirdan/maze-chase/internal/core"
	"github.com/vovakirdan/maze-chase/internal/events"
	"github.com/vovakirdan/maze-chase/internal/games/chase/ai"
	"github.com/vovakirdan/maze-chase/internal/games/chase/combo"
	"github.com/vovakirdan/maze-chase/internal/games/chase/effects"
	"github.com/vovakirdan/maze-chase/internal/games/chase/levels"
	"github.com/vovakirdan/maze-chase/internal/games/chase/movement"
	"github.com/vovakirdan/maze-chase/internal/games/chase/powerups"
	"github.com/vovakirdan/maze-chase/internal/maze"
	"github.com/vovakirdan/maze-chase/internal/progress"
	"github.com/vovakirdan/maze-chase/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeCampaign Mode = "campaign"
	ModeEndless  Mode = "endless"
)

// Layout constants, in screen cells.
const (
	cellW     = 2
	cellH     = 1
	hudHeight = 2
)

// Package-level variables for config/difficulty set from the CLI.
var (
	configPath         string
	difficultyPreset   config.DifficultyPreset
	selectedStartLevel int
	levelsDir          string
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset ("easy", "normal", "hard", "fixed").
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetStartLevel sets the starting level (1-indexed). 0 means start from beginning.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// GetStartLevel returns the currently selected start level.
func GetStartLevel() int {
	return selectedStartLevel
}

// SetLevelsDir replaces the built-in campaign with the levels in dir.
func SetLevelsDir(dir string) {
	levelsDir = dir
}

// Game implements the maze chase game.
type Game struct {
	mode   Mode
	rng    *rand.Rand // Gameplay randomness, part of the deterministic state
	fxRng  *rand.Rand // Render-only randomness (shake jitter)
	seed   int64
	cfg    config.ChaseConfig
	diff   *config.DifficultyManager
	source *levels.Source
	custom []*levels.Level
	sink   progress.Sink

	// Level
	level    *levels.Level
	levelNum int
	grid     *maze.Grid
	theme    levels.Theme

	// Simulation clock
	tick       uint64
	dt         time.Duration
	now        time.Duration
	levelStart time.Duration

	// Player
	player    *movement.Mover
	lives     int
	mods      *powerups.Modifiers
	combo     *combo.Tracker
	lastTier  combo.Tier
	hitUntil  time.Duration
	score     int
	attempt   attemptStart
	food      map[maze.Point]bool
	powerUps  []powerups.Instance
	ghosts    *ai.Controller
	fx        effects.Set
	queue     *events.Queue
	stats     levelStats
	result    *progress.LevelResult
	unlocked  map[progress.AchievementID]bool
	newUnlock []progress.AchievementID
	sinkErr   error
	loadErr   error
	cfgErr    error

	// Screen
	screenW  int
	screenH  int
	origin   core.Point
	tooSmall bool

	// Flags
	paused        bool
	levelComplete bool
	gameOver      bool
	won           bool
	quit          bool
}

// attemptStart is what a restart of the current level rolls back to.
type attemptStart struct {
	score int
	lives int
}

// levelStats accumulates the numbers reported when a level is cleared.
type levelStats struct {
	score       int
	coins       int
	ghostsEaten int
	powerUps    int
	maxCombo    int
	livesLost   int
}

// New creates a new campaign mode game.
func New() *Game {
	return &Game{mode: ModeCampaign, sink: progress.Discard{}}
}

// NewEndless creates a new endless mode game with generated mazes.
func NewEndless() *Game {
	return &Game{mode: ModeEndless, sink: progress.Discard{}}
}

// NewCustom creates a campaign game over the given levels, in order.
func NewCustom(lvls ...*levels.Level) *Game {
	return &Game{mode: ModeCampaign, sink: progress.Discard{}, custom: lvls}
}

func init() {
	registry.Register("chase", func() registry.Game {
		return New()
	})
	registry.Register("chase_endless", func() registry.Game {
		return NewEndless()
	})
}

var (
	_ registry.Game             = (*Game)(nil)
	_ registry.EventSource      = (*Game)(nil)
	_ registry.ProgressRecorder = (*Game)(nil)
	_ registry.PointerMapper    = (*Game)(nil)
	_ registry.Resizer          = (*Game)(nil)
)

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "chase_endless"
	}
	return "chase"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Maze Chase (Endless)"
	}
	return "Maze Chase"
}

// SetSink sets where finished levels and unlocks are reported.
func (g *Game) SetSink(s progress.Sink) {
	if s == nil {
		s = progress.Discard{}
	}
	g.sink = s
}

// SinkError returns the last error the progress sink reported, if any.
func (g *Game) SinkError() error {
	return g.sinkErr
}

// ConfigError returns the config load failure that made the last Reset
// fall back to the built-in defaults, if any.
func (g *Game) ConfigError() error {
	return g.cfgErr
}

// LoadError returns the level load failure that stopped the game, if any.
func (g *Game) LoadError() error {
	return g.loadErr
}

// SetConfig overrides the loaded configuration. It takes effect on the
// next level load.
func (g *Game) SetConfig(cfg config.ChaseConfig) {
	g.cfg = cfg
	g.diff = config.NewDifficultyManager(cfg.Difficulty)
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.seed = cfg.Seed
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.fxRng = rand.New(rand.NewSource(cfg.Seed ^ 0x5eed))
	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.dt = time.Second / time.Duration(tickRate)
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	if g.sink == nil {
		g.sink = progress.Discard{}
	}

	// Load game config unless one was injected
	if g.diff == nil {
		c, err := config.LoadChase(configPath)
		g.cfgErr = err
		if err != nil {
			c = config.DefaultChaseConfig()
		}
		if difficultyPreset != "" {
			config.ApplyChasePreset(&c, difficultyPreset)
		}
		g.SetConfig(c)
	}

	g.tick = 0
	g.now = 0
	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.mods = powerups.NewModifiers()
	g.combo = combo.NewTracker(g.cfg.Gameplay.ComboWindow)
	g.queue = events.NewQueue()
	if g.unlocked == nil {
		// Achievements outlive runs; MarkUnlocked may have seeded them
		g.unlocked = make(map[progress.AchievementID]bool)
	}
	g.paused = false
	g.levelComplete = false
	g.gameOver = false
	g.won = false
	g.quit = false
	g.loadErr = nil
	g.sinkErr = nil

	g.source, g.loadErr = g.newSource()
	if g.loadErr != nil {
		g.gameOver = true
		return
	}

	start := 1
	if selectedStartLevel > 0 {
		start = selectedStartLevel
		selectedStartLevel = 0 // Reset after use
	}
	if g.mode == ModeCampaign && start > len(g.source.Campaign) && len(g.source.Campaign) > 0 {
		start = len(g.source.Campaign)
	}
	g.loadLevel(start)
}

// newSource builds the level source for the mode.
func (g *Game) newSource() (*levels.Source, error) {
	if g.mode == ModeEndless {
		return levels.NewSource(true)
	}
	if len(g.custom) > 0 {
		return &levels.Source{Campaign: g.custom}, nil
	}
	if levelsDir != "" {
		campaign, err := levels.NewLoader(levelsDir).LoadAll()
		if err != nil {
			return nil, err
		}
		return &levels.Source{Campaign: campaign}, nil
	}
	return levels.NewSource(false)
}

// loadLevel fetches level n and starts a fresh attempt at it.
func (g *Game) loadLevel(n int) {
	lvl, err := g.source.Level(n, g.rng)
	if err != nil {
		g.loadErr = err
		g.gameOver = true
		return
	}
	g.level = lvl
	g.levelNum = n
	g.grid = lvl.Grid
	g.theme = levels.ThemeFor(lvl.Theme)
	g.layout()
	g.attempt = attemptStart{score: g.score, lives: g.lives}
	g.startAttempt()
}

// layout centers the maze below the HUD.
func (g *Game) layout() {
	w := g.grid.Cols() * cellW
	h := g.grid.Rows()*cellH + hudHeight + 1
	g.tooSmall = g.screenW < w || g.screenH < h
	g.origin = core.Pt(max(0, (g.screenW-w)/2), hudHeight)
}

// Resize adapts the layout to a new screen size. The simulation is left
// untouched; a too small screen holds the clock until it grows again.
func (g *Game) Resize(w, h int) {
	g.screenW, g.screenH = w, h
	if g.grid != nil {
		g.layout()
	}
}

// ghostParams derives ghost tuning for the current level.
func (g *Game) ghostParams() ai.Params {
	gc := g.cfg.Ghosts
	return ai.Params{
		Speed:          g.diff.Speed(gc.Speed, g.levelNum),
		ProximityRange: gc.ProximityRange,
		ChaseDuration:  gc.ChaseDuration,
		ChaseCooldown:  gc.ChaseCooldown,
		LookAhead:      g.diff.LookAhead(gc.LookAhead, g.levelNum),
		AlertRange:     g.diff.AlertRange(gc.AlertRange, g.levelNum),
	}
}

// startAttempt discards every piece of in-flight state and places all
// entities at their spawns.
func (g *Game) startAttempt() {
	g.player = movement.NewMover(g.grid.Start())
	g.mods.Clear()
	g.combo.Reset()
	g.lastTier = combo.Normal
	g.hitUntil = 0
	g.fx.Clear()
	g.queue.Reset()
	g.stats = levelStats{}
	g.result = nil
	g.newUnlock = nil
	g.levelComplete = false
	g.levelStart = g.now

	g.food = make(map[maze.Point]bool)
	for _, p := range g.grid.Cells(maze.Food) {
		g.food[p] = true
	}

	pc := powerups.Config{SpawnChance: g.cfg.PowerUps.SpawnChance, MaxPerLevel: g.cfg.PowerUps.MaxPerLevel}
	g.powerUps = powerups.Generate(g.rng, g.grid, g.grid.Start(), g.grid.Goal(), pc)

	g.ghosts = ai.NewController(g.level.NewGhosts(), g.ghostParams())
	g.ghosts.SetAlertCooldown(g.cfg.Ghosts.AlertCooldown)

	tr := effects.NewTransition(effects.TransitionIn, g.now, 0)
	g.fx.Transition = &tr
	g.queue.Push(events.Event{Name: events.LevelStart, At: g.now, Cell: g.grid.Start(), Value: g.levelNum, Label: g.level.Name})
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	return g.StepDelta(input, g.dt)
}

// StepDelta advances the game by an explicit simulation delta.
func (g *Game) StepDelta(input core.InputFrame, dt time.Duration) core.StepResult {
	g.tick++

	if input.Has(core.ActionQuit) {
		g.quit = true
		g.discard()
		return core.StepResult{State: g.State()}
	}

	// Handle restart
	if input.Has(core.ActionRestart) {
		g.restart()
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) && !g.finished() {
		g.paused = !g.paused
	}
	if input.Has(core.ActionResume) {
		g.paused = false
	}

	if g.loadErr != nil || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if g.levelComplete && !g.won && input.Has(core.ActionConfirm) {
		g.loadLevel(g.levelNum + 1)
		return core.StepResult{State: g.State()}
	}

	g.now += dt
	if g.playing() {
		g.simulate(input, dt)
	}
	g.fx.Update(dt, g.now)

	return core.StepResult{State: g.State()}
}

// playing reports whether the level is live.
func (g *Game) playing() bool {
	return !g.levelComplete && !g.gameOver && !g.won
}

// finished reports whether the run has ended.
func (g *Game) finished() bool {
	return g.gameOver || g.won
}

// restart retries the current level, or starts a new run when the last
// one is over.
func (g *Game) restart() {
	if g.finished() || g.level == nil {
		runtime := core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		}
		if g.dt > 0 {
			runtime.TickRate = int(time.Second / g.dt)
		}
		g.Reset(runtime)
		return
	}
	g.score = g.attempt.score
	g.lives = g.attempt.lives
	g.paused = false
	g.startAttempt()
}

// discard drops all in-flight state on quit.
func (g *Game) discard() {
	if g.player != nil {
		g.player.Stop()
	}
	if g.mods != nil {
		g.mods.Clear()
	}
	g.fx.Clear()
	if g.queue != nil {
		g.queue.Reset()
	}
}

// simulate runs a live tick: movement, ghosts, collisions, expiry.
func (g *Game) simulate(input core.InputFrame, dt time.Duration) {
	g.processInput(input)

	eff := g.mods.Effect(g.now)
	speed := g.cfg.Gameplay.PlayerSpeed * eff.SpeedMultiplier
	entered := g.player.Advance(speed * dt.Seconds())
	for _, c := range entered {
		g.queue.Emit(events.Move, g.now, c)
		x, y := effects.CellCenter(float64(c.X), float64(c.Y))
		g.fx.Trails = append(g.fx.Trails, effects.NewTrail(x, y, g.playerColor(eff), 4))
	}

	g.ghosts.Step(g.grid, g.aiView(), g.now, dt, eff.FreezeEnemies, g.queue)

	g.collectFood(entered, eff)
	g.collectPowerUp(eff)
	hit := g.checkGhosts(eff)
	if !hit && g.playing() && g.reachedGoal(entered) {
		g.completeLevel()
	}

	for _, t := range g.mods.Expire(g.now) {
		info := powerups.Lookup(t)
		g.queue.Push(events.Event{Name: events.PowerUpExpired, At: g.now, Cell: g.player.Cell(), Value: int(t), Label: info.Name})
	}
}

// Directional actions steer to the farthest open cell that way.
var actionDirs = []struct {
	action core.Action
	dir    maze.Point
}{
	{core.ActionUp, maze.Directions[0]},
	{core.ActionDown, maze.Directions[1]},
	{core.ActionLeft, maze.Directions[2]},
	{core.ActionRight, maze.Directions[3]},
}

// processInput applies move commands. Invalid targets are ignored. A
// click or explicit target wins over a direction in the same frame.
func (g *Game) processInput(input core.InputFrame) {
	for _, ad := range actionDirs {
		if input.Has(ad.action) {
			from := g.player.Cell()
			g.player.SetTarget(g.grid, movement.Farthest(g.grid, from, ad.dir))
		}
	}
	if input.HasPointer {
		if cell, ok := g.CellAt(input.Pointer.X, input.Pointer.Y); ok {
			g.player.SetTarget(g.grid, cell)
		}
	}
	if input.HasTarget {
		g.player.SetTarget(g.grid, input.Target)
	}
}

// CellAt maps a screen position to the maze cell drawn there.
func (g *Game) CellAt(x, y int) (core.Point, bool) {
	if g.grid == nil {
		return core.Point{}, false
	}
	dx, dy := x-g.origin.X, y-g.origin.Y
	if dx < 0 || dy < 0 {
		return core.Point{}, false
	}
	p := core.Pt(dx/cellW, dy/cellH)
	return p, g.grid.InBounds(p)
}

// aiView is what the ghosts see of the player.
func (g *Game) aiView() ai.Player {
	return ai.Player{
		Cell:     g.player.Cell(),
		Heading:  g.player.Heading(),
		Moving:   g.player.Moving(),
		Upcoming: g.player.Remaining(),
	}
}

// award scores a qualifying collection and handles combo feedback.
func (g *Game) award(base int, at maze.Point, eff powerups.Effect) int {
	count := g.combo.Collect(g.now)
	points := combo.Award(base, count, eff.ScoreMultiplier)
	g.score += points
	g.stats.score += points
	g.stats.maxCombo = max(g.stats.maxCombo, count)

	x, y := effects.CellCenter(float64(at.X), float64(at.Y))
	tier := combo.TierFor(count)
	if tier > g.lastTier {
		g.queue.Push(events.Event{Name: events.ComboTierChange, At: g.now, Cell: at, Value: count, Label: tier.Label()})
		g.fx.Texts = append(g.fx.Texts, effects.NewFloatingText(x, y-effects.UnitsPerCell, tier.Label(), effects.ComboColor(count)))
		g.fx.Particles = append(g.fx.Particles, effects.NewParticles(g.rng, x, y, effects.ComboColor(count), 6+int(tier)*2, effects.ShapeSparkle)...)
	}
	g.lastTier = tier
	return points
}

// collectFood eats the food on every cell entered this tick.
func (g *Game) collectFood(entered []maze.Point, eff powerups.Effect) {
	for _, c := range entered {
		if !g.food[c] {
			continue
		}
		delete(g.food, c)
		g.stats.coins++
		points := g.award(combo.FoodPoints, c, eff)
		g.queue.Push(events.Event{Name: events.Collect, At: g.now, Cell: c, Value: points})

		x, y := effects.CellCenter(float64(c.X), float64(c.Y))
		g.fx.Particles = append(g.fx.Particles, effects.NewParticles(g.rng, x, y, g.theme.Food, 4, effects.ShapeCircle)...)
		if eff.ScoreMultiplier > 1 || g.combo.Count(g.now) > 1 {
			g.fx.Texts = append(g.fx.Texts, effects.NewFloatingText(x, y, "+"+strconv.Itoa(points), core.ColorDefault))
		}
	}
}

// collectPowerUp picks up the power-up under the player, if any.
func (g *Game) collectPowerUp(eff powerups.Effect) {
	i, ok := powerups.CheckCollision(g.player.Position(), g.powerUps)
	if !ok {
		return
	}
	pu := &g.powerUps[i]
	pu.Collected = true
	pu.CollectedAt = g.now
	g.mods.Activate(pu.Type, g.now)
	g.stats.powerUps++

	info := powerups.Lookup(pu.Type)
	g.award(combo.PowerUpPoints, pu.Pos, eff)
	g.queue.Push(events.Event{Name: events.PowerUpCollected, At: g.now, Cell: pu.Pos, Value: int(pu.Type), Label: info.Name})

	x, y := effects.CellCenter(float64(pu.Pos.X), float64(pu.Pos.Y))
	g.fx.Particles = append(g.fx.Particles, effects.NewParticles(g.rng, x, y, info.Color, 12, effects.ShapeStar)...)
	g.fx.Texts = append(g.fx.Texts, effects.NewFloatingText(x, y-effects.UnitsPerCell, info.Emoji+" "+info.Name, info.Color))
}

// checkGhosts resolves player/ghost contact and reports whether the
// player was hit.
func (g *Game) checkGhosts(eff powerups.Effect) bool {
	for _, i := range g.ghosts.Contacts(g.player.Position()) {
		gh := g.ghosts.Ghosts[i]
		if eff.Invincible {
			at := gh.Cell()
			gh.Respawn()
			g.stats.ghostsEaten++
			points := combo.Award(combo.GhostPoints, 1, eff.ScoreMultiplier)
			g.score += points
			g.stats.score += points
			g.queue.Push(events.Event{Name: events.GhostEaten, At: g.now, Cell: at, Value: points})

			x, y := effects.CellCenter(float64(at.X), float64(at.Y))
			g.fx.Particles = append(g.fx.Particles, effects.NewParticles(g.rng, x, y, core.ColorBrightBlue, 10, effects.ShapeSparkle)...)
			g.fx.Texts = append(g.fx.Texts, effects.NewFloatingText(x, y, "+"+strconv.Itoa(points), core.ColorBrightCyan))
			continue
		}
		// Ghosts pass through the player for a moment after a hit.
		if g.now < g.hitUntil {
			continue
		}
		g.hit(gh.Cell())
		return true
	}
	return false
}

// hit costs the player a life and resets positions, or ends the run.
func (g *Game) hit(at maze.Point) {
	g.lives--
	g.stats.livesLost++
	g.combo.Reset()
	g.lastTier = combo.Normal
	g.queue.Push(events.Event{Name: events.PlayerHit, At: g.now, Cell: at, Value: g.lives})

	pos := g.player.Position()
	x, y := effects.CellCenter(pos.X, pos.Y)
	g.fx.Particles = append(g.fx.Particles, effects.NewParticles(g.rng, x, y, core.ColorBrightRed, 16, effects.ShapeCircle)...)
	sh := effects.NewShake(g.now, 0, 0)
	g.fx.Shake = &sh

	if g.lives <= 0 {
		g.lives = 0
		g.gameOver = true
		g.player.Stop()
		g.queue.Push(events.Event{Name: events.PlayerDied, At: g.now, Cell: g.player.Cell()})
		g.queue.Push(events.Event{Name: events.GameOver, At: g.now, Cell: g.player.Cell(), Value: g.score})
		tr := effects.NewTransition(effects.TransitionOut, g.now, 0)
		g.fx.Transition = &tr
		return
	}

	g.player.Place(g.grid.Start())
	g.ghosts.ResetAll()
	g.hitUntil = g.now + g.cfg.Gameplay.HitGrace
}

// reachedGoal reports whether the player stands on or just entered the goal.
func (g *Game) reachedGoal(entered []maze.Point) bool {
	goal := g.grid.Goal()
	for _, c := range entered {
		if c == goal {
			return true
		}
	}
	return !g.player.OnEdge() && g.player.Cell() == goal
}

// completeLevel scores the clear and reports it to the progress sink.
func (g *Game) completeLevel() {
	g.levelComplete = true
	g.player.Stop()

	elapsed := g.now - g.levelStart
	bonus := combo.TimeBonus(elapsed)
	g.score += bonus
	g.stats.score += bonus

	r := progress.LevelResult{
		Mode:        string(g.mode),
		Level:       g.levelNum,
		Elapsed:     elapsed,
		Stars:       combo.Stars(g.stats.score),
		Coins:       g.stats.coins,
		Score:       g.stats.score,
		TotalScore:  g.score,
		GhostsEaten: g.stats.ghostsEaten,
		PowerUps:    g.stats.powerUps,
		MaxCombo:    g.stats.maxCombo,
		LivesLost:   g.stats.livesLost,
	}
	g.result = &r

	goal := g.grid.Goal()
	g.queue.Push(events.Event{Name: events.LevelComplete, At: g.now, Cell: goal, Value: g.levelNum})
	x, y := effects.CellCenter(float64(goal.X), float64(goal.Y))
	g.fx.Confetti = append(g.fx.Confetti, effects.NewConfetti(g.rng, x, y, 40)...)
	if bonus > 0 {
		g.fx.Texts = append(g.fx.Texts, effects.NewFloatingText(x, y-effects.UnitsPerCell, "TIME +"+strconv.Itoa(bonus), core.ColorBrightGreen))
	}

	if err := g.sink.RecordLevel(r); err != nil {
		g.sinkErr = err
	}
	for _, id := range progress.Earned(r) {
		if g.unlocked[id] {
			continue
		}
		g.unlocked[id] = true
		g.newUnlock = append(g.newUnlock, id)
		if err := g.sink.RecordUnlock(progress.Unlock{ID: id, Level: g.levelNum, At: g.now}); err != nil {
			g.sinkErr = err
		}
	}

	if g.source.Final(g.levelNum) {
		g.won = true
		g.queue.Push(events.Event{Name: events.GameOver, At: g.now, Cell: goal, Value: g.score, Label: "won"})
	}
}

// MarkUnlocked records achievements already earned in earlier sessions so
// they are not reported again.
func (g *Game) MarkUnlocked(ids []progress.AchievementID) {
	if g.unlocked == nil {
		g.unlocked = make(map[progress.AchievementID]bool)
	}
	for _, id := range ids {
		g.unlocked[id] = true
	}
}

// DrainEvents returns and clears the events emitted since the last call.
func (g *Game) DrainEvents() []events.Event {
	if g.queue == nil {
		return nil
	}
	return g.queue.Drain()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:         g.score,
		Level:         g.levelNum,
		GameOver:      g.finished(),
		Won:           g.won,
		LevelComplete: g.levelComplete,
		Paused:        g.paused,
		Quit:          g.quit,
	}
}

// playerColor is the player's tint under the active effect.
func (g *Game) playerColor(eff powerups.Effect) core.Color {
	switch {
	case eff.Invincible:
		return effects.RainbowColor(g.now)
	case eff.SpeedMultiplier > 1:
		return powerups.Lookup(powerups.Speed).Color
	default:
		return g.theme.Player
	}
}
