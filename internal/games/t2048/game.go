package t2048

import (
	"math/rand"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeCampaign Mode = "campaign"
	ModeEndless  Mode = "endless"
)

// Game adapts the Engine to the fixed-tick platform loop.
type Game struct {
	mode   Mode
	opts   Options
	cfg    config.T2048Config
	engine *Engine
	diff   *config.DifficultyManager
	tick   uint64

	levelIndex    int // Current level (0-indexed)
	currentTarget int // Current tile target
	moves         int
	undos         int

	// Advisor state
	autoPlay  bool
	autoTicks int
	hint      *MoveEfficiency
	lastMove  string

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	gameOver        bool
	levelCleared    bool
	won             bool
	paused          bool
	tooSmall        bool
	levelClearTicks int
}

// Options configure a single game instance.
type Options struct {
	ConfigPath string // Custom YAML config, empty for the search path
	Difficulty string // Difficulty preset name, empty for the config's own
	StartLevel int    // Campaign level to start from (1-10), 0 for the first
}

// NewGame creates a game in the given mode with explicit options.
func NewGame(mode Mode, opts Options) *Game {
	return &Game{
		mode: mode,
		opts: opts,
	}
}

// New creates a new campaign mode 2048 game.
func New() *Game {
	return NewGame(ModeCampaign, Options{})
}

// NewEndless creates a new endless mode 2048 game.
func NewEndless() *Game {
	return NewGame(ModeEndless, Options{})
}

func init() {
	registry.Register("2048", "Reach the target tile of each of the 10 levels", func() registry.Game {
		return New()
	})
	registry.Register("2048_endless", "Play until the board locks up", func() registry.Game {
		return NewEndless()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "2048_endless"
	}
	return "2048"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "2048 (Endless)"
	}
	return "2048"
}

// Engine exposes the underlying rule engine.
func (g *Game) Engine() *Engine {
	return g.engine
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.loadConfig()

	g.diff = config.NewDifficultyManager(g.cfg.Difficulty)
	spawn4 := g.cfg.Rules.Spawn4Probability
	if g.diff.IsEnabled() {
		spawn4 = g.diff.Spawn4Prob(spawn4, 0, 0)
	}
	g.engine = NewEngine(rand.New(rand.NewSource(cfg.Seed)), spawn4)

	g.tick = 0
	g.moves = 0
	g.undos = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.gameOver = false
	g.levelCleared = false
	g.won = false
	g.paused = false
	g.levelClearTicks = 0
	g.autoPlay = false
	g.autoTicks = 0
	g.hint = nil
	g.lastMove = ""

	// Apply selected start level (campaign only); restarts keep it
	if g.mode == ModeCampaign && g.opts.StartLevel > 0 && g.opts.StartLevel <= LevelCount() {
		g.levelIndex = g.opts.StartLevel - 1
	} else {
		g.levelIndex = 0
	}

	g.loadLevel()
	g.checkScreenSize()
}

// loadConfig resolves the YAML config and applies the difficulty preset.
// A broken custom config falls back to the defaults.
func (g *Game) loadConfig() {
	cfg, err := config.LoadT2048(g.opts.ConfigPath)
	if err != nil {
		cfg = config.DefaultT2048Config()
	}
	if g.opts.Difficulty != "" {
		config.ApplyT2048Preset(&cfg, config.DifficultyPreset(g.opts.Difficulty))
	}
	g.cfg = cfg
}

// loadLevel sets up the current level parameters.
func (g *Game) loadLevel() {
	if g.mode == ModeEndless {
		g.currentTarget = 0 // No target in endless
		return
	}

	level := GetLevel(g.levelIndex)
	if level == nil {
		// Shouldn't happen, but default to last level
		level = GetLevel(LevelCount() - 1)
	}

	g.currentTarget = level.Target
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	// Minimum size: board (25 wide, 9 tall) + HUD (4 lines) + footer (4 lines)
	minW := 27
	minH := 17
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// Restart is handled by the platform
	if in.Has(core.ActionRestart) && (g.gameOver || g.won) {
		return core.StepResult{State: g.State()}
	}

	if g.levelCleared {
		g.levelClearTicks++
		// Auto-advance after 2 seconds (120 ticks at 60fps)
		if g.levelClearTicks >= 120 {
			g.advanceLevel()
		}
		return core.StepResult{State: g.State()}
	}

	// Undo is allowed from the game over screen
	if in.Has(core.ActionUndo) {
		g.undo()
		return core.StepResult{State: g.State()}
	}

	if g.gameOver || g.won {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionAutoPlay) {
		g.autoPlay = !g.autoPlay
		g.autoTicks = 0
	}

	switch {
	case in.Has(core.ActionUp):
		g.processMove(DirUp)
	case in.Has(core.ActionDown):
		g.processMove(DirDown)
	case in.Has(core.ActionLeft):
		g.processMove(DirLeft)
	case in.Has(core.ActionRight):
		g.processMove(DirRight)
	case in.Has(core.ActionHint):
		g.processMove(g.engine.Advise().Direction)
	case in.Has(core.ActionRandom):
		g.lastMove = "random " + g.engine.RandomMove().String()
		g.afterMove(g.engine.HasBoardChanged())
	case g.autoPlay:
		g.autoTicks++
		if g.autoTicks >= g.cfg.Assist.AutoPlayEvery {
			g.autoTicks = 0
			g.lastMove = "auto " + g.engine.AutoMove().String()
			g.afterMove(g.engine.HasBoardChanged())
		}
	}

	return core.StepResult{State: g.State()}
}

// processMove applies a player move.
func (g *Game) processMove(dir Direction) {
	g.lastMove = dir.String()
	g.afterMove(g.engine.Move(dir))
}

// afterMove updates counters and level/game-over state after a move.
// No-op moves leave everything but the history untouched.
func (g *Game) afterMove(changed bool) {
	if !changed {
		return
	}
	g.moves++
	g.hint = nil

	if g.diff.IsEnabled() {
		g.engine.SetSpawn4Prob(g.diff.Spawn4Prob(g.cfg.Rules.Spawn4Probability, g.engine.Score(), g.moves))
	}

	// Check for level target (campaign only)
	if g.mode == ModeCampaign && g.currentTarget > 0 && g.engine.MaxTile() >= g.currentTarget {
		g.levelCleared = true
		g.levelClearTicks = 0
		g.autoPlay = false
		return
	}

	if !g.engine.CanMove() {
		g.gameOver = true
		g.autoPlay = false
	}
}

// undo rolls back the last move if the rules allow it.
func (g *Game) undo() {
	if !g.cfg.Rules.Undo {
		return
	}
	before := g.engine.Tiles()
	if !g.engine.Rollback() {
		return
	}
	g.hint = nil
	g.gameOver = false
	// Rolling back a no-op keypress restores the same board
	if HasChanged(before, g.engine.Tiles()) {
		g.undos++
		g.lastMove = "undo"
	}
}

// Hint returns the advisor's recommendation for the current board,
// caching it until the next move. Probing runs on a scratch engine so the
// game's random stream is not consumed by rendering.
func (g *Game) Hint() MoveEfficiency {
	if g.hint == nil {
		scratch := NewEngineFromBoard(rand.New(rand.NewSource(int64(g.tick))), g.engine.Tiles(), g.engine.Score())
		h := scratch.Advise()
		g.hint = &h
	}
	return *g.hint
}

// advanceLevel moves to the next level.
func (g *Game) advanceLevel() {
	g.levelCleared = false
	g.levelClearTicks = 0

	if g.levelIndex >= LevelCount()-1 {
		// Completed all levels
		g.won = true
		return
	}

	g.levelIndex++
	g.loadLevel()
	// Keep current board and score - just update target
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.engine.Score(),
		MaxTile:  g.engine.MaxTile(),
		Moves:    g.moves,
		Undos:    g.undos,
		GameOver: g.gameOver || g.won,
		Paused:   g.paused || g.tooSmall || g.levelCleared,
	}
}

// Resize adapts the layout to a new screen size, keeping the board.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.checkScreenSize()
}

// Result is the storable outcome of a game.
type Result struct {
	Score   int
	MaxTile int
	Moves   int
	Undos   int
}

// Result returns the current outcome, usually read once the game is over.
func (g *Game) Result() Result {
	st := g.State()
	return Result{
		Score:   st.Score,
		MaxTile: st.MaxTile,
		Moves:   st.Moves,
		Undos:   st.Undos,
	}
}
