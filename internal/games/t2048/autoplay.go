package t2048

import (
	"context"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// Strategy selects how a headless game picks its moves.
type Strategy string

const (
	StrategyAdvisor Strategy = "advisor" // One-ply advisor (AutoMove)
	StrategyRandom  Strategy = "random"  // Uniformly random direction
)

// maxIdleSteps bounds consecutive steps that leave the board unchanged.
// A random player on a movable board finds a changing move long before this.
const maxIdleSteps = 10_000

// AutoPlayConfig configures a headless game.
type AutoPlayConfig struct {
	Strategy Strategy
	Seed     int64
	Options  Options
	Delay    time.Duration // Pause between moves, 0 for none
	// OnMove is called after every move that changed the board.
	OnMove func(Snapshot)
}

// ParseStrategy validates a strategy name.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyAdvisor, StrategyRandom:
		return Strategy(s), nil
	}
	return "", fmt.Errorf("t2048: unknown strategy %q (want advisor or random)", s)
}

// AutoPlay plays one endless game to the end without a terminal.
// It returns early with the partial result when ctx is cancelled.
func AutoPlay(ctx context.Context, cfg AutoPlayConfig) (Result, error) {
	action := core.ActionHint
	switch cfg.Strategy {
	case StrategyAdvisor, "":
	case StrategyRandom:
		action = core.ActionRandom
	default:
		return Result{}, fmt.Errorf("t2048: unknown strategy %q", cfg.Strategy)
	}

	game := NewGame(ModeEndless, cfg.Options)
	rc := core.DefaultConfig()
	rc.Seed = cfg.Seed
	game.Reset(rc)

	in := core.NewInputFrame()
	in.Set(action)

	idle := 0
	for !game.State().GameOver {
		select {
		case <-ctx.Done():
			return game.Result(), ctx.Err()
		default:
		}

		before := game.moves
		game.Step(in)
		if game.moves == before {
			idle++
			if idle >= maxIdleSteps {
				return game.Result(), fmt.Errorf("t2048: no progress after %d moves", idle)
			}
			continue
		}
		idle = 0

		if cfg.OnMove != nil {
			cfg.OnMove(game.Snapshot())
		}
		if cfg.Delay > 0 {
			select {
			case <-ctx.Done():
				return game.Result(), ctx.Err()
			case <-time.After(cfg.Delay):
			}
		}
	}

	return game.Result(), nil
}
