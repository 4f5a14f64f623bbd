package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagStrategy string
	flagGames    int
	flagDelay    time.Duration
	flagQuiet    bool
	flagSave     bool
)

var autoplayCmd = &cobra.Command{
	Use:   "autoplay",
	Short: "Play headless endless games with the advisor or at random",
	Long: `Run endless games without a terminal UI and report the results.

The advisor strategy tries every direction on the current board and
plays the one that leaves the most empty cells, breaking ties by score.
The random strategy picks a direction uniformly.

Examples:
  t2048 autoplay
  t2048 autoplay --games 100 --quiet
  t2048 autoplay --strategy random --games 100 --quiet
  t2048 autoplay --delay 200ms
  t2048 autoplay --seed 42 --save`,
	RunE: runAutoplay,
}

func init() {
	autoplayCmd.Flags().StringVar(&flagStrategy, "strategy", string(t2048.StrategyAdvisor), "Move strategy: advisor or random")
	autoplayCmd.Flags().IntVar(&flagGames, "games", 1, "Number of games to play")
	autoplayCmd.Flags().DurationVar(&flagDelay, "delay", 0, "Pause between moves")
	autoplayCmd.Flags().BoolVar(&flagQuiet, "quiet", false, "Only print the summary")
	autoplayCmd.Flags().BoolVar(&flagSave, "save", false, "Save results to the scores database")
}

func runAutoplay(_ *cobra.Command, _ []string) error {
	strategy, err := t2048.ParseStrategy(flagStrategy)
	if err != nil {
		return err
	}
	if flagGames < 1 {
		return fmt.Errorf("--games must be positive, got %d", flagGames)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "autoplay",
	})
	if flagQuiet {
		logger.SetLevel(log.WarnLevel)
	}

	var store *storage.Store
	if flagSave {
		store = openStore()
		if store != nil {
			defer store.Close()
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	results := make([]t2048.Result, 0, flagGames)
	for i := range flagGames {
		cfg := t2048.AutoPlayConfig{
			Strategy: strategy,
			Seed:     seed + int64(i),
			Options:  gameOptions(0),
			Delay:    flagDelay,
		}
		if !flagQuiet {
			cfg.OnMove = func(s t2048.Snapshot) {
				printBoard(s)
			}
		}

		res, err := t2048.AutoPlay(ctx, cfg)
		if errors.Is(err, context.Canceled) {
			logger.Warn("interrupted", "game", i+1)
			break
		}
		if err != nil {
			return err
		}

		results = append(results, res)
		logger.Info("game over", "game", i+1, "score", res.Score, "max_tile", res.MaxTile, "moves", res.Moves)

		if store != nil {
			if _, err := store.SaveResult(storage.Result{
				GameID:  "2048_endless",
				Score:   res.Score,
				MaxTile: res.MaxTile,
				Moves:   res.Moves,
				Undos:   res.Undos,
			}); err != nil {
				logger.Warn("could not save result", "err", err)
			}
		}
	}

	printSummary(strategy, results)
	return nil
}

// printBoard writes a snapshot's board and counters to stdout.
func printBoard(s t2048.Snapshot) {
	fmt.Printf("Score: %d  Moves: %d  Max: %d\n", s.Score, s.Moves, s.MaxTile)
	for _, row := range s.Board {
		for _, v := range row {
			if v == 0 {
				fmt.Printf("%6s", ".")
			} else {
				fmt.Printf("%6d", v)
			}
		}
		fmt.Println()
	}
	fmt.Println()
}

// printSummary writes aggregate results for the played games.
func printSummary(strategy t2048.Strategy, results []t2048.Result) {
	if len(results) == 0 {
		fmt.Println("No games finished.")
		return
	}

	scores := lo.Map(results, func(r t2048.Result, _ int) int { return r.Score })
	best := lo.MaxBy(results, func(a, b t2048.Result) bool { return a.Score > b.Score })
	tiles := lo.CountValuesBy(results, func(r t2048.Result) int { return r.MaxTile })
	mean := float64(lo.Sum(scores)) / float64(len(scores))

	fmt.Printf("Strategy: %s  Games: %d\n", strategy, len(results))
	fmt.Printf("Best score: %d (max tile %d)  Mean score: %.1f\n", best.Score, best.MaxTile, mean)
	fmt.Println("Max tile distribution:")

	keys := lo.Keys(tiles)
	slices.Sort(keys)
	slices.Reverse(keys)
	for _, tile := range keys {
		fmt.Printf("  %6d: %d\n", tile, tiles[tile])
	}
}
