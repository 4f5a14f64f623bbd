// t2048 is a terminal 2048 game with undo, a move advisor and SSH play.
//
// Usage:
//
//	t2048 list              - List available modes
//	t2048 play [mode]       - Play a mode (default: campaign)
//	t2048 menu              - Start menu to pick a mode interactively
//	t2048 serve             - Start SSH server for remote play
//	t2048 scores [mode]     - Show high scores for a mode
//	t2048 autoplay          - Let the advisor play headless games
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.t2048/scores.db)
//	--config <path>       - Custom game config YAML
//	--difficulty <preset> - Difficulty preset: easy, normal, hard, fixed
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - Slide and merge tiles in your terminal",
	Long: `t2048 is the 2048 sliding-tile game for the terminal, with unlimited
undo, a move advisor that can play for you, and an SSH server.

Available commands:
  list      - Show the available modes
  play      - Play a mode directly
  menu      - Interactive menu
  serve     - Start SSH server for remote play
  scores    - View high scores
  autoplay  - Run headless games driven by the advisor

Examples:
  t2048 play
  t2048 play endless --difficulty hard
  t2048 menu
  t2048 serve --ssh :2222
  t2048 autoplay --games 10 --quiet`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if flagDifficulty != "" && !config.ValidPreset(flagDifficulty) {
			return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
		if flagFPS <= 0 {
			return fmt.Errorf("--fps must be positive, got %d", flagFPS)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(autoplayCmd)
}

// gameOptions builds game options from the global flags.
func gameOptions(level int) t2048.Options {
	return t2048.Options{
		ConfigPath: flagConfig,
		Difficulty: flagDifficulty,
		StartLevel: level,
	}
}

// runtimeConfig reads the terminal size and the global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the score database, degrading to nil with a warning.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open scores database, scores will not be saved", "err", err)
		return nil
	}
	return store
}

// modeGameID maps a mode argument to a registered game ID.
func modeGameID(mode string) (string, error) {
	switch mode {
	case "", "campaign", "2048":
		return "2048", nil
	case "endless", "2048_endless":
		return "2048_endless", nil
	}
	return "", fmt.Errorf("unknown mode %q (run 't2048 list' to see available modes)", mode)
}
