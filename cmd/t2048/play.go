package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
)

var flagLevel int

var playCmd = &cobra.Command{
	Use:   "play [campaign|endless]",
	Short: "Play 2048",
	Long: `Start playing 2048 in the given mode (campaign by default).

Controls:
  Arrows/WASD   - Slide tiles
  U/Backspace   - Undo the last move
  H             - Play the advisor's move
  Space         - Toggle autoplay
  X             - Play a random move
  P             - Pause
  R             - Restart (after game over)
  B/Esc         - Leave the game
  Q/Ctrl+C      - Quit
  Ctrl+S        - Save a screenshot to ~/.t2048/screenshots

Difficulty options:
  easy   - Fewer 4s, spawn rate rises slowly with score
  normal - Standard spawn rate, rises with score
  hard   - More 4s and no undo
  fixed  - No progression, uses the config as is

Examples:
  t2048 play
  t2048 play endless
  t2048 play --level 6
  t2048 play --difficulty hard
  t2048 play --config ./my-2048.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Campaign level to start from (1-10)")
}

func runPlay(_ *cobra.Command, args []string) error {
	mode := ""
	if len(args) > 0 {
		mode = args[0]
	}
	gameID, err := modeGameID(mode)
	if err != nil {
		return err
	}
	if flagLevel < 0 || flagLevel > t2048.LevelCount() {
		return fmt.Errorf("--level must be between 1 and %d", t2048.LevelCount())
	}

	gameMode := t2048.ModeCampaign
	if gameID == "2048_endless" {
		gameMode = t2048.ModeEndless
	}
	game := t2048.NewGame(gameMode, gameOptions(flagLevel))

	// Continue without storage - game still works
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, runtimeConfig()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
