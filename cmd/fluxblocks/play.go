package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/fluxblocks/internal/config"
	"github.com/vovakirdan/fluxblocks/internal/core"
	"github.com/vovakirdan/fluxblocks/internal/games/blocks"
	"github.com/vovakirdan/fluxblocks/internal/platform/tui"
	"github.com/vovakirdan/fluxblocks/internal/registry"
	"github.com/vovakirdan/fluxblocks/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagStartLevel int
)

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Play a mode",
	Long: `Start playing the specified mode.

Controls:
  Left/Right, h/l   - Move
  Down, j           - Soft drop
  Space             - Hard drop
  Up, x, k          - Rotate clockwise
  Z                 - Rotate counter-clockwise
  A                 - Rotate 180
  P/Esc             - Pause
  R                 - Restart (after game over)
  B                 - Back (when paused or over)
  Ctrl+S            - Save a screenshot
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Start at the base gravity, speeds up with lines
  normal - Start at 30% of the speed range
  hard   - Start at 70% of the speed range
  fixed  - No progression, gravity follows the level only

Examples:
  fluxblocks play blocks
  fluxblocks play blocks --difficulty hard
  fluxblocks play blocks_extended --start-level 5
  fluxblocks play blocks --config ./my-blocks.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom blocks config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().IntVar(&flagStartLevel, "start-level", 0, "Starting level")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'fluxblocks list' to see available modes.")
		os.Exit(1)
	}
	if _, ok := config.ParsePreset(flagDifficulty); !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", flagDifficulty)
		os.Exit(1)
	}
	if flagStartLevel < 0 {
		fmt.Fprintln(os.Stderr, "Error: --start-level must not be negative")
		os.Exit(1)
	}

	// Fail early on a bad config instead of inside the alt screen
	if _, err := config.LoadBlocks(flagConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Set config path and difficulty for games before creation
	blocks.SetConfigPath(flagConfig)
	blocks.SetDifficultyPreset(flagDifficulty)
	blocks.SetStartLevel(flagStartLevel)

	width, height := terminalSize()
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger, logFile, err := openLogFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, logger, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}
	if logFile != nil {
		logFile.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
