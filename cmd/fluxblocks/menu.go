package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/fluxblocks/internal/core"
	"github.com/vovakirdan/fluxblocks/internal/platform/tui"
	"github.com/vovakirdan/fluxblocks/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a mode and difficulty interactively",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to pick a mode and left/right to pick the
difficulty. After a game ends you return to the menu.

Controls:
  Up/Down/j/k   - Choose mode
  Left/Right    - Choose difficulty
  Enter/Space   - Play
  Tab           - High scores
  Q             - Quit

Examples:
  fluxblocks menu
  fluxblocks menu --fps 30
  fluxblocks menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	logger, logFile, err := openLogFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	width, height := terminalSize()
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	runErr := tui.RunSession(store, logger, cfg)

	if store != nil {
		store.Close()
	}
	if logFile != nil {
		logFile.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
