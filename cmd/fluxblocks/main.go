// fluxblocks is a falling-block puzzle game for the terminal with spin
// detection, chains and glass rows.
//
// Usage:
//
//	fluxblocks list              - List available modes
//	fluxblocks play <mode>       - Play a mode
//	fluxblocks menu              - Pick a mode and difficulty interactively
//	fluxblocks replay <script>   - Run a recorded input script headlessly
//	fluxblocks serve             - Start SSH server for remote play
//	fluxblocks scores <mode>     - Show high scores and spin counts
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.fluxblocks/fluxblocks.db)
//	--log-file <path>   - Write engine events to a log file
//	--log-level <lvl>   - Log level: debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/fluxblocks/internal/storage"

	_ "github.com/vovakirdan/fluxblocks/internal/games/blocks" // Register modes
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fluxblocks",
	Short: "FluxBlocks - falling blocks with spins and chains",
	Long: `FluxBlocks is a terminal falling-block puzzle game.

Rotations that wedge a piece into place score as spins, and spins
landed back to back build chains worth far more than plain clears.

Available commands:
  list     - Show all available modes
  play     - Play a specific mode directly
  menu     - Interactive mode and difficulty picker
  replay   - Run an input script without a terminal
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  fluxblocks play blocks
  fluxblocks play blocks_extended --difficulty hard
  fluxblocks replay ./scripts/tspin.yaml --json
  fluxblocks serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write game events to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
