// snake is the classic Snake game for the terminal.
//
// Usage:
//
//	snake                 - Play (same as "snake play")
//	snake play            - Play
//	snake scores          - Show high scores
//	snake backends        - List terminal backends
//	snake config          - Print the effective configuration
//
// Global flags:
//
//	--config <path>       - Custom config YAML
//	--backend <name>      - Terminal backend: tea or tcell
//	--seed <value>        - RNG seed for reproducible food placement
//	--store <kind>        - High score store: file or sqlite
//	--scores <path>       - Override the high score file or database path
//	--difficulty <name>   - Starting difficulty: easy, normal or hard
//	--log-file <path>     - Log destination ("" discards logs)
//	--log-level <level>   - debug, info, warn or error
//	--no-sound            - Disable tones
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import backends to register them
	_ "github.com/vovakirdan/tui-snake/internal/platform/tcell"
	_ "github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var flags cliFlags

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Steer the snake around the board, eat food to grow and score,
and avoid the walls and your own tail. The game speeds up every level.

Controls:
  Arrows/WASD  - Move
  Space/P/Esc  - Pause
  Ctrl+C       - Quit

Examples:
  snake
  snake --difficulty hard
  snake --backend tcell --no-sound
  snake scores --limit 5`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.ConfigPath, "config", "", "Path to custom config YAML")
	pf.StringVar(&flags.Backend, "backend", "", "Terminal backend (see 'snake backends')")
	pf.Int64Var(&flags.Seed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flags.Store, "store", "", "High score store: file or sqlite")
	pf.StringVar(&flags.ScoresPath, "scores", "", "High score file or database path")
	pf.StringVar(&flags.Difficulty, "difficulty", "", "Starting difficulty: easy, normal, hard")
	pf.StringVar(&flags.LogFile, "log-file", "", "Log file path (empty discards logs)")
	pf.StringVar(&flags.LogLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.BoolVar(&flags.NoSound, "no-sound", false, "Disable sound cues")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(backendsCmd)
	rootCmd.AddCommand(configCmd)
}
