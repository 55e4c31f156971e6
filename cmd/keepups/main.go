// keepups is Football Keep-Ups in the terminal: click the ball to keep it in
// the air and save your best run in a local high-score table.
//
// Usage:
//
//	keepups                  - Play (same as keepups play)
//	keepups play             - Play the game
//	keepups scores           - Show the high-score table
//	keepups scores clear     - Delete high scores and session history
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible kicks
//	--db <path>         - Set database path (default: ~/.keepups/keepups.db)
//	--config <path>     - Load a custom YAML config
//	--log-file <path>   - Write logs to a file (default: discarded)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/keepups/internal/config"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "keepups",
	Short: "Football Keep-Ups - keep the ball in the air",
	Long: `Football Keep-Ups is a terminal game: click the ball to kick it back up,
and don't let it touch the ground. Each kick scores one keep-up.

Available commands:
  play     - Play the game (default)
  scores   - View high scores and session history

Examples:
  keepups
  keepups play --fps 30
  keepups scores --history
  keepups scores clear`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.keepups/keepups.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
}

// newLogger creates the application logger. The TUI owns the terminal, so
// logs go to --log-file or nowhere.
func newLogger() (*log.Logger, func(), error) {
	var w io.Writer = io.Discard
	closeFn := func() {}

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "keepups",
	})
	return logger, closeFn, nil
}

// mustLogger is newLogger for commands that cannot run without it.
func mustLogger() (*log.Logger, func()) {
	logger, closeLog, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return logger, closeLog
}

// loadConfig loads the game config or exits with an error.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}
