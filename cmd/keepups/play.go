package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/keepups/internal/core"
	"github.com/vovakirdan/keepups/internal/games/keepups"
	"github.com/vovakirdan/keepups/internal/platform/tui"
	"github.com/vovakirdan/keepups/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Football Keep-Ups",
	Long: `Start the game.

Controls:
  Click ball      - Kick (scores one keep-up)
  Enter / click   - Start game
  Space           - Kick (when input.keyboard_kick is enabled)
  Esc             - Skip saving your score
  Ctrl+S          - Save a screenshot
  Q/Ctrl+C        - Quit

Examples:
  keepups play
  keepups play --seed 42
  keepups play --config ./my-keepups.yaml --log-file keepups.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	logger, closeLog := mustLogger()
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open score storage; without it the game keeps scores in memory
	var (
		repo    keepups.Repository
		history keepups.HistoryRecorder
	)
	store, err := storage.Open(flagDBPath, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "error", err)
		mem := storage.NewMemoryRepository(nil)
		repo, history = mem, mem
	} else {
		repo, history = store, store
	}

	game := keepups.New(cmd.Context(), keepups.Options{
		Config:     cfg,
		Repository: repo,
		History:    history,
		Logger:     logger,
	})

	runErr := tui.Run(game, rc, cfg.Input.KeyboardKick, logger)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
