package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/keepups/internal/games/keepups"
	"github.com/vovakirdan/keepups/internal/platform/tui"
	"github.com/vovakirdan/keepups/internal/storage"
)

// browseLimit is how many sessions the interactive view loads.
const browseLimit = 100

var (
	flagHistory bool
	flagStats   bool
	flagBrowse  bool
	flagLimit   int
	flagYes     bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the high-score table, best score per name.

Examples:
  keepups scores
  keepups scores --history --limit 20
  keepups scores --stats
  keepups scores --browse`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

var scoresClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all high scores and session history",
	Args:  cobra.NoArgs,
	Run:   runScoresClear,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagHistory, "history", false, "Show recent sessions instead of the high-score table")
	scoresCmd.Flags().BoolVar(&flagStats, "stats", false, "Show aggregate statistics")
	scoresCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Browse scores in an interactive table")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of recent sessions to show")

	scoresClearCmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "Do not ask for confirmation")
	scoresCmd.AddCommand(scoresClearCmd)
}

func runScores(cmd *cobra.Command, args []string) {
	if err := showScores(cmd.Context()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func showScores(ctx context.Context) error {
	logger, closeLog := mustLogger()
	defer closeLog()

	store, err := storage.Open(flagDBPath, logger)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	switch {
	case flagBrowse:
		return browseScores(ctx, store)
	case flagStats:
		return printStats(ctx, store)
	case flagHistory:
		return printHistory(ctx, store)
	}

	scores, err := store.Load(ctx)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}
	printHighScores(keepups.Table(scores))
	return nil
}

func browseScores(ctx context.Context, store *storage.Store) error {
	scores, err := store.Load(ctx)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}
	sessions, err := store.RecentSessions(ctx, browseLimit)
	if err != nil {
		return fmt.Errorf("retrieving history: %w", err)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	return tui.RunScoreboard(keepups.Table(scores), sessions, width, height)
}

func printHighScores(scores keepups.Table) {
	fmt.Println("High Scores - Football Keep-Ups")
	fmt.Println()

	entries := scores.Sorted()
	if len(entries) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'keepups play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-12s  %s\n", "Rank", "Name", "Score")
	fmt.Printf("  %-4s  %-12s  %s\n", "----", "----", "-----")
	for i, e := range entries {
		fmt.Printf("  %-4d  %-12s  %d\n", i+1, e.Name, e.Score)
	}
}

func printHistory(ctx context.Context, store *storage.Store) error {
	sessions, err := store.RecentSessions(ctx, flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving history: %w", err)
	}

	fmt.Println("Recent Sessions - Football Keep-Ups")
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		return nil
	}

	fmt.Printf("  %-16s  %-12s  %s\n", "Date", "Name", "Score")
	fmt.Printf("  %-16s  %-12s  %s\n", "----", "----", "-----")
	for _, s := range sessions {
		name := s.Name
		if name == "" {
			name = "-"
		}
		fmt.Printf("  %-16s  %-12s  %d\n", s.CreatedAt.Format("2006-01-02 15:04"), name, s.Score)
	}
	return nil
}

func printStats(ctx context.Context, store *storage.Store) error {
	stats, err := store.Stats(ctx)
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}

	fmt.Println("Statistics - Football Keep-Ups")
	fmt.Println()
	fmt.Printf("  Sessions:     %d\n", stats.Sessions)
	fmt.Printf("  Best:         %d\n", stats.Best)
	fmt.Printf("  Average:      %.1f\n", stats.AvgScore)
	fmt.Printf("  Total kicks:  %d\n", stats.TotalScore)
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("  Last played:  %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

func runScoresClear(cmd *cobra.Command, args []string) {
	if !flagYes {
		fmt.Print("Delete all high scores and session history? [y/N] ")
		var answer string
		//nolint:errcheck // Empty input means no
		fmt.Scanln(&answer)
		if answer != "y" && answer != "Y" {
			fmt.Println("Aborted.")
			return
		}
	}

	if err := clearScores(cmd.Context()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Scores cleared.")
}

func clearScores(ctx context.Context) error {
	logger, closeLog := mustLogger()
	defer closeLog()

	store, err := storage.Open(flagDBPath, logger)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if err := store.ClearHighScores(ctx); err != nil {
		return err
	}
	return store.ClearHistory(ctx)
}
