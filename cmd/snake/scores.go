package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/highscore"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var (
	flagLimit  int
	flagBrowse bool
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top high scores, highest first.

Examples:
  snake scores
  snake scores --limit 5
  snake scores --store sqlite --browse`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 0, "Number of scores to show (0 = config highscores.show)")
	scoresCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Browse all scores in an interactive table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every stored score")
}

func runScores(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	store, err := openStore(cfg.HighScores, "")
	if err != nil {
		return fmt.Errorf("opening scores: %w", err)
	}
	defer store.Close()

	if flagClear {
		return clearScores(cmd.OutOrStdout(), store)
	}

	records, err := store.Load()
	if err != nil {
		return fmt.Errorf("reading scores: %w", err)
	}

	if flagBrowse {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return tui.ErrNotTerminal
		}
		return tui.RunScoreboard(records)
	}

	limit := flagLimit
	if limit <= 0 {
		limit = cfg.HighScores.Limit()
	}
	writeScores(cmd.OutOrStdout(), records, limit)

	if store.db != nil {
		if stats, err := store.db.Stats(); err == nil && stats.GamesCount > 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "Games: %d  Average: %.1f  Last played: %s\n",
				stats.GamesCount, stats.AvgScore, stats.LastPlayed.Format("2006-01-02 15:04"))
		}
	}
	return nil
}

// writeScores prints up to limit ranked records followed by the best score.
func writeScores(w io.Writer, records []highscore.Record, limit int) {
	fmt.Fprintln(w, "High Scores")
	fmt.Fprintln(w)

	if len(records) == 0 {
		fmt.Fprintln(w, "No high scores yet!")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Run 'snake' to set the first one.")
		return
	}

	fmt.Fprintf(w, "  %-4s  %-15s  %-8s  %-10s  %s\n", "Rank", "Name", "Score", "Date", "Difficulty")
	fmt.Fprintf(w, "  %-4s  %-15s  %-8s  %-10s  %s\n", "----", "----", "-----", "----", "----------")

	for i, r := range records {
		if i >= limit {
			break
		}
		difficulty := r.Difficulty
		if difficulty == "" {
			difficulty = "-"
		}
		fmt.Fprintf(w, "  %-4d  %-15s  %-8d  %-10s  %s\n", i+1, r.Name, r.Score, r.Date, difficulty)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Best: %d\n", records[0].Score)
}

// clearScores empties the store. The file store is removed from disk.
func clearScores(w io.Writer, store *scoreStore) error {
	if store.db != nil {
		if err := store.db.ClearScores(); err != nil {
			return err
		}
	} else if fileStore, ok := store.Store.(*highscore.FileStore); ok {
		if err := removeIfExists(fileStore.Path()); err != nil {
			return fmt.Errorf("clearing scores: %w", err)
		}
	}
	fmt.Fprintln(w, "High scores cleared.")
	return nil
}

func removeIfExists(path string) error {
	err := os.Remove(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
