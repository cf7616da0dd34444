package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/autoscroller/internal/platform/tui"
	"github.com/vovakirdan/autoscroller/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresTUI   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top high scores.

Examples:
  autoscroller scores
  autoscroller scores --limit 5
  autoscroller scores --tui
  autoscroller scores delete 12`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

var scoresDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a high score by id",
	Args:  cobra.ExactArgs(1),
	RunE:  runScoresDelete,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", storage.DefaultLimit, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Open the interactive scoreboard")
	scoresCmd.AddCommand(scoresDeleteCmd)
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresTUI {
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, width, height)
	}

	ctx := context.Background()
	scores, err := store.Top(ctx, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("error retrieving scores: %w", err)
	}

	fmt.Println("High Scores")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'autoscroller play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-4s  %-10s  %-16s  %s\n", "Rank", "Name", "Score", "Date", "ID")
	fmt.Printf("  %-4s  %-4s  %-10s  %-16s  %s\n", "----", "----", "-----", "----", "--")
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-4s  %-10d  %-16s  %d\n", i+1, entry.Name, entry.Score, dateStr, entry.ID)
	}

	if stats, err := store.Stats(ctx); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Runs: %d  Average: %.0f\n", stats.HighScore, stats.Runs, stats.AvgScore)
	}
	return nil
}

func runScoresDelete(_ *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid score id %q", args[0])
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}
	defer store.Close()

	if err := store.Delete(context.Background(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("no score with id %d", id)
		}
		return err
	}
	fmt.Printf("Deleted score %d\n", id)
	return nil
}
