package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mines/internal/registry"
	"github.com/vovakirdan/tui-mines/internal/storage"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores [board]",
	Short: "Show high scores and results",
	Long: `Display the top 10 scores and win statistics for a board.
Without a board, lists the most recent finished games.

Examples:
  mines scores
  mines scores mines_expert
  mines scores mines --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores and results for the board")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		if err := printRecent(store); err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
			os.Exit(1)
		}
		return
	}

	gameID := args[0]
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown board %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'mines list' to see available boards.")
		os.Exit(1)
	}

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared scores for %s.\n", gameID)
		return
	}

	if err := printScores(store, gameID); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
}

func printScores(store *storage.Store, gameID string) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'mines play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10.1f  %s\n", i+1, entry.Score, dateStr)
	}

	stats, err := store.Stats(gameID)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("Best: %.1f\n", stats.BestScore)
	if stats.Played > 0 {
		fmt.Printf("Won %d of %d (%.0f%%), fastest win %.1fs\n",
			stats.Won, stats.Played, stats.WinRate()*100, stats.FastestWin.Seconds())
	}
	return nil
}

func printRecent(store *storage.Store) error {
	results, err := store.RecentResults(20)
	if err != nil {
		return err
	}

	fmt.Println("Recent games")
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No games finished yet.")
		return nil
	}

	fmt.Printf("  %-20s  %-6s  %-8s  %-8s  %-5s  %-5s  %s\n", "Board", "Result", "Score", "Time", "Undos", "Flags", "Date")
	for _, r := range results {
		outcome := "lost"
		if r.Won {
			outcome = "won"
		}
		fmt.Printf("  %-20s  %-6s  %-8.1f  %-8s  %-5d  %-5d  %s\n",
			r.Variant, outcome, r.Score, fmt.Sprintf("%.1fs", r.Elapsed.Seconds()),
			r.Undos, r.FlagUses, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
