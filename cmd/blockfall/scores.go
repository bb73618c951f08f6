package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/blockfall/blockfall/internal/registry"
	"github.com/blockfall/blockfall/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show best results",
	Long: `Print the top results recorded for the given mode, or an overview
of every mode when none is given.

Examples:
  blockfall scores
  blockfall scores tetris
  blockfall scores tetris_sprint --limit 5`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of results to show")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		printOverview(store)
		return
	}

	gameID := args[0]
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'blockfall list' to see available modes.")
		os.Exit(1)
	}

	results, err := store.TopResults(gameID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading results: %v\n", err)
		os.Exit(1)
	}

	if len(results) == 0 {
		fmt.Printf("No results recorded for %q yet.\n", gameID)
		return
	}

	fmt.Printf("Best results for %s:\n\n", gameID)
	fmt.Printf("  %-5s %-10s %-6s %-6s %-8s %s\n", "Rank", "Score", "Level", "Lines", "Time", "Date")
	for i, r := range results {
		timeStr := fmt.Sprintf("%d:%02d", r.DurationSecs/60, r.DurationSecs%60)
		fmt.Printf("  %-5d %-10d %-6d %-6d %-8s %s\n",
			i+1, r.Score, r.Level, r.Lines, timeStr, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	best, err := store.HighScore(gameID)
	if err == nil && best > 0 {
		fmt.Printf("\nBest: %d\n", best)
	}

	sprints, err := store.BestSprints(gameID, 3)
	if err == nil && len(sprints) > 0 {
		fmt.Println("\nFastest runs:")
		for i, r := range sprints {
			fmt.Printf("  %d. %d:%02d (%d pts)\n", i+1, r.DurationSecs/60, r.DurationSecs%60, r.Score)
		}
	}
}

// printOverview prints aggregate statistics across all modes.
func printOverview(store *storage.Store) {
	stats, err := store.GetAllGamesStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading stats: %v\n", err)
		os.Exit(1)
	}

	if len(stats) == 0 {
		fmt.Println("No results recorded yet.")
		return
	}

	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Println("Results overview:")
	fmt.Printf("  %-16s %-7s %-10s %-10s %-7s %s\n", "Mode", "Games", "Best", "Avg", "Lines", "Last played")
	for _, id := range ids {
		gs := stats[id]
		last := "-"
		if !gs.LastPlayed.IsZero() {
			last = gs.LastPlayed.Format("2006-01-02 15:04")
		}
		fmt.Printf("  %-16s %-7d %-10d %-10.0f %-7d %s\n",
			id, gs.GamesCount, gs.HighScore, gs.AvgScore, gs.TotalLines, last)
	}
	fmt.Println("\nRun 'blockfall scores <mode>' for the full table.")
}
