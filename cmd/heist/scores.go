package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-heist/internal/platform/tui"
	"github.com/vovakirdan/tui-heist/internal/storage"
)

var flagInteractive bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the run leaderboard",
	Long: `Display the top 10 runs.

With --interactive, opens a scrollable full-screen leaderboard instead.

Examples:
  heist scores
  heist scores --interactive
  heist scores --db ./runs.db`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagInteractive, "interactive", false, "Open the leaderboard as a full-screen TUI")
}

func runScores(cmd *cobra.Command, args []string) {
	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if _, scErr := tui.RunScoreboard(store, width, height); scErr != nil {
			fmt.Fprintf(os.Stderr, "Error showing leaderboard: %v\n", scErr)
			os.Exit(1)
		}
		return
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Best Runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'heist play' to get on the board!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-7s  %-7s  %-10s  %-16s  %s\n",
		"Rank", "Score", "Floors", "Turns", "Outcome", "Seed", "Date")
	fmt.Printf("  %-4s  %-8s  %-7s  %-7s  %-10s  %-16s  %s\n",
		"----", "-----", "------", "-----", "-------", "----", "----")

	for i, run := range runs {
		seed := run.Seed
		if len(seed) > 16 {
			seed = seed[:15] + "."
		}
		dateStr := run.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-7d  %-7d  %-10s  %-16s  %s\n",
			i+1, run.Score, run.Floors, run.Turns, run.Outcome, seed, dateStr)
	}

	// Summary line
	fmt.Println()
	if stats, statsErr := store.GetRunStats(); statsErr == nil && stats.RunsCount > 0 {
		fmt.Printf("%d runs, %d won, best %d, avg %.0f\n",
			stats.RunsCount, stats.WinsCount, stats.BestScore, stats.AvgScore)
	}
}
