// heist is a turn-based stealth roguelite played in the terminal.
//
// Usage:
//
//	heist play               - Start a run
//	heist preview            - Print a generated floor without playing it
//	heist scores             - Show the run leaderboard
//	heist serve              - Start SSH server for remote play
//
// Global flags:
//
//	--db <path>     - Set database path (default: ~/.heist/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var flagDBPath string

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "heist",
	Short: "Heist - a turn-based stealth roguelite for your terminal",
	Long: `Heist is a terminal stealth roguelite. Sneak through procedurally
generated floors, grab the objective, and reach the exit without getting
caught by the guards. Every move you make, the world moves too.

Available commands:
  play     - Start a run
  preview  - Print a generated floor without playing it
  scores   - View the run leaderboard
  serve    - Start SSH server for remote play

Examples:
  heist play
  heist play --seed cellar-door --difficulty hard
  heist preview --seed cellar-door --floor 2
  heist scores
  heist serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.heist/runs.db", "Path to runs database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
