package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bunny-dash/internal/platform/tui"
	"github.com/vovakirdan/bunny-dash/internal/storage"
)

var (
	flagRecent      bool
	flagInteractive bool
	flagLimit       int
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the run history",
	Long: `Display the best runs (or the latest ones with --recent).

Examples:
  bunny scores
  bunny scores --recent --limit 20
  bunny scores -i
  bunny scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the latest runs instead of the best")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse runs in a table")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the run history and the best score")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Run history cleared.")
		return
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width, height = w, h
		}
		if _, err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	title := "High Scores"
	runs, err := store.TopRuns(flagLimit)
	if flagRecent {
		title = "Recent Runs"
		runs, err = store.RecentRuns(flagLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Bunny Dash - %s\n\n", title)

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'bunny play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-5s  %-5s  %-6s  %-12s  %s\n", "Rank", "Score", "Level", "Candy", "Time", "Player", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %-5s  %-6s  %-12s  %s\n", "----", "-----", "-----", "-----", "----", "------", "----")
	for i, r := range runs {
		d := time.Duration(r.DurationMS) * time.Millisecond
		fmt.Printf("  %-4d  %-8d  %-5d  %-5d  %-6s  %-12s  %s\n",
			i+1, r.Score, r.Level, r.Candies, d.Round(time.Second), r.Player, r.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, err := store.GetStats(); err == nil {
		fmt.Printf("Best: %d   Runs: %d   Average: %.0f   Highest level: %d\n",
			stats.HighScore, stats.Runs, stats.AvgScore, stats.MaxLevel)
	}
}
