package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bunny-dash/internal/core"
	"github.com/vovakirdan/bunny-dash/internal/platform/tui"
	"github.com/vovakirdan/bunny-dash/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a difficulty, play and browse scores",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to pick a difficulty, Enter to play, Tab for the
scoreboard. Pause a run and press B to come back to the menu.

Examples:
  bunny menu
  bunny menu --fps 30
  bunny menu --db ./runs.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	runner, err := loadRunner()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logOut, closeLog := openLogFile()
	defer closeLog()
	logger := newLogger(logOut, "bunny")

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		store = nil
	}

	rt := core.DefaultConfig()
	rt.TickRate = flagFPS
	rt.Seed = flagSeed
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rt.ScreenW, rt.ScreenH = w, h
	}

	runErr := tui.RunSession(runner, rt, tui.Options{Store: store, Logger: logger})

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
