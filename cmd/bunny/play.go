package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bunny-dash/internal/core"
	"github.com/vovakirdan/bunny-dash/internal/platform/audio"
	"github.com/vovakirdan/bunny-dash/internal/platform/stream"
	"github.com/vovakirdan/bunny-dash/internal/platform/tui"
	"github.com/vovakirdan/bunny-dash/internal/storage"
)

var (
	flagStreamAddr string
	flagMute       bool
	flagVolume     float64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a run right away.

Controls:
  Space/Up/W    - Jump (again in mid-air for a double jump)
  Left/Right    - Face and run
  Down/S        - Stop running
  Enter         - Start
  P/Esc         - Pause
  R             - Restart (after game over)
  Q/Ctrl+C      - Quit

With --stream, every frame is also published as msgpack over a websocket
at ws://<addr>/frames for external renderers.

Examples:
  bunny play
  bunny play --difficulty easy
  bunny play --seed 42 --mute
  bunny play --stream :8080
  bunny play --config ./my-runner.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagStreamAddr, "stream", "", "Serve frames over websocket at this address (e.g. :8080)")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.6, "Sound volume from 0 to 1")
}

func runPlay(_ *cobra.Command, _ []string) {
	runner, err := loadRunner()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logOut, closeLog := openLogFile()
	defer closeLog()
	logger := newLogger(logOut, "bunny")

	rt := core.DefaultConfig()
	rt.TickRate = flagFPS
	rt.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW, rt.ScreenH = w, h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		store = nil
	}

	opts := tui.Options{Store: store, Logger: logger}

	if !flagMute {
		player := audio.NewPlayer(flagVolume, logger)
		if err := player.Init(); err == nil {
			defer player.Close()
			opts.Sinks = append(opts.Sinks, player)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if flagStreamAddr != "" {
		hub := stream.NewHub(logger)
		go hub.Run(ctx)
		go func() {
			if err := hub.Serve(ctx, flagStreamAddr); err != nil {
				logger.Error("frame stream stopped", "err", err)
			}
		}()
		opts.Stream = hub
	}

	runErr := tui.Run(runner, rt, opts)

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
