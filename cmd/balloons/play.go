package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/balloon-pop/internal/core"
	"github.com/vovakirdan/balloon-pop/internal/games/balloon"
	"github.com/vovakirdan/balloon-pop/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a round in the terminal. Click a balloon to pop it.

Controls:
  S / Start button    - Start a round
  R / Reset button    - Abandon the round and return to the start screen
  Enter / Replay      - Start over after the round ends
  Ctrl+S              - Save a text screenshot to ~/.balloons/screenshots
  Q / Ctrl+C          - Quit

Examples:
  balloons play
  balloons play --seed 42
  balloons play --config ./my-balloons.yaml --log-file balloons.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	balloonCfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The alt screen owns the terminal, so logs only go to --log-file
	logger, closeLog, err := newLogger("balloons", io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     resolveSeed(),
	}

	runErr := tui.Run(balloon.New(balloonCfg), cfg, logger)
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
