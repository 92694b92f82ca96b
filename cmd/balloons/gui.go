package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/balloon-pop/internal/platform/gui"
)

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Play in a window",
	Long: `Open a window sized to the play field. Click or touch a balloon to pop it.

Controls:
  S / Start button    - Start a round
  R / Reset button    - Return to the start screen
  Enter / Replay      - Start over after the round ends
  Esc / Q             - Quit

Examples:
  balloons gui
  balloons gui --fps 120 --debug`,
	Args: cobra.NoArgs,
	Run:  runGUI,
}

func runGUI(_ *cobra.Command, _ []string) {
	balloonCfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger("balloons-gui", os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	runErr := gui.Run(balloonCfg, resolveSeed(), flagFPS, logger)
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
