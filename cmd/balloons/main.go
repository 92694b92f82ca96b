// balloons is a tap-the-balloon arcade round playable in the terminal, in a
// window, or over SSH.
//
// Usage:
//
//	balloons play            - Play in the terminal (mouse taps)
//	balloons gui             - Play in a window (mouse and touch)
//	balloons serve           - Start SSH server for remote play
//	balloons sim             - Run a headless round and print the result
//	balloons config          - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible rounds
//	--config <path>     - Use a custom balloons.yaml
//	--log-file <path>   - Append logs to a file
//	--debug             - Log at debug level
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "balloons",
	Short: "Balloon Pop - tap the balloons before they land",
	Long: `Balloon Pop is a short timed round: balloons rise from the top of the
field and drift down, faster every 30 seconds. Tap them before they reach
the bottom. Each pop is worth 2 points, each miss costs 1.

Available commands:
  play     - Play in the terminal
  gui      - Play in a window
  serve    - Start SSH server for remote play
  sim      - Run a headless round
  config   - Print the effective configuration

Examples:
  balloons play
  balloons play --seed 42 --log-file balloons.log
  balloons gui
  balloons serve --ssh :2222
  balloons sim --seconds 60 --tap-every 2`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom balloons.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(guiCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}
