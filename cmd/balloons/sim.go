package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/balloon-pop/internal/config"
	"github.com/vovakirdan/balloon-pop/internal/games/balloon"
)

var (
	flagSimSeconds  int
	flagSimTapEvery int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless round and print the result",
	Long: `Run a round without a display, stepping simulated time by the movement
interval. A scripted player pops every Nth balloon the moment it spawns.
With a fixed --seed the output is reproducible, which helps when tuning
balloons.yaml.

Examples:
  balloons sim
  balloons sim --seed 7 --tap-every 2
  balloons sim --seconds 30 --tap-every 0 --config ./fast.yaml`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimSeconds, "seconds", 0, "Simulated seconds to run (0 = until the round ends)")
	simCmd.Flags().IntVar(&flagSimTapEvery, "tap-every", 1, "Pop every Nth spawned balloon (0 = never pop)")
}

// simResult summarizes a headless run.
type simResult struct {
	Seed     int64
	Elapsed  time.Duration
	Spawned  int
	Snapshot balloon.Snapshot
}

// simulate plays one round with a scripted player. seconds <= 0 runs until
// the round ends; tapEvery <= 0 never pops.
func simulate(cfg config.BalloonConfig, seed int64, seconds, tapEvery int, logger io.Writer) simResult {
	ctrl := balloon.NewController(cfg, seed)
	seen := make(map[string]bool)
	spawned := 0

	unsubscribe := ctrl.Subscribe(func(s balloon.Snapshot) {
		if logger != nil && s.Phase == balloon.PhaseGameOver {
			fmt.Fprintf(logger, "round over at %s\n", ctrl.Elapsed())
		}
	})
	defer unsubscribe()

	ctrl.Start()

	limit := time.Duration(seconds) * time.Second
	if seconds <= 0 {
		limit = time.Duration(cfg.Round.DurationSeconds)*cfg.Round.CountdownInterval + cfg.Movement.Interval
	}

	for ctrl.Elapsed() < limit && ctrl.Phase() == balloon.PhaseRunning {
		ctrl.Advance(cfg.Movement.Interval)

		for _, b := range ctrl.Snapshot().Balloons {
			if seen[b.ID] {
				continue
			}
			seen[b.ID] = true
			spawned++
			if tapEvery > 0 && spawned%tapEvery == 0 {
				ctrl.Pop(b.ID)
			}
		}
	}

	return simResult{
		Seed:     seed,
		Elapsed:  ctrl.Elapsed(),
		Spawned:  spawned,
		Snapshot: ctrl.Snapshot(),
	}
}

func runSim(cmd *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var progress io.Writer
	if flagDebug {
		progress = cmd.ErrOrStderr()
	}

	res := simulate(cfg, resolveSeed(), flagSimSeconds, flagSimTapEvery, progress)
	snap := res.Snapshot

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Seed:       %d\n", res.Seed)
	fmt.Fprintf(out, "Elapsed:    %s\n", res.Elapsed)
	fmt.Fprintf(out, "Phase:      %s\n", snap.Phase)
	fmt.Fprintf(out, "Remaining:  %s\n", snap.Clock())
	fmt.Fprintf(out, "Speed:      %d\n", snap.Speed)
	fmt.Fprintf(out, "Spawned:    %d\n", res.Spawned)
	fmt.Fprintf(out, "Popped:     %d\n", snap.Popped)
	fmt.Fprintf(out, "Missed:     %d\n", snap.Missed)
	fmt.Fprintf(out, "On screen:  %d\n", len(snap.Balloons))
	fmt.Fprintf(out, "Score:      %d\n", snap.FinalScore())
}
