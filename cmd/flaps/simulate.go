package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Arkantos123789/Bird-that-flaps/internal/games/flappy"
)

var (
	flagTicks     int
	flagJumpEvery int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless deterministic session",
	Long: `Run the simulation without a terminal at exactly one reference frame
per tick, pressing jump every N ticks. The same seed and flags always
produce the same summary, which makes this useful for replay checks.

When session.auto_restart is set the run restarts after each collision
and keeps going until --ticks is reached.

Examples:
  flaps simulate --seed 1
  flaps simulate --seed 7 --ticks 10000 --jump-every 20 --debug`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Number of ticks to run")
	simulateCmd.Flags().IntVar(&flagJumpEvery, "jump-every", 18, "Press jump every N ticks (0 = never)")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := openLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}
	if flagTicks <= 0 {
		return fmt.Errorf("--ticks must be positive, got %d", flagTicks)
	}

	seed := resolveSeed()
	sim := flappy.New(cfg, flappy.NewGapTracker(seed, cfg.Gaps))
	logger.Debug("simulating", "seed", seed, "ticks", flagTicks, "jump_every", flagJumpEvery)

	sessions := 1
	for i := 0; i < flagTicks; i++ {
		if sim.CanRestart() {
			if !cfg.Session.AutoRestart {
				break
			}
			sim.Reset()
			sessions++
			logger.Debug("restart", "session", sessions)
			continue
		}

		jump := flagJumpEvery > 0 && i%flagJumpEvery == 0
		res := sim.Step(flappy.Input{Elapsed: sim.Frame(), Jump: jump})
		for _, e := range res.Events {
			logger.Debug(e.Kind.String(), "tick", i, "obstacle", e.Obstacle, "score", e.Score)
		}
	}

	snap := sim.Snapshot()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "seed:      %d\n", seed)
	fmt.Fprintf(out, "sessions:  %d\n", sessions)
	fmt.Fprintf(out, "phase:     %s\n", snap.Phase)
	fmt.Fprintf(out, "ticks:     %d\n", snap.Tick)
	fmt.Fprintf(out, "clock:     %s\n", snap.Clock)
	fmt.Fprintf(out, "score:     %d\n", snap.Score)
	fmt.Fprintf(out, "best:      %d\n", snap.Best)
	fmt.Fprintf(out, "position:  (%.2f, %.2f)\n", snap.Position.X, snap.Position.Y)
	return nil
}
