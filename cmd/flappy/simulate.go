package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagTicks     int
	flagFlapEvery int
	flagAutopilot bool
	flagFrame     bool
	flagSave      bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the game headless and print the result",
	Long: `Run the simulation without a terminal UI, as fast as possible.

The bird starts on the first tick. It then flaps every --flap-every
ticks, or steers itself with --autopilot, until it crashes or --ticks
run out. The same --seed and flags always give the same result.

Examples:
  flappy simulate --seed 42 --autopilot
  flappy simulate --ticks 600 --flap-every 20 --frame
  flappy simulate --autopilot --save`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Maximum number of ticks to run")
	simulateCmd.Flags().IntVar(&flagFlapEvery, "flap-every", 0, "Flap every N ticks (0 = never)")
	simulateCmd.Flags().BoolVar(&flagAutopilot, "autopilot", false, "Flap whenever the bird sinks below the next gap")
	simulateCmd.Flags().BoolVar(&flagFrame, "frame", false, "Print the final frame as text")
	simulateCmd.Flags().BoolVar(&flagSave, "save", false, "Record the run and best score in --db")
}

// simOptions drives one headless run.
type simOptions struct {
	Ticks     int
	FlapEvery int
	Autopilot bool
}

// simulate starts the world and steps it until it crashes or runs out of ticks.
func simulate(w *flappy.World, o simOptions) flappy.Snapshot {
	w.Push(core.ActionPrimary)

	for i := 0; i < o.Ticks; i++ {
		if i > 0 && o.FlapEvery > 0 && i%o.FlapEvery == 0 {
			w.Push(core.ActionPrimary)
		} else if o.Autopilot && shouldFlap(w) {
			w.Push(core.ActionPrimary)
		}

		w.Step(1)
		if w.Phase() == flappy.PhaseOver {
			break
		}
	}
	return w.Snapshot()
}

// shouldFlap reports whether the bird is falling below the gap it has to
// pass next.
func shouldFlap(w *flappy.World) bool {
	snap := w.Snapshot()
	if snap.Phase != flappy.PhasePlaying || snap.BirdVelocity < 0 {
		return false
	}

	cfg := w.Config()
	floor := cfg.Playfield.Height * 0.6
	for _, o := range snap.Obstacles {
		if o.X+cfg.Pipes.Width > snap.BirdX {
			floor = o.BottomRect(cfg.Pipes).Y
			break
		}
	}

	bottom := snap.BirdY + cfg.Bird.Height - cfg.Bird.HitboxInset
	return bottom > floor-12
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var best flappy.BestScoreStore
	var store *storage.Store
	if flagSave {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			return err
		}
		defer store.Close()
		best = store
	}

	world := flappy.NewWorld(cfg, seed, best, logger)
	start := time.Now()
	snap := simulate(world, simOptions{
		Ticks:     flagTicks,
		FlapEvery: flagFlapEvery,
		Autopilot: flagAutopilot,
	})
	logger.Debug("simulation finished", "elapsed", time.Since(start), "ticks", snap.Tick)

	if store != nil && snap.Score > 0 {
		if _, err := store.SaveRun(storage.RunRecord{Score: snap.Score, Ticks: snap.RunTicks, Seed: seed}); err != nil {
			logger.Warn("could not save run", "error", err)
		}
	}

	out := cmd.OutOrStdout()
	printSnapshot(out, snap, seed)
	if flagFrame {
		screen := core.NewScreen(80, 24)
		world.Draw(screen)
		fmt.Fprintln(out, screen.String())
	}
	return nil
}

func printSnapshot(w io.Writer, snap flappy.Snapshot, seed int64) {
	fmt.Fprintf(w, "seed:      %d\n", seed)
	fmt.Fprintf(w, "phase:     %s\n", snap.Phase)
	fmt.Fprintf(w, "ticks:     %d\n", snap.Tick)
	fmt.Fprintf(w, "score:     %d\n", snap.Score)
	fmt.Fprintf(w, "best:      %d\n", snap.Best)
	fmt.Fprintf(w, "bird:      y=%.2f v=%.2f\n", snap.BirdY, snap.BirdVelocity)
	fmt.Fprintf(w, "obstacles: %d\n", len(snap.Obstacles))
}
