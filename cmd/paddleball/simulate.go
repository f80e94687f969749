package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/paddleball/internal/config"
	"github.com/vovakirdan/paddleball/internal/sim"
)

var (
	flagTicks int
	flagEvery int
	flagSweep bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [variant]",
	Short: "Run a variant without a terminal",
	Long: `Runs the simulation for a fixed number of ticks and prints the final
state with its hash. Two runs with the same config, variant and flags always
produce the same hash.

With --sweep a scripted pointer drags the paddle back and forth across the
arena every few ticks.

Examples:
  paddleball simulate
  paddleball simulate classic --ticks 100000
  paddleball simulate bricks --sweep --every 500 --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 6000, "Number of ticks to run")
	simulateCmd.Flags().IntVar(&flagEvery, "every", 1000, "Log a snapshot every N ticks (0 = never)")
	simulateCmd.Flags().BoolVar(&flagSweep, "sweep", false, "Drive the paddle with a scripted pointer sweep")
}

// simOptions controls a headless run.
type simOptions struct {
	Ticks int
	Every int
	Sweep bool
}

const (
	sweepPeriod   = 512 // Ticks for one full left-right-left pass
	sweepInterval = 4   // Ticks between pointer events
)

// sweepX returns the scripted pointer x at tick: a triangle wave that keeps
// the whole paddle inside the arena.
func sweepX(tick int, arenaW, paddleW float64) float64 {
	half := sweepPeriod / 2
	phase := tick % sweepPeriod
	if phase > half {
		phase = sweepPeriod - phase
	}
	span := arenaW - paddleW
	return paddleW/2 + span*float64(phase)/float64(half)
}

// simulate runs variant v on arena and returns the last snapshot. The run
// stops early once the ball has left the arena.
func simulate(arena config.Config, v config.Variant, opts simOptions, logger *log.Logger) (sim.Snapshot, error) {
	config.ApplyVariant(&arena, v)
	s, err := sim.New(arena)
	if err != nil {
		return sim.Snapshot{}, err
	}

	logger.Debug("simulation started", "variant", v, "ticks", opts.Ticks, "sweep", opts.Sweep)

	for i := range opts.Ticks {
		if opts.Sweep && i%sweepInterval == 0 {
			p := s.Paddle()
			s.MovePointer(sweepX(i, arena.Arena.Width, p.Width), p.Pos.Y())
		}

		s.Tick()

		if opts.Every > 0 && s.Ticks()%uint64(opts.Every) == 0 {
			logSnapshot(logger, s.Snapshot())
		}
		if s.Escaped() {
			logger.Warn("ball left the arena", "tick", s.Ticks())
			break
		}
	}

	return s.Snapshot(), nil
}

func logSnapshot(logger *log.Logger, snap sim.Snapshot) {
	logger.Info("snapshot",
		"tick", snap.Tick,
		"ball", fmt.Sprintf("(%.2f, %.2f)", snap.BallX, snap.BallY),
		"vel", fmt.Sprintf("(%.2f, %.2f)", snap.BallVX, snap.BallVY),
		"paddle", fmt.Sprintf("(%.2f, %.2f)", snap.PaddleX, snap.PaddleY),
		"broken", snap.BrokenCount(),
	)
}

func runSimulate(_ *cobra.Command, args []string) {
	arena := loadArena()
	v := variantArg(args)

	logger, closeLog := newLogger(os.Stderr, "paddleball-sim")
	defer closeLog()

	snap, err := simulate(arena, v, simOptions{Ticks: flagTicks, Every: flagEvery, Sweep: flagSweep}, logger)
	if err != nil {
		closeLog()
		fatal("%v", err)
	}

	fmt.Printf("variant:  %s\n", v)
	fmt.Printf("ticks:    %d\n", snap.Tick)
	fmt.Printf("ball:     (%.4f, %.4f) vel (%.4f, %.4f)\n", snap.BallX, snap.BallY, snap.BallVX, snap.BallVY)
	fmt.Printf("paddle:   (%.4f, %.4f) vel (%.4f, %.4f)\n", snap.PaddleX, snap.PaddleY, snap.PaddleVX, snap.PaddleVY)
	fmt.Printf("broken:   %d/%d\n", snap.BrokenCount(), len(snap.Broken))
	fmt.Printf("hash:     %016x\n", snap.Hash())
}
