package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/paddleball/internal/core"
	"github.com/vovakirdan/paddleball/internal/platform/tui"
	"github.com/vovakirdan/paddleball/internal/registry"
	"github.com/vovakirdan/paddleball/internal/sim"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing. Without a variant a picker menu is shown first.

Controls:
  Mouse        - Move the paddle
  Arrows/WASD  - Nudge the paddle
  P            - Pause
  R            - Restart
  Esc          - Back to menu
  Q/Ctrl+C     - Quit

Examples:
  paddleball play
  paddleball play classic
  paddleball play bricks --config ./arena.yaml --fps 30`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	arena := loadArena()
	if _, err := sim.New(arena); err != nil {
		fatal("%v", err)
	}

	// The terminal belongs to the game; log to a file or nowhere.
	logger, closeLog := newLogger(io.Discard, "paddleball")
	defer closeLog()

	rt := core.DefaultConfig()
	rt.TickRate = flagFPS
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rt.ScreenW, rt.ScreenH = w, h
	}

	if len(args) == 0 {
		logger.Info("starting session", "width", rt.ScreenW, "height", rt.ScreenH)
		if err := tui.RunSession(arena, rt, logger); err != nil {
			closeLog()
			fatal("%v", err)
		}
		return
	}

	v := variantArg(args)
	game, err := registry.Create(string(v), arena)
	if err != nil {
		closeLog()
		fatal("%v", err)
	}

	logger.Info("starting game", "variant", v, "fps", rt.TickRate)
	if err := tui.Run(game, rt); err != nil {
		closeLog()
		fatal("%v", err)
	}
	logger.Info("game ended", "ticks", game.State().Ticks)
}
