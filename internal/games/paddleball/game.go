// Package paddleball adapts the arena simulation to the terminal platform: it
// maps cells to arena units, turns pointer and key input into paddle moves and
// draws the arena into a core.Screen.
package paddleball

import (
	"fmt"
	"math"

	"github.com/vovakirdan/paddleball/internal/config"
	"github.com/vovakirdan/paddleball/internal/core"
	"github.com/vovakirdan/paddleball/internal/registry"
	"github.com/vovakirdan/paddleball/internal/sim"
)

// Glyphs
const (
	PaddleChar = '▀'
	BallChar   = '●'
	WallChar   = '░'
	HUDRule    = '─'
)

// BrickGlyphs are picked by brick skin.
var BrickGlyphs = []rune{'█', '▓', '▒'}

// Layout
const (
	hudRows    = 2 // Status line and rule
	minScreenW = 20
	minScreenH = 10
)

func init() {
	for _, v := range config.Variants() {
		info := registry.GameInfo{ID: string(v), Title: v.Title(), Description: v.Description()}
		registry.Register(info, func(cfg config.Config) registry.Game {
			return New(v, cfg)
		})
	}
}

// Game runs one variant in a terminal.
type Game struct {
	variant config.Variant
	cfg     config.Config

	state   *sim.State
	err     error // Set when cfg does not describe a valid arena
	view    core.Viewport
	runtime core.RuntimeConfig

	paused   bool
	lost     bool
	tooSmall bool
}

// New creates a game for variant v on top of cfg.
func New(v config.Variant, cfg config.Config) *Game {
	config.ApplyVariant(&cfg, v)
	return &Game{variant: v, cfg: cfg}
}

// ID returns the variant name.
func (g *Game) ID() string {
	return string(g.variant)
}

// Title returns the variant's display name.
func (g *Game) Title() string {
	return g.variant.Title()
}

// Reset rebuilds the arena and fits the viewport to the screen.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.Resize(rt)
	g.paused = false
	g.lost = false
	g.state, g.err = sim.New(g.cfg)
}

// Resize fits the viewport to a new screen and keeps the arena running.
func (g *Game) Resize(rt core.RuntimeConfig) {
	g.runtime = rt
	g.tooSmall = rt.ScreenW < minScreenW || rt.ScreenH < minScreenH
	g.view = core.Viewport{
		ArenaW:  g.cfg.Arena.Width,
		ArenaH:  g.cfg.Arena.Height,
		Cols:    max(rt.ScreenW, 1),
		Rows:    max(rt.ScreenH-hudRows, 1),
		OffsetY: hudRows,
	}
}

// Err returns the configuration error that prevents the game from running.
func (g *Game) Err() error {
	return g.err
}

// Sim exposes the underlying simulation.
func (g *Game) Sim() *sim.State {
	return g.state
}

// Step applies one frame of input and advances the simulation by the
// configured number of substeps.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.err != nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionPause) && !g.State().Over() {
		g.paused = !g.paused
	}
	if g.paused || g.tooSmall || g.State().Over() {
		return core.StepResult{State: g.State()}
	}

	for _, p := range in.Pointers {
		x, y := g.view.ToArena(p.Col, p.Row)
		g.state.MovePointer(x, y)
	}
	g.nudge(in)

	for range max(g.cfg.Frontend.Substeps, 1) {
		g.state.Tick()
		if g.state.Escaped() {
			g.lost = true
			break
		}
	}

	return core.StepResult{State: g.State()}
}

// nudge moves the paddle by one nudge step per direction key.
func (g *Game) nudge(in core.InputFrame) {
	var dx, dy float64
	step := g.cfg.Frontend.Nudge
	if in.Has(core.ActionLeft) {
		dx -= step
	}
	if in.Has(core.ActionRight) {
		dx += step
	}
	if in.Has(core.ActionUp) {
		dy -= step
	}
	if in.Has(core.ActionDown) {
		dy += step
	}
	if dx == 0 && dy == 0 {
		return
	}

	p := g.state.Paddle()
	x := math.Max(0, math.Min(g.cfg.Arena.Width, p.Pos.X()+p.Width/2+dx))
	g.state.MovePointer(x, p.Pos.Y()+dy)
}

// State returns the current status.
func (g *Game) State() core.GameState {
	if g.state == nil {
		return core.GameState{Paused: g.paused}
	}
	remaining := g.state.Remaining()
	return core.GameState{
		Ticks:     g.state.Ticks(),
		Remaining: remaining,
		Paused:    g.paused,
		BallLost:  g.lost,
		Cleared:   g.cfg.Bricks.Count() > 0 && remaining == 0,
	}
}

// Render draws the arena and HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.err != nil {
		dst.DrawTextCentered(dst.Height()/2, "invalid arena config", core.ColorRed)
		return
	}
	if g.tooSmall {
		msg := fmt.Sprintf("need %dx%d", minScreenW, minScreenH)
		dst.DrawTextCentered(dst.Height()/2, msg, core.ColorYellow)
		return
	}

	g.renderWalls(dst)
	g.renderBricks(dst)
	g.renderPaddle(dst)
	g.renderBall(dst)
	g.renderHUD(dst)
}

func (g *Game) renderWalls(dst *core.Screen) {
	for _, w := range g.state.Boundaries() {
		dst.DrawRect(g.view.CellRect(w.X, w.Y, w.W, w.H), WallChar, core.ColorGray)
	}
}

func (g *Game) renderBricks(dst *core.Screen) {
	for _, b := range g.state.Bricks() {
		if b.Broken {
			continue
		}
		glyph := BrickGlyphs[b.Skin%len(BrickGlyphs)]
		dst.DrawRect(g.view.CellRect(b.X, b.Y, b.W, b.H), glyph, core.SkinColor(b.Skin))
	}
}

func (g *Game) renderPaddle(dst *core.Screen) {
	p := g.state.Paddle()
	dst.DrawRect(g.view.CellRect(p.Pos.X(), p.Pos.Y(), p.Width, p.Height), PaddleChar, core.ColorWhite)
}

// renderBall fills every cell whose center lies inside the ball. A ball
// smaller than a cell still gets the cell holding its center.
func (g *Game) renderBall(dst *core.Screen) {
	b := g.state.Ball()
	c := b.Center()
	box := g.view.CellRect(b.Pos.X(), b.Pos.Y(), 2*b.Radius, 2*b.Radius)

	drawn := false
	for row := box.Y; row < box.Bottom(); row++ {
		for col := box.X; col < box.Right(); col++ {
			x, y := g.view.ToArena(col, row)
			dx, dy := x-c.X(), y-c.Y()
			if dx*dx+dy*dy <= b.Radius*b.Radius {
				dst.SetColored(col, row, BallChar, core.ColorYellow)
				drawn = true
			}
		}
	}
	if !drawn {
		col, row := g.view.ToCell(c.X(), c.Y())
		if row >= hudRows {
			dst.SetColored(col, row, BallChar, core.ColorYellow)
		}
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	st := g.State()
	v := g.state.Ball().Vel

	status := fmt.Sprintf(" %s  tick %d  speed %.1f", g.Title(), st.Ticks, v.Len())
	if g.cfg.Bricks.Count() > 0 {
		status += fmt.Sprintf("  bricks %d/%d", st.Remaining, g.cfg.Bricks.Count())
	}
	dst.DrawText(0, 0, status, core.ColorCyan)
	dst.DrawHLine(0, 1, dst.Width(), HUDRule, core.ColorGray)

	mid := hudRows + (dst.Height()-hudRows)/2
	switch {
	case st.Cleared:
		dst.DrawTextCentered(mid, "ARENA CLEARED - R to play again", core.ColorGreen)
	case st.BallLost:
		dst.DrawTextCentered(mid, "BALL LOST - R to restart", core.ColorRed)
	case st.Paused:
		dst.DrawTextCentered(mid, "PAUSED - P to resume", core.ColorYellow)
	}
}
