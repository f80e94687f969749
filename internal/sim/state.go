// Package sim owns the ball, paddle, walls and bricks of one arena and advances
// them one tick at a time. It performs no I/O and is not safe for concurrent
// use; the host delivers ticks and pointer moves serially.
package sim

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/paddleball/internal/config"
	"github.com/vovakirdan/paddleball/internal/physics"
)

// Ball is the moving circle.
type Ball struct {
	Pos    mgl64.Vec2 // Top-left of the bounding box
	Vel    mgl64.Vec2 // Units per tick
	Radius float64
}

// Next returns the position the ball will occupy after one more tick.
func (b Ball) Next() mgl64.Vec2 {
	return b.Pos.Add(b.Vel)
}

// Center returns the center of the ball.
func (b Ball) Center() mgl64.Vec2 {
	return b.Pos.Add(mgl64.Vec2{b.Radius, b.Radius})
}

// Bounds returns the ball's bounding box.
func (b Ball) Bounds() physics.Rect {
	return physics.NewRect(b.Pos.X(), b.Pos.Y(), 2*b.Radius, 2*b.Radius)
}

// Paddle is the pointer-driven rectangle.
type Paddle struct {
	Pos    mgl64.Vec2 // Top-left corner
	Vel    mgl64.Vec2 // Displacement from the last pointer event, old minus new
	Width  float64
	Height float64
}

// Rect returns the paddle's current rectangle.
func (p Paddle) Rect() physics.Rect {
	return physics.NewRect(p.Pos.X(), p.Pos.Y(), p.Width, p.Height)
}

// Brick is a destructible obstacle. Skin is a palette handle for the renderer.
type Brick struct {
	physics.Rect
	Broken bool
	Skin   int
}

// Contacts records what the last tick hit.
type Contacts struct {
	Paddle physics.Outcome
	Walls  []physics.Outcome // Indexed like Boundaries(); empty for the bounds model
	Bricks []int             // Indices of bricks broken this tick
}

// Any reports whether anything was hit.
func (c Contacts) Any() bool {
	if c.Paddle != physics.None || len(c.Bricks) > 0 {
		return true
	}
	for _, o := range c.Walls {
		if o != physics.None {
			return true
		}
	}
	return false
}

// State is the complete simulation of one arena.
type State struct {
	ball   Ball
	paddle Paddle

	arenaW, arenaH float64
	minY, maxY     float64 // Paddle travel band

	walls      config.WallModel
	momentum   bool
	speedLimit float64

	boundaries []physics.Rect
	bricks     []Brick

	ticks uint64
	last  Contacts
}

// New builds a State from configuration.
func New(cfg config.Config) (*State, error) {
	if err := validate(cfg); err != nil {
		return nil, err
	}

	s := &State{
		ball: Ball{
			Pos:    mgl64.Vec2{cfg.Ball.Position.X, cfg.Ball.Position.Y},
			Vel:    mgl64.Vec2{cfg.Ball.Velocity.X, cfg.Ball.Velocity.Y},
			Radius: cfg.Ball.Diameter / 2,
		},
		paddle: Paddle{
			Pos:    mgl64.Vec2{cfg.Paddle.Position.X, cfg.Paddle.Position.Y},
			Width:  cfg.Paddle.Width,
			Height: cfg.Paddle.Height,
		},
		arenaW:     cfg.Arena.Width,
		arenaH:     cfg.Arena.Height,
		minY:       cfg.Paddle.MinY,
		maxY:       cfg.Paddle.MaxY,
		walls:      cfg.Physics.Walls,
		momentum:   cfg.Physics.Momentum,
		speedLimit: cfg.Physics.SpeedLimit,
	}
	s.paddle.Pos[1] = mgl64.Clamp(s.paddle.Pos.Y(), s.minY, s.maxY)

	for _, r := range cfg.Boundaries {
		s.boundaries = append(s.boundaries, physics.NewRect(r.X, r.Y, r.Width, r.Height))
	}

	for i, r := range cfg.Bricks.Rects() {
		s.bricks = append(s.bricks, Brick{
			Rect: physics.NewRect(r.X, r.Y, r.Width, r.Height),
			Skin: i / cfg.Bricks.Columns,
		})
	}

	return s, nil
}

func validate(cfg config.Config) error {
	var errs []error
	if cfg.Arena.Width <= 0 || cfg.Arena.Height <= 0 {
		errs = append(errs, fmt.Errorf("arena size must be positive, got %vx%v", cfg.Arena.Width, cfg.Arena.Height))
	}
	if cfg.Ball.Diameter <= 0 {
		errs = append(errs, fmt.Errorf("ball diameter must be positive, got %v", cfg.Ball.Diameter))
	}
	if cfg.Paddle.Width <= 0 || cfg.Paddle.Height <= 0 {
		errs = append(errs, fmt.Errorf("paddle size must be positive, got %vx%v", cfg.Paddle.Width, cfg.Paddle.Height))
	}
	if cfg.Paddle.MinY > cfg.Paddle.MaxY {
		errs = append(errs, fmt.Errorf("paddle band is inverted: min_y %v > max_y %v", cfg.Paddle.MinY, cfg.Paddle.MaxY))
	}
	if cfg.Physics.Momentum && cfg.Physics.SpeedLimit <= 0 {
		errs = append(errs, fmt.Errorf("speed_limit must be positive with momentum, got %v", cfg.Physics.SpeedLimit))
	}
	if cfg.Physics.Walls != config.WallsRects && cfg.Physics.Walls != config.WallsBounds {
		errs = append(errs, fmt.Errorf("unknown wall model %q", cfg.Physics.Walls))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid arena config: %w", err)
	}
	return nil
}

// Ball returns the ball.
func (s *State) Ball() Ball {
	return s.ball
}

// Paddle returns the paddle.
func (s *State) Paddle() Paddle {
	return s.paddle
}

// Bricks returns a copy of the brick set in its fixed order.
func (s *State) Bricks() []Brick {
	out := make([]Brick, len(s.bricks))
	copy(out, s.bricks)
	return out
}

// Boundaries returns the wall rectangles. They are only used by the rects wall model.
func (s *State) Boundaries() []physics.Rect {
	out := make([]physics.Rect, len(s.boundaries))
	copy(out, s.boundaries)
	return out
}

// Arena returns the arena width and height.
func (s *State) Arena() (w, h float64) {
	return s.arenaW, s.arenaH
}

// PaddleBand returns the vertical travel band of the paddle.
func (s *State) PaddleBand() (minY, maxY float64) {
	return s.minY, s.maxY
}

// Ticks returns the number of ticks simulated so far.
func (s *State) Ticks() uint64 {
	return s.ticks
}

// LastContacts returns what the most recent tick hit.
func (s *State) LastContacts() Contacts {
	return s.last
}

// Remaining returns the number of unbroken bricks.
func (s *State) Remaining() int {
	n := 0
	for _, b := range s.bricks {
		if !b.Broken {
			n++
		}
	}
	return n
}

// Escaped reports whether the ball lies entirely outside the arena. Under the
// rects wall model it can only leave through the open bottom and never returns.
func (s *State) Escaped() bool {
	p, d := s.ball.Pos, 2*s.ball.Radius
	return p.X() > s.arenaW || p.Y() > s.arenaH || p.X()+d < 0 || p.Y()+d < 0
}
