// Package config provides YAML-based configuration loading and variant presets
// for the paddleball arena.
package config

// Config contains everything needed to build a simulation.
type Config struct {
	Arena      ArenaConfig  `yaml:"arena"`
	Ball       BallConfig   `yaml:"ball"`
	Paddle     PaddleConfig `yaml:"paddle"`
	Physics    Physics      `yaml:"physics"`
	Boundaries []RectConfig `yaml:"boundaries"`
	Bricks     BrickGrid    `yaml:"bricks"`
	Frontend   Frontend     `yaml:"frontend"`
}

// Point is a pair of arena coordinates.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// RectConfig is an axis-aligned rectangle in arena units.
type RectConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ArenaConfig defines the playing field size.
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BallConfig defines the ball's size and starting motion.
type BallConfig struct {
	Diameter float64 `yaml:"diameter"`
	Position Point   `yaml:"position"` // Top-left of bounding box
	Velocity Point   `yaml:"velocity"` // Units per tick
}

// PaddleConfig defines the paddle's size, start and vertical travel band.
type PaddleConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Position Point   `yaml:"position"`
	MinY     float64 `yaml:"min_y"`
	MaxY     float64 `yaml:"max_y"`
}

// WallModel selects how the arena edges reflect the ball.
type WallModel string

const (
	WallsRects  WallModel = "rects"  // Boundary rectangles outside the arena
	WallsBounds WallModel = "bounds" // Direct compare against arena extents
)

// Physics holds the behavior switches that differ between variants.
type Physics struct {
	Walls      WallModel `yaml:"walls"`
	Momentum   bool      `yaml:"momentum"`    // Paddle motion is imparted to the ball
	SpeedLimit float64   `yaml:"speed_limit"` // Per-component cap after a paddle hit
}

// BrickGrid describes a fixed rectangular arrangement of bricks.
type BrickGrid struct {
	Enabled bool    `yaml:"enabled"`
	Origin  Point   `yaml:"origin"`
	Columns int     `yaml:"columns"`
	Rows    int     `yaml:"rows"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	GapX    float64 `yaml:"gap_x"`
	GapY    float64 `yaml:"gap_y"`
}

// Count returns the number of bricks the grid produces.
func (g BrickGrid) Count() int {
	if !g.Enabled || g.Columns <= 0 || g.Rows <= 0 {
		return 0
	}
	return g.Columns * g.Rows
}

// Rects lays out the grid row by row, left to right.
func (g BrickGrid) Rects() []RectConfig {
	rects := make([]RectConfig, 0, g.Count())
	if g.Count() == 0 {
		return rects
	}
	for row := range g.Rows {
		for col := range g.Columns {
			rects = append(rects, RectConfig{
				X:      g.Origin.X + float64(col)*(g.Width+g.GapX),
				Y:      g.Origin.Y + float64(row)*(g.Height+g.GapY),
				Width:  g.Width,
				Height: g.Height,
			})
		}
	}
	return rects
}

// Frontend holds settings used by the terminal shell, not the simulation.
type Frontend struct {
	Substeps int     `yaml:"substeps"` // Simulation ticks per rendered frame
	Nudge    float64 `yaml:"nudge"`    // Arena units a movement key shifts the pointer
}
