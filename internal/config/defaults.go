package config

import (
	_ "embed"
)

//go:embed defaults/paddleball.yaml
var defaultYAML []byte

// Default returns the built-in configuration, matching the embedded YAML.
func Default() Config {
	return Config{
		Arena: ArenaConfig{Width: 1024, Height: 1024},
		Ball: BallConfig{
			Diameter: 50,
			Position: Point{X: 512, Y: 512},
			Velocity: Point{X: 1, Y: 1},
		},
		Paddle: PaddleConfig{
			Width:    100,
			Height:   20,
			Position: Point{X: 550, Y: 550},
			MinY:     0,
			MaxY:     950,
		},
		Physics: Physics{
			Walls:      WallsRects,
			Momentum:   true,
			SpeedLimit: 5,
		},
		Boundaries: []RectConfig{
			{X: 0, Y: -100, Width: 1024, Height: 100}, // top
			{X: -100, Y: 0, Width: 100, Height: 1024}, // left
			{X: 1024, Y: 0, Width: 100, Height: 1024}, // right
		},
		Bricks: BrickGrid{
			Enabled: true,
			Origin:  Point{X: 157, Y: 100},
			Columns: 8,
			Rows:    2,
			Width:   80,
			Height:  30,
			GapX:    10,
			GapY:    10,
		},
		Frontend: Frontend{
			Substeps: 2,
			Nudge:    25,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
