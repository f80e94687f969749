package config

import "fmt"

// Variant names one of the historical rule sets of the game.
type Variant string

const (
	VariantClassic  Variant = "classic"  // Screen-edge bounce, plain paddle reflection
	VariantWalls    Variant = "walls"    // Boundary rectangles instead of edge compare
	VariantMomentum Variant = "momentum" // Paddle motion carried into the ball
	VariantBricks   Variant = "bricks"   // Everything, plus the brick grid
)

// Variants lists every variant in presentation order.
func Variants() []Variant {
	return []Variant{VariantClassic, VariantWalls, VariantMomentum, VariantBricks}
}

// Title returns a display name for the variant.
func (v Variant) Title() string {
	switch v {
	case VariantClassic:
		return "Classic Bounce"
	case VariantWalls:
		return "Walled Arena"
	case VariantMomentum:
		return "Momentum Paddle"
	case VariantBricks:
		return "Brick Breaker"
	default:
		return string(v)
	}
}

// Description returns a one-line summary of what the variant changes.
func (v Variant) Description() string {
	switch v {
	case VariantClassic:
		return "ball bounces off all four screen edges"
	case VariantWalls:
		return "walls on three sides, open bottom"
	case VariantMomentum:
		return "paddle swipes push the ball"
	case VariantBricks:
		return "break the brick grid"
	default:
		return ""
	}
}

// ParseVariant resolves a variant name. The empty string selects VariantBricks.
func ParseVariant(name string) (Variant, error) {
	if name == "" {
		return VariantBricks, nil
	}
	for _, v := range Variants() {
		if string(v) == name {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown variant %q", name)
}

// ApplyVariant switches the physics and brick settings to those of a variant.
// Geometry is left as configured.
func ApplyVariant(cfg *Config, v Variant) {
	switch v {
	case VariantClassic:
		cfg.Physics.Walls = WallsBounds
		cfg.Physics.Momentum = false
		cfg.Bricks.Enabled = false
	case VariantWalls:
		cfg.Physics.Walls = WallsRects
		cfg.Physics.Momentum = false
		cfg.Bricks.Enabled = false
	case VariantMomentum:
		cfg.Physics.Walls = WallsRects
		cfg.Physics.Momentum = true
		cfg.Bricks.Enabled = false
	case VariantBricks:
		cfg.Physics.Walls = WallsRects
		cfg.Physics.Momentum = true
		cfg.Bricks.Enabled = true
	}
}
