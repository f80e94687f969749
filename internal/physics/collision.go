// Package physics implements the ball-versus-rectangle collision test used by
// the simulation. Everything here is pure: no state, no allocation, no I/O.
package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// FaceSlack is subtracted from the radius when deciding which face of a
// rectangle was struck. It keeps a glancing contact at a face boundary from
// being reported as a double hit. Tuned value, do not change.
const FaceSlack = 1.0

// Rect is an axis-aligned rectangle in arena units.
type Rect struct {
	X, Y float64 // Top-left corner
	W, H float64 // Width and height
}

// NewRect creates a rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Center returns the center point of the rectangle.
func (r Rect) Center() mgl64.Vec2 {
	return mgl64.Vec2{r.X + r.W/2, r.Y + r.H/2}
}

// ClosestPoint returns the point of r nearest to p.
func (r Rect) ClosestPoint(p mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{
		mgl64.Clamp(p.X(), r.X, r.Right()),
		mgl64.Clamp(p.Y(), r.Y, r.Bottom()),
	}
}

// Outcome reports which faces of an obstacle a ball struck.
type Outcome int

const (
	None           Outcome = iota
	HorizontalFace         // Top or bottom face; vertical velocity flips
	VerticalFace           // Left or right face; horizontal velocity flips
	BothFaces              // Corner or deep overlap; both components flip
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case None:
		return "none"
	case HorizontalFace:
		return "horizontal"
	case VerticalFace:
		return "vertical"
	case BothFaces:
		return "both"
	default:
		return "unknown"
	}
}

// FlipsX reports whether the outcome reverses horizontal velocity.
func (o Outcome) FlipsX() bool {
	return o == VerticalFace || o == BothFaces
}

// FlipsY reports whether the outcome reverses vertical velocity.
func (o Outcome) FlipsY() bool {
	return o == HorizontalFace || o == BothFaces
}

// Reflect returns v with the components named by the outcome negated.
func (o Outcome) Reflect(v mgl64.Vec2) mgl64.Vec2 {
	if o.FlipsX() {
		v[0] = -v[0]
	}
	if o.FlipsY() {
		v[1] = -v[1]
	}
	return v
}

// Detect tests a ball whose bounding box top-left will be at next against an
// obstacle and classifies the contact.
//
// The ball's center is clamped into the obstacle to find the closest point; a
// squared distance below radius² is a hit. A center within radius-FaceSlack of
// the obstacle horizontally means it sits above or below it (HorizontalFace),
// and likewise vertically for VerticalFace. When neither holds the contact is
// reported as BothFaces.
func Detect(obstacle Rect, next mgl64.Vec2, radius float64) Outcome {
	center := next.Add(mgl64.Vec2{radius, radius})
	dist := center.Sub(obstacle.ClosestPoint(center))

	if dist.Dot(dist) >= radius*radius {
		return None
	}

	horizontal := math.Abs(dist.X()) < radius-FaceSlack
	vertical := math.Abs(dist.Y()) < radius-FaceSlack

	switch {
	case horizontal && vertical:
		return BothFaces
	case horizontal:
		return HorizontalFace
	case vertical:
		return VerticalFace
	default:
		return BothFaces
	}
}

// ClampVec restricts each component of v to [-limit, limit].
func ClampVec(v mgl64.Vec2, limit float64) mgl64.Vec2 {
	return mgl64.Vec2{
		mgl64.Clamp(v.X(), -limit, limit),
		mgl64.Clamp(v.Y(), -limit, limit),
	}
}
