package sim

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/paddleball/internal/physics"
)

// MovePointer moves the paddle to follow a pointer at arena position (x, y).
// The paddle is centered horizontally on the pointer with its top edge at y,
// and y is clamped to the travel band.
//
// With momentum on, the area the paddle sweeps on its way is tested against the
// ball. On contact the ball is bounced as for a paddle hit in Tick and the
// paddle stops flush against the ball instead of passing through it.
func (s *State) MovePointer(x, y float64) {
	half := s.paddle.Width / 2
	old := s.paddle.Pos

	s.paddle.Vel = mgl64.Vec2{old.X() - x + half, old.Y() - y}
	s.paddle.Pos = mgl64.Vec2{x - half, mgl64.Clamp(y, s.minY, s.maxY)}

	if !s.momentum {
		return
	}

	swept := s.sweep(old, s.paddle.Pos)
	hit := physics.Detect(swept, s.ball.Pos, s.ball.Radius)
	if hit == physics.None {
		return
	}

	s.bounceOffPaddle(hit)
	s.settleAgainstBall(hit, old)
}

// sweep returns the rectangle covering the paddle at both from and to.
func (s *State) sweep(from, to mgl64.Vec2) physics.Rect {
	minX := math.Min(from.X(), to.X())
	maxX := math.Max(from.X(), to.X()) + s.paddle.Width
	minY := mgl64.Clamp(math.Min(from.Y(), to.Y()), s.minY, s.maxY)
	maxY := mgl64.Clamp(math.Max(from.Y(), to.Y()), s.minY, s.maxY) + s.paddle.Height
	return physics.NewRect(minX, minY, maxX-minX, maxY-minY)
}

// settleAgainstBall stops the paddle touching the ball on each axis where it
// was moving toward the ball. The settled position stays between the start and
// the pointer target, so the paddle never moves backwards or past the ball.
func (s *State) settleAgainstBall(hit physics.Outcome, from mgl64.Vec2) {
	c := s.ball.Center()
	r := s.ball.Radius
	to := s.paddle.Pos

	if hit.FlipsX() {
		midX := from.X() + s.paddle.Width/2
		switch {
		case to.X() > from.X() && c.X() > midX:
			s.paddle.Pos[0] = mgl64.Clamp(c.X()-r-s.paddle.Width, from.X(), to.X())
		case to.X() < from.X() && c.X() < midX:
			s.paddle.Pos[0] = mgl64.Clamp(c.X()+r, to.X(), from.X())
		}
	}

	if hit.FlipsY() {
		midY := from.Y() + s.paddle.Height/2
		switch {
		case to.Y() > from.Y() && c.Y() > midY:
			s.paddle.Pos[1] = mgl64.Clamp(c.Y()-r-s.paddle.Height, from.Y(), to.Y())
		case to.Y() < from.Y() && c.Y() < midY:
			s.paddle.Pos[1] = mgl64.Clamp(c.Y()+r, to.Y(), from.Y())
		}
	}
}
