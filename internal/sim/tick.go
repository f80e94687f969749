package sim

import (
	"github.com/vovakirdan/paddleball/internal/config"
	"github.com/vovakirdan/paddleball/internal/physics"
)

// Tick advances the simulation by one step.
//
// Order is fixed: paddle, walls, bricks, then integration. Every check predicts
// from the velocity as left by the previous check, so a wall can override a
// paddle bounce in the same tick. The final velocity is then applied to the
// current position, not to any predicted one.
func (s *State) Tick() {
	s.last = Contacts{}

	s.collidePaddle()

	switch s.walls {
	case config.WallsBounds:
		s.collideBounds()
	default:
		s.collideBoundaries()
	}

	s.collideBricks()

	s.ball.Pos = s.ball.Pos.Add(s.ball.Vel)
	s.ticks++
}

// collidePaddle reflects the ball off the paddle.
func (s *State) collidePaddle() {
	hit := physics.Detect(s.paddle.Rect(), s.ball.Next(), s.ball.Radius)
	s.last.Paddle = hit
	if hit == physics.None {
		return
	}
	s.bounceOffPaddle(hit)
}

// bounceOffPaddle applies a paddle contact. With momentum on, the paddle's
// last displacement is carried into the ball and the result capped per axis.
func (s *State) bounceOffPaddle(hit physics.Outcome) {
	v := hit.Reflect(s.ball.Vel)
	if s.momentum {
		v = physics.ClampVec(v.Sub(s.paddle.Vel), s.speedLimit)
	}
	s.ball.Vel = v
}

// collideBoundaries checks each wall rectangle in order. Hits accumulate.
func (s *State) collideBoundaries() {
	s.last.Walls = make([]physics.Outcome, len(s.boundaries))
	for i, wall := range s.boundaries {
		hit := physics.Detect(wall, s.ball.Next(), s.ball.Radius)
		s.last.Walls[i] = hit
		s.ball.Vel = hit.Reflect(s.ball.Vel)
	}
}

// collideBounds is the plain screen-edge model: the predicted bounding box is
// compared to the arena on all four sides.
func (s *State) collideBounds() {
	next := s.ball.Next()
	d := 2 * s.ball.Radius

	if next.X() < 0 || next.X()+d > s.arenaW {
		s.ball.Vel[0] = -s.ball.Vel[0]
	}
	if next.Y() < 0 || next.Y()+d > s.arenaH {
		s.ball.Vel[1] = -s.ball.Vel[1]
	}
}

// collideBricks breaks every unbroken brick the predicted ball overlaps.
func (s *State) collideBricks() {
	for i := range s.bricks {
		b := &s.bricks[i]
		if b.Broken {
			continue
		}
		hit := physics.Detect(b.Rect, s.ball.Next(), s.ball.Radius)
		if hit == physics.None {
			continue
		}
		s.ball.Vel = hit.Reflect(s.ball.Vel)
		b.Broken = true
		s.last.Bricks = append(s.last.Bricks, i)
	}
}
