package sim

import "math"

// Snapshot is a flat copy of the mutable simulation state, used for
// determinism checks and for headless run reports.
type Snapshot struct {
	Tick uint64

	BallX, BallY   float64
	BallVX, BallVY float64

	PaddleX, PaddleY   float64
	PaddleVX, PaddleVY float64

	// One entry per brick in collection order
	Broken []bool
}

// Snapshot returns the current state as a Snapshot.
func (s *State) Snapshot() Snapshot {
	broken := make([]bool, len(s.bricks))
	for i, b := range s.bricks {
		broken[i] = b.Broken
	}

	return Snapshot{
		Tick:     s.ticks,
		BallX:    s.ball.Pos.X(),
		BallY:    s.ball.Pos.Y(),
		BallVX:   s.ball.Vel.X(),
		BallVY:   s.ball.Vel.Y(),
		PaddleX:  s.paddle.Pos.X(),
		PaddleY:  s.paddle.Pos.Y(),
		PaddleVX: s.paddle.Vel.X(),
		PaddleVY: s.paddle.Vel.Y(),
		Broken:   broken,
	}
}

// BrokenCount returns how many bricks the snapshot records as broken.
func (snap *Snapshot) BrokenCount() int {
	n := 0
	for _, b := range snap.Broken {
		if b {
			n++
		}
	}
	return n
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, f := range []float64{
		snap.BallX, snap.BallY, snap.BallVX, snap.BallVY,
		snap.PaddleX, snap.PaddleY, snap.PaddleVX, snap.PaddleVY,
	} {
		h = h*31 + math.Float64bits(f)
	}
	for _, b := range snap.Broken {
		var v uint64
		if b {
			v = 1
		}
		h = h*31 + v
	}
	return h
}
