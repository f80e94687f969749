package sim

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/paddleball/internal/config"
)

func TestMovePointerCentersPaddle(t *testing.T) {
	cfg := openArena(config.WallsRects, true)
	cfg.Paddle.Position = config.Point{X: 500, Y: 550}
	cfg.Ball.Position = config.Point{X: 100, Y: 100}
	s := mustNew(t, cfg)
	ball := s.Ball()

	s.MovePointer(560, 550)

	if s.Paddle().Pos != (mgl64.Vec2{510, 550}) {
		t.Errorf("paddle pos = %v, expected (510,550)", s.Paddle().Pos)
	}
	if s.Paddle().Vel != (mgl64.Vec2{-10, 0}) {
		t.Errorf("paddle vel = %v, expected (-10,0)", s.Paddle().Vel)
	}
	if s.Ball() != ball {
		t.Errorf("ball changed without contact: %+v", s.Ball())
	}
}

func TestMovePointerClampsToBand(t *testing.T) {
	s := mustNew(t, openArena(config.WallsRects, false))
	minY, maxY := s.PaddleBand()

	for _, y := range []float64{-5000, -1, 0, 475, 950, 951, 1e9} {
		s.MovePointer(300, y)
		got := s.Paddle().Pos.Y()
		if got < minY || got > maxY {
			t.Errorf("pointer y %v put paddle at %v, outside [%v, %v]", y, got, minY, maxY)
		}
	}

	s.MovePointer(300, -5000)
	if s.Paddle().Pos.Y() != minY {
		t.Errorf("paddle y = %v, expected %v", s.Paddle().Pos.Y(), minY)
	}
	s.MovePointer(300, 5000)
	if s.Paddle().Pos.Y() != maxY {
		t.Errorf("paddle y = %v, expected %v", s.Paddle().Pos.Y(), maxY)
	}
}

func TestMovePointerSweepHitsBall(t *testing.T) {
	cfg := openArena(config.WallsRects, true)
	cfg.Paddle.Position = config.Point{X: 100, Y: 550}
	// The ball sits between the paddle's start and its target.
	cfg.Ball.Position = config.Point{X: 250, Y: 535}
	cfg.Ball.Velocity = config.Point{X: 1, Y: 1}
	s := mustNew(t, cfg)

	s.MovePointer(450, 550)

	// Both flip to (-1,-1), minus the paddle's (-300,0), capped at 5.
	if s.Ball().Vel != (mgl64.Vec2{5, -1}) {
		t.Errorf("ball vel = %v, expected (5,-1)", s.Ball().Vel)
	}
	if s.Ball().Pos != (mgl64.Vec2{250, 535}) {
		t.Errorf("pointer moves must not move the ball, pos = %v", s.Ball().Pos)
	}
	// The paddle stops with its right edge on the ball's left side.
	if s.Paddle().Pos != (mgl64.Vec2{150, 550}) {
		t.Errorf("paddle pos = %v, expected (150,550)", s.Paddle().Pos)
	}
	if s.Paddle().Vel != (mgl64.Vec2{-300, 0}) {
		t.Errorf("paddle vel = %v, expected (-300,0)", s.Paddle().Vel)
	}
}

func TestMovePointerWithoutMomentumPassesThrough(t *testing.T) {
	cfg := openArena(config.WallsRects, false)
	cfg.Paddle.Position = config.Point{X: 100, Y: 550}
	cfg.Ball.Position = config.Point{X: 250, Y: 535}
	cfg.Ball.Velocity = config.Point{X: 1, Y: 1}
	s := mustNew(t, cfg)

	s.MovePointer(450, 550)

	if s.Ball().Vel != (mgl64.Vec2{1, 1}) {
		t.Errorf("ball vel = %v, expected unchanged (1,1)", s.Ball().Vel)
	}
	if s.Paddle().Pos != (mgl64.Vec2{400, 550}) {
		t.Errorf("paddle pos = %v, expected (400,550)", s.Paddle().Pos)
	}
}

func TestMovePointerRetreatDoesNotSettle(t *testing.T) {
	cfg := openArena(config.WallsRects, true)
	cfg.Paddle.Position = config.Point{X: 300, Y: 550}
	// Ball overlapping the paddle's left end while the paddle moves right.
	cfg.Ball.Position = config.Point{X: 260, Y: 535}
	cfg.Ball.Velocity = config.Point{X: 1, Y: 1}
	s := mustNew(t, cfg)

	s.MovePointer(450, 550)

	if s.Paddle().Pos != (mgl64.Vec2{400, 550}) {
		t.Errorf("paddle moving away should reach its target, pos = %v", s.Paddle().Pos)
	}
}
