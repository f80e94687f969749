package sim

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/paddleball/internal/config"
	"github.com/vovakirdan/paddleball/internal/physics"
)

func TestTickWithoutContactMovesByVelocity(t *testing.T) {
	cfg := openArena(config.WallsRects, true)
	cfg.Ball.Position = config.Point{X: 300, Y: 300}
	cfg.Ball.Velocity = config.Point{X: 2.5, Y: -1.5}
	s := mustNew(t, cfg)

	s.Tick()

	if s.Ball().Vel != (mgl64.Vec2{2.5, -1.5}) {
		t.Errorf("velocity changed to %v", s.Ball().Vel)
	}
	if s.Ball().Pos != (mgl64.Vec2{302.5, 298.5}) {
		t.Errorf("position = %v, expected (302.5, 298.5)", s.Ball().Pos)
	}
	if s.LastContacts().Any() {
		t.Errorf("no contact expected, got %+v", s.LastContacts())
	}
	if s.Ticks() != 1 {
		t.Errorf("Ticks() = %d, expected 1", s.Ticks())
	}
}

func TestTickCeilingAboveBall(t *testing.T) {
	// A ceiling whose lower edge reaches y=102 catches the ball at (100,100)
	// as soon as its prediction moves to (101,101).
	cfg := openArena(config.WallsRects, false)
	cfg.Boundaries = []config.RectConfig{{X: 0, Y: 2, Width: 1024, Height: 100}}
	cfg.Ball.Position = config.Point{X: 100, Y: 100}
	cfg.Ball.Velocity = config.Point{X: 1, Y: 1}
	s := mustNew(t, cfg)

	s.Tick()

	if got := s.LastContacts().Walls[0]; got != physics.HorizontalFace {
		t.Fatalf("wall contact = %v, expected horizontal", got)
	}
	if s.Ball().Vel != (mgl64.Vec2{1, -1}) {
		t.Errorf("velocity = %v, expected (1,-1)", s.Ball().Vel)
	}
	if s.Ball().Pos != (mgl64.Vec2{101, 99}) {
		t.Errorf("position = %v, expected (101,99)", s.Ball().Pos)
	}
}

func TestTickTopBoundaryFlipsVerticalOnly(t *testing.T) {
	cfg := openArena(config.WallsRects, false)
	cfg.Ball.Position = config.Point{X: 100, Y: 0}
	cfg.Ball.Velocity = config.Point{X: 1, Y: -1}
	s := mustNew(t, cfg)

	s.Tick()

	contacts := s.LastContacts()
	if contacts.Walls[0] != physics.HorizontalFace {
		t.Fatalf("top wall contact = %v, expected horizontal", contacts.Walls[0])
	}
	if s.Ball().Vel != (mgl64.Vec2{1, 1}) {
		t.Errorf("velocity = %v, expected (1,1)", s.Ball().Vel)
	}
	if s.Ball().Pos != (mgl64.Vec2{101, 1}) {
		t.Errorf("position = %v, expected (101,1)", s.Ball().Pos)
	}
}

func TestTickSideBoundaries(t *testing.T) {
	cfg := openArena(config.WallsRects, false)
	cfg.Ball.Position = config.Point{X: 973, Y: 400}
	cfg.Ball.Velocity = config.Point{X: 2, Y: 1}
	s := mustNew(t, cfg)

	s.Tick()

	if s.LastContacts().Walls[2] != physics.VerticalFace {
		t.Fatalf("right wall contact = %v, expected vertical", s.LastContacts().Walls[2])
	}
	if s.Ball().Vel != (mgl64.Vec2{-2, 1}) {
		t.Errorf("velocity = %v, expected (-2,1)", s.Ball().Vel)
	}
}

func TestWallHitsAccumulate(t *testing.T) {
	cfg := openArena(config.WallsRects, false)
	top := config.RectConfig{X: 0, Y: -100, Width: 1024, Height: 100}
	cfg.Boundaries = []config.RectConfig{top, top}
	cfg.Ball.Position = config.Point{X: 100, Y: -0.5}
	cfg.Ball.Velocity = config.Point{X: 0, Y: -0.25}
	s := mustNew(t, cfg)

	s.Tick()

	// The second wall sees the velocity flipped by the first and flips it back.
	walls := s.LastContacts().Walls
	if walls[0] != physics.HorizontalFace || walls[1] != physics.HorizontalFace {
		t.Fatalf("both walls should report a hit, got %v", walls)
	}
	if s.Ball().Vel != (mgl64.Vec2{0, -0.25}) {
		t.Errorf("velocity = %v, expected two flips to cancel", s.Ball().Vel)
	}
}

func TestWallOverridesPaddleInSameTick(t *testing.T) {
	cfg := openArena(config.WallsRects, false)
	cfg.Boundaries = []config.RectConfig{{X: 0, Y: -100, Width: 1024, Height: 130}}
	cfg.Paddle.Position = config.Point{X: 100, Y: 30}
	cfg.Ball.Position = config.Point{X: 100, Y: 0}
	cfg.Ball.Velocity = config.Point{X: 0, Y: -1}
	s := mustNew(t, cfg)

	s.Tick()

	contacts := s.LastContacts()
	if contacts.Paddle == physics.None || contacts.Walls[0] == physics.None {
		t.Fatalf("expected paddle and wall hits, got %+v", contacts)
	}
	if s.Ball().Vel.Y() != -1 {
		t.Errorf("wall should re-flip the paddle bounce, vy = %v", s.Ball().Vel.Y())
	}
	if s.Ball().Pos != (mgl64.Vec2{100, -1}) {
		t.Errorf("position = %v, expected (100,-1)", s.Ball().Pos)
	}
}

func TestTickPaddleBounce(t *testing.T) {
	cfg := openArena(config.WallsRects, false)
	cfg.Paddle.Position = config.Point{X: 100, Y: 500}
	// Ball resting above the paddle's middle, moving down.
	cfg.Ball.Position = config.Point{X: 125, Y: 450}
	cfg.Ball.Velocity = config.Point{X: 1, Y: 1}
	s := mustNew(t, cfg)

	s.Tick()

	if s.LastContacts().Paddle != physics.HorizontalFace {
		t.Fatalf("paddle contact = %v, expected horizontal", s.LastContacts().Paddle)
	}
	if s.Ball().Vel != (mgl64.Vec2{1, -1}) {
		t.Errorf("velocity = %v, expected (1,-1)", s.Ball().Vel)
	}
	if s.Ball().Pos != (mgl64.Vec2{126, 449}) {
		t.Errorf("position = %v, expected (126,449)", s.Ball().Pos)
	}
}

func TestTickPaddleMomentum(t *testing.T) {
	tests := []struct {
		name      string
		paddleVel mgl64.Vec2
		expected  mgl64.Vec2
	}{
		{"still paddle", mgl64.Vec2{0, 0}, mgl64.Vec2{1, -1}},
		{"paddle moving right", mgl64.Vec2{-3, 0}, mgl64.Vec2{4, -1}},
		{"fast swipe is capped", mgl64.Vec2{-40, 12}, mgl64.Vec2{5, -5}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := openArena(config.WallsRects, true)
			cfg.Paddle.Position = config.Point{X: 100, Y: 500}
			cfg.Ball.Position = config.Point{X: 125, Y: 450}
			cfg.Ball.Velocity = config.Point{X: 1, Y: 1}
			s := mustNew(t, cfg)
			s.paddle.Vel = tc.paddleVel

			s.Tick()

			if s.Ball().Vel != tc.expected {
				t.Errorf("velocity = %v, expected %v", s.Ball().Vel, tc.expected)
			}
		})
	}
}

func TestTickBoundsModel(t *testing.T) {
	tests := []struct {
		name     string
		pos, vel config.Point
		expected mgl64.Vec2
	}{
		{"right edge", config.Point{X: 973, Y: 400}, config.Point{X: 2, Y: 1}, mgl64.Vec2{-2, 1}},
		{"left edge", config.Point{X: 0, Y: 400}, config.Point{X: -1, Y: 1}, mgl64.Vec2{1, 1}},
		{"top edge", config.Point{X: 400, Y: 0}, config.Point{X: 1, Y: -1}, mgl64.Vec2{1, 1}},
		{"bottom edge is closed", config.Point{X: 400, Y: 974}, config.Point{X: 1, Y: 1}, mgl64.Vec2{1, -1}},
		{"corner", config.Point{X: 974, Y: 974}, config.Point{X: 1, Y: 1}, mgl64.Vec2{-1, -1}},
		{"inside", config.Point{X: 400, Y: 400}, config.Point{X: 1, Y: 1}, mgl64.Vec2{1, 1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := openArena(config.WallsBounds, false)
			cfg.Ball.Position = tc.pos
			cfg.Ball.Velocity = tc.vel
			s := mustNew(t, cfg)

			s.Tick()

			if s.Ball().Vel != tc.expected {
				t.Errorf("velocity = %v, expected %v", s.Ball().Vel, tc.expected)
			}
			if len(s.LastContacts().Walls) != 0 {
				t.Error("bounds model should not report boundary rectangles")
			}
		})
	}
}

func TestRectWallsLeaveBottomOpen(t *testing.T) {
	cfg := openArena(config.WallsRects, false)
	cfg.Ball.Position = config.Point{X: 400, Y: 1000}
	cfg.Ball.Velocity = config.Point{X: 0, Y: 3}
	s := mustNew(t, cfg)

	for range 20 {
		s.Tick()
	}

	if s.Ball().Pos.Y() != 1060 {
		t.Errorf("ball should keep falling, y = %v", s.Ball().Pos.Y())
	}
}

func TestTickBreaksCenteredBrick(t *testing.T) {
	cfg := config.Default()
	cfg.Paddle.Position = config.Point{X: 700, Y: 900}
	s := mustNew(t, cfg)

	target := s.Bricks()[0].Center()
	// Place the ball so its predicted center lands on the brick's center.
	s.ball.Pos = target.Sub(mgl64.Vec2{25 + 1, 25 + 1})
	s.ball.Vel = mgl64.Vec2{1, 1}
	start := s.ball.Pos

	s.Tick()

	bricks := s.Bricks()
	if !bricks[0].Broken {
		t.Fatal("centered brick should break")
	}
	if s.Remaining() != 15 {
		t.Errorf("Remaining() = %d, expected 15", s.Remaining())
	}
	if s.Ball().Vel != (mgl64.Vec2{-1, -1}) {
		t.Errorf("velocity = %v, expected both components flipped", s.Ball().Vel)
	}
	if s.Ball().Pos != start.Sub(mgl64.Vec2{1, 1}) {
		t.Errorf("position = %v, expected %v", s.Ball().Pos, start.Sub(mgl64.Vec2{1, 1}))
	}
	if got := s.LastContacts().Bricks; len(got) != 1 || got[0] != 0 {
		t.Errorf("broken this tick = %v, expected [0]", got)
	}
}

func TestTickBreaksTwoBricksInOrder(t *testing.T) {
	cfg := openArena(config.WallsRects, false)
	cfg.Bricks = config.BrickGrid{
		Enabled: true,
		Origin:  config.Point{X: 200, Y: 200},
		Columns: 2,
		Rows:    1,
		Width:   80,
		Height:  30,
	}
	// Bricks touch at x=280; the ball's predicted center sits on the seam.
	cfg.Ball.Position = config.Point{X: 254, Y: 189}
	cfg.Ball.Velocity = config.Point{X: 1, Y: 1}
	s := mustNew(t, cfg)

	s.Tick()

	if got := s.LastContacts().Bricks; len(got) != 2 || got[0] != 0 || got[1] != 1 {
		t.Fatalf("broken this tick = %v, expected [0 1]", got)
	}
	// Two BothFaces flips cancel out.
	if s.Ball().Vel != (mgl64.Vec2{1, 1}) {
		t.Errorf("velocity = %v, expected flips to compound back to (1,1)", s.Ball().Vel)
	}
}

func TestBrokenBrickIsIgnored(t *testing.T) {
	cfg := config.Default()
	cfg.Paddle.Position = config.Point{X: 700, Y: 900}
	s := mustNew(t, cfg)

	s.bricks[0].Broken = true
	target := s.bricks[0].Center()
	s.ball.Pos = target.Sub(mgl64.Vec2{26, 26})
	s.ball.Vel = mgl64.Vec2{1, 1}

	s.Tick()

	if s.Ball().Vel != (mgl64.Vec2{1, 1}) {
		t.Errorf("broken brick should not deflect, velocity = %v", s.Ball().Vel)
	}
}

func TestBrickFlagsNeverReset(t *testing.T) {
	s := mustNew(t, config.Default())

	prev := s.Snapshot()
	for i := range 20000 {
		if i%7 == 0 {
			x := float64((i * 37) % 1024)
			s.MovePointer(x, 600+float64(i%300))
		}
		s.Tick()

		snap := s.Snapshot()
		for j := range snap.Broken {
			if prev.Broken[j] && !snap.Broken[j] {
				t.Fatalf("tick %d: brick %d went from broken to unbroken", i, j)
			}
		}
		prev = snap
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		s := mustNew(t, config.Default())
		for i := range 5000 {
			if i%3 == 0 {
				s.MovePointer(float64(200+(i%500)), float64(500+(i%450)))
			}
			s.Tick()
		}
		return s.Snapshot()
	}

	a, b := run(), run()
	if a.Hash() != b.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", a.Hash(), b.Hash())
	}
	if a.BrokenCount() != b.BrokenCount() {
		t.Errorf("Determinism failed: broken counts differ")
	}
}
