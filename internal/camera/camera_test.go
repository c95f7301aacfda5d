package camera

import (
	"math"
	"testing"

	"chosenoffset.com/deepdelve/internal/core/geom"
	"chosenoffset.com/deepdelve/internal/entity"
)

// openField is passable everywhere except listed walls, with optional enemies.
type openField struct {
	walls   map[geom.Coord]bool
	enemies map[geom.Coord]*entity.Enemy
}

func (f openField) Passable(c geom.Coord) bool { return !f.walls[c] && f.enemies[c] == nil }

func (f openField) EnemyAt(c geom.Coord) *entity.Enemy { return f.enemies[c] }

const step = 1.0 / 60

func settle(t *testing.T, c *Camera) int {
	t.Helper()
	for i := 1; i <= 1000; i++ {
		c.Update(step)
		if !c.IsAnimating() {
			return i
		}
	}
	t.Fatal("camera never converged")
	return 0
}

func TestNewCameraIsAtRest(t *testing.T) {
	c := New(DefaultConfig(), geom.Coord{X: 2, Y: 3}, geom.East)
	if c.IsAnimating() {
		t.Error("a freshly placed camera should not be animating")
	}
	if c.X != 2.5 || c.Y != 3.5 {
		t.Errorf("expected continuous position (2.5,3.5), got (%v,%v)", c.X, c.Y)
	}
	if c.DirX != 1 || c.DirY != 0 {
		t.Errorf("expected direction (1,0), got (%v,%v)", c.DirX, c.DirY)
	}
}

func TestMoveConvergesAndFlagClearsAtConvergence(t *testing.T) {
	c := New(DefaultConfig(), geom.Coord{X: 1, Y: 1}, geom.East)
	res := c.MoveForward(openField{})
	if res.Outcome != Moved {
		t.Fatalf("expected Moved, got %v", res.Outcome)
	}
	if c.Pos != (geom.Coord{X: 2, Y: 1}) {
		t.Errorf("discrete position should change immediately, got %v", c.Pos)
	}

	for i := 0; i < 1000; i++ {
		before := c.distance()
		c.Update(step)
		if c.IsAnimating() {
			if c.distance() <= c.config.Epsilon {
				t.Fatal("still animating within epsilon")
			}
			if c.distance() >= before {
				t.Fatal("distance to target must shrink every frame")
			}
			continue
		}
		if c.X != 2.5 || c.Y != 1.5 {
			t.Errorf("expected snap to (2.5,1.5), got (%v,%v)", c.X, c.Y)
		}
		return
	}
	t.Fatal("camera never converged")
}

func TestTurnConverges(t *testing.T) {
	c := New(DefaultConfig(), geom.Coord{X: 1, Y: 1}, geom.North)
	if !c.TurnRight() {
		t.Fatal("turn should be accepted at rest")
	}
	if c.Facing != geom.East {
		t.Errorf("expected East, got %v", c.Facing)
	}
	settle(t, c)
	px, py := geom.East.Plane(c.config.FOV)
	if c.DirX != 1 || c.DirY != 0 || c.PlaneX != px || c.PlaneY != py {
		t.Errorf("unexpected final view dir=(%v,%v) plane=(%v,%v)", c.DirX, c.DirY, c.PlaneX, c.PlaneY)
	}
}

func TestCommandsAreNotQueued(t *testing.T) {
	c := New(DefaultConfig(), geom.Coord{X: 1, Y: 1}, geom.East)
	f := openField{}
	c.MoveForward(f)
	if res := c.MoveForward(f); res.Outcome != NotReady {
		t.Errorf("second move during animation should be NotReady, got %v", res.Outcome)
	}
	if c.TurnLeft() {
		t.Error("turn during animation must be rejected")
	}
	if c.Pos != (geom.Coord{X: 2, Y: 1}) {
		t.Errorf("only the first move should apply, got %v", c.Pos)
	}

	settle(t, c)
	// Repeat delay may still be running once the view lands.
	for !c.Ready() {
		c.Update(step)
	}
	if res := c.MoveForward(f); res.Outcome != Moved {
		t.Errorf("move after settling should succeed, got %v", res.Outcome)
	}
}

func TestBumpIntoEnemyKeepsPosition(t *testing.T) {
	target := geom.Coord{X: 2, Y: 1}
	e := entity.NewEnemy(entity.EnemyRat, 1)
	f := openField{enemies: map[geom.Coord]*entity.Enemy{target: e}}
	c := New(DefaultConfig(), geom.Coord{X: 1, Y: 1}, geom.East)

	res := c.MoveForward(f)
	if res.Outcome != Bumped || res.Enemy != e || res.Target != target {
		t.Fatalf("expected bump into %v, got %+v", target, res)
	}
	if c.Pos != (geom.Coord{X: 1, Y: 1}) || c.IsAnimating() {
		t.Error("a bump must not move the player")
	}
}

func TestBlockedByWall(t *testing.T) {
	f := openField{walls: map[geom.Coord]bool{{X: 1, Y: 0}: true}}
	c := New(DefaultConfig(), geom.Coord{X: 1, Y: 1}, geom.North)
	if res := c.MoveForward(f); res.Outcome != Blocked {
		t.Errorf("expected Blocked, got %v", res.Outcome)
	}
	if res := c.MoveBack(f); res.Outcome != Moved || c.Pos != (geom.Coord{X: 1, Y: 2}) {
		t.Errorf("moving back should succeed, got %+v at %v", res, c.Pos)
	}
}

func TestStrafeKeepsFacing(t *testing.T) {
	c := New(DefaultConfig(), geom.Coord{X: 3, Y: 3}, geom.North)
	c.StrafeRight(openField{})
	if c.Pos != (geom.Coord{X: 4, Y: 3}) || c.Facing != geom.North {
		t.Errorf("strafe right from North should land on (4,3) facing North, got %v %v", c.Pos, c.Facing)
	}
}

func TestHeadBobDecaysWhenIdle(t *testing.T) {
	c := New(DefaultConfig(), geom.Coord{X: 1, Y: 1}, geom.East)
	c.MoveForward(openField{})
	c.Update(step)
	if c.BobPhase <= 0 {
		t.Fatal("bob phase should grow while walking")
	}
	settle(t, c)
	for i := 0; i < 240; i++ {
		c.Update(step)
	}
	if math.Abs(c.BobOffset()) > 1e-6 {
		t.Errorf("bob offset should decay to zero, got %v", c.BobOffset())
	}
}

func TestPitchKickRecovers(t *testing.T) {
	c := New(DefaultConfig(), geom.Coord{X: 1, Y: 1}, geom.East)
	c.Kick(0.05)
	for i := 0; i < 300; i++ {
		c.Update(step)
	}
	if c.Pitch != 0 {
		t.Errorf("pitch should return to zero, got %v", c.Pitch)
	}
}
