// Package camera keeps the player's grid-exact position and facing together
// with the interpolated continuous view the renderer draws from.
//
// Gameplay reads Pos and Facing only. The continuous fields chase targets set
// by each discrete change and must never feed collision or adjacency checks.
package camera

import (
	"math"

	"chosenoffset.com/deepdelve/internal/core/geom"
	"chosenoffset.com/deepdelve/internal/core/timer"
	"chosenoffset.com/deepdelve/internal/entity"
)

// Config tunes the animation.
type Config struct {
	MoveSpeed   float64 `json:"move_speed"`   // translation approach rate (1/s)
	TurnSpeed   float64 `json:"turn_speed"`   // rotation approach rate (1/s)
	RepeatDelay float64 `json:"repeat_delay"` // seconds between accepted discrete commands
	Epsilon     float64 `json:"epsilon"`      // L1 distance treated as arrived
	FOV         float64 `json:"fov"`          // camera plane length

	BobSpeed     float64 `json:"bob_speed"`     // phase gained per second while walking
	BobAmplitude float64 `json:"bob_amplitude"` // fraction of screen height
	BobDecay     float64 `json:"bob_decay"`     // idle damping rate (1/s)
	PitchDecay   float64 `json:"pitch_decay"`   // kick recovery rate (1/s)
}

// DefaultConfig returns the standard feel.
func DefaultConfig() Config {
	return Config{
		MoveSpeed:    10,
		TurnSpeed:    12,
		RepeatDelay:  0.15,
		Epsilon:      0.01,
		FOV:          0.66,
		BobSpeed:     14,
		BobAmplitude: 0.012,
		BobDecay:     8,
		PitchDecay:   6,
	}
}

// Terrain answers the collision questions a move needs.
type Terrain interface {
	Passable(c geom.Coord) bool
	EnemyAt(c geom.Coord) *entity.Enemy
}

// MoveOutcome is how a move request resolved.
type MoveOutcome int

const (
	// NotReady means an animation or the repeat delay is still running.
	NotReady MoveOutcome = iota
	Moved
	Blocked
	// Bumped means the target tile holds an enemy. The player stays put.
	Bumped
)

// MoveResult reports a move request.
type MoveResult struct {
	Outcome MoveOutcome
	Target  geom.Coord
	Enemy   *entity.Enemy
}

// Camera is the player's view state.
type Camera struct {
	Pos    geom.Coord
	Facing geom.Direction

	X, Y           float64
	DirX, DirY     float64
	PlaneX, PlaneY float64
	Pitch          float64
	BobPhase       float64

	tx, ty   float64
	tdx, tdy float64
	tpx, tpy float64
	walking  bool
	repeat   timer.Countdown
	config   Config
}

// New creates a camera at rest on pos.
func New(config Config, pos geom.Coord, facing geom.Direction) *Camera {
	c := &Camera{config: config, repeat: timer.New(config.RepeatDelay)}
	c.Place(pos, facing)
	return c
}

// Config returns the tuning in use.
func (c *Camera) Config() Config {
	return c.config
}

// Place teleports the camera, snapping the continuous view.
func (c *Camera) Place(pos geom.Coord, facing geom.Direction) {
	c.Pos = pos
	c.Facing = facing
	c.retarget()
	c.snap()
	c.Pitch = 0
	c.BobPhase = 0
	c.repeat.Stop()
}

// Ahead returns the tile directly in front of the player.
func (c *Camera) Ahead() geom.Coord {
	return c.Pos.Step(c.Facing)
}

// Ready reports whether a new discrete command would be accepted.
func (c *Camera) Ready() bool {
	return !c.IsAnimating() && c.repeat.Expired()
}

// IsAnimating reports whether the continuous view is still travelling.
func (c *Camera) IsAnimating() bool {
	return c.distance() > c.config.Epsilon
}

// TurnLeft rotates the facing counter-clockwise.
func (c *Camera) TurnLeft() bool {
	return c.turn(c.Facing.Left())
}

// TurnRight rotates the facing clockwise.
func (c *Camera) TurnRight() bool {
	return c.turn(c.Facing.Right())
}

func (c *Camera) turn(d geom.Direction) bool {
	if !c.Ready() {
		return false
	}
	c.Facing = d
	c.retarget()
	c.repeat.Reset()
	return true
}

// Move steps one tile in direction d.
func (c *Camera) Move(d geom.Direction, t Terrain) MoveResult {
	target := c.Pos.Step(d)
	if !c.Ready() {
		return MoveResult{Outcome: NotReady, Target: target}
	}
	if e := t.EnemyAt(target); e != nil {
		c.repeat.Reset()
		return MoveResult{Outcome: Bumped, Target: target, Enemy: e}
	}
	if !t.Passable(target) {
		return MoveResult{Outcome: Blocked, Target: target}
	}
	c.Pos = target
	c.retarget()
	c.repeat.Reset()
	return MoveResult{Outcome: Moved, Target: target}
}

// MoveForward, MoveBack, StrafeLeft and StrafeRight move relative to Facing.
func (c *Camera) MoveForward(t Terrain) MoveResult { return c.Move(c.Facing, t) }

func (c *Camera) MoveBack(t Terrain) MoveResult { return c.Move(c.Facing.Opposite(), t) }

func (c *Camera) StrafeLeft(t Terrain) MoveResult { return c.Move(c.Facing.Left(), t) }

func (c *Camera) StrafeRight(t Terrain) MoveResult { return c.Move(c.Facing.Right(), t) }

// Kick tilts the view, e.g. when the player is hit.
func (c *Camera) Kick(amount float64) {
	c.Pitch += amount
}

// BobOffset is the head-bob vertical offset as a fraction of screen height.
func (c *Camera) BobOffset() float64 {
	return math.Sin(c.BobPhase) * c.config.BobAmplitude
}

// Update advances interpolation and the repeat delay by dt seconds.
func (c *Camera) Update(dt float64) {
	c.repeat.Tick(dt)

	move := min(1, c.config.MoveSpeed*dt)
	turn := min(1, c.config.TurnSpeed*dt)

	c.X += (c.tx - c.X) * move
	c.Y += (c.ty - c.Y) * move
	c.DirX += (c.tdx - c.DirX) * turn
	c.DirY += (c.tdy - c.DirY) * turn
	c.PlaneX += (c.tpx - c.PlaneX) * turn
	c.PlaneY += (c.tpy - c.PlaneY) * turn

	c.walking = math.Abs(c.tx-c.X)+math.Abs(c.ty-c.Y) > c.config.Epsilon
	if c.distance() <= c.config.Epsilon {
		c.snap()
	}

	if c.walking {
		c.BobPhase += c.config.BobSpeed * dt
	} else {
		c.BobPhase -= c.BobPhase * min(1, c.config.BobDecay*dt)
	}

	c.Pitch -= c.Pitch * min(1, c.config.PitchDecay*dt)
	if math.Abs(c.Pitch) < 1e-4 {
		c.Pitch = 0
	}
}

func (c *Camera) retarget() {
	center := c.Pos.Center()
	c.tx, c.ty = center.X, center.Y
	c.tdx, c.tdy = c.Facing.Vector()
	c.tpx, c.tpy = c.Facing.Plane(c.config.FOV)
}

func (c *Camera) snap() {
	c.X, c.Y = c.tx, c.ty
	c.DirX, c.DirY = c.tdx, c.tdy
	c.PlaneX, c.PlaneY = c.tpx, c.tpy
	c.walking = false
}

// distance is the L1 distance between the continuous view and its targets.
func (c *Camera) distance() float64 {
	return math.Abs(c.tx-c.X) + math.Abs(c.ty-c.Y) +
		math.Abs(c.tdx-c.DirX) + math.Abs(c.tdy-c.DirY) +
		math.Abs(c.tpx-c.PlaneX) + math.Abs(c.tpy-c.PlaneY)
}
