package movement

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pixelforge/crestwalker/gamemath"
)

// Normal of a 30-degree surface descending to the right, as found walking
// over a crest.
var downRightNormal = gamemath.Vec{X: math.Sin(gamemath.Radians(30)), Y: math.Cos(gamemath.Radians(30))}

// crestWorld keeps the character on flat ground for classification, reports
// the descending slope to the downward ray, and answers the downward shape
// probe with a snap target just below the current center.
func crestWorld(snapDepth float64) *fakeWorld {
	return &fakeWorld{
		circle: groundHit(flatNormal),
		ray: func(origin, dir gamemath.Vec, dist float64) (Hit, bool) {
			return Hit{Normal: downRightNormal}, true
		},
		shape: func(col Collider, center, dir gamemath.Vec, dist float64) (Hit, bool) {
			if dir.X != 0 || dir.Y >= 0 {
				return Hit{}, false
			}
			return Hit{Normal: downRightNormal, Centroid: gamemath.Vec{X: center.X, Y: center.Y - snapDepth}}, true
		},
	}
}

func TestStickSnapsOverCrest(t *testing.T) {
	c, body := newTestController(crestWorld(0.3))
	c.state = StateWalking
	c.velocity = gamemath.Vec{X: 3}
	c.oldSlope = gamemath.Vec{X: 1}
	hold(c, stubSource{right: true})

	c.Step(testDT)

	speed := 3 + c.tuning.Acceleration*testDT
	v := c.Velocity()
	assert.InDelta(t, speed*math.Cos(gamemath.Radians(30)), v.X, 1e-6)
	assert.InDelta(t, -speed*math.Sin(gamemath.Radians(30)), v.Y, 1e-6)

	slope := c.GroundSlope()
	assert.InDelta(t, math.Cos(gamemath.Radians(30)), slope.X, 1e-6)
	assert.InDelta(t, -math.Sin(gamemath.Radians(30)), slope.Y, 1e-6)

	// Snapped down to the shape probe's resolved center after the free move.
	wantX := 5 + speed*testDT
	assert.InDelta(t, wantX, body.pos.X, 1e-9)
	assert.InDelta(t, 5-0.3, body.pos.Y, 1e-9)
}

func TestStickSnapsOverCrestMovingLeft(t *testing.T) {
	// The slope-change check compares steepness only, so crossing the same
	// crest leftward snaps too, with the velocity sign preserved.
	c, body := newTestController(crestWorld(0.3))
	c.state = StateWalking
	c.velocity = gamemath.Vec{X: -3}
	c.oldSlope = gamemath.Vec{X: 1}
	hold(c, stubSource{left: true})

	c.Step(testDT)

	speed := 3 + c.tuning.Acceleration*testDT
	v := c.Velocity()
	assert.InDelta(t, -speed*math.Cos(gamemath.Radians(30)), v.X, 1e-6)
	assert.InDelta(t, speed*math.Sin(gamemath.Radians(30)), v.Y, 1e-6)

	assert.InDelta(t, 5-speed*testDT, body.pos.X, 1e-9)
	assert.InDelta(t, 5-0.3, body.pos.Y, 1e-9)
}

func TestStickSkipsWithoutHorizontalTravel(t *testing.T) {
	c, body := newTestController(crestWorld(0.3))
	c.state = StateIdle

	c.Step(testDT)

	assert.Equal(t, gamemath.Vec{X: 5, Y: 5}, body.pos)
	assert.Equal(t, gamemath.Vec{}, c.Velocity())
}

func TestStickSkipsWhileAirborneOrSliding(t *testing.T) {
	for _, state := range []State{StateFalling, StateSliding} {
		t.Run(state.String(), func(t *testing.T) {
			rayCalls := 0
			world := crestWorld(0.3)
			world.circle = nil
			world.shape = nil
			world.ray = func(origin, dir gamemath.Vec, dist float64) (Hit, bool) {
				rayCalls++
				return Hit{Normal: downRightNormal}, true
			}
			c, _ := newTestController(world)
			c.state = state
			c.velocity = gamemath.Vec{X: 3}

			c.Step(testDT)

			assert.Zero(t, rayCalls)
		})
	}
}

func TestStickSkipsOnUnchangedSlope(t *testing.T) {
	world := crestWorld(0.3)
	world.ray = func(origin, dir gamemath.Vec, dist float64) (Hit, bool) {
		return Hit{Normal: flatNormal}, true
	}
	c, body := newTestController(world)
	c.state = StateWalking
	c.velocity = gamemath.Vec{X: 3}
	c.oldSlope = gamemath.Vec{X: 1}
	hold(c, stubSource{right: true})

	c.Step(testDT)

	// Free move only, no snap.
	assert.InDelta(t, 5, body.pos.Y, 1e-9)
	assert.InDelta(t, 0, c.Velocity().Y, 1e-9)
}

func TestStickSkipsOnUnwalkableSlope(t *testing.T) {
	world := crestWorld(0.3)
	world.ray = func(origin, dir gamemath.Vec, dist float64) (Hit, bool) {
		return Hit{Normal: steepNormal}, true
	}
	c, body := newTestController(world)
	c.state = StateWalking
	c.velocity = gamemath.Vec{X: 3}
	c.oldSlope = gamemath.Vec{X: 1}
	hold(c, stubSource{right: true})

	c.Step(testDT)

	assert.InDelta(t, 5, body.pos.Y, 1e-9)
	assert.InDelta(t, 0, c.Velocity().Y, 1e-9)
}

func TestStickKeepsTrajectoryOnProbeMismatch(t *testing.T) {
	// The ray sees walkable ground but the shape cast disagrees: leave the
	// character on its current trajectory instead of snapping blind.
	world := crestWorld(0.3)
	world.shape = nil
	c, body := newTestController(world)
	c.state = StateWalking
	c.velocity = gamemath.Vec{X: 3}
	c.oldSlope = gamemath.Vec{X: 1}
	hold(c, stubSource{right: true})

	c.Step(testDT)

	assert.InDelta(t, 5, body.pos.Y, 1e-9)
	assert.InDelta(t, 0, c.Velocity().Y, 1e-9)
}
