package movement

import (
	"math"

	"github.com/rs/zerolog"

	"github.com/pixelforge/crestwalker/gamemath"
)

// Fixed step matching the default physics rate.
const testDT = 0.02

// Contact normals used across the tests. Angles are measured from the
// horizontal; with MaxWalkableSlopeAngle at 50 and the classifier's built-in
// tolerance, surfaces up to 45 degrees classify shallow.
var (
	flatNormal    = gamemath.Vec{X: 0, Y: 1}
	shallowNormal = gamemath.Vec{X: -math.Sin(gamemath.Radians(30)), Y: math.Cos(gamemath.Radians(30))}
	steepNormal   = gamemath.Vec{X: -math.Sin(gamemath.Radians(60)), Y: math.Cos(gamemath.Radians(60))}
)

func testTuning() *Tuning {
	return &Tuning{
		Gravity:               30,
		Friction:              18,
		AirFriction:           10,
		Acceleration:          45,
		AirAcceleration:       28,
		SlopeAcceleration:     22,
		MaxMovement:           7,
		MaxAirMovement:        6,
		JumpVelocity:          12.5,
		JumpReleaseMultiplier: 0.45,
		JumpFrameForgiveness:  4,
		XTerminalVelocity:     14,
		YTerminalVelocity:     20,
		GroundCheckDistance:   0.5,
		MaxWalkableSlopeAngle: 50,
		SlowSlope:             4,
	}
}

func testCollider() Collider {
	return Collider{Radius: 0.45, HalfHeight: 0.9}
}

// fakeWorld answers cast queries from optional callbacks. A nil callback
// reports no hit, so an empty fakeWorld is open air.
type fakeWorld struct {
	circle func(center gamemath.Vec, radius float64, dir gamemath.Vec, dist float64) (Hit, bool)
	shape  func(col Collider, center gamemath.Vec, dir gamemath.Vec, dist float64) (Hit, bool)
	ray    func(origin gamemath.Vec, dir gamemath.Vec, dist float64) (Hit, bool)
}

func (w *fakeWorld) CircleCast(center gamemath.Vec, radius float64, dir gamemath.Vec, dist float64) (Hit, bool) {
	if w.circle == nil {
		return Hit{}, false
	}
	return w.circle(center, radius, dir, dist)
}

func (w *fakeWorld) ShapeCast(col Collider, center gamemath.Vec, dir gamemath.Vec, dist float64) (Hit, bool) {
	if w.shape == nil {
		return Hit{}, false
	}
	return w.shape(col, center, dir, dist)
}

func (w *fakeWorld) RayCast(origin gamemath.Vec, dir gamemath.Vec, dist float64) (Hit, bool) {
	if w.ray == nil {
		return Hit{}, false
	}
	return w.ray(origin, dir, dist)
}

// groundHit builds a circle callback reporting an ever-present surface with
// the given normal.
func groundHit(normal gamemath.Vec) func(gamemath.Vec, float64, gamemath.Vec, float64) (Hit, bool) {
	return func(center gamemath.Vec, radius float64, dir gamemath.Vec, dist float64) (Hit, bool) {
		return Hit{Normal: normal, Point: center.Add(dir.Scale(dist))}, true
	}
}

type fakeBody struct {
	pos gamemath.Vec
	col Collider
}

func (b *fakeBody) Position() gamemath.Vec     { return b.pos }
func (b *fakeBody) SetPosition(p gamemath.Vec) { b.pos = p }
func (b *fakeBody) Collider() Collider         { return b.col }

// stubSource reports static key state with no edges; good enough for
// holding a control across a poll.
type stubSource struct {
	jump, left, right bool
}

func (s stubSource) Down(c Control) bool {
	switch c {
	case ControlJump:
		return s.jump
	case ControlLeft:
		return s.left
	case ControlRight:
		return s.right
	}
	return false
}

func (s stubSource) Pressed(Control) bool  { return false }
func (s stubSource) Released(Control) bool { return false }

func newTestController(world World) (*Controller, *fakeBody) {
	body := &fakeBody{pos: gamemath.Vec{X: 5, Y: 5}, col: testCollider()}
	c := New(testTuning(), world, body, zerolog.Nop())
	return c, body
}

// hold latches the given controls for the next step.
func hold(c *Controller, src stubSource) {
	c.Latch().Poll(src)
}
