package movement

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pixelforge/crestwalker/gamemath"
)

func rampNormal(deg float64) gamemath.Vec {
	return gamemath.Vec{X: -math.Sin(gamemath.Radians(deg)), Y: math.Cos(gamemath.Radians(deg))}
}

func TestClassifyGround(t *testing.T) {
	tests := []struct {
		name     string
		normal   *gamemath.Vec
		state    State
		collided bool
		want     GroundKind
	}{
		{name: "open air", want: GroundAir},
		{name: "flat", normal: &flatNormal, want: GroundFlat},
		{name: "gentle ramp", normal: vecPtr(rampNormal(10)), want: GroundShallow},
		{name: "thirty degrees", normal: vecPtr(rampNormal(30)), want: GroundShallow},
		// MaxWalkableSlopeAngle is 50; the tolerance band pulls the
		// shallow/steep boundary back to 45.
		{name: "just inside the boundary", normal: vecPtr(rampNormal(44.9)), want: GroundShallow},
		{name: "just past the boundary", normal: vecPtr(rampNormal(45.1)), want: GroundSteep},
		{name: "steep ramp", normal: vecPtr(rampNormal(60)), want: GroundSteep},
		{name: "wall", normal: vecPtr(rampNormal(90)), want: GroundSteep},

		{name: "falling without prior collision", normal: &flatNormal, state: StateFalling, want: GroundAir},
		{name: "falling with prior collision", normal: &flatNormal, state: StateFalling, collided: true, want: GroundFlat},
		{name: "walking needs no prior collision", normal: &flatNormal, state: StateWalking, want: GroundFlat},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			world := &fakeWorld{}
			if tc.normal != nil {
				world.circle = groundHit(*tc.normal)
			}
			c, _ := newTestController(world)
			c.state = tc.state

			ctx := &stepContext{dt: testDT, prevCollided: tc.collided}
			kind, slope := c.classifyGround(ctx)
			assert.Equal(t, tc.want, kind)
			if kind != GroundAir {
				assert.LessOrEqual(t, slope.Y, 0.0)
			}

			// Classification is a pure query; asking again changes nothing.
			again, _ := c.classifyGround(ctx)
			assert.Equal(t, kind, again)
		})
	}
}

func TestClassifyGroundProbeGeometry(t *testing.T) {
	var gotCenter gamemath.Vec
	var gotRadius, gotDist float64
	var gotDir gamemath.Vec
	world := &fakeWorld{
		circle: func(center gamemath.Vec, radius float64, dir gamemath.Vec, dist float64) (Hit, bool) {
			gotCenter, gotRadius, gotDir, gotDist = center, radius, dir, dist
			return Hit{}, false
		},
	}
	c, body := newTestController(world)

	ctx := &stepContext{dt: testDT}
	c.classifyGround(ctx)

	col := body.col
	assert.Equal(t, body.pos, gotCenter)
	assert.Equal(t, col.Radius, gotRadius)
	assert.Equal(t, gamemath.Vec{Y: -1}, gotDir)
	assert.InDelta(t, col.HalfHeight-col.Radius+groundProbeEpsilon, gotDist, 1e-9)
}

func TestClassifyGroundAirKeepsLastSlope(t *testing.T) {
	c, _ := newTestController(&fakeWorld{})
	c.groundSlope = gamemath.Vec{X: 0.6, Y: -0.8}

	_, slope := c.classifyGround(&stepContext{dt: testDT})

	assert.Equal(t, gamemath.Vec{X: 0.6, Y: -0.8}, slope)
}

func vecPtr(v gamemath.Vec) *gamemath.Vec { return &v }
