package movement

import (
	"math"

	"github.com/pixelforge/crestwalker/gamemath"
)

const (
	// groundProbeEpsilon extends the ground probe slightly past the
	// collider's bottom so resting contact still registers.
	groundProbeEpsilon = 0.05
	// walkableTolerance widens the shallow-slope band by a few degrees to
	// absorb slope-normal noise at tile boundaries.
	walkableTolerance = 5.0
)

// classifyGround casts a circular probe straight down and classifies the
// surface beneath the character. The probe radius equals the collider's
// horizontal extent, the cast distance covers the gap between the two
// extents.
//
// A hit while falling only counts once a real collision has confirmed
// contact (last step's collision flag). Without that gate the probe tags
// ground a step early during fast falls. Do not simplify the conjunction.
func (c *Controller) classifyGround(ctx *stepContext) (GroundKind, gamemath.Vec) {
	col := c.body.Collider()
	origin := c.body.Position().Add(col.Offset)
	dist := col.HalfHeight - col.Radius + groundProbeEpsilon

	hit, ok := c.world.CircleCast(origin, col.Radius, gamemath.Vec{Y: -1}, dist)
	if !ok {
		return GroundAir, c.groundSlope
	}
	if !ctx.prevCollided && c.state == StateFalling {
		return GroundAir, c.groundSlope
	}

	slope := gamemath.DownSlope(hit.Normal)
	switch {
	case slope.Y == 0:
		return GroundFlat, slope
	case math.Abs(slope.Y) <= math.Cos(gamemath.Radians(c.tuning.MaxWalkableSlopeAngle-walkableTolerance)):
		return GroundShallow, slope
	default:
		return GroundSteep, slope
	}
}
