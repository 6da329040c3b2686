package movement

import (
	"math"

	"github.com/pixelforge/crestwalker/gamemath"
)

// stickToGround keeps a grounded character attached across slope crests and
// dips. Walking over a convex slope transition would otherwise launch the
// character off the surface for a few steps; instead the body is pulled down
// to the nearby ground and the velocity rewritten along the new tangent.
//
// Two probes run: a full shape cast down GroundCheckDistance to find the
// candidate contact, and a thin ray confirming the directly-underlying
// surface is walkable. The walkable check here uses the raw slope threshold,
// without the classifier's tolerance band.
func (c *Controller) stickToGround(ctx *stepContext) {
	if c.state != StateIdle && c.state != StateWalking {
		return
	}
	travel := gamemath.Sign(c.velocity.X)
	if travel == 0 {
		return
	}

	col := c.body.Collider()
	center := c.body.Position().Add(col.Offset)
	down := gamemath.Vec{Y: -1}

	rayHit, rayOK := c.world.RayCast(center, down, col.HalfHeight+c.tuning.GroundCheckDistance)
	if !rayOK {
		return
	}
	slope := gamemath.DownSlope(rayHit.Normal)
	if math.Abs(slope.Y) > math.Cos(gamemath.Radians(c.tuning.MaxWalkableSlopeAngle)) {
		return
	}

	newCanon := gamemath.Canonical(slope)
	oldCanon := gamemath.Canonical(c.oldSlope)
	if newCanon.Y == oldCanon.Y {
		// Same steepness as the previous footing, nothing to correct.
		return
	}

	shapeHit, shapeOK := c.world.ShapeCast(col, center, down, c.tuning.GroundCheckDistance)
	if !shapeOK {
		c.log.Error().Msg("ray probe confirmed walkable ground but shape cast found none, keeping trajectory")
		return
	}

	c.body.SetPosition(shapeHit.Centroid.Sub(col.Offset))
	c.velocity = newCanon.Scale(travel * c.velocity.Length())
	c.groundSlope = slope
}
