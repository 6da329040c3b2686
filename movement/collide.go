package movement

import (
	"math"

	"github.com/pixelforge/crestwalker/gamemath"
)

// resolveCollision sweeps the full collider along the candidate velocity for
// this step's travel distance. On contact the body snaps to the cast's
// resolved centroid and the velocity is redirected: airborne and sliding
// states lose the into-surface component, grounded states keep their speed
// and only change direction.
func (c *Controller) resolveCollision(ctx *stepContext) {
	speed := c.velocity.Length()
	if speed == 0 {
		return
	}
	dir := c.velocity.Scale(1 / speed)
	col := c.body.Collider()
	center := c.body.Position().Add(col.Offset)

	hit, ok := c.world.ShapeCast(col, center, dir, speed*ctx.dt)
	if !ok {
		return
	}

	ctx.collided = true
	c.body.SetPosition(hit.Centroid.Sub(col.Offset))

	switch c.state {
	case StateFalling, StateSliding:
		c.velocity = c.slideAlongSurface(c.velocity, hit.Normal)
	default:
		// Walking and idle keep their momentum across slope changes;
		// only the direction follows the new surface.
		canon := gamemath.Canonical(gamemath.DownSlope(hit.Normal))
		sign := gamemath.Sign(c.velocity.X)
		if sign == 0 {
			sign = 1
		}
		c.velocity = canon.Scale(sign * speed)
	}
}

// slideAlongSurface keeps the component of v parallel to the contact surface
// and discards the component pointing into it. The surface tangent is
// resolved from the quadrant of the contact normal's angle off the positive
// x axis; an out-of-range quadrant stops the character dead rather than
// propagating garbage.
func (c *Controller) slideAlongSurface(v gamemath.Vec, normal gamemath.Vec) gamemath.Vec {
	a := math.Atan2(normal.Y, normal.X)
	if a < 0 {
		a += 2 * math.Pi
	}

	var tangent gamemath.Vec
	switch q := int(a / (math.Pi / 2)); q {
	case 0:
		tangent = gamemath.Vec{X: math.Cos(a - math.Pi/2), Y: math.Sin(a - math.Pi/2)}
	case 1:
		tangent = gamemath.Vec{X: math.Cos(a + math.Pi/2), Y: math.Sin(a + math.Pi/2)}
	case 2:
		tangent = gamemath.Vec{X: math.Cos(a - math.Pi/2), Y: math.Sin(a - math.Pi/2)}
	case 3:
		tangent = gamemath.Vec{X: math.Cos(a + math.Pi/2), Y: math.Sin(a + math.Pi/2)}
	default:
		c.log.Error().Float64("angle", a).Int("quadrant", q).Msg("contact normal outside quadrant range, zeroing velocity")
		return gamemath.Vec{}
	}

	return tangent.Scale(v.Dot(tangent))
}
