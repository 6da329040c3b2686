package movement

import (
	"math"

	"github.com/pixelforge/crestwalker/gamemath"
)

// integrate runs the per-state velocity update. Every branch finishes the
// same way: jump control, then collision resolution and the terminal
// velocity clamp.
func (c *Controller) integrate(ctx *stepContext) {
	switch c.state {
	case StateIdle:
		c.integrateIdle(ctx)
	case StateWalking:
		c.integrateWalking(ctx)
	case StateFalling:
		c.integrateFalling(ctx)
	case StateSliding:
		c.integrateSliding(ctx)
	}
}

// integrateIdle bleeds speed off along the current velocity direction. The
// friction rate scales with the angle between straight-down and the ground
// slope, so steeper footing decelerates less.
func (c *Controller) integrateIdle(ctx *stepContext) {
	speed := c.velocity.Length()
	if speed > 0 {
		down := gamemath.Vec{Y: -1}
		cosTheta := gamemath.ClampSpeed(down.Dot(c.groundSlope), 1)
		theta := math.Acos(cosTheta)
		next := speed - c.tuning.Friction*math.Sin(theta)*ctx.dt
		if next <= 0 {
			c.velocity = gamemath.Vec{}
		} else {
			c.velocity = c.velocity.Scale(next / speed)
		}
	}
	c.applyJump(ctx)
	c.finalize(ctx)
}

// integrateWalking accelerates along the canonical ground tangent toward the
// held direction, capping the signed tangent speed at MaxMovement. Momentum
// outside the pushed direction is left alone; deceleration only happens in
// the idle state.
func (c *Controller) integrateWalking(ctx *stepContext) {
	canon := gamemath.Canonical(c.groundSlope)
	speed := c.velocity.Dot(canon)
	rest := c.velocity.Sub(canon.Scale(speed))

	switch {
	case ctx.input.Left && !ctx.input.Right:
		if speed > -c.tuning.MaxMovement {
			speed = math.Max(speed-c.tuning.Acceleration*ctx.dt, -c.tuning.MaxMovement)
		}
	case ctx.input.Right && !ctx.input.Left:
		if speed < c.tuning.MaxMovement {
			speed = math.Min(speed+c.tuning.Acceleration*ctx.dt, c.tuning.MaxMovement)
		}
	}

	c.velocity = canon.Scale(speed).Add(rest)
	c.applyJump(ctx)
	c.finalize(ctx)
}

func (c *Controller) integrateFalling(ctx *stepContext) {
	c.velocity.Y -= c.tuning.Gravity * ctx.dt
	c.fallingFrames++
	c.applyAirControl(ctx)
	c.applyJump(ctx)
	c.finalize(ctx)
}

// integrateSliding drives the character down the steep slope unless the
// input is actively countering the slide, in which case the tangent speed is
// pulled toward the counter target without overshooting it.
func (c *Controller) integrateSliding(ctx *stepContext) {
	slope := c.groundSlope
	canon := gamemath.Canonical(slope)
	downSign := gamemath.Sign(slope.X)

	unit := c.velocity.Normalized()
	slowTarget := math.Abs(c.tuning.SlowSlope * unit.Y)

	countering := (downSign > 0 && ctx.input.Left && !ctx.input.Right) ||
		(downSign < 0 && ctx.input.Right && !ctx.input.Left)

	if !countering {
		accel := math.Abs(c.tuning.Gravity * math.Cos(math.Pi/2-math.Asin(slope.Y)))
		c.velocity = c.velocity.Add(slope.Scale(accel * ctx.dt))
	} else {
		speed := c.velocity.Dot(canon)
		rest := c.velocity.Sub(canon.Scale(speed))
		target := -downSign * slowTarget
		speed = gamemath.MoveToward(speed, target, c.tuning.SlopeAcceleration*ctx.dt)
		c.velocity = canon.Scale(speed).Add(rest)
	}

	c.applyJump(ctx)
	c.finalize(ctx)
}

// applyJump handles jump buffering, coyote frames and early-release jump
// cutting. FramesSincePressed counts polls since the jump control was last
// latched; a landing within JumpFrameForgiveness of a press still jumps.
func (c *Controller) applyJump(ctx *stepContext) {
	forgive := c.tuning.JumpFrameForgiveness

	if ctx.input.Jump || c.framesSincePressed <= forgive {
		canCoyote := c.state == StateFalling && c.fallingFrames <= forgive && c.velocity.Y < 0
		if canCoyote || c.state == StateWalking || c.state == StateIdle {
			c.velocity.Y = c.tuning.JumpVelocity
			c.hasJumped = true
		}
	}

	if ctx.input.Jump {
		c.framesSincePressed = 0
	} else {
		if c.state == StateFalling && c.hasJumped && c.velocity.Y > 0 {
			c.velocity.Y *= c.tuning.JumpReleaseMultiplier
		}
		c.framesSincePressed++
		c.hasJumped = false
	}
}

// applyAirControl steers horizontal velocity while airborne. With no
// exclusive direction held it decays toward zero at AirFriction.
func (c *Controller) applyAirControl(ctx *stepContext) {
	switch {
	case ctx.input.Left == ctx.input.Right:
		c.velocity.X = gamemath.MoveToward(c.velocity.X, 0, c.tuning.AirFriction*ctx.dt)
	case ctx.input.Left:
		if c.velocity.X > -c.tuning.MaxAirMovement {
			c.velocity.X = math.Max(c.velocity.X-c.tuning.AirAcceleration*ctx.dt, -c.tuning.MaxAirMovement)
		}
	default:
		if c.velocity.X < c.tuning.MaxAirMovement {
			c.velocity.X = math.Min(c.velocity.X+c.tuning.AirAcceleration*ctx.dt, c.tuning.MaxAirMovement)
		}
	}
}

// finalize resolves collisions for the candidate velocity and applies the
// terminal velocity clamps.
func (c *Controller) finalize(ctx *stepContext) {
	c.resolveCollision(ctx)
	c.velocity.X = gamemath.ClampSpeed(c.velocity.X, c.tuning.XTerminalVelocity)
	c.velocity.Y = gamemath.ClampSpeed(c.velocity.Y, c.tuning.YTerminalVelocity)
}
