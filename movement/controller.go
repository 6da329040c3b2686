// Package movement implements a slope-aware 2D platformer character
// controller. Each fixed step runs the same pipeline: input latch -> state
// transition -> per-state velocity integration -> collision resolution ->
// ground sticking. Collision queries and the rigid body are consumed through
// the World and Body interfaces so the whole simulation runs against fake
// geometry in tests.
package movement

import (
	"github.com/rs/zerolog"

	"github.com/pixelforge/crestwalker/gamemath"
)

// Controller owns the movement state of a single character. It is not safe
// for concurrent use: the physics tick is the sole writer, and the input
// poll only touches the latch.
type Controller struct {
	tuning *Tuning
	world  World
	body   Body
	latch  *Latch
	log    zerolog.Logger

	state    State
	velocity gamemath.Vec

	// groundSlope is the downslope tangent of the most recent ground
	// contact (Y <= 0). It goes stale while airborne; the sticking
	// corrector still compares against it.
	groundSlope gamemath.Vec
	// oldSlope is the slope snapshot taken at the end of the previous
	// grounded step.
	oldSlope gamemath.Vec

	// collided carries "a collision happened this step" into the next
	// step's ground classification.
	collided bool

	hasJumped          bool
	fallingFrames      int
	framesSincePressed int
}

// New builds a controller at rest in the idle state, with both slope
// snapshots pointing straight down.
func New(tuning *Tuning, world World, body Body, log zerolog.Logger) *Controller {
	return &Controller{
		tuning:             tuning,
		world:              world,
		body:               body,
		latch:              &Latch{},
		log:                log,
		state:              StateIdle,
		groundSlope:        gamemath.Vec{Y: -1},
		oldSlope:           gamemath.Vec{Y: -1},
		framesSincePressed: tuning.JumpFrameForgiveness + 1,
	}
}

// Latch exposes the input latch for the input poll tick.
func (c *Controller) Latch() *Latch { return c.latch }

func (c *Controller) State() State              { return c.state }
func (c *Controller) Velocity() gamemath.Vec    { return c.velocity }
func (c *Controller) GroundSlope() gamemath.Vec { return c.groundSlope }

// stepContext is the per-step mutable state threaded through the pipeline.
type stepContext struct {
	dt    float64
	input Actions

	ground GroundKind
	slope  gamemath.Vec

	// prevCollided is last step's collision flag, read by the classifier.
	prevCollided bool
	// collided is set by the collision resolver; when set, the resolver
	// already committed the position and the free-movement translation is
	// skipped.
	collided bool
}

// Step advances the simulation by one fixed step of dt seconds.
func (c *Controller) Step(dt float64) {
	ctx := &stepContext{
		dt:           dt,
		input:        c.latch.Actions(),
		prevCollided: c.collided,
	}
	c.collided = false

	ctx.ground, ctx.slope = c.classifyGround(ctx)
	if ctx.ground != GroundAir {
		c.groundSlope = ctx.slope
	}

	c.transition(ctx)
	c.integrate(ctx)

	if !ctx.collided {
		p := c.body.Position()
		c.body.SetPosition(p.Add(c.velocity.Scale(dt)))
	}

	c.stickToGround(ctx)

	if ctx.ground != GroundAir {
		c.oldSlope = c.groundSlope
	}

	c.collided = ctx.collided
	c.latch.Clear()
}

// transition applies the state table for this step using the fresh ground
// classification and the latched input.
func (c *Controller) transition(ctx *stepContext) {
	next := c.state
	switch c.state {
	case StateIdle:
		switch {
		case ctx.ground == GroundAir:
			next = StateFalling
		case ctx.ground == GroundSteep:
			next = StateSliding
		case ctx.input.Left != ctx.input.Right:
			next = StateWalking
		}
	case StateWalking:
		switch {
		case ctx.ground == GroundAir:
			next = StateFalling
		case ctx.ground == GroundSteep:
			next = StateSliding
		case ctx.input.Left == ctx.input.Right:
			next = StateIdle
		}
	case StateFalling:
		switch ctx.ground {
		case GroundFlat, GroundShallow:
			next = StateIdle
		case GroundSteep:
			next = StateSliding
		}
	case StateSliding:
		switch ctx.ground {
		case GroundFlat, GroundShallow:
			next = StateIdle
		case GroundAir:
			next = StateFalling
		}
	default:
		c.log.Error().Int("state", int(c.state)).Msg("unrecognized movement state, forcing idle")
		next = StateIdle
	}

	if next != c.state {
		if next == StateFalling {
			c.fallingFrames = 0
		}
		c.log.Debug().Stringer("from", c.state).Stringer("to", next).Stringer("ground", ctx.ground).Msg("state transition")
		c.state = next
	}
}

// Reset places the character at pos with zero velocity, back in the idle
// state with both slope snapshots pointing straight down.
func (c *Controller) Reset(pos gamemath.Vec) {
	c.body.SetPosition(pos)
	c.velocity = gamemath.Vec{}
	c.state = StateIdle
	c.groundSlope = gamemath.Vec{Y: -1}
	c.oldSlope = gamemath.Vec{Y: -1}
	c.collided = false
	c.hasJumped = false
	c.fallingFrames = 0
	c.framesSincePressed = c.tuning.JumpFrameForgiveness + 1
	c.latch.Clear()
}
