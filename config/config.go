// Package config holds the tuning values and input bindings for the demo.
// World units: one tile, y-up. Speeds are units/second, angles degrees.
package config

import (
	"github.com/yohamta/donburi/ecs"

	"github.com/pixelforge/crestwalker/gamemath"
	"github.com/pixelforge/crestwalker/movement"
)

// Default is the ECS layer everything spawns on.
const Default = ecs.LayerDefault

// Movement is the live tuning for the character controller. LoadSettings
// and the persistence system overwrite fields in place.
var Movement = movement.Tuning{
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

// PlayerConfig describes the character's collision shape and respawn rules.
type PlayerConfig struct {
	Collider movement.Collider
	// KillLine is the world Y below which the player respawns.
	KillLine float64
}

var Player = PlayerConfig{
	Collider: movement.Collider{
		Radius:     0.45,
		HalfHeight: 0.9,
		Offset:     gamemath.Vec{},
	},
	KillLine: -4,
}

// PlatformMask identifies which geometry counts as walkable ground.
var PlatformMask = []string{"solid", "ramp"}

// PhysicsConfig sets the fixed simulation step rate. Input polls at the
// display tick rate, which is deliberately different. CellSize is the
// collision broadphase cell size in world units (one tile).
type PhysicsConfig struct {
	StepHz   float64
	CellSize float64
}

var Physics = PhysicsConfig{
	StepHz:   50,
	CellSize: 1,
}

// CameraConfig tunes the follow camera.
type CameraConfig struct {
	FollowSmoothing  float64
	LookAheadX       float64
	LookAheadSmooth  float64
	SpawnPanDuration float32
}

var Camera = CameraConfig{
	FollowSmoothing:  0.08,
	LookAheadX:       2.5,
	LookAheadSmooth:  0.05,
	SpawnPanDuration: 0.8,
}

// WindowConfig sets the demo window and render scale.
type WindowConfig struct {
	Width, Height int
	PixelsPerUnit float64
	Title         string
}

var Window = WindowConfig{
	Width:         960,
	Height:        540,
	PixelsPerUnit: 16,
	Title:         "crestwalker",
}
