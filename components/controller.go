package components

import (
	"github.com/yohamta/donburi"

	"github.com/pixelforge/crestwalker/collision"
	"github.com/pixelforge/crestwalker/gamemath"
	"github.com/pixelforge/crestwalker/movement"
)

// ControllerData wires a character's movement controller to its body.
type ControllerData struct {
	Controller *movement.Controller
	Body       *collision.Body
	Spawn      gamemath.Vec

	// Accumulator carries leftover display-tick time into the next fixed
	// physics step.
	Accumulator float64
}

var Controller = donburi.NewComponentType[ControllerData]()
