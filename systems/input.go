package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/pixelforge/crestwalker/components"
	cfg "github.com/pixelforge/crestwalker/config"
	"github.com/pixelforge/crestwalker/movement"
)

// keySource adapts the configured keyboard bindings to the movement input
// interface. A control counts as down/pressed/released if any bound key is.
type keySource struct{}

func (keySource) Down(c movement.Control) bool {
	for _, k := range cfg.Input.Bindings[c].Keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func (keySource) Pressed(c movement.Control) bool {
	for _, k := range cfg.Input.Bindings[c].Keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

func (keySource) Released(c movement.Control) bool {
	for _, k := range cfg.Input.Bindings[c].Keys {
		if inpututil.IsKeyJustReleased(k) {
			return true
		}
	}
	return false
}

// UpdateInput polls raw key state into each controller's input latch. This
// runs every display tick, which may be more often than the fixed physics
// step consumes the latch. Must run before UpdateMovement.
func UpdateInput(e *ecs.ECS) {
	components.Controller.Each(e.World, func(entry *donburi.Entry) {
		d := components.Controller.Get(entry)
		d.Controller.Latch().Poll(keySource{})
	})
}

// ResetRequested reports whether the manual respawn key was pressed this
// tick.
func ResetRequested() bool {
	for _, k := range cfg.Input.ResetKeys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
