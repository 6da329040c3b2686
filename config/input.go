package config

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/pixelforge/crestwalker/movement"
)

// InputBinding lists the keyboard keys bound to one logical control.
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig maps movement controls to key bindings.
type InputConfig struct {
	Bindings map[movement.Control]InputBinding
	// ResetKeys respawn the player at the spawn point.
	ResetKeys []ebiten.Key
}

// Input is the global input configuration.
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[movement.Control]InputBinding{
			movement.ControlJump: {
				Keys: []ebiten.Key{ebiten.KeySpace, ebiten.KeyX, ebiten.KeyW, ebiten.KeyUp},
			},
			movement.ControlLeft: {
				Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
			},
			movement.ControlRight: {
				Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
			},
		},
		ResetKeys: []ebiten.Key{ebiten.KeyR},
	}
}
