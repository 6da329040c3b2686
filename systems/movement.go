package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/pixelforge/crestwalker/components"
	cfg "github.com/pixelforge/crestwalker/config"
)

// UpdateMovement advances each controller by however many fixed physics
// steps fit into this display tick. Display ticks and physics steps run at
// different rates; the input latch bridges them.
func UpdateMovement(e *ecs.ECS) {
	tickDT := 1.0 / float64(ebiten.TPS())
	stepDT := 1.0 / cfg.Physics.StepHz
	reset := ResetRequested()

	components.Controller.Each(e.World, func(entry *donburi.Entry) {
		d := components.Controller.Get(entry)

		d.Accumulator += tickDT
		for d.Accumulator >= stepDT {
			d.Controller.Step(stepDT)
			d.Accumulator -= stepDT
		}

		if reset || d.Body.Position().Y < cfg.Player.KillLine {
			d.Controller.Reset(d.Spawn)
			StartSpawnPan(e, d.Spawn)
		}
	})
}
