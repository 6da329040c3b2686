package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/pixelforge/crestwalker/archetypes"
	"github.com/pixelforge/crestwalker/components"
	"github.com/pixelforge/crestwalker/gamemath"
)

// CreateCamera spawns the follow camera centered on pos.
func CreateCamera(e *ecs.ECS, pos gamemath.Vec) *donburi.Entry {
	camera := archetypes.Camera.Spawn(e)
	components.Camera.SetValue(camera, components.CameraData{
		Position: pos,
	})
	return camera
}
