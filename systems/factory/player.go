package factory

import (
	"github.com/rs/zerolog"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/pixelforge/crestwalker/archetypes"
	"github.com/pixelforge/crestwalker/collision"
	"github.com/pixelforge/crestwalker/components"
	cfg "github.com/pixelforge/crestwalker/config"
	"github.com/pixelforge/crestwalker/gamemath"
	"github.com/pixelforge/crestwalker/movement"
	"github.com/pixelforge/crestwalker/tags"
)

// CreatePlayer spawns the character at spawn with its body registered in
// the collision space.
func CreatePlayer(e *ecs.ECS, space *collision.Space, spawn gamemath.Vec, log zerolog.Logger) *donburi.Entry {
	body := collision.NewBody(space, spawn, cfg.Player.Collider, tags.ResolvCharacter)
	ctrl := movement.New(&cfg.Movement, space, body, log)

	player := archetypes.Player.Spawn(e)
	components.Controller.SetValue(player, components.ControllerData{
		Controller: ctrl,
		Body:       body,
		Spawn:      spawn,
	})
	return player
}
