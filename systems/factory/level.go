package factory

import (
	"github.com/rs/zerolog"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/pixelforge/crestwalker/archetypes"
	"github.com/pixelforge/crestwalker/collision"
	"github.com/pixelforge/crestwalker/components"
	cfg "github.com/pixelforge/crestwalker/config"
	"github.com/pixelforge/crestwalker/leveldata"
	"github.com/pixelforge/crestwalker/tags"
)

// CreateLevel builds the collision space from level data and spawns the
// level entity holding both.
func CreateLevel(e *ecs.ECS, data *leveldata.CollisionData, log zerolog.Logger) *donburi.Entry {
	space := collision.NewSpace(data.Width, data.Height, cfg.Physics.CellSize, cfg.PlatformMask, log)

	for _, s := range data.Solids {
		switch s.Slope {
		case leveldata.SlopeUpRight:
			space.AddRamp(s.X, s.Y, s.W, s.H, true, tags.ResolvSolid, tags.ResolvRamp)
		case leveldata.SlopeUpLeft:
			space.AddRamp(s.X, s.Y, s.W, s.H, false, tags.ResolvSolid, tags.ResolvRamp)
		default:
			space.AddSolid(s.X, s.Y, s.W, s.H, tags.ResolvSolid)
		}
	}

	lvl := archetypes.Level.Spawn(e)
	components.Level.SetValue(lvl, components.LevelData{
		Data:  data,
		Space: space,
	})
	return lvl
}
