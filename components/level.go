package components

import (
	"github.com/yohamta/donburi"

	"github.com/pixelforge/crestwalker/collision"
	"github.com/pixelforge/crestwalker/leveldata"
)

// LevelData holds the loaded level geometry and its collision space.
type LevelData struct {
	Data  *leveldata.CollisionData
	Space *collision.Space
}

var Level = donburi.NewComponentType[LevelData]()
