package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"

	"github.com/pixelforge/crestwalker/gamemath"
)

// CameraData follows the player in world coordinates. PanX/PanY are set on
// respawn to sweep the camera to the spawn point instead of teleporting.
type CameraData struct {
	Position   gamemath.Vec
	LookAheadX float64

	PanX *gween.Tween
	PanY *gween.Tween
}

var Camera = donburi.NewComponentType[CameraData]()
