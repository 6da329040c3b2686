package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Level  = donburi.NewTag().SetName("Level")
)

// Resolv tags for collision geometry.
const (
	ResolvSolid     = "solid"
	ResolvRamp      = "ramp"
	ResolvCharacter = "character"
)
