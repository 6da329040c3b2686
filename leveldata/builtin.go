package leveldata

// Builtin returns the default test level: a floor with a shallow ramp up to
// a plateau, a matching ramp back down, and a steep ramp against the right
// wall. The ramp-to-plateau seams exercise ground sticking; the steep ramp
// exercises sliding.
func Builtin() *CollisionData {
	return &CollisionData{
		Width:  60,
		Height: 34,
		Solids: []Solid{
			// Floor and outer walls.
			{X: 0, Y: 0, W: 60, H: 1},
			{X: 0, Y: 1, W: 1, H: 12},
			{X: 59, Y: 1, W: 1, H: 12},

			// Shallow ramp up to a plateau, then back down.
			{X: 14, Y: 1, W: 8, H: 3, Slope: SlopeUpRight},
			{X: 22, Y: 1, W: 6, H: 3},
			{X: 28, Y: 1, W: 8, H: 3, Slope: SlopeUpLeft},

			// Steep ramp backed by a block.
			{X: 44, Y: 1, W: 3, H: 6, Slope: SlopeUpRight},
			{X: 47, Y: 1, W: 4, H: 6},
		},
		Spawns: []SpawnPoint{
			{X: 6, Y: 3, Index: 0},
		},
	}
}
