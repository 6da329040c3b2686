// Package leveldata provides TMX level parsing and the builtin test level.
// It is pure data: no ebitengine, donburi or resolv dependencies.
//
// Level geometry is expressed in y-up world units, one unit per tile. Tiled
// maps are y-down pixels; Load flips and rescales.
package leveldata

// CollisionData holds the collision-relevant content of a level.
type CollisionData struct {
	Solids []Solid
	Spawns []SpawnPoint
	Width  float64
	Height float64
}

// Solid is one block of static collision geometry. A non-empty Slope turns
// the block into a ramp whose surface spans the full width and height, so
// the aspect ratio sets the slope angle.
type Solid struct {
	X, Y, W, H float64
	Slope      string // "", SlopeUpRight or SlopeUpLeft
}

// Slope property values understood by the loader.
const (
	SlopeUpRight = "up_right"
	SlopeUpLeft  = "up_left"
)

// SpawnPoint is a player spawn location (body center).
type SpawnPoint struct {
	X, Y  float64
	Index int
}

// Spawn returns the first spawn point, or a fallback near the origin for
// levels that define none.
func (d *CollisionData) Spawn() SpawnPoint {
	if len(d.Spawns) == 0 {
		return SpawnPoint{X: 2, Y: d.Height / 2}
	}
	return d.Spawns[0]
}
