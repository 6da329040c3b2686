package movement

import "github.com/pixelforge/crestwalker/gamemath"

// Collider describes the character's collision shape: a capsule-like box of
// half extents (Radius, HalfHeight), centered on the body position plus
// Offset.
type Collider struct {
	Radius     float64
	HalfHeight float64
	Offset     gamemath.Vec
}

// Hit reports the first contact found by a cast query.
type Hit struct {
	// Point is the contact point on the surface.
	Point gamemath.Vec
	// Normal is the unit surface normal, pointing away from the surface.
	Normal gamemath.Vec
	// Centroid is the probe shape's center once resolved against the
	// surface; snapping the body here removes the overlap.
	Centroid gamemath.Vec
}

// World is the collision query capability the controller consumes. Queries
// only see geometry matching the platform mask the World was built with.
// Implementations must be side-effect free; the controller is the sole
// writer of body state.
type World interface {
	// CircleCast sweeps a circle from center along dir for dist.
	CircleCast(center gamemath.Vec, radius float64, dir gamemath.Vec, dist float64) (Hit, bool)
	// ShapeCast sweeps the full collider shape from center along dir.
	ShapeCast(col Collider, center gamemath.Vec, dir gamemath.Vec, dist float64) (Hit, bool)
	// RayCast traces a thin ray from origin along dir for dist.
	RayCast(origin gamemath.Vec, dir gamemath.Vec, dist float64) (Hit, bool)
}

// Body is the rigid-body handle the controller moves.
type Body interface {
	Position() gamemath.Vec
	SetPosition(gamemath.Vec)
	Collider() Collider
}
