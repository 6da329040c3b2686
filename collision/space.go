// Package collision implements the movement package's World and Body
// interfaces on top of a resolv collision space. Casts are stepped sweeps:
// the probe shape advances along the cast direction, broadphase-filtered
// through the space's cells, and the first shape intersection yields the
// contact normal (from the minimum translation vector) and contact point.
//
// resolv's broadphase indexes cells assuming pixel-scale geometry and
// degenerates on sub-unit objects, so the space stores everything in
// pixels, worldScale pixels per world unit, and converts at the query
// boundary. All world-facing coordinates are y-up world units; only the
// level loader and the renderer ever flip the axis.
package collision

import (
	"math"

	"github.com/rs/zerolog"
	"github.com/solarlune/resolv"
)

// worldScale is the number of pixels per world unit inside the resolv
// space, matching the 16px tile size the renderer draws at.
const worldScale = 16.0

// Space wraps a resolv space restricted to a platform mask: cast queries
// only see objects carrying at least one of the mask tags.
type Space struct {
	inner *resolv.Space
	mask  []string
	log   zerolog.Logger
}

// NewSpace builds a collision space covering width x height world units.
// cell is the broadphase cell size in world units.
func NewSpace(width, height, cell float64, mask []string, log zerolog.Logger) *Space {
	cw := int(math.Ceil(cell * worldScale))
	if cw < 1 {
		cw = 1
	}
	return &Space{
		inner: resolv.NewSpace(int(math.Ceil(width*worldScale)), int(math.Ceil(height*worldScale)), cw, cw),
		mask:  mask,
		log:   log,
	}
}

// Inner exposes the underlying resolv space for rendering and debugging.
func (s *Space) Inner() *resolv.Space { return s.inner }

// Add inserts a configured object into the space.
func (s *Space) Add(obj *resolv.Object) {
	s.inner.Add(obj)
	obj.Update()
}

// AddSolid inserts an axis-aligned solid block, given in world units.
func (s *Space) AddSolid(x, y, w, h float64, tags ...string) *resolv.Object {
	pw, ph := w*worldScale, h*worldScale
	obj := resolv.NewObject(x*worldScale, y*worldScale, pw, ph, tags...)
	obj.SetShape(resolv.NewRectangle(0, 0, pw, ph))
	s.Add(obj)
	return obj
}

// AddRamp inserts a right-triangle ramp, given in world units. upRight
// selects whether the surface rises toward the object's right edge or its
// left edge. The leading pair is the polygon position; the object Update
// overwrites it with the object's own.
func (s *Space) AddRamp(x, y, w, h float64, upRight bool, tags ...string) *resolv.Object {
	pw, ph := w*worldScale, h*worldScale
	obj := resolv.NewObject(x*worldScale, y*worldScale, pw, ph, tags...)
	if upRight {
		obj.SetShape(resolv.NewConvexPolygon(
			0, 0,
			0, 0,
			pw, 0,
			pw, ph,
		))
	} else {
		obj.SetShape(resolv.NewConvexPolygon(
			0, 0,
			0, 0,
			pw, 0,
			0, ph,
		))
	}
	s.Add(obj)
	return obj
}
