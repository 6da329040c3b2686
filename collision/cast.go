package collision

import (
	"math"

	"github.com/solarlune/resolv"

	"github.com/pixelforge/crestwalker/gamemath"
	"github.com/pixelforge/crestwalker/movement"
)

// castStep is the sweep increment in pixels, a quarter tile. Cast distances
// in this game are a fraction of a tile, so the increment stays well below
// the thinnest geometry.
const castStep = worldScale / 4

// CircleCast sweeps a circle of the given radius from center along dir.
// Inputs are world units.
func (s *Space) CircleCast(center gamemath.Vec, radius float64, dir gamemath.Vec, dist float64) (movement.Hit, bool) {
	r := radius * worldScale
	shape := resolv.NewCircle(0, 0, r)
	return s.sweep(shape, center.Scale(worldScale), r, r, dir, dist*worldScale)
}

// ShapeCast sweeps the full collider box from center along dir. Inputs are
// world units.
func (s *Space) ShapeCast(col movement.Collider, center gamemath.Vec, dir gamemath.Vec, dist float64) (movement.Hit, bool) {
	r := col.Radius * worldScale
	hh := col.HalfHeight * worldScale
	// Leading pair is the polygon position; the vertices are centered on it
	// so SetPosition during the sweep places the box center.
	shape := resolv.NewConvexPolygon(
		0, 0,
		-r, -hh,
		r, -hh,
		r, hh,
		-r, hh,
	)
	return s.sweep(shape, center.Scale(worldScale), r, hh, dir, dist*worldScale)
}

// sweep advances a probe shape along dir in castStep increments and reports
// the first intersection with masked geometry. center, the half extents,
// and dist are in pixels. The probe shape must be built around a local
// origin; SetPosition places its center.
func (s *Space) sweep(shape resolv.IShape, center gamemath.Vec, halfW, halfH float64, dir gamemath.Vec, dist float64) (movement.Hit, bool) {
	probe := resolv.NewObject(center.X-halfW, center.Y-halfH, halfW*2, halfH*2)
	s.inner.Add(probe)
	defer s.inner.Remove(probe)

	steps := int(math.Ceil(dist / castStep))
	if steps < 1 {
		steps = 1
	}

	for i := 0; i <= steps; i++ {
		travel := math.Min(float64(i)*castStep, dist)
		off := dir.Scale(travel)

		check := probe.Check(off.X, off.Y, s.mask...)
		if check == nil {
			continue
		}

		at := center.Add(off)
		shape.SetPosition(at.X, at.Y)

		for _, other := range check.Objects {
			if other.Shape == nil {
				continue
			}
			contact := shape.Intersection(0, 0, other.Shape)
			if contact == nil {
				continue
			}
			return s.hitFromContact(contact, at, dir), true
		}
	}

	return movement.Hit{}, false
}

// hitFromContact converts a resolv contact set, in pixels, into a
// world-unit movement.Hit. The MTV pushes the probe out of the surface, so
// the resolved centroid is the probe center displaced by it and the normal
// is its direction.
func (s *Space) hitFromContact(contact *resolv.ContactSet, at gamemath.Vec, dir gamemath.Vec) movement.Hit {
	mtv := gamemath.Vec{X: contact.MTV.X(), Y: contact.MTV.Y()}
	normal := mtv.Normalized()
	if normal == (gamemath.Vec{}) || normal.Dot(dir) > 0 {
		// Degenerate or inverted separation; fall back to opposing the cast.
		normal = dir.Neg()
	}
	return movement.Hit{
		Point:    gamemath.Vec{X: contact.Center.X(), Y: contact.Center.Y()}.Scale(1 / worldScale),
		Normal:   normal,
		Centroid: at.Add(mtv).Scale(1 / worldScale),
	}
}

// RayCast traces a thin segment through the space and reports the contact
// nearest to the origin. Inputs are world units.
func (s *Space) RayCast(origin gamemath.Vec, dir gamemath.Vec, dist float64) (movement.Hit, bool) {
	po := origin.Scale(worldScale)
	pe := po.Add(dir.Scale(dist * worldScale))

	minX := math.Min(po.X, pe.X) - 1
	minY := math.Min(po.Y, pe.Y) - 1
	probe := resolv.NewObject(minX, minY, math.Abs(pe.X-po.X)+2, math.Abs(pe.Y-po.Y)+2)
	s.inner.Add(probe)
	defer s.inner.Remove(probe)

	check := probe.Check(0, 0, s.mask...)
	if check == nil {
		return movement.Hit{}, false
	}

	line := resolv.NewLine(po.X, po.Y, pe.X, pe.Y)

	best := movement.Hit{}
	bestDist := math.Inf(1)
	found := false
	for _, other := range check.Objects {
		if other.Shape == nil {
			continue
		}
		contact := line.Intersection(0, 0, other.Shape)
		if contact == nil {
			continue
		}
		for _, p := range contact.Points {
			point := gamemath.Vec{X: p.X(), Y: p.Y()}
			d := point.Sub(po).Length()
			if d < bestDist {
				bestDist = d
				best = s.hitFromContact(contact, point, dir)
				best.Point = point.Scale(1 / worldScale)
				found = true
			}
		}
	}
	return best, found
}
