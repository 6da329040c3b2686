package collision

import (
	"github.com/solarlune/resolv"

	"github.com/pixelforge/crestwalker/gamemath"
	"github.com/pixelforge/crestwalker/movement"
)

// Body is a resolv-backed rigid body implementing movement.Body. The
// underlying object carries the "character" tag, which is outside the
// platform mask so the body never collides with itself during casts.
type Body struct {
	obj *resolv.Object
	col movement.Collider
}

// NewBody creates the character body centered on pos (world units) and
// registers it in the space. The object is stored corner-anchored in
// pixels like the rest of the space.
func NewBody(s *Space, pos gamemath.Vec, col movement.Collider, tags ...string) *Body {
	w := col.Radius * 2 * worldScale
	h := col.HalfHeight * 2 * worldScale
	obj := resolv.NewObject((pos.X-col.Radius)*worldScale, (pos.Y-col.HalfHeight)*worldScale, w, h, tags...)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	s.Add(obj)
	return &Body{obj: obj, col: col}
}

// Position returns the body center in world units.
func (b *Body) Position() gamemath.Vec {
	return gamemath.Vec{X: b.obj.X/worldScale + b.col.Radius, Y: b.obj.Y/worldScale + b.col.HalfHeight}
}

// SetPosition moves the body center, in world units, and syncs the
// broadphase.
func (b *Body) SetPosition(p gamemath.Vec) {
	b.obj.X = (p.X - b.col.Radius) * worldScale
	b.obj.Y = (p.Y - b.col.HalfHeight) * worldScale
	b.obj.Update()
}

func (b *Body) Collider() movement.Collider { return b.col }

// Object exposes the underlying resolv object for rendering.
func (b *Body) Object() *resolv.Object { return b.obj }
