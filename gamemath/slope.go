package gamemath

// DownSlope derives the ground tangent from a surface contact normal,
// normalized so its vertical component is never positive. The result points
// downhill along the surface; on flat ground its Y is exactly zero.
func DownSlope(normal Vec) Vec {
	t := normal.Perp().Normalized()
	if t.Y > 0 {
		t = t.Neg()
	}
	return t
}

// Canonical mirrors a downslope tangent so its horizontal component is
// non-negative. Directional slope math works on the canonical form and
// re-applies the sign afterward.
func Canonical(slope Vec) Vec {
	if slope.X < 0 {
		return slope.Neg()
	}
	return slope
}
