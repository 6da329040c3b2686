// Package gamemath provides the 2D vector and slope math used by the
// movement simulation. The world is y-up: gravity pulls toward negative Y.
package gamemath

import "math"

// Vec is a 2D vector.
type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec {
	return Vec{v.X + o.X, v.Y + o.Y}
}

func (v Vec) Sub(o Vec) Vec {
	return Vec{v.X - o.X, v.Y - o.Y}
}

func (v Vec) Scale(s float64) Vec {
	return Vec{v.X * s, v.Y * s}
}

func (v Vec) Neg() Vec {
	return Vec{-v.X, -v.Y}
}

func (v Vec) Dot(o Vec) float64 {
	return v.X*o.X + v.Y*o.Y
}

func (v Vec) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalized returns the unit vector in the direction of v, or the zero
// vector when v has no length.
func (v Vec) Normalized() Vec {
	l := v.Length()
	if l == 0 {
		return Vec{}
	}
	return Vec{v.X / l, v.Y / l}
}

// Perp returns v rotated a quarter turn clockwise.
func (v Vec) Perp() Vec {
	return Vec{v.Y, -v.X}
}

// Sign returns -1, 0 or 1 matching the sign of x.
func Sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// MoveToward moves value toward target by at most maxDelta, never
// overshooting.
func MoveToward(value, target, maxDelta float64) float64 {
	if math.Abs(target-value) <= maxDelta {
		return target
	}
	return value + Sign(target-value)*maxDelta
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}
