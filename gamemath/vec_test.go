package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVecOps(t *testing.T) {
	a := Vec{X: 3, Y: -4}
	b := Vec{X: 1, Y: 2}

	assert.Equal(t, Vec{X: 4, Y: -2}, a.Add(b))
	assert.Equal(t, Vec{X: 2, Y: -6}, a.Sub(b))
	assert.Equal(t, Vec{X: 6, Y: -8}, a.Scale(2))
	assert.Equal(t, Vec{X: -3, Y: 4}, a.Neg())
	assert.Equal(t, -5.0, a.Dot(b))
	assert.Equal(t, 5.0, a.Length())
}

func TestNormalized(t *testing.T) {
	v := Vec{X: 3, Y: -4}.Normalized()
	assert.InDelta(t, 0.6, v.X, 1e-9)
	assert.InDelta(t, -0.8, v.Y, 1e-9)

	assert.Equal(t, Vec{}, Vec{}.Normalized())
}

func TestPerp(t *testing.T) {
	// Quarter turn clockwise: up becomes right.
	assert.Equal(t, Vec{X: 1}, Vec{Y: 1}.Perp())
	assert.Equal(t, Vec{Y: -1}, Vec{X: 1}.Perp())
}

func TestSign(t *testing.T) {
	assert.Equal(t, 1.0, Sign(0.2))
	assert.Equal(t, -1.0, Sign(-7))
	assert.Equal(t, 0.0, Sign(0))
}

func TestClampSpeed(t *testing.T) {
	assert.Equal(t, 5.0, ClampSpeed(9, 5))
	assert.Equal(t, -5.0, ClampSpeed(-9, 5))
	assert.Equal(t, 3.0, ClampSpeed(3, 5))
}

func TestMoveToward(t *testing.T) {
	assert.Equal(t, 2.5, MoveToward(2, 4, 0.5))
	assert.Equal(t, 1.5, MoveToward(2, 0, 0.5))
	// Never overshoots; lands exactly on the target.
	assert.Equal(t, 4.0, MoveToward(3.9, 4, 0.5))
	assert.Equal(t, 4.0, MoveToward(4, 4, 0.5))
}

func TestRadians(t *testing.T) {
	assert.InDelta(t, 3.14159265, Radians(180), 1e-8)
}
