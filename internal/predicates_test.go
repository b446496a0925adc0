package internal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignedArea2(t *testing.T) {
	assert.Equal(t, 12.0, SignedArea2(Point{0, 0}, Point{4, 0}, Point{2, 3}))
	assert.Equal(t, -12.0, SignedArea2(Point{0, 0}, Point{2, 3}, Point{4, 0}))
	assert.Equal(t, 0.0, SignedArea2(Point{0, 0}, Point{1, 1}, Point{3, 3}))
}

func TestDirection(t *testing.T) {
	a, b := Point{0, 0}, Point{2, 0}
	assert.Equal(t, 1, Direction(a, b, Point{1, 1}))
	assert.Equal(t, -1, Direction(a, b, Point{1, -1}))
	assert.Equal(t, 0, Direction(a, b, Point{5, 0}))
}

func TestDirection3(t *testing.T) {
	a, b, c := Point3{0, 0, 0}, Point3{1, 0, 0}, Point3{0, 1, 0}
	assert.Equal(t, 1, Direction3(a, b, c, Point3{0, 0, 1}))
	assert.Equal(t, -1, Direction3(a, b, c, Point3{0, 0, -1}))
	assert.Equal(t, 0, Direction3(a, b, c, Point3{3, 3, 0}))
}

func TestClockwise(t *testing.T) {
	center := Point{0, 0}

	t.Run("right half first", func(t *testing.T) {
		assert.True(t, Clockwise(Point{1, 0}, Point{-1, 0}, center))
		assert.False(t, Clockwise(Point{-1, 0}, Point{1, 0}, center))
		// Points straight above the center count as the right half
		assert.True(t, Clockwise(Point{0, 1}, Point{-1, 5}, center))
	})

	t.Run("both on the vertical through center", func(t *testing.T) {
		assert.True(t, Clockwise(Point{0, 2}, Point{0, 1}, center))
		assert.True(t, Clockwise(Point{0, 1}, Point{0, -1}, center))
		assert.False(t, Clockwise(Point{0, -1}, Point{0, 1}, center))
		assert.True(t, Clockwise(Point{0, -2}, Point{0, -1}, center))
	})

	t.Run("cross product", func(t *testing.T) {
		assert.True(t, Clockwise(Point{1, 1}, Point{1, -1}, center))
		assert.False(t, Clockwise(Point{1, -1}, Point{1, 1}, center))
		assert.True(t, Clockwise(Point{-1, -1}, Point{-1, 1}, center))
	})

	t.Run("collinear with center", func(t *testing.T) {
		assert.True(t, Clockwise(Point{2, 2}, Point{1, 1}, center))
		assert.False(t, Clockwise(Point{1, 1}, Point{2, 2}, center))
	})

	assert.True(t, CounterClockwise(Point{1, -1}, Point{1, 1}, center))
}

func TestLessXY(t *testing.T) {
	assert.True(t, LessXY(Point{0, 5}, Point{1, 0}))
	assert.True(t, LessXY(Point{1, 0}, Point{1, 1}))
	assert.False(t, LessXY(Point{1, 1}, Point{1, 1}))
}

func TestBarycentric(t *testing.T) {
	a, b, c := Point{0, 0}, Point{4, 0}, Point{2, 3}

	alpha, beta, gamma := Barycentric(a, b, c, Point{2, 1})
	assert.InDelta(t, 1.0/3, alpha, 1e-12)
	assert.InDelta(t, 1.0/3, beta, 1e-12)
	assert.InDelta(t, 1.0/3, gamma, 1e-12)

	alpha, beta, gamma = Barycentric(a, b, c, b)
	assert.Equal(t, 0.0, alpha)
	assert.Equal(t, 1.0, beta)
	assert.Equal(t, 0.0, gamma)

	alpha, beta, gamma = Barycentric(Point{0, 0}, Point{1, 1}, Point{2, 2}, Point{1, 0})
	assert.True(t, math.IsNaN(alpha))
	assert.True(t, math.IsNaN(beta))
	assert.True(t, math.IsNaN(gamma))
}

func TestPointInTriangle(t *testing.T) {
	a, b, c := Point{0, 0}, Point{4, 0}, Point{2, 3}
	assert.True(t, PointInTriangle(a, b, c, Point{2, 1}))
	// Boundary and vertices are inside
	assert.True(t, PointInTriangle(a, b, c, Point{2, 0}))
	assert.True(t, PointInTriangle(a, b, c, a))
	assert.False(t, PointInTriangle(a, b, c, Point{5, 5}))
	assert.False(t, PointInTriangle(a, b, c, Point{2, -0.001}))
	// Winding doesn't matter
	assert.True(t, PointInTriangle(a, c, b, Point{2, 1}))
	// Nothing is inside a degenerate triangle
	assert.False(t, PointInTriangle(Point{0, 0}, Point{1, 1}, Point{2, 2}, Point{1, 1}))
}
