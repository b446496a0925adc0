package internal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func lShape() Polygon {
	return Polygon{Points: []Point{{0, 0}, {4, 0}, {4, 1}, {1, 1}, {1, 4}, {0, 4}}}
}

func TestPolygon_Measures(t *testing.T) {
	poly := lShape()
	assert.Equal(t, 7.0, poly.SignedArea())
	assert.Equal(t, 7.0, poly.Area())
	assert.Equal(t, 16.0, poly.Perimeter())
	assert.True(t, poly.IsCCW())

	reversed := poly.Reverse()
	assert.Equal(t, -7.0, reversed.SignedArea())
	assert.Equal(t, 7.0, reversed.Area())
	assert.True(t, reversed.IsCW())
	assert.Equal(t, Point{0, 4}, reversed.Points[0])
}

func TestPolygon_ContainsPointByEvenOdd(t *testing.T) {
	poly := lShape()
	assert.True(t, poly.ContainsPointByEvenOdd(Point{0.5, 0.5}))
	assert.True(t, poly.ContainsPointByEvenOdd(Point{3.5, 0.5}))
	assert.True(t, poly.ContainsPointByEvenOdd(Point{0.5, 3.5}))
	assert.False(t, poly.ContainsPointByEvenOdd(Point{2, 2}))
	assert.False(t, poly.ContainsPointByEvenOdd(Point{-1, 0.5}))
}

func TestTriangle(t *testing.T) {
	// Clockwise input gets flipped
	tri := NewTriangle(Point{0, 0}, Point{0, 3}, Point{4, 0})
	assert.Equal(t, Triangle{A: Point{0, 0}, B: Point{4, 0}, C: Point{0, 3}}, tri)
	assert.True(t, tri.IsCCW())

	assert.Equal(t, 6.0, tri.SignedArea())
	assert.Equal(t, 6.0, tri.Area())
	assert.Equal(t, 12.0, tri.Perimeter())
	assert.InDelta(t, 4.0/3, tri.Centroid().X, 1e-12)
	assert.InDelta(t, 1.0, tri.Centroid().Y, 1e-12)
	assert.True(t, tri.Contains(Point{1, 1}))
	assert.False(t, tri.Contains(Point{3, 3}))
	assert.Equal(t, 6.0, tri.Polygon().Area())

	rotated := Triangle{A: tri.B, B: tri.C, C: tri.A}
	assert.True(t, tri.SameVertices(rotated))
	assert.False(t, tri.SameVertices(Triangle{A: Point{0, 0}, B: Point{4, 0}, C: Point{0, 4}}))

	assert.Equal(t, "Triangle{(0, 0), (4, 0), (0, 3)}", tri.String())
	assert.Contains(t, tri.DbgString(), "(4, 0)")

	assert.Equal(t, 12.0, TriangleArea([]Triangle{tri, rotated}))
}

func TestTriangle3(t *testing.T) {
	tri := Triangle3{A: Point3{0, 0, 1}, B: Point3{2, 0, 3}, C: Point3{0, 2, 2}}
	assert.Equal(t, 1.0, tri.MinZ())
	normal := tri.Normal()
	assert.Equal(t, Point3{-4, -2, 4}, normal)
	assert.Equal(t, 3.0, tri.Area())
}

func TestPoint(t *testing.T) {
	p, q := Point{3, 4}, Point{1, 2}
	assert.Equal(t, Point{4, 6}, p.Add(q))
	assert.Equal(t, Point{2, 2}, p.Sub(q))
	assert.Equal(t, Point{6, 8}, p.Scale(2))
	assert.Equal(t, 11.0, p.Dot(q))
	assert.Equal(t, 2.0, p.Cross(q))
	assert.Equal(t, 5.0, p.Length())
	unit := p.Normalize()
	assert.InDelta(t, 0.6, unit.X, 1e-12)
	assert.InDelta(t, 0.8, unit.Y, 1e-12)
	assert.Equal(t, Point{}, Point{}.Normalize())
	assert.InDelta(t, math.Sqrt(8), p.Distance(q), 1e-12)
	assert.True(t, p.Equal(Point{3, 4}))
	assert.Equal(t, "(3, 4)", p.String())

	v := Point3{1, 2, 2}
	assert.Equal(t, 3.0, v.Length())
	assert.Equal(t, Point3{0, 0, 1}, Point3{1, 0, 0}.Cross(Point3{0, 1, 0}))
	assert.Equal(t, Point{1, 2}, v.XY())
	assert.Equal(t, "(1, 2, 2)", v.String())
}

func TestCircularIndex(t *testing.T) {
	assert.Equal(t, 4, CircularIndex(-1, 5))
	assert.Equal(t, 0, CircularIndex(5, 5))
	assert.Equal(t, 2, CircularIndex(12, 5))
}

func TestPointStack(t *testing.T) {
	var stack PointStack
	assert.True(t, stack.Empty())
	_, ok := stack.Pop()
	assert.False(t, ok)

	stack.Push(Point{1, 1})
	stack.Push(Point{2, 2})
	top, _ := stack.Peek()
	second, _ := stack.PeekSecond()
	assert.Equal(t, Point{2, 2}, top)
	assert.Equal(t, Point{1, 1}, second)

	popped, ok := stack.Pop()
	assert.True(t, ok)
	assert.Equal(t, Point{2, 2}, popped)
	assert.Equal(t, 1, stack.Len())
	_, ok = stack.PeekSecond()
	assert.False(t, ok)
}

func TestPointSet(t *testing.T) {
	a := PointSet{}
	a.Add(Point{1, 1})
	a.Add(Point{2, 2})
	a.Add(Point{1, 1})
	b := PointSet{}
	b.Add(Point{2, 2})
	b.Add(Point{1, 1})

	assert.Len(t, a, 2)
	assert.True(t, a.Equals(b))
	b.Add(Point{3, 3})
	assert.False(t, a.Equals(b))
	assert.True(t, b.Contains(Point{3, 3}))
}
