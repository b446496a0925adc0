package internal

import (
	"fmt"
	"math"
)

// Points are plain values. Equality is exact floating point equality, which is
// what every "is this the same vertex" test in the package relies on. Nothing
// here rounds or snaps coordinates.
type Point struct {
	X float64
	Y float64
}

// A point in space. The 3D hull works on these directly, and the angular sort
// accepts them when they are co-planar with a fixed Z.
type Point3 struct {
	X float64
	Y float64
	Z float64
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// The z component of the cross product of the two vectors extended into 3D.
// This is the 2x2 determinant det([p q]).
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Returns the zero vector unchanged rather than producing NaNs.
func (p Point) Normalize() Point {
	length := p.Length()
	if length == 0 {
		return p
	}
	return p.Scale(1 / length)
}

func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

func (p Point) Equal(q Point) bool {
	return p == q
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

func (p Point3) Add(q Point3) Point3 {
	return Point3{X: p.X + q.X, Y: p.Y + q.Y, Z: p.Z + q.Z}
}

func (p Point3) Sub(q Point3) Point3 {
	return Point3{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}

func (p Point3) Scale(s float64) Point3 {
	return Point3{X: p.X * s, Y: p.Y * s, Z: p.Z * s}
}

func (p Point3) Dot(q Point3) float64 {
	return p.X*q.X + p.Y*q.Y + p.Z*q.Z
}

func (p Point3) Cross(q Point3) Point3 {
	return Point3{
		X: p.Y*q.Z - p.Z*q.Y,
		Y: p.Z*q.X - p.X*q.Z,
		Z: p.X*q.Y - p.Y*q.X,
	}
}

func (p Point3) Length() float64 {
	return math.Sqrt(p.Dot(p))
}

func (p Point3) Normalize() Point3 {
	length := p.Length()
	if length == 0 {
		return p
	}
	return p.Scale(1 / length)
}

// Drop the Z coordinate
func (p Point3) XY() Point {
	return Point{X: p.X, Y: p.Y}
}

func (p Point3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", p.X, p.Y, p.Z)
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

type PointStack []Point

func (s *PointStack) Push(p Point) {
	*s = append(*s, p)
}

// Pop and Peek return ok=false on an empty stack.
func (s *PointStack) Pop() (Point, bool) {
	if len(*s) == 0 {
		return Point{}, false
	}
	p := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return p, true
}

func (s *PointStack) Peek() (Point, bool) {
	if len(*s) == 0 {
		return Point{}, false
	}
	return (*s)[len(*s)-1], true
}

// The element just under the top of the stack.
func (s *PointStack) PeekSecond() (Point, bool) {
	if len(*s) < 2 {
		return Point{}, false
	}
	return (*s)[len(*s)-2], true
}

func (s *PointStack) Empty() bool {
	return len(*s) == 0
}

func (s *PointStack) Len() int {
	return len(*s)
}

type PointSet map[Point]struct{}

func (set PointSet) Add(p Point) {
	set[p] = struct{}{}
}

func (set PointSet) Contains(p Point) bool {
	_, ok := set[p]
	return ok
}

func (set PointSet) Equals(other PointSet) bool {
	if len(set) != len(other) {
		return false
	}
	for p := range set {
		if !other.Contains(p) {
			return false
		}
	}
	return true
}
