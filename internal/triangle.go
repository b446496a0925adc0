package internal

import (
	"fmt"
	"math"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/polygeom/dbg"
)

// Triangles are always counterclockwise. NewTriangle keeps A in place and
// swaps B and C if the input winds the other way. A degenerate triangle keeps
// its input order.
type Triangle struct {
	A, B, C Point
}

// A triangle in space, as produced by the 3D hull. Faces are oriented so the
// normal (B-A)×(C-A) points away from the hull.
type Triangle3 struct {
	A, B, C Point3
}

func NewTriangle(a, b, c Point) Triangle {
	if SignedArea2(a, b, c) < 0 {
		b, c = c, b
	}
	return Triangle{A: a, B: b, C: c}
}

func (t Triangle) SignedArea() float64 {
	return SignedArea2(t.A, t.B, t.C) / 2
}

func (t Triangle) Area() float64 {
	return math.Abs(t.SignedArea())
}

func (t Triangle) Perimeter() float64 {
	return t.A.Distance(t.B) + t.B.Distance(t.C) + t.C.Distance(t.A)
}

func (t Triangle) Centroid() Point {
	return t.A.Add(t.B).Add(t.C).Scale(1.0 / 3)
}

func (t Triangle) Contains(p Point) bool {
	return PointInTriangle(t.A, t.B, t.C, p)
}

func (t Triangle) Barycentric(p Point) (alpha, beta, gamma float64) {
	return Barycentric(t.A, t.B, t.C, p)
}

func (t Triangle) IsCCW() bool {
	return SignedArea2(t.A, t.B, t.C) > 0
}

// The vertices as a counterclockwise polygon
func (t Triangle) Polygon() Polygon {
	return Polygon{Points: []Point{t.A, t.B, t.C}}
}

// Same three vertices, regardless of rotation.
func (t Triangle) SameVertices(other Triangle) bool {
	set := PointSet{}
	set.Add(t.A)
	set.Add(t.B)
	set.Add(t.C)
	otherSet := PointSet{}
	otherSet.Add(other.A)
	otherSet.Add(other.B)
	otherSet.Add(other.C)
	return set.Equals(otherSet)
}

func (t Triangle) String() string {
	return fmt.Sprintf("Triangle{%v, %v, %v}", t.A, t.B, t.C)
}

// Colored, named representation for terminal debugging. Zero area triangles
// are red.
func (t Triangle) DbgString() string {
	name := dbg.Name(t)
	if t.SignedArea() == 0 {
		name = aurora.Red(name).String()
	} else {
		name = aurora.Green(name).String()
	}
	return fmt.Sprintf("%s %v %v %v", name, t.A, t.B, t.C)
}

func TriangleArea(triangles []Triangle) float64 {
	var area float64
	for _, t := range triangles {
		area += t.Area()
	}
	return area
}

func (t Triangle3) Normal() Point3 {
	return t.B.Sub(t.A).Cross(t.C.Sub(t.A))
}

func (t Triangle3) Area() float64 {
	return t.Normal().Length() / 2
}

func (t Triangle3) MinZ() float64 {
	return math.Min(math.Min(t.A.Z, t.B.Z), t.C.Z)
}

func (t Triangle3) String() string {
	return fmt.Sprintf("Triangle3{%v, %v, %v}", t.A, t.B, t.C)
}
