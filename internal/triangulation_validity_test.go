package internal

// This contains no actual tests. It is just a helper for testing triangulation
// validity.

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Helper to check that a triangulation is valid. The rules are:
// 1. The set of points in the triangles must equal the set of points in the polygon.
// 2. The set of line segments in the polygon is a subset of the set of line segments in the triangles.
// 3. Every triangle is counterclockwise
// 4. No triangle has zero area
// 5. The sum of the areas of all triangles is equal to the area of the polygon.
//
// The polygon may wind either way.
func AssertValidTriangulation(t *testing.T, polygon Polygon, triangles []Triangle) {
	t.Helper()
	require.Len(t, triangles, len(polygon.Points)-2, "a polygon of N vertices has N-2 triangles")

	polyPoints := make(PointSet)
	for _, p := range polygon.Points {
		polyPoints.Add(p)
	}
	trianglePoints := make(PointSet)
	for _, tri := range triangles {
		trianglePoints.Add(tri.A)
		trianglePoints.Add(tri.B)
		trianglePoints.Add(tri.C)
	}

	require.True(t, polyPoints.Equals(trianglePoints), "set of points in the triangles must equal the set of points in the polygon")

	var triangleArea float64
	triangleSegmentSet := make(normalizedSegmentSet)
	for _, tri := range triangles {
		require.True(t, tri.IsCCW(), "clockwise or degenerate triangle: %s", tri)
		triangleArea += tri.Area()
		triangleSegmentSet.add(tri.A, tri.B)
		triangleSegmentSet.add(tri.B, tri.C)
		triangleSegmentSet.add(tri.C, tri.A)
	}

	for i, p1 := range polygon.Points {
		p2 := polygon.Points[CircularIndex(i+1, len(polygon.Points))]
		require.True(t, triangleSegmentSet.contains(p1, p2), "segment %v-%v of the polygon is not in the set of segments in the triangles", p1, p2)
	}

	require.InDelta(t, polygon.Area(), triangleArea, 1e-9*(1+polygon.Area()), "sum of the areas of all triangles must equal the area of the polygon")
}

// A line segment with its endpoints in LessXY order, so both directions of
// an edge compare equal.
type normalizedSegment struct {
	lower, upper Point
}

func newNormalizedSegment(a, b Point) normalizedSegment {
	if LessXY(a, b) {
		return normalizedSegment{a, b}
	}
	return normalizedSegment{b, a}
}

type normalizedSegmentSet map[normalizedSegment]struct{}

func (set normalizedSegmentSet) add(a, b Point) {
	set[newNormalizedSegment(a, b)] = struct{}{}
}

func (set normalizedSegmentSet) contains(a, b Point) bool {
	_, ok := set[newNormalizedSegment(a, b)]
	return ok
}
