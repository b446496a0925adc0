// Planar computational geometry for a small software rasterizer.
//
// This package sorts point sets into a consistent clockwise winding,
// triangulates simple polygons by ear clipping, and computes convex hulls of
// point sets with either a Graham scan or a divide and conquer algorithm. A
// brute force 3D hull is provided for small point clouds.
//
// All functions are pure: they never retain or modify the caller's slices and
// keep no state between calls. Equality between points is exact floating
// point equality.
package polygeom

import (
	"log/slog"

	"github.com/osuushi/polygeom/internal"
)

type Point = internal.Point
type Point3 = internal.Point3
type Triangle = internal.Triangle
type Triangle3 = internal.Triangle3
type Polygon = internal.Polygon

type Strategy = internal.Strategy

const (
	GrahamScan       = internal.GrahamScan
	DivideAndConquer = internal.DivideAndConquer
)

type HullOption = internal.HullOption

// Run the recursive halves of the divide and conquer hull concurrently for the
// top depth levels. Ignored by the Graham scan.
func WithParallelDepth(depth int) HullOption {
	return internal.WithParallelDepth(depth)
}

// Errors returned by this package. Use errors.As to check for them.
type (
	DegenerateInputError      = internal.DegenerateInputError
	TriangulationStalledError = internal.TriangulationStalledError
	InvalidIndexError         = internal.InvalidIndexError
)

// Send debug records from the algorithms to l. Nothing is logged by default.
func SetLogger(l *slog.Logger) {
	internal.SetLogger(l)
}

// Triangulate a point set as a polygon. The points are first sorted clockwise
// around their centroid and exact duplicates are dropped, so the result covers
// the caller's polygon only if it is star-shaped about its centroid. Use
// TriangulatePolygon to keep the given vertex order.
//
// A polygon of N distinct vertices yields N-2 counterclockwise triangles.
// Fewer than three distinct points is a *DegenerateInputError, and a
// self-intersecting result of the sort is a *TriangulationStalledError.
func Triangulate(points []Point) (result []Triangle, err error) {
	err = internal.Catch(func() {
		result = internal.Triangulate(points)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Triangulate a simple polygon given in order, in either winding.
func TriangulatePolygon(points []Point) (result []Triangle, err error) {
	err = internal.Catch(func() {
		result = internal.TriangulatePolygon(points)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Sort points clockwise around their centroid, starting from twelve o'clock.
func SortVertices(points []Point) []Point {
	return internal.SortVertices(points)
}

// SortVertices for co-planar 3D points with a fixed Z.
func SortVertices3(points []Point3) []Point3 {
	return internal.SortVertices3(points)
}

// Compute the boundary of the convex hull of points. Graham scan boundaries
// are counterclockwise, divide and conquer boundaries are clockwise; neither
// includes points in the middle of an edge. Exact duplicates are ignored, and
// collinear input yields its two extreme points.
func ConvexHull2D(points []Point, strategy Strategy, opts ...HullOption) (result []Point, err error) {
	err = internal.Catch(func() {
		result = internal.ConvexHull2D(points, strategy, opts...)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Brute force 3D convex hull, with outward facing triangles sorted by their
// lowest Z. Only suitable for a few dozen points.
func ConvexHull3D(points []Point3) (result []Triangle3, err error) {
	err = internal.Catch(func() {
		result = internal.ConvexHull3D(points)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Inclusive point in triangle test.
func PointInTriangle(a, b, c, p Point) bool {
	return internal.PointInTriangle(a, b, c, p)
}

// Barycentric weights of p in triangle abc. NaN for a degenerate triangle.
func Barycentric(a, b, c, p Point) (alpha, beta, gamma float64) {
	return internal.Barycentric(a, b, c, p)
}

// Orientation of c relative to the directed line ab: 1 left, -1 right, 0 on.
func Direction(a, b, c Point) int {
	return internal.Direction(a, b, c)
}

func NewTriangle(a, b, c Point) Triangle {
	return internal.NewTriangle(a, b, c)
}
