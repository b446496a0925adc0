// Lower level access to the geometry engine: the ordered point sequence and
// its quicksort, stepwise ear clipping with the vertex classification exposed,
// and the pieces of the divide and conquer hull.
//
// Most callers want the top level polygeom package instead.
package advanced

import (
	"github.com/osuushi/polygeom/internal"
)

type Point = internal.Point
type Triangle = internal.Triangle
type VertexKind = internal.VertexKind
type Classification = internal.Classification

const (
	Convex = internal.Convex
	Reflex = internal.Reflex
)

// An ordered, index addressed point collection.
type PointSequence = internal.Sequence[internal.Point]

func NewPointSequence(points ...Point) *PointSequence {
	return internal.NewSequence(points...)
}

// Positional sequence operations that report a bad index as an
// *InvalidIndexError instead of panicking.

func At(seq *PointSequence, i int) (p Point, err error) {
	err = internal.Catch(func() { p = seq.At(i) })
	return p, err
}

func InsertAt(seq *PointSequence, i int, p Point) error {
	return internal.Catch(func() { seq.Insert(i, p) })
}

func RemoveAt(seq *PointSequence, i int) (p Point, err error) {
	err = internal.Catch(func() { p = seq.Remove(i) })
	return p, err
}

// In place quicksort, pivoting on the last element of each range. Not stable.
func Quicksort[T any](items []T, less func(a, b T) bool) {
	internal.Quicksort(items, less)
}

func SignedArea2(a, b, c Point) float64 {
	return internal.SignedArea2(a, b, c)
}

// The angular comparison behind SortVertices: does a come before b walking
// clockwise around center from twelve o'clock?
func Clockwise(a, b, center Point) bool {
	return internal.Clockwise(a, b, center)
}

func SortClockwiseAround(points []Point, reference Point) []Point {
	return internal.SortClockwiseAround(points, reference)
}

func SortCounterClockwiseAround(points []Point, reference Point) []Point {
	return internal.SortCounterClockwiseAround(points, reference)
}

// Stepwise ear clipping over a clockwise polygon.
type EarClipper struct {
	clipper *internal.EarClipper
}

// points must wind clockwise; polygeom.SortVertices produces such a sequence.
func NewEarClipper(points []Point) (c *EarClipper, err error) {
	err = internal.Catch(func() {
		c = &EarClipper{clipper: internal.NewEarClipper(points)}
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Clip the next queued ear. Returns a *TriangulationStalledError if there are
// no ears left before the polygon is done, and the zero Triangle once it is.
func (c *EarClipper) Step() (t Triangle, err error) {
	if c.Done() {
		return Triangle{}, nil
	}
	err = internal.Catch(func() { t = c.clipper.Step() })
	return t, err
}

func (c *EarClipper) Done() bool {
	return c.clipper.Done()
}

func (c *EarClipper) Classification() Classification {
	return c.clipper.Classification()
}

// Triangles clipped so far.
func (c *EarClipper) Triangles() []Triangle {
	return c.clipper.Triangles()
}

// The base case of the divide and conquer hull. Clockwise.
func BruteForceHull(points []Point) (hull []Point, err error) {
	err = internal.Catch(func() { hull = internal.BruteForceHull(points) })
	return hull, err
}

// Merge two clockwise hulls where every point of left sorts before every
// point of right by x, then y.
func MergeHulls(left, right []Point) (hull []Point, err error) {
	err = internal.Catch(func() { hull = internal.MergeHulls(left, right) })
	return hull, err
}
