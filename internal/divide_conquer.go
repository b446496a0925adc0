package internal

import (
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// Divide and conquer convex hull.
//
// Points are sorted lexicographically (x, then y) and split in half by index,
// which keeps the two halves separable by a line even when x values tie.
// Small sets are solved by brute force. Every sub-hull is a clockwise
// boundary without collinear points, and the merge walks two cursors to the
// upper and lower tangents and splices the outer chains together.

// Sets this small are solved by brute force.
const bruteForceThreshold = 5

type HullOption func(*hullOptions)

type hullOptions struct {
	parallelDepth int
}

// Run the two recursive halves concurrently for the top depth levels of the
// recursion. Merges stay sequential. Zero (the default) disables parallelism.
func WithParallelDepth(depth int) HullOption {
	return func(o *hullOptions) {
		o.parallelDepth = depth
	}
}

func DivideAndConquerHull(points []Point, opts ...HullOption) []Point {
	var options hullOptions
	for _, opt := range opts {
		opt(&options)
	}

	distinct := prepareHullInput("divide and conquer hull", points)
	sorted := NewSequence(distinct...)
	sorted.Sort(LessXY)
	return divideAndConquer(sorted.Items(), options.parallelDepth)
}

// points must be sorted by LessXY and distinct.
func divideAndConquer(points []Point, parallelDepth int) []Point {
	if len(points) <= bruteForceThreshold {
		return BruteForceHull(points)
	}

	mid := len(points) / 2
	var left, right []Point
	if parallelDepth > 0 {
		var group errgroup.Group
		group.Go(func() error {
			return Catch(func() { left = divideAndConquer(points[:mid], parallelDepth-1) })
		})
		group.Go(func() error {
			return Catch(func() { right = divideAndConquer(points[mid:], parallelDepth-1) })
		})
		if err := group.Wait(); err != nil {
			// Re-throw on this goroutine so the public API can recover it
			panic(GeometryError(err))
		}
	} else {
		left = divideAndConquer(points[:mid], 0)
		right = divideAndConquer(points[mid:], 0)
	}
	return MergeHulls(left, right)
}

// Brute force hull for small point sets. The directed edge a->b is a
// clockwise hull edge iff every other point is strictly right of it, or lies
// on the open segment between a and b. A collinear point beyond either end
// disqualifies the edge, which keeps only the farthest pair on a line.
//
// The result is clockwise, starting from the lexicographically lowest point.
func BruteForceHull(points []Point) []Point {
	distinct := RemoveDuplicates(points)
	n := len(distinct)
	if n <= 1 {
		return distinct
	}

	next := make([]int, n)
	for i := range next {
		next[i] = -1
	}
	for i, a := range distinct {
		for j, b := range distinct {
			if i == j {
				continue
			}
			if isClockwiseHullEdge(distinct, i, j) {
				if next[i] != -1 {
					fatalf("brute force hull found two edges leaving %v: to %v and %v", a, distinct[next[i]], b)
				}
				next[i] = j
			}
		}
	}

	start := 0
	for i, p := range distinct {
		if LessXY(p, distinct[start]) {
			start = i
		}
	}

	hull := []Point{distinct[start]}
	for i := next[start]; i != start; i = next[i] {
		if i == -1 || len(hull) >= n {
			fatalf("brute force hull did not close: %v", hull)
		}
		hull = append(hull, distinct[i])
	}
	return hull
}

func isClockwiseHullEdge(points []Point, i, j int) bool {
	a, b := points[i], points[j]
	for k, c := range points {
		if k == i || k == j {
			continue
		}
		switch Direction(a, b, c) {
		case 1:
			return false
		case 0:
			if !strictlyBetween(a, b, c) {
				return false
			}
		}
	}
	return true
}

// For c collinear with a and b: is c strictly inside the segment ab?
func strictlyBetween(a, b, c Point) bool {
	ab := b.Sub(a)
	ac := c.Sub(a)
	dot := ab.Dot(ac)
	return dot > 0 && dot < ab.Dot(ab)
}

// A position in a hull boundary that can step both ways around it.
type hullCursor struct {
	hull  []Point
	index int
}

func (c hullCursor) Point() Point {
	return c.hull[c.index]
}

// Next steps clockwise, Prev counterclockwise.
func (c hullCursor) Next() hullCursor {
	return hullCursor{hull: c.hull, index: CircularIndex(c.index+1, len(c.hull))}
}

func (c hullCursor) Prev() hullCursor {
	return hullCursor{hull: c.hull, index: CircularIndex(c.index-1, len(c.hull))}
}

// Merge two clockwise hulls whose point sets are separated by LessXY order:
// every point of left sorts before every point of right. The result is
// clockwise.
func MergeHulls(left, right []Point) []Point {
	if len(left) == 0 {
		return right
	}
	if len(right) == 0 {
		return left
	}

	leftStart := extremeIndex(left, func(a, b Point) bool { return LessXY(b, a) })
	rightStart := extremeIndex(right, LessXY)

	// Upper tangent: climb counterclockwise on the left hull and clockwise on
	// the right hull while the next point is above the bridge.
	upperLeft, upperRight := findTangent(
		hullCursor{left, leftStart}, hullCursor{right, rightStart},
		hullCursor.Prev, hullCursor.Next, 1,
	)
	// Lower tangent: descend the other way while the next point is below.
	lowerLeft, lowerRight := findTangent(
		hullCursor{left, leftStart}, hullCursor{right, rightStart},
		hullCursor.Next, hullCursor.Prev, -1,
	)

	merged := make([]Point, 0, len(left)+len(right))
	// Clockwise: across the upper bridge, down the right hull, back across the
	// lower bridge, up the left hull.
	for c := upperRight; ; c = c.Next() {
		merged = append(merged, c.Point())
		if c.index == lowerRight.index {
			break
		}
	}
	for c := lowerLeft; ; c = c.Next() {
		merged = append(merged, c.Point())
		if c.index == upperLeft.index {
			break
		}
	}

	if debugEnabled() {
		Logger().Debug("merged hulls",
			slog.Int("left", len(left)),
			slog.Int("right", len(right)),
			slog.Int("merged", len(merged)),
			slog.String("upper", upperLeft.Point().String()+"-"+upperRight.Point().String()),
			slog.String("lower", lowerLeft.Point().String()+"-"+lowerRight.Point().String()),
		)
	}
	return merged
}

// Walk two cursors until the line between them is a tangent to both hulls.
// side is the Direction that means "the candidate is on the wrong side of the
// bridge": 1 (left of left->right, above) for the upper tangent, -1 for the
// lower. A collinear candidate is taken only if it is strictly farther from
// the other cursor, so the tangent ends at extreme points.
//
// Every step moves the bridge outward or lengthens it along the same line, so
// the walk terminates; the step bound only guards against broken input.
func findTangent(
	l, r hullCursor,
	stepLeft, stepRight func(hullCursor) hullCursor,
	side int,
) (hullCursor, hullCursor) {
	limit := 2 * (len(l.hull) + len(r.hull) + 1)
	for steps := 0; ; steps++ {
		if steps > limit {
			fatalf("tangent search did not converge between %v and %v", l.hull, r.hull)
		}

		if candidate := stepLeft(l); shouldAdvance(l.Point(), r.Point(), l.Point(), candidate.Point(), r.Point(), side) {
			l = candidate
			continue
		}
		if candidate := stepRight(r); shouldAdvance(l.Point(), r.Point(), r.Point(), candidate.Point(), l.Point(), side) {
			r = candidate
			continue
		}
		return l, r
	}
}

// Should the cursor sitting at current move to candidate? The bridge runs
// from bridgeLeft to bridgeRight and anchor is its far end, seen from current.
func shouldAdvance(bridgeLeft, bridgeRight, current, candidate, anchor Point, side int) bool {
	d := Direction(bridgeLeft, bridgeRight, candidate)
	if d == side {
		return true
	}
	if d != 0 {
		return false
	}
	return candidate.Distance(anchor) > current.Distance(anchor)
}

// Index of the point that no other point beats under less.
func extremeIndex(points []Point, less func(a, b Point) bool) int {
	best := 0
	for i, p := range points {
		if less(p, points[best]) {
			best = i
		}
	}
	return best
}
