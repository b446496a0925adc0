package internal

import "log/slog"

// Ear clipping triangulation.
//
// The clipper works on a clockwise vertex sequence. For vertex k, "left" is
// the live vertex before it and "right" is the live vertex after it. The local
// turn at k is measured walking the other way around (right -> k -> left),
// which is counterclockwise, so a convex vertex has a non-negative turn and a
// reflex vertex a negative one.
//
// Vertices are never physically removed. A clipped vertex is marked removed,
// and neighbor lookups walk past removed indices.

type VertexKind int

const (
	Convex VertexKind = iota
	Reflex
)

func (k VertexKind) String() string {
	if k == Reflex {
		return "reflex"
	}
	return "convex"
}

// A snapshot of the clipper's bookkeeping. Every live vertex is in exactly one
// of Convex and Reflex, and may also be in Ears. Ears is in queue order.
type Classification struct {
	Convex  []int
	Reflex  []int
	Ears    []int
	Removed []int
}

type EarClipper struct {
	points    []Point
	kinds     []VertexKind
	ears      *Sequence[int]
	removed   []bool
	remaining int
	triangles []Triangle
}

// Set up a clipper for a clockwise polygon of at least three vertices, and
// run the initial classification.
func NewEarClipper(points []Point) *EarClipper {
	if len(points) < 3 {
		throw(&DegenerateInputError{Op: "ear clipping", Count: len(points), Reason: "need at least 3 vertices"})
	}
	c := &EarClipper{
		points:    points,
		kinds:     make([]VertexKind, len(points)),
		ears:      NewSequence[int](),
		removed:   make([]bool, len(points)),
		remaining: len(points),
		triangles: make([]Triangle, 0, len(points)-2),
	}

	for k := range points {
		c.kinds[k] = c.classify(k)
	}
	for k := range points {
		if c.kinds[k] == Convex && c.isEar(k) {
			c.ears.Append(k)
		}
	}
	return c
}

func (c *EarClipper) Expected() int {
	return len(c.points) - 2
}

func (c *EarClipper) Done() bool {
	return len(c.triangles) >= c.Expected()
}

func (c *EarClipper) Triangles() []Triangle {
	return c.triangles
}

// Clip a single ear, returning the triangle it produced. Throws
// *TriangulationStalledError if there is no ear to clip.
func (c *EarClipper) Step() Triangle {
	if c.Done() {
		fatalf("ear clipper stepped after completion")
	}
	if c.ears.Len() == 0 {
		c.rescan()
	}
	if c.ears.Len() == 0 {
		if debugEnabled() {
			Logger().Debug("triangulation stalled",
				slog.Int("emitted", len(c.triangles)),
				slog.Int("remaining", c.remaining),
			)
		}
		throw(&TriangulationStalledError{
			Emitted:   len(c.triangles),
			Expected:  c.Expected(),
			Remaining: c.remaining,
		})
	}

	v := c.ears.Remove(0)
	left := c.leftOf(v)
	right := c.rightOf(v)

	triangle := NewTriangle(c.points[right], c.points[v], c.points[left])
	c.triangles = append(c.triangles, triangle)
	c.removed[v] = true
	c.remaining--

	if debugEnabled() {
		Logger().Debug("clipped ear",
			slog.Int("vertex", v),
			slog.String("triangle", triangle.String()),
			slog.Int("remaining", c.remaining),
		)
	}

	if !c.Done() {
		c.update(left)
		c.update(right)
	}
	return triangle
}

// Clip until the polygon is fully triangulated.
func (c *EarClipper) Run() []Triangle {
	for !c.Done() {
		c.Step()
	}
	return c.triangles
}

func (c *EarClipper) Classification() Classification {
	var result Classification
	for k := range c.points {
		if c.removed[k] {
			result.Removed = append(result.Removed, k)
			continue
		}
		if c.kinds[k] == Reflex {
			result.Reflex = append(result.Reflex, k)
		} else {
			result.Convex = append(result.Convex, k)
		}
	}
	result.Ears = c.ears.Items()
	return result
}

// Re-evaluate a neighbor of a clipped ear. A reflex vertex can only become
// convex by losing a neighbor, never the other way around, so convex vertices
// only need their ear status refreshed.
func (c *EarClipper) update(k int) {
	if c.kinds[k] == Reflex {
		if c.turn(k) < 0 {
			return
		}
		c.kinds[k] = Convex
	}

	index := c.ears.IndexOf(k)
	isEar := c.isEar(k)
	if isEar && index == -1 {
		c.ears.Append(k)
	} else if !isEar && index != -1 {
		c.ears.Remove(index)
	}
}

// Only neighbors of a clipped ear are updated after each step. A reflex vertex
// that gets promoted can unblock an ear elsewhere, so before giving up, check
// every live convex vertex again.
func (c *EarClipper) rescan() {
	for k, kind := range c.kinds {
		if kind == Convex && !c.removed[k] && c.isEar(k) {
			c.ears.Append(k)
		}
	}
}

func (c *EarClipper) classify(k int) VertexKind {
	if c.turn(k) < 0 {
		return Reflex
	}
	return Convex
}

// Twice the signed area of the turn at k through its live neighbors, walking
// counterclockwise.
func (c *EarClipper) turn(k int) float64 {
	return SignedArea2(c.points[c.rightOf(k)], c.points[k], c.points[c.leftOf(k)])
}

// A convex vertex is an ear if no live reflex vertex lies inside (or on) the
// triangle it forms with its neighbors. Only reflex vertices can poke into
// that triangle for a simple polygon, so convex vertices are not tested.
func (c *EarClipper) isEar(k int) bool {
	left := c.leftOf(k)
	right := c.rightOf(k)
	a, b, p := c.points[left], c.points[k], c.points[right]

	for j, kind := range c.kinds {
		if kind != Reflex || c.removed[j] || j == left || j == k || j == right {
			continue
		}
		q := c.points[j]
		if q == a || q == b || q == p {
			continue
		}
		if PointInTriangle(a, b, p, q) {
			return false
		}
	}
	return true
}

func (c *EarClipper) leftOf(k int) int {
	n := len(c.points)
	i := CircularIndex(k-1, n)
	for c.removed[i] {
		i = CircularIndex(i-1, n)
	}
	return i
}

func (c *EarClipper) rightOf(k int) int {
	n := len(c.points)
	i := CircularIndex(k+1, n)
	for c.removed[i] {
		i = CircularIndex(i+1, n)
	}
	return i
}

// Triangulate a point set: sort it clockwise about its centroid, drop exact
// duplicates, and clip ears. The triangles refer to the sorted polygon, which
// is the caller's polygon only if it is star-shaped about its centroid.
func Triangulate(points []Point) []Triangle {
	if len(points) < 3 {
		throw(&DegenerateInputError{Op: "triangulate", Count: len(points), Reason: "need at least 3 points"})
	}
	sorted := RemoveDuplicates(SortVertices(points))
	if len(sorted) < 3 {
		throw(&DegenerateInputError{Op: "triangulate", Count: len(points), Reason: "fewer than 3 distinct points"})
	}
	return NewEarClipper(sorted).Run()
}

// Triangulate a polygon in the caller's vertex order. Either winding is
// accepted. Consecutive duplicate vertices (including the closing pair) are
// dropped.
func TriangulatePolygon(points []Point) []Triangle {
	if len(points) < 3 {
		throw(&DegenerateInputError{Op: "triangulate polygon", Count: len(points), Reason: "need at least 3 points"})
	}
	cleaned := RemoveConsecutiveDuplicates(points)
	for len(cleaned) > 1 && cleaned[0] == cleaned[len(cleaned)-1] {
		cleaned = cleaned[:len(cleaned)-1]
	}
	if len(cleaned) < 3 {
		throw(&DegenerateInputError{Op: "triangulate polygon", Count: len(points), Reason: "fewer than 3 distinct vertices"})
	}

	poly := Polygon{Points: cleaned}
	if poly.IsCCW() {
		poly = poly.Reverse()
	}
	return NewEarClipper(poly.Points).Run()
}
