package internal

// Strategy selects a 2D convex hull algorithm.
type Strategy int

const (
	GrahamScan Strategy = iota
	DivideAndConquer
)

func (s Strategy) String() string {
	switch s {
	case GrahamScan:
		return "graham"
	case DivideAndConquer:
		return "divide"
	default:
		return "unknown"
	}
}

// Clean up hull input: at least three points must be given, and at least two
// of them must be distinct. Exact duplicates are dropped.
func prepareHullInput(op string, points []Point) []Point {
	if len(points) < 3 {
		throw(&DegenerateInputError{Op: op, Count: len(points), Reason: "need at least 3 points"})
	}
	distinct := RemoveDuplicates(points)
	if len(distinct) < 2 {
		throw(&DegenerateInputError{Op: op, Count: len(points), Reason: "fewer than 2 distinct points"})
	}
	return distinct
}

// Compute the convex hull with the chosen strategy. The Graham scan returns a
// counterclockwise boundary; divide and conquer returns a clockwise one.
// Collinear boundary points are excluded, so collinear input reduces to its
// two extreme points.
func ConvexHull2D(points []Point, strategy Strategy, opts ...HullOption) []Point {
	switch strategy {
	case GrahamScan:
		return GrahamScanHull(points)
	case DivideAndConquer:
		return DivideAndConquerHull(points, opts...)
	default:
		fatalf("unknown hull strategy: %d", strategy)
		return nil
	}
}

// Graham scan. The pivot is the lowest point (leftmost among ties). Every
// other point is sorted counterclockwise about it, nearer points first when
// collinear, and the stack drops any point that does not make a strict left
// turn. The result is counterclockwise and starts at the pivot.
func GrahamScanHull(points []Point) []Point {
	distinct := prepareHullInput("graham scan", points)

	pivot := distinct[0]
	for _, p := range distinct[1:] {
		if p.Y < pivot.Y || (p.Y == pivot.Y && p.X < pivot.X) {
			pivot = p
		}
	}

	sorted := SortCounterClockwiseAround(distinct, pivot)

	stack := make(PointStack, 0, len(sorted))
	for _, p := range sorted {
		for stack.Len() > 1 {
			top, _ := stack.Peek()
			second, _ := stack.PeekSecond()
			if Direction(second, top, p) > 0 {
				break
			}
			stack.Pop()
		}
		stack.Push(p)
	}
	return []Point(stack)
}
