package internal

// Angular sorting. SortVertices is how the package canonicalizes a polygon's
// winding: whatever order the caller gives, the output runs clockwise around
// the centroid, starting from twelve o'clock.

func Centroid(points []Point) Point {
	var c Point
	if len(points) == 0 {
		return c
	}
	for _, p := range points {
		c = c.Add(p)
	}
	return c.Scale(1 / float64(len(points)))
}

// Sort points clockwise about their centroid. This is an insertion sort, which
// is stable, so sorting an already sorted sequence leaves it untouched.
//
// If every point is collinear, the centroid lies on the line and the result
// is ordered purely by the distance tie-break.
func SortVertices(points []Point) []Point {
	sorted := make([]Point, len(points))
	copy(sorted, points)
	center := Centroid(sorted)

	for k := 1; k < len(sorted); k++ {
		for i := k; i > 0 && Clockwise(sorted[i], sorted[i-1], center); i-- {
			sorted[i], sorted[i-1] = sorted[i-1], sorted[i]
		}
	}
	return sorted
}

// SortVertices for co-planar points with a fixed Z. Only X and Y take part in
// the ordering; Z is carried through untouched.
func SortVertices3(points []Point3) []Point3 {
	sorted := make([]Point3, len(points))
	copy(sorted, points)

	flat := make([]Point, len(points))
	for i, p := range points {
		flat[i] = p.XY()
	}
	center := Centroid(flat)

	for k := 1; k < len(sorted); k++ {
		for i := k; i > 0 && Clockwise(sorted[i].XY(), sorted[i-1].XY(), center); i-- {
			sorted[i], sorted[i-1] = sorted[i-1], sorted[i]
		}
	}
	return sorted
}

// Sort points clockwise about an arbitrary reference point using the generic
// quicksort. Unlike SortVertices this is not stable.
func SortClockwiseAround(points []Point, reference Point) []Point {
	sorted := make([]Point, len(points))
	copy(sorted, points)
	Quicksort(sorted, func(a, b Point) bool {
		return Clockwise(a, b, reference)
	})
	return sorted
}

// Sort points counterclockwise about reference: angle ascending from the
// positive x axis, nearer points first on ties. This is the ordering that
// seeds the Graham scan, where reference is the lowest point, so every other
// point lies in the upper half plane.
func SortCounterClockwiseAround(points []Point, reference Point) []Point {
	sorted := make([]Point, len(points))
	copy(sorted, points)
	Quicksort(sorted, func(a, b Point) bool {
		return counterClockwiseAbout(a, b, reference)
	})
	return sorted
}

// Angle-ascending order about reference, for points in the closed upper half
// plane of reference (with points on the reference row only to its right).
// The reference itself sorts first.
func counterClockwiseAbout(a, b, reference Point) bool {
	d := SignedArea2(reference, a, b)
	if d != 0 {
		return d > 0
	}
	return a.Distance(reference) < b.Distance(reference)
}
