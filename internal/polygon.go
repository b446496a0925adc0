package internal

type Polygon struct {
	Points []Point
}

// Shoelace formula. Positive for counterclockwise polygons.
func (poly Polygon) SignedArea() float64 {
	var sum float64
	n := len(poly.Points)
	for i, p := range poly.Points {
		next := poly.Points[CircularIndex(i+1, n)]
		sum += p.Cross(next)
	}
	return sum / 2
}

func (poly Polygon) Area() float64 {
	area := poly.SignedArea()
	if area < 0 {
		return -area
	}
	return area
}

// Sum of the distances between successive vertices, including the closing edge.
func (poly Polygon) Perimeter() float64 {
	var perimeter float64
	n := len(poly.Points)
	for i, p := range poly.Points {
		perimeter += p.Distance(poly.Points[CircularIndex(i+1, n)])
	}
	return perimeter
}

func (poly Polygon) IsCCW() bool {
	return poly.SignedArea() > 0
}

func (poly Polygon) IsCW() bool {
	return poly.SignedArea() < 0
}

func (poly Polygon) Centroid() Point {
	return Centroid(poly.Points)
}

// Even-odd rule point-in-polygon. This is provided primarily for testing
// hulls and triangulations.
func (poly Polygon) ContainsPointByEvenOdd(p Point) bool {
	return poly.CrossingCount(p)%2 == 1
}

// Number of polygon edges crossed by a ray cast from p in the +x direction.
func (poly Polygon) CrossingCount(p Point) int {
	crossingCount := 0
	n := len(poly.Points)
	for i, vertex := range poly.Points {
		next := poly.Points[CircularIndex(i+1, n)]
		if (vertex.Y > p.Y) == (next.Y > p.Y) {
			continue
		}
		// x coordinate where the edge crosses the horizontal through p
		x := vertex.X + (p.Y-vertex.Y)*(next.X-vertex.X)/(next.Y-vertex.Y)
		if x > p.X {
			crossingCount++
		}
	}
	return crossingCount
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{Points: make([]Point, 0, len(poly.Points))}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}

// Reports whether p is inside or on the boundary of a convex polygon of either
// winding. Hull boundaries of one or two points contain only points on them.
func ConvexContains(boundary []Point, p Point) bool {
	n := len(boundary)
	switch n {
	case 0:
		return false
	case 1:
		return boundary[0] == p
	}

	side := 0
	for i, a := range boundary {
		b := boundary[CircularIndex(i+1, n)]
		d := Direction(a, b, p)
		if d == 0 {
			continue
		}
		if side == 0 {
			side = d
		} else if d != side {
			return false
		}
	}
	if side == 0 {
		// Collinear with every edge: must lie within the extent of the segment(s)
		return onSegmentBounds(boundary, p)
	}
	return true
}

func onSegmentBounds(points []Point, p Point) bool {
	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, q := range points[1:] {
		if q.X < minX {
			minX = q.X
		}
		if q.X > maxX {
			maxX = q.X
		}
		if q.Y < minY {
			minY = q.Y
		}
		if q.Y > maxY {
			maxY = q.Y
		}
	}
	return p.X >= minX && p.X <= maxX && p.Y >= minY && p.Y <= maxY
}
