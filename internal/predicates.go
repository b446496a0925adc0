package internal

import "math"

// Orientation predicates. Everything else in the package is built on these.
//
// None of them use a tolerance: a turn is "straight" only when the determinant
// is exactly zero, so nearly collinear inputs are classified by whatever the
// floating point arithmetic happens to produce.

// Twice the signed area of the triangle abc. Positive iff a->b->c turns left
// (counterclockwise) in a y-up coordinate frame.
func SignedArea2(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// Sign of SignedArea2: 1 for a left turn, -1 for a right turn, 0 only when
// exactly collinear.
func Direction(a, b, c Point) int {
	return sign(SignedArea2(a, b, c))
}

// Sign of the volume of the tetrahedron abcd, computed as (b-a)×(c-a)·(d-a).
func Direction3(a, b, c, d Point3) int {
	normal := b.Sub(a).Cross(c.Sub(a))
	return sign(d.Sub(a).Dot(normal))
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// Reports whether a sorts before b when walking clockwise around center,
// starting from twelve o'clock. The tie-break chain, in order:
//
//  1. Points at or right of center.X come before points left of it.
//  2. When both lie exactly on center.X: if either is at or above center.Y the
//     higher one comes first, otherwise the lower one does.
//  3. The sign of det(a-center, b-center): negative means b is clockwise of a.
//  4. Exactly collinear with center: the farther point comes first.
//
// No trigonometry is involved, so the ordering is exact for exact inputs.
func Clockwise(a, b, center Point) bool {
	if a.X >= center.X && b.X < center.X {
		return true
	}
	if a.X < center.X && b.X >= center.X {
		return false
	}
	if a.X == center.X && b.X == center.X {
		if a.Y >= center.Y || b.Y >= center.Y {
			return a.Y > b.Y
		}
		return b.Y > a.Y
	}

	d := a.Sub(center).Cross(b.Sub(center))
	if d < 0 {
		return true
	}
	if d > 0 {
		return false
	}
	return a.Distance(center) > b.Distance(center)
}

func CounterClockwise(a, b, center Point) bool {
	return !Clockwise(a, b, center)
}

// Lexicographic ordering: x first, then y.
func LessXY(a, b Point) bool {
	if a.X == b.X {
		return a.Y < b.Y
	}
	return a.X < b.X
}

func LessY(a, b Point) bool {
	return a.Y < b.Y
}

func LessZ(a, b Point3) bool {
	return a.Z < b.Z
}

// Barycentric weights of p with respect to the triangle abc, so that
// p = alpha*a + beta*b + gamma*c. For a zero-area triangle all three weights
// are NaN.
func Barycentric(a, b, c, p Point) (alpha, beta, gamma float64) {
	ab := b.Sub(a)
	ac := c.Sub(a)
	ap := p.Sub(a)

	// Normals to AC and AB
	nAC := Point{X: a.Y - c.Y, Y: c.X - a.X}
	nAB := Point{X: a.Y - b.Y, Y: b.X - a.X}

	betaDenominator := ab.Dot(nAC)
	gammaDenominator := ac.Dot(nAB)
	if betaDenominator == 0 || gammaDenominator == 0 {
		return math.NaN(), math.NaN(), math.NaN()
	}

	beta = ap.Dot(nAC) / betaDenominator
	gamma = ap.Dot(nAB) / gammaDenominator
	alpha = 1 - beta - gamma
	return alpha, beta, gamma
}

// Inclusive point in triangle test. Points on the boundary are inside. A
// degenerate triangle contains nothing.
func PointInTriangle(a, b, c, p Point) bool {
	alpha, beta, gamma := Barycentric(a, b, c, p)
	return inUnitInterval(alpha) && inUnitInterval(beta) && inUnitInterval(gamma)
}

// NaN fails both comparisons
func inUnitInterval(v float64) bool {
	return v >= 0 && v <= 1
}
