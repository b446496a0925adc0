package internal

// Brute force 3D convex hull. For every triple of points, the plane through
// them is a hull face iff all the remaining points lie on one side of it.
// That is O(n^4), so this is only meant for a few dozen points.
//
// Points coplanar with a candidate face are ignored when deciding the side.
// As a consequence, a hull face with four or more coplanar points comes back
// as every triangle over those points, not as a minimal triangulation.
func ConvexHull3D(points []Point3) []Triangle3 {
	if len(points) < 3 {
		throw(&DegenerateInputError{Op: "3d hull", Count: len(points), Reason: "need at least 3 points"})
	}

	distinct := RemoveDuplicates(points)
	if len(distinct) < 3 {
		throw(&DegenerateInputError{Op: "3d hull", Count: len(points), Reason: "fewer than 3 distinct points"})
	}

	var faces []Triangle3
	n := len(distinct)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				a, b, c := distinct[i], distinct[j], distinct[k]
				// Collinear triples have no plane
				if b.Sub(a).Cross(c.Sub(a)) == (Point3{}) {
					continue
				}

				side, ok := faceSide(distinct, a, b, c)
				if !ok {
					continue
				}
				// Orient the face so the rest of the hull is behind it
				if side > 0 {
					b, c = c, b
				}
				faces = append(faces, Triangle3{A: a, B: b, C: c})
			}
		}
	}

	if len(faces) == 0 {
		throw(&DegenerateInputError{Op: "3d hull", Count: len(points), Reason: "all points are collinear"})
	}

	Quicksort(faces, func(s, t Triangle3) bool {
		return s.MinZ() < t.MinZ()
	})
	return faces
}

// Which side of the plane abc every other point is on: 1, -1, or 0 if all of
// them are coplanar. ok is false if points lie on both sides.
func faceSide(points []Point3, a, b, c Point3) (side int, ok bool) {
	for _, d := range points {
		if d == a || d == b || d == c {
			continue
		}
		e := Direction3(a, b, c, d)
		if e == 0 {
			continue
		}
		if side == 0 {
			side = e
		} else if e != side {
			return 0, false
		}
	}
	return side, true
}
