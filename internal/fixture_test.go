package internal

import (
	"embed"
	"log"
	"math"
)

// Test fixtures. SVG fixtures live in testdata/fixtures and are available by
// name, sans extension. Coordinates are used as-is, so the winding in the file
// is flipped from what it looks like on screen; nothing that loads them cares.

//go:embed testdata/fixtures
var fixtures embed.FS

func LoadFixture(name string) Polygon {
	fixture, err := fixtures.Open("testdata/fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	polygons, err := ParseSVGPolygons(fixture)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}
	if len(polygons) > 1 {
		log.Fatalf("More than one polygon found in fixture %q", name)
	}
	return polygons[0]
}

var fixtureNames = []string{"arrow", "comb", "spiral"}

// Some ad hoc code specified fixtures

// Star-shaped about the origin, which is also (very nearly) its centroid.
func SimpleStar() Polygon {
	var points []Point
	const outerRadius = 5
	const innerRadius = 2
	for i := 0; i < 10; i++ {
		var radius float64
		if i%2 == 0 {
			radius = outerRadius
		} else {
			radius = innerRadius
		}
		angle := 2 * math.Pi * float64(i) / 10
		points = append(points, Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
	}
	return Polygon{Points: points}
}

func RegularPolygon(n int, radius float64) Polygon {
	points := make([]Point, n)
	for i := range points {
		angle := 2 * math.Pi * float64(i) / float64(n)
		points[i] = Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)}
	}
	return Polygon{Points: points}
}

func UnitSquare() []Point {
	return []Point{{1, -1}, {1, 1}, {-1, 1}, {-1, -1}}
}
