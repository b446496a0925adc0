package internal

import (
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
)

// GeoJSON input and output for the demo. Each feature becomes one point set:
// polygons contribute their outer ring (without the closing point), and point,
// multipoint, linestring and ring geometries contribute their points.

func ParseGeoJSONPointSets(data []byte) ([][]Point, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, errors.Wrap(err, "parsing geojson")
	}

	var sets [][]Point
	for i, feature := range fc.Features {
		points, err := pointsFromGeometry(feature.Geometry)
		if err != nil {
			return nil, errors.Wrapf(err, "feature %d", i)
		}
		sets = append(sets, points)
	}
	if len(sets) == 0 {
		return nil, errors.New("no features found in geojson")
	}
	return sets, nil
}

func LoadGeoJSONPointSets(path string) ([][]Point, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return ParseGeoJSONPointSets(data)
}

func pointsFromGeometry(geometry orb.Geometry) ([]Point, error) {
	switch g := geometry.(type) {
	case orb.Point:
		return []Point{fromOrb(g)}, nil
	case orb.MultiPoint:
		return fromOrbPoints(g), nil
	case orb.LineString:
		return fromOrbPoints(g), nil
	case orb.Ring:
		return openRing(fromOrbPoints(g)), nil
	case orb.Polygon:
		if len(g) == 0 {
			return nil, errors.New("polygon has no rings")
		}
		return openRing(fromOrbPoints(g[0])), nil
	default:
		return nil, errors.Errorf("unsupported geometry type %T", geometry)
	}
}

func fromOrb(p orb.Point) Point {
	return Point{X: p.X(), Y: p.Y()}
}

func fromOrbPoints(ps []orb.Point) []Point {
	points := make([]Point, len(ps))
	for i, p := range ps {
		points[i] = fromOrb(p)
	}
	return points
}

func toOrb(p Point) orb.Point {
	return orb.Point{p.X, p.Y}
}

// GeoJSON rings repeat their first point at the end
func openRing(points []Point) []Point {
	if len(points) > 1 && points[0] == points[len(points)-1] {
		return points[:len(points)-1]
	}
	return points
}

func closedRing(points []Point) orb.Ring {
	ring := make(orb.Ring, 0, len(points)+1)
	for _, p := range points {
		ring = append(ring, toOrb(p))
	}
	if len(points) > 0 {
		ring = append(ring, toOrb(points[0]))
	}
	return ring
}

// One polygon feature per triangle.
func TrianglesToGeoJSON(triangles []Triangle) ([]byte, error) {
	fc := geojson.NewFeatureCollection()
	for i, t := range triangles {
		feature := geojson.NewFeature(orb.Polygon{closedRing([]Point{t.A, t.B, t.C})})
		feature.Properties["kind"] = "triangle"
		feature.Properties["index"] = i
		feature.Properties["area"] = t.Area()
		fc.Append(feature)
	}
	return fc.MarshalJSON()
}

// A hull of three or more points is written as a polygon, a smaller one as a
// linestring.
func HullToGeoJSON(boundary []Point) ([]byte, error) {
	fc := geojson.NewFeatureCollection()
	var geometry orb.Geometry
	if len(boundary) >= 3 {
		geometry = orb.Polygon{closedRing(boundary)}
	} else {
		line := make(orb.LineString, len(boundary))
		for i, p := range boundary {
			line[i] = toOrb(p)
		}
		geometry = line
	}
	feature := geojson.NewFeature(geometry)
	feature.Properties["kind"] = "hull"
	feature.Properties["vertices"] = len(boundary)
	fc.Append(feature)
	return fc.MarshalJSON()
}
