package internal

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

// This is not a full (or even correct) svg parser. It finds every <polygon>
// element and reads its points attribute, which is all the demo and the test
// fixtures need. Coordinates are taken as-is, so they are in SVG's y-down
// frame.

func ParseSVGPolygons(r io.Reader) ([]Polygon, error) {
	rootEl, err := svgparser.Parse(r, true)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	polygonEls := rootEl.FindAll("polygon")
	if len(polygonEls) == 0 {
		return nil, errors.New("no polygons found in svg")
	}

	polygons := make([]Polygon, 0, len(polygonEls))
	for i, polygonEl := range polygonEls {
		points, err := parsePointList(polygonEl.Attributes["points"])
		if err != nil {
			return nil, errors.Wrapf(err, "polygon %d", i)
		}
		polygons = append(polygons, Polygon{Points: points})
	}
	return polygons, nil
}

func LoadSVGPolygons(path string) ([]Polygon, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer file.Close()
	return ParseSVGPolygons(file)
}

// Accepts both "x,y x,y" and "x y x y" forms.
func parsePointList(pointString string) ([]Point, error) {
	fields := strings.FieldsFunc(pointString, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates in %q", pointString)
	}

	points := make([]Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid x value %q", fields[i])
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid y value %q", fields[i+1])
		}
		points = append(points, Point{X: x, Y: y})
	}
	return points, nil
}
