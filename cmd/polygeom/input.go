package main

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/osuushi/polygeom"
	"github.com/osuushi/polygeom/internal"
	"github.com/pkg/errors"
)

// Read point sets from path, picking the format from the extension. An empty
// path reads plain text from stdin.
func readPointSets(path string) ([][]polygeom.Point, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg":
		polygons, err := internal.LoadSVGPolygons(path)
		if err != nil {
			return nil, err
		}
		sets := make([][]polygeom.Point, len(polygons))
		for i, poly := range polygons {
			sets[i] = poly.Points
		}
		return sets, nil
	case ".geojson", ".json":
		return internal.LoadGeoJSONPointSets(path)
	}

	in, closeFn, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer closeFn()
	return readPolygons(in)
}

func openInput(path string) (io.Reader, func(), error) {
	if path == "" || path == "-" {
		return os.Stdin, func() {}, nil
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "opening %s", path)
	}
	return file, func() { file.Close() }, nil
}

// Input should be newline separated points in the form "x y", with each
// polygon separated by an extra newline. Lines starting with # are ignored.
func readPolygons(in io.Reader) ([][]polygeom.Point, error) {
	polygons := [][]polygeom.Point{}
	scanner := bufio.NewScanner(in)
	points := []polygeom.Point{}
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "#") {
			continue
		}

		// If it's empty, and we collected any points, this is the end of the polygon
		if line == "" {
			if len(points) > 0 {
				polygons = append(polygons, points)
				points = []polygeom.Point{}
			}
			continue
		}

		coords, err := parseCoords(line, 2)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, polygeom.Point{X: coords[0], Y: coords[1]})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading input")
	}

	// Handle trailing polygon if any
	if len(points) > 0 {
		polygons = append(polygons, points)
	}
	if len(polygons) == 0 {
		return nil, errors.New("no points in input")
	}
	return polygons, nil
}

// Same format as readPolygons, but "x y z" and a single point cloud.
func readPoints3(path string) ([]polygeom.Point3, error) {
	in, closeFn, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer closeFn()

	var points []polygeom.Point3
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		coords, err := parseCoords(line, 3)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, polygeom.Point3{X: coords[0], Y: coords[1], Z: coords[2]})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading input")
	}
	return points, nil
}

func parseCoords(line string, n int) ([]float64, error) {
	parts := strings.Fields(line)
	if len(parts) != n {
		return nil, errors.Errorf("expected %d coordinates, got %q", n, line)
	}
	coords := make([]float64, n)
	for i, part := range parts {
		value, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid coordinate %q", part)
		}
		coords[i] = value
	}
	return coords, nil
}
