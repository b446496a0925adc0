package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/polygeom"
	"github.com/osuushi/polygeom/internal"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Demo of the geometry engine. Point sets come from stdin ("x y" per line,
// polygons separated by a blank line), an SVG file (every <polygon>), a
// GeoJSON feature collection, or a YAML scene listing several jobs.
//
// Results are printed, and can also be written as GeoJSON, rendered to PNG or
// shown inline in iTerm.

type output struct {
	geojsonPath string
	pngPath     string
	show        bool
	labels      bool
	scale       float64
}

func main() {
	app := kingpin.New("polygeom", "Triangulate polygons and compute convex hulls.")
	verbose := app.Flag("verbose", "Log algorithm steps to stderr.").Short('v').Bool()
	var out output
	app.Flag("geojson", "Write results as GeoJSON to this file.").StringVar(&out.geojsonPath)
	app.Flag("png", "Render 2D results to this PNG file.").StringVar(&out.pngPath)
	app.Flag("show", "Show 2D results inline in the terminal (iTerm only).").BoolVar(&out.show)
	app.Flag("labels", "Give every triangle a readable name.").BoolVar(&out.labels)
	app.Flag("scale", "Pixels per unit when rendering.").Default("50").Float64Var(&out.scale)

	triangulateCmd := app.Command("triangulate", "Triangulate each polygon by ear clipping.")
	keepOrder := triangulateCmd.Flag("keep-order", "Use the vertex order as given instead of sorting around the centroid.").Bool()
	triangulateInput := triangulateCmd.Arg("input", "SVG, GeoJSON or text file. Reads stdin if omitted.").String()

	hullCmd := app.Command("hull", "Compute the convex hull of each point set.")
	strategyName := hullCmd.Flag("strategy", "Hull algorithm.").Default("graham").Enum("graham", "divide")
	parallelDepth := hullCmd.Flag("parallel-depth", "Recursion levels to run concurrently (divide only).").Default("0").Int()
	hullInput := hullCmd.Arg("input", "SVG, GeoJSON or text file. Reads stdin if omitted.").String()

	hull3dCmd := app.Command("hull3d", "Compute the 3D convex hull of a point cloud given as \"x y z\" lines.")
	hull3dInput := hull3dCmd.Arg("input", "Text file. Reads stdin if omitted.").String()

	sceneCmd := app.Command("scene", "Run every job in a YAML scene file.")
	scenePath := sceneCmd.Arg("file", "Scene file.").Required().ExistingFile()

	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	if *verbose {
		polygeom.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	var err error
	switch command {
	case triangulateCmd.FullCommand():
		err = runTriangulate(*triangulateInput, *keepOrder, out)
	case hullCmd.FullCommand():
		err = runHull(*hullInput, *strategyName, *parallelDepth, out)
	case hull3dCmd.FullCommand():
		err = runHull3D(*hull3dInput)
	case sceneCmd.FullCommand():
		err = runScene(*scenePath, out)
	}
	app.FatalIfError(err, "%s", command)
}

func runTriangulate(path string, keepOrder bool, out output) error {
	sets, err := readPointSets(path)
	if err != nil {
		return err
	}
	fmt.Printf("Read %d polygons\n", len(sets))

	for i, points := range sets {
		triangles, err := triangulate(points, keepOrder)
		if err != nil {
			return errors.Wrapf(err, "polygon %d", i)
		}
		printTriangles(fmt.Sprintf("polygon %d", i), triangles, out.labels)
		if err := out.writeTriangles(i, triangles, points); err != nil {
			return err
		}
	}
	return nil
}

func triangulate(points []polygeom.Point, keepOrder bool) ([]polygeom.Triangle, error) {
	if keepOrder {
		return polygeom.TriangulatePolygon(points)
	}
	return polygeom.Triangulate(points)
}

func runHull(path, strategyName string, parallelDepth int, out output) error {
	strategy, err := internal.ParseStrategy(strategyName)
	if err != nil {
		return err
	}
	sets, err := readPointSets(path)
	if err != nil {
		return err
	}
	fmt.Printf("Read %d point sets\n", len(sets))

	for i, points := range sets {
		hull, err := polygeom.ConvexHull2D(points, strategy, polygeom.WithParallelDepth(parallelDepth))
		if err != nil {
			return errors.Wrapf(err, "point set %d", i)
		}
		printHull(fmt.Sprintf("point set %d", i), strategy, hull)
		if err := out.writeHull(i, hull, points); err != nil {
			return err
		}
	}
	return nil
}

func runHull3D(path string) error {
	points, err := readPoints3(path)
	if err != nil {
		return err
	}
	faces, err := polygeom.ConvexHull3D(points)
	if err != nil {
		return err
	}
	printFaces("point cloud", faces)
	return nil
}

func runScene(path string, out output) error {
	scene, err := internal.LoadScene(path)
	if err != nil {
		return err
	}

	for _, job := range scene.Jobs {
		jobOut := out
		jobOut.geojsonPath = ""
		if scene.RenderDir != "" {
			jobOut.pngPath = filepath.Join(scene.RenderDir, job.Name+".png")
		} else {
			jobOut.pngPath = ""
		}

		switch job.Kind {
		case internal.JobTriangulate:
			points, _ := job.Points2D()
			triangles, err := triangulate(points, job.KeepOrder)
			if err != nil {
				return errors.Wrapf(err, "job %q", job.Name)
			}
			printTriangles(job.Name, triangles, out.labels)
			err = jobOut.writeTriangles(0, triangles, points)
			if err != nil {
				return err
			}
		case internal.JobHull:
			points, _ := job.Points2D()
			strategy, _ := internal.ParseStrategy(job.Strategy)
			hull, err := polygeom.ConvexHull2D(points, strategy)
			if err != nil {
				return errors.Wrapf(err, "job %q", job.Name)
			}
			printHull(job.Name, strategy, hull)
			err = jobOut.writeHull(0, hull, points)
			if err != nil {
				return err
			}
		case internal.JobHull3D:
			points, _ := job.Points3D()
			faces, err := polygeom.ConvexHull3D(points)
			if err != nil {
				return errors.Wrapf(err, "job %q", job.Name)
			}
			printFaces(job.Name, faces)
		}
	}
	return nil
}

func printTriangles(name string, triangles []polygeom.Triangle, labels bool) {
	var area float64
	for _, t := range triangles {
		area += t.Area()
	}
	fmt.Printf("%s: %s, area %s\n",
		aurora.Bold(aurora.Cyan(name)),
		aurora.Green(fmt.Sprintf("%d triangles", len(triangles))),
		aurora.Yellow(fmt.Sprintf("%g", area)),
	)
	for _, t := range triangles {
		if labels {
			fmt.Printf("  %s\n", t.DbgString())
		} else {
			fmt.Printf("  %v\n", t)
		}
	}
}

func printHull(name string, strategy polygeom.Strategy, hull []polygeom.Point) {
	fmt.Printf("%s: %s hull with %s\n",
		aurora.Bold(aurora.Cyan(name)),
		strategy,
		aurora.Green(fmt.Sprintf("%d vertices", len(hull))),
	)
	for _, p := range hull {
		fmt.Printf("  %v\n", p)
	}
}

func printFaces(name string, faces []polygeom.Triangle3) {
	fmt.Printf("%s: %s\n",
		aurora.Bold(aurora.Cyan(name)),
		aurora.Green(fmt.Sprintf("%d faces", len(faces))),
	)
	for _, face := range faces {
		fmt.Printf("  %v\n", face)
	}
}

func (out output) writeTriangles(index int, triangles []polygeom.Triangle, points []polygeom.Point) error {
	if out.geojsonPath != "" {
		data, err := internal.TrianglesToGeoJSON(triangles)
		if err != nil {
			return err
		}
		if err := writeFile(indexedPath(out.geojsonPath, index), data); err != nil {
			return err
		}
	}
	return out.draw(index, &internal.Drawing{Triangles: triangles, Points: points})
}

func (out output) writeHull(index int, hull, points []polygeom.Point) error {
	if out.geojsonPath != "" {
		data, err := internal.HullToGeoJSON(hull)
		if err != nil {
			return err
		}
		if err := writeFile(indexedPath(out.geojsonPath, index), data); err != nil {
			return err
		}
	}
	return out.draw(index, &internal.Drawing{Hull: hull, Points: points})
}

func (out output) draw(index int, drawing *internal.Drawing) error {
	drawing.Scale = out.scale
	drawing.Labels = out.labels
	if out.pngPath != "" {
		path := indexedPath(out.pngPath, index)
		if err := ensureDir(path); err != nil {
			return err
		}
		if err := drawing.SavePNG(path); err != nil {
			return err
		}
	}
	if out.show {
		return drawing.Show()
	}
	return nil
}

func writeFile(path string, data []byte) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	return errors.Wrapf(os.WriteFile(path, data, 0o644), "writing %s", path)
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return errors.Wrapf(os.MkdirAll(dir, 0o755), "creating %s", dir)
}

// The first result keeps the given path; later ones get "-N" before the
// extension.
func indexedPath(path string, index int) string {
	if index == 0 {
		return path
	}
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s-%d%s", strings.TrimSuffix(path, ext), index, ext)
}
