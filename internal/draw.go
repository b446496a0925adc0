package internal

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/polygeom/dbg"
	"github.com/pkg/errors"
)

// Debug rendering of triangulations and hulls, for the demo and for looking
// at failing tests.

// Padding around the shape, in pixels
const dbgDrawPadding = 40

type Drawing struct {
	// Pixels per unit
	Scale     float64
	Triangles []Triangle
	Hull      []Point
	Points    []Point
	// Label every triangle with a readable name
	Labels bool
}

func (d *Drawing) bounds() (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	visit := func(p Point) {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	for _, t := range d.Triangles {
		visit(t.A)
		visit(t.B)
		visit(t.C)
	}
	for _, p := range d.Hull {
		visit(p)
	}
	for _, p := range d.Points {
		visit(p)
	}
	if math.IsInf(minX, 1) {
		return 0, 0, 0, 0
	}
	return minX, minY, maxX, maxY
}

func (d *Drawing) Render() *gg.Context {
	scale := d.Scale
	if scale <= 0 {
		scale = 50
	}
	minX, minY, maxX, maxY := d.bounds()

	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	c.SetLineWidth(2 / scale)
	for _, t := range d.Triangles {
		c.MoveTo(t.A.X, t.A.Y)
		c.LineTo(t.B.X, t.B.Y)
		c.LineTo(t.C.X, t.C.Y)
		c.ClosePath()
		c.SetRGBA(0.3, 0.2, 1, 0.5)
		c.FillPreserve()
		c.SetRGB(0, 1, 1)
		c.Stroke()
	}

	if len(d.Hull) > 0 {
		c.MoveTo(d.Hull[0].X, d.Hull[0].Y)
		for _, p := range d.Hull[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
		c.SetRGB(1, 1, 0)
		c.Stroke()
	}

	c.SetRGB(1, 0.3, 0.3)
	for _, p := range d.Points {
		c.DrawCircle(p.X, p.Y, 3/scale)
		c.Fill()
	}

	if d.Labels {
		for _, t := range d.Triangles {
			center := t.Centroid()
			// Text has to be drawn unflipped, so go back to device coordinates
			x, y := c.TransformPoint(center.X, center.Y)
			c.Push()
			c.Identity()
			c.SetRGB(1, 1, 1)
			c.DrawStringAnchored(dbg.Name(t), x, y, 0.5, 0.5)
			c.Pop()
		}
	}
	return c
}

func (d *Drawing) SavePNG(path string) error {
	if err := d.Render().SavePNG(path); err != nil {
		return errors.Wrapf(err, "saving %s", path)
	}
	return nil
}

// Render to a temporary PNG and print it inline (iTerm only).
func (d *Drawing) Show() error {
	file, err := os.CreateTemp("", "polygeom-*.png")
	if err != nil {
		return errors.Wrap(err, "creating temp file")
	}
	path := file.Name()
	file.Close()
	defer os.Remove(path)

	if err := d.SavePNG(path); err != nil {
		return err
	}
	imgcat.CatFile(path, os.Stdout)
	return nil
}
