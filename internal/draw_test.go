package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawing_Render(t *testing.T) {
	drawing := Drawing{
		Scale:     10,
		Triangles: Triangulate([]Point{{0, 0}, {2, 0}, {2, 2}, {0, 2}}),
		Hull:      []Point{{0, 0}, {2, 0}, {2, 2}, {0, 2}},
		Points:    []Point{{1, 1}},
		Labels:    true,
	}
	c := drawing.Render()
	assert.Equal(t, 20+2*dbgDrawPadding, c.Width())
	assert.Equal(t, 20+2*dbgDrawPadding, c.Height())
}

func TestDrawing_Empty(t *testing.T) {
	c := (&Drawing{}).Render()
	assert.Equal(t, 2*dbgDrawPadding, c.Width())
}

func TestDrawing_SavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "star.png")
	drawing := Drawing{Scale: 20, Triangles: Triangulate(SimpleStar().Points)}
	require.NoError(t, drawing.SavePNG(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
