package internal

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetLogger(t *testing.T) {
	assert.False(t, debugEnabled())

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })
	assert.True(t, debugEnabled())

	Triangulate(UnitSquare())
	assert.Contains(t, buf.String(), "clipped ear")

	buf.Reset()
	DivideAndConquerHull(RegularPolygon(12, 5).Points)
	assert.Contains(t, buf.String(), "merged hulls")

	SetLogger(nil)
	assert.False(t, debugEnabled())
}
