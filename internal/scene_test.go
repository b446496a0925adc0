package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleScene = `
render_dir: out
jobs:
  - name: square
    kind: triangulate
    points: [[0, 0], [2, 0], [2, 2], [0, 2]]
  - name: ell
    kind: triangulate
    keep_order: true
    points: [[0, 0], [4, 0], [4, 1], [1, 1], [1, 4], [0, 4]]
  - name: cloud
    kind: hull
    strategy: divide
    points: [[0, 0], [4, 1], [2, 5], [1, 1]]
  - name: tetrahedron
    kind: hull3d
    points3: [[0, 0, 0], [1, 0, 0], [0, 1, 0], [0, 0, 1]]
`

func TestParseScene(t *testing.T) {
	scene, err := ParseScene([]byte(exampleScene))
	require.NoError(t, err)
	assert.Equal(t, "out", scene.RenderDir)
	require.Len(t, scene.Jobs, 4)

	assert.Equal(t, JobTriangulate, scene.Jobs[0].Kind)
	assert.False(t, scene.Jobs[0].KeepOrder)
	assert.True(t, scene.Jobs[1].KeepOrder)

	points, err := scene.Jobs[2].Points2D()
	require.NoError(t, err)
	assert.Equal(t, []Point{{0, 0}, {4, 1}, {2, 5}, {1, 1}}, points)
	strategy, err := ParseStrategy(scene.Jobs[2].Strategy)
	require.NoError(t, err)
	assert.Equal(t, DivideAndConquer, strategy)

	points3, err := scene.Jobs[3].Points3D()
	require.NoError(t, err)
	assert.Equal(t, Point3{0, 0, 1}, points3[3])
}

func TestParseScene_Invalid(t *testing.T) {
	for name, yaml := range map[string]string{
		"not yaml":       "jobs: [",
		"no jobs":        "jobs: []",
		"missing name":   "jobs: [{kind: hull, points: [[0, 0]]}]",
		"unknown kind":   "jobs: [{name: a, kind: paint, points: [[0, 0]]}]",
		"missing points": "jobs: [{name: a, kind: hull}]",
		"bad point":      "jobs: [{name: a, kind: hull, points: [[0, 0, 0]]}]",
		"bad strategy":   "jobs: [{name: a, kind: hull, strategy: quick, points: [[0, 0]]}]",
		"bad point3":     "jobs: [{name: a, kind: hull3d, points3: [[0, 0]]}]",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ParseScene([]byte(yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadScene(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(exampleScene), 0o644))

	scene, err := LoadScene(path)
	require.NoError(t, err)
	assert.Len(t, scene.Jobs, 4)

	_, err = LoadScene(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParseStrategy(t *testing.T) {
	for name, expected := range map[string]Strategy{
		"":       GrahamScan,
		"graham": GrahamScan,
		"divide": DivideAndConquer,
	} {
		strategy, err := ParseStrategy(name)
		require.NoError(t, err)
		assert.Equal(t, expected, strategy)
	}
}
