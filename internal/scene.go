package internal

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// A scene file lists named jobs for the demo to run in one go:
//
//	jobs:
//	  - name: square
//	    kind: triangulate
//	    points: [[0, 0], [2, 0], [2, 2], [0, 2]]
//	  - name: cloud
//	    kind: hull
//	    strategy: divide
//	    points: [[0, 0], [4, 1], [2, 5], [1, 1]]
//	  - name: tetrahedron
//	    kind: hull3d
//	    points3: [[0, 0, 0], [1, 0, 0], [0, 1, 0], [0, 0, 1]]
type Scene struct {
	Jobs []Job `yaml:"jobs"`
	// Optional PNG output for every 2D job, named after the job
	RenderDir string `yaml:"render_dir,omitempty"`
}

type Job struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`
	// Only for hull jobs: graham (default) or divide
	Strategy string `yaml:"strategy,omitempty"`
	// Only for triangulate jobs: triangulate in the given order instead of
	// angularly re-sorting
	KeepOrder bool        `yaml:"keep_order,omitempty"`
	Points    [][]float64 `yaml:"points,omitempty"`
	Points3   [][]float64 `yaml:"points3,omitempty"`
}

const (
	JobTriangulate = "triangulate"
	JobHull        = "hull"
	JobHull3D      = "hull3d"
)

func ParseScene(data []byte) (*Scene, error) {
	var scene Scene
	if err := yaml.Unmarshal(data, &scene); err != nil {
		return nil, errors.Wrap(err, "parsing scene")
	}
	if err := scene.Validate(); err != nil {
		return nil, err
	}
	return &scene, nil
}

func LoadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	scene, err := ParseScene(data)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}
	return scene, nil
}

func (s *Scene) Validate() error {
	if len(s.Jobs) == 0 {
		return errors.New("scene has no jobs")
	}
	for i, job := range s.Jobs {
		if job.Name == "" {
			return errors.Errorf("job %d: 'name' is required", i)
		}
		switch job.Kind {
		case JobTriangulate, JobHull:
			if len(job.Points) == 0 {
				return errors.Errorf("job %q: 'points' is required", job.Name)
			}
			if _, err := job.Points2D(); err != nil {
				return errors.Wrapf(err, "job %q", job.Name)
			}
			if _, err := ParseStrategy(job.Strategy); err != nil {
				return errors.Wrapf(err, "job %q", job.Name)
			}
		case JobHull3D:
			if len(job.Points3) == 0 {
				return errors.Errorf("job %q: 'points3' is required", job.Name)
			}
			if _, err := job.Points3D(); err != nil {
				return errors.Wrapf(err, "job %q", job.Name)
			}
		default:
			return errors.Errorf("job %q: unknown kind %q", job.Name, job.Kind)
		}
	}
	return nil
}

func (j Job) Points2D() ([]Point, error) {
	points := make([]Point, len(j.Points))
	for i, coords := range j.Points {
		if len(coords) != 2 {
			return nil, errors.Errorf("point %d has %d coordinates, want 2", i, len(coords))
		}
		points[i] = Point{X: coords[0], Y: coords[1]}
	}
	return points, nil
}

func (j Job) Points3D() ([]Point3, error) {
	points := make([]Point3, len(j.Points3))
	for i, coords := range j.Points3 {
		if len(coords) != 3 {
			return nil, errors.Errorf("point %d has %d coordinates, want 3", i, len(coords))
		}
		points[i] = Point3{X: coords[0], Y: coords[1], Z: coords[2]}
	}
	return points, nil
}

// Empty selects the Graham scan.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "", "graham":
		return GrahamScan, nil
	case "divide":
		return DivideAndConquer, nil
	default:
		return 0, errors.Errorf("unknown hull strategy %q", name)
	}
}
