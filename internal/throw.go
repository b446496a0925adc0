package internal

import (
	"fmt"
	"runtime"

	"github.com/pkg/errors"
)

// Threading errors up and down the recursive hull merge and the clipping loop
// would add a lot of noise to the code. Instead, the algorithms panic with an
// error value, and the public API recovers to convert it back into an error.

type GeometryError error

// Too few points (or too few distinct points) for the requested operation.
type DegenerateInputError struct {
	Op     string
	Count  int
	Reason string
}

func (e *DegenerateInputError) Error() string {
	return fmt.Sprintf("%s: degenerate input (%d points): %s", e.Op, e.Count, e.Reason)
}

// The ear queue ran dry before the polygon was fully clipped. The polygon is
// self-intersecting or otherwise not simple.
type TriangulationStalledError struct {
	Emitted   int
	Expected  int
	Remaining int
}

func (e *TriangulationStalledError) Error() string {
	return fmt.Sprintf(
		"triangulation stalled after %d of %d triangles with %d vertices left and no ears",
		e.Emitted, e.Expected, e.Remaining,
	)
}

type InvalidIndexError struct {
	Index int
	Len   int
}

func (e *InvalidIndexError) Error() string {
	return fmt.Sprintf("index %d out of range for sequence of length %d", e.Index, e.Len)
}

// Panic with a GeometryError. The stack is recorded at the throw site.
func throw(err error) {
	panic(GeometryError(errors.WithStack(err)))
}

// Panic with an untyped GeometryError. Used for broken internal invariants.
func fatalf(format string, args ...interface{}) {
	panic(GeometryError(errors.Errorf(format, args...)))
}

func HandlePanicRecover(r interface{}) error {
	if r != nil {
		// Runtime errors are bugs, not bad input
		if _, ok := r.(runtime.Error); ok {
			panic(r)
		}
		if geometryError, ok := r.(GeometryError); ok {
			return geometryError
		}
		panic(r)
	}
	return nil
}

// Run fn, converting a thrown GeometryError into a returned error. Anything
// else that panics keeps panicking.
func Catch(fn func()) (err error) {
	defer func() {
		if recoveredErr := HandlePanicRecover(recover()); recoveredErr != nil {
			err = recoveredErr
		}
	}()
	fn()
	return nil
}
