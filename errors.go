package tkpath

import "errors"

// Geometry input errors.
var (
	// ErrOddCoordinates is returned when a coordinate list has an odd length.
	ErrOddCoordinates = errors.New("tkpath: wrong # coords: expected an even number")

	// ErrTooFewPoints is returned when a coordinate list has fewer points
	// than the item requires.
	ErrTooFewPoints = errors.New("tkpath: too few points")

	// ErrBadPathData is returned by ParsePathData for malformed input.
	ErrBadPathData = errors.New("tkpath: bad path data")

	// ErrNoArrowSegments is returned when arrows are configured on a path
	// without two distinct points.
	ErrNoArrowSegments = errors.New("tkpath: path has no segments for arrows")
)

// ErrSingularMatrix is returned by Invert when the determinant is zero.
var ErrSingularMatrix = errors.New("tkpath: singular matrix")

// Context errors.
var (
	// ErrUnknownBackend is returned by Open for an unregistered backend name.
	ErrUnknownBackend = errors.New("tkpath: unknown backend")

	// ErrContextCreate is returned when a backend cannot create its native
	// state. No partial context is returned with it.
	ErrContextCreate = errors.New("tkpath: cannot create drawing context")

	// ErrContextClosed is reported for calls made after Close.
	ErrContextClosed = errors.New("tkpath: drawing context is closed")

	// ErrNoCurrentPath is reported for path building or painting calls made
	// without a preceding BeginPath.
	ErrNoCurrentPath = errors.New("tkpath: no current path")

	// ErrNoCurrentPoint is reported for segment calls made before MoveTo.
	ErrNoCurrentPoint = errors.New("tkpath: no current point")

	// ErrUnbalancedRestore is reported for RestoreState without SaveState.
	ErrUnbalancedRestore = errors.New("tkpath: restore without matching save")
)
