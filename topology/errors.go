package topology

import "errors"

// Sentinel errors for structural validation failures that are not
// reference problems (those use vac.InvalidReferenceError).
var (
	// ErrInvalidLifetime is returned when a cell is created with an empty
	// or inverted lifetime range.
	ErrInvalidLifetime = errors.New("topology: invalid cell lifetime")

	// ErrNoKeyframes is returned when a cell is created without any
	// keyframe geometry.
	ErrNoKeyframes = errors.New("topology: cell needs at least one keyframe")

	// ErrKeyframeOutsideLifetime is returned when a keyframe's frame lies
	// outside the cell's lifetime.
	ErrKeyframeOutsideLifetime = errors.New("topology: keyframe outside cell lifetime")

	// ErrLastKeyframe is returned when removing a keyframe would leave a
	// cell with none.
	ErrLastKeyframe = errors.New("topology: cannot remove a cell's last keyframe")
)
