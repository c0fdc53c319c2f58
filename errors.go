package vac

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the vac data model. Typed errors below wrap these,
// so callers can match broadly with errors.Is or extract detail with
// errors.As.
var (
	// ErrInvalidReference is returned when an operation names a cell ID
	// that does not exist, or whose lifetime does not cover the frames the
	// operation needs it alive for.
	ErrInvalidReference = errors.New("vac: invalid cell reference")

	// ErrOutOfLifetimeRange is returned by strict-policy geometry queries
	// for frames outside a cell's existence interval.
	ErrOutOfLifetimeRange = errors.New("vac: frame outside cell lifetime")

	// ErrInconsistentPattern is reported when image filenames selected
	// together do not all match the inferred wildcard pattern. It is
	// non-fatal: the valid subset proceeds, the rest are ignored.
	ErrInconsistentPattern = errors.New("vac: inconsistent file name pattern")
)

// InvalidReferenceError reports a dangling or insufficient cell reference.
type InvalidReferenceError struct {
	// Cell is the cell the failed operation was building or mutating.
	// Zero when the operation never got far enough to involve one.
	Cell CellID

	// Ref is the referenced cell that is missing or not alive long enough.
	Ref CellID

	// Reason describes the violation ("no such cell", "lifetime too short").
	Reason string
}

func (e *InvalidReferenceError) Error() string {
	if e.Cell != 0 {
		return fmt.Sprintf("vac: invalid reference to cell %d from cell %d: %s", e.Ref, e.Cell, e.Reason)
	}
	return fmt.Sprintf("vac: invalid reference to cell %d: %s", e.Ref, e.Reason)
}

func (e *InvalidReferenceError) Unwrap() error { return ErrInvalidReference }

// OutOfLifetimeRangeError reports a geometry query outside a cell's
// lifetime under the strict policy.
type OutOfLifetimeRangeError struct {
	Cell  CellID
	Frame Frame
}

func (e *OutOfLifetimeRangeError) Error() string {
	return fmt.Sprintf("vac: cell %d has no geometry at frame %s", e.Cell, e.Frame)
}

func (e *OutOfLifetimeRangeError) Unwrap() error { return ErrOutOfLifetimeRange }

// InconsistentPatternError lists filenames that do not match an inferred
// wildcard pattern. The pattern itself is still usable; the listed files
// are simply excluded.
type InconsistentPatternError struct {
	Pattern  string
	Excluded []string
}

func (e *InconsistentPatternError) Error() string {
	return fmt.Sprintf("vac: files do not match pattern %q and will be ignored: %s",
		e.Pattern, strings.Join(e.Excluded, ", "))
}

func (e *InconsistentPatternError) Unwrap() error { return ErrInconsistentPattern }
