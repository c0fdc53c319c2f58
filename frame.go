package vac

import (
	"math"
	"strconv"
)

// Frame is a point in animation time. Frames are totally ordered and may
// be fractional (e.g. during onion-skin previews or motion blur
// subsampling), but keyframes almost always sit on exact integers.
type Frame float64

// frameEps is the tolerance used when deciding whether two frames are the
// same instant. Frame arithmetic goes through float64, so exact-match
// queries must tolerate representation noise around integers.
const frameEps = 1.0e-10

// F is a convenience function to create a Frame.
func F(t float64) Frame {
	return Frame(t)
}

// Int returns the nearest integer frame number.
// Halfway values round up, matching frame numbering in exported file names.
func (f Frame) Int() int {
	return int(math.Floor(float64(f) + 0.5))
}

// IsInt reports whether the frame sits on an exact integer
// (within frameEps tolerance).
func (f Frame) IsInt() bool {
	return math.Abs(float64(f)-math.Floor(float64(f)+0.5)) < frameEps
}

// Floor returns the largest integer frame not greater than f.
func (f Frame) Floor() Frame {
	return Frame(math.Floor(float64(f) + frameEps))
}

// Ceil returns the smallest integer frame not less than f.
func (f Frame) Ceil() Frame {
	return Frame(math.Ceil(float64(f) - frameEps))
}

// Equal reports whether two frames denote the same instant
// (within frameEps tolerance).
func (f Frame) Equal(g Frame) bool {
	return math.Abs(float64(f)-float64(g)) < frameEps
}

// Less reports whether f is strictly before g.
// Frames within frameEps of each other compare as equal, not less.
func (f Frame) Less(g Frame) bool {
	return float64(f) < float64(g) && !f.Equal(g)
}

// String returns the frame formatted for file names and logs:
// integer frames print without a decimal part.
func (f Frame) String() string {
	if f.IsInt() {
		return strconv.Itoa(f.Int())
	}
	return strconv.FormatFloat(float64(f), 'g', -1, 64)
}

// FrameRange is a closed interval of frames [Min, Max].
// A cell exists at frame f exactly when its lifetime Contains f.
type FrameRange struct {
	Min, Max Frame
}

// FrameRangeOf creates a normalized frame range from two frames.
func FrameRangeOf(a, b Frame) FrameRange {
	if b.Less(a) {
		a, b = b, a
	}
	return FrameRange{Min: a, Max: b}
}

// IsValid reports whether the range is non-empty (Min <= Max).
func (r FrameRange) IsValid() bool {
	return !r.Max.Less(r.Min)
}

// Contains reports whether f lies inside the range (endpoints included).
func (r FrameRange) Contains(f Frame) bool {
	return !f.Less(r.Min) && !r.Max.Less(f)
}

// ContainsRange reports whether s lies entirely inside r.
func (r FrameRange) ContainsRange(s FrameRange) bool {
	return r.Contains(s.Min) && r.Contains(s.Max)
}

// Intersects reports whether the two ranges share at least one frame.
func (r FrameRange) Intersects(s FrameRange) bool {
	return !s.Max.Less(r.Min) && !r.Max.Less(s.Min)
}

// Union returns the smallest range containing both r and s.
func (r FrameRange) Union(s FrameRange) FrameRange {
	out := r
	if s.Min.Less(out.Min) {
		out.Min = s.Min
	}
	if out.Max.Less(s.Max) {
		out.Max = s.Max
	}
	return out
}
