package vac

// CurveSample is one sample of a variable-width stroke: a centerline
// position and the stroke width at that position.
type CurveSample struct {
	Pos   Point
	Width float64
}

// EdgeCurve is the geometric representation of an edge: a piecewise-linear
// centerline with per-sample width, the natural output of a sketch tool
// accumulating pointer samples. All operations are deterministic so that
// interpolation and caching replay bit-identically.
//
// The zero value is an empty curve ready for Append.
type EdgeCurve struct {
	samples []CurveSample
}

// EdgeCurveOf creates a curve from explicit samples.
func EdgeCurveOf(samples ...CurveSample) EdgeCurve {
	c := EdgeCurve{samples: make([]CurveSample, len(samples))}
	copy(c.samples, samples)
	return c
}

// EdgeCurveBetween creates a two-sample straight curve from a to b with a
// constant width. Handy for programmatic edges between existing vertices.
func EdgeCurveBetween(a, b Point, width float64) EdgeCurve {
	return EdgeCurveOf(
		CurveSample{Pos: a, Width: width},
		CurveSample{Pos: b, Width: width},
	)
}

// Append adds a sample to the end of the curve.
func (c *EdgeCurve) Append(pos Point, width float64) {
	c.samples = append(c.samples, CurveSample{Pos: pos, Width: width})
}

// Len returns the number of samples.
func (c EdgeCurve) Len() int {
	return len(c.samples)
}

// Sample returns the i-th sample.
func (c EdgeCurve) Sample(i int) CurveSample {
	return c.samples[i]
}

// Start returns the first sample position.
// Must not be called on an empty curve.
func (c EdgeCurve) Start() Point {
	return c.samples[0].Pos
}

// End returns the last sample position.
// Must not be called on an empty curve.
func (c EdgeCurve) End() Point {
	return c.samples[len(c.samples)-1].Pos
}

// Arclength returns the total length of the centerline polyline.
func (c EdgeCurve) Arclength() float64 {
	var length float64
	for i := 1; i < len(c.samples); i++ {
		length += c.samples[i-1].Pos.Distance(c.samples[i].Pos)
	}
	return length
}

// BoundingBox returns the axis-aligned bounding box of the centerline,
// expanded by half the widest sample so the painted stroke fits inside.
func (c EdgeCurve) BoundingBox() Rect {
	if len(c.samples) == 0 {
		return EmptyRect()
	}
	bbox := NewRect(c.samples[0].Pos, c.samples[0].Pos)
	maxWidth := 0.0
	for _, s := range c.samples {
		bbox = bbox.Union(NewRect(s.Pos, s.Pos))
		if s.Width > maxWidth {
			maxWidth = s.Width
		}
	}
	return bbox.Expanded(maxWidth / 2)
}

// Clone returns a deep copy of the curve.
func (c EdgeCurve) Clone() EdgeCurve {
	out := EdgeCurve{samples: make([]CurveSample, len(c.samples))}
	copy(out.samples, c.samples)
	return out
}

// Equal reports whether two curves have bit-identical samples.
func (c EdgeCurve) Equal(d EdgeCurve) bool {
	if len(c.samples) != len(d.samples) {
		return false
	}
	for i := range c.samples {
		if c.samples[i] != d.samples[i] {
			return false
		}
	}
	return true
}

// Resampled returns a copy of the curve with exactly n samples placed at
// uniform arclength intervals. The first and last samples are preserved
// exactly. n is clamped to at least 2; an empty curve resamples to an
// empty curve, a single-sample curve repeats its sample.
//
// Resampling is deterministic: identical inputs yield bit-identical
// outputs, which interpolation caching relies on.
func (c EdgeCurve) Resampled(n int) EdgeCurve {
	if n < 2 {
		n = 2
	}
	switch len(c.samples) {
	case 0:
		return EdgeCurve{}
	case 1:
		out := EdgeCurve{samples: make([]CurveSample, n)}
		for i := range out.samples {
			out.samples[i] = c.samples[0]
		}
		return out
	}

	// Cumulative arclength at each input sample.
	cum := make([]float64, len(c.samples))
	for i := 1; i < len(c.samples); i++ {
		cum[i] = cum[i-1] + c.samples[i-1].Pos.Distance(c.samples[i].Pos)
	}
	total := cum[len(cum)-1]

	out := EdgeCurve{samples: make([]CurveSample, n)}
	out.samples[0] = c.samples[0]
	out.samples[n-1] = c.samples[len(c.samples)-1]

	if total == 0 {
		// Degenerate curve, all samples coincide.
		for i := 1; i < n-1; i++ {
			out.samples[i] = c.samples[0]
		}
		return out
	}

	seg := 0
	for i := 1; i < n-1; i++ {
		target := total * float64(i) / float64(n-1)
		for seg < len(cum)-2 && cum[seg+1] < target {
			seg++
		}
		segLen := cum[seg+1] - cum[seg]
		t := 0.0
		if segLen > 0 {
			t = (target - cum[seg]) / segLen
		}
		a, b := c.samples[seg], c.samples[seg+1]
		out.samples[i] = CurveSample{
			Pos:   a.Pos.Lerp(b.Pos, t),
			Width: a.Width + (b.Width-a.Width)*t,
		}
	}
	return out
}

// Lerp interpolates linearly between two curves. Curves with differing
// sample counts are first resampled to the larger count; equal-length
// curves are interpolated sample-wise without resampling, so Lerp at t=0
// or t=1 of equal-length curves reproduces the input exactly.
func (c EdgeCurve) Lerp(d EdgeCurve, t float64) EdgeCurve {
	if len(c.samples) == 0 {
		return d.Clone()
	}
	if len(d.samples) == 0 {
		return c.Clone()
	}
	a, b := c, d
	if len(a.samples) != len(b.samples) {
		n := max(len(a.samples), len(b.samples))
		a = a.Resampled(n)
		b = b.Resampled(n)
	}
	out := EdgeCurve{samples: make([]CurveSample, len(a.samples))}
	for i := range out.samples {
		sa, sb := a.samples[i], b.samples[i]
		out.samples[i] = CurveSample{
			Pos:   sa.Pos.Lerp(sb.Pos, t),
			Width: sa.Width + (sb.Width-sa.Width)*t,
		}
	}
	return out
}
