package vac

// CellID is the stable identifier of a topological cell (vertex or edge).
// IDs are assigned monotonically by the topology container and are never
// reused within a session, so a dangling ID can never silently resolve to
// an unrelated cell after undo/redo. Zero is never a valid ID.
type CellID uint64

// KeyVertexGeometry is the geometry of a vertex at one keyframe: a 2D
// position plus the brush width recorded when it was drawn. Values are
// immutable once stored; editing replaces the whole record.
type KeyVertexGeometry struct {
	Frame Frame
	Pos   Point
	Width float64
}

// Lerp interpolates linearly between two vertex keyframes.
// The resulting Frame is the interpolated instant, not a keyframe.
func (g KeyVertexGeometry) Lerp(h KeyVertexGeometry, t float64) KeyVertexGeometry {
	return KeyVertexGeometry{
		Frame: g.Frame + Frame(t)*(h.Frame-g.Frame),
		Pos:   g.Pos.Lerp(h.Pos, t),
		Width: g.Width + (h.Width-g.Width)*t,
	}
}

// KeyEdgeGeometry is the geometry of an edge at one keyframe: a
// variable-width stroke curve. The curve's endpoints coincide with the
// edge's endpoint vertices at the same frame; the topology layer keeps a
// back-reference from the edge to those vertices by CellID, the curve
// itself stores raw positions only.
type KeyEdgeGeometry struct {
	Frame Frame
	Curve EdgeCurve
}

// Clone returns a deep copy; the curve's sample slice is not shared.
func (g KeyEdgeGeometry) Clone() KeyEdgeGeometry {
	return KeyEdgeGeometry{Frame: g.Frame, Curve: g.Curve.Clone()}
}
