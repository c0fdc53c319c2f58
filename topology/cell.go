package topology

import (
	vac "github.com/gogpu/vac"
)

// Vertex is a point cell: it exists over a lifetime of frames and stores
// its geometry at discrete keyframes within that lifetime.
type Vertex struct {
	id       vac.CellID
	lifetime vac.FrameRange
	keys     []vac.KeyVertexGeometry // sorted by Frame, unique per Frame
	rev      uint64
}

// ID returns the vertex's stable identifier.
func (v *Vertex) ID() vac.CellID { return v.id }

// Lifetime returns the interval of frames over which the vertex exists.
func (v *Vertex) Lifetime() vac.FrameRange { return v.lifetime }

// Revision returns the vertex's revision counter, bumped on every
// geometric change. Used as a cache key component.
func (v *Vertex) Revision() uint64 { return v.rev }

// Keys returns the vertex's keyframes ordered by Frame.
// The returned slice is the internal storage; treat it as read-only.
func (v *Vertex) Keys() []vac.KeyVertexGeometry { return v.keys }

// Edge is a curve cell connecting two vertices. Start and End are
// back-references by stable identifier, not ownership: the vertices live
// in the same Complex and must be alive for every frame the edge is.
type Edge struct {
	id         vac.CellID
	lifetime   vac.FrameRange
	start, end vac.CellID
	keys       []vac.KeyEdgeGeometry // sorted by Frame, unique per Frame
	rev        uint64
}

// ID returns the edge's stable identifier.
func (e *Edge) ID() vac.CellID { return e.id }

// Lifetime returns the interval of frames over which the edge exists.
func (e *Edge) Lifetime() vac.FrameRange { return e.lifetime }

// Start returns the ID of the edge's start vertex.
func (e *Edge) Start() vac.CellID { return e.start }

// End returns the ID of the edge's end vertex.
func (e *Edge) End() vac.CellID { return e.end }

// Revision returns the edge's revision counter, bumped on every
// geometric change. Used as a cache key component.
func (e *Edge) Revision() uint64 { return e.rev }

// Keys returns the edge's keyframes ordered by Frame.
// The returned slice is the internal storage; treat it as read-only.
func (e *Edge) Keys() []vac.KeyEdgeGeometry { return e.keys }

// clone returns a deep copy of the vertex.
func (v *Vertex) clone() *Vertex {
	out := *v
	out.keys = make([]vac.KeyVertexGeometry, len(v.keys))
	copy(out.keys, v.keys)
	return &out
}

// clone returns a deep copy of the edge, including curve samples.
func (e *Edge) clone() *Edge {
	out := *e
	out.keys = make([]vac.KeyEdgeGeometry, len(e.keys))
	for i, k := range e.keys {
		out.keys[i] = k.Clone()
	}
	return &out
}
