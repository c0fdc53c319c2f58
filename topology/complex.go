package topology

import (
	"cmp"
	"slices"

	vac "github.com/gogpu/vac"
)

// Complex is the vector animation complex: the set of all cells of a
// document, indexed by stable CellID.
//
// Complex is not safe for concurrent use. The scene layer serializes all
// access on the event-dispatch goroutine.
type Complex struct {
	vertices map[vac.CellID]*Vertex
	edges    map[vac.CellID]*Edge

	// nextID and nextRev only ever move forward, including across
	// Restore, so IDs are never reused and caches keyed by
	// (id, revision) can never alias across undo/redo.
	nextID  vac.CellID
	nextRev uint64
}

// New creates an empty complex.
func New() *Complex {
	return &Complex{
		vertices: make(map[vac.CellID]*Vertex),
		edges:    make(map[vac.CellID]*Edge),
		nextID:   1,
		nextRev:  1,
	}
}

// NumVertices returns the number of vertex cells.
func (c *Complex) NumVertices() int { return len(c.vertices) }

// NumEdges returns the number of edge cells.
func (c *Complex) NumEdges() int { return len(c.edges) }

// Vertex looks up a vertex by ID.
func (c *Complex) Vertex(id vac.CellID) (*Vertex, bool) {
	v, ok := c.vertices[id]
	return v, ok
}

// Edge looks up an edge by ID.
func (c *Complex) Edge(id vac.CellID) (*Edge, bool) {
	e, ok := c.edges[id]
	return e, ok
}

// Cells returns the IDs of all cells, sorted ascending (creation order).
func (c *Complex) Cells() []vac.CellID {
	ids := make([]vac.CellID, 0, len(c.vertices)+len(c.edges))
	for id := range c.vertices {
		ids = append(ids, id)
	}
	for id := range c.edges {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// VerticesAt returns the vertices alive at frame f, sorted by ID.
func (c *Complex) VerticesAt(f vac.Frame) []*Vertex {
	var out []*Vertex
	for _, v := range c.vertices {
		if v.lifetime.Contains(f) {
			out = append(out, v)
		}
	}
	slices.SortFunc(out, func(a, b *Vertex) int { return cmp.Compare(a.id, b.id) })
	return out
}

// EdgesAt returns the edges alive at frame f, sorted by ID.
func (c *Complex) EdgesAt(f vac.Frame) []*Edge {
	var out []*Edge
	for _, e := range c.edges {
		if e.lifetime.Contains(f) {
			out = append(out, e)
		}
	}
	slices.SortFunc(out, func(a, b *Edge) int { return cmp.Compare(a.id, b.id) })
	return out
}

// IncidentEdges returns the edges using the given vertex as an endpoint,
// sorted by ID.
func (c *Complex) IncidentEdges(vertexID vac.CellID) []*Edge {
	var out []*Edge
	for _, e := range c.edges {
		if e.start == vertexID || e.end == vertexID {
			out = append(out, e)
		}
	}
	slices.SortFunc(out, func(a, b *Edge) int { return cmp.Compare(a.id, b.id) })
	return out
}

// CreateVertex creates a vertex with the given lifetime and keyframes.
// Keyframes are sorted by frame; a later keyframe at the same frame
// replaces an earlier one. Every keyframe must lie within the lifetime.
func (c *Complex) CreateVertex(lifetime vac.FrameRange, keys ...vac.KeyVertexGeometry) (vac.CellID, error) {
	if !lifetime.IsValid() {
		return 0, ErrInvalidLifetime
	}
	if len(keys) == 0 {
		return 0, ErrNoKeyframes
	}
	sorted := make([]vac.KeyVertexGeometry, 0, len(keys))
	for _, k := range keys {
		if !lifetime.Contains(k.Frame) {
			return 0, ErrKeyframeOutsideLifetime
		}
		sorted = insertVertexKey(sorted, k)
	}

	v := &Vertex{
		id:       c.allocID(),
		lifetime: lifetime,
		keys:     sorted,
		rev:      c.allocRev(),
	}
	c.vertices[v.id] = v
	return v.id, nil
}

// CreateEdge creates an edge between two existing vertices.
//
// Both endpoint vertices must exist and be alive over the edge's entire
// lifetime; otherwise a vac.InvalidReferenceError is returned and the
// complex is unchanged. Curve samples are deep-copied on storage.
func (c *Complex) CreateEdge(lifetime vac.FrameRange, start, end vac.CellID, keys ...vac.KeyEdgeGeometry) (vac.CellID, error) {
	if !lifetime.IsValid() {
		return 0, ErrInvalidLifetime
	}
	// Reference validity comes before keyframe checks: an edge naming a
	// nonexistent vertex is an invalid reference no matter what else is
	// wrong with it.
	for _, endpoint := range [2]vac.CellID{start, end} {
		v, ok := c.vertices[endpoint]
		if !ok {
			return 0, &vac.InvalidReferenceError{Ref: endpoint, Reason: "no such vertex"}
		}
		if !v.lifetime.ContainsRange(lifetime) {
			return 0, &vac.InvalidReferenceError{Ref: endpoint, Reason: "vertex not alive over edge lifetime"}
		}
	}
	if len(keys) == 0 {
		return 0, ErrNoKeyframes
	}
	sorted := make([]vac.KeyEdgeGeometry, 0, len(keys))
	for _, k := range keys {
		if !lifetime.Contains(k.Frame) {
			return 0, ErrKeyframeOutsideLifetime
		}
		sorted = insertEdgeKey(sorted, k.Clone())
	}

	e := &Edge{
		id:       c.allocID(),
		lifetime: lifetime,
		start:    start,
		end:      end,
		keys:     sorted,
		rev:      c.allocRev(),
	}
	c.edges[e.id] = e
	return e.id, nil
}

// DeleteCell deletes a cell. Deleting a vertex also deletes its incident
// edges (star deletion), so no edge is ever left with a dangling
// endpoint. Returns vac.InvalidReferenceError when the ID names no cell.
func (c *Complex) DeleteCell(id vac.CellID) error {
	if _, ok := c.edges[id]; ok {
		delete(c.edges, id)
		return nil
	}
	if _, ok := c.vertices[id]; ok {
		for _, e := range c.IncidentEdges(id) {
			delete(c.edges, e.id)
		}
		delete(c.vertices, id)
		return nil
	}
	return &vac.InvalidReferenceError{Ref: id, Reason: "no such cell"}
}

// SetVertexKey inserts or replaces a keyframe on a vertex.
func (c *Complex) SetVertexKey(id vac.CellID, key vac.KeyVertexGeometry) error {
	v, ok := c.vertices[id]
	if !ok {
		return &vac.InvalidReferenceError{Ref: id, Reason: "no such vertex"}
	}
	if !v.lifetime.Contains(key.Frame) {
		return ErrKeyframeOutsideLifetime
	}
	v.keys = insertVertexKey(v.keys, key)
	v.rev = c.allocRev()
	return nil
}

// SetEdgeKey inserts or replaces a keyframe on an edge.
// The curve is deep-copied on storage.
func (c *Complex) SetEdgeKey(id vac.CellID, key vac.KeyEdgeGeometry) error {
	e, ok := c.edges[id]
	if !ok {
		return &vac.InvalidReferenceError{Ref: id, Reason: "no such edge"}
	}
	if !e.lifetime.Contains(key.Frame) {
		return ErrKeyframeOutsideLifetime
	}
	e.keys = insertEdgeKey(e.keys, key.Clone())
	e.rev = c.allocRev()
	return nil
}

// RemoveVertexKey removes the keyframe at frame f from a vertex.
// A cell's last keyframe cannot be removed.
func (c *Complex) RemoveVertexKey(id vac.CellID, f vac.Frame) error {
	v, ok := c.vertices[id]
	if !ok {
		return &vac.InvalidReferenceError{Ref: id, Reason: "no such vertex"}
	}
	i, found := findVertexKey(v.keys, f)
	if !found {
		return ErrKeyframeOutsideLifetime
	}
	if len(v.keys) == 1 {
		return ErrLastKeyframe
	}
	v.keys = append(v.keys[:i], v.keys[i+1:]...)
	v.rev = c.allocRev()
	return nil
}

// RemoveEdgeKey removes the keyframe at frame f from an edge.
// A cell's last keyframe cannot be removed.
func (c *Complex) RemoveEdgeKey(id vac.CellID, f vac.Frame) error {
	e, ok := c.edges[id]
	if !ok {
		return &vac.InvalidReferenceError{Ref: id, Reason: "no such edge"}
	}
	i, found := findEdgeKey(e.keys, f)
	if !found {
		return ErrKeyframeOutsideLifetime
	}
	if len(e.keys) == 1 {
		return ErrLastKeyframe
	}
	e.keys = append(e.keys[:i], e.keys[i+1:]...)
	e.rev = c.allocRev()
	return nil
}

// allocID hands out the next cell ID. Never reused within a session.
func (c *Complex) allocID() vac.CellID {
	id := c.nextID
	c.nextID++
	return id
}

// allocRev hands out the next revision value.
func (c *Complex) allocRev() uint64 {
	rev := c.nextRev
	c.nextRev++
	return rev
}

// insertVertexKey inserts a keyframe into a frame-sorted slice,
// replacing an existing keyframe at the same frame.
func insertVertexKey(keys []vac.KeyVertexGeometry, k vac.KeyVertexGeometry) []vac.KeyVertexGeometry {
	i, found := findVertexKey(keys, k.Frame)
	if found {
		keys[i] = k
		return keys
	}
	return slices.Insert(keys, i, k)
}

// insertEdgeKey inserts a keyframe into a frame-sorted slice,
// replacing an existing keyframe at the same frame.
func insertEdgeKey(keys []vac.KeyEdgeGeometry, k vac.KeyEdgeGeometry) []vac.KeyEdgeGeometry {
	i, found := findEdgeKey(keys, k.Frame)
	if found {
		keys[i] = k
		return keys
	}
	return slices.Insert(keys, i, k)
}

// findVertexKey locates the keyframe at frame f, or the insertion index.
func findVertexKey(keys []vac.KeyVertexGeometry, f vac.Frame) (int, bool) {
	for i, k := range keys {
		if k.Frame.Equal(f) {
			return i, true
		}
		if f.Less(k.Frame) {
			return i, false
		}
	}
	return len(keys), false
}

// findEdgeKey locates the keyframe at frame f, or the insertion index.
func findEdgeKey(keys []vac.KeyEdgeGeometry, f vac.Frame) (int, bool) {
	for i, k := range keys {
		if k.Frame.Equal(f) {
			return i, true
		}
		if f.Less(k.Frame) {
			return i, false
		}
	}
	return len(keys), false
}
