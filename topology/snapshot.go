package topology

import (
	vac "github.com/gogpu/vac"
)

// Snapshot is an immutable deep copy of a complex's cells, used as the
// unit of undo history. Snapshots do not capture the ID or revision
// allocators: those only ratchet forward.
type Snapshot struct {
	vertices map[vac.CellID]*Vertex
	edges    map[vac.CellID]*Edge
}

// Snapshot returns a deep copy of the current cell state.
func (c *Complex) Snapshot() *Snapshot {
	s := &Snapshot{
		vertices: make(map[vac.CellID]*Vertex, len(c.vertices)),
		edges:    make(map[vac.CellID]*Edge, len(c.edges)),
	}
	for id, v := range c.vertices {
		s.vertices[id] = v.clone()
	}
	for id, e := range c.edges {
		s.edges[id] = e.clone()
	}
	return s
}

// Restore replaces the complex's cells with deep copies of the snapshot.
// The snapshot stays valid and can be restored again (redo after undo).
//
// Restored cells receive fresh revision values, so geometry caches keyed
// by (id, revision) can never confuse a restored state with a later edit
// of the same cell.
func (c *Complex) Restore(s *Snapshot) {
	c.vertices = make(map[vac.CellID]*Vertex, len(s.vertices))
	c.edges = make(map[vac.CellID]*Edge, len(s.edges))
	for id, v := range s.vertices {
		cv := v.clone()
		cv.rev = c.allocRev()
		c.vertices[id] = cv
		if id >= c.nextID {
			c.nextID = id + 1
		}
	}
	for id, e := range s.edges {
		ce := e.clone()
		ce.rev = c.allocRev()
		c.edges[id] = ce
		if id >= c.nextID {
			c.nextID = id + 1
		}
	}
}

// Equal reports whether two snapshots describe the same document state:
// same cells, lifetimes, references and geometry. Revision values are
// ignored (Restore reassigns them).
func (s *Snapshot) Equal(t *Snapshot) bool {
	if len(s.vertices) != len(t.vertices) || len(s.edges) != len(t.edges) {
		return false
	}
	for id, v := range s.vertices {
		w, ok := t.vertices[id]
		if !ok || v.lifetime != w.lifetime || len(v.keys) != len(w.keys) {
			return false
		}
		for i := range v.keys {
			if v.keys[i] != w.keys[i] {
				return false
			}
		}
	}
	for id, e := range s.edges {
		f, ok := t.edges[id]
		if !ok || e.lifetime != f.lifetime || e.start != f.start || e.end != f.end {
			return false
		}
		if len(e.keys) != len(f.keys) {
			return false
		}
		for i := range e.keys {
			if !e.keys[i].Frame.Equal(f.keys[i].Frame) || !e.keys[i].Curve.Equal(f.keys[i].Curve) {
				return false
			}
		}
	}
	return true
}
