package topology

import (
	"testing"

	vac "github.com/gogpu/vac"
)

func buildComplex(t *testing.T) (*Complex, vac.CellID, vac.CellID, vac.CellID) {
	t.Helper()
	c := New()
	life := vac.FrameRange{Min: 1, Max: 10}
	v1 := mustVertex(t, c, life, key(1, 0, 0))
	v2 := mustVertex(t, c, life, key(1, 100, 0))
	e, err := c.CreateEdge(life, v1, v2, edgeKey(1, vac.Pt(0, 0), vac.Pt(100, 0)))
	if err != nil {
		t.Fatalf("CreateEdge: %v", err)
	}
	return c, v1, v2, e
}

func TestSnapshot_RoundTrip(t *testing.T) {
	c, v1, _, e := buildComplex(t)
	snap := c.Snapshot()

	// Mutate: move a vertex, delete the edge.
	if err := c.SetVertexKey(v1, key(1, -50, -50)); err != nil {
		t.Fatalf("SetVertexKey: %v", err)
	}
	if err := c.DeleteCell(e); err != nil {
		t.Fatalf("DeleteCell: %v", err)
	}
	if c.Snapshot().Equal(snap) {
		t.Fatal("mutated state should differ from snapshot")
	}

	c.Restore(snap)
	if !c.Snapshot().Equal(snap) {
		t.Error("restored state should equal the snapshot")
	}
	v, ok := c.Vertex(v1)
	if !ok {
		t.Fatal("vertex missing after restore")
	}
	if v.Keys()[0].Pos != vac.Pt(0, 0) {
		t.Errorf("restored vertex Pos = %v, want (0,0)", v.Keys()[0].Pos)
	}
}

func TestSnapshot_IsDeepCopy(t *testing.T) {
	c, v1, _, _ := buildComplex(t)
	snap := c.Snapshot()

	if err := c.SetVertexKey(v1, key(1, 77, 77)); err != nil {
		t.Fatalf("SetVertexKey: %v", err)
	}

	// The snapshot must still hold the old position.
	if snap.vertices[v1].keys[0].Pos != vac.Pt(0, 0) {
		t.Error("snapshot shares storage with the live complex")
	}
}

func TestSnapshot_RestorePreservesIDRatchet(t *testing.T) {
	c, _, _, _ := buildComplex(t)
	snap := c.Snapshot()

	life := vac.FrameRange{Min: 1, Max: 10}
	extra := mustVertex(t, c, life, key(1, 5, 5))

	c.Restore(snap)
	again := mustVertex(t, c, life, key(1, 5, 5))

	if again == extra {
		t.Error("IDs must not be reused after restore")
	}
	if again <= extra {
		t.Errorf("post-restore ID %d should continue past %d", again, extra)
	}
}

func TestSnapshot_RestoreBumpsRevisions(t *testing.T) {
	c, _, _, e := buildComplex(t)
	edge, _ := c.Edge(e)
	oldRev := edge.Revision()
	snap := c.Snapshot()

	c.Restore(snap)

	edge, ok := c.Edge(e)
	if !ok {
		t.Fatal("edge missing after restore")
	}
	if edge.Revision() <= oldRev {
		t.Error("restored cells must get fresh revisions for cache safety")
	}
}

func TestSnapshot_EqualIgnoresRevisions(t *testing.T) {
	c, _, _, _ := buildComplex(t)
	a := c.Snapshot()
	c.Restore(a) // reassigns revisions, state identical
	b := c.Snapshot()

	if !a.Equal(b) {
		t.Error("snapshots of identical states should be equal")
	}
}
