package topology

import (
	"errors"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	vac "github.com/gogpu/vac"
)

func key(f vac.Frame, x, y float64) vac.KeyVertexGeometry {
	return vac.KeyVertexGeometry{Frame: f, Pos: vac.Pt(x, y), Width: 2}
}

func edgeKey(f vac.Frame, a, b vac.Point) vac.KeyEdgeGeometry {
	return vac.KeyEdgeGeometry{Frame: f, Curve: vac.EdgeCurveBetween(a, b, 2)}
}

// mustVertex creates a vertex or fails the test.
func mustVertex(t *testing.T, c *Complex, life vac.FrameRange, keys ...vac.KeyVertexGeometry) vac.CellID {
	t.Helper()
	id, err := c.CreateVertex(life, keys...)
	if err != nil {
		t.Fatalf("CreateVertex: %v", err)
	}
	return id
}

func TestComplex_CreateVertex(t *testing.T) {
	c := New()
	id := mustVertex(t, c, vac.FrameRange{Min: 1, Max: 10}, key(1, 0, 0))

	v, ok := c.Vertex(id)
	if !ok {
		t.Fatal("created vertex not found")
	}
	if v.Lifetime() != (vac.FrameRange{Min: 1, Max: 10}) {
		t.Errorf("Lifetime = %+v", v.Lifetime())
	}
	if len(v.Keys()) != 1 {
		t.Errorf("Keys = %d, want 1", len(v.Keys()))
	}
}

func TestComplex_CreateVertexValidation(t *testing.T) {
	c := New()

	if _, err := c.CreateVertex(vac.FrameRange{Min: 5, Max: 1}, key(3, 0, 0)); !errors.Is(err, ErrInvalidLifetime) {
		t.Errorf("inverted lifetime: err = %v, want ErrInvalidLifetime", err)
	}
	if _, err := c.CreateVertex(vac.FrameRange{Min: 1, Max: 5}); !errors.Is(err, ErrNoKeyframes) {
		t.Errorf("no keyframes: err = %v, want ErrNoKeyframes", err)
	}
	if _, err := c.CreateVertex(vac.FrameRange{Min: 1, Max: 5}, key(9, 0, 0)); !errors.Is(err, ErrKeyframeOutsideLifetime) {
		t.Errorf("stray keyframe: err = %v, want ErrKeyframeOutsideLifetime", err)
	}
	if c.NumVertices() != 0 {
		t.Error("failed creations must not leave cells behind")
	}
}

func TestComplex_CreateEdge(t *testing.T) {
	c := New()
	life := vac.FrameRange{Min: 1, Max: 10}
	v1 := mustVertex(t, c, life, key(1, 0, 0))
	v2 := mustVertex(t, c, life, key(1, 100, 0))

	id, err := c.CreateEdge(life, v1, v2, edgeKey(1, vac.Pt(0, 0), vac.Pt(100, 0)))
	if err != nil {
		t.Fatalf("CreateEdge: %v", err)
	}

	e, ok := c.Edge(id)
	if !ok {
		t.Fatal("created edge not found")
	}
	if e.Start() != v1 || e.End() != v2 {
		t.Errorf("endpoints = %d,%d, want %d,%d", e.Start(), e.End(), v1, v2)
	}
}

func TestComplex_CreateEdgeInvalidReference(t *testing.T) {
	c := New()
	life := vac.FrameRange{Min: 1, Max: 10}
	v1 := mustVertex(t, c, life, key(1, 0, 0))

	tests := []struct {
		name     string
		lifetime vac.FrameRange
		start    vac.CellID
		end      vac.CellID
	}{
		{"missing end vertex", life, v1, 999},
		{"missing start vertex", life, 999, v1},
		{"edge outlives endpoint", vac.FrameRange{Min: 1, Max: 20}, v1, v1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.CreateEdge(tt.lifetime, tt.start, tt.end, edgeKey(1, vac.Pt(0, 0), vac.Pt(1, 1)))
			if !errors.Is(err, vac.ErrInvalidReference) {
				t.Errorf("err = %v, want ErrInvalidReference", err)
			}
			if c.NumEdges() != 0 {
				t.Error("failed edge creation must leave the complex unchanged")
			}
		})
	}

	// A bad reference wins over other defects: no keyframes either, but
	// the missing endpoint is what gets reported.
	t.Run("missing endpoint and no keyframes", func(t *testing.T) {
		_, err := c.CreateEdge(life, 999, 1000)
		if !errors.Is(err, vac.ErrInvalidReference) {
			t.Errorf("err = %v, want ErrInvalidReference", err)
		}
	})
}

func TestComplex_DeleteVertexCascades(t *testing.T) {
	c := New()
	life := vac.FrameRange{Min: 1, Max: 10}
	v1 := mustVertex(t, c, life, key(1, 0, 0))
	v2 := mustVertex(t, c, life, key(1, 100, 0))
	v3 := mustVertex(t, c, life, key(1, 50, 50))

	e12, _ := c.CreateEdge(life, v1, v2, edgeKey(1, vac.Pt(0, 0), vac.Pt(100, 0)))
	e23, _ := c.CreateEdge(life, v2, v3, edgeKey(1, vac.Pt(100, 0), vac.Pt(50, 50)))

	if err := c.DeleteCell(v2); err != nil {
		t.Fatalf("DeleteCell: %v", err)
	}

	if _, ok := c.Edge(e12); ok {
		t.Error("edge incident to deleted vertex should be gone")
	}
	if _, ok := c.Edge(e23); ok {
		t.Error("edge incident to deleted vertex should be gone")
	}
	if _, ok := c.Vertex(v1); !ok {
		t.Error("unrelated vertex should survive")
	}
	if _, ok := c.Vertex(v3); !ok {
		t.Error("unrelated vertex should survive")
	}
}

func TestComplex_DeleteMissingCell(t *testing.T) {
	c := New()
	if err := c.DeleteCell(42); !errors.Is(err, vac.ErrInvalidReference) {
		t.Errorf("err = %v, want ErrInvalidReference", err)
	}
}

func TestComplex_IDsNeverReused(t *testing.T) {
	c := New()
	life := vac.FrameRange{Min: 1, Max: 10}
	first := mustVertex(t, c, life, key(1, 0, 0))
	if err := c.DeleteCell(first); err != nil {
		t.Fatalf("DeleteCell: %v", err)
	}
	second := mustVertex(t, c, life, key(1, 0, 0))
	if second == first {
		t.Error("IDs must not be reused after deletion")
	}
}

func TestComplex_SetVertexKey(t *testing.T) {
	c := New()
	life := vac.FrameRange{Min: 1, Max: 10}
	id := mustVertex(t, c, life, key(1, 0, 0))
	v, _ := c.Vertex(id)
	rev := v.Revision()

	// Insert a new keyframe.
	if err := c.SetVertexKey(id, key(5, 10, 10)); err != nil {
		t.Fatalf("SetVertexKey: %v", err)
	}
	if len(v.Keys()) != 2 {
		t.Errorf("Keys = %d, want 2", len(v.Keys()))
	}
	if v.Revision() == rev {
		t.Error("geometric change must bump the revision")
	}

	// Replace an existing keyframe.
	if err := c.SetVertexKey(id, key(5, 20, 20)); err != nil {
		t.Fatalf("SetVertexKey: %v", err)
	}
	if len(v.Keys()) != 2 {
		t.Errorf("Keys = %d after replace, want 2", len(v.Keys()))
	}
	if v.Keys()[1].Pos != vac.Pt(20, 20) {
		t.Errorf("replaced key Pos = %v, want (20,20)", v.Keys()[1].Pos)
	}

	// Keyframes stay sorted.
	if err := c.SetVertexKey(id, key(3, 1, 1)); err != nil {
		t.Fatalf("SetVertexKey: %v", err)
	}
	keys := v.Keys()
	for i := 1; i < len(keys); i++ {
		if !keys[i-1].Frame.Less(keys[i].Frame) {
			t.Fatalf("keyframes out of order: %v then %v", keys[i-1].Frame, keys[i].Frame)
		}
	}

	// Outside lifetime rejected.
	if err := c.SetVertexKey(id, key(99, 0, 0)); !errors.Is(err, ErrKeyframeOutsideLifetime) {
		t.Errorf("err = %v, want ErrKeyframeOutsideLifetime", err)
	}
}

func TestComplex_RemoveKeyframes(t *testing.T) {
	c := New()
	life := vac.FrameRange{Min: 1, Max: 10}
	id := mustVertex(t, c, life, key(1, 0, 0), key(5, 10, 0))

	if err := c.RemoveVertexKey(id, 5); err != nil {
		t.Fatalf("RemoveVertexKey: %v", err)
	}
	if err := c.RemoveVertexKey(id, 1); !errors.Is(err, ErrLastKeyframe) {
		t.Errorf("err = %v, want ErrLastKeyframe", err)
	}
}

func TestComplex_QueriesAtFrame(t *testing.T) {
	c := New()
	early := mustVertex(t, c, vac.FrameRange{Min: 1, Max: 5}, key(1, 0, 0))
	late := mustVertex(t, c, vac.FrameRange{Min: 4, Max: 10}, key(4, 1, 1))

	at2 := c.VerticesAt(2)
	if len(at2) != 1 || at2[0].ID() != early {
		t.Errorf("VerticesAt(2) = %v, want just the early vertex", at2)
	}
	at4 := c.VerticesAt(4)
	if len(at4) != 2 {
		t.Errorf("VerticesAt(4) = %d vertices, want 2", len(at4))
	}
	if len(c.VerticesAt(20)) != 0 {
		t.Error("VerticesAt(20) should be empty")
	}
	_ = late
}

// TestComplex_EndpointLiveness verifies by property that whenever edge
// creation succeeds, both endpoints are alive at every frame of the
// edge's lifetime, and that failed creations never modify the complex.
func TestComplex_EndpointLiveness(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("edges never outlive their endpoints", prop.ForAll(
		func(vMin, vLen, eMin, eLen int, pickStart, pickEnd uint64) bool {
			c := New()
			vLife := vac.FrameRange{Min: vac.Frame(vMin), Max: vac.Frame(vMin + vLen)}
			v1, err := c.CreateVertex(vLife, key(vLife.Min, 0, 0))
			if err != nil {
				return false
			}
			v2, err := c.CreateVertex(vLife, key(vLife.Min, 9, 9))
			if err != nil {
				return false
			}

			// Candidate endpoints include IDs that may not exist.
			candidates := []vac.CellID{v1, v2, 99, 0}
			start := candidates[pickStart%uint64(len(candidates))]
			end := candidates[pickEnd%uint64(len(candidates))]

			eLife := vac.FrameRange{Min: vac.Frame(eMin), Max: vac.Frame(eMin + eLen)}
			edgesBefore := c.NumEdges()

			id, err := c.CreateEdge(eLife, start, end, edgeKey(eLife.Min, vac.Pt(0, 0), vac.Pt(9, 9)))
			if err != nil {
				// Rejected: must be a reference or keyframe problem and
				// leave the complex unchanged.
				return c.NumEdges() == edgesBefore
			}

			e, ok := c.Edge(id)
			if !ok {
				return false
			}
			for _, endpoint := range [2]vac.CellID{e.Start(), e.End()} {
				v, ok := c.Vertex(endpoint)
				if !ok || !v.Lifetime().ContainsRange(e.Lifetime()) {
					return false
				}
			}
			return true
		},
		gen.IntRange(-20, 20),
		gen.IntRange(0, 40),
		gen.IntRange(-30, 30),
		gen.IntRange(0, 60),
		gen.UInt64(),
		gen.UInt64(),
	))

	properties.TestingRun(t)
}
