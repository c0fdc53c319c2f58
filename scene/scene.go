// Package scene ties a topology, its geometry, and a background into a
// single animated document with change notification and checkpointed
// undo.
//
// A Scene is the unit an editor works on. Mutators delegate to the
// underlying topology; every successful mutation bumps the scene
// revision and notifies subscribers, so renderers and views can cache
// by revision and repaint lazily. Undo is checkpoint-based: callers
// group low-level edits into gestures and call EmitCheckpoint at
// gesture boundaries.
package scene

import (
	"github.com/google/uuid"

	vac "github.com/gogpu/vac"
	"github.com/gogpu/vac/topology"
)

// Scene is an animated vector document: cells with lifetimes and
// keyframed geometry, plus a background.
//
// A Scene is not safe for concurrent use. Like the rest of the document
// model it belongs to a single goroutine, typically the UI loop.
type Scene struct {
	id   uuid.UUID
	topo *topology.Complex
	bg   *Background
	geo  *vac.GeometryManager

	revision uint64
	changed  Signal

	history *history
}

// SceneOption configures a Scene.
type SceneOption func(*sceneConfig)

type sceneConfig struct {
	historyDepth int
	policy       vac.LifetimePolicy
}

// WithHistoryDepth bounds the number of undo steps the scene keeps.
// The default is DefaultHistoryDepth.
func WithHistoryDepth(depth int) SceneOption {
	return func(c *sceneConfig) { c.historyDepth = depth }
}

// WithGeometryPolicy sets how geometry queries outside a cell's
// lifetime behave. The default is vac.ClampToLifetime.
func WithGeometryPolicy(p vac.LifetimePolicy) SceneOption {
	return func(c *sceneConfig) { c.policy = p }
}

// NewScene returns an empty scene with a fresh document ID.
func NewScene(opts ...SceneOption) *Scene {
	cfg := sceneConfig{policy: vac.ClampToLifetime}
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &Scene{
		id:   uuid.New(),
		topo: topology.New(),
		bg:   NewBackground(),
		geo:  vac.NewGeometryManager(cfg.policy),
	}
	s.history = newHistory(cfg.historyDepth, s.state())
	s.bg.Subscribe(s.touch)

	vac.Logger().Info("scene created", "id", s.id)
	return s
}

// ID returns the document identity, stable across undo and redo.
func (s *Scene) ID() uuid.UUID { return s.id }

// Topology returns the scene's cell complex. Mutating it directly
// bypasses revision tracking; use the Scene mutators instead.
func (s *Scene) Topology() *topology.Complex { return s.topo }

// Background returns the scene background. Background setters notify
// the scene automatically.
func (s *Scene) Background() *Background { return s.bg }

// Geometry returns the scene's geometry manager.
func (s *Scene) Geometry() *vac.GeometryManager { return s.geo }

// Revision returns a counter that increases on every change to the
// scene. Equal revisions imply equal render output for a given frame.
func (s *Scene) Revision() uint64 { return s.revision }

// Subscribe registers fn to run after every scene change.
func (s *Scene) Subscribe(fn func()) Token { return s.changed.Subscribe(fn) }

// Unsubscribe removes a subscription made with Subscribe.
func (s *Scene) Unsubscribe(t Token) { s.changed.Unsubscribe(t) }

func (s *Scene) touch() {
	s.revision++
	s.changed.Emit()
}

// CreateVertex adds a key vertex cell. See topology.Complex.CreateVertex.
func (s *Scene) CreateVertex(lifetime vac.FrameRange, keys ...vac.KeyVertexGeometry) (vac.CellID, error) {
	id, err := s.topo.CreateVertex(lifetime, keys...)
	if err != nil {
		return 0, err
	}
	s.touch()
	return id, nil
}

// CreateEdge adds an edge cell between two existing vertices.
// See topology.Complex.CreateEdge.
func (s *Scene) CreateEdge(lifetime vac.FrameRange, start, end vac.CellID, keys ...vac.KeyEdgeGeometry) (vac.CellID, error) {
	id, err := s.topo.CreateEdge(lifetime, start, end, keys...)
	if err != nil {
		return 0, err
	}
	s.touch()
	return id, nil
}

// DeleteCell removes a cell and, for a vertex, its incident edges.
func (s *Scene) DeleteCell(id vac.CellID) error {
	if err := s.topo.DeleteCell(id); err != nil {
		return err
	}
	s.touch()
	return nil
}

// SetVertexKey inserts or replaces a vertex keyframe.
func (s *Scene) SetVertexKey(id vac.CellID, key vac.KeyVertexGeometry) error {
	if err := s.topo.SetVertexKey(id, key); err != nil {
		return err
	}
	s.touch()
	return nil
}

// SetEdgeKey inserts or replaces an edge keyframe.
func (s *Scene) SetEdgeKey(id vac.CellID, key vac.KeyEdgeGeometry) error {
	if err := s.topo.SetEdgeKey(id, key); err != nil {
		return err
	}
	s.touch()
	return nil
}

// RemoveVertexKey removes a vertex keyframe. Removing the last keyframe
// of a cell fails.
func (s *Scene) RemoveVertexKey(id vac.CellID, f vac.Frame) error {
	if err := s.topo.RemoveVertexKey(id, f); err != nil {
		return err
	}
	s.touch()
	return nil
}

// RemoveEdgeKey removes an edge keyframe. Removing the last keyframe of
// a cell fails.
func (s *Scene) RemoveEdgeKey(id vac.CellID, f vac.Frame) error {
	if err := s.topo.RemoveEdgeKey(id, f); err != nil {
		return err
	}
	s.touch()
	return nil
}

func (s *Scene) state() checkpoint {
	return checkpoint{topo: s.topo.Snapshot(), bg: s.bg.Data()}
}

// EmitCheckpoint records the current state as an undo step. Emitting
// when nothing changed since the last checkpoint is a no-op, so callers
// may emit unconditionally at gesture boundaries.
func (s *Scene) EmitCheckpoint() {
	if s.history.push(s.state()) {
		vac.Logger().Debug("scene checkpoint", "id", s.id, "revision", s.revision)
	}
}

// CanUndo reports whether Undo would restore an earlier checkpoint.
func (s *Scene) CanUndo() bool { return s.history.canUndo() }

// CanRedo reports whether Redo would restore a later checkpoint.
func (s *Scene) CanRedo() bool { return s.history.canRedo() }

// Undo restores the previous checkpoint. Edits made since the last
// EmitCheckpoint are discarded. It reports whether anything happened.
func (s *Scene) Undo() bool {
	cp, ok := s.history.undo()
	if !ok {
		return false
	}
	s.restore(cp)
	return true
}

// Redo restores the next checkpoint after an Undo.
func (s *Scene) Redo() bool {
	cp, ok := s.history.redo()
	if !ok {
		return false
	}
	s.restore(cp)
	return true
}

func (s *Scene) restore(cp checkpoint) {
	s.topo.Restore(cp.topo)
	// Through SetData so Background subscribers see the restore too.
	// They may hear the scene signal twice; over-notification is fine,
	// silence is not.
	s.bg.SetData(cp.bg)
	s.touch()
}
