package scene

import "github.com/gogpu/vac/topology"

// checkpoint is one undoable state of a scene: the full topology plus
// the background settings. Geometry lives inside the topology snapshot.
type checkpoint struct {
	topo *topology.Snapshot
	bg   BackgroundData
}

func (c checkpoint) equal(o checkpoint) bool {
	return c.bg == o.bg && c.topo.Equal(o.topo)
}

// history is a bounded linear undo stack of checkpoints. stack[cursor]
// is always the current state; entries after the cursor are the redo
// tail.
type history struct {
	stack  []checkpoint
	cursor int
	depth  int
}

// DefaultHistoryDepth bounds the number of undo steps a scene keeps.
const DefaultHistoryDepth = 100

func newHistory(depth int, initial checkpoint) *history {
	if depth <= 0 {
		depth = DefaultHistoryDepth
	}
	return &history{
		stack: []checkpoint{initial},
		depth: depth,
	}
}

// push records a new checkpoint. It is a no-op when cp equals the
// current state, so emitting a checkpoint after an aborted gesture
// costs nothing. Pushing truncates any redo tail.
func (h *history) push(cp checkpoint) bool {
	if cp.equal(h.stack[h.cursor]) {
		return false
	}
	h.stack = append(h.stack[:h.cursor+1], cp)
	h.cursor++
	if len(h.stack) > h.depth+1 {
		n := len(h.stack) - (h.depth + 1)
		h.stack = h.stack[n:]
		h.cursor -= n
	}
	return true
}

// undo steps back and returns the checkpoint to restore. Uncheckpointed
// edits in current are discarded.
func (h *history) undo() (checkpoint, bool) {
	if h.cursor == 0 {
		return checkpoint{}, false
	}
	h.cursor--
	return h.stack[h.cursor], true
}

func (h *history) redo() (checkpoint, bool) {
	if h.cursor >= len(h.stack)-1 {
		return checkpoint{}, false
	}
	h.cursor++
	return h.stack[h.cursor], true
}

func (h *history) canUndo() bool { return h.cursor > 0 }
func (h *history) canRedo() bool { return h.cursor < len(h.stack)-1 }
