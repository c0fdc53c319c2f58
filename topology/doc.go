// Package topology implements the cell complex of a vector animation:
// vertices and edges with existence lifetimes and keyframed geometry.
//
// The container type is Complex. All mutating operations validate their
// inputs fully before touching any state, so a failed operation leaves
// the complex exactly as it was. Edges hold back-references to their
// endpoint vertices by CellID; the invariant that both endpoints are
// alive for every frame the edge is alive is enforced at creation and
// preserved by deletion (removing a vertex removes its incident edges).
//
// Cell IDs and revision counters ratchet forward for the lifetime of a
// Complex, including across Restore, so no identifier or cache key is
// ever ambiguous after undo/redo.
package topology
