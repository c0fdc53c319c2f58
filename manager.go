package vac

import (
	"math"
	"slices"

	"github.com/gogpu/vac/cache"
)

// LifetimePolicy controls what a geometry query returns for frames before
// the first or after the last keyframe of a cell.
type LifetimePolicy int

const (
	// ClampToLifetime returns the nearest keyframe's geometry for frames
	// outside the keyframed interval. Used when the caller already knows
	// the cell is alive (e.g. rendering a cell whose lifetime extends
	// beyond its keyframes).
	ClampToLifetime LifetimePolicy = iota

	// StrictLifetime reports OutOfLifetimeRangeError for frames outside
	// the keyframed interval. Used by cells whose lifetime does not
	// extend there.
	StrictLifetime
)

// edgeGeomKey identifies one interpolated edge geometry result. The cell
// revision is part of the key, so edits never serve stale entries.
type edgeGeomKey struct {
	cell  CellID
	rev   uint64
	frame uint64 // math.Float64bits of the query frame
}

// GeometryManager answers geometry queries of the form
// (cell, frame) -> geometry, given the cell's stored keyframes ordered by
// Frame. It owns no cells itself, only interpolation and caching logic.
//
// Queries are deterministic: identical inputs always yield bit-identical
// output. An exact keyframe match returns the stored geometry verbatim
// with no resampling; in-between frames interpolate linearly between the
// bounding keyframes (positions and widths lerped, curves resampled to a
// common sample count first).
//
// Returned curves may share storage with the keyframes or the cache and
// must be treated as read-only.
type GeometryManager struct {
	policy    LifetimePolicy
	edgeCache *cache.LRU[edgeGeomKey, EdgeCurve]
}

// ManagerOption configures a GeometryManager during creation.
type ManagerOption func(*managerOptions)

type managerOptions struct {
	cacheCapacity int
}

// WithCacheCapacity sets the maximum number of interpolated edge curves
// kept by the manager. Non-positive values select the default capacity.
func WithCacheCapacity(n int) ManagerOption {
	return func(o *managerOptions) {
		o.cacheCapacity = n
	}
}

// NewGeometryManager creates a manager with the given lifetime policy.
func NewGeometryManager(policy LifetimePolicy, opts ...ManagerOption) *GeometryManager {
	var o managerOptions
	for _, opt := range opts {
		opt(&o)
	}
	return &GeometryManager{
		policy:    policy,
		edgeCache: cache.NewLRU[edgeGeomKey, EdgeCurve](o.cacheCapacity),
	}
}

// Policy returns the manager's lifetime policy.
func (m *GeometryManager) Policy() LifetimePolicy {
	return m.policy
}

// CacheStats returns interpolation cache statistics.
func (m *GeometryManager) CacheStats() cache.Stats {
	return m.edgeCache.Stats()
}

// VertexAt returns the geometry of a vertex cell at frame f, given its
// keyframes ordered by Frame. keys must be non-empty and sorted.
func (m *GeometryManager) VertexAt(cell CellID, keys []KeyVertexGeometry, f Frame) (KeyVertexGeometry, error) {
	n := len(keys)
	if n == 0 {
		return KeyVertexGeometry{}, &OutOfLifetimeRangeError{Cell: cell, Frame: f}
	}

	// Exact keyframe match: return the stored record verbatim.
	if i, ok := slices.BinarySearchFunc(keys, f, func(k KeyVertexGeometry, f Frame) int {
		return compareFrames(k.Frame, f)
	}); ok {
		return keys[i], nil
	}

	before, after, err := bound(cell, f, n, m.policy, func(i int) Frame { return keys[i].Frame })
	if err != nil {
		return KeyVertexGeometry{}, err
	}
	if before == after {
		return keys[before], nil // clamped
	}
	t := interpParam(keys[before].Frame, keys[after].Frame, f)
	return keys[before].Lerp(keys[after], t), nil
}

// EdgeAt returns the geometry of an edge cell at frame f, given its
// keyframes ordered by Frame. rev is the cell's revision counter and is
// only used to key the interpolation cache; exact keyframe matches bypass
// the cache entirely.
func (m *GeometryManager) EdgeAt(cell CellID, rev uint64, keys []KeyEdgeGeometry, f Frame) (KeyEdgeGeometry, error) {
	n := len(keys)
	if n == 0 {
		return KeyEdgeGeometry{}, &OutOfLifetimeRangeError{Cell: cell, Frame: f}
	}

	if i, ok := slices.BinarySearchFunc(keys, f, func(k KeyEdgeGeometry, f Frame) int {
		return compareFrames(k.Frame, f)
	}); ok {
		return keys[i], nil
	}

	before, after, err := bound(cell, f, n, m.policy, func(i int) Frame { return keys[i].Frame })
	if err != nil {
		return KeyEdgeGeometry{}, err
	}
	if before == after {
		return keys[before], nil // clamped
	}

	key := edgeGeomKey{cell: cell, rev: rev, frame: math.Float64bits(float64(f))}
	if curve, ok := m.edgeCache.Get(key); ok {
		return KeyEdgeGeometry{Frame: f, Curve: curve}, nil
	}

	t := interpParam(keys[before].Frame, keys[after].Frame, f)
	curve := keys[before].Curve.Lerp(keys[after].Curve, t)
	m.edgeCache.Set(key, curve)
	return KeyEdgeGeometry{Frame: f, Curve: curve}, nil
}

// compareFrames orders frames with the same epsilon tolerance used by
// Frame.Equal, so binary search agrees with exact-match semantics.
func compareFrames(a, b Frame) int {
	if a.Equal(b) {
		return 0
	}
	if a.Less(b) {
		return -1
	}
	return 1
}

// bound returns the indices of the keyframes bounding f. When f lies
// outside the keyframed interval, both indices are the nearest keyframe
// under ClampToLifetime; StrictLifetime yields OutOfLifetimeRangeError.
func bound(cell CellID, f Frame, n int, policy LifetimePolicy, frameAt func(int) Frame) (before, after int, err error) {
	if f.Less(frameAt(0)) {
		if policy == StrictLifetime {
			return 0, 0, &OutOfLifetimeRangeError{Cell: cell, Frame: f}
		}
		return 0, 0, nil
	}
	if frameAt(n - 1).Less(f) {
		if policy == StrictLifetime {
			return 0, 0, &OutOfLifetimeRangeError{Cell: cell, Frame: f}
		}
		return n - 1, n - 1, nil
	}
	// f is strictly between two keyframes (exact matches were handled by
	// the caller).
	for i := 1; i < n; i++ {
		if f.Less(frameAt(i)) {
			return i - 1, i, nil
		}
	}
	return n - 1, n - 1, nil
}

// interpParam returns the normalized interpolation parameter of f within
// [f0, f1].
func interpParam(f0, f1, f Frame) float64 {
	return float64(f-f0) / float64(f1-f0)
}
