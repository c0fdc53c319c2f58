// Package vac provides the core data model for time-varying 2D vector
// graphics: a vector animation complex.
//
// # Overview
//
// vac models drawings whose topology and geometry change over time. The
// root package holds the geometry layer: the Frame time scalar, 2D
// primitives (Point, Vec2, Matrix, Rect), variable-width stroke curves
// (EdgeCurve), per-keyframe geometry records (KeyVertexGeometry,
// KeyEdgeGeometry) and the GeometryManager that answers "what does this
// cell look like at frame f".
//
// Higher layers build on it:
//   - topology: vertices and edges with lifetimes and keyframe sequences
//   - scene: the mutable document (topology + background + undo history)
//   - render: pure Scene-state -> pixels rendering with caching
//   - view: interactive views dispatching input to mouse actions (tools)
//
// # Quick Start
//
//	doc := scene.NewScene()
//	life := vac.FrameRange{Min: 1, Max: 10}
//	v1, _ := doc.CreateVertex(life, vac.KeyVertexGeometry{Frame: 1, Pos: vac.Pt(0, 0)})
//	v2, _ := doc.CreateVertex(life, vac.KeyVertexGeometry{Frame: 1, Pos: vac.Pt(100, 0)})
//	curve := vac.EdgeCurveBetween(vac.Pt(0, 0), vac.Pt(100, 0), 2)
//	doc.CreateEdge(life, v1, v2, vac.KeyEdgeGeometry{Frame: 1, Curve: curve})
//	doc.EmitCheckpoint()
//
// # Time model
//
// Geometry is stored only at keyframes. Queries at a keyframe return the
// stored geometry verbatim; queries between keyframes interpolate
// linearly and deterministically, so repeated queries (and undo/redo
// replay) always produce bit-identical results.
package vac
