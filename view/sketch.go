// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package view

import (
	vac "github.com/gogpu/vac"
)

// SketchAction draws strokes. The pending stroke lives only in the
// action while the gesture runs; cells are created on release, as a
// single undo step. Cancelling discards the stroke without touching the
// scene.
type SketchAction struct {
	view  *View2D
	width float64

	pending vac.EdgeCurve
}

// DefaultSketchWidth is the stroke width of a new sketch tool.
const DefaultSketchWidth = 4

// NewSketchAction returns a sketch tool drawing on v's scene at v's
// current frame. A width of zero or less falls back to
// DefaultSketchWidth.
func NewSketchAction(v *View2D, width float64) *SketchAction {
	if width <= 0 {
		width = DefaultSketchWidth
	}
	return &SketchAction{view: v, width: width}
}

func (a *SketchAction) Name() string { return "sketch" }

// TryCapture starts a stroke on a plain left press.
func (a *SketchAction) TryCapture(ev MouseEvent) bool {
	if ev.Button != ButtonLeft || ev.Mods != 0 {
		return false
	}
	a.pending = vac.EdgeCurveOf(vac.CurveSample{Pos: ev.ScenePos, Width: a.width})
	return true
}

// OnMove extends the pending stroke.
func (a *SketchAction) OnMove(ev MouseEvent) {
	if ev.ScenePos != a.pending.End() {
		a.pending.Append(ev.ScenePos, a.width)
	}
}

// OnRelease commits the stroke: two vertices and an edge for a drawn
// curve, a single vertex for a click, then one checkpoint.
func (a *SketchAction) OnRelease(ev MouseEvent) {
	if ev.ScenePos != a.pending.End() {
		a.pending.Append(ev.ScenePos, a.width)
	}
	curve := a.pending
	a.pending = vac.EdgeCurve{}

	s := a.view.Scene()
	f := a.view.Frame()
	lifetime := vac.FrameRange{Min: f, Max: f}

	if curve.Len() < 2 {
		if _, err := s.CreateVertex(lifetime, vac.KeyVertexGeometry{
			Frame: f, Pos: curve.Start(), Width: a.width,
		}); err != nil {
			vac.Logger().Warn("sketch vertex failed", "error", err)
			return
		}
		s.EmitCheckpoint()
		return
	}

	v0, err := s.CreateVertex(lifetime, vac.KeyVertexGeometry{
		Frame: f, Pos: curve.Start(), Width: a.width,
	})
	if err != nil {
		vac.Logger().Warn("sketch start vertex failed", "error", err)
		return
	}
	v1, err := s.CreateVertex(lifetime, vac.KeyVertexGeometry{
		Frame: f, Pos: curve.End(), Width: a.width,
	})
	if err != nil {
		vac.Logger().Warn("sketch end vertex failed", "error", err)
		_ = s.DeleteCell(v0)
		return
	}
	if _, err := s.CreateEdge(lifetime, v0, v1, vac.KeyEdgeGeometry{
		Frame: f, Curve: curve,
	}); err != nil {
		vac.Logger().Warn("sketch edge failed", "error", err)
		_ = s.DeleteCell(v0)
		_ = s.DeleteCell(v1)
		return
	}
	s.EmitCheckpoint()
}

// OnCancel discards the pending stroke. Nothing was committed, so the
// scene is untouched.
func (a *SketchAction) OnCancel() {
	a.pending = vac.EdgeCurve{}
}
