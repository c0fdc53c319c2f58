// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package view

import vac "github.com/gogpu/vac"

// PanAction drags the camera with the middle button, or Ctrl+left. The
// camera is view state, not document state, so panning never touches
// undo; cancelling snaps back to the camera the gesture started with.
type PanAction struct {
	view  *View2D
	last  vac.Point
	start vac.Matrix
}

// NewPanAction returns a pan tool moving v's camera.
func NewPanAction(v *View2D) *PanAction {
	return &PanAction{view: v}
}

func (a *PanAction) Name() string { return "pan" }

// TryCapture starts a drag on middle press or Ctrl+left press.
func (a *PanAction) TryCapture(ev MouseEvent) bool {
	if ev.Button != ButtonMiddle && !(ev.Button == ButtonLeft && ev.Mods.Has(ModCtrl)) {
		return false
	}
	a.last = ev.Pos
	a.start = a.view.Camera()
	return true
}

// OnMove pans by the pointer delta in view pixels.
func (a *PanAction) OnMove(ev MouseEvent) {
	a.view.Pan(ev.Pos.X-a.last.X, ev.Pos.Y-a.last.Y)
	a.last = ev.Pos
}

// OnRelease keeps the camera where the drag left it.
func (a *PanAction) OnRelease(ev MouseEvent) {}

// OnCancel restores the camera the gesture started with.
func (a *PanAction) OnCancel() {
	a.view.SetCamera(a.start)
}
