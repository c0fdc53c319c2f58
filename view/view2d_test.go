// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package view

import (
	"math"
	"testing"

	vac "github.com/gogpu/vac"
	"github.com/gogpu/vac/scene"
)

func newTestView(t *testing.T) *View2D {
	t.Helper()
	v := NewView2D(scene.NewScene(), 64, 64)
	t.Cleanup(v.Close)
	return v
}

func TestView2D_SceneFromView(t *testing.T) {
	v := newTestView(t)
	v.SetCamera(vac.Translate(10, 20).Mul(vac.Scale(2, 2)))

	got := v.SceneFromView(vac.Pt(10, 20))
	if math.Abs(got.X) > 1e-9 || math.Abs(got.Y) > 1e-9 {
		t.Errorf("SceneFromView = %v, want origin", got)
	}

	got = v.SceneFromView(vac.Pt(12, 24))
	if math.Abs(got.X-1) > 1e-9 || math.Abs(got.Y-2) > 1e-9 {
		t.Errorf("SceneFromView = %v, want (1, 2)", got)
	}
}

func TestView2D_ZoomKeepsCenterFixed(t *testing.T) {
	v := newTestView(t)
	center := vac.Pt(32, 32)
	before := v.SceneFromView(center)

	v.Zoom(2, center)
	after := v.SceneFromView(center)

	if math.Abs(after.X-before.X) > 1e-9 || math.Abs(after.Y-before.Y) > 1e-9 {
		t.Errorf("zoom moved the center: %v -> %v", before, after)
	}
}

func TestView2D_RepaintLazy(t *testing.T) {
	v := newTestView(t)

	pm1 := v.Repaint()
	pm2 := v.Repaint()
	if pm1 != pm2 {
		t.Error("clean view re-rendered")
	}

	v.Scene().Background().SetColor(vac.RGB(1, 0, 0))
	pm3 := v.Repaint()
	if pm3 == pm1 {
		t.Error("scene change did not trigger a repaint")
	}
	if got := pm3.GetPixel(0, 0); got != vac.RGB(1, 0, 0) {
		t.Errorf("repaint pixel = %v, want red", got)
	}

	v.SetFrame(5)
	if v.Repaint() == pm3 {
		t.Error("frame change did not trigger a repaint")
	}
}

func TestSketchAction_CommitsOnRelease(t *testing.T) {
	v := newTestView(t)
	s := v.Scene()
	v.AddAction(NewSketchAction(v, 4))

	v.MousePress(v.Event(vac.Pt(10, 10), ButtonLeft, 0))
	v.MouseMove(v.Event(vac.Pt(20, 10), ButtonLeft, 0))
	v.MouseMove(v.Event(vac.Pt(30, 12), ButtonLeft, 0))
	v.MouseRelease(v.Event(vac.Pt(40, 15), ButtonLeft, 0))

	// Two vertices and one edge, committed as a single undo step.
	if got := len(s.Topology().Cells()); got != 3 {
		t.Fatalf("cells = %d, want 3", got)
	}
	if !s.CanUndo() {
		t.Fatal("stroke did not create an undo step")
	}
	s.Undo()
	if got := len(s.Topology().Cells()); got != 0 {
		t.Errorf("cells after undo = %d, want 0; the stroke was not one step", got)
	}
}

func TestSketchAction_ClickCreatesVertex(t *testing.T) {
	v := newTestView(t)
	s := v.Scene()
	v.AddAction(NewSketchAction(v, 4))

	v.MousePress(v.Event(vac.Pt(10, 10), ButtonLeft, 0))
	v.MouseRelease(v.Event(vac.Pt(10, 10), ButtonLeft, 0))

	if got := len(s.Topology().Cells()); got != 1 {
		t.Fatalf("cells = %d, want 1", got)
	}
}

func TestSketchAction_CancelLeavesSceneUntouched(t *testing.T) {
	v := newTestView(t)
	s := v.Scene()
	v.AddAction(NewSketchAction(v, 4))

	before := s.Topology().Snapshot()
	rev := s.Revision()

	v.MousePress(v.Event(vac.Pt(10, 10), ButtonLeft, 0))
	v.MouseMove(v.Event(vac.Pt(20, 20), ButtonLeft, 0))
	v.MouseMove(v.Event(vac.Pt(30, 30), ButtonLeft, 0))
	v.CancelGesture()

	if !s.Topology().Snapshot().Equal(before) {
		t.Error("cancelled stroke changed the topology")
	}
	if s.Revision() != rev {
		t.Error("cancelled stroke bumped the revision")
	}
	if s.CanUndo() {
		t.Error("cancelled stroke left an undo step")
	}
}

func TestSketchAction_IgnoresOtherButtons(t *testing.T) {
	v := newTestView(t)
	v.AddAction(NewSketchAction(v, 4))

	v.MousePress(v.Event(vac.Pt(10, 10), ButtonRight, 0))
	if v.IsCapturing() {
		t.Error("sketch captured a right press")
	}
	v.MousePress(v.Event(vac.Pt(10, 10), ButtonLeft, ModCtrl))
	if v.IsCapturing() {
		t.Error("sketch captured a modified press")
	}
}

func TestPanAction_DragAndCancel(t *testing.T) {
	v := newTestView(t)
	v.AddAction(NewPanAction(v))
	start := v.Camera()

	v.MousePress(v.Event(vac.Pt(10, 10), ButtonMiddle, 0))
	v.MouseMove(v.Event(vac.Pt(25, 15), ButtonMiddle, 0))
	v.MouseRelease(v.Event(vac.Pt(25, 15), ButtonMiddle, 0))

	cam := v.Camera()
	if cam.C != start.C+15 || cam.F != start.F+5 {
		t.Errorf("camera translation = (%v, %v), want (+15, +5)", cam.C-start.C, cam.F-start.F)
	}

	// Cancelled drags snap back.
	v.MousePress(v.Event(vac.Pt(0, 0), ButtonMiddle, 0))
	v.MouseMove(v.Event(vac.Pt(50, 50), ButtonMiddle, 0))
	v.CancelGesture()
	if v.Camera() != cam {
		t.Error("cancelled pan did not restore the camera")
	}
}

func TestPanAction_DoesNotBlockSketch(t *testing.T) {
	v := newTestView(t)
	v.AddAction(NewPanAction(v))
	v.AddAction(NewSketchAction(v, 4))

	v.MousePress(v.Event(vac.Pt(10, 10), ButtonLeft, 0))
	if a := v.ActiveAction(); a == nil || a.Name() != "sketch" {
		t.Errorf("active action = %v, want sketch", a)
	}
	v.CancelGesture()

	v.MousePress(v.Event(vac.Pt(10, 10), ButtonLeft, ModCtrl))
	if a := v.ActiveAction(); a == nil || a.Name() != "pan" {
		t.Errorf("active action = %v, want pan", a)
	}
}
