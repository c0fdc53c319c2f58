// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package view

import (
	vac "github.com/gogpu/vac"
	"github.com/gogpu/vac/render"
	"github.com/gogpu/vac/scene"
)

// View2D is an editing viewport onto a scene: a camera transform, a
// current frame, a renderer, and the tool set.
//
// The view subscribes to the scene and repaints lazily: any change
// marks it dirty and the next Repaint re-renders, otherwise the last
// framebuffer is reused.
type View2D struct {
	View

	scene    *scene.Scene
	renderer *render.SceneRenderer

	camera vac.Matrix
	frame  vac.Frame
	width  int
	height int

	token       scene.Token
	dirty       bool
	framebuffer *render.Pixmap
}

// View2DOption configures a View2D.
type View2DOption func(*View2D)

// WithRenderer substitutes the renderer, e.g. one sharing an image
// cache with other views.
func WithRenderer(r *render.SceneRenderer) View2DOption {
	return func(v *View2D) { v.renderer = r }
}

// NewView2D returns a view of s with an identity camera at frame 0.
// Close releases the scene subscription.
func NewView2D(s *scene.Scene, width, height int, opts ...View2DOption) *View2D {
	v := &View2D{
		scene:    s,
		renderer: render.NewSceneRenderer(),
		camera:   vac.Identity(),
		width:    width,
		height:   height,
		dirty:    true,
	}
	for _, opt := range opts {
		opt(v)
	}
	v.token = s.Subscribe(func() { v.dirty = true })
	return v
}

// Close unsubscribes the view from its scene.
func (v *View2D) Close() {
	v.scene.Unsubscribe(v.token)
}

// Scene returns the scene this view edits.
func (v *View2D) Scene() *scene.Scene { return v.scene }

// Frame returns the frame the view displays.
func (v *View2D) Frame() vac.Frame { return v.frame }

// SetFrame moves the view to frame f.
func (v *View2D) SetFrame(f vac.Frame) {
	if v.frame.Equal(f) {
		return
	}
	v.frame = f
	v.dirty = true
}

// Camera returns the document-to-view transform.
func (v *View2D) Camera() vac.Matrix { return v.camera }

// SetCamera replaces the document-to-view transform.
func (v *View2D) SetCamera(m vac.Matrix) {
	if v.camera == m {
		return
	}
	v.camera = m
	v.dirty = true
}

// Pan shifts the camera by (dx, dy) view pixels.
func (v *View2D) Pan(dx, dy float64) {
	v.SetCamera(vac.Translate(dx, dy).Mul(v.camera))
}

// Zoom scales the camera by factor around the view-pixel point center.
func (v *View2D) Zoom(factor float64, center vac.Point) {
	if factor <= 0 {
		return
	}
	m := vac.Translate(center.X, center.Y).
		Mul(vac.Scale(factor, factor)).
		Mul(vac.Translate(-center.X, -center.Y)).
		Mul(v.camera)
	v.SetCamera(m)
}

// SceneFromView maps a view-pixel position to document coordinates.
func (v *View2D) SceneFromView(p vac.Point) vac.Point {
	inv, ok := v.camera.Invert()
	if !ok {
		return p
	}
	return inv.Apply(p)
}

// Event builds a MouseEvent for a view-pixel position, filling in the
// document-space position.
func (v *View2D) Event(pos vac.Point, button MouseButton, mods Modifiers) MouseEvent {
	return MouseEvent{
		Pos:      pos,
		ScenePos: v.SceneFromView(pos),
		Button:   button,
		Mods:     mods,
	}
}

// Repaint returns the rendered frame, re-rendering only when the scene,
// camera, or frame changed since the last call.
func (v *View2D) Repaint() *render.Pixmap {
	if !v.dirty && v.framebuffer != nil {
		return v.framebuffer
	}
	v.framebuffer = v.renderer.Render(v.scene, v.frame, v.camera, v.width, v.height)
	v.dirty = false
	return v.framebuffer
}
