// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package view turns pointer input into document edits.
//
// A view owns an ordered list of MouseAction tools and a small capture
// state machine: Idle until some action claims a press, Capturing until
// that action's release or cancel. View2D adds a camera transform, a
// current frame, and lazy repainting on top.
package view

import vac "github.com/gogpu/vac"

type captureState int

const (
	stateIdle captureState = iota
	stateCapturing
)

// View dispatches mouse events to registered actions.
//
// The action list is append-only; registration order is priority order
// for capture. View is not safe for concurrent use.
type View struct {
	actions []MouseAction
	state   captureState
	active  MouseAction
}

// AddAction registers an action. Earlier registrations get the first
// chance to capture each gesture.
func (v *View) AddAction(a MouseAction) {
	v.actions = append(v.actions, a)
}

// IsCapturing reports whether a gesture is in progress.
func (v *View) IsCapturing() bool { return v.state == stateCapturing }

// ActiveAction returns the action owning the current gesture, or nil.
func (v *View) ActiveAction() MouseAction {
	if v.state != stateCapturing {
		return nil
	}
	return v.active
}

// MousePress offers ev to the actions in order. While a gesture is in
// progress further presses are swallowed; a gesture belongs to exactly
// one action from press to release.
func (v *View) MousePress(ev MouseEvent) {
	if v.state == stateCapturing {
		return
	}
	for _, a := range v.actions {
		if a.TryCapture(ev) {
			v.state = stateCapturing
			v.active = a
			vac.Logger().Debug("gesture captured", "action", a.Name())
			return
		}
	}
}

// MouseMove forwards ev to the capturing action, if any.
func (v *View) MouseMove(ev MouseEvent) {
	if v.state == stateCapturing {
		v.active.OnMove(ev)
	}
}

// MouseRelease completes the current gesture, if any.
func (v *View) MouseRelease(ev MouseEvent) {
	if v.state != stateCapturing {
		return
	}
	a := v.active
	v.state = stateIdle
	v.active = nil
	a.OnRelease(ev)
	vac.Logger().Debug("gesture released", "action", a.Name())
}

// CancelGesture aborts the current gesture, if any. The capturing
// action rolls back its transient state.
func (v *View) CancelGesture() {
	if v.state != stateCapturing {
		return
	}
	a := v.active
	v.state = stateIdle
	v.active = nil
	a.OnCancel()
	vac.Logger().Debug("gesture cancelled", "action", a.Name())
}
