// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package view

// MouseAction is one tool a view offers: sketching, panning, selecting.
//
// Actions follow a capture protocol. On a button press the view asks
// each registered action, in registration order, whether it wants the
// gesture; the first TryCapture returning true captures it and receives
// every subsequent OnMove until OnRelease or OnCancel. Exactly one
// action is ever captured at a time.
//
// A gesture is atomic with respect to undo: an action mutating the
// scene emits a checkpoint in OnRelease, and OnCancel must leave the
// scene as it was before TryCapture.
type MouseAction interface {
	// Name identifies the action in logs.
	Name() string

	// TryCapture reports whether this action wants the gesture starting
	// with ev.
	TryCapture(ev MouseEvent) bool

	// OnMove feeds a pointer move to the captured action.
	OnMove(ev MouseEvent)

	// OnRelease completes the gesture.
	OnRelease(ev MouseEvent)

	// OnCancel aborts the gesture, undoing any transient state.
	OnCancel()
}
