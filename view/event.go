// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package view

import vac "github.com/gogpu/vac"

// MouseButton identifies which button an event refers to.
type MouseButton int

const (
	ButtonNone MouseButton = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
)

// Modifiers is a bit set of keyboard modifiers held during an event.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
)

// Has reports whether all modifiers in mask are held.
func (m Modifiers) Has(mask Modifiers) bool { return m&mask == mask }

// MouseEvent carries one pointer event in both coordinate systems: Pos
// in view pixels and ScenePos in document coordinates. Actions almost
// always want ScenePos; Pos exists for view-space gestures like panning.
type MouseEvent struct {
	Pos      vac.Point
	ScenePos vac.Point
	Button   MouseButton
	Mods     Modifiers
}
