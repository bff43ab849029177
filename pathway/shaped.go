// Copyright (c) 2025, The Pathml Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pathway

import (
	"pathml.dev/gpml/math32"
	"pathml.dev/gpml/styles"
)

// ShapedBase implements the common geometry and styling of the elements
// drawn as a placed box: data nodes, labels, shapes and groups. The
// local relative frame has the origin at Center and (±1, ±1) at the
// bounding box corners.
type ShapedBase struct {
	ElementBase
	groupable

	// Center is the element center in absolute board coordinates.
	// Set directly or through [ShapedBase.SetCenter].
	Center math32.Vector2

	// Size is the full width and height of the element.
	Size math32.Vector2

	// Font is the text styling of the element.
	Font styles.Font

	// Style is the border and fill styling of the element.
	Style styles.Shape
}

// init sets the concrete element back-pointer and the styling defaults.
func (sb *ShapedBase) init(this Element, size math32.Vector2) {
	sb.This = this
	sb.Size = size
	sb.Font.Defaults()
	sb.Style.Defaults()
}

// Bounds returns the element bounding box in absolute board coordinates.
func (sb *ShapedBase) Bounds() math32.Box2 {
	return math32.B2FromCenterSize(sb.Center, sb.Size)
}

// ToAbsolute maps a point in the local relative frame to absolute board
// coordinates.
func (sb *ShapedBase) ToAbsolute(rel math32.Vector2) math32.Vector2 {
	return frameToAbsolute(sb.Center, sb.Size, rel)
}

// ToRelative maps a point in absolute board coordinates to the local
// relative frame.
func (sb *ShapedBase) ToRelative(abs math32.Vector2) math32.Vector2 {
	return frameToRelative(sb.Center, sb.Size, abs)
}

// SetCenter moves the element to the given absolute center position and
// propagates the move to dependent elements. The Center field may also
// be written directly, followed by [Pathway.NotifyMoved].
func (sb *ShapedBase) SetCenter(c math32.Vector2) {
	sb.Center = c
	sb.moved()
}

// SetSize resizes the element and propagates the change, which moves
// every position derived from the element frame.
func (sb *ShapedBase) SetSize(s math32.Vector2) {
	sb.Size = s
	sb.moved()
}

func (sb *ShapedBase) moved() {
	if sb.pathway != nil && sb.This != nil {
		sb.pathway.NotifyMoved(sb.This)
	}
}

// frameToAbsolute maps a relative point on a center-origin box frame to
// absolute coordinates. A degenerate zero-size axis maps to the center.
func frameToAbsolute(center, size, rel math32.Vector2) math32.Vector2 {
	return center.Add(rel.Mul(size.MulScalar(0.5)))
}

// frameToRelative maps an absolute point to a center-origin box frame.
// A degenerate zero-size axis maps to relative 0.
func frameToRelative(center, size, abs math32.Vector2) math32.Vector2 {
	half := size.MulScalar(0.5)
	d := abs.Sub(center)
	var rel math32.Vector2
	if half.X != 0 {
		rel.X = d.X / half.X
	}
	if half.Y != 0 {
		rel.Y = d.Y / half.Y
	}
	return rel
}
