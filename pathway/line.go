// Copyright (c) 2025, The Pathml Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pathway

import (
	"fmt"
	"slices"

	"pathml.dev/gpml/math32"
	"pathml.dev/gpml/styles"
)

// LineBase implements the common structure of interactions and
// graphical lines: an ordered run of points, from start to end with
// optional interior waypoints, plus anchors pinned along the drawn
// line. Points and anchors are registered document elements owned by
// the line; they are added and removed with it.
type LineBase struct {
	ElementBase
	groupable

	// Style is the stroke and connector styling of the line.
	Style styles.Line

	points  []*LinePoint
	anchors []*Anchor
}

// init sets the concrete element back-pointer, styling defaults, and
// the start and end points every line has.
func (lb *LineBase) init(this Element) {
	lb.This = this
	lb.Style.Defaults()
	lb.points = []*LinePoint{newLinePoint(lb), newLinePoint(lb)}
}

// StartPoint returns the first point of the line.
func (lb *LineBase) StartPoint() *LinePoint { return lb.points[0] }

// EndPoint returns the last point of the line.
func (lb *LineBase) EndPoint() *LinePoint { return lb.points[len(lb.points)-1] }

// Points returns the points of the line in drawing order.
func (lb *LineBase) Points() []*LinePoint { return slices.Clone(lb.points) }

// Anchors returns the anchors pinned on the line.
func (lb *LineBase) Anchors() []*Anchor { return slices.Clone(lb.anchors) }

// Bounds returns the bounding box of the line's points in absolute
// board coordinates.
func (lb *LineBase) Bounds() math32.Box2 {
	b := math32.B2Empty()
	for _, pt := range lb.points {
		b = b.ExpandByPoint(pt.Position())
	}
	if b.IsEmpty() {
		return math32.Box2{}
	}
	return b
}

// NewAnchor creates an anchor on the line at the given fractional
// position in [0, 1] and registers it in the line's document. The line
// must be in a document first.
func (lb *LineBase) NewAnchor(position float32) (*Anchor, error) {
	pw, err := lb.attached()
	if err != nil {
		return nil, err
	}
	if position < 0 || position > 1 || math32.IsNaN(position) {
		return nil, fmt.Errorf("pathway: anchor position %v outside [0, 1]: %w", position, ErrInvalidRelativePosition)
	}
	a := &Anchor{Shape: AnchorNone, position: position, line: lb}
	a.This = a
	if err := pw.Add(a); err != nil {
		return nil, err
	}
	lb.anchors = append(lb.anchors, a)
	return a, nil
}

// RemoveAnchor removes the anchor from the line and its document,
// unlinking anything still linked to it. Removing an anchor that is
// not on the line is a no-op.
func (lb *LineBase) RemoveAnchor(a *Anchor) {
	if a == nil || a.line != lb {
		return
	}
	if lb.pathway != nil && a.pathway == lb.pathway {
		lb.pathway.remove(a)
		return
	}
	if i := slices.Index(lb.anchors, a); i >= 0 {
		lb.anchors = slices.Delete(lb.anchors, i, i+1)
	}
}

// NewWaypoint inserts a new interior point at the given index, which
// must be between 1 and len(Points())-1 so the start and end points
// keep their places. The new point starts at the midpoint of its
// neighbors. The line must be in a document so the point can be
// registered.
func (lb *LineBase) NewWaypoint(index int) (*LinePoint, error) {
	pw, err := lb.attached()
	if err != nil {
		return nil, err
	}
	if index < 1 || index > len(lb.points)-1 {
		return nil, fmt.Errorf("pathway: waypoint index %d out of range [1, %d]", index, len(lb.points)-1)
	}
	pt := newLinePoint(lb)
	pt.pos = lb.points[index-1].Position().Lerp(lb.points[index].Position(), 0.5)
	if err := pw.Add(pt); err != nil {
		return nil, err
	}
	lb.points = slices.Insert(lb.points, index, pt)
	return pt, nil
}

// RemoveWaypoint removes an interior point from the line, unlinking it
// first. The start and end points cannot be removed.
func (lb *LineBase) RemoveWaypoint(pt *LinePoint) error {
	i := slices.Index(lb.points, pt)
	if i < 0 {
		return fmt.Errorf("pathway: point is not on this line")
	}
	if i == 0 || i == len(lb.points)-1 {
		return fmt.Errorf("pathway: cannot remove a line end point")
	}
	lb.points = slices.Delete(lb.points, i, i+1)
	if lb.pathway != nil && pt.pathway == lb.pathway {
		lb.pathway.remove(pt)
	}
	return nil
}

// at returns the absolute position at the given fraction of the line's
// total polyline length, interpolating straight segments between the
// points.
func (lb *LineBase) at(fraction float32) math32.Vector2 {
	pts := lb.points
	if len(pts) == 0 {
		return math32.Vector2{}
	}
	if len(pts) == 1 || fraction <= 0 {
		return pts[0].Position()
	}
	total := float32(0)
	for i := 1; i < len(pts); i++ {
		total += pts[i-1].Position().DistanceTo(pts[i].Position())
	}
	if total == 0 {
		return pts[0].Position()
	}
	want := math32.Clamp(fraction, 0, 1) * total
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1].Position(), pts[i].Position()
		seg := a.DistanceTo(b)
		if seg > 0 && want <= seg {
			return a.Lerp(b, want/seg)
		}
		want -= seg
	}
	return pts[len(pts)-1].Position()
}

// LinePoint is one point of a line: the start, the end, or an interior
// waypoint. The embedded [LinkRef] holds its absolute position and the
// optional binding to a target element.
type LinePoint struct {
	ElementBase
	LinkRef

	// ArrowHead is the decoration drawn at this point.
	ArrowHead ArrowHeads

	line *LineBase
}

func newLinePoint(lb *LineBase) *LinePoint {
	pt := &LinePoint{ArrowHead: ArrowUndirected, line: lb}
	pt.This = pt
	pt.owner = pt
	return pt
}

func (pt *LinePoint) ObjectType() ObjectTypes { return ObjectLinePoint }

// Line returns the line element this point belongs to.
func (pt *LinePoint) Line() Element {
	if pt.line == nil {
		return nil
	}
	return pt.line.This
}

// Anchor is a point-sized link target pinned at a fractional position
// along a line. Other lines link to an anchor to branch off the line.
type Anchor struct {
	ElementBase

	// Shape is the visual marker drawn at the anchor.
	Shape AnchorShapes

	// position is the fractional location along the line, in [0, 1].
	position float32

	line *LineBase
}

func (a *Anchor) ObjectType() ObjectTypes { return ObjectAnchor }

// Line returns the line element this anchor sits on.
func (a *Anchor) Line() Element {
	if a.line == nil {
		return nil
	}
	return a.line.This
}

// Position returns the fractional location along the line, in [0, 1].
func (a *Anchor) Position() float32 { return a.position }

// SetPosition moves the anchor to the given fractional location along
// its line and propagates the move to linked elements. Fails with
// [ErrInvalidRelativePosition] outside [0, 1].
func (a *Anchor) SetPosition(position float32) error {
	if position < 0 || position > 1 || math32.IsNaN(position) {
		return fmt.Errorf("pathway: anchor position %v outside [0, 1]: %w", position, ErrInvalidRelativePosition)
	}
	a.position = position
	if a.pathway != nil {
		a.pathway.NotifyMoved(a)
	}
	return nil
}

// Location returns the anchor position in absolute board coordinates,
// interpolated along its line.
func (a *Anchor) Location() math32.Vector2 {
	if a.line == nil {
		return math32.Vector2{}
	}
	return a.line.at(a.position)
}

// Bounds returns a point-sized box at the anchor location.
func (a *Anchor) Bounds() math32.Box2 {
	loc := a.Location()
	return math32.Box2{Min: loc, Max: loc}
}

// ToAbsolute returns the anchor location: the anchor frame is a point,
// so every relative position maps to it.
func (a *Anchor) ToAbsolute(rel math32.Vector2) math32.Vector2 { return a.Location() }

// ToRelative maps every absolute position to the anchor frame origin.
func (a *Anchor) ToRelative(abs math32.Vector2) math32.Vector2 { return math32.Vector2{} }
