// Copyright (c) 2025, The Pathml Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pathway

import (
	"fmt"
	"log/slog"

	"pathml.dev/gpml/events"
	"pathml.dev/gpml/math32"
)

// LinkRef is a rebindable directed edge from a referencing element (a
// line point or a state) to a [Linkable] target element, identified by
// the target's document-scoped id. It is either unlinked or linked:
//
//   - While linked, the relative position on the target frame is
//     authoritative and the absolute position is derived from the
//     target's current geometry, so dependents follow the target as it
//     moves or resizes.
//   - While unlinked, the stored absolute position is authoritative and
//     the relative position is ignored.
//
// Unlinking converts the derived position to absolute first, so the
// referencing element never jumps. The owning document indexes every
// linked reference under its target id; [Pathway.Referrers] and move
// propagation are driven by that index.
type LinkRef struct {
	owner    Element
	targetID string
	rel      math32.Vector2

	// pos is the last known absolute position: authoritative while
	// unlinked, a fallback if the target id ever fails to resolve.
	pos math32.Vector2

	// deriving marks a position derivation in progress, so a derivation
	// that cycles back to this reference terminates at pos.
	deriving bool
}

// Owner returns the element this reference belongs to.
func (lr *LinkRef) Owner() Element { return lr.owner }

// Linked reports whether the reference currently has a target.
func (lr *LinkRef) Linked() bool { return lr.targetID != "" }

// TargetID returns the identifier of the linked target, or empty.
func (lr *LinkRef) TargetID() string { return lr.targetID }

// Relative returns the stored relative position on the target frame.
// It is meaningful only while linked.
func (lr *LinkRef) Relative() math32.Vector2 { return lr.rel }

// Target resolves the linked target in the owner's document, returning
// nil when unlinked or detached.
func (lr *LinkRef) Target() Linkable {
	pw := lr.pw()
	if pw == nil || lr.targetID == "" {
		return nil
	}
	t, _ := pw.ElementByID(lr.targetID).(Linkable)
	return t
}

// LinkTo links the reference to the element registered under the given
// id, at the given position on the target's relative frame. It may be
// called on an unlinked or a linked reference; relinking moves the
// reference between the document's referrer buckets. Preconditions are
// checked before any mutation: the owner must be in a document, the id
// must resolve ([ErrUnknownID]) to a [Linkable] element
// ([ErrNotLinkable]) whose geometry does not derive from the owner
// ([ErrLinkCycle]), and rx, ry must lie in [-1, 1]
// ([ErrInvalidRelativePosition]). Fires [events.LinkChanged].
func (lr *LinkRef) LinkTo(id string, rx, ry float32) error {
	if lr.owner == nil {
		return fmt.Errorf("pathway: link has no owner element: %w", ErrNilElement)
	}
	pw, err := lr.owner.AsElementBase().attached()
	if err != nil {
		return err
	}
	if err := checkRelative(rx, ry); err != nil {
		return err
	}
	el := pw.ElementByID(id)
	if el == nil {
		return fmt.Errorf("pathway: link target %q: %w", id, ErrUnknownID)
	}
	target, ok := el.(Linkable)
	if !ok {
		return fmt.Errorf("pathway: link target %q is a %s: %w", id, el.ObjectType(), ErrNotLinkable)
	}
	dep := lr.owner
	if pt, ok := lr.owner.(*LinePoint); ok && pt.line != nil && pt.line.This != nil {
		dep = pt.line.This
	}
	if geometryDependsOn(target, dep, map[Element]bool{}) {
		return fmt.Errorf("pathway: link target %q derives its position from %q: %w", id, dep.ElementID(), ErrLinkCycle)
	}
	if lr.targetID != "" {
		pw.deindexRef(lr)
	}
	lr.targetID = id
	lr.rel.Set(rx, ry)
	lr.pos = target.ToAbsolute(lr.rel)
	pw.indexRef(lr)
	lr.owner.AsElementBase().fire(events.LinkChanged, id)
	return nil
}

// Unlink disconnects the reference from its target, converting the
// exposed position to absolute board coordinates first so the owner
// stays where it was. Unlinking an unlinked reference is a no-op.
// Fires [events.LinkChanged].
func (lr *LinkRef) Unlink() {
	if lr.targetID == "" {
		return
	}
	if t := lr.Target(); t != nil {
		lr.pos = t.ToAbsolute(lr.rel)
	} else {
		slog.Error("pathway: unlinking from a target that no longer resolves; keeping last known position", "target", lr.targetID)
	}
	if pw := lr.pw(); pw != nil {
		pw.deindexRef(lr)
	}
	lr.targetID = ""
	if lr.owner != nil {
		lr.owner.AsElementBase().fire(events.LinkChanged, "")
	}
}

// SetRelative sets the position on the target's relative frame.
// Fails with [ErrInvalidRelativePosition] if rx or ry falls outside
// [-1, 1], leaving the reference unchanged. On a linked reference the
// owner's derived position changes, so the move is propagated.
func (lr *LinkRef) SetRelative(rx, ry float32) error {
	if err := checkRelative(rx, ry); err != nil {
		return err
	}
	lr.rel.Set(rx, ry)
	if lr.targetID == "" {
		return nil
	}
	if t := lr.Target(); t != nil {
		lr.pos = t.ToAbsolute(lr.rel)
	}
	if pw := lr.pw(); pw != nil && lr.owner != nil {
		pw.NotifyMoved(lr.owner)
	}
	return nil
}

// Position returns the absolute board position of the reference:
// derived from the target frame while linked, the stored position
// otherwise. A derivation that reaches this reference again, through a
// cycle of links closed by group membership, terminates at the last
// known position.
func (lr *LinkRef) Position() math32.Vector2 {
	if lr.targetID == "" || lr.deriving {
		return lr.pos
	}
	if t := lr.Target(); t != nil {
		lr.deriving = true
		lr.pos = t.ToAbsolute(lr.rel)
		lr.deriving = false
	}
	return lr.pos
}

// SetPosition moves the reference to the given absolute board position.
// On a linked reference the relative position is re-derived from the
// target frame, clamped to [-1, 1] per axis; on an unlinked reference
// the position is stored as given. The move is propagated to dependents.
func (lr *LinkRef) SetPosition(p math32.Vector2) {
	if t := lr.Target(); t != nil {
		r := t.ToRelative(p)
		lr.rel.Set(math32.Clamp(r.X, -1, 1), math32.Clamp(r.Y, -1, 1))
		lr.pos = t.ToAbsolute(lr.rel)
	} else {
		lr.pos = p
	}
	if pw := lr.pw(); pw != nil && lr.owner != nil {
		pw.NotifyMoved(lr.owner)
	}
}

// referentMoved refreshes the cached absolute position after the target
// geometry changed. Called from the document's move propagation.
func (lr *LinkRef) referentMoved() {
	if t := lr.Target(); t != nil {
		lr.pos = t.ToAbsolute(lr.rel)
		return
	}
	slog.Error("pathway: link target missing while propagating a move", "target", lr.targetID)
}

func (lr *LinkRef) pw() *Pathway {
	if lr.owner == nil {
		return nil
	}
	return lr.owner.Pathway()
}

// geometryDependsOn reports whether the absolute geometry of el
// derives, directly or through further links and group members, from
// the geometry of dep. [LinkRef.LinkTo] refuses targets that depend on
// the element the requesting link positions.
func geometryDependsOn(el, dep Element, visited map[Element]bool) bool {
	if el == nil || visited[el] {
		return false
	}
	if el == dep {
		return true
	}
	visited[el] = true
	switch t := el.(type) {
	case *Anchor:
		return t.line != nil && geometryDependsOn(t.line.This, dep, visited)
	case *State:
		return t.Linked() && geometryDependsOn(t.Target(), dep, visited)
	case *Interaction:
		return lineDependsOn(&t.LineBase, dep, visited)
	case *GraphicalLine:
		return lineDependsOn(&t.LineBase, dep, visited)
	case *Group:
		for _, m := range t.members {
			if geometryDependsOn(m, dep, visited) {
				return true
			}
		}
	}
	return false
}

// lineDependsOn reports whether any linked point of the line depends on
// the geometry of dep.
func lineDependsOn(lb *LineBase, dep Element, visited map[Element]bool) bool {
	for _, pt := range lb.points {
		if pt.Linked() && geometryDependsOn(pt.Target(), dep, visited) {
			return true
		}
	}
	return false
}

// checkRelative validates a relative frame coordinate pair.
func checkRelative(rx, ry float32) error {
	if rx < -1 || rx > 1 || ry < -1 || ry > 1 || math32.IsNaN(rx) || math32.IsNaN(ry) {
		return fmt.Errorf("pathway: relative position (%v, %v) outside [-1, 1]: %w", rx, ry, ErrInvalidRelativePosition)
	}
	return nil
}
