// Copyright (c) 2025, The Pathml Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pathway

import (
	"fmt"
	"log/slog"
	"slices"

	"pathml.dev/gpml/events"
	"pathml.dev/gpml/math32"
)

// GroupMargin is the padding added around the member bounds when
// deriving a group's own bounds.
const GroupMargin float32 = 8

// Group collects member elements into one unit: a complex, a pathway
// region, or a plain visual grouping. Membership is bidirectional: the
// group holds its member list and every member holds the group's
// identifier as its group reference, and the two always agree. A group
// is itself groupable, so groups nest; a group can never contain
// itself, directly or transitively.
//
// A group's bounds derive from its members, so it moves and resizes
// with them. Removing a group from its document releases the members
// without deleting them.
type Group struct {
	ShapedBase

	// TextLabel is the displayed group text.
	TextLabel string

	// Type is the grouping semantics of this group.
	Type GroupTypes

	// Xref identifies the grouped entity, such as a protein complex,
	// in an external database.
	Xref Xref

	members []Groupable
}

// NewGroup returns a new detached group with default styling.
func NewGroup() *Group {
	g := &Group{Type: GroupTypeGroup}
	g.init(g, math32.Vector2{})
	return g
}

func (g *Group) ObjectType() ObjectTypes { return ObjectGroup }

// Members returns the member elements in the order they were added.
func (g *Group) Members() []Groupable { return slices.Clone(g.members) }

// Aliases returns the alias data nodes standing for this group
// elsewhere on the diagram.
func (g *Group) Aliases() []*DataNode {
	if g.pathway == nil {
		return nil
	}
	return slices.Clone(g.pathway.aliases[g.id])
}

// AddMember adds the element to this group and points the element's
// group reference back at it; both sides mutate together. Re-adding a
// current member is a no-op, and an element in a different group is
// moved to this one. The group and the element must be in the same
// document. Fails with [ErrNilElement] on a nil element,
// [ErrUnknownID] when either side is detached or in another document,
// and [ErrInconsistentMembership] when the addition would make a group
// contain itself, directly or transitively.
// Fires [events.GroupChanged].
func (g *Group) AddMember(el Groupable) error {
	if el == nil {
		return fmt.Errorf("pathway: group member: %w", ErrNilElement)
	}
	pw, err := g.attached()
	if err != nil {
		return err
	}
	if el.Pathway() != pw {
		return fmt.Errorf("pathway: member %q is not in this document: %w", el.ElementID(), ErrUnknownID)
	}
	if el.GroupRef() == g.id {
		return nil
	}
	if member, ok := el.(*Group); ok {
		for p := g; p != nil; p = pw.groupByID(p.GroupRef()) {
			if p == member {
				return fmt.Errorf("pathway: group %q cannot contain itself: %w", member.id, ErrInconsistentMembership)
			}
		}
	}
	if prev := pw.groupByID(el.GroupRef()); prev != nil {
		prev.RemoveMember(el)
	}
	el.setGroupRef(g.id)
	g.members = append(g.members, el)
	el.AsElementBase().fire(events.GroupChanged, g.id)
	return nil
}

// RemoveMember removes the element from this group: the element's
// group reference is cleared and the element leaves the member list,
// both sides together. Removing an element that is not a member is a
// no-op. Fires [events.GroupChanged].
func (g *Group) RemoveMember(el Groupable) {
	if el == nil {
		return
	}
	inRef := g.id != "" && el.GroupRef() == g.id
	idx := slices.Index(g.members, el)
	if !inRef && idx < 0 {
		return
	}
	if inRef != (idx >= 0) {
		slog.Error("pathway: group membership was inconsistent; repairing", "group", g.id, "member", el.ElementID())
	}
	if idx >= 0 {
		g.members = slices.Delete(g.members, idx, idx+1)
	}
	if inRef {
		el.setGroupRef("")
	}
	el.AsElementBase().fire(events.GroupChanged, g.id)
}

// RemoveAllMembers removes every member from the group. The members
// stay in the document, ungrouped.
func (g *Group) RemoveAllMembers() {
	for _, m := range slices.Clone(g.members) {
		g.RemoveMember(m)
	}
}

// Bounds returns the union of the member bounds expanded by
// [GroupMargin]. A group without members falls back to the box of its
// stored center and size.
func (g *Group) Bounds() math32.Box2 {
	if len(g.members) == 0 {
		return g.ShapedBase.Bounds()
	}
	b := math32.B2Empty()
	for _, m := range g.members {
		b = b.Union(m.Bounds())
	}
	return b.ExpandByScalar(GroupMargin)
}

// ToAbsolute maps a point in the group's relative frame, derived from
// the member bounds, to absolute board coordinates.
func (g *Group) ToAbsolute(rel math32.Vector2) math32.Vector2 {
	b := g.Bounds()
	return frameToAbsolute(b.Center(), b.Size(), rel)
}

// ToRelative maps a point in absolute board coordinates to the group's
// relative frame.
func (g *Group) ToRelative(abs math32.Vector2) math32.Vector2 {
	b := g.Bounds()
	return frameToRelative(b.Center(), b.Size(), abs)
}
