// Copyright (c) 2025, The Pathml Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pathway

import (
	"fmt"
	"slices"

	"pathml.dev/gpml/events"
	"pathml.dev/gpml/math32"
	"pathml.dev/gpml/styles"
)

// DataNode is the principal element of a pathway diagram: a gene
// product, metabolite, protein or other biological entity placed on
// the board. A node can carry modification states pinned to its frame,
// and a node of type [DataNodeAlias] can stand in for a group elsewhere
// on the diagram through its alias reference.
type DataNode struct {
	ShapedBase

	// TextLabel is the displayed node text.
	TextLabel string

	// Xref identifies the entity in an external database.
	Xref Xref

	typ      DataNodeTypes
	aliasRef string
	states   []*State
}

// NewDataNode returns a new detached data node with default styling.
func NewDataNode() *DataNode {
	dn := &DataNode{typ: DataNodeUndefined}
	dn.init(dn, math32.Vec2(80, 20))
	return dn
}

func (dn *DataNode) ObjectType() ObjectTypes { return ObjectDataNode }

// Type returns the biological entity type of the node.
func (dn *DataNode) Type() DataNodeTypes { return dn.typ }

// SetType sets the biological entity type. Changing an alias node to
// any other type clears its alias reference.
func (dn *DataNode) SetType(t DataNodeTypes) {
	if dn.typ == t {
		return
	}
	dn.typ = t
	if t != DataNodeAlias {
		dn.clearAliasRef()
	}
}

// AliasRef returns the identifier of the group this alias node stands
// for, or empty.
func (dn *DataNode) AliasRef() string { return dn.aliasRef }

// AliasFor resolves the group this alias node stands for, or nil.
func (dn *DataNode) AliasFor() *Group {
	if dn.pathway == nil || dn.aliasRef == "" {
		return nil
	}
	return dn.pathway.groupByID(dn.aliasRef)
}

// SetAliasRef points this alias node at the group with the given
// identifier; an empty identifier clears the reference. The node must
// be in a document and have type [DataNodeAlias], and the identifier
// must resolve ([ErrUnknownID]) to a group ([ErrWrongKind]). The
// document tracks the reference and clears it if the group is removed.
// Fires [events.LinkChanged].
func (dn *DataNode) SetAliasRef(groupID string) error {
	pw, err := dn.attached()
	if err != nil {
		return err
	}
	if groupID == "" {
		dn.clearAliasRef()
		return nil
	}
	if dn.typ != DataNodeAlias {
		return fmt.Errorf("pathway: alias reference on a %s node: %w", dn.typ, ErrWrongKind)
	}
	el := pw.ElementByID(groupID)
	if el == nil {
		return fmt.Errorf("pathway: alias target %q: %w", groupID, ErrUnknownID)
	}
	if _, ok := el.(*Group); !ok {
		return fmt.Errorf("pathway: alias target %q is a %s: %w", groupID, el.ObjectType(), ErrWrongKind)
	}
	if dn.aliasRef != "" {
		pw.dropAlias(dn)
	}
	dn.aliasRef = groupID
	pw.aliases[groupID] = append(pw.aliases[groupID], dn)
	dn.fire(events.LinkChanged, groupID)
	return nil
}

// clearAliasRef drops the alias reference and its index entry.
func (dn *DataNode) clearAliasRef() {
	if dn.aliasRef == "" {
		return
	}
	if dn.pathway != nil {
		dn.pathway.dropAlias(dn)
	}
	dn.aliasRef = ""
	dn.fire(events.LinkChanged, "")
}

// States returns the states attached to this node.
func (dn *DataNode) States() []*State { return slices.Clone(dn.states) }

// NewState creates a state on this node, registers it in the node's
// document, and links it to the node frame at the top right corner,
// relative position (1, 1). The node must be in a document first.
func (dn *DataNode) NewState() (*State, error) {
	pw, err := dn.attached()
	if err != nil {
		return nil, err
	}
	st := &State{Type: StateUndefined, Size: math32.Vec2(15, 15), node: dn}
	st.This = st
	st.owner = st
	st.Font.Defaults()
	st.Style.Defaults()
	if err := pw.Add(st); err != nil {
		return nil, err
	}
	if err := st.LinkTo(dn.id, 1, 1); err != nil {
		pw.remove(st)
		return nil, err
	}
	dn.states = append(dn.states, st)
	return st, nil
}

// RemoveState removes the state from this node and its document,
// unlinking anything still linked to it. Removing a state that is not
// on the node is a no-op.
func (dn *DataNode) RemoveState(st *State) {
	if st == nil || st.node != dn {
		return
	}
	if dn.pathway != nil && st.pathway == dn.pathway {
		dn.pathway.remove(st)
		return
	}
	if i := slices.Index(dn.states, st); i >= 0 {
		dn.states = slices.Delete(dn.states, i, i+1)
	}
}

// State is a modification badge attached to a data node: a
// phosphorylation site, a genetic variant, or similar. A state sits on
// its node's frame through the embedded [LinkRef]: its center follows
// the node as the node moves and resizes, defaulting to the top right
// corner.
type State struct {
	ElementBase
	LinkRef

	// TextLabel is the displayed state text, typically a short code
	// such as "P" for a phosphorylation site.
	TextLabel string

	// Type is the modification type of this state.
	Type StateTypes

	// Size is the full width and height of the state badge.
	Size math32.Vector2

	// Xref identifies the modification in an external database.
	Xref Xref

	// Font is the text styling of the state.
	Font styles.Font

	// Style is the border and fill styling of the state.
	Style styles.Shape

	node *DataNode
}

func (st *State) ObjectType() ObjectTypes { return ObjectState }

// Node returns the data node this state belongs to.
func (st *State) Node() *DataNode { return st.node }

// Bounds returns the state bounding box, centered on the state's
// position on its node frame.
func (st *State) Bounds() math32.Box2 {
	return math32.B2FromCenterSize(st.Position(), st.Size)
}

// ToAbsolute maps a point in the state's relative frame to absolute
// board coordinates.
func (st *State) ToAbsolute(rel math32.Vector2) math32.Vector2 {
	return frameToAbsolute(st.Position(), st.Size, rel)
}

// ToRelative maps a point in absolute board coordinates to the state's
// relative frame.
func (st *State) ToRelative(abs math32.Vector2) math32.Vector2 {
	return frameToRelative(st.Position(), st.Size, abs)
}
