// Copyright (c) 2025, The Pathml Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pathway

import (
	"fmt"

	"pathml.dev/gpml/events"
	"pathml.dev/gpml/math32"
)

// Element is the identity contract shared by every pathway element.
// All elements embed [ElementBase], which implements everything here
// except ObjectType.
type Element interface {

	// AsElementBase returns the embedded [ElementBase], giving access to
	// the identity, comment, property and metadata reference functionality
	// common to all elements.
	AsElementBase() *ElementBase

	// ElementID returns the document-scoped identifier of this element,
	// or empty if none has been assigned yet.
	ElementID() string

	// Pathway returns the document this element belongs to,
	// or nil when detached.
	Pathway() *Pathway

	// ObjectType returns the concrete kind of this element.
	ObjectType() ObjectTypes
}

// Drawable is an [Element] that occupies space on the drawing board.
type Drawable interface {
	Element

	// Bounds returns the element bounding box in absolute board coordinates.
	Bounds() math32.Box2
}

// Linkable is a [Drawable] that can be the target of reference links.
// Its local frame has the element center at the origin, with relative
// coordinates in [-1, 1] per axis reaching the bounding box edges.
type Linkable interface {
	Drawable

	// ToAbsolute maps a point in the local relative frame to absolute
	// board coordinates.
	ToAbsolute(rel math32.Vector2) math32.Vector2

	// ToRelative maps a point in absolute board coordinates to the local
	// relative frame.
	ToRelative(abs math32.Vector2) math32.Vector2
}

// Groupable is a [Drawable] that can belong to a [Group].
type Groupable interface {
	Drawable

	// GroupRef returns the identifier of the group this element belongs
	// to, or empty if it is ungrouped.
	GroupRef() string

	setGroupRef(id string)
}

// ElementBase implements the common functionality of all pathway
// elements: document-scoped identity, comments, dynamic properties, and
// annotation, citation and evidence references. Concrete element types
// embed it (directly or through [ShapedBase] and [LineBase]) and add
// their geometry and data fields.
type ElementBase struct {

	// Comments are the free-text notes carried by this element.
	Comments []Comment

	// Properties are the dynamic key value properties of this element.
	// Use [ElementBase.SetProperty] and [ElementBase.DeleteProperty] to
	// mutate with change notification.
	Properties map[string]string

	// This is the element as its true concrete type. It allows methods
	// defined on the base types to reach the concrete element, and is set
	// by the element constructors and by [Pathway.Add].
	This Element `copier:"-" json:"-" xml:"-"`

	// id is the document-scoped identifier, registered while the element
	// is in a document.
	id string

	// pathway is the owning document, nil when detached.
	pathway *Pathway

	annotationRefs []string
	citationRefs   []string
	evidenceRefs   []string
}

// AsElementBase returns the receiver, giving the concrete element types
// a common accessor for the embedded base.
func (eb *ElementBase) AsElementBase() *ElementBase { return eb }

// ElementID returns the document-scoped identifier of this element,
// or empty if none has been assigned yet.
func (eb *ElementBase) ElementID() string { return eb.id }

// Pathway returns the document this element belongs to, or nil when
// detached.
func (eb *ElementBase) Pathway() *Pathway { return eb.pathway }

// SetElementID sets the element identifier. On a detached element the
// identifier is stored as given and validated when the element is added
// to a document. On an element in a document, the registry entry is
// renamed and every reference held under the old identifier (link
// targets, group references, alias references) is rewritten, firing
// [events.IDChanged] with the old identifier as the event name.
// Fails with [ErrDuplicateID] if the identifier is taken.
func (eb *ElementBase) SetElementID(id string) error {
	if eb.pathway == nil {
		eb.id = id
		return nil
	}
	return eb.pathway.rename(eb, id)
}

// SetProperty sets the dynamic property of the given key to the value.
func (eb *ElementBase) SetProperty(key, value string) {
	if eb.Properties == nil {
		eb.Properties = map[string]string{}
	}
	eb.Properties[key] = value
	eb.fire(events.PropertyChanged, key)
}

// Property returns the dynamic property of the given key,
// or empty if not set.
func (eb *ElementBase) Property(key string) string { return eb.Properties[key] }

// DeleteProperty deletes the dynamic property of the given key.
// Deleting an absent key is a no-op.
func (eb *ElementBase) DeleteProperty(key string) {
	if _, ok := eb.Properties[key]; !ok {
		return
	}
	delete(eb.Properties, key)
	eb.fire(events.PropertyChanged, key)
}

// fire emits an event through the owning document's listeners.
// Detached elements are silent.
func (eb *ElementBase) fire(typ events.Types, name string) {
	if eb.pathway == nil || eb.This == nil {
		return
	}
	eb.pathway.fire(events.Event{Type: typ, Source: eb.This, Name: name})
}

// attached returns the owning document, or an [ErrUnknownID] error when
// the element is detached and identifiers cannot be resolved.
func (eb *ElementBase) attached() (*Pathway, error) {
	if eb.pathway == nil {
		return nil, fmt.Errorf("pathway: element %q is not in a document: %w", eb.id, ErrUnknownID)
	}
	return eb.pathway, nil
}

// groupable holds the membership back-reference shared by the elements
// that can belong to a group. The reference is the owning group's
// identifier; membership is managed through [Group.AddMember] and
// [Group.RemoveMember], which keep both sides consistent.
type groupable struct {
	groupRef string
}

// GroupRef returns the identifier of the group this element belongs to,
// or empty if it is ungrouped.
func (g *groupable) GroupRef() string { return g.groupRef }

func (g *groupable) setGroupRef(id string) { g.groupRef = id }
