// Copyright (c) 2025, The Pathml Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pathway

import (
	"fmt"
	"image/color"
	"log/slog"
	"slices"

	"pathml.dev/gpml/base/randx"
	"pathml.dev/gpml/events"
	"pathml.dev/gpml/math32"
	"pathml.dev/gpml/styles"
)

// Pathway is one pathway document: the authoritative registry of its
// elements, the reverse reference index resolving identifiers to the
// links targeting them, and the document-level metadata. Elements are
// created detached, added with [Pathway.Add], and refer to one another
// by identifier, resolved through the document.
//
// A Pathway is not safe for concurrent use. All mutations run
// synchronously to completion; an embedding application that needs
// concurrent access should serialize at the document boundary.
type Pathway struct {

	// Title names the pathway.
	Title string

	// Organism is the species the pathway describes.
	Organism string

	// Source says where the document came from.
	Source string

	// Version is the document version at its source.
	Version string

	// License is the document license.
	License string

	// Description is a free-text description of the pathway.
	Description string

	// Authors lists the document authors.
	Authors []Author

	// Comments are free-text notes on the document.
	Comments []Comment

	// BoardSize is the extent of the drawing board.
	BoardSize math32.Vector2

	// BackgroundColor is the board background.
	BackgroundColor color.RGBA

	reg       registry
	refs      map[string][]*LinkRef
	aliases   map[string][]*DataNode
	listeners events.Listeners
}

// New returns a new empty pathway document.
func New() *Pathway {
	pw := &Pathway{
		refs:            map[string][]*LinkRef{},
		aliases:         map[string][]*DataNode{},
		BackgroundColor: styles.White,
	}
	pw.reg.rand = &randx.SysRand{}
	return pw
}

// SetRand sets the random source used for identifier generation.
// Tests use a seeded source for deterministic identifiers.
func (pw *Pathway) SetRand(r randx.Rand) { pw.reg.rand = r }

// On registers a listener for the given event type. Listeners run
// synchronously in registration order, after the mutation they report
// has been applied.
func (pw *Pathway) On(typ events.Types, fun func(events.Event)) {
	pw.listeners.Add(typ, fun)
}

func (pw *Pathway) fire(ev events.Event) { pw.listeners.Call(ev) }

// ElementByID returns the element registered under the identifier,
// or nil if there is none.
func (pw *Pathway) ElementByID(id string) Element { return pw.reg.at(id) }

// Elements returns all registered elements in document order.
func (pw *Pathway) Elements() []Element { return slices.Clone(pw.reg.elems.Values) }

// GenerateID returns a fresh identifier not registered in the
// document. The identifier is not reserved; it is registered by
// assigning it to an element and adding the element.
func (pw *Pathway) GenerateID() string { return pw.reg.generateID() }

// Referrers returns the reference links currently targeting the given
// identifier, resolved through the reverse reference index.
func (pw *Pathway) Referrers(id string) []*LinkRef {
	return slices.Clone(pw.refs[id])
}

// Add adds the element and its dependent parts (a line's points and
// anchors, a data node's states) to the document. An element with no
// identifier gets a generated one, drawn to collide with neither the
// document nor the rest of the batch; a preset identifier must not
// collide ([ErrDuplicateID]). Fails with [ErrNilElement] on nil and
// [ErrAlreadyOwned] if the element is already in a document. On
// failure nothing is registered. Fires [events.Added] per added
// element, in registration order.
func (pw *Pathway) Add(el Element) error {
	if el == nil {
		return fmt.Errorf("pathway: Add: %w", ErrNilElement)
	}
	els := withDependents(el)
	ids := map[string]bool{}
	for _, e := range els {
		eb := e.AsElementBase()
		if eb.pathway != nil {
			return fmt.Errorf("pathway: element %q: %w", eb.id, ErrAlreadyOwned)
		}
		if eb.id == "" {
			continue
		}
		if pw.reg.elems.Has(eb.id) || ids[eb.id] {
			return fmt.Errorf("pathway: id %q: %w", eb.id, ErrDuplicateID)
		}
		ids[eb.id] = true
	}
	for _, e := range els {
		eb := e.AsElementBase()
		if eb.id != "" {
			continue
		}
		id := pw.reg.generateID()
		for ids[id] {
			id = pw.reg.generateID()
		}
		eb.id = id
		ids[id] = true
	}
	for _, e := range els {
		eb := e.AsElementBase()
		if eb.This == nil {
			eb.This = e
		}
		if err := pw.reg.add(eb.id, e); err != nil {
			slog.Error("pathway: registration failed after id validation", "id", eb.id, "err", err)
			continue
		}
		eb.pathway = pw
	}
	for _, e := range els {
		pw.fire(events.Event{Type: events.Added, Source: e})
	}
	return nil
}

// withDependents returns the element together with the dependent parts
// that register and unregister with it.
func withDependents(el Element) []Element {
	els := []Element{el}
	switch t := el.(type) {
	case *DataNode:
		for _, st := range t.states {
			els = append(els, st)
		}
	case *Interaction:
		els = appendLineParts(els, &t.LineBase)
	case *GraphicalLine:
		els = appendLineParts(els, &t.LineBase)
	}
	return els
}

func appendLineParts(els []Element, lb *LineBase) []Element {
	for _, pt := range lb.points {
		els = append(els, pt)
	}
	for _, a := range lb.anchors {
		els = append(els, a)
	}
	return els
}

// Remove removes the element from the document after disconnecting
// everything that involves it: inbound reference links are unlinked at
// their current positions, dependent parts (states, points, anchors)
// are removed, group membership is released on both sides, alias and
// metadata references are detached, and the identifier is
// unregistered. Removing a group releases its members without deleting
// them. The element itself is left intact but detached.
// Fails with [ErrNilElement] on nil and [ErrUnknownID] when the
// element is not in this document. Fires [events.Removed] per removed
// element, after its teardown.
func (pw *Pathway) Remove(el Element) error {
	if el == nil {
		return fmt.Errorf("pathway: Remove: %w", ErrNilElement)
	}
	eb := el.AsElementBase()
	if eb.pathway != pw {
		return fmt.Errorf("pathway: element %q is not in this document: %w", eb.id, ErrUnknownID)
	}
	if pt, ok := el.(*LinePoint); ok && pt.line != nil && pt.line.pathway == pw {
		return fmt.Errorf("pathway: point %q belongs to its line; remove the line instead", eb.id)
	}
	pw.remove(el)
	return nil
}

// remove tears one element down in dependency order. Inbound links
// unlink first, while the element geometry is still live, so their
// owners keep their absolute positions.
func (pw *Pathway) remove(el Element) {
	eb := el.AsElementBase()

	for _, lr := range slices.Clone(pw.refs[eb.id]) {
		lr.Unlink()
	}
	delete(pw.refs, eb.id)

	switch t := el.(type) {
	case *DataNode:
		for _, st := range slices.Clone(t.states) {
			pw.remove(st)
		}
		t.clearAliasRef()
	case *Interaction:
		pw.removeLineParts(&t.LineBase)
	case *GraphicalLine:
		pw.removeLineParts(&t.LineBase)
	case *State:
		t.Unlink()
		if t.node != nil {
			if i := slices.Index(t.node.states, t); i >= 0 {
				t.node.states = slices.Delete(t.node.states, i, i+1)
			}
		}
	case *LinePoint:
		t.Unlink()
	case *Anchor:
		if t.line != nil {
			if i := slices.Index(t.line.anchors, t); i >= 0 {
				t.line.anchors = slices.Delete(t.line.anchors, i, i+1)
			}
		}
	case *Group:
		t.RemoveAllMembers()
		for _, dn := range slices.Clone(pw.aliases[eb.id]) {
			dn.clearAliasRef()
		}
	}

	if g, ok := el.(Groupable); ok && g.GroupRef() != "" {
		if grp := pw.groupByID(g.GroupRef()); grp != nil {
			grp.RemoveMember(g)
		} else {
			slog.Error("pathway: removing a member of a missing group", "member", eb.id, "group", g.GroupRef())
			g.setGroupRef("")
		}
	}

	pw.detachMetaRefs(el)
	pw.reg.delete(eb.id)
	eb.pathway = nil
	pw.fire(events.Event{Type: events.Removed, Source: el})
}

// removeLineParts removes a line's anchors, then its points. The
// points stay on the line for re-adding; the anchors do not.
func (pw *Pathway) removeLineParts(lb *LineBase) {
	for _, a := range slices.Clone(lb.anchors) {
		pw.remove(a)
	}
	lb.anchors = nil
	for _, pt := range lb.points {
		pw.remove(pt)
	}
}

// rename re-keys the element under a new identifier and rewrites every
// reference held under the old one: link target identifiers, alias
// references, member group references and metadata references. Fails
// with [ErrDuplicateID] if the identifier is taken; on failure nothing
// changes. Fires [events.IDChanged] with the old identifier as the
// event name.
func (pw *Pathway) rename(eb *ElementBase, id string) error {
	if id == eb.id {
		return nil
	}
	if id == "" {
		return fmt.Errorf("pathway: empty id for element %q in a document", eb.id)
	}
	if err := pw.reg.rename(eb.id, id); err != nil {
		return err
	}
	old := eb.id
	if lrs := pw.refs[old]; lrs != nil {
		for _, lr := range lrs {
			lr.targetID = id
		}
		pw.refs[id] = lrs
		delete(pw.refs, old)
	}
	if g, ok := eb.This.(*Group); ok {
		if dns := pw.aliases[old]; dns != nil {
			for _, dn := range dns {
				dn.aliasRef = id
			}
			pw.aliases[id] = dns
			delete(pw.aliases, old)
		}
		for _, m := range g.members {
			m.setGroupRef(id)
		}
	}
	if mt, ok := eb.This.(metaTarget); ok {
		var refsOf func(*ElementBase) *[]string
		switch eb.This.ObjectType() {
		case ObjectAnnotation:
			refsOf = func(b *ElementBase) *[]string { return &b.annotationRefs }
		case ObjectCitation:
			refsOf = func(b *ElementBase) *[]string { return &b.citationRefs }
		case ObjectEvidence:
			refsOf = func(b *ElementBase) *[]string { return &b.evidenceRefs }
		}
		for _, r := range *mt.backList() {
			refs := refsOf(r.AsElementBase())
			if i := slices.Index(*refs, old); i >= 0 {
				(*refs)[i] = id
			}
		}
	}
	eb.id = id
	eb.fire(events.IDChanged, old)
	return nil
}

// NotifyMoved propagates a geometry change of the element. Every
// reference link targeting it refreshes its derived position, and the
// change cascades to the geometric dependents: the owners of those
// links, a moved line's anchors, and the group of a moved member.
// Each affected element is visited once with [events.Moved] fired for
// it; reference cycles terminate at the visited set. The rendering
// layer calls this after editing element geometry directly.
func (pw *Pathway) NotifyMoved(el Element) {
	if el == nil || el.AsElementBase().pathway != pw {
		return
	}
	pw.notifyMoved(el, map[Element]bool{})
}

func (pw *Pathway) notifyMoved(el Element, visited map[Element]bool) {
	if el == nil || visited[el] {
		return
	}
	visited[el] = true
	pw.fire(events.Event{Type: events.Moved, Source: el})
	for _, lr := range slices.Clone(pw.refs[el.AsElementBase().id]) {
		lr.referentMoved()
		pw.notifyMoved(lr.owner, visited)
	}
	switch t := el.(type) {
	case *LinePoint:
		if t.line != nil && t.line.This != nil {
			pw.notifyMoved(t.line.This, visited)
		}
	case *Interaction:
		pw.anchorsMoved(&t.LineBase, visited)
	case *GraphicalLine:
		pw.anchorsMoved(&t.LineBase, visited)
	}
	if g, ok := el.(Groupable); ok && g.GroupRef() != "" {
		if grp := pw.groupByID(g.GroupRef()); grp != nil {
			pw.notifyMoved(grp, visited)
		}
	}
}

func (pw *Pathway) anchorsMoved(lb *LineBase, visited map[Element]bool) {
	for _, a := range slices.Clone(lb.anchors) {
		pw.notifyMoved(a, visited)
	}
}

// indexRef registers a linked reference in the bucket of its target.
func (pw *Pathway) indexRef(lr *LinkRef) {
	pw.refs[lr.targetID] = append(pw.refs[lr.targetID], lr)
}

// deindexRef removes a reference from the bucket of its target.
func (pw *Pathway) deindexRef(lr *LinkRef) {
	bucket := pw.refs[lr.targetID]
	i := slices.Index(bucket, lr)
	if i < 0 {
		return
	}
	bucket = slices.Delete(bucket, i, i+1)
	if len(bucket) == 0 {
		delete(pw.refs, lr.targetID)
	} else {
		pw.refs[lr.targetID] = bucket
	}
}

// dropAlias removes the node's entry from the alias reverse index.
func (pw *Pathway) dropAlias(dn *DataNode) {
	bucket := pw.aliases[dn.aliasRef]
	i := slices.Index(bucket, dn)
	if i < 0 {
		return
	}
	bucket = slices.Delete(bucket, i, i+1)
	if len(bucket) == 0 {
		delete(pw.aliases, dn.aliasRef)
	} else {
		pw.aliases[dn.aliasRef] = bucket
	}
}

// groupByID resolves the identifier to a group, or nil. A non-group
// element under a group reference identifier is an internal
// inconsistency and logs.
func (pw *Pathway) groupByID(id string) *Group {
	if id == "" {
		return nil
	}
	el := pw.reg.at(id)
	if el == nil {
		return nil
	}
	g, ok := el.(*Group)
	if !ok {
		slog.Error("pathway: expected a group", "id", id, "got", string(el.ObjectType()))
		return nil
	}
	return g
}

// elementsOf collects the registered elements of one concrete type,
// in document order.
func elementsOf[T Element](pw *Pathway) []T {
	var res []T
	for _, el := range pw.reg.elems.Values {
		if t, ok := el.(T); ok {
			res = append(res, t)
		}
	}
	return res
}

// DataNodes returns the data nodes in document order.
func (pw *Pathway) DataNodes() []*DataNode { return elementsOf[*DataNode](pw) }

// Interactions returns the interactions in document order.
func (pw *Pathway) Interactions() []*Interaction { return elementsOf[*Interaction](pw) }

// GraphicalLines returns the graphical lines in document order.
func (pw *Pathway) GraphicalLines() []*GraphicalLine { return elementsOf[*GraphicalLine](pw) }

// Labels returns the labels in document order.
func (pw *Pathway) Labels() []*Label { return elementsOf[*Label](pw) }

// Shapes returns the shapes in document order.
func (pw *Pathway) Shapes() []*Shape { return elementsOf[*Shape](pw) }

// Groups returns the groups in document order.
func (pw *Pathway) Groups() []*Group { return elementsOf[*Group](pw) }

// Annotations returns the annotations in document order.
func (pw *Pathway) Annotations() []*Annotation { return elementsOf[*Annotation](pw) }

// Citations returns the citations in document order.
func (pw *Pathway) Citations() []*Citation { return elementsOf[*Citation](pw) }

// Evidences returns the evidences in document order.
func (pw *Pathway) Evidences() []*Evidence { return elementsOf[*Evidence](pw) }
