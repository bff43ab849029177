// Copyright (c) 2025, The Pathml Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the change notifications emitted by pathway
// documents as elements are added, removed, moved, linked, and renamed.
package events

import "fmt"

// Types is the set of event types emitted by a pathway document.
type Types int32

const (
	// Added is emitted after an element has been added to a document.
	Added Types = iota

	// Removed is emitted after an element has been removed from a document.
	Removed

	// IDChanged is emitted after an element identifier has been renamed.
	// Name holds the previous identifier.
	IDChanged

	// Moved is emitted after an element geometry change has been
	// propagated, once per affected element.
	Moved

	// LinkChanged is emitted after an element has been linked to or
	// unlinked from a reference target.
	LinkChanged

	// GroupChanged is emitted after an element has been added to or
	// removed from a group.
	GroupChanged

	// PropertyChanged is emitted after a dynamic property has been set
	// or deleted. Name holds the property key.
	PropertyChanged

	TypesN
)

var typeNames = []string{"Added", "Removed", "IDChanged", "Moved", "LinkChanged", "GroupChanged", "PropertyChanged"}

func (t Types) String() string {
	if t < 0 || t >= TypesN {
		return fmt.Sprintf("Types(%d)", int32(t))
	}
	return typeNames[t]
}

// Event describes one change to a pathway document. Source is the element
// the change happened to, typed as any so that this package stays free of
// document dependencies.
type Event struct {
	// Type is the kind of change.
	Type Types

	// Source is the element the change happened to.
	Source any

	// Name carries event-specific detail: the previous identifier for
	// [IDChanged], the property key for [PropertyChanged].
	Name string
}
