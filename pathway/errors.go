// Copyright (c) 2025, The Pathml Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pathway

import "errors"

// Sentinel errors returned by mutating operations. Callers test for them
// with [errors.Is]; the wrapped message carries the offending identifier.
// A failed operation leaves all document structures unchanged.
var (
	// ErrDuplicateID is returned when an identifier is already registered
	// in the document.
	ErrDuplicateID = errors.New("duplicate element id")

	// ErrUnknownID is returned when an identifier does not resolve in the
	// document, including when there is no document to resolve against.
	ErrUnknownID = errors.New("unknown element id")

	// ErrInvalidRelativePosition is returned when a relative coordinate
	// falls outside its allowed range.
	ErrInvalidRelativePosition = errors.New("relative position out of range")

	// ErrNilElement is returned when a required element argument is nil.
	ErrNilElement = errors.New("element is nil")

	// ErrInconsistentMembership is returned when a group operation would
	// break membership consistency, such as a group containing itself.
	ErrInconsistentMembership = errors.New("inconsistent group membership")

	// ErrAlreadyOwned is returned when adding an element that already
	// belongs to a document.
	ErrAlreadyOwned = errors.New("element already belongs to a pathway")

	// ErrNotLinkable is returned when a link target identifier resolves to
	// an element that cannot serve as a link target.
	ErrNotLinkable = errors.New("element is not a valid link target")

	// ErrLinkCycle is returned when linking would make an element's
	// position derive, directly or through further links, from its own
	// geometry.
	ErrLinkCycle = errors.New("circular link geometry")

	// ErrWrongKind is returned when an element has the wrong kind for the
	// requested reference, such as an alias reference to a non group.
	ErrWrongKind = errors.New("element has the wrong kind for this reference")
)
