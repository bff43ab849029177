// Copyright (c) 2025, The Pathml Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pathway implements an in-memory model of biological pathway
// diagrams: data nodes with states, interactions, graphical lines,
// labels, shapes and groups on a drawing board, together with the
// annotations, citations and evidences that describe them.
//
// Elements live in one [Pathway] document and refer to each other by
// unique identifier, never by pointer: a line point or state links to
// the element it sits on through a [LinkRef], a member records its
// group, an alias data node records the group it abbreviates. The
// document keeps a reverse index over these references, so resolving
// "who points at this element" is a single lookup, and removing or
// renaming an element rewires every reference in one pass.
//
// Elements are created detached by their constructors (NewDataNode,
// NewInteraction, ...), configured, and added with [Pathway.Add].
// Structural changes fire [events.Event] notifications through
// listeners registered with [Pathway.On], after the change has been
// applied.
package pathway
