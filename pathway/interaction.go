// Copyright (c) 2025, The Pathml Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pathway

// Interaction is a biological interaction drawn as a line, its points
// typically linked to data nodes or to anchors on other interactions.
type Interaction struct {
	LineBase

	// Xref identifies the interaction in an external database.
	Xref Xref
}

// NewInteraction returns a new detached interaction with default
// styling and unlinked start and end points.
func NewInteraction() *Interaction {
	in := &Interaction{}
	in.init(in)
	return in
}

func (in *Interaction) ObjectType() ObjectTypes { return ObjectInteraction }

// GraphicalLine is a line with no biological meaning, drawn for visual
// annotation of the diagram.
type GraphicalLine struct {
	LineBase
}

// NewGraphicalLine returns a new detached graphical line with default
// styling and unlinked start and end points.
func NewGraphicalLine() *GraphicalLine {
	gl := &GraphicalLine{}
	gl.init(gl)
	return gl
}

func (gl *GraphicalLine) ObjectType() ObjectTypes { return ObjectGraphicalLine }
