// Copyright (c) 2025, The Pathml Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pathway

import (
	"pathml.dev/gpml/math32"
	"pathml.dev/gpml/styles"
)

// Label is a free-floating text element on the board.
type Label struct {
	ShapedBase

	// TextLabel is the displayed text.
	TextLabel string

	// Href is an optional hyperlink behind the label.
	Href string
}

// NewLabel returns a new detached label with default styling.
// Labels draw no outline by default.
func NewLabel() *Label {
	lb := &Label{}
	lb.init(lb, math32.Vec2(80, 25))
	lb.Style.Type = styles.ShapeNone
	return lb
}

func (lb *Label) ObjectType() ObjectTypes { return ObjectLabel }
