// Copyright (c) 2025, The Pathml Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pathway

import "pathml.dev/gpml/math32"

// Shape is a graphical figure on the board: a basic geometric outline
// or a cellular compartment drawing, optionally holding text. The
// figure drawn is selected by the shape type in its style.
type Shape struct {
	ShapedBase

	// TextLabel is the displayed text, if any.
	TextLabel string
}

// NewShape returns a new detached shape with default styling.
func NewShape() *Shape {
	sh := &Shape{}
	sh.init(sh, math32.Vec2(30, 30))
	return sh
}

func (sh *Shape) ObjectType() ObjectTypes { return ObjectShape }
