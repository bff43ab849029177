// Copyright (c) 2025, The Pathml Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pathway

import (
	"fmt"
	"reflect"

	"github.com/jinzhu/copier"
)

// CloneInto copies the content of src into dst, which must be the same
// concrete type ([ErrWrongKind]). Content means text, data source
// references, comments, dynamic properties, geometry and styling.
// Identity and document state are left alone: the identifier, the
// owning document, reference links, group membership and metadata
// references of dst are unchanged, and no events fire. Dependent
// elements (states, anchors) are not cloned; line point geometry is
// copied pairwise for the points both lines have.
func CloneInto(dst, src Element) error {
	if dst == nil || src == nil {
		return fmt.Errorf("pathway: CloneInto: %w", ErrNilElement)
	}
	if reflect.TypeOf(dst) != reflect.TypeOf(src) {
		return fmt.Errorf("pathway: cannot clone %T into %T: %w", src, dst, ErrWrongKind)
	}
	if err := copier.CopyWithOption(dst, src, copier.Option{DeepCopy: true}); err != nil {
		return err
	}
	switch d := dst.(type) {
	case *DataNode:
		d.typ = src.(*DataNode).typ
	case *Interaction:
		copyLineParts(&d.LineBase, &src.(*Interaction).LineBase)
	case *GraphicalLine:
		copyLineParts(&d.LineBase, &src.(*GraphicalLine).LineBase)
	}
	return nil
}

// copyLineParts copies point geometry between lines. The copier does
// not see the point elements themselves; only their drawing state
// carries over.
func copyLineParts(dst, src *LineBase) {
	n := min(len(dst.points), len(src.points))
	for i := 0; i < n; i++ {
		dst.points[i].pos = src.points[i].Position()
		dst.points[i].ArrowHead = src.points[i].ArrowHead
	}
}
