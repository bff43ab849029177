// Copyright (c) 2025, The Pathml Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pathway

// Xref identifies a biological entity in an external database,
// such as an Ensembl gene or a ChEBI compound. The zero value means
// no cross reference.
type Xref struct {

	// Identifier is the entry identifier within the data source.
	Identifier string

	// DataSource names the database the identifier belongs to.
	DataSource string
}

// IsZero reports whether the cross reference is unset.
func (x Xref) IsZero() bool { return x == Xref{} }

// Comment is a free-text note on an element or document.
type Comment struct {

	// Source says where the comment came from.
	Source string

	// Text is the comment body.
	Text string
}

// Author describes one author of a pathway document.
type Author struct {

	// Name is the author's full name.
	Name string

	// Username is the author's account name at the hosting site.
	Username string

	// Order is the author's position in the author list.
	Order int
}
