// Copyright (c) 2025, The Pathml Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pathway

import (
	"fmt"
	"strconv"

	"pathml.dev/gpml/base/keylist"
	"pathml.dev/gpml/base/randx"
)

// registry is the authoritative identifier table of one document: an
// ordered map from identifier to element, plus the generator for new
// identifiers. The document keeps it in lockstep with the reverse
// reference index on every add, remove and rename.
type registry struct {

	// elems holds the registered elements in document order.
	elems keylist.List[string, Element]

	// rand is the token source for generated identifiers.
	rand randx.Rand
}

const (
	// idSpan and idBase define the 5 hex digit token space. Tokens start
	// with a letter so they remain usable directly as XML identifiers.
	idSpan = 0x60000
	idBase = 0xa0000

	// wideSpan and wideBase define the 8 hex digit token space used once
	// the registry is large enough that short tokens would collide often.
	wideSpan = 0x60000000
	wideBase = 0xa0000000

	// widenAt is the registry size beyond which wide tokens are generated.
	widenAt = 0x10000
)

func (r *registry) add(id string, el Element) error {
	if r.elems.Has(id) {
		return fmt.Errorf("pathway: id %q: %w", id, ErrDuplicateID)
	}
	return r.elems.Add(id, el)
}

// delete removes the identifier mapping, a no-op when absent.
func (r *registry) delete(id string) { r.elems.DeleteByKey(id) }

// at returns the element registered under the identifier, or nil.
func (r *registry) at(id string) Element { return r.elems.At(id) }

// rename re-keys the identifier without changing document order.
func (r *registry) rename(old, new string) error {
	if r.elems.Has(new) {
		return fmt.Errorf("pathway: id %q: %w", new, ErrDuplicateID)
	}
	return r.elems.RenameKey(old, new)
}

// generateID returns a new identifier not present in the registry:
// a random lowercase hex token, 5 digits for ordinary documents and
// 8 digits once the registry outgrows the short token space. Collisions
// are detected against the registry and retried.
func (r *registry) generateID() string {
	for {
		span, base := int64(idSpan), int64(idBase)
		if r.elems.Len() > widenAt {
			span, base = wideSpan, wideBase
		}
		id := strconv.FormatInt(r.rand.Int63n(span)+base, 16)
		if !r.elems.Has(id) {
			return id
		}
	}
}
