// Copyright (c) 2025, The Pathml Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pathway_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pathml.dev/gpml/events"
	"pathml.dev/gpml/math32"
	. "pathml.dev/gpml/pathway"
)

func TestProperties(t *testing.T) {
	pw := New()
	dn := NewDataNode()
	require.NoError(t, pw.Add(dn))

	var changed []string
	pw.On(events.PropertyChanged, func(ev events.Event) { changed = append(changed, ev.Name) })

	dn.SetProperty("org.pathvisio.CellularComponent", "Nucleus")
	assert.Equal(t, "Nucleus", dn.Property("org.pathvisio.CellularComponent"))
	assert.Equal(t, []string{"org.pathvisio.CellularComponent"}, changed)

	dn.SetProperty("key", "a")
	dn.SetProperty("key", "b")
	assert.Equal(t, "b", dn.Property("key"))

	dn.DeleteProperty("key")
	assert.Empty(t, dn.Property("key"))
	assert.Len(t, changed, 4)

	// deleting an absent key is silent
	dn.DeleteProperty("key")
	assert.Len(t, changed, 4)
}

func TestPropertiesDetached(t *testing.T) {
	dn := NewDataNode()
	dn.SetProperty("key", "value")
	assert.Equal(t, "value", dn.Property("key"))
	assert.Empty(t, dn.Property("missing"))
}

func TestComments(t *testing.T) {
	dn := NewDataNode()
	dn.Comments = append(dn.Comments, Comment{Source: "WikiPathways-description", Text: "Glycolysis"})
	require.Len(t, dn.Comments, 1)
	assert.Equal(t, "Glycolysis", dn.Comments[0].Text)
}

func TestSetElementIDDetached(t *testing.T) {
	dn := NewDataNode()
	require.NoError(t, dn.SetElementID("free"))
	assert.Equal(t, "free", dn.ElementID())
	assert.Nil(t, dn.Pathway())
}

func TestElementBaseAccessors(t *testing.T) {
	dn := NewDataNode()
	assert.Equal(t, Element(dn), dn.AsElementBase().This)
	assert.Empty(t, dn.ElementID())
	assert.Nil(t, dn.Pathway())
}

func TestDrawableBounds(t *testing.T) {
	lb := NewLabel()
	lb.Center = math32.Vec2(10, 20)
	lb.Size = math32.Vec2(4, 8)
	b := lb.Bounds()
	assert.Equal(t, math32.Vec2(8, 16), b.Min)
	assert.Equal(t, math32.Vec2(12, 24), b.Max)
}

func TestFrameRoundTrip(t *testing.T) {
	sh := NewShape()
	sh.Center = math32.Vec2(50, 50)
	sh.Size = math32.Vec2(20, 10)
	abs := sh.ToAbsolute(math32.Vec2(0.5, -1))
	assert.Equal(t, math32.Vec2(55, 45), abs)
	assert.Equal(t, math32.Vec2(0.5, -1), sh.ToRelative(abs))
}

func TestXref(t *testing.T) {
	var x Xref
	assert.True(t, x.IsZero())
	x = Xref{Identifier: "ENSG00000111640", DataSource: "ensembl"}
	assert.False(t, x.IsZero())
}
