// Copyright (c) 2025, The Pathml Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pathway_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pathml.dev/gpml/math32"
	. "pathml.dev/gpml/pathway"
	"pathml.dev/gpml/styles"
)

func TestCloneInto(t *testing.T) {
	src := NewDataNode()
	src.TextLabel = "GAPDH"
	src.SetType(DataNodeGeneProduct)
	src.Xref = Xref{Identifier: "ENSG00000111640", DataSource: "ensembl"}
	src.Center = math32.Vec2(100, 50)
	src.Size = math32.Vec2(90, 25)
	src.Font.Bold = true
	src.Style.FillColor = styles.Black
	src.SetProperty("key", "value")
	src.Comments = append(src.Comments, Comment{Text: "housekeeping gene"})

	dst := NewDataNode()
	require.NoError(t, CloneInto(dst, src))
	assert.Equal(t, "GAPDH", dst.TextLabel)
	assert.Equal(t, DataNodeGeneProduct, dst.Type())
	assert.Equal(t, src.Xref, dst.Xref)
	assert.Equal(t, src.Center, dst.Center)
	assert.Equal(t, src.Size, dst.Size)
	assert.True(t, dst.Font.Bold)
	assert.Equal(t, "value", dst.Property("key"))
	require.Len(t, dst.Comments, 1)

	// the copies are deep
	dst.SetProperty("key", "other")
	dst.Comments[0].Text = "changed"
	assert.Equal(t, "value", src.Property("key"))
	assert.Equal(t, "housekeeping gene", src.Comments[0].Text)
}

func TestCloneKeepsIdentity(t *testing.T) {
	pw := New()
	g := NewGroup()
	require.NoError(t, pw.Add(g))
	dst := NewDataNode()
	require.NoError(t, dst.SetElementID("keep"))
	require.NoError(t, pw.Add(dst))
	require.NoError(t, g.AddMember(dst))

	src := NewDataNode()
	src.TextLabel = "copied"
	require.NoError(t, src.SetElementID("other"))

	require.NoError(t, CloneInto(dst, src))
	assert.Equal(t, "copied", dst.TextLabel)
	assert.Equal(t, "keep", dst.ElementID())
	assert.Equal(t, pw, dst.Pathway())
	assert.Equal(t, g.ElementID(), dst.GroupRef())
	assert.Equal(t, Element(dst), pw.ElementByID("keep"))
}

func TestCloneErrors(t *testing.T) {
	assert.ErrorIs(t, CloneInto(nil, NewDataNode()), ErrNilElement)
	assert.ErrorIs(t, CloneInto(NewDataNode(), nil), ErrNilElement)
	assert.ErrorIs(t, CloneInto(NewDataNode(), NewLabel()), ErrWrongKind)
	assert.ErrorIs(t, CloneInto(NewInteraction(), NewGraphicalLine()), ErrWrongKind)
}

func TestCloneLine(t *testing.T) {
	pw := New()
	src := NewInteraction()
	require.NoError(t, pw.Add(src))
	src.StartPoint().SetPosition(math32.Vec2(10, 10))
	src.EndPoint().SetPosition(math32.Vec2(90, 10))
	src.StartPoint().ArrowHead = ArrowInhibition
	src.Style.Connector = styles.ConnectorElbow

	dst := NewGraphicalLine()
	assert.ErrorIs(t, CloneInto(dst, src), ErrWrongKind)

	dst2 := NewInteraction()
	require.NoError(t, CloneInto(dst2, src))
	assert.Equal(t, math32.Vec2(10, 10), dst2.StartPoint().Position())
	assert.Equal(t, math32.Vec2(90, 10), dst2.EndPoint().Position())
	assert.Equal(t, ArrowInhibition, dst2.StartPoint().ArrowHead)
	assert.Equal(t, styles.ConnectorElbow, dst2.Style.Connector)
	assert.Nil(t, dst2.Pathway())
	assert.False(t, dst2.StartPoint().Linked())
}

func TestCloneSkipsLinkState(t *testing.T) {
	pw := New()
	dn := NewDataNode()
	require.NoError(t, dn.SetElementID("n1"))
	require.NoError(t, pw.Add(dn))
	src := NewInteraction()
	require.NoError(t, pw.Add(src))
	require.NoError(t, src.StartPoint().LinkTo("n1", 0, 0))

	dst := NewInteraction()
	require.NoError(t, CloneInto(dst, src))
	assert.False(t, dst.StartPoint().Linked())
	assert.Equal(t, src.StartPoint().Position(), dst.StartPoint().Position())
	assert.Len(t, pw.Referrers("n1"), 1)
}
