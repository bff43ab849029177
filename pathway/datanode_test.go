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
)

func TestDataNodeDefaults(t *testing.T) {
	dn := NewDataNode()
	assert.Equal(t, DataNodeUndefined, dn.Type())
	assert.Equal(t, math32.Vec2(80, 20), dn.Size)
	assert.Equal(t, ObjectDataNode, dn.ObjectType())
}

func TestStates(t *testing.T) {
	pw := New()
	dn := NewDataNode()
	dn.Center = math32.Vec2(100, 50)
	require.NoError(t, pw.Add(dn))

	st, err := dn.NewState()
	require.NoError(t, err)
	st.TextLabel = "P"
	assert.Equal(t, dn, st.Node())
	assert.Equal(t, []*State{st}, dn.States())
	assert.Equal(t, pw, st.Pathway())
	assert.Equal(t, dn.ElementID(), st.TargetID())

	// default placement is the top right corner of the node frame
	assert.Equal(t, math32.Vec2(140, 60), st.Position())
}

func TestStateFollowsNode(t *testing.T) {
	pw := New()
	dn := NewDataNode()
	dn.Center = math32.Vec2(100, 50)
	require.NoError(t, pw.Add(dn))
	st, err := dn.NewState()
	require.NoError(t, err)

	dn.SetCenter(math32.Vec2(200, 80))
	assert.Equal(t, math32.Vec2(240, 90), st.Position())
	assert.Equal(t, math32.Vec2(240, 90), st.Bounds().Center())
}

func TestStateAsLinkTarget(t *testing.T) {
	pw := New()
	dn := NewDataNode()
	dn.Center = math32.Vec2(100, 50)
	require.NoError(t, pw.Add(dn))
	st, err := dn.NewState()
	require.NoError(t, err)

	ia := NewInteraction()
	require.NoError(t, pw.Add(ia))
	pt := ia.StartPoint()
	require.NoError(t, pt.LinkTo(st.ElementID(), 0, 0))
	assert.Equal(t, math32.Vec2(140, 60), pt.Position())

	// a node move reaches the point through the state
	dn.SetCenter(math32.Vec2(200, 80))
	assert.Equal(t, math32.Vec2(240, 90), pt.Position())
}

func TestRemoveState(t *testing.T) {
	pw := New()
	dn := NewDataNode()
	require.NoError(t, pw.Add(dn))
	st, err := dn.NewState()
	require.NoError(t, err)

	dn.RemoveState(st)
	assert.Empty(t, dn.States())
	assert.Nil(t, pw.ElementByID(st.ElementID()))
	assert.Empty(t, pw.Referrers(dn.ElementID()))

	dn.RemoveState(st)
	assert.Empty(t, dn.States())
}

func TestRemoveNodeRemovesStates(t *testing.T) {
	pw := New()
	dn := NewDataNode()
	require.NoError(t, pw.Add(dn))
	st, err := dn.NewState()
	require.NoError(t, err)

	require.NoError(t, pw.Remove(dn))
	assert.Nil(t, pw.ElementByID(st.ElementID()))
	assert.Nil(t, st.Pathway())
}

func TestNewStateDetached(t *testing.T) {
	dn := NewDataNode()
	_, err := dn.NewState()
	assert.ErrorIs(t, err, ErrUnknownID)
}

func TestRemovedNodeDropsStates(t *testing.T) {
	pw := New()
	dn := NewDataNode()
	require.NoError(t, pw.Add(dn))
	st, err := dn.NewState()
	require.NoError(t, err)

	// states do not come back when the node is re-added; the line start
	// and end points are the only parts that survive removal
	require.NoError(t, pw.Remove(dn))
	require.NoError(t, pw.Add(dn))
	assert.Empty(t, dn.States())
	assert.Nil(t, st.Pathway())
	assert.Nil(t, pw.ElementByID(st.ElementID()))
}
