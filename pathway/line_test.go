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

// straightLine builds a document with an interaction from (0, 0)
// to (100, 0).
func straightLine(t *testing.T) (*Pathway, *Interaction) {
	t.Helper()
	pw := New()
	ia := NewInteraction()
	require.NoError(t, pw.Add(ia))
	ia.StartPoint().SetPosition(math32.Vec2(0, 0))
	ia.EndPoint().SetPosition(math32.Vec2(100, 0))
	return pw, ia
}

func TestLineEnds(t *testing.T) {
	_, ia := straightLine(t)
	pts := ia.Points()
	require.Len(t, pts, 2)
	assert.Equal(t, pts[0], ia.StartPoint())
	assert.Equal(t, pts[1], ia.EndPoint())
	assert.Equal(t, Element(ia), pts[0].Line())
}

func TestLineBounds(t *testing.T) {
	_, ia := straightLine(t)
	ia.EndPoint().SetPosition(math32.Vec2(100, 40))
	b := ia.Bounds()
	assert.Equal(t, math32.Vec2(0, 0), b.Min)
	assert.Equal(t, math32.Vec2(100, 40), b.Max)
}

func TestWaypoints(t *testing.T) {
	pw, ia := straightLine(t)

	wp, err := ia.NewWaypoint(1)
	require.NoError(t, err)
	assert.Equal(t, math32.Vec2(50, 0), wp.Position())
	assert.Len(t, ia.Points(), 3)
	assert.Equal(t, wp, ia.Points()[1])
	assert.Equal(t, pw, wp.Pathway())

	require.NoError(t, ia.RemoveWaypoint(wp))
	assert.Len(t, ia.Points(), 2)
	assert.Nil(t, pw.ElementByID(wp.ElementID()))
}

func TestWaypointErrors(t *testing.T) {
	_, ia := straightLine(t)
	_, err := ia.NewWaypoint(0)
	assert.Error(t, err)
	_, err = ia.NewWaypoint(2)
	assert.Error(t, err)

	assert.Error(t, ia.RemoveWaypoint(ia.StartPoint()))
	assert.Error(t, ia.RemoveWaypoint(ia.EndPoint()))

	detached := NewInteraction()
	_, err = detached.NewWaypoint(1)
	assert.ErrorIs(t, err, ErrUnknownID)
}

func TestAnchors(t *testing.T) {
	pw, ia := straightLine(t)

	a, err := ia.NewAnchor(0.25)
	require.NoError(t, err)
	assert.Equal(t, float32(0.25), a.Position())
	assert.Equal(t, math32.Vec2(25, 0), a.Location())
	assert.Equal(t, Element(ia), a.Line())
	assert.Equal(t, pw, a.Pathway())
	assert.Equal(t, []*Anchor{a}, ia.Anchors())

	require.NoError(t, a.SetPosition(0.5))
	assert.Equal(t, math32.Vec2(50, 0), a.Location())

	ia.RemoveAnchor(a)
	assert.Empty(t, ia.Anchors())
	assert.Nil(t, pw.ElementByID(a.ElementID()))
}

func TestAnchorErrors(t *testing.T) {
	_, ia := straightLine(t)
	_, err := ia.NewAnchor(-0.1)
	assert.ErrorIs(t, err, ErrInvalidRelativePosition)
	_, err = ia.NewAnchor(1.1)
	assert.ErrorIs(t, err, ErrInvalidRelativePosition)

	a, err := ia.NewAnchor(0.5)
	require.NoError(t, err)
	assert.ErrorIs(t, a.SetPosition(2), ErrInvalidRelativePosition)
	assert.Equal(t, float32(0.5), a.Position())

	detached := NewGraphicalLine()
	_, err = detached.NewAnchor(0.5)
	assert.ErrorIs(t, err, ErrUnknownID)
}

func TestAnchorPolyline(t *testing.T) {
	_, ia := straightLine(t)
	wp, err := ia.NewWaypoint(1)
	require.NoError(t, err)
	wp.SetPosition(math32.Vec2(50, 50))

	// total length 50*sqrt(2)*2; fraction 0.75 is halfway down the
	// second segment
	a, err := ia.NewAnchor(0.75)
	require.NoError(t, err)
	loc := a.Location()
	assert.InDelta(t, 75, loc.X, 1e-4)
	assert.InDelta(t, 25, loc.Y, 1e-4)
}

func TestAnchorAsLinkTarget(t *testing.T) {
	pw, ia := straightLine(t)
	a, err := ia.NewAnchor(0.5)
	require.NoError(t, err)

	branch := NewInteraction()
	require.NoError(t, pw.Add(branch))
	pt := branch.StartPoint()
	require.NoError(t, pt.LinkTo(a.ElementID(), 0, 0))
	assert.Equal(t, math32.Vec2(50, 0), pt.Position())

	// moving the line moves the anchor, which carries the branch along
	ia.EndPoint().SetPosition(math32.Vec2(100, 100))
	assert.Equal(t, a.Location(), pt.Position())
	assert.InDelta(t, 50, pt.Position().X, 1e-4)
	assert.InDelta(t, 50, pt.Position().Y, 1e-4)
}

func TestRemoveLineRemovesParts(t *testing.T) {
	pw, ia := straightLine(t)
	a, err := ia.NewAnchor(0.5)
	require.NoError(t, err)

	branch := NewInteraction()
	require.NoError(t, pw.Add(branch))
	pt := branch.StartPoint()
	require.NoError(t, pt.LinkTo(a.ElementID(), 0, 0))

	start, end := ia.StartPoint(), ia.EndPoint()
	require.NoError(t, pw.Remove(ia))

	assert.Nil(t, pw.ElementByID(a.ElementID()))
	assert.Nil(t, pw.ElementByID(start.ElementID()))
	assert.Nil(t, pw.ElementByID(end.ElementID()))
	assert.Empty(t, ia.Anchors())
	assert.Len(t, ia.Points(), 2)

	// the branch was unlinked at the anchor's last location
	assert.False(t, pt.Linked())
	assert.Equal(t, math32.Vec2(50, 0), pt.Position())
}
