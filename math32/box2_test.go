// Copyright (c) 2025, The Pathml Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBox2Empty(t *testing.T) {
	b := B2Empty()
	assert.True(t, b.IsEmpty())

	b = b.ExpandByPoint(Vec2(1, 2))
	assert.False(t, b.IsEmpty())
	assert.Equal(t, Vec2(1, 2), b.Min)
	assert.Equal(t, Vec2(1, 2), b.Max)
}

func TestBox2CenterSize(t *testing.T) {
	b := B2(10, 20, 30, 60)
	assert.Equal(t, Vec2(20, 40), b.Center())
	assert.Equal(t, Vec2(20, 40), b.Size())

	assert.Equal(t, b, B2FromCenterSize(Vec2(20, 40), Vec2(20, 40)))
}

func TestBox2Union(t *testing.T) {
	a := B2(0, 0, 10, 10)
	b := B2(5, 5, 20, 15)
	u := a.Union(b)
	assert.Equal(t, B2(0, 0, 20, 15), u)

	assert.Equal(t, a, a.Union(B2Empty()))
}

func TestBox2Expand(t *testing.T) {
	b := B2(10, 10, 20, 20).ExpandByScalar(8)
	assert.Equal(t, B2(2, 2, 28, 28), b)
}

func TestBox2ContainsPoint(t *testing.T) {
	b := B2(0, 0, 10, 10)
	assert.True(t, b.ContainsPoint(Vec2(5, 5)))
	assert.True(t, b.ContainsPoint(Vec2(0, 10)))
	assert.False(t, b.ContainsPoint(Vec2(11, 5)))
}
