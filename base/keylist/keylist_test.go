// Copyright (c) 2025, The Pathml Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package keylist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	kl := New[string, int]()
	require.NoError(t, kl.Add("a", 1))
	require.NoError(t, kl.Add("b", 2))
	require.NoError(t, kl.Add("c", 3))
	assert.Error(t, kl.Add("b", 4))

	assert.Equal(t, 3, kl.Len())
	assert.Equal(t, 2, kl.At("b"))
	assert.Equal(t, 0, kl.At("missing"))
	v, ok := kl.AtTry("missing")
	assert.False(t, ok)
	assert.Equal(t, 0, v)
	assert.True(t, kl.Has("a"))
	assert.Equal(t, []string{"a", "b", "c"}, kl.Keys)
	assert.Equal(t, []int{1, 2, 3}, kl.Values)
}

func TestDeleteByKey(t *testing.T) {
	kl := New[string, int]()
	require.NoError(t, kl.Add("a", 1))
	require.NoError(t, kl.Add("b", 2))
	require.NoError(t, kl.Add("c", 3))

	assert.True(t, kl.DeleteByKey("b"))
	assert.False(t, kl.DeleteByKey("b"))
	assert.Equal(t, []string{"a", "c"}, kl.Keys)
	assert.Equal(t, 3, kl.At("c")) // index remap after delete
	assert.Equal(t, 1, kl.IndexByKey("c"))
	assert.Equal(t, -1, kl.IndexByKey("b"))
}

func TestRenameKey(t *testing.T) {
	kl := New[string, int]()
	require.NoError(t, kl.Add("a", 1))
	require.NoError(t, kl.Add("b", 2))

	require.NoError(t, kl.RenameKey("a", "z"))
	assert.False(t, kl.Has("a"))
	assert.Equal(t, 1, kl.At("z"))
	assert.Equal(t, 0, kl.IndexByKey("z")) // position preserved
	assert.Error(t, kl.RenameKey("missing", "q"))
	assert.Error(t, kl.RenameKey("z", "b"))
}

func TestZeroValue(t *testing.T) {
	var kl List[string, string]
	assert.Equal(t, 0, kl.Len())
	assert.False(t, kl.Has("x"))
	require.NoError(t, kl.Add("x", "y"))
	assert.Equal(t, "y", kl.At("x"))
	kl.Reset()
	assert.Equal(t, 0, kl.Len())
}
