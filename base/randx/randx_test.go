// Copyright (c) 2025, The Pathml Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSysRandSeeded(t *testing.T) {
	a := NewSysRand(42)
	b := NewSysRand(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
	}
	a.NewRand(17)
	b.NewRand(99)
	same := true
	for i := 0; i < 100; i++ {
		if a.Int63n(1<<40) != b.Int63n(1<<40) {
			same = false
		}
	}
	assert.False(t, same)
}

func TestSysRandGlobal(t *testing.T) {
	r := NewGlobalRand()
	assert.Nil(t, r.Rand)
	for i := 0; i < 100; i++ {
		n := r.Intn(10)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 10)
		f := r.Float64()
		assert.GreaterOrEqual(t, f, 0.0)
		assert.Less(t, f, 1.0)
	}
}
