// Copyright (c) 2025, The Pathml Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package randx provides an injectable source of randomness,
// so that anything that draws random numbers can be given either
// the global generator or a separate seeded source (e.g., for
// deterministic tests).
package randx

import "math/rand"

// Rand is the subset of the standard [rand.Rand] methods used for
// identifier generation, as an interface so that either the global
// generator or a separate seeded source can be supplied.
type Rand interface {
	// Intn returns, as an int, a non-negative pseudo-random number
	// in the half-open interval [0,n). It panics if n <= 0.
	Intn(n int) int

	// Int63n returns, as an int64, a non-negative pseudo-random number
	// in the half-open interval [0,n). It panics if n <= 0.
	Int63n(n int64) int64

	// Float64 returns, as a float64, a pseudo-random number
	// in the half-open interval [0.0,1.0).
	Float64() float64
}

// SysRand implements [Rand] using either a separate [rand.Rand]
// source, or, if that is nil, the global rand stream.
type SysRand struct {

	// if non-nil, use this random number source instead of the global default one
	Rand *rand.Rand
}

// NewGlobalRand returns a new [SysRand] that uses the
// system global rand source.
func NewGlobalRand() *SysRand {
	return &SysRand{}
}

// NewSysRand returns a new [SysRand] with a new
// rand.Rand random source with given initial seed.
func NewSysRand(seed int64) *SysRand {
	r := &SysRand{}
	r.NewRand(seed)
	return r
}

// NewRand sets Rand to a new rand.Rand source using given seed.
func (r *SysRand) NewRand(seed int64) {
	r.Rand = rand.New(rand.NewSource(seed))
}

// Intn returns, as an int, a non-negative pseudo-random number
// in the half-open interval [0,n). It panics if n <= 0.
func (r *SysRand) Intn(n int) int {
	if r.Rand == nil {
		return rand.Intn(n)
	}
	return r.Rand.Intn(n)
}

// Int63n returns, as an int64, a non-negative pseudo-random number
// in the half-open interval [0,n). It panics if n <= 0.
func (r *SysRand) Int63n(n int64) int64 {
	if r.Rand == nil {
		return rand.Int63n(n)
	}
	return r.Rand.Int63n(n)
}

// Float64 returns, as a float64, a pseudo-random number
// in the half-open interval [0.0,1.0).
func (r *SysRand) Float64() float64 {
	if r.Rand == nil {
		return rand.Float64()
	}
	return r.Rand.Float64()
}
