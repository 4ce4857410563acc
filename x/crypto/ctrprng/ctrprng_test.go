// Copyright (c) 2026 OpenFPE Contributors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package ctrprng

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKeyNonce() ([]byte, []byte) {
	key := make([]byte, KeySize)
	nonce := make([]byte, BlockSize)
	for i := range key {
		key[i] = byte(i)
	}
	for i := range nonce {
		nonce[i] = byte(0xA0 + i)
	}
	return key, nonce
}

func TestInitRejectsBadSizes(t *testing.T) {
	var g Generator
	key, nonce := testKeyNonce()

	require.Error(t, g.Init(key[:15], nonce))
	require.Error(t, g.Init(key, nonce[:15]))
	require.NoError(t, g.Init(key, nonce))
}

func TestDeterministicStream(t *testing.T) {
	key, nonce := testKeyNonce()

	var g1, g2 Generator
	require.NoError(t, g1.Init(key, nonce))
	require.NoError(t, g2.Init(key, nonce))

	out1 := make([]byte, 137)
	out2 := make([]byte, 137)
	g1.NextBytes(out1)
	g2.NextBytes(out2)

	assert.Equal(t, out1, out2)
}

func TestDifferentNonceDifferentStream(t *testing.T) {
	key, nonce := testKeyNonce()
	nonce2 := append([]byte(nil), nonce...)
	nonce2[15] ^= 0x01

	var g1, g2 Generator
	require.NoError(t, g1.Init(key, nonce))
	require.NoError(t, g2.Init(key, nonce2))

	out1 := make([]byte, 32)
	out2 := make([]byte, 32)
	g1.NextBytes(out1)
	g2.NextBytes(out2)

	assert.NotEqual(t, out1, out2)
}

func TestNextBytesCrossesBlockBoundary(t *testing.T) {
	key, nonce := testKeyNonce()

	var whole Generator
	require.NoError(t, whole.Init(key, nonce))
	combined := make([]byte, 40)
	whole.NextBytes(combined)

	var piecewise Generator
	require.NoError(t, piecewise.Init(key, nonce))
	a := make([]byte, 3)
	b := make([]byte, 29)
	c := make([]byte, 8)
	piecewise.NextBytes(a)
	piecewise.NextBytes(b)
	piecewise.NextBytes(c)

	assert.Equal(t, combined, append(append(a, b...), c...))
}

func TestUniformIsWithinBound(t *testing.T) {
	key, nonce := testKeyNonce()
	var g Generator
	require.NoError(t, g.Init(key, nonce))

	const bound = 7
	counts := make([]int, bound)
	for i := 0; i < 20000; i++ {
		v := g.Uniform(bound)
		require.Less(t, v, uint32(bound))
		counts[v]++
	}

	for _, c := range counts {
		assert.Greater(t, c, 0)
	}
}

func TestUniformZeroBound(t *testing.T) {
	key, nonce := testKeyNonce()
	var g Generator
	require.NoError(t, g.Init(key, nonce))
	assert.Equal(t, uint32(0), g.Uniform(0))
}

func TestZeroClearsState(t *testing.T) {
	key, nonce := testKeyNonce()
	var g Generator
	require.NoError(t, g.Init(key, nonce))
	g.NextUint32()
	g.Zero()

	assert.Nil(t, g.block)
	assert.Equal(t, [BlockSize]byte{}, g.counter)
	assert.Equal(t, [BlockSize]byte{}, g.buffer)
	assert.Equal(t, 0, g.pos)
}

func TestIncCounterWraps(t *testing.T) {
	var c [BlockSize]byte
	for i := range c {
		c[i] = 0xFF
	}
	incCounter(&c)
	assert.Equal(t, [BlockSize]byte{}, c)
}
