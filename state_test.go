// Copyright (c) 2016 Andreas Auernhammer. All rights reserved.
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package xsalsa20

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestOverflowPointBoundary checks overflowPoint's complement
// arithmetic directly at the two edges that matter: a counter that
// still has room for the whole request, and one that doesn't.
func TestOverflowPointBoundary(t *testing.T) {
	var input [16]uint32

	input[8], input[9] = 0, 0
	idx, wraps := overflowPoint(&input, 4)
	assert.False(t, wraps)
	assert.Equal(t, 0, idx)

	// Counter sits at 2^64-2: one safe block (using counter 2^64-2)
	// remains before the block that would complete at 2^64-1 and wrap
	// the increment back to zero.
	input[8], input[9] = 0xfffffffe, 0xffffffff
	idx, wraps = overflowPoint(&input, 3)
	require.True(t, wraps)
	assert.Equal(t, 1, idx)

	// Counter already at the maximum value: the single requested block
	// is itself the wrapping block, so zero blocks are safe.
	input[8], input[9] = 0xffffffff, 0xffffffff
	idx, wraps = overflowPoint(&input, 1)
	require.True(t, wraps)
	assert.Equal(t, 0, idx)
}

// TestKeystreamOverflowDiscardsWrappingBlock drives a real Keystream
// call through a counter wraparound and checks every documented
// consequence: the blocks before the wrap are produced and match an
// independently derived reference, the wrapping block is never
// written, ErrOverflow is returned, and the counter lands exactly on
// the wrapped (zero) value.
func TestKeystreamOverflowDiscardsWrappingBlock(t *testing.T) {
	defer ResetBackend()
	ForceBackend(Scalar)

	key, nonce := mustKeyNonce(t)

	var st State
	require.Equal(t, OK, Setup(&st, key, nonce, 20))
	st.input[8], st.input[9] = 0xfffffffe, 0xffffffff

	var reference State
	require.Equal(t, OK, Setup(&reference, key, nonce, 20))
	reference.input[8], reference.input[9] = 0xfffffffe, 0xffffffff
	var wantBlock [blockSize]byte
	require.Equal(t, OK, reference.Keystream(wantBlock[:]))
	reference.Destroy()

	const requestedBlocks = 3
	out := bytes.Repeat([]byte{0xAA}, requestedBlocks*blockSize)
	err := st.Keystream(out)

	assert.Equal(t, ErrOverflow, err)
	assert.Equal(t, wantBlock[:], out[:blockSize], "the one safe block must match an independently derived keystream block")
	assert.Equal(t, bytes.Repeat([]byte{0xAA}, (requestedBlocks-1)*blockSize), out[blockSize:], "bytes past the wrapping block must be left untouched")
	assert.Equal(t, uint32(0), st.input[8], "counter low word must land on the wrapped value")
	assert.Equal(t, uint32(0), st.input[9], "counter high word must land on the wrapped value")

	st.Destroy()
}

// TestCryptOverflowPreservesPriorCiphertext checks the same
// wraparound through Crypt (not just Keystream), confirming the
// XOR'd bytes before the wrap are correct ciphertext and the bytes
// for the discarded block are never written to out.
func TestCryptOverflowPreservesPriorCiphertext(t *testing.T) {
	defer ResetBackend()
	ForceBackend(Scalar)

	key, nonce := mustKeyNonce(t)

	var st State
	require.Equal(t, OK, Setup(&st, key, nonce, 20))
	st.input[8], st.input[9] = 0xfffffffe, 0xffffffff

	plaintext := bytes.Repeat([]byte{0x42}, 2*blockSize)
	out := bytes.Repeat([]byte{0xAA}, len(plaintext))
	err := st.Crypt(out, plaintext)
	assert.Equal(t, ErrOverflow, err)

	var reference State
	require.Equal(t, OK, Setup(&reference, key, nonce, 20))
	reference.input[8], reference.input[9] = 0xfffffffe, 0xffffffff
	wantCiphertext := make([]byte, blockSize)
	require.Equal(t, OK, reference.Crypt(wantCiphertext, plaintext[:blockSize]))
	reference.Destroy()

	assert.Equal(t, wantCiphertext, out[:blockSize])
	assert.Equal(t, bytes.Repeat([]byte{0xAA}, blockSize), out[blockSize:])

	st.Destroy()
}
