// Copyright (c) 2016 Andreas Auernhammer. All rights reserved.
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package salsa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSigmaRoundTrip(t *testing.T) {
	t.Run("load_store_identity", func(t *testing.T) {
		var out [16]byte
		for i := 0; i < 4; i++ {
			Store32LE(out[4*i:4*i+4], Load32LE(Sigma[4*i:4*i+4]))
		}
		assert.Equal(t, Sigma[:], out[:])
	})

	t.Run("ascii_text", func(t *testing.T) {
		assert.Equal(t, "expand 32-byte k", string(Sigma[:]))
	})
}

func TestBlockLeavesInputUnchanged(t *testing.T) {
	var input [16]uint32
	for i := range input {
		input[i] = uint32(i) * 0x01010101
	}
	want := input

	var out [64]byte
	Block(&out, &input, 20)

	assert.Equal(t, want, input)
}

func TestBlockDeterministic(t *testing.T) {
	var input [16]uint32
	for i := range input {
		input[i] = uint32(i + 1)
	}

	var a, b [64]byte
	Block(&a, &input, 20)
	Block(&b, &input, 20)

	assert.Equal(t, a, b)
}

func TestBlockTerminatesForEvenRounds(t *testing.T) {
	// Block itself has no rounds validation (that lives in the public
	// Setup path); it must still terminate for any even rounds value.
	var input [16]uint32
	var out [64]byte
	for _, r := range []int{2, 8, 12, 20} {
		assert.NotPanics(t, func() { Block(&out, &input, r) })
	}
}
