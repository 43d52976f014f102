// Copyright (c) 2016 Andreas Auernhammer. All rights reserved.
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package salsa

import "math/bits"

// Sigma is "expand 32-byte k", the normative 16-byte ASCII constant
// loaded into input words 0, 5, 10 and 15 for the 32-byte key case.
var Sigma = [16]byte{'e', 'x', 'p', 'a', 'n', 'd', ' ', '3', '2', '-', 'b', 'y', 't', 'e', ' ', 'k'}

// quarterRound applies the add-xor-rotate quarter-round to x at indices
// (a, b, c, d), mod-2^32 throughout.
func quarterRound(x *[16]uint32, a, b, c, d int) {
	x[b] ^= bits.RotateLeft32(x[a]+x[d], 7)
	x[c] ^= bits.RotateLeft32(x[b]+x[a], 9)
	x[d] ^= bits.RotateLeft32(x[c]+x[b], 13)
	x[a] ^= bits.RotateLeft32(x[d]+x[c], 18)
}

// doubleRound applies rounds/2 double-rounds (column-round then
// row-round) to x using the canonical Salsa20 index schedule.
func doubleRound(x *[16]uint32, rounds int) {
	for i := rounds; i > 0; i -= 2 {
		quarterRound(x, 0, 4, 8, 12)
		quarterRound(x, 5, 9, 13, 1)
		quarterRound(x, 10, 14, 2, 6)
		quarterRound(x, 15, 3, 7, 11)

		quarterRound(x, 0, 1, 2, 3)
		quarterRound(x, 5, 6, 7, 4)
		quarterRound(x, 10, 11, 8, 9)
		quarterRound(x, 15, 12, 13, 14)
	}
}

// Block transforms the 16-word input state into 64 keystream bytes:
// rounds/2 double-rounds followed by an add-and-serialize. input is
// left unchanged; advancing the counter is the caller's job.
func Block(out *[64]byte, input *[16]uint32, rounds int) {
	var x [16]uint32
	x = *input

	doubleRound(&x, rounds)

	for i := 0; i < 16; i++ {
		Store32LE(out[4*i:4*i+4], x[i]+input[i])
	}
}
