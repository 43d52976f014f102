// Copyright (c) 2016 Andreas Auernhammer. All rights reserved.
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package salsa

import "math/bits"

// MaxLanes is the widest lane count any backend in this package uses
// (512-bit class: 16 lanes of 32-bit words).
const MaxLanes = 16

// laneState holds up to MaxLanes parallel copies of the 16-word Salsa20
// input, one per SIMD lane, transposed so that laneState[i][lane] is
// word i of the state processed by that lane. Transposing at store
// time keeps the round functions identical to the scalar path's index
// schedule, just run once per lane instead of interleaved register
// shuffles.
type laneState [16][MaxLanes]uint32

func quarterRoundWide(x *laneState, a, b, c, d, lanes int) {
	for l := 0; l < lanes; l++ {
		x[b][l] ^= bits.RotateLeft32(x[a][l]+x[d][l], 7)
		x[c][l] ^= bits.RotateLeft32(x[b][l]+x[a][l], 9)
		x[d][l] ^= bits.RotateLeft32(x[c][l]+x[b][l], 13)
		x[a][l] ^= bits.RotateLeft32(x[d][l]+x[c][l], 18)
	}
}

func doubleRoundWide(x *laneState, rounds, lanes int) {
	for i := rounds; i > 0; i -= 2 {
		quarterRoundWide(x, 0, 4, 8, 12, lanes)
		quarterRoundWide(x, 5, 9, 13, 1, lanes)
		quarterRoundWide(x, 10, 14, 2, 6, lanes)
		quarterRoundWide(x, 15, 3, 7, 11, lanes)

		quarterRoundWide(x, 0, 1, 2, 3, lanes)
		quarterRoundWide(x, 5, 6, 7, 4, lanes)
		quarterRoundWide(x, 10, 11, 8, 9, lanes)
		quarterRoundWide(x, 15, 12, 13, 14, lanes)
	}
}

// AddCounter adds off to the 64-bit block counter held in st[8] (low)
// and st[9] (high), with carry. Unsigned wraparound is the overflow
// signal; the caller is responsible for detecting it when it matters.
func AddCounter(st *[16]uint32, off uint64) {
	c := uint64(st[9])<<32 | uint64(st[8])
	c += off
	st[8] = uint32(c)
	st[9] = uint32(c >> 32)
}

// Counter returns the 64-bit block counter held in st[8] (low) and
// st[9] (high).
func Counter(st *[16]uint32) uint64 {
	return uint64(st[9])<<32 | uint64(st[8])
}

// blockGroup fills dst (lanes*64 bytes) with keystream for `lanes`
// consecutive blocks starting at the counter held in input plus
// startOffset, processing all lanes through the identical quarter-round
// schedule used by Block and serializing each lane in the same
// little-endian word order. input is unchanged.
func blockGroup(dst []byte, input *[16]uint32, rounds, lanes int, startOffset uint64) {
	var x laneState
	for l := 0; l < lanes; l++ {
		lane := *input
		AddCounter(&lane, startOffset+uint64(l))
		for i := 0; i < 16; i++ {
			x[i][l] = lane[i]
		}
	}

	work := x
	doubleRoundWide(&work, rounds, lanes)

	var buf [64]byte
	for l := 0; l < lanes; l++ {
		for i := 0; i < 16; i++ {
			Store32LE(buf[4*i:4*i+4], work[i][l]+x[i][l])
		}
		copy(dst[l*64:l*64+64], buf[:])
	}
}

// BlocksWide fills dst (n*64 bytes) with keystream for n consecutive
// blocks starting at the counter held in input, batching `lanes`
// blocks at a time through blockGroup and handling any remainder
// (n not a multiple of lanes) with the single-block path. input is
// never mutated; the caller advances the persistent counter by n once
// the call returns. lanes must be in {1, 4, 8, 16}; lanes == 1
// degenerates to the scalar path.
func BlocksWide(dst []byte, input *[16]uint32, rounds, n, lanes int) {
	i := 0
	if lanes > 1 {
		for ; i+lanes <= n; i += lanes {
			blockGroup(dst[i*64:(i+lanes)*64], input, rounds, lanes, uint64(i))
		}
	}
	for ; i < n; i++ {
		var buf [64]byte
		lane := *input
		AddCounter(&lane, uint64(i))
		Block(&buf, &lane, rounds)
		copy(dst[i*64:i*64+64], buf[:])
	}
}
