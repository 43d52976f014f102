// Copyright (c) 2016 Andreas Auernhammer. All rights reserved.
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

// Package xsalsa20 implements the XSalsa20 stream cipher: the Salsa20
// block function, the HSalsa20 key/nonce extension to a 24-byte
// nonce, and a runtime-dispatched backend that picks a scalar or
// vectorized kernel once per process.
package xsalsa20

import (
	"runtime"
	"unsafe"

	"github.com/Quartz-Vision/XSalsa20/salsa"
)

const (
	keySize   = 32
	nonceSize = 24
	blockSize = 64
)

// State is the persistent keystream state: the fixed-layout Salsa20
// input matrix, the buffered-but-unconsumed keystream bytes, and the
// bookkeeping needed to reject use before Setup or after Destroy.
type State struct {
	input   [16]uint32
	kstream [blockSize]byte
	ksleft  int
	ivlen   int
	rounds  int
}

// Setup initializes st from key (32 bytes), nonce (24 bytes) and an
// even round count (0 defaults to 20). Argument validation happens
// before any mutation of st: a failed Setup leaves st untouched.
func Setup(st *State, key, nonce []byte, rounds int) Error {
	if st == nil || key == nil || nonce == nil {
		return ErrInvalidArg
	}
	if len(key) != keySize {
		return ErrInvalidKeySize
	}
	if len(nonce) != nonceSize {
		return ErrInvalidNonceSize
	}
	if rounds == 0 {
		rounds = 20
	}
	if rounds < 2 || rounds%2 != 0 {
		return ErrInvalidRounds
	}

	var subKey [32]byte
	salsa.HSalsa20(subKey[:], key, nonce[:16], rounds)

	var input [16]uint32
	input[0] = salsa.Load32LE(salsa.Sigma[0:4])
	input[5] = salsa.Load32LE(salsa.Sigma[4:8])
	input[10] = salsa.Load32LE(salsa.Sigma[8:12])
	input[15] = salsa.Load32LE(salsa.Sigma[12:16])

	input[1] = salsa.Load32LE(subKey[0:4])
	input[2] = salsa.Load32LE(subKey[4:8])
	input[3] = salsa.Load32LE(subKey[8:12])
	input[4] = salsa.Load32LE(subKey[12:16])
	input[11] = salsa.Load32LE(subKey[16:20])
	input[12] = salsa.Load32LE(subKey[20:24])
	input[13] = salsa.Load32LE(subKey[24:28])
	input[14] = salsa.Load32LE(subKey[28:32])

	input[6] = salsa.Load32LE(nonce[16:20])
	input[7] = salsa.Load32LE(nonce[20:24])
	input[8] = 0
	input[9] = 0

	st.input = input
	st.rounds = rounds
	st.ksleft = 0
	st.ivlen = nonceSize

	secureZero(subKey[:])

	return OK
}

// min mirrors the C implementation's MIN macro for the buffered-
// keystream carry-over step.
func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// overflowPoint reports, for a request to produce n further blocks,
// the index (within [0, n)) of the block whose production would wrap
// the 64-bit counter back to zero, if any occurs within this request.
func overflowPoint(input *[16]uint32, n int) (index int, wraps bool) {
	remaining := ^salsa.Counter(input) // 2^64 - 1 - counter
	if remaining < uint64(n) {
		return int(remaining), true
	}
	return 0, false
}

// generateBlocks produces keystream for n consecutive blocks into a
// freshly allocated buffer, advancing st's counter as it goes. If the
// counter would wrap within this request, only the blocks strictly
// before the wrap are generated and returned, the counter lands on
// the wrapped (zero) value, and ErrOverflow is returned alongside the
// partial buffer; the wrapping block itself is never produced.
func generateBlocks(st *State, n int) ([]byte, Error) {
	lanes := resolveBackend().lanes()

	if idx, wraps := overflowPoint(&st.input, n); wraps {
		buf := make([]byte, idx*blockSize)
		if idx > 0 {
			salsa.BlocksWide(buf, &st.input, st.rounds, idx, lanes)
		}
		salsa.AddCounter(&st.input, uint64(idx)+1)
		return buf, ErrOverflow
	}

	buf := make([]byte, n*blockSize)
	salsa.BlocksWide(buf, &st.input, st.rounds, n, lanes)
	salsa.AddCounter(&st.input, uint64(n))
	return buf, OK
}

// crypt is the shared engine behind Crypt and Keystream: it XORs
// inlen bytes of in (or an implicit zero stream if in is nil) with
// keystream bytes.
func crypt(st *State, out, in []byte) Error {
	inlen := len(out)
	if inlen == 0 {
		return OK
	}
	if st == nil || out == nil {
		return ErrInvalidArg
	}
	if in != nil && len(in) != len(out) {
		return ErrInvalidArg
	}
	if st.ivlen != nonceSize {
		return ErrInvalidArg
	}

	pos := 0
	if st.ksleft > 0 {
		j := min(st.ksleft, inlen)
		off := blockSize - st.ksleft
		for i := 0; i < j; i++ {
			out[pos+i] = xorByte(in, pos+i) ^ st.kstream[off+i]
		}
		st.ksleft -= j
		pos += j
		inlen -= j
		if inlen == 0 {
			return OK
		}
	}

	full := inlen / blockSize
	if full > 0 {
		buf, err := generateBlocks(st, full)
		n := len(buf)
		for i := 0; i < n; i++ {
			out[pos+i] = xorByte(in, pos+i) ^ buf[i]
		}
		pos += n
		inlen -= n
		if err != OK {
			return err
		}
	}

	if inlen > 0 {
		buf, err := generateBlocks(st, 1)
		if err != OK {
			// No bytes were generated for this block (see
			// generateBlocks' overflow contract), so nothing more
			// can be written; the tail stays unconsumed.
			return err
		}
		for i := 0; i < inlen; i++ {
			out[pos+i] = xorByte(in, pos+i) ^ buf[i]
		}
		st.ksleft = blockSize - inlen
		copy(st.kstream[inlen:], buf[inlen:])
	}

	return OK
}

// xorByte returns in[i] if in is non-nil (the Crypt case), or 0 if in
// is nil (the Keystream case, an implicit zero plaintext).
func xorByte(in []byte, i int) byte {
	if in == nil {
		return 0
	}
	return in[i]
}

// Crypt XORs len(out) plaintext (or ciphertext) bytes from in with
// keystream and writes the result to out. in and out may alias
// exactly; they must not partially overlap.
func (st *State) Crypt(out, in []byte) Error {
	if len(in) != len(out) {
		return ErrInvalidArg
	}
	return crypt(st, out, in)
}

// Keystream fills out with raw keystream bytes, equivalent to Crypt
// against an implicit all-zero input.
func (st *State) Keystream(out []byte) Error {
	return crypt(st, out, nil)
}

// Destroy zeroes every byte of st, including keystream buffer,
// subkey-derived material in input, and the counter. The zeroing must
// not be eliminated as a dead store.
func (st *State) Destroy() {
	if st == nil {
		return
	}
	secureZero((*[unsafe.Sizeof(State{})]byte)(unsafe.Pointer(st))[:])
	runtime.KeepAlive(st)
}

// secureZero overwrites b with zeros through an indirection the
// compiler cannot see through statically, defeating dead-store
// elimination in the absence of a volatile qualifier.
func secureZero(b []byte) {
	for i := range b {
		*(*byte)(unsafe.Pointer(&b[i])) = 0
	}
}
