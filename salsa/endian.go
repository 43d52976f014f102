// Copyright (c) 2016 Andreas Auernhammer. All rights reserved.
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

// Package salsa implements the Salsa20 block function and the
// HSalsa20 subkey derivation used by XSalsa20. The wire format is
// fixed little-endian regardless of host byte order.
package salsa

// Load32LE reads the four bytes at b[0:4] as a little-endian uint32.
func Load32LE(b []byte) uint32 {
	_ = b[3]
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

// Store32LE writes x into b[0:4] in little-endian order.
func Store32LE(b []byte, x uint32) {
	_ = b[3]
	b[0] = byte(x)
	b[1] = byte(x >> 8)
	b[2] = byte(x >> 16)
	b[3] = byte(x >> 24)
}
