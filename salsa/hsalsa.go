// Copyright (c) 2016 Andreas Auernhammer. All rights reserved.
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package salsa

// HSalsa20 computes the 256-bit XSalsa20 subkey from a 32-byte key and
// the first 16 bytes of a 24-byte nonce, via the Salsa20 double-round
// with the final add-and-serialize step omitted. subKey must be 32
// bytes, key 32 bytes, nonce16 16 bytes.
func HSalsa20(subKey, key, nonce16 []byte, rounds int) {
	var x [16]uint32

	x[0] = Load32LE(Sigma[0:4])
	x[5] = Load32LE(Sigma[4:8])
	x[10] = Load32LE(Sigma[8:12])
	x[15] = Load32LE(Sigma[12:16])

	x[1] = Load32LE(key[0:4])
	x[2] = Load32LE(key[4:8])
	x[3] = Load32LE(key[8:12])
	x[4] = Load32LE(key[12:16])
	x[11] = Load32LE(key[16:20])
	x[12] = Load32LE(key[20:24])
	x[13] = Load32LE(key[24:28])
	x[14] = Load32LE(key[28:32])

	x[6] = Load32LE(nonce16[0:4])
	x[7] = Load32LE(nonce16[4:8])
	x[8] = Load32LE(nonce16[8:12])
	x[9] = Load32LE(nonce16[12:16])

	doubleRound(&x, rounds)

	// Extract the subkey from the constant lanes and the nonce lanes.
	Store32LE(subKey[0:4], x[0])
	Store32LE(subKey[4:8], x[5])
	Store32LE(subKey[8:12], x[10])
	Store32LE(subKey[12:16], x[15])
	Store32LE(subKey[16:20], x[6])
	Store32LE(subKey[20:24], x[7])
	Store32LE(subKey[24:28], x[8])
	Store32LE(subKey[28:32], x[9])

	for i := range x {
		x[i] = 0
	}
}
