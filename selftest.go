// Copyright (c) 2016 Andreas Auernhammer. All rights reserved.
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package xsalsa20

import "bytes"

// selfTestKey, selfTestNonce and selfTestMsg are the LibTomCrypt
// XSalsa20 test vector.
var (
	selfTestKey = []byte{
		0x1b, 0x27, 0x55, 0x64, 0x73, 0xe9, 0x85, 0xd4,
		0x62, 0xcd, 0x51, 0x19, 0x7a, 0x9a, 0x46, 0xc7,
		0x60, 0x09, 0x54, 0x9e, 0xac, 0x64, 0x74, 0xf2,
		0x06, 0xc4, 0xee, 0x08, 0x44, 0xf6, 0x83, 0x89,
	}
	selfTestNonce = []byte{
		0x69, 0x69, 0x6e, 0xe9, 0x55, 0xb6, 0x2b, 0x73,
		0xcd, 0x62, 0xbd, 0xa8, 0x75, 0xfc, 0x73, 0xd6,
		0x82, 0x19, 0xe0, 0x03, 0x6b, 0x7a, 0x0b, 0x37,
	}
	selfTestMsg = append([]byte("Kilroy was here!"), 0)
)

// SelfTest validates round-trip encryption/decryption through both the
// streaming and one-shot interfaces against a fixed vector.
func SelfTest() Error {
	var st State
	if err := Setup(&st, selfTestKey, selfTestNonce, 20); err != OK {
		return err
	}

	ciphertext := make([]byte, len(selfTestMsg))
	if err := st.Crypt(ciphertext, selfTestMsg); err != OK {
		st.Destroy()
		return err
	}
	st.Destroy()

	if err := Setup(&st, selfTestKey, selfTestNonce, 20); err != OK {
		return err
	}
	decrypted := make([]byte, len(selfTestMsg))
	if err := st.Crypt(decrypted, ciphertext); err != OK {
		st.Destroy()
		return err
	}
	st.Destroy()

	if !bytes.Equal(selfTestMsg, decrypted) {
		return ErrGeneric
	}

	roundTripCiphertext := make([]byte, len(selfTestMsg))
	if err := Memory(roundTripCiphertext, selfTestMsg, selfTestKey, selfTestNonce, 20); err != OK {
		return err
	}
	roundTripPlaintext := make([]byte, len(selfTestMsg))
	if err := Memory(roundTripPlaintext, roundTripCiphertext, selfTestKey, selfTestNonce, 20); err != OK {
		return err
	}
	if !bytes.Equal(selfTestMsg, roundTripPlaintext) {
		return ErrGeneric
	}

	return OK
}
