// Copyright (c) 2016 Andreas Auernhammer. All rights reserved.
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package xsalsa20

import "strconv"

// Error is the cipher's error taxonomy. Its numeric values are small
// and stable, kept for ABI-style compatibility with callers that
// switch on the integer value rather than the error string.
type Error int8

// The complete, closed set of error codes a core operation can return.
const (
	OK                  Error = 0
	ErrGeneric          Error = -1
	ErrInvalidArg       Error = -2
	ErrInvalidKeySize   Error = -3
	ErrInvalidNonceSize Error = -4
	ErrInvalidRounds    Error = -5
	ErrOverflow         Error = -6
)

func (e Error) Error() string {
	switch e {
	case OK:
		return "xsalsa20: ok"
	case ErrGeneric:
		return "xsalsa20: error"
	case ErrInvalidArg:
		return "xsalsa20: invalid argument"
	case ErrInvalidKeySize:
		return "xsalsa20: invalid key size, must be exactly 32 bytes"
	case ErrInvalidNonceSize:
		return "xsalsa20: invalid nonce size, must be exactly 24 bytes"
	case ErrInvalidRounds:
		return "xsalsa20: invalid rounds, must be an even number"
	case ErrOverflow:
		return "xsalsa20: block counter overflow, state is no longer usable"
	default:
		return "xsalsa20: unknown error code " + strconv.Itoa(int(e))
	}
}

// OK reports whether e is the zero-value success code. It lets callers
// write `if err := ...; err.OK() { ... }` without importing the OK
// constant explicitly.
func (e Error) OK() bool { return e == OK }
