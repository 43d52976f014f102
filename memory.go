// Copyright (c) 2016 Andreas Auernhammer. All rights reserved.
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package xsalsa20

// Memory is the one-shot entry point: Setup, Crypt, Destroy in
// sequence, returning the first non-OK error. The state is destroyed
// on every exit path once Setup has succeeded, including error paths
// from Crypt.
func Memory(out, in, key, nonce []byte, rounds int) Error {
	var st State

	if err := Setup(&st, key, nonce, rounds); err != OK {
		return err
	}

	err := st.Crypt(out, in)
	st.Destroy()
	return err
}
