// Copyright (c) 2016 Andreas Auernhammer. All rights reserved.
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

//go:build !amd64 || gccgo || appengine

package xsalsa20

// Non-amd64 (or gccgo/appengine) builds have no vector kernels to
// probe for; the dispatcher always resolves to Scalar.
const (
	hasVectorA = false
	hasVectorB = false
	hasVectorC = false
)
