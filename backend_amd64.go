// Copyright (c) 2016 Andreas Auernhammer. All rights reserved.
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

//go:build amd64 && !gccgo && !appengine

package xsalsa20

import "golang.org/x/sys/cpu"

// hasVectorA/B/C follow the familiar useSSE2/useSSSE3/useAVX2 probe
// pattern, escalated one step further to AVX-512F. They are populated
// once at package init and never written again.
var (
	hasVectorA = cpu.X86.HasSSE2 || cpu.X86.HasSSSE3
	hasVectorB = cpu.X86.HasAVX2
	hasVectorC = cpu.X86.HasAVX512F
)
