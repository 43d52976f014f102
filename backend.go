// Copyright (c) 2016 Andreas Auernhammer. All rights reserved.
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package xsalsa20

import "sync/atomic"

// Backend identifies a concrete implementation of the cipher's four
// operations for a given execution width. Values are small and stable
// so they can round-trip through an ABI boundary unchanged.
type Backend int32

const (
	Scalar  Backend = 0
	VectorA Backend = 1 // 128-bit class, 4 lanes
	VectorB Backend = 2 // 256-bit class, 8 lanes
	VectorC Backend = 3 // 512-bit class, 16 lanes
)

func (b Backend) String() string {
	switch b {
	case Scalar:
		return "scalar"
	case VectorA:
		return "vectorA"
	case VectorB:
		return "vectorB"
	case VectorC:
		return "vectorC"
	default:
		return "unknown"
	}
}

// lanes returns the number of Salsa20 blocks b processes per wide
// iteration. Scalar always processes one block at a time.
func (b Backend) lanes() int {
	switch b {
	case VectorA:
		return 4
	case VectorB:
		return 8
	case VectorC:
		return 16
	default:
		return 1
	}
}

// backendUninit is the sentinel stored in backendSlot before the
// feature detector has ever run and before any forced override.
const backendUninit int32 = -1

// backendSlot is the write-once, process-wide backend selection cache:
// one legal transition Uninit -> ChosenBackend, plus a forced-override
// path that re-arms the slot for the next caller to re-resolve (or
// simply pins the override value, in the case of ForceBackend).
// Readers use Load (acquire) and the single writer per transition uses
// Store (release); no goroutine ever read-modifies-writes this slot.
var backendSlot atomic.Int32

func init() {
	backendSlot.Store(backendUninit)
}

// resolveBackend returns the process's chosen backend, detecting CPU
// features and storing the result on first call. Concurrent first
// calls race harmlessly: CPU feature detection is a pure function of
// the host, so every racing goroutine computes the same value and the
// slot converges to it regardless of which store wins.
func resolveBackend() Backend {
	if v := backendSlot.Load(); v != backendUninit {
		return Backend(v)
	}
	chosen := detectBestBackend()
	backendSlot.Store(int32(chosen))
	return chosen
}

// ForceBackend overrides the process-wide backend selection, for
// tests that need to exercise a specific width regardless of what the
// host CPU supports. It invalidates any memoized selection.
func ForceBackend(b Backend) {
	backendSlot.Store(int32(b))
}

// ResetBackend clears a forced override (if any) so the next cipher
// call re-runs CPU feature detection from scratch.
func ResetBackend() {
	backendSlot.Store(backendUninit)
}

// detectBestBackend iterates from widest to narrowest, picking the
// first width whose runtime probe and compile-time availability both
// hold.
func detectBestBackend() Backend {
	switch {
	case hasVectorC:
		return VectorC
	case hasVectorB:
		return VectorB
	case hasVectorA:
		return VectorA
	default:
		return Scalar
	}
}
