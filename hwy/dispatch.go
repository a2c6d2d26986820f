// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package hwy

import (
	"os"
	"strconv"
)

// DispatchLevel names the widest arithmetic facility detected on the host.
//
// Kernels never branch on it: every kernel path is fixed when the binary is
// built. The level exists so tools and benchmarks can report what the build
// is running on.
type DispatchLevel int

const (
	// DispatchScalar indicates no usable SIMD facility, or HWY_NO_SIMD is set.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates SSE2 instructions (x86-64 baseline).
	DispatchSSE2

	// DispatchAVX2 indicates AVX2 instructions (256-bit SIMD).
	DispatchAVX2

	// DispatchAVX512 indicates AVX-512 instructions (512-bit SIMD).
	DispatchAVX512

	// DispatchNEON indicates ARM NEON instructions (128-bit SIMD).
	DispatchNEON

	// DispatchDSP indicates the 32-bit ARM DSP extension, whose dual 16-bit
	// multiply-accumulate is the shape the packed int8 kernel is modeled on.
	DispatchDSP
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	case DispatchDSP:
		return "dsp"
	default:
		return "unknown"
	}
}

// currentLevel is the detected level for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// currentWidth is the register width in bytes for the current level.
// Set by init() in dispatch_*.go files.
var currentWidth int

// currentName is the human-readable name of the current level.
var currentName string

// hasInt8Dot reports a hardware int8 dot-product or dual multiply-accumulate.
var hasInt8Dot bool

// CurrentLevel returns the detected dispatch level.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the register width in bytes.
// For example: 4 for DSP, 16 for SSE2/NEON, 32 for AVX2, 64 for AVX-512.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns a human-readable name for the current level.
func CurrentName() string {
	return currentName
}

// HasInt8Dot returns true if the host has an int8 dot-product or packed
// 16-bit multiply-accumulate instruction (AVX512-VNNI, ARMv8.2 DotProd or
// the ARMv5TE DSP extension).
func HasInt8Dot() bool {
	return hasInt8Dot
}

// NoSimdEnv checks if the HWY_NO_SIMD environment variable is set.
// When set, detection reports the scalar level regardless of CPU capabilities.
func NoSimdEnv() bool {
	val := os.Getenv("HWY_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = 8 // a general-purpose register still carries packed lanes
	currentName = currentLevel.String()
	hasInt8Dot = false
}

func setLevel(level DispatchLevel, width int) {
	currentLevel = level
	currentWidth = width
	currentName = level.String()
}
