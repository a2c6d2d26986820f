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

import "unsafe"

// Select returns a when flag is 1 and b when flag is 0, without branching on
// flag.
//
// The choice is made by blending the two bit patterns through a mask derived
// from flag-1, which is all zeros for 1 and all ones for 0:
//
//	result = a ^ ((a ^ b) & mask)
//
// PRECONDITION: flag is exactly 0 or 1. Any other value produces a bitwise
// mixture of a and b that is neither operand.
func Select[T Lanes](flag int, a, b T) T {
	mask := uint64(flag) - 1
	switch unsafe.Sizeof(a) {
	case 1:
		r := blend(*(*uint8)(unsafe.Pointer(&a)), *(*uint8)(unsafe.Pointer(&b)), uint8(mask))
		return *(*T)(unsafe.Pointer(&r))
	case 2:
		r := blend(*(*uint16)(unsafe.Pointer(&a)), *(*uint16)(unsafe.Pointer(&b)), uint16(mask))
		return *(*T)(unsafe.Pointer(&r))
	case 4:
		r := blend(*(*uint32)(unsafe.Pointer(&a)), *(*uint32)(unsafe.Pointer(&b)), uint32(mask))
		return *(*T)(unsafe.Pointer(&r))
	default:
		r := blend(*(*uint64)(unsafe.Pointer(&a)), *(*uint64)(unsafe.Pointer(&b)), mask)
		return *(*T)(unsafe.Pointer(&r))
	}
}

// Flag converts b to 1 or 0 by reading its byte representation.
func Flag(b bool) int {
	return int(*(*uint8)(unsafe.Pointer(&b)))
}

func blend[W uint8 | uint16 | uint32 | uint64](a, b, mask W) W {
	return a ^ ((a ^ b) & mask)
}
