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

package dot

import (
	"encoding/binary"
	"unsafe"
)

// Lanes is the number of int8 values carried by a Packed4.
const Lanes = 4

// Packed4 holds four int8 lanes, lane l in bits 8l..8l+7.
type Packed4 uint32

// Pack builds a Packed4 from four lanes.
func Pack(l0, l1, l2, l3 int8) Packed4 {
	return Packed4(uint32(uint8(l0)) | uint32(uint8(l1))<<8 | uint32(uint8(l2))<<16 | uint32(uint8(l3))<<24)
}

// Lane returns lane l of p.
func (p Packed4) Lane(l int) int8 {
	return int8(p >> (8 * l))
}

// Load4 loads src[0:4] as one packed word.
func Load4(src []int8) Packed4 {
	return Packed4(binary.LittleEndian.Uint32(bytesOf(src[:Lanes])))
}

// Store4 stores p into dst[0:4].
func Store4(dst []int8, p Packed4) {
	binary.LittleEndian.PutUint32(bytesOf(dst[:Lanes]), uint32(p))
}

// bytesOf reinterprets an int8 slice as bytes without copying.
func bytesOf(s []int8) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), len(s))
}
