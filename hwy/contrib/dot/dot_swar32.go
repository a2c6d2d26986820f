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

//go:build !purego && !(amd64 || arm64 || loong64 || mips64 || mips64le || ppc64 || ppc64le || riscv64 || s390x || wasm)

package dot

// Path names the compiled MulAcc implementation.
const Path = "swar32"

const lane16Mask = 0x00FF_00FF

// Acc4 holds lanes 0 and 2 in even and lanes 1 and 3 in odd, each in the low
// byte of a 16-bit field.
type Acc4 struct {
	even, odd uint32
}

// Widen unpacks p into an accumulator.
func Widen(p Packed4) Acc4 {
	return Acc4{
		even: uint32(p) & lane16Mask,
		odd:  uint32(p) >> 8 & lane16Mask,
	}
}

// Narrow packs an accumulator back into four int8 lanes.
func Narrow(acc Acc4) Packed4 {
	return Packed4(acc.even | acc.odd<<8)
}

// MulAcc returns acc with a*b[l] added to every lane l, wrapping at 8 bits.
func MulAcc(acc Acc4, a int8, b Packed4) Acc4 {
	s := uint32(uint8(a))
	return Acc4{
		even: (acc.even + s*(uint32(b)&lane16Mask)) & lane16Mask,
		odd:  (acc.odd + s*(uint32(b)>>8&lane16Mask)) & lane16Mask,
	}
}
