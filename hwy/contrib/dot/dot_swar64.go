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

//go:build !purego && (amd64 || arm64 || loong64 || mips64 || mips64le || ppc64 || ppc64le || riscv64 || s390x || wasm)

package dot

// Path names the compiled MulAcc implementation.
const Path = "swar64"

const lane16Mask = 0x00FF_00FF_00FF_00FF

// Acc4 holds the four lanes in the low bytes of four 16-bit fields.
type Acc4 uint64

// spread moves byte l of p to bits 16l..16l+7.
func spread(p Packed4) uint64 {
	x := uint64(p)
	x = (x | x<<16) & 0x0000_FFFF_0000_FFFF
	return (x | x<<8) & lane16Mask
}

// Widen unpacks p into an accumulator.
func Widen(p Packed4) Acc4 {
	return Acc4(spread(p))
}

// Narrow packs an accumulator back into four int8 lanes.
func Narrow(acc Acc4) Packed4 {
	x := uint64(acc)
	x = (x | x>>8) & 0x0000_FFFF_0000_FFFF
	return Packed4(uint32(x | x>>16))
}

// MulAcc returns acc with a*b[l] added to every lane l, wrapping at 8 bits.
func MulAcc(acc Acc4, a int8, b Packed4) Acc4 {
	return Acc4((uint64(acc) + uint64(uint8(a))*spread(b)) & lane16Mask)
}
