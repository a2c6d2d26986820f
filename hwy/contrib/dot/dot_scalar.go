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

//go:build purego

package dot

// Path names the compiled MulAcc implementation.
const Path = "scalar"

// Acc4 holds the four lanes unpacked.
type Acc4 [Lanes]int8

// Widen unpacks p into an accumulator.
func Widen(p Packed4) Acc4 {
	return Acc4{p.Lane(0), p.Lane(1), p.Lane(2), p.Lane(3)}
}

// Narrow packs an accumulator back into four int8 lanes.
func Narrow(acc Acc4) Packed4 {
	return Pack(acc[0], acc[1], acc[2], acc[3])
}

// MulAcc returns acc with a*b[l] added to every lane l, wrapping at 8 bits.
func MulAcc(acc Acc4, a int8, b Packed4) Acc4 {
	for l := range Lanes {
		acc[l] += a * b.Lane(l)
	}
	return acc
}
