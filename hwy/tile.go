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

// TileDim is the edge length of the square tiles the blocked kernel works on.
// Three 32×32 tiles of 8-byte elements take 24KB, inside a typical 32KB L1.
const TileDim = 32

// TileRow is one row of a tile. Kernels view buffer sub-slices as *TileRow
// so the inner loops run over a fixed-size array with no bounds checks.
type TileRow[T Lanes] [TileDim]T

// TileRowMulAdd accumulates a scaled row into dst:
//
//	dst[j] += s * src[j]
func TileRowMulAdd[T Lanes](dst, src *TileRow[T], s T) {
	for j := range TileDim {
		dst[j] += s * src[j]
	}
}

// TileRowOf views the TileDim elements of buf starting at off as a tile row.
// It panics, like any slice conversion, if fewer than TileDim remain.
func TileRowOf[T Lanes](buf []T, off int) *TileRow[T] {
	return (*TileRow[T])(buf[off : off+TileDim])
}
