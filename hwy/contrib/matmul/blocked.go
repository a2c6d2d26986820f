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

package matmul

import "github.com/ajroetker/go-fixedmat/hwy"

// Blocked is the cache-tiled kernel. Multiply walks BlockSize×BlockSize×BlockSize
// cubes; all other operations are Reference's.
//
// Every dimension must be a BlockDim, so the tiles cover the matrices exactly
// and there is no edge handling. Integer results equal Reference bit for bit.
// Floating-point results may differ in the last bits because the summation
// order changes.
type Blocked[T hwy.Lanes, R, C, O BlockDim] struct {
	Reference[T, R, C, O]
}

// Strategy returns StrategyBlocked.
func (Blocked[T, R, C, O]) Strategy() Strategy {
	return StrategyBlocked
}

// Multiply accumulates a×b into c.
//
// Tiles are visited in (row block, column block, inner block) order. Within a
// tile, each row of a scales a full row of the b tile into the matching row
// of the c tile, so the innermost loop streams contiguous memory.
func (Blocked[T, R, C, O]) Multiply(a, b, c []T) {
	rows, cols, inner := extent[R](), extent[C](), extent[O]()
	for i0 := 0; i0 < rows; i0 += BlockSize {
		for j0 := 0; j0 < cols; j0 += BlockSize {
			for k0 := 0; k0 < inner; k0 += BlockSize {
				for i := i0; i < i0+BlockSize; i++ {
					aRow := hwy.TileRowOf(a, i*inner+k0)
					cRow := hwy.TileRowOf(c, i*cols+j0)
					for k := range BlockSize {
						hwy.TileRowMulAdd(cRow, hwy.TileRowOf(b, (k0+k)*cols+j0), aRow[k])
					}
				}
			}
		}
	}
}
