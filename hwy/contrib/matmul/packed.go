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

import "github.com/ajroetker/go-fixedmat/hwy/contrib/dot"

// Packed is the int8 kernel. Multiply produces VectorWidth output columns per
// step with packed multiply-accumulate; all other operations are Reference's.
//
// C must be a VectorDim. Arithmetic wraps at 8 bits exactly as Reference's
// does, so results are identical.
type Packed[R Dim, C VectorDim, O Dim] struct {
	Reference[int8, R, C, O]
}

// Strategy returns StrategyPacked.
func (Packed[R, C, O]) Strategy() Strategy {
	return StrategyPacked
}

// Multiply accumulates a×b into c.
//
// For each row i and each group of four columns at j, the four c bytes are
// loaded as one word and widened once. Every k then broadcasts a[i][k] over
// the four packed b[k][j:j+4] bytes with a single dot.MulAcc. The word is
// narrowed and stored back after the last k.
func (Packed[R, C, O]) Multiply(a, b, c []int8) {
	rows, cols, inner := extent[R](), extent[C](), extent[O]()
	for i := range rows {
		aRow := a[i*inner : (i+1)*inner]
		for j := 0; j < cols; j += VectorWidth {
			out := c[i*cols+j:]
			acc := dot.Widen(dot.Load4(out))
			for k, aik := range aRow {
				acc = dot.MulAcc(acc, aik, dot.Load4(b[k*cols+j:]))
			}
			dot.Store4(out, dot.Narrow(acc))
		}
	}
}
