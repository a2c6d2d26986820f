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

// Reference is the baseline kernel: direct loops for every operation.
type Reference[T hwy.Lanes, R, C, O Dim] struct{}

// Shape returns the dimension tags of the kernel.
func (Reference[T, R, C, O]) Shape() (R, C, O) {
	var (
		r R
		c C
		o O
	)
	return r, c, o
}

// Dims returns the extents of R, C and O.
func (Reference[T, R, C, O]) Dims() (rows, cols, inner int) {
	return extent[R](), extent[C](), extent[O]()
}

// Strategy returns StrategyReference.
func (Reference[T, R, C, O]) Strategy() Strategy {
	return StrategyReference
}

// Multiply accumulates a×b into c with the i-j-k triple loop.
func (Reference[T, R, C, O]) Multiply(a, b, c []T) {
	rows, cols, inner := extent[R](), extent[C](), extent[O]()
	for i := range rows {
		for j := range cols {
			acc := c[i*cols+j]
			for k := range inner {
				acc += a[i*inner+k] * b[k*cols+j]
			}
			c[i*cols+j] = acc
		}
	}
}

// Add sets c = a + b.
func (Reference[T, R, C, O]) Add(a, b, c []T) {
	n := extent[R]() * extent[C]()
	for i := range n {
		c[i] = a[i] + b[i]
	}
}

// Sub sets c = a - b.
func (Reference[T, R, C, O]) Sub(a, b, c []T) {
	n := extent[R]() * extent[C]()
	for i := range n {
		c[i] = a[i] - b[i]
	}
}

// Transpose sets c[i][j] = a[j][i].
//
// Both loops run over R with a row stride of C, so only the leading R×R
// square of c is written. The result is the transpose only when R == C;
// with R < C the remaining columns of c are left as they were, and R > C
// reads past the end of a.
func (Reference[T, R, C, O]) Transpose(a, c []T) {
	rows, cols := extent[R](), extent[C]()
	for i := range rows {
		for j := range rows {
			c[i*cols+j] = a[j*cols+i]
		}
	}
}

// Trace returns the sum of a[i][i] for i < R. It is the matrix trace only
// when R == C; R > C reads past the end of a.
func (Reference[T, R, C, O]) Trace(a []T) T {
	rows, cols := extent[R](), extent[C]()
	var sum T
	for i := range rows {
		sum += a[i*cols+i]
	}
	return sum
}

// Min folds a with a branchless select, starting from zero rather than the
// first element. A matrix with no negative element therefore yields 0.
func (Reference[T, R, C, O]) Min(a []T) T {
	n := extent[R]() * extent[C]()
	var acc T
	for i := range n {
		v := a[i]
		acc = hwy.Select(hwy.Flag(v < acc), v, acc)
	}
	return acc
}

// Max folds a with a branchless select, starting from zero rather than the
// first element. A matrix with no positive element therefore yields 0.
func (Reference[T, R, C, O]) Max(a []T) T {
	n := extent[R]() * extent[C]()
	var acc T
	for i := range n {
		v := a[i]
		acc = hwy.Select(hwy.Flag(v > acc), v, acc)
	}
	return acc
}
