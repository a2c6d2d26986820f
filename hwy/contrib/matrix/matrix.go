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

// Package matrix owns fixed-size buffers for the matmul kernels.
//
// A Matrix[T, R, C] holds exactly R×C elements in row-major order. It takes
// care of allocation, initialization and element access, and its Multiply
// binds the operands to one kernel type at compile time:
//
//	a := matrix.New[int8, matmul.D16, matmul.D32]()
//	b := matrix.New[int8, matmul.D32, matmul.D16]()
//	c := matrix.New[int8, matmul.D16, matmul.D16]()
//	a.Randomize(rng)
//	b.Randomize(rng)
//	matrix.Multiply(matmul.Packed[matmul.D16, matmul.D16, matmul.D32]{}, a, b, c)
package matrix

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/ajroetker/go-fixedmat/hwy"
	"github.com/ajroetker/go-fixedmat/hwy/contrib/matmul"
)

// Matrix is an R×C row-major buffer of T.
type Matrix[T hwy.Lanes, R, C matmul.Dim] struct {
	data []T
}

// New returns a zero-filled matrix.
func New[T hwy.Lanes, R, C matmul.Dim]() *Matrix[T, R, C] {
	return &Matrix[T, R, C]{data: make([]T, size[R]()*size[C]())}
}

// FromRows returns a matrix holding a copy of rows.
// It panics if rows is not exactly R×C.
func FromRows[T hwy.Lanes, R, C matmul.Dim](rows [][]T) *Matrix[T, R, C] {
	m := New[T, R, C]()
	if len(rows) != m.Rows() {
		panic(fmt.Sprintf("matrix: got %d rows, want %d", len(rows), m.Rows()))
	}
	cols := m.Cols()
	for i, row := range rows {
		if len(row) != cols {
			panic(fmt.Sprintf("matrix: row %d has %d columns, want %d", i, len(row), cols))
		}
		copy(m.data[i*cols:], row)
	}
	return m
}

// Rows returns R.
func (m *Matrix[T, R, C]) Rows() int { return size[R]() }

// Cols returns C.
func (m *Matrix[T, R, C]) Cols() int { return size[C]() }

// Data returns the backing buffer. Writes through it are visible to m.
func (m *Matrix[T, R, C]) Data() []T { return m.data }

// At returns the element at (row, col).
func (m *Matrix[T, R, C]) At(row, col int) T {
	return m.data[row*m.Cols()+col]
}

// Set sets the element at (row, col).
func (m *Matrix[T, R, C]) Set(row, col int, v T) {
	m.data[row*m.Cols()+col] = v
}

// Zero sets every element to zero.
func (m *Matrix[T, R, C]) Zero() {
	clear(m.data)
}

// Randomize fills m from rng. Integer elements are uniform over the whole
// range of T; floating-point elements are uniform in [-1, 1).
func (m *Matrix[T, R, C]) Randomize(rng *rand.Rand) {
	if isFloat[T]() {
		for i := range m.data {
			m.data[i] = T(rng.Float64()*2 - 1)
		}
		return
	}
	for i := range m.data {
		m.data[i] = T(rng.Uint64())
	}
}

// RandomizeRange fills m from rng with values between lo and hi. Integer
// elements are uniform over [lo, hi]; floating-point elements are uniform
// over [lo, hi). It panics if lo > hi.
//
// Narrow ranges keep products exact: int8 operands in [-8, 8] multiplied
// over one inner step never wrap.
func (m *Matrix[T, R, C]) RandomizeRange(rng *rand.Rand, lo, hi T) {
	if lo > hi {
		panic(fmt.Sprintf("matrix: range [%v, %v] is empty", lo, hi))
	}
	if isFloat[T]() {
		span := float64(hi) - float64(lo)
		for i := range m.data {
			m.data[i] = T(float64(lo) + rng.Float64()*span)
		}
		return
	}
	// Two's complement: the difference is exact modulo 2^64 for signed and
	// unsigned T alike, and adding an offset back to lo wraps into T.
	base := uint64(lo)
	n := uint64(hi) - base + 1
	for i := range m.data {
		m.data[i] = T(base + uniform(rng, n))
	}
}

// uniform returns a value in [0, n), or any uint64 when n is 0 (the full
// 64-bit range).
func uniform(rng *rand.Rand, n uint64) uint64 {
	switch {
	case n == 0:
		return rng.Uint64()
	case n <= 1<<62:
		return uint64(rng.Int63n(int64(n)))
	}
	for {
		if r := rng.Uint64(); r < n {
			return r
		}
	}
}

// Clone returns a deep copy of m.
func (m *Matrix[T, R, C]) Clone() *Matrix[T, R, C] {
	return &Matrix[T, R, C]{data: append([]T(nil), m.data...)}
}

// Equal reports whether m and other hold identical elements.
func (m *Matrix[T, R, C]) Equal(other *Matrix[T, R, C]) bool {
	for i, v := range m.data {
		if v != other.data[i] {
			return false
		}
	}
	return true
}

// String returns the rows of m, one per line.
func (m *Matrix[T, R, C]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Matrix(%dx%d):\n", m.Rows(), m.Cols())
	cols := m.Cols()
	for i := range m.Rows() {
		fmt.Fprintf(&sb, "%v\n", m.data[i*cols:(i+1)*cols])
	}
	return sb.String()
}

// Multiply accumulates a×b into c with kernel k. The kernel's shape is tied
// to the operands by the type parameters, so a mismatch does not compile.
func Multiply[T hwy.Lanes, R, C, O matmul.Dim, K matmul.Kernel[T, R, C, O]](k K, a *Matrix[T, R, O], b *Matrix[T, O, C], c *Matrix[T, R, C]) {
	k.Multiply(a.data, b.data, c.data)
}

func size[D matmul.Dim]() int {
	var d D
	return d.Size()
}

// isFloat reports whether T is a floating-point type: 1/2 truncates to zero
// for every integer type.
func isFloat[T hwy.Lanes]() bool {
	one := T(1)
	return one/(one+one) != 0
}
