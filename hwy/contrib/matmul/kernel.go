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

// Package matmul implements fixed-size matrix kernels over caller-owned,
// row-major buffers.
//
// A kernel is a zero-size value whose type fixes the element type, the
// dimensions and the multiply algorithm:
//
//	var k matmul.Blocked[int32, matmul.D64, matmul.D64, matmul.D128]
//	k.Multiply(a, b, c) // a is 64x128, b is 128x64, c is 64x64
//
// Three strategies are provided. Reference runs the direct loops and is the
// baseline the others are checked against. Blocked tiles Multiply into
// BlockSize cubes. Packed is int8 only and computes VectorWidth output
// columns per step with packed multiply-accumulate. Blocked and Packed embed
// Reference and replace only Multiply; every other operation is the
// Reference one, promoted at compile time.
//
// Kernels do not allocate, validate or retain buffers. Multiply accumulates
// into c; zero c first for a plain product. Structural requirements
// (block and vector divisibility, the int8 element type of Packed) are type
// constraints and fail compilation. A buffer shorter than its dimensions
// require is a caller bug; the kernels do not check for it.
package matmul

import "github.com/ajroetker/go-fixedmat/hwy"

// Strategy identifies the multiply algorithm a kernel type is bound to.
type Strategy int

const (
	// StrategyReference is the direct triple loop.
	StrategyReference Strategy = iota
	// StrategyBlocked is the BlockSize-tiled loop nest.
	StrategyBlocked
	// StrategyPacked is the packed int8 multiply-accumulate loop.
	StrategyPacked
)

// String returns the name of the strategy.
func (s Strategy) String() string {
	names := []string{"reference", "blocked", "packed"}
	if int(s) >= 0 && int(s) < len(names) {
		return names[s]
	}
	return "unknown"
}

// Kernel is the operation set shared by all strategies for element type T,
// Rows R, Columns C and, for Multiply, inner dimension O.
//
// Code generic over Kernel is instantiated per kernel type, so calls through
// a type parameter constrained by Kernel resolve statically.
type Kernel[T hwy.Lanes, R, C, O Dim] interface {
	// Shape returns the dimension tags the kernel is bound to.
	Shape() (R, C, O)

	// Dims returns the extents of R, C and O.
	Dims() (rows, cols, inner int)

	// Strategy returns the multiply algorithm of the kernel type.
	Strategy() Strategy

	// Multiply accumulates the product of a (R×O) and b (O×C) into c (R×C):
	// c[i][j] += Σ_k a[i][k]*b[k][j].
	Multiply(a, b, c []T)

	// Add sets c = a + b elementwise over R×C.
	Add(a, b, c []T)

	// Sub sets c = a - b elementwise over R×C.
	Sub(a, b, c []T)

	// Transpose sets c[i][j] = a[j][i] for i, j < R.
	Transpose(a, c []T)

	// Trace returns Σ a[i][i] for i < R.
	Trace(a []T) T

	// Min returns the zero-seeded branchless minimum over R×C.
	Min(a []T) T

	// Max returns the zero-seeded branchless maximum over R×C.
	Max(a []T) T
}
