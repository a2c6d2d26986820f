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

import (
	"github.com/ajroetker/go-fixedmat/hwy"
	"github.com/ajroetker/go-fixedmat/hwy/contrib/dot"
)

// BlockSize is the tile edge of the Blocked kernel.
const BlockSize = hwy.TileDim

// VectorWidth is the number of output columns the Packed kernel handles per step.
const VectorWidth = dot.Lanes

// Dim is a matrix extent fixed at compile time.
//
// Implementations are zero-size tag types whose Size method returns a
// constant, so a kernel instantiated with them carries its dimensions in its
// type:
//
//	type D9 struct{}
//
//	func (D9) Size() int { return 9 }
//
//	var k matmul.Reference[int32, D9, D9, matmul.D3]
type Dim interface {
	// Size returns the extent. It must return the same positive constant
	// for every value of the type.
	Size() int
}

// BlockDim is a Dim that is a multiple of BlockSize. The marker method is
// unexported, so outside this package only X32, or a type embedding an X32,
// satisfies it. A type that embeds X32 and redefines Size escapes the check:
// it compiles, and the Blocked kernel then indexes past its buffers.
type BlockDim interface {
	Dim
	blockMultiple()
}

// VectorDim is a Dim that is a multiple of VectorWidth. X4 and X32 satisfy
// it, with the same embedding caveat as BlockDim.
type VectorDim interface {
	Dim
	vectorMultiple()
}

// Base extents.
type (
	D1 struct{}
	D2 struct{}
	D3 struct{}
	D5 struct{}
	D6 struct{}
	D7 struct{}
)

func (D1) Size() int { return 1 }
func (D2) Size() int { return 2 }
func (D3) Size() int { return 3 }
func (D5) Size() int { return 5 }
func (D6) Size() int { return 6 }
func (D7) Size() int { return 7 }

// X4 is VectorWidth times D.
type X4[D Dim] struct{}

// Size returns VectorWidth * D.Size().
func (X4[D]) Size() int {
	var d D
	return VectorWidth * d.Size()
}

func (X4[D]) vectorMultiple() {}

// X32 is BlockSize times D.
type X32[D Dim] struct{}

// Size returns BlockSize * D.Size().
func (X32[D]) Size() int {
	var d D
	return BlockSize * d.Size()
}

func (X32[D]) blockMultiple()  {}
func (X32[D]) vectorMultiple() {}

// Common extents.
type (
	D4   = X4[D1]
	D8   = X4[D2]
	D12  = X4[D3]
	D16  = X4[D4]
	D24  = X4[D6]
	D32  = X32[D1]
	D64  = X32[D2]
	D96  = X32[D3]
	D128 = X32[D4]
	D256 = X32[X4[D2]]
)

// extent returns the size carried by D.
func extent[D Dim]() int {
	var d D
	return d.Size()
}
