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

package matrix

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-fixedmat/hwy/contrib/matmul"
)

func TestNewIsZero(t *testing.T) {
	m := New[int32, matmul.D3, matmul.D5]()
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 5, m.Cols())
	require.Len(t, m.Data(), 15)
	for _, v := range m.Data() {
		require.Zero(t, v)
	}
}

func TestFromRowsAtSet(t *testing.T) {
	m := FromRows[int16, matmul.D2, matmul.D3]([][]int16{
		{1, 2, 3},
		{4, 5, 6},
	})
	require.Equal(t, int16(3), m.At(0, 2))
	require.Equal(t, int16(5), m.At(1, 1))

	m.Set(1, 0, -7)
	if diff := cmp.Diff([]int16{1, 2, 3, -7, 5, 6}, m.Data()); diff != "" {
		t.Errorf("data mismatch (-want +got):\n%s", diff)
	}
}

func TestFromRowsShapeMismatch(t *testing.T) {
	require.PanicsWithValue(t, "matrix: got 1 rows, want 2", func() {
		FromRows[int8, matmul.D2, matmul.D2]([][]int8{{1, 2}})
	})
	require.PanicsWithValue(t, "matrix: row 1 has 3 columns, want 2", func() {
		FromRows[int8, matmul.D2, matmul.D2]([][]int8{{1, 2}, {3, 4, 5}})
	})
}

func TestZero(t *testing.T) {
	m := New[float32, matmul.D4, matmul.D4]()
	m.Randomize(rand.New(rand.NewSource(1)))
	m.Zero()
	if diff := cmp.Diff(make([]float32, 16), m.Data()); diff != "" {
		t.Errorf("Zero left values (-want +got):\n%s", diff)
	}
}

func TestRandomize(t *testing.T) {
	t.Run("float", func(t *testing.T) {
		m := New[float64, matmul.D16, matmul.D16]()
		m.Randomize(rand.New(rand.NewSource(3)))
		distinct := map[float64]bool{}
		for _, v := range m.Data() {
			require.GreaterOrEqual(t, v, -1.0)
			require.Less(t, v, 1.0)
			distinct[v] = true
		}
		require.Greater(t, len(distinct), 200)
	})

	t.Run("int8 covers both signs", func(t *testing.T) {
		m := New[int8, matmul.D16, matmul.D16]()
		m.Randomize(rand.New(rand.NewSource(3)))
		var neg, pos int
		for _, v := range m.Data() {
			if v < 0 {
				neg++
			} else if v > 0 {
				pos++
			}
		}
		require.Positive(t, neg)
		require.Positive(t, pos)
	})

	t.Run("deterministic", func(t *testing.T) {
		a := New[uint32, matmul.D4, matmul.D8]()
		b := New[uint32, matmul.D4, matmul.D8]()
		a.Randomize(rand.New(rand.NewSource(11)))
		b.Randomize(rand.New(rand.NewSource(11)))
		require.True(t, a.Equal(b))
	})
}

func TestCloneEqual(t *testing.T) {
	m := New[int64, matmul.D2, matmul.D2]()
	m.Randomize(rand.New(rand.NewSource(5)))
	c := m.Clone()
	require.True(t, m.Equal(c))

	c.Set(0, 0, c.At(0, 0)+1)
	require.False(t, m.Equal(c))
}

func TestMultiplyTwoByTwo(t *testing.T) {
	a := FromRows[int32, matmul.D2, matmul.D2]([][]int32{{1, 2}, {3, 4}})
	b := FromRows[int32, matmul.D2, matmul.D2]([][]int32{{5, 6}, {7, 8}})
	c := New[int32, matmul.D2, matmul.D2]()

	Multiply(matmul.Reference[int32, matmul.D2, matmul.D2, matmul.D2]{}, a, b, c)

	want := FromRows[int32, matmul.D2, matmul.D2]([][]int32{{19, 22}, {43, 50}})
	require.True(t, want.Equal(c), c.String())
}

func TestMultiplyStrategiesAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(21))

	t.Run("blocked", func(t *testing.T) {
		a := New[int32, matmul.D32, matmul.D64]()
		b := New[int32, matmul.D64, matmul.D96]()
		a.Randomize(rng)
		b.Randomize(rng)
		ref := New[int32, matmul.D32, matmul.D96]()
		got := ref.Clone()

		Multiply(matmul.Reference[int32, matmul.D32, matmul.D96, matmul.D64]{}, a, b, ref)
		Multiply(matmul.Blocked[int32, matmul.D32, matmul.D96, matmul.D64]{}, a, b, got)

		if diff := cmp.Diff(ref.Data(), got.Data()); diff != "" {
			t.Errorf("blocked differs from reference (-ref +blocked):\n%s", diff)
		}
	})

	t.Run("packed", func(t *testing.T) {
		a := New[int8, matmul.D12, matmul.D7]()
		b := New[int8, matmul.D7, matmul.D24]()
		a.Randomize(rng)
		b.Randomize(rng)
		ref := New[int8, matmul.D12, matmul.D24]()
		ref.Randomize(rng)
		got := ref.Clone()

		Multiply(matmul.Reference[int8, matmul.D12, matmul.D24, matmul.D7]{}, a, b, ref)
		Multiply(matmul.Packed[matmul.D12, matmul.D24, matmul.D7]{}, a, b, got)

		if diff := cmp.Diff(ref.Data(), got.Data()); diff != "" {
			t.Errorf("packed differs from reference (-ref +packed):\n%s", diff)
		}
	})
}

func TestString(t *testing.T) {
	m := FromRows[int8, matmul.D2, matmul.D2]([][]int8{{1, -2}, {3, 4}})
	require.Equal(t, "Matrix(2x2):\n[1 -2]\n[3 4]\n", m.String())
}

func TestRandomizeRangeBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(17))

	t.Run("int8", func(t *testing.T) {
		m := New[int8, matmul.D16, matmul.D16]()
		m.RandomizeRange(rng, -2, 2)
		seen := map[int8]bool{}
		for _, v := range m.Data() {
			require.GreaterOrEqual(t, v, int8(-2))
			require.LessOrEqual(t, v, int8(2))
			seen[v] = true
		}
		// Both ends are inclusive.
		require.Len(t, seen, 5)
	})

	t.Run("uint16", func(t *testing.T) {
		m := New[uint16, matmul.D8, matmul.D8]()
		m.RandomizeRange(rng, 1000, 1010)
		for _, v := range m.Data() {
			require.GreaterOrEqual(t, v, uint16(1000))
			require.LessOrEqual(t, v, uint16(1010))
		}
	})

	t.Run("int64 full range", func(t *testing.T) {
		m := New[int64, matmul.D4, matmul.D4]()
		m.RandomizeRange(rng, math.MinInt64, math.MaxInt64)
		var neg int
		for _, v := range m.Data() {
			if v < 0 {
				neg++
			}
		}
		require.Positive(t, neg)
	})

	t.Run("float32", func(t *testing.T) {
		m := New[float32, matmul.D8, matmul.D8]()
		m.RandomizeRange(rng, -0.25, 0.5)
		for _, v := range m.Data() {
			require.GreaterOrEqual(t, v, float32(-0.25))
			require.LessOrEqual(t, v, float32(0.5))
		}
	})

	t.Run("single value", func(t *testing.T) {
		m := New[int32, matmul.D3, matmul.D3]()
		m.RandomizeRange(rng, -7, -7)
		want := FromRows[int32, matmul.D3, matmul.D3]([][]int32{{-7, -7, -7}, {-7, -7, -7}, {-7, -7, -7}})
		require.True(t, want.Equal(m), m.String())
	})
}

func TestRandomizeRangeEmpty(t *testing.T) {
	m := New[int8, matmul.D2, matmul.D2]()
	require.PanicsWithValue(t, "matrix: range [3, 2] is empty", func() {
		m.RandomizeRange(rand.New(rand.NewSource(1)), 3, 2)
	})
}

// exact returns a×b computed in int64.
func exact[T int8 | int32, R, C, O matmul.Dim](a *Matrix[T, R, O], b *Matrix[T, O, C]) []int64 {
	rows, cols, inner := a.Rows(), b.Cols(), a.Cols()
	out := make([]int64, rows*cols)
	for i := range rows {
		for j := range cols {
			for k := range inner {
				out[i*cols+j] += int64(a.At(i, k)) * int64(b.At(k, j))
			}
		}
	}
	return out
}

func widened[T int8 | int32](buf []T) []int64 {
	out := make([]int64, len(buf))
	for i, v := range buf {
		out[i] = int64(v)
	}
	return out
}

func TestMultiplySmallRangeIsExact(t *testing.T) {
	rng := rand.New(rand.NewSource(29))

	t.Run("int8 packed", func(t *testing.T) {
		// |a*b| <= 64 fits int8 with a single inner step.
		a := New[int8, matmul.D12, matmul.D1]()
		b := New[int8, matmul.D1, matmul.D16]()
		a.RandomizeRange(rng, -8, 8)
		b.RandomizeRange(rng, -8, 8)
		ref := New[int8, matmul.D12, matmul.D16]()
		packed := New[int8, matmul.D12, matmul.D16]()

		Multiply(matmul.Reference[int8, matmul.D12, matmul.D16, matmul.D1]{}, a, b, ref)
		Multiply(matmul.Packed[matmul.D12, matmul.D16, matmul.D1]{}, a, b, packed)

		want := exact(a, b)
		if diff := cmp.Diff(want, widened(ref.Data())); diff != "" {
			t.Errorf("reference product (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff(want, widened(packed.Data())); diff != "" {
			t.Errorf("packed product (-want +got):\n%s", diff)
		}
	})

	t.Run("int32 blocked", func(t *testing.T) {
		a := New[int32, matmul.D32, matmul.D64]()
		b := New[int32, matmul.D64, matmul.D32]()
		a.RandomizeRange(rng, -100, 100)
		b.RandomizeRange(rng, -100, 100)
		c := New[int32, matmul.D32, matmul.D32]()

		Multiply(matmul.Blocked[int32, matmul.D32, matmul.D32, matmul.D64]{}, a, b, c)

		if diff := cmp.Diff(exact(a, b), widened(c.Data())); diff != "" {
			t.Errorf("blocked product (-want +got):\n%s", diff)
		}
	})
}
