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

package dot

import (
	"math"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func referenceMulAcc(acc [Lanes]int8, a int8, b [Lanes]int8) [Lanes]int8 {
	for l := range Lanes {
		acc[l] += a * b[l]
	}
	return acc
}

func lanesOf(p Packed4) [Lanes]int8 {
	return [Lanes]int8{p.Lane(0), p.Lane(1), p.Lane(2), p.Lane(3)}
}

func TestPackLane(t *testing.T) {
	p := Pack(-1, 2, math.MinInt8, math.MaxInt8)
	require.Equal(t, Packed4(0x7F80_02FF), p)
	require.Equal(t, [Lanes]int8{-1, 2, math.MinInt8, math.MaxInt8}, lanesOf(p))
}

func TestLoadStore4(t *testing.T) {
	buf := []int8{9, -3, 0, 127, -128, 5}

	p := Load4(buf[1:])
	require.Equal(t, Pack(-3, 0, 127, -128), p)

	out := make([]int8, 6)
	Store4(out[2:], p)
	require.Equal(t, []int8{0, 0, -3, 0, 127, -128}, out)
}

func TestWidenNarrow(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for range 1000 {
		p := Packed4(rng.Uint32())
		require.Equal(t, p, Narrow(Widen(p)))
	}
}

// TestMulAccExhaustive walks every (a, b) byte pair, rotating b through all
// lanes, against scalar int8 arithmetic.
func TestMulAccExhaustive(t *testing.T) {
	acc := Pack(127, -128, -1, 64)
	for a := math.MinInt8; a <= math.MaxInt8; a++ {
		for b := math.MinInt8; b <= math.MaxInt8; b++ {
			bl := [Lanes]int8{int8(b), int8(b + 1), int8(-b), int8(b >> 1)}
			bp := Pack(bl[0], bl[1], bl[2], bl[3])

			got := lanesOf(Narrow(MulAcc(Widen(acc), int8(a), bp)))
			want := referenceMulAcc(lanesOf(acc), int8(a), bl)
			if got != want {
				t.Fatalf("%s: MulAcc(%v, %d, %v) = %v, want %v", Path, lanesOf(acc), a, bl, got, want)
			}
		}
	}
}

func TestMulAccChainWraps(t *testing.T) {
	// 40 steps of 127*127 per lane overflow int8 many times over.
	acc := Widen(Pack(1, 2, 3, 4))
	want := [Lanes]int8{1, 2, 3, 4}
	b := Pack(127, -128, 1, -1)
	bl := lanesOf(b)
	for range 40 {
		acc = MulAcc(acc, 127, b)
		want = referenceMulAcc(want, 127, bl)
	}
	require.Equal(t, want, lanesOf(Narrow(acc)))
}

func TestMulAccRandomChains(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for range 200 {
		start := Packed4(rng.Uint32())
		acc := Widen(start)
		want := lanesOf(start)
		for range 1 + rng.Intn(64) {
			a := int8(rng.Intn(256))
			b := Packed4(rng.Uint32())
			acc = MulAcc(acc, a, b)
			want = referenceMulAcc(want, a, lanesOf(b))
		}
		require.Equal(t, want, lanesOf(Narrow(acc)))
	}
}

func TestPath(t *testing.T) {
	t.Logf("testing the %s path", Path)
	if Path == "scalar" {
		return
	}
	want := map[int]string{64: "swar64", 32: "swar32"}[strconv.IntSize]
	require.Equal(t, want, Path, "word size %d", strconv.IntSize)
}

func BenchmarkMulAcc(b *testing.B) {
	acc := Widen(Pack(1, 2, 3, 4))
	v := Pack(5, -6, 7, -8)
	for b.Loop() {
		for k := range 64 {
			acc = MulAcc(acc, int8(k), v)
		}
	}
	_ = Narrow(acc)
}
