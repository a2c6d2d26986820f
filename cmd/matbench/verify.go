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

package main

import (
	"fmt"
	"math/rand"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-fixedmat/hwy/contrib/matmul"
	"github.com/ajroetker/go-fixedmat/hwy/contrib/matrix"
)

// checkResult is the outcome of one cross-strategy comparison.
type checkResult struct {
	strategy matmul.Strategy
	elem     string
	shape    string
	ok       bool
}

func newVerifyCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Compare every optimized strategy against the reference kernel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			results := runChecks(rand.New(rand.NewSource(opts.seed)))
			for _, r := range results {
				cmd.Printf("  %s %-9s %-5s %-10s\n", lo.Ternary(r.ok, "PASS", "FAIL"), strategyName(r.strategy), r.elem, r.shape)
			}
			failed := lo.CountBy(results, func(r checkResult) bool { return !r.ok })
			if failed > 0 {
				return fmt.Errorf("verify: %d of %d checks failed (seed %d)", failed, len(results), opts.seed)
			}
			cmd.Printf("All %d checks passed.\n", len(results))
			return nil
		},
	}
}

func runChecks(rng *rand.Rand) []checkResult {
	return []checkResult{
		checkBlocked[matmul.D32, matmul.D32, matmul.D32](rng),
		checkBlocked[matmul.D64, matmul.D64, matmul.D64](rng),
		checkBlocked[matmul.D32, matmul.D96, matmul.D64](rng),
		checkPacked[matmul.D1, matmul.D4, matmul.D1](rng),
		checkPacked[matmul.D16, matmul.D16, matmul.D16](rng),
		checkPacked[matmul.D32, matmul.D64, matmul.D32](rng),
		checkPacked[matmul.D5, matmul.D12, matmul.D7](rng),
	}
}

func checkBlocked[R, C, O matmul.BlockDim](rng *rand.Rand) checkResult {
	var k matmul.Blocked[int32, R, C, O]
	a := matrix.New[int32, R, O]()
	b := matrix.New[int32, O, C]()
	want := matrix.New[int32, R, C]()
	a.Randomize(rng)
	b.Randomize(rng)
	want.Randomize(rng)
	got := want.Clone()

	matrix.Multiply(k.Reference, a, b, want)
	matrix.Multiply(k, a, b, got)

	return checkResult{strategy: k.Strategy(), elem: "int32", shape: shapeOf[int32](k), ok: want.Equal(got)}
}

func checkPacked[R matmul.Dim, C matmul.VectorDim, O matmul.Dim](rng *rand.Rand) checkResult {
	var k matmul.Packed[R, C, O]
	a := matrix.New[int8, R, O]()
	b := matrix.New[int8, O, C]()
	want := matrix.New[int8, R, C]()
	a.Randomize(rng)
	b.Randomize(rng)
	want.Randomize(rng)
	got := want.Clone()

	matrix.Multiply(k.Reference, a, b, want)
	matrix.Multiply(k, a, b, got)

	return checkResult{strategy: k.Strategy(), elem: "int8", shape: shapeOf[int8](k), ok: want.Equal(got)}
}
