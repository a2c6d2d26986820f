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
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-fixedmat/hwy"
	"github.com/ajroetker/go-fixedmat/hwy/contrib/dot"
	"github.com/ajroetker/go-fixedmat/hwy/contrib/matmul"
)

// timing is the mean Multiply time of one kernel.
type timing struct {
	strategy matmul.Strategy
	elem     string
	shape    string
	perOp    time.Duration
}

func newBenchCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time Multiply for each strategy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.iterations <= 0 {
				return fmt.Errorf("bench: --iterations must be positive, got %d", opts.iterations)
			}
			cmd.Printf("Level: %s  Packed path: %s  Iterations: %d\n\n", hwy.CurrentName(), dot.Path, opts.iterations)

			rng := rand.New(rand.NewSource(opts.seed))
			groups := [][]timing{
				{
					timeKernel[int32](matmul.Reference[int32, matmul.D128, matmul.D128, matmul.D128]{}, "int32", opts.iterations, rng),
					timeKernel[int32](matmul.Blocked[int32, matmul.D128, matmul.D128, matmul.D128]{}, "int32", opts.iterations, rng),
				},
				{
					timeKernel[int8](matmul.Reference[int8, matmul.D64, matmul.D64, matmul.D64]{}, "int8", opts.iterations, rng),
					timeKernel[int8](matmul.Packed[matmul.D64, matmul.D64, matmul.D64]{}, "int8", opts.iterations, rng),
				},
			}
			for _, group := range groups {
				base := group[0].perOp
				for _, t := range group {
					cmd.Printf("  %-9s %-5s %-12s %12s  %5.2fx\n", strategyName(t.strategy), t.elem, t.shape, t.perOp, float64(base)/float64(t.perOp))
				}
				fastest := lo.MinBy(group, func(a, b timing) bool { return a.perOp < b.perOp })
				cmd.Printf("  fastest: %s\n\n", strategyName(fastest.strategy))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&opts.iterations, "iterations", 50, "Multiply calls per kernel")
	return cmd
}

func timeKernel[T hwy.Integers](k sized[T], elem string, iterations int, rng *rand.Rand) timing {
	rows, cols, inner := k.Dims()
	a := randomBuffer[T](rng, rows*inner)
	b := randomBuffer[T](rng, inner*cols)
	c := make([]T, rows*cols)

	start := time.Now()
	for range iterations {
		k.Multiply(a, b, c)
	}
	elapsed := time.Since(start)

	return timing{
		strategy: k.Strategy(),
		elem:     elem,
		shape:    shapeOf(k),
		perOp:    max(elapsed/time.Duration(iterations), time.Nanosecond),
	}
}

func randomBuffer[T hwy.Integers](rng *rand.Rand, n int) []T {
	buf := make([]T, n)
	for i := range buf {
		buf[i] = T(rng.Uint64())
	}
	return buf
}
