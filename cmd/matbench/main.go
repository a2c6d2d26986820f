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

// Command matbench cross-checks and times the matmul kernel strategies.
//
// Usage:
//
//	matbench verify [--seed N]
//	matbench bench [--seed N] [--iterations N]
//
// verify multiplies random integer matrices with each optimized strategy and
// with the reference kernel and fails if any output differs. bench reports
// the time per Multiply call for each strategy.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ajroetker/go-fixedmat/hwy/contrib/matmul"
)

type options struct {
	seed       int64
	iterations int
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "matbench",
		Short:         "Cross-check and time fixed-size matmul kernels",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(os.Stdout)
	root.PersistentFlags().Int64Var(&opts.seed, "seed", 1, "seed for the random operands")

	root.AddCommand(newVerifyCmd(opts), newBenchCmd(opts))
	return root
}

// strategyName returns the display name of s, e.g. "Blocked".
func strategyName(s matmul.Strategy) string {
	return cases.Title(language.English).String(s.String())
}

// sized is the dimension-free view of a kernel the commands work with.
type sized[T any] interface {
	Dims() (rows, cols, inner int)
	Strategy() matmul.Strategy
	Multiply(a, b, c []T)
}

func shapeOf[T any](k sized[T]) string {
	rows, cols, inner := k.Dims()
	return fmt.Sprintf("%dx%dx%d", rows, cols, inner)
}
