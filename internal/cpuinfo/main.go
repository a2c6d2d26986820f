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

// Package main prints the CPU features detected on the host and the kernel
// configuration compiled into this build.
package main

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/cpu"

	"github.com/ajroetker/go-fixedmat/hwy"
	"github.com/ajroetker/go-fixedmat/hwy/contrib/dot"
	"github.com/ajroetker/go-fixedmat/hwy/contrib/matmul"
)

func main() {
	fmt.Printf("GOOS: %s\n", runtime.GOOS)
	fmt.Printf("GOARCH: %s\n", runtime.GOARCH)
	fmt.Printf("NumCPU: %d\n", runtime.NumCPU())
	fmt.Println()

	fmt.Printf("Dispatch level: %s\n", hwy.CurrentLevel())
	fmt.Printf("Dispatch width: %d bytes\n", hwy.CurrentWidth())
	fmt.Printf("Int8 dot/MAC instruction: %v\n", hwy.HasInt8Dot())
	fmt.Println()

	fmt.Printf("Packed int8 path: %s\n", dot.Path)
	fmt.Printf("Block size: %d\n", matmul.BlockSize)
	fmt.Printf("Vector width: %d\n", matmul.VectorWidth)
	fmt.Println()

	switch runtime.GOARCH {
	case "arm64":
		printARM64Features()
	case "arm":
		printARMFeatures()
	case "amd64":
		printAMD64Features()
	}
}

func printARM64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.ARM64 ===")
	fmt.Printf("  HasASIMD:    %v (NEON baseline)\n", cpu.ARM64.HasASIMD)
	fmt.Printf("  HasASIMDDP:  %v (int8 dot product, ARMv8.2-A)\n", cpu.ARM64.HasASIMDDP)
	fmt.Printf("  HasASIMDHP:  %v (FP16 NEON, ARMv8.2-A)\n", cpu.ARM64.HasASIMDHP)
	fmt.Printf("  HasSVE:      %v (Scalable Vector Extension)\n", cpu.ARM64.HasSVE)
	fmt.Printf("  HasSVE2:     %v (SVE2)\n", cpu.ARM64.HasSVE2)
	fmt.Printf("  HasATOMICS:  %v (Large System Extensions)\n", cpu.ARM64.HasATOMICS)
}

func printARMFeatures() {
	fmt.Println("=== golang.org/x/sys/cpu.ARM ===")
	fmt.Printf("  HasEDSP:     %v (dual 16-bit MAC, ARMv5TE DSP)\n", cpu.ARM.HasEDSP)
	fmt.Printf("  HasNEON:     %v\n", cpu.ARM.HasNEON)
	fmt.Printf("  HasVFPv4:    %v\n", cpu.ARM.HasVFPv4)
	fmt.Printf("  HasIDIVA:    %v (hardware divide)\n", cpu.ARM.HasIDIVA)
}

func printAMD64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.X86 ===")
	fmt.Printf("  HasSSE2:       %v\n", cpu.X86.HasSSE2)
	fmt.Printf("  HasSSE41:      %v\n", cpu.X86.HasSSE41)
	fmt.Printf("  HasAVX:        %v\n", cpu.X86.HasAVX)
	fmt.Printf("  HasAVX2:       %v\n", cpu.X86.HasAVX2)
	fmt.Printf("  HasAVX512F:    %v\n", cpu.X86.HasAVX512F)
	fmt.Printf("  HasAVX512BW:   %v\n", cpu.X86.HasAVX512BW)
	fmt.Printf("  HasAVX512VNNI: %v (int8 dot product)\n", cpu.X86.HasAVX512VNNI)
	fmt.Printf("  HasBMI2:       %v\n", cpu.X86.HasBMI2)
}
