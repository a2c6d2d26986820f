// Package dot provides the packed int8 multiply-accumulate primitive used by
// the packed-integer matmul kernel.
//
// # Lanes
//
// Four int8 values travel together in one 32-bit word (Packed4), lane l in
// bits 8l..8l+7. Loads and stores move all four with a single little-endian
// 32-bit access:
//
//	acc := dot.Widen(dot.Load4(c[j:]))
//	for k := range inner {
//	    acc = dot.MulAcc(acc, a[k], dot.Load4(b[k*cols+j:]))
//	}
//	dot.Store4(c[j:], dot.Narrow(acc))
//
// MulAcc computes acc[l] += a * b[l] for all four lanes with int8
// wraparound, matching scalar int8 arithmetic bit for bit.
//
// # Implementations
//
// The implementation is fixed when the package is built:
//   - swar64 (64-bit GOARCHes): the lanes are spread into the four 16-bit
//     lanes of a uint64, so one multiply-add per step covers all four.
//   - swar32 (32-bit GOARCHes): bytes 0/2 and 1/3 are interleaved into two
//     words of two 16-bit lanes, and two multiply-adds cover the four lanes,
//     the shape of a dual 16-bit MAC instruction.
//   - scalar (-tags purego): four independent int8 multiply-adds.
//
// Path reports which one was compiled in. A plain go test covers only that
// one; the others are tested with
//
//	GOARCH=386 go test ./hwy/contrib/dot/   # swar32
//	go test -tags purego ./hwy/contrib/dot/ # scalar
//
// Products are formed on the zero-extended lane bytes. The low 8 bits of a
// sum of products do not depend on signedness, and a lane never exceeds
// 255 + 255*255 < 2^16 before it is masked, so no carry leaks into the
// neighboring lane.
package dot
