// Package multiscalar implements batched multi-scalar multiplication
// (spec.md §4.2): computing Σ aᵢ·Pᵢ over an additively-written group by
// greedily reducing the largest scalar against the second-largest,
// replacing n-1 scalar multiplications with n-1 point additions and a
// single final scalar multiplication per chunk. This is the Go analogue of
// dclxvi's curvepoint_fp_multiscalarmult_vartime, ported onto
// package heap's IndexHeap instead of that C library's index_heap.c.
//
// The reduction is variable-time by design: the control flow depends on
// scalar magnitudes, which is acceptable because accumulator public keys
// and witnesses are not secret.
package multiscalar

import (
	"math/big"

	"github.com/crypto-accum/accumulator/curve"
	"github.com/crypto-accum/accumulator/heap"
)

// maxHeapSize bounds how many elements a single IndexHeap reduction handles
// at once, matching dclxvi's MAX_HEAP_SIZE.
const maxHeapSize = 8191

// residualNaiveThreshold: a trailing chunk of this size or smaller skips the
// heap machinery entirely and falls back to a direct per-point scalar-mul
// loop, since the heap's fixed overhead isn't worth it for so few points.
const residualNaiveThreshold = 5

// Point is the group-element constraint Compute requires: addition and
// scalar multiplication by a curve.Scalar, both returning the same type.
// curve.G1 and curve.G2 both satisfy it.
type Point[T any] interface {
	Add(T) T
	ScalarMul(curve.Scalar) T
}

// Compute returns Σ scalars[i]*points[i], given the additive identity of
// the group T. len(points) must equal len(scalars). The reduction runs on
// private copies of both slices, so neither input slice is modified and
// callers may pass slices shared with other goroutines (such as ranges of a
// public key).
func Compute[T Point[T]](points []T, scalars []curve.Scalar, identity T) T {
	n := len(points)
	if n == 0 {
		return identity
	}

	s := make([]*big.Int, n)
	for i, sc := range scalars {
		s[i] = sc.BigInt()
	}
	p := make([]T, n)
	copy(p, points)

	order := curve.Order()
	result := identity
	ctr := n

	for ctr >= maxHeapSize {
		result = result.Add(reduceChunk(p[:maxHeapSize], s[:maxHeapSize], order))
		p = p[maxHeapSize:]
		s = s[maxHeapSize:]
		ctr -= maxHeapSize
	}

	if ctr > residualNaiveThreshold {
		tctr := (ctr - 1) | 1
		result = result.Add(reduceChunk(p[:tctr], s[:tctr], order))
		p = p[tctr:]
		s = s[tctr:]
		ctr -= tctr
	}

	for i := 0; i < ctr; i++ {
		result = result.Add(p[i].ScalarMul(curve.ScalarFromBigInt(s[i])))
	}
	return result
}

// reduceChunk runs the greedy heap reduction over one chunk and returns its
// contribution to the running sum.
func reduceChunk[T Point[T]](p []T, s []*big.Int, order *big.Int) T {
	h := heap.New(s)
	h.Init()

	max1 := 0
	for {
		var max2 int
		max1, max2 = h.GetTopTwo()
		if s[max2].Sign() == 0 {
			break
		}
		s[max1].Sub(s[max1], s[max2])
		s[max1].Mod(s[max1], order)
		p[max2] = p[max2].Add(p[max1])
		h.RootReplaced()
	}
	return p[max1].ScalarMul(curve.ScalarFromBigInt(s[max1]))
}
