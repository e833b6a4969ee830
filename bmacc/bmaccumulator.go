package bmacc

import (
	"fmt"
	"math/big"

	"github.com/crypto-accum/accumulator/curve"
	"github.com/crypto-accum/accumulator/errs"
	"github.com/crypto-accum/accumulator/multiscalar"
	"github.com/crypto-accum/accumulator/polynomial"
	"github.com/crypto-accum/accumulator/taskpool"
)

// Partition constants for AccumulateFromCoeffs, matching
// BilinearMapAccumulator.cpp::accumulateSetFromCoeffs exactly (spec.md §4.4
// step 4, pinned against the original's second adjustment pass).
const (
	maxTasks         = 50
	minOpsPerTask    = 1000
	innerPoolWorkers = 16
)

// AccumulatePrivate computes acc^E where E = Π(s+aᵢ) mod r, using the
// trapdoor to avoid expanding the polynomial at all. acc is both the base
// and the input being updated: callers start a fresh accumulator by passing
// curve.G1Generator(), and an empty set returns acc unchanged (acc^1).
func AccumulatePrivate(set []curve.Scalar, secret SecretKey, acc curve.G1) curve.G1 {
	exponent := curve.ScalarFromInt64(1)
	for _, a := range set {
		exponent = exponent.Mul(secret.S.Add(a))
	}
	return acc.ScalarMul(exponent)
}

type pointRange struct{ start, end int }

// partitionRanges splits [1,size] (half-open ranges into the caller's
// 0-indexed slices) the same way accumulateSetFromCoeffs does: an initial
// split driven by MAX_TASKS/MIN_OPERATIONS_PER_TASK, then a second
// adjustment pass whenever the first pass's range length fell below the
// target and there was enough work to deserve a second look.
func partitionRanges(size int) []pointRange {
	if size <= 0 {
		return nil
	}
	var rangeLen, numThreads, leftItems int
	switch {
	case size <= maxTasks:
		rangeLen, numThreads, leftItems = 1, size, 0
	case size <= minOpsPerTask:
		rangeLen, numThreads, leftItems = size, 1, 0
	default:
		rangeLen = size / maxTasks
		numThreads = maxTasks
		leftItems = size % maxTasks
	}
	if rangeLen < minOpsPerTask && size > minOpsPerTask {
		rangeLen = minOpsPerTask
		numThreads = (size + rangeLen - 1) / rangeLen
		leftItems = size % numThreads
	}

	ranges := make([]pointRange, 0, numThreads)
	offset := 1
	totalCoef := 0
	for i := 0; i < numThreads; i++ {
		start := offset
		var end int
		if i < leftItems {
			end = start + rangeLen + 1
			totalCoef += rangeLen + 1
		} else if size-totalCoef < rangeLen {
			end = start + (size - totalCoef)
			totalCoef += size - totalCoef
		} else {
			end = start + rangeLen
			totalCoef += rangeLen
		}
		offset = end
		ranges = append(ranges, pointRange{start: start, end: end})
	}
	return ranges
}

// accumulateFromCoeffs computes Π basis[i]^coeffs[i] for i=0..deg, where
// basis is pk.PK1 or pk.PK2 and T is curve.G1 or curve.G2. The range past
// index 0 is partitioned across pool via multiscalar.Compute per range
// (spec.md §4.4 steps 3-6).
func accumulateFromCoeffs[T multiscalar.Point[T]](coeffs []curve.Scalar, basis []T, identity T, pool *taskpool.Pool) (T, error) {
	if len(coeffs) == 0 {
		return identity, nil
	}
	acc := basis[0].ScalarMul(coeffs[0])
	deg := len(coeffs) - 1
	ranges := partitionRanges(deg)
	if len(ranges) == 0 {
		return acc, nil
	}

	futs := make([]*taskpool.Future[T], len(ranges))
	for i, rg := range ranges {
		rg := rg
		futs[i] = taskpool.Submit(pool, func() (T, error) {
			return multiscalar.Compute(basis[rg.start:rg.end], coeffs[rg.start:rg.end], identity), nil
		})
	}
	for _, f := range futs {
		partial, err := f.Get()
		if err != nil {
			return identity, err
		}
		acc = acc.Add(partial)
	}
	return acc, nil
}

// AccumulateFromCoeffsG1 computes Π pk.PK1[i]^coeffs[i], exactly spec.md
// §6's `bm_accumulate_from_coeffs(..., in_g2: false, ...)`. Like the
// original's output parameter, the result is computed fresh from coeffs
// alone; it does not read or combine with any prior accumulator value.
func AccumulateFromCoeffsG1(coeffs []curve.Scalar, pk PublicKey, pool *taskpool.Pool) (curve.G1, error) {
	return accumulateFromCoeffs(coeffs, pk.PK1, curve.G1Identity(), pool)
}

// AccumulateFromCoeffsG2 is AccumulateFromCoeffsG1's G2 counterpart.
func AccumulateFromCoeffsG2(coeffs []curve.Scalar, pk PublicKey, pool *taskpool.Pool) (curve.G2, error) {
	return accumulateFromCoeffs(coeffs, pk.PK2, curve.G2Identity(), pool)
}

// scalarsToRoots converts a Scalar slice to the *big.Int roots
// polynomial.RootProduct expects, reduced mod the curve order.
func scalarsToRoots(set []curve.Scalar) []*big.Int {
	roots := make([]*big.Int, len(set))
	for i, s := range set {
		roots[i] = s.BigInt()
	}
	return roots
}

func polyToCoeffScalars(p polynomial.ModPoly) []curve.Scalar {
	coeffs := p.Coeffs()
	out := make([]curve.Scalar, len(coeffs))
	for i, c := range coeffs {
		out[i] = curve.ScalarFromBigInt(c)
	}
	return out
}

// AccumulatePublicG1 computes g1^P(s) for P(x)=Π(x+aᵢ) (§4.3) using only
// the public key: a fresh computation from set, not an in-place update of
// an existing accumulator (the public algorithm has no way to combine with
// a prior accumulator without the trapdoor).
func AccumulatePublicG1(set []curve.Scalar, pk PublicKey, pool *taskpool.Pool) (curve.G1, error) {
	return accumulateFromCoeffsPoly(set, pk.PK1, curve.G1Identity(), pool)
}

// AccumulatePublicG2 is AccumulatePublicG1's G2 counterpart, used by public
// witness generation.
func AccumulatePublicG2(set []curve.Scalar, pk PublicKey, pool *taskpool.Pool) (curve.G2, error) {
	return accumulateFromCoeffsPoly(set, pk.PK2, curve.G2Identity(), pool)
}

func accumulateFromCoeffsPoly[T multiscalar.Point[T]](set []curve.Scalar, basis []T, identity T, pool *taskpool.Pool) (T, error) {
	order := curve.Order()
	poly, err := polynomial.RootProduct(scalarsToRoots(set), order)
	if err != nil {
		return identity, err
	}
	if poly.Degree()+1 > len(basis) {
		return identity, fmt.Errorf("bmacc: set of size %d exceeds public key capacity %d: %w",
			len(set), len(basis)-1, errs.ErrCrypto)
	}
	return accumulateFromCoeffs(polyToCoeffScalars(poly), basis, identity, pool)
}

// PrivateWitnesses computes, for every element of set, g2_base^(left[i] *
// right[i+1]) where left/right are prefix products of (s+aⱼ) mod r,
// computed via two parallel sweeps (spec.md §4.4's private witness, §5's
// "two parallel tasks, joined").
func PrivateWitnesses(set []curve.Scalar, secret SecretKey, g2Base curve.G2, pool *taskpool.Pool) ([]curve.G2, error) {
	leftFut := taskpool.Submit(pool, func() ([]curve.Scalar, error) {
		return prefixProducts(set, secret.S, false), nil
	})
	rightFut := taskpool.Submit(pool, func() ([]curve.Scalar, error) {
		return prefixProducts(set, secret.S, true), nil
	})
	left, err := leftFut.Get()
	if err != nil {
		return nil, err
	}
	right, err := rightFut.Get()
	if err != nil {
		return nil, err
	}

	witnesses := make([]curve.G2, len(set))
	for i := range set {
		exponent := left[i].Mul(right[i+1])
		witnesses[i] = g2Base.ScalarMul(exponent)
	}
	return witnesses, nil
}

func prefixProducts(set []curve.Scalar, s curve.Scalar, reversed bool) []curve.Scalar {
	out := make([]curve.Scalar, len(set)+1)
	one := curve.ScalarFromInt64(1)
	if !reversed {
		out[0] = one
		for i := 1; i <= len(set); i++ {
			out[i] = out[i-1].Mul(s.Add(set[i-1]))
		}
		return out
	}
	out[len(set)] = one
	for i := len(set) - 1; i >= 0; i-- {
		out[i] = out[i+1].Mul(s.Add(set[i]))
	}
	return out
}

// PublicWitnesses computes, for every element, the accumulation of set
// excluding that element under the public key in G2. Each per-element task
// runs on the outer pool but accumulates using a distinct secondary pool,
// so the outer pool's workers are never blocked waiting on tasks queued on
// themselves (spec.md §5's deadlock hazard).
func PublicWitnesses(set []curve.Scalar, pk PublicKey, outerPool *taskpool.Pool) ([]curve.G2, error) {
	innerPool := taskpool.New(innerPoolWorkers)
	defer innerPool.Close()

	futs := make([]*taskpool.Future[curve.G2], len(set))
	for i := range set {
		i := i
		futs[i] = taskpool.Submit(outerPool, func() (curve.G2, error) {
			reduced := withoutIndex(set, i)
			return AccumulatePublicG2(reduced, pk, innerPool)
		})
	}
	witnesses := make([]curve.G2, len(set))
	for i, f := range futs {
		w, err := f.Get()
		if err != nil {
			return nil, err
		}
		witnesses[i] = w
	}
	return witnesses, nil
}

func withoutIndex(set []curve.Scalar, index int) []curve.Scalar {
	out := make([]curve.Scalar, 0, len(set)-1)
	out = append(out, set[:index]...)
	out = append(out, set[index+1:]...)
	return out
}

// Verify checks e(g1^element * pk1[1], witness) == e(acc, g2_generator),
// i.e. witness is the accumulation of every element of the set except
// `element` (spec.md §4.4's verify).
func Verify(element curve.Scalar, witness curve.G2, acc curve.G1, pk PublicKey) (bool, error) {
	if len(pk.PK1) < 2 {
		return false, fmt.Errorf("bmacc: public key too small to verify: %w", errs.ErrCrypto)
	}
	x := curve.G1Generator().ScalarMul(element).Add(pk.PK1[1])
	lhs, err := curve.Pair(x, witness)
	if err != nil {
		return false, err
	}
	rhs, err := curve.Pair(acc, curve.G2Generator())
	if err != nil {
		return false, err
	}
	return lhs.Equal(rhs), nil
}
