// IntersectionWitness implements the accumulator proof-aggregation scheme
// from original_source/lib/algorithms/IntersectionQuery.cpp's family of
// combined-witness queries, specialized to RSA accumulators: rather than
// handing a verifier two separate membership witnesses for two elements of
// the same accumulated set, it combines them into one witness checked with
// a single exponentiation (a "Shamir's trick" aggregation). Because
// representatives are always coprime (distinct primes), this always
// succeeds for distinct elements; it is the building block
// original_source uses to prove an element belongs to the *intersection*
// of several membership queries against one accumulator.
package rsaacc

import (
	"fmt"
	"math/big"

	"github.com/crypto-accum/accumulator/bigfield"
	"github.com/crypto-accum/accumulator/errs"
)

// IntersectionWitness combines the membership witnesses for two distinct
// elements of the same accumulator into one witness W such that
// W^(rep1*rep2) == acc. Verifying it (VerifyIntersection) establishes that
// both elements are accumulated, using one exponentiation instead of two.
//
// rep1 and rep2 must be coprime (true for any two distinct prime
// representatives); if they aren't, ErrCrypto is returned.
func IntersectionWitness(rep1, rep2 bigfield.FieldInt, w1, w2 bigfield.ModInt, pk PublicKey) (bigfield.ModInt, error) {
	if w1.Modulus().Cmp(pk.Modulus) != 0 || w2.Modulus().Cmp(pk.Modulus) != 0 {
		return bigfield.ModInt{}, fmt.Errorf("rsaacc: witness modulus does not match public key: %w", errs.ErrModulusMismatch)
	}

	gcd, a, b := new(big.Int), new(big.Int), new(big.Int)
	gcd.GCD(a, b, rep1.Int(), rep2.Int())
	if gcd.Cmp(big.NewInt(1)) != 0 {
		return bigfield.ModInt{}, fmt.Errorf("rsaacc: representatives %s and %s are not coprime: %w", rep1, rep2, errs.ErrCrypto)
	}

	// a*rep1 + b*rep2 = 1, so (w1^b * w2^a)^(rep1*rep2) =
	// (w1^rep1)^(b*rep2) * (w2^rep2)^(a*rep1) = acc^(b*rep2) * acc^(a*rep1)
	// = acc^(a*rep1+b*rep2) = acc. big.Int.Exp inverts the base when the
	// exponent is negative, so Bezout coefficients need no sign handling.
	part1 := w1.Pow(b)
	part2 := w2.Pow(a)
	combined, err := part1.Mul(part2)
	if err != nil {
		return bigfield.ModInt{}, err
	}
	return combined, nil
}

// VerifyIntersection checks that the combined witness proves membership of
// both rep1 and rep2 against acc under pk.
func VerifyIntersection(rep1, rep2 bigfield.FieldInt, combined, acc bigfield.ModInt, pk PublicKey) (bool, error) {
	if combined.Modulus().Cmp(pk.Modulus) != 0 || acc.Modulus().Cmp(pk.Modulus) != 0 {
		return false, fmt.Errorf("rsaacc: witness/accumulator modulus does not match public key: %w", errs.ErrModulusMismatch)
	}
	exponent := new(big.Int).Mul(rep1.Int(), rep2.Int())
	candidate := combined.Pow(exponent)
	return candidate.Equal(acc), nil
}
