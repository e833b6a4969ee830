// Package bigfield wraps math/big to give the accumulator core the two
// primitives spec.md calls FieldInt and ModInt: arbitrary-precision signed
// integers, and residues modulo m with checked arithmetic. rsaacc uses these
// types for its set elements, prime representatives, accumulators and
// witnesses; bmacc works on curve.Scalar instead.
package bigfield

import (
	"math/big"
)

// FieldInt is a signed arbitrary-precision integer, e.g. a set element or a
// freshly hashed prime-representative candidate before it is reduced modulo
// anything.
type FieldInt struct {
	v *big.Int
}

// NewFieldInt returns a FieldInt holding a copy of v.
func NewFieldInt(v *big.Int) FieldInt {
	return FieldInt{v: new(big.Int).Set(v)}
}

// FieldIntFromInt64 builds a FieldInt from a small signed constant.
func FieldIntFromInt64(v int64) FieldInt {
	return FieldInt{v: big.NewInt(v)}
}

// FieldIntFromBytes interprets b as a big-endian unsigned integer.
func FieldIntFromBytes(b []byte) FieldInt {
	return FieldInt{v: new(big.Int).SetBytes(b)}
}

// FieldIntFromString parses a base-10 ASCII string, as used by the random
// bigint file format in spec.md §6.
func FieldIntFromString(s string) (FieldInt, bool) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return FieldInt{}, false
	}
	return FieldInt{v: v}, true
}

// Int returns the underlying *big.Int. Callers must treat it as read-only.
func (f FieldInt) Int() *big.Int { return f.v }

// BitLen returns the number of bits required to represent |f|, matching
// fmpz_bits / flint::BigInt::bitLength.
func (f FieldInt) BitLen() int { return f.v.BitLen() }

// ToHex renders f in base 16, matching flint::BigInt::toHex.
func (f FieldInt) ToHex() string { return f.v.Text(16) }

// Bytes returns the big-endian unsigned encoding of f, of length
// ceil(BitLen()/8), matching LibConversions::bigIntToBytes.
func (f FieldInt) Bytes() []byte {
	byteLen := (f.BitLen() + 7) / 8
	out := make([]byte, byteLen)
	f.v.FillBytes(out)
	return out
}

// Lsh returns f shifted left by n bits.
func (f FieldInt) Lsh(n uint) FieldInt {
	return FieldInt{v: new(big.Int).Lsh(f.v, n)}
}

// Cmp compares f to other as math/big.Int.Cmp does.
func (f FieldInt) Cmp(other FieldInt) int { return f.v.Cmp(other.v) }

// Sign returns -1, 0 or 1 matching the sign of f.
func (f FieldInt) Sign() int { return f.v.Sign() }

// String renders f in base 10.
func (f FieldInt) String() string { return f.v.String() }

// NextPrime returns the smallest probable prime >= f, mirroring
// flint::BigInt::nextPrime (which shells out to GMP's mpz_nextprime). It
// scans odd candidates using Miller-Rabin via math/big.Int.ProbablyPrime,
// which gives an error probability low enough that this package documents
// the result as "probable prime" throughout, exactly as spec.md does.
func (f FieldInt) NextPrime() FieldInt {
	cand := new(big.Int).Set(f.v)
	two := big.NewInt(2)
	if cand.Cmp(two) < 0 {
		return FieldInt{v: two}
	}
	if cand.Bit(0) == 0 {
		cand.Add(cand, big.NewInt(1))
	}
	for !cand.ProbablyPrime(20) {
		cand.Add(cand, big.NewInt(2))
	}
	return FieldInt{v: cand}
}
