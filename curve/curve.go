// Package curve is the accumulator's one pairing-friendly-curve
// collaborator (spec.md §1 calls the elliptic-curve pairing primitives
// "out of scope", specified only by the interface the core consumes). It
// wraps github.com/consensys/gnark-crypto's BLS12-381 implementation —
// already a direct dependency of the teacher module — to provide G1, G2,
// GT, Scalar and the pairing e: G1xG2->GT that bmacc builds on.
//
// None of the group arithmetic itself is implemented here; every method is
// a thin adapter over gnark-crypto so the accumulator logic in bmacc and
// multiscalar never has to know which curve backs it.
package curve

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/crypto-accum/accumulator/errs"
)

// Order returns the order r of the scalar field Z/rZ shared by G1, G2 and
// Scalar.
func Order() *big.Int {
	return fr.Modulus()
}

// Scalar is an element of Z/rZ, where r is the BLS12-381 scalar field
// order. It round-trips to math/big.Int, which is how it interoperates
// with bigfield.ModInt (spec.md §3).
type Scalar struct {
	v fr.Element
}

// RandomScalar draws a uniformly random scalar using crypto/rand.
func RandomScalar() (Scalar, error) {
	var e fr.Element
	if _, err := e.SetRandom(); err != nil {
		return Scalar{}, fmt.Errorf("curve: sampling random scalar: %w", err)
	}
	return Scalar{v: e}, nil
}

// ScalarFromBigInt reduces b modulo the scalar field order.
func ScalarFromBigInt(b *big.Int) Scalar {
	var e fr.Element
	e.SetBigInt(b)
	return Scalar{v: e}
}

// ScalarFromInt64 builds a Scalar from a small constant.
func ScalarFromInt64(v int64) Scalar {
	return ScalarFromBigInt(big.NewInt(v))
}

// BigInt returns the canonical representative of s in [0, Order()).
func (s Scalar) BigInt() *big.Int {
	var b big.Int
	s.v.BigInt(&b)
	return &b
}

func (s Scalar) Add(o Scalar) Scalar {
	var r fr.Element
	r.Add(&s.v, &o.v)
	return Scalar{v: r}
}

func (s Scalar) Sub(o Scalar) Scalar {
	var r fr.Element
	r.Sub(&s.v, &o.v)
	return Scalar{v: r}
}

func (s Scalar) Mul(o Scalar) Scalar {
	var r fr.Element
	r.Mul(&s.v, &o.v)
	return Scalar{v: r}
}

// IsZero reports whether s is the additive identity.
func (s Scalar) IsZero() bool { return s.v.IsZero() }

// Equal reports value equality.
func (s Scalar) Equal(o Scalar) bool { return s.v.Equal(&o.v) }

// Bytes returns the canonical fixed-width big-endian encoding of s.
func (s Scalar) Bytes() []byte {
	b := s.v.Bytes()
	return b[:]
}

// ScalarByteSize reports the length of Bytes(), the canonical encoding
// produced and expected by ScalarFromBytes.
func ScalarByteSize() int { return fr.Bytes }

// ScalarFromBytes decodes a canonical big-endian scalar encoding.
func ScalarFromBytes(b []byte) (Scalar, error) {
	var e fr.Element
	if len(b) != fr.Bytes {
		return Scalar{}, fmt.Errorf("curve: scalar encoding is %d bytes, want %d: %w",
			len(b), fr.Bytes, errs.ErrIO)
	}
	e.SetBytes(b)
	return Scalar{v: e}, nil
}
