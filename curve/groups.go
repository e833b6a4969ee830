package curve

import (
	"fmt"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

	"github.com/crypto-accum/accumulator/errs"
)

// G1 is an element of the first source group. Accumulators for sets live
// here (spec.md §3).
type G1 struct {
	p bls12381.G1Affine
}

// G2 is an element of the second source group. Witnesses, and the
// generator used to derive them, live here.
type G2 struct {
	p bls12381.G2Affine
}

// GT is an element of the target group the pairing maps into.
type GT struct {
	v bls12381.GT
}

// G1Identity returns the identity element of G1 (the point at infinity).
func G1Identity() G1 { return G1{} }

// G2Identity returns the identity element of G2.
func G2Identity() G2 { return G2{} }

// G1Generator returns the canonical BLS12-381 G1 generator.
func G1Generator() G1 {
	_, _, g1, _ := bls12381.Generators()
	return G1{p: g1}
}

// G2Generator returns the canonical BLS12-381 G2 generator.
func G2Generator() G2 {
	_, _, _, g2 := bls12381.Generators()
	return G2{p: g2}
}

// Add returns the group operation p+q, written multiplicatively as p*q in
// spec.md (accumulators are described as exponent products).
func (p G1) Add(q G1) G1 {
	var r bls12381.G1Affine
	r.Add(&p.p, &q.p)
	return G1{p: r}
}

func (p G2) Add(q G2) G2 {
	var r bls12381.G2Affine
	r.Add(&p.p, &q.p)
	return G2{p: r}
}

// ScalarMul returns s*p (spec.md's p^s).
func (p G1) ScalarMul(s Scalar) G1 {
	var r bls12381.G1Affine
	r.ScalarMultiplication(&p.p, s.BigInt())
	return G1{p: r}
}

func (p G2) ScalarMul(s Scalar) G2 {
	var r bls12381.G2Affine
	r.ScalarMultiplication(&p.p, s.BigInt())
	return G2{p: r}
}

func (p G1) Equal(q G1) bool { return p.p.Equal(&q.p) }
func (p G2) Equal(q G2) bool { return p.p.Equal(&q.p) }
func (g GT) Equal(h GT) bool { return g.v.Equal(&h.v) }

// Bytes returns the compressed encoding of p.
func (p G1) Bytes() []byte {
	b := p.p.Bytes()
	return b[:]
}

func (p G2) Bytes() []byte {
	b := p.p.Bytes()
	return b[:]
}

// G1ByteSize and G2ByteSize report the length of Bytes(), the compressed encoding produced
// by this backend. spec.md §6 documents the reference DCLXVI pairing's
// uncompressed sizes (384/768 bytes); this accumulator swaps in
// gnark-crypto's BLS12-381 as its curve backend (see DESIGN.md), whose
// compressed points are smaller, so serialized files carry these sizes
// instead.
func G1ByteSize() int { return bls12381.SizeOfG1AffineCompressed }
func G2ByteSize() int { return bls12381.SizeOfG2AffineCompressed }

// G1FromBytes decodes a compressed G1 point.
func G1FromBytes(b []byte) (G1, error) {
	var p bls12381.G1Affine
	if _, err := p.SetBytes(b); err != nil {
		return G1{}, fmt.Errorf("curve: decoding G1 point: %w: %v", errs.ErrIO, err)
	}
	return G1{p: p}, nil
}

// G2FromBytes decodes a compressed G2 point.
func G2FromBytes(b []byte) (G2, error) {
	var p bls12381.G2Affine
	if _, err := p.SetBytes(b); err != nil {
		return G2{}, fmt.Errorf("curve: decoding G2 point: %w: %v", errs.ErrIO, err)
	}
	return G2{p: p}, nil
}

// Pair computes e(a, b), the bilinear pairing of a G1 element and a G2
// element (spec.md §4.4's "pairing verification").
func Pair(a G1, b G2) (GT, error) {
	res, err := bls12381.Pair([]bls12381.G1Affine{a.p}, []bls12381.G2Affine{b.p})
	if err != nil {
		return GT{}, fmt.Errorf("curve: computing pairing: %w: %v", errs.ErrPairing, err)
	}
	return GT{v: res}, nil
}
