// Package bmacc implements the bilinear-map accumulator (spec.md §4.4): a
// KZG-style structured reference string doubles as both the accumulator's
// private and public key, and a set is committed as g1^P(s) for the
// polynomial P(x) = Π(x+aᵢ) whose roots are the set's elements. It is
// grounded on original_source/lib/algorithms/BilinearMapAccumulator.cpp and
// its header, with DCLXVI's G1/G2/GT/Scalar replaced by package curve
// (gnark-crypto's BLS12-381), matching the teacher's own use of
// gnark-crypto for pairing-based commitments in setup/setup.go.
package bmacc

import (
	"fmt"

	"github.com/crypto-accum/accumulator/curve"
	"github.com/crypto-accum/accumulator/taskpool"
)

// SecretKey is the trapdoor scalar s. Knowing it lets accumulation and
// witness generation skip the public polynomial expansion entirely.
type SecretKey struct {
	S curve.Scalar
}

// PublicKey is the structured reference string {g1^{s^i}}, {g2^{s^i}} for
// i=0..q, letting anyone accumulate a set of size up to q without the
// trapdoor.
type PublicKey struct {
	PK1 []curve.G1
	PK2 []curve.G2
}

// Key is a bilinear-map accumulator keypair.
type Key struct {
	Secret SecretKey
	Public PublicKey
}

// MaxSetSize returns the largest set this key can publicly accumulate
// (len(PK1)-1, since PK1 holds powers 0..q).
func (pk PublicKey) MaxSetSize() int {
	if len(pk.PK1) == 0 {
		return 0
	}
	return len(pk.PK1) - 1
}

// Keygen samples a random trapdoor s and computes both power vectors in
// parallel (spec.md §5: "BM keygen: two parallel tasks (G1 powers, G2
// powers), joined").
func Keygen(maxSetSize uint64, pool *taskpool.Pool) (Key, error) {
	s, err := curve.RandomScalar()
	if err != nil {
		return Key{}, fmt.Errorf("bmacc: sampling trapdoor: %w", err)
	}

	g1Fut := taskpool.Submit(pool, func() ([]curve.G1, error) {
		return powersG1(s, maxSetSize), nil
	})
	g2Fut := taskpool.Submit(pool, func() ([]curve.G2, error) {
		return powersG2(s, maxSetSize), nil
	})

	pk1, err := g1Fut.Get()
	if err != nil {
		return Key{}, err
	}
	pk2, err := g2Fut.Get()
	if err != nil {
		return Key{}, err
	}

	return Key{
		Secret: SecretKey{S: s},
		Public: PublicKey{PK1: pk1, PK2: pk2},
	}, nil
}

func powersG1(s curve.Scalar, q uint64) []curve.G1 {
	out := make([]curve.G1, q+1)
	out[0] = curve.G1Generator()
	for i := uint64(1); i <= q; i++ {
		out[i] = out[i-1].ScalarMul(s)
	}
	return out
}

func powersG2(s curve.Scalar, q uint64) []curve.G2 {
	out := make([]curve.G2, q+1)
	out[0] = curve.G2Generator()
	for i := uint64(1); i <= q; i++ {
		out[i] = out[i-1].ScalarMul(s)
	}
	return out
}
