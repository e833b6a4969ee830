// Package primerep implements the oracle prime-representative generator
// (spec.md §4.6), grounded on original_source/lib/algorithms/OraclePrimeRep.cpp:
// every set element is mapped to a distinct prime by hashing the element
// together with a deterministic salt derived from the element itself, then
// padding and rounding up to the next probable prime. Determinism in the
// element is the property both RSAAccumulator and IntersectionWitness rely
// on: the verifier recomputes the representative rather than trusting the
// prover's claimed one.
package primerep

import (
	"crypto/sha256"
	"encoding/binary"
	"math/big"

	"github.com/crypto-accum/accumulator/bigfield"
)

// SaltBytes is the width of the per-element salt appended before hashing.
const SaltBytes = 2

// Padding is the number of low-order zero bits left after hashing, before
// the next-prime search (OraclePrimeRep.h's PADDING_LENGTH).
const Padding = 12

// lcg parameters for the salt generator: minstd_rand's multiplier and
// modulus (2^31-1), seeded with the element's top 64 bits.
const (
	lcgMultiplier = 48271
	lcgModulus    = 2147483647
)

// Generator produces prime representatives. It carries no state between
// calls, so the same Generator value may be shared and called concurrently
// by every worker in a TaskPool (spec.md §5).
type Generator struct{}

// New returns a stateless oracle prime-representative generator.
func New() Generator { return Generator{} }

// Generate returns a probable prime representative of element. Equal
// elements always produce equal representatives.
func (Generator) Generate(element bigfield.FieldInt) bigfield.FieldInt {
	elementBytes := element.Bytes()

	buf := make([]byte, len(elementBytes)+SaltBytes)
	copy(buf, elementBytes)
	binary.LittleEndian.PutUint16(buf[len(elementBytes):], salt16(element))

	digest := sha256.Sum256(buf)
	h := bigfield.FieldIntFromBytes(digest[:])
	return h.Lsh(Padding).NextPrime()
}

// salt16 derives a 16-bit salt from element by seeding a minstd_rand-style
// linear congruential generator with the element's top 64 bits and drawing
// one step.
func salt16(element bigfield.FieldInt) uint16 {
	seed := top64Bits(element) % lcgModulus
	if seed == 0 {
		seed = 1 // LCG with increment 0 has a fixed point at 0; avoid it
	}
	state := (seed * lcgMultiplier) % lcgModulus
	return uint16(state)
}

// top64Bits returns the most significant 64 bits of element's magnitude
// (the whole value if it is narrower than 64 bits).
func top64Bits(element bigfield.FieldInt) uint64 {
	v := element.Int()
	bitLen := v.BitLen()
	if bitLen <= 64 {
		return v.Uint64()
	}
	shifted := new(big.Int).Rsh(v, uint(bitLen-64))
	return shifted.Uint64()
}
