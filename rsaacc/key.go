// Package rsaacc implements the RSA accumulator (spec.md §4.5): a constant-
// size commitment to a set, built from modular exponentiation of prime
// representatives. It is grounded on
// original_source/lib/algorithms/RSAAccumulator.cpp, with Crypto++'s RSA
// modulus generation replaced by crypto/rsa.GenerateMultiPrimeKey and
// PrimeRepGenerator replaced by package primerep.
package rsaacc

import (
	"crypto/rand"
	"crypto/rsa"
	"fmt"
	"math/big"

	"github.com/crypto-accum/accumulator/bigfield"
	"github.com/crypto-accum/accumulator/errs"
	"github.com/crypto-accum/accumulator/primerep"
)

// rsaBase is spec.md §4.5's hard-coded accumulator base.
const rsaBase = 65537

// SecretKey holds the RSA modulus factorization, needed only for private
// (fast) accumulation and witness generation.
type SecretKey struct {
	P, Q *big.Int
}

// PublicKey is everything a verifier needs.
type PublicKey struct {
	Modulus *big.Int
	Base    bigfield.ModInt
	RepGen  primerep.Generator
}

// Key is an RSA accumulator keypair.
type Key struct {
	Secret SecretKey
	Public PublicKey
}

// PhiN returns (p-1)(q-1), Euler's totient of the modulus, the modulus
// private accumulation and witness generation work in.
func (k SecretKey) PhiN() *big.Int {
	pMinus1 := new(big.Int).Sub(k.P, big.NewInt(1))
	qMinus1 := new(big.Int).Sub(k.Q, big.NewInt(1))
	return new(big.Int).Mul(pMinus1, qMinus1)
}

// Keygen builds a fresh RSA accumulator key. modulusBits = max(3*elementBits+1,
// modulusBits), matching RSAAccumulator.cpp::genKey. Representatives from
// primerep are about 268 bits (a 256-bit digest shifted left by 12) whatever
// elementBits is, so a small modulus is smaller than the representatives.
func Keygen(elementBits, modulusBits int) (Key, error) {
	modBits := modulusBits
	if elementBits > 0 {
		need := 3*elementBits + 1
		if need > modBits {
			modBits = need
		}
	}
	if modBits < 8 {
		return Key{}, fmt.Errorf("rsaacc: modulus size %d bits is too small: %w", modBits, errs.ErrCrypto)
	}

	priv, err := rsa.GenerateMultiPrimeKey(rand.Reader, 2, modBits)
	if err != nil {
		return Key{}, fmt.Errorf("rsaacc: generating RSA modulus: %w: %w", err, errs.ErrCrypto)
	}
	if len(priv.Primes) != 2 {
		return Key{}, fmt.Errorf("rsaacc: expected 2 primes, got %d: %w", len(priv.Primes), errs.ErrCrypto)
	}

	n := priv.N
	p, q := priv.Primes[0], priv.Primes[1]
	base := bigfield.NewModInt(big.NewInt(rsaBase), n)

	return Key{
		Secret: SecretKey{P: p, Q: q},
		Public: PublicKey{Modulus: n, Base: base, RepGen: primerep.New()},
	}, nil
}
