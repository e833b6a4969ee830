package bigfield

import (
	"fmt"
	"math/big"

	"github.com/crypto-accum/accumulator/errs"
)

// ModInt is a residue modulo m: 0 <= value < modulus. Arithmetic between two
// ModInts requires equal moduli; a mismatch is reported through
// errs.ErrModulusMismatch rather than panicking, matching spec.md §3/§7.
type ModInt struct {
	value   *big.Int
	modulus *big.Int
}

// NewModInt reduces value modulo modulus and returns the residue.
func NewModInt(value, modulus *big.Int) ModInt {
	m := new(big.Int).Set(modulus)
	v := new(big.Int).Mod(value, m)
	return ModInt{value: v, modulus: m}
}

// One returns the multiplicative identity modulo modulus.
func One(modulus *big.Int) ModInt {
	return NewModInt(big.NewInt(1), modulus)
}

// Value returns the residue's representative in [0, modulus).
func (m ModInt) Value() *big.Int { return new(big.Int).Set(m.value) }

// Modulus returns the modulus.
func (m ModInt) Modulus() *big.Int { return new(big.Int).Set(m.modulus) }

// SetModulus reassigns the modulus, re-reducing the current value against
// it, per spec.md §3 ("modulus may be reassigned, which re-reduces value").
func (m ModInt) SetModulus(modulus *big.Int) ModInt {
	return NewModInt(m.value, modulus)
}

func (m ModInt) checkCompatible(other ModInt) error {
	if m.modulus.Cmp(other.modulus) != 0 {
		return fmt.Errorf("modint: moduli %s and %s differ: %w",
			m.modulus.String(), other.modulus.String(), errs.ErrModulusMismatch)
	}
	return nil
}

// Add returns m+other mod the shared modulus.
func (m ModInt) Add(other ModInt) (ModInt, error) {
	if err := m.checkCompatible(other); err != nil {
		return ModInt{}, err
	}
	sum := new(big.Int).Add(m.value, other.value)
	return NewModInt(sum, m.modulus), nil
}

// Sub returns m-other mod the shared modulus.
func (m ModInt) Sub(other ModInt) (ModInt, error) {
	if err := m.checkCompatible(other); err != nil {
		return ModInt{}, err
	}
	diff := new(big.Int).Sub(m.value, other.value)
	return NewModInt(diff, m.modulus), nil
}

// Mul returns m*other mod the shared modulus.
func (m ModInt) Mul(other ModInt) (ModInt, error) {
	if err := m.checkCompatible(other); err != nil {
		return ModInt{}, err
	}
	prod := new(big.Int).Mul(m.value, other.value)
	return NewModInt(prod, m.modulus), nil
}

// Pow returns m^exp mod the modulus. A negative exponent raises the modular
// inverse of m, which requires m to be invertible modulo the modulus.
func (m ModInt) Pow(exp *big.Int) ModInt {
	r := new(big.Int).Exp(m.value, exp, m.modulus)
	return ModInt{value: r, modulus: new(big.Int).Set(m.modulus)}
}

// Equal reports whether m and other have the same value and modulus.
func (m ModInt) Equal(other ModInt) bool {
	return m.modulus.Cmp(other.modulus) == 0 && m.value.Cmp(other.value) == 0
}

// IsZero reports whether the residue is zero.
func (m ModInt) IsZero() bool { return m.value.Sign() == 0 }

// String renders the residue's value in base 10.
func (m ModInt) String() string { return m.value.String() }
