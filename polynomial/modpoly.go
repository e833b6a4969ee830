// Package polynomial implements ModPoly, a dense polynomial over Z/mZ, and
// the divide-and-conquer product used to expand a set of roots into a
// monic polynomial (spec.md §4.3). This is the "expand the polynomial P(x) =
// Π (x + a_i)" step that feeds both the bilinear-map accumulator's
// coefficient vector and, conceptually, mirrors the RSA accumulator's
// exponent product.
package polynomial

import (
	"fmt"
	"math/big"

	"github.com/crypto-accum/accumulator/errs"
)

// ModPoly holds coefficients [c0, c1, ..., cDeg] of a polynomial over
// Z/modulus Z, each already reduced modulo modulus.
type ModPoly struct {
	modulus *big.Int
	coeffs  []*big.Int // coeffs[i] is the coefficient of x^i
}

// NewConstant returns the degree-0 polynomial equal to value mod modulus.
func NewConstant(value int64, modulus *big.Int) ModPoly {
	c := new(big.Int).Mod(big.NewInt(value), modulus)
	return ModPoly{modulus: new(big.Int).Set(modulus), coeffs: []*big.Int{c}}
}

// NewLinear returns the monic linear factor (x + a) mod modulus.
func NewLinear(a *big.Int, modulus *big.Int) ModPoly {
	c0 := new(big.Int).Mod(a, modulus)
	return ModPoly{modulus: new(big.Int).Set(modulus), coeffs: []*big.Int{c0, big.NewInt(1)}}
}

// Modulus returns the polynomial's modulus.
func (p ModPoly) Modulus() *big.Int { return new(big.Int).Set(p.modulus) }

// Degree returns the highest index with a nonzero coefficient, or -1 for the
// zero polynomial.
func (p ModPoly) Degree() int {
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		if p.coeffs[i].Sign() != 0 {
			return i
		}
	}
	return -1
}

// At returns the coefficient of x^i, or zero if i is out of range.
func (p ModPoly) At(i int) *big.Int {
	if i < 0 || i >= len(p.coeffs) {
		return big.NewInt(0)
	}
	return new(big.Int).Set(p.coeffs[i])
}

// Coeffs returns coefficients c0..c_deg inclusive (length Degree()+1), or a
// single zero coefficient for the zero polynomial.
func (p ModPoly) Coeffs() []*big.Int {
	deg := p.Degree()
	if deg < 0 {
		return []*big.Int{big.NewInt(0)}
	}
	out := make([]*big.Int, deg+1)
	for i := range out {
		out[i] = new(big.Int).Set(p.coeffs[i])
	}
	return out
}

func (p ModPoly) checkCompatible(q ModPoly) error {
	if p.modulus.Cmp(q.modulus) != 0 {
		return fmt.Errorf("modpoly: moduli differ: %w", errs.ErrModulusMismatch)
	}
	return nil
}

// Add returns p+q.
func (p ModPoly) Add(q ModPoly) (ModPoly, error) {
	if err := p.checkCompatible(q); err != nil {
		return ModPoly{}, err
	}
	n := len(p.coeffs)
	if len(q.coeffs) > n {
		n = len(q.coeffs)
	}
	out := make([]*big.Int, n)
	for i := 0; i < n; i++ {
		sum := new(big.Int).Add(p.At(i), q.At(i))
		out[i] = sum.Mod(sum, p.modulus)
	}
	return ModPoly{modulus: p.modulus, coeffs: out}, nil
}

// Sub returns p-q.
func (p ModPoly) Sub(q ModPoly) (ModPoly, error) {
	if err := p.checkCompatible(q); err != nil {
		return ModPoly{}, err
	}
	n := len(p.coeffs)
	if len(q.coeffs) > n {
		n = len(q.coeffs)
	}
	out := make([]*big.Int, n)
	for i := 0; i < n; i++ {
		diff := new(big.Int).Sub(p.At(i), q.At(i))
		out[i] = diff.Mod(diff, p.modulus)
	}
	return ModPoly{modulus: p.modulus, coeffs: out}, nil
}

// Mul returns the schoolbook product p*q.
func (p ModPoly) Mul(q ModPoly) (ModPoly, error) {
	if err := p.checkCompatible(q); err != nil {
		return ModPoly{}, err
	}
	pd, qd := p.Degree(), q.Degree()
	if pd < 0 || qd < 0 {
		return ModPoly{modulus: p.modulus, coeffs: []*big.Int{big.NewInt(0)}}, nil
	}
	out := make([]*big.Int, pd+qd+1)
	for i := range out {
		out[i] = big.NewInt(0)
	}
	tmp := new(big.Int)
	for i := 0; i <= pd; i++ {
		if p.coeffs[i].Sign() == 0 {
			continue
		}
		for j := 0; j <= qd; j++ {
			if q.coeffs[j].Sign() == 0 {
				continue
			}
			tmp.Mul(p.coeffs[i], q.coeffs[j])
			out[i+j].Add(out[i+j], tmp)
		}
	}
	for i := range out {
		out[i].Mod(out[i], p.modulus)
	}
	return ModPoly{modulus: p.modulus, coeffs: out}, nil
}

// Pow returns p raised to a non-negative integer exponent by repeated
// squaring.
func (p ModPoly) Pow(exp uint64) (ModPoly, error) {
	result := NewConstant(1, p.modulus)
	base := p
	for exp > 0 {
		if exp&1 == 1 {
			var err error
			result, err = result.Mul(base)
			if err != nil {
				return ModPoly{}, err
			}
		}
		exp >>= 1
		if exp > 0 {
			var err error
			base, err = base.Mul(base)
			if err != nil {
				return ModPoly{}, err
			}
		}
	}
	return result, nil
}

// Equal reports whether p and q have the same modulus and the same
// coefficients up to trailing zeros.
func (p ModPoly) Equal(q ModPoly) bool {
	if p.modulus.Cmp(q.modulus) != 0 {
		return false
	}
	n := len(p.coeffs)
	if len(q.coeffs) > n {
		n = len(q.coeffs)
	}
	for i := 0; i < n; i++ {
		if p.At(i).Cmp(q.At(i)) != 0 {
			return false
		}
	}
	return true
}

// RootProduct builds P(x) = Π_{i} (x + roots[i]) mod modulus by recursively
// splitting the root set in half and multiplying the two halves (spec.md
// §4.3), multiplying runs of up to four roots in a tight loop rather than
// recursing to single-root leaves, which keeps the recursion shallow and favors cache
// locality at the base of the tree the way the original divide-and-conquer
// C++ does via schoolbook multiplication at small sizes.
//
// An empty root set yields the constant polynomial 1.
func RootProduct(roots []*big.Int, modulus *big.Int) (ModPoly, error) {
	if len(roots) == 0 {
		return NewConstant(1, modulus), nil
	}
	return rootProductRange(roots, 0, len(roots), modulus)
}

func rootProductRange(roots []*big.Int, lo, hi int, modulus *big.Int) (ModPoly, error) {
	n := hi - lo
	switch {
	case n == 1:
		return NewLinear(roots[lo], modulus), nil
	case n <= 4:
		// Batch small leaves directly with schoolbook multiplication
		// instead of recursing one root at a time.
		p := NewLinear(roots[lo], modulus)
		for i := lo + 1; i < hi; i++ {
			var err error
			p, err = p.Mul(NewLinear(roots[i], modulus))
			if err != nil {
				return ModPoly{}, err
			}
		}
		return p, nil
	default:
		mid := lo + n/2
		left, err := rootProductRange(roots, lo, mid, modulus)
		if err != nil {
			return ModPoly{}, err
		}
		right, err := rootProductRange(roots, mid, hi, modulus)
		if err != nil {
			return ModPoly{}, err
		}
		return left.Mul(right)
	}
}
