package bigfield

import (
	"errors"
	"math/big"
	"testing"

	"github.com/crypto-accum/accumulator/errs"
)

func TestNextPrimeIsAtLeastSelf(t *testing.T) {
	cases := []int64{0, 1, 2, 3, 4, 17, 100, 7919}
	for _, c := range cases {
		f := FieldIntFromInt64(c)
		p := f.NextPrime()
		if p.Cmp(f) < 0 {
			t.Errorf("NextPrime(%d) = %s, want >= %d", c, p.String(), c)
		}
		if !p.Int().ProbablyPrime(20) {
			t.Errorf("NextPrime(%d) = %s is not prime", c, p.String())
		}
	}
}

func TestNextPrimeOfPrimeIsItself(t *testing.T) {
	f := FieldIntFromInt64(7919)
	p := f.NextPrime()
	if p.Cmp(f) != 0 {
		t.Errorf("NextPrime(7919) = %s, want 7919 (already prime)", p.String())
	}
}

func TestModIntArithmeticMismatch(t *testing.T) {
	a := NewModInt(big.NewInt(5), big.NewInt(11))
	b := NewModInt(big.NewInt(5), big.NewInt(13))
	if _, err := a.Add(b); err == nil {
		t.Errorf("expected modulus mismatch error, got nil")
	} else if !errors.Is(err, errs.ErrModulusMismatch) {
		t.Errorf("expected errs.ErrModulusMismatch, got %v", err)
	}
}

func TestModIntArithmetic(t *testing.T) {
	m := big.NewInt(13)
	a := NewModInt(big.NewInt(9), m)
	b := NewModInt(big.NewInt(7), m)

	sum, err := a.Add(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum.Value().Cmp(big.NewInt(3)) != 0 {
		t.Errorf("9+7 mod 13 = %s, want 3", sum.Value())
	}

	diff, err := a.Sub(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff.Value().Cmp(big.NewInt(2)) != 0 {
		t.Errorf("9-7 mod 13 = %s, want 2", diff.Value())
	}

	prod, err := a.Mul(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prod.Value().Cmp(big.NewInt(11)) != 0 {
		t.Errorf("9*7 mod 13 = %s, want 11 (63 mod 13)", prod.Value())
	}

	pw := a.Pow(big.NewInt(2))
	if pw.Value().Cmp(big.NewInt(3)) != 0 {
		t.Errorf("9^2 mod 13 = %s, want 3 (81 mod 13)", pw.Value())
	}
}

func TestModIntSetModulusReReduces(t *testing.T) {
	a := NewModInt(big.NewInt(9), big.NewInt(13))
	b := a.SetModulus(big.NewInt(4))
	if b.Value().Cmp(big.NewInt(1)) != 0 {
		t.Errorf("9 mod 4 = %s, want 1", b.Value())
	}
}
