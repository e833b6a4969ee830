package polynomial

import (
	"math/big"
	"testing"
)

func TestRootProductTiny(t *testing.T) {
	// (x+5)(x+7)(x+11) = x^3 + 23x^2 + 167x + 385
	modulus := big.NewInt(1000003)
	roots := []*big.Int{big.NewInt(5), big.NewInt(7), big.NewInt(11)}
	p, err := RootProduct(roots, modulus)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int64{385, 167, 23, 1}
	if p.Degree() != 3 {
		t.Fatalf("degree = %d, want 3", p.Degree())
	}
	for i, w := range want {
		if p.At(i).Cmp(big.NewInt(w)) != 0 {
			t.Errorf("coeff[%d] = %s, want %d", i, p.At(i), w)
		}
	}
}

func TestRootProductEmpty(t *testing.T) {
	modulus := big.NewInt(97)
	p, err := RootProduct(nil, modulus)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Degree() != 0 || p.At(0).Cmp(big.NewInt(1)) != 0 {
		t.Errorf("empty root product = %v, want constant 1", p.Coeffs())
	}
}

func TestRootProductMatchesLargerSet(t *testing.T) {
	modulus := big.NewInt(1000000007)
	roots := make([]*big.Int, 0, 20)
	for i := int64(1); i <= 20; i++ {
		roots = append(roots, big.NewInt(i*3+1))
	}
	p, err := RootProduct(roots, modulus)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Degree() != 20 {
		t.Errorf("degree = %d, want 20", p.Degree())
	}
	// leading coefficient of a monic product of linear factors is always 1
	if p.At(20).Cmp(big.NewInt(1)) != 0 {
		t.Errorf("leading coefficient = %s, want 1", p.At(20))
	}
	// split the same roots differently and confirm associativity
	left, err := RootProduct(roots[:7], modulus)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	right, err := RootProduct(roots[7:], modulus)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	combined, err := left.Mul(right)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !combined.Equal(p) {
		t.Errorf("split-product reassembly does not match direct product")
	}
}

func TestModPolyArithmeticMismatch(t *testing.T) {
	p := NewConstant(1, big.NewInt(11))
	q := NewConstant(1, big.NewInt(13))
	if _, err := p.Add(q); err == nil {
		t.Errorf("expected modulus mismatch error")
	}
}
