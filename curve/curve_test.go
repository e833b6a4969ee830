package curve

import "testing"

func TestScalarRoundTripBigInt(t *testing.T) {
	s, err := RandomScalar()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	back := ScalarFromBigInt(s.BigInt())
	if !s.Equal(back) {
		t.Errorf("scalar did not round-trip through BigInt")
	}
}

func TestScalarRoundTripBytes(t *testing.T) {
	s, err := RandomScalar()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	back, err := ScalarFromBytes(s.Bytes())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !s.Equal(back) {
		t.Errorf("scalar did not round-trip through Bytes")
	}
}

func TestG1IdentityIsAdditiveIdentity(t *testing.T) {
	g := G1Generator()
	if !g.Add(G1Identity()).Equal(g) {
		t.Errorf("generator + identity != generator")
	}
}

func TestG1ScalarMulLinearity(t *testing.T) {
	g := G1Generator()
	a := ScalarFromInt64(3)
	b := ScalarFromInt64(4)
	lhs := g.ScalarMul(a).Add(g.ScalarMul(b))
	rhs := g.ScalarMul(a.Add(b))
	if !lhs.Equal(rhs) {
		t.Errorf("g^a * g^b != g^(a+b)")
	}
}

func TestG1RoundTripBytes(t *testing.T) {
	g := G1Generator().ScalarMul(ScalarFromInt64(7))
	back, err := G1FromBytes(g.Bytes())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !g.Equal(back) {
		t.Errorf("G1 point did not round-trip through Bytes")
	}
}

func TestG2RoundTripBytes(t *testing.T) {
	g := G2Generator().ScalarMul(ScalarFromInt64(11))
	back, err := G2FromBytes(g.Bytes())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !g.Equal(back) {
		t.Errorf("G2 point did not round-trip through Bytes")
	}
}

func TestPairingBilinear(t *testing.T) {
	a := ScalarFromInt64(5)
	b := ScalarFromInt64(7)
	g1 := G1Generator().ScalarMul(a)
	g2 := G2Generator().ScalarMul(b)

	lhs, err := Pair(g1, g2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rhs, err := Pair(G1Generator(), G2Generator().ScalarMul(a.Mul(b)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !lhs.Equal(rhs) {
		t.Errorf("e(g1^a, g2^b) != e(g1, g2^(a*b))")
	}
}
