package heap

import (
	"math/big"
	"math/rand"
	"testing"
)

func bigs(vs ...int64) []*big.Int {
	out := make([]*big.Int, len(vs))
	for i, v := range vs {
		out[i] = big.NewInt(v)
	}
	return out
}

func TestInitSatisfiesHeapProperty(t *testing.T) {
	s := bigs(3, 1, 9, 4, 7, 2, 5)
	h := New(s)
	h.Init()
	if !h.CheckHeapProperty() {
		t.Fatalf("heap property violated after Init")
	}
	max1, _ := h.GetTopTwo()
	if s[max1].Cmp(big.NewInt(9)) != 0 {
		t.Errorf("root = %s, want 9", s[max1])
	}
}

func TestGetTopTwoPrefersLeftOnTie(t *testing.T) {
	s := bigs(10, 5, 5)
	h := New(s)
	h.Init()
	_, max2 := h.GetTopTwo()
	if max2 != 1 {
		t.Errorf("tie-break picked index %d, want left child (1)", max2)
	}
}

func TestRootReplacedRestoresHeapProperty(t *testing.T) {
	s := bigs(9, 4, 7, 2, 1, 6, 3)
	h := New(s)
	h.Init()
	max1, _ := h.GetTopTwo()
	s[max1].SetInt64(0)
	h.RootReplaced()
	if !h.CheckHeapProperty() {
		t.Fatalf("heap property violated after RootReplaced")
	}
}

func TestRandomHeapAlwaysSatisfiesProperty(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for trial := 0; trial < 50; trial++ {
		n := 5 + 2*r.Intn(40)
		if n%2 == 0 {
			n++
		}
		vals := make([]int64, n)
		for i := range vals {
			vals[i] = int64(r.Intn(1000))
		}
		s := bigs(vals...)
		h := New(s)
		h.Init()
		for i := 0; i < n/2; i++ {
			if !h.CheckHeapProperty() {
				t.Fatalf("trial %d: heap property violated", trial)
			}
			max1, _ := h.GetTopTwo()
			s[max1].SetInt64(0)
			h.RootReplaced()
		}
	}
}
