package taskpool

import (
	"fmt"
	"testing"
)

func TestSubmitRunsAndReturnsResult(t *testing.T) {
	p := New(4)
	defer p.Close()

	fut := Submit(p, func() (int, error) { return 21 * 2, nil })
	v, err := fut.Get()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 42 {
		t.Errorf("got %d, want 42", v)
	}
}

func TestSubmitPropagatesError(t *testing.T) {
	p := New(2)
	defer p.Close()

	fut := Submit(p, func() (int, error) { return 0, fmt.Errorf("boom") })
	_, err := fut.Get()
	if err == nil {
		t.Fatalf("expected error")
	}
}

func TestSubmitManyTasksAllComplete(t *testing.T) {
	p := New(8)
	defer p.Close()

	const n = 500
	futs := make([]*Future[int], n)
	for i := 0; i < n; i++ {
		i := i
		futs[i] = Submit(p, func() (int, error) { return i * i, nil })
	}
	for i, fut := range futs {
		v, err := fut.Get()
		if err != nil {
			t.Fatalf("task %d: unexpected error: %v", i, err)
		}
		if v != i*i {
			t.Errorf("task %d = %d, want %d", i, v, i*i)
		}
	}
}

func TestSubmitAfterCloseFails(t *testing.T) {
	p := New(2)
	p.Close()

	fut := Submit(p, func() (int, error) { return 1, nil })
	_, err := fut.Get()
	if err == nil {
		t.Errorf("expected submit-after-close to fail")
	}
}

func TestSecondaryPoolAvoidsDeadlock(t *testing.T) {
	outer := New(1)
	defer outer.Close()
	inner := New(1)
	defer inner.Close()

	fut := Submit(outer, func() (int, error) {
		innerFut := Submit(inner, func() (int, error) { return 7, nil })
		return innerFut.Get()
	})
	v, err := fut.Get()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 7 {
		t.Errorf("got %d, want 7", v)
	}
}
