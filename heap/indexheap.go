// Package heap implements IndexHeap (spec.md §4.1): a max-heap whose nodes
// are indices into an external scalar array, keyed by the magnitude of the
// scalar each index points to. It exists solely to drive the greedy
// reduction in package multiscalar and makes no assumption about what the
// scalars are used for.
package heap

import "math/big"

// IndexHeap is a max-heap over position indices pos[0..L) into an external,
// caller-owned scalar slice s. key(i) = s[pos[i]]. The heap never grows or
// shrinks: callers reduce scalars to zero in place rather than removing
// them from the heap.
type IndexHeap struct {
	pos []int
	s   []*big.Int
}

// New builds an IndexHeap over s (not yet heapified — call Init). The
// caller is responsible for passing a slice of odd length so that every
// internal node has two children (spec.md §4.1); multiscalar does this via
// the `(ctr-1)|1` odd-ification.
func New(s []*big.Int) *IndexHeap {
	pos := make([]int, len(s))
	for i := range pos {
		pos[i] = i
	}
	return &IndexHeap{pos: pos, s: s}
}

func (h *IndexHeap) key(i int) *big.Int { return h.s[h.pos[i]] }

// Init builds the max-heap property by repeated sift-down from the last
// internal node to the root.
func (h *IndexHeap) Init() {
	for i := len(h.pos)/2 - 1; i >= 0; i-- {
		h.siftDown(i)
	}
}

// GetTopTwo returns the external indices of the root and of the larger of
// its two children, without mutating the heap. Ties prefer the left child.
func (h *IndexHeap) GetTopTwo() (max1, max2 int) {
	max1 = h.pos[0]
	L := len(h.pos)
	left, right := 1, 2
	if right < L && h.key(right).Cmp(h.key(left)) > 0 {
		max2 = h.pos[right]
	} else {
		max2 = h.pos[left]
	}
	return max1, max2
}

// RootReplaced sifts the root down after the caller has externally mutated
// the scalar at the root's external index (pos[0]); the heap property must
// be restored with respect to the new value of s[pos[0]].
func (h *IndexHeap) RootReplaced() {
	h.siftDown(0)
}

func (h *IndexHeap) siftDown(i int) {
	L := len(h.pos)
	for {
		left, right := 2*i+1, 2*i+2
		largest := i
		if left < L && h.key(left).Cmp(h.key(largest)) > 0 {
			largest = left
		}
		if right < L && h.key(right).Cmp(h.key(largest)) > 0 {
			largest = right
		}
		if largest == i {
			return
		}
		h.pos[i], h.pos[largest] = h.pos[largest], h.pos[i]
		i = largest
	}
}

// CheckHeapProperty reports whether, for every internal node i,
// key(i) >= key(left(i)) and key(i) >= key(right(i)). It exists for tests
// that assert spec.md §8's heap-property invariant.
func (h *IndexHeap) CheckHeapProperty() bool {
	L := len(h.pos)
	for i := 0; i < L; i++ {
		left, right := 2*i+1, 2*i+2
		if left < L && h.key(i).Cmp(h.key(left)) < 0 {
			return false
		}
		if right < L && h.key(i).Cmp(h.key(right)) < 0 {
			return false
		}
	}
	return true
}
