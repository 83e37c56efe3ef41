package degeneracy

import "testing"

func TestHeapPopMinOrder(t *testing.T) {
	h := newHeap(5)
	h.insert(0, 3)
	h.insert(1, 1)
	h.insert(2, 4)
	h.insert(3, 1)
	h.insert(4, 2)

	var order []int32
	for h.len() > 0 {
		order = append(order, h.popMin().key)
	}

	if len(order) != 5 {
		t.Fatalf("expected 5 pops, got %d", len(order))
	}
	// values popped must be non-decreasing
	vals := map[int32]int32{0: 3, 1: 1, 2: 4, 3: 1, 4: 2}
	var lastVal int32 = -1
	for _, k := range order {
		if vals[k] < lastVal {
			t.Fatalf("popMin returned out-of-order value for key %d", k)
		}
		lastVal = vals[k]
	}
}

func TestHeapDecrementReordersMin(t *testing.T) {
	h := newHeap(3)
	h.insert(0, 5)
	h.insert(1, 5)
	h.insert(2, 5)

	h.decrement(2)
	h.decrement(2)

	min := h.popMin()
	if min.key != 2 {
		t.Fatalf("expected key 2 to be minimum after decrements, got %d", min.key)
	}
	if min.val != 3 {
		t.Fatalf("expected value 3, got %d", min.val)
	}
}

func TestHeapDecrementAfterPopIsNoop(t *testing.T) {
	h := newHeap(2)
	h.insert(0, 1)
	h.insert(1, 1)
	h.popMin()
	h.decrement(0) // already popped, must not panic or corrupt state
	min := h.popMin()
	if min.key != 1 {
		t.Fatalf("expected remaining key 1, got %d", min.key)
	}
}

func TestHeapSingleElement(t *testing.T) {
	h := newHeap(1)
	h.insert(0, 7)
	min := h.popMin()
	if min.key != 0 || min.val != 7 {
		t.Fatalf("unexpected result: %+v", min)
	}
	if h.len() != 0 {
		t.Fatalf("expected empty heap, got len %d", h.len())
	}
}
