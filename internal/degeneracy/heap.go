// Package degeneracy implements S2, the serial core-decomposition that
// produces the degeneracy ordering driving every later stage's bounds.
package degeneracy

// absent marks a key that has already been popped out of the heap.
const absent = -1

// keyValue pairs a vertex id with its current residual degree.
type keyValue struct {
	key int32
	val int32
}

// heap is an array-backed binary min-heap keyed by residual degree, with a
// parallel key-to-position index (pt) giving O(1) lookups for decrement. It
// is not safe for concurrent use: core decomposition is a serial stage.
type heap struct {
	items []keyValue
	pt    []int32 // pt[key] = index into items, or absent
}

func newHeap(n int) *heap {
	pt := make([]int32, n)
	for i := range pt {
		pt[i] = absent
	}
	return &heap{items: make([]keyValue, 0, n), pt: pt}
}

func (h *heap) len() int { return len(h.items) }

func (h *heap) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.pt[h.items[i].key] = int32(i)
	h.pt[h.items[j].key] = int32(j)
}

func (h *heap) bubbleUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.items[parent].val <= h.items[i].val {
			break
		}
		h.swap(parent, i)
		i = parent
	}
}

func (h *heap) bubbleDown(i int) {
	n := len(h.items)
	for {
		left, right := 2*i+1, 2*i+2
		smallest := i
		if left < n && h.items[left].val < h.items[smallest].val {
			smallest = left
		}
		if right < n && h.items[right].val < h.items[smallest].val {
			smallest = right
		}
		if smallest == i {
			return
		}
		h.swap(i, smallest)
		i = smallest
	}
}

// insert adds key with initial value val. key must not already be present.
func (h *heap) insert(key, val int32) {
	h.items = append(h.items, keyValue{key: key, val: val})
	idx := len(h.items) - 1
	h.pt[key] = int32(idx)
	h.bubbleUp(idx)
}

// decrement reduces key's value by one and restores heap order. It is a
// no-op if key is no longer in the heap (already popped).
func (h *heap) decrement(key int32) {
	idx := h.pt[key]
	if idx == absent {
		return
	}
	h.items[idx].val--
	h.bubbleUp(int(idx))
}

// popMin removes and returns the minimum keyValue. The caller must ensure
// the heap is non-empty.
func (h *heap) popMin() keyValue {
	min := h.items[0]
	last := len(h.items) - 1
	h.items[0] = h.items[last]
	h.pt[h.items[0].key] = 0
	h.items = h.items[:last]
	h.pt[min.key] = absent
	if len(h.items) > 0 {
		h.bubbleDown(0)
	}
	return min
}
