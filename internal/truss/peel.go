package truss

import (
	"sync"
	"sync/atomic"

	"github.com/junjiewwang/kclique/pkg/collections"
	"github.com/junjiewwang/kclique/pkg/parallel"
)

// bufferSize is the per-worker local staging buffer before a frontier
// flush, sized the way the reference implementation sizes its buffer: a
// cache-line-scale batch rather than one fetch_and_add per edge.
const bufferSize = 512

// Peel runs the bulk-synchronous k-truss peeling protocol described in
// §4.3: for level 0..threshold-1, scan for edges at or below level, then
// repeatedly process the current frontier — intersecting each edge's
// endpoints' adjacency rows to find the triangles it participates in and
// speculatively decrementing the other two edges' support — until the
// frontier empties, before advancing to the next level. supp is mutated
// in place; on return, supp[e] >= threshold for every surviving edge e,
// and < threshold for every edge peeled away.
func Peel(c *CSR, supp []int32, threshold int32, workers int) {
	m := c.M
	if m == 0 || threshold <= 0 {
		return
	}
	if workers < 1 {
		workers = 1
	}

	processed := collections.NewBitset(int(m))
	inCurr := collections.NewBitset(int(m))
	curr := make([]int32, m)
	next := make([]int32, m)

	var currTail, nextTail int32
	var level int32

	barrier := parallel.NewBarrier(workers, nil)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for {
				lvl := atomic.LoadInt32(&level)
				if lvl >= threshold {
					return
				}

				scanLevel(id, workers, m, supp, lvl, processed, curr, &currTail, inCurr)
				barrier.Wait()

				for atomic.LoadInt32(&currTail) > 0 {
					ct := atomic.LoadInt32(&currTail)
					processFrontier(id, workers, c, curr, ct, inCurr, supp, lvl, next, &nextTail, processed)
					barrier.Wait()

					if id == 0 {
						for i := int32(0); i < ct; i++ {
							e := curr[i]
							processed.Set(int(e))
							inCurr.Clear(int(e))
						}
						curr, next = next, curr
						atomic.StoreInt32(&currTail, atomic.LoadInt32(&nextTail))
						atomic.StoreInt32(&nextTail, 0)
					}
					barrier.Wait()
				}

				if id == 0 {
					atomic.AddInt32(&level, 1)
					atomic.StoreInt32(&currTail, 0)
				}
				barrier.Wait()
			}
		}(w)
	}
	wg.Wait()
}

// scanLevel appends every not-yet-processed edge with supp[e] <= level to
// curr, via a per-worker local buffer flushed with a single fetch-and-add
// reservation on currTail — the frontier buffer flush protocol from §5.
// Each worker's edge range is rounded up to a multiple of 64 so the inCurr
// bits it sets live in bitset words no other worker writes.
func scanLevel(id, workers int, m int32, supp []int32, level int32, processed *collections.Bitset, curr []int32, currTail *int32, inCurr *collections.Bitset) {
	chunk := (m + int32(workers) - 1) / int32(workers)
	chunk = (chunk + 63) &^ 63
	start := int32(id) * chunk
	end := start + chunk
	if end > m {
		end = m
	}

	bufp := collections.GetInt32Slice()
	defer collections.PutInt32Slice(bufp)
	buf := (*bufp)[:0]
	flush := func() {
		if len(buf) == 0 {
			return
		}
		base := atomic.AddInt32(currTail, int32(len(buf))) - int32(len(buf))
		copy(curr[base:], buf)
		buf = buf[:0]
	}

	for e := start; e < end; e++ {
		if processed.Test(int(e)) || supp[e] > level {
			continue
		}
		inCurr.Set(int(e))
		buf = append(buf, e)
		if len(buf) == bufferSize {
			flush()
		}
	}
	flush()
	*bufp = buf
}

// processFrontier processes worker id's static, contiguous
// currTail/workers share of the current frontier; edges are not handed
// out dynamically. For each frontier edge (u,v), intersect u's and
// v's adjacency rows via linear two-pointer merge, and for each common
// neighbor w, speculatively decrement support on the triangle's other two
// edges using the tiebreak protocol from §4.3.
func processFrontier(id, workers int, c *CSR, curr []int32, currTail int32, inCurr *collections.Bitset, supp []int32, level int32, next []int32, nextTail *int32, processed *collections.Bitset) {
	chunk := (currTail + int32(workers) - 1) / int32(workers)
	start := int32(id) * chunk
	end := start + chunk
	if end > currTail {
		end = currTail
	}

	bufp := collections.GetInt32Slice()
	defer collections.PutInt32Slice(bufp)
	buf := (*bufp)[:0]
	flush := func() {
		if len(buf) == 0 {
			return
		}
		base := atomic.AddInt32(nextTail, int32(len(buf))) - int32(len(buf))
		copy(next[base:], buf)
		buf = buf[:0]
	}

	for i := start; i < end; i++ {
		e1 := curr[i]
		edge := c.EdgeOf[e1]
		u, v := edge.S, edge.T

		uRow, uEid := c.OutRow(u)
		vRow, vEid := c.OutRow(v)
		ji, ki := 0, 0
		for ji < len(uRow) && ki < len(vRow) {
			switch {
			case uRow[ji] == vRow[ki]:
				e2 := vEid[ki] // edge (v, w)
				e3 := uEid[ji] // edge (u, w)
				tryDecrement(e1, e2, e3, inCurr, processed, supp, level, &buf)
				ji++
				ki++
			case uRow[ji] < vRow[ki]:
				ji++
			default:
				ki++
			}
		}
		if len(buf) >= bufferSize {
			flush()
		}
	}
	flush()
	*bufp = buf
}

// tryDecrement applies the tiebreak protocol for a single discovered
// triangle {e1, e2, e3}: if both companions are still above level and
// unprocessed, decrement both; if only one is, decrement it only if e1
// precedes the processed sibling in edge-id order or the sibling is not
// currently in the frontier.
func tryDecrement(e1, e2, e3 int32, inCurr *collections.Bitset, processed *collections.Bitset, supp []int32, level int32, buf *[]int32) {
	if processed.Test(int(e2)) || processed.Test(int(e3)) {
		return
	}

	above2 := supp[e2] > level
	above3 := supp[e3] > level

	switch {
	case above2 && above3:
		decrementOne(e2, supp, level, buf)
		decrementOne(e3, supp, level, buf)
	case above2:
		if e1 < e3 || !inCurr.Test(int(e3)) {
			decrementOne(e2, supp, level, buf)
		}
	case above3:
		if e1 < e2 || !inCurr.Test(int(e2)) {
			decrementOne(e3, supp, level, buf)
		}
	}
}

// decrementOne speculatively decrements supp[e]. If the pre-decrement
// value was exactly level+1, e has just reached the removal threshold and
// is appended to the next frontier. If the pre-decrement value was
// already <= level, the decrement was a double-count against a concurrent
// observer; it is rolled back with a compensating increment.
func decrementOne(e int32, supp []int32, level int32, buf *[]int32) {
	pre := atomic.AddInt32(&supp[e], -1) + 1
	if pre == level+1 {
		*buf = append(*buf, e)
	}
	if pre <= level {
		atomic.AddInt32(&supp[e], 1)
	}
}
