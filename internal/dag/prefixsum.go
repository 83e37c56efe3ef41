package dag

import "sync"

// ParallelPrefixSum computes the exclusive prefix sum of counts — the
// classic two-phase scan used to turn per-vertex degree counts into CSR
// cumulative offsets without a single serial pass over the whole array.
// offsets has length len(counts)+1, offsets[0] == 0, and
// offsets[i+1] == offsets[i] + counts[i].
//
// Phase 1 splits counts into workers contiguous blocks and computes each
// block's local prefix sum in parallel (each block's running sum starts
// from zero). Phase 2 serially accumulates the per-block totals into
// carries. Phase 3 adds each block's carry to every offset in that block,
// again in parallel. This mirrors a block-based CSR construction: each
// block settles its own local offsets before a single serial pass over the
// (far smaller) per-block carry array removes the need for a single
// thread to scan the whole array.
func ParallelPrefixSum(counts []int32, workers int) []int32 {
	n := len(counts)
	offsets := make([]int32, n+1)
	if n == 0 {
		return offsets
	}
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}

	blockSize := (n + workers - 1) / workers
	numBlocks := (n + blockSize - 1) / blockSize
	blockTotals := make([]int32, numBlocks)

	var wg sync.WaitGroup
	for b := 0; b < numBlocks; b++ {
		start := b * blockSize
		end := start + blockSize
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(b, start, end int) {
			defer wg.Done()
			// write block-relative offsets directly into the shared
			// array; the carry pass below turns them global.
			var running int32
			for i := start; i < end; i++ {
				running += counts[i]
				offsets[i+1] = running
			}
			blockTotals[b] = running
		}(b, start, end)
	}
	wg.Wait()

	var carry int32
	blockCarry := make([]int32, numBlocks)
	for b := 0; b < numBlocks; b++ {
		blockCarry[b] = carry
		carry += blockTotals[b]
	}

	wg = sync.WaitGroup{}
	for b := 0; b < numBlocks; b++ {
		start := b * blockSize
		end := start + blockSize
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(b, start, end int) {
			defer wg.Done()
			c := blockCarry[b]
			for i := start; i < end; i++ {
				offsets[i+1] += c
			}
		}(b, start, end)
	}
	wg.Wait()

	return offsets
}
