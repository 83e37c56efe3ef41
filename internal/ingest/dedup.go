package ingest

// Deduplicate removes repeated unordered pairs from el.Edges in place,
// keeping the first occurrence. It answers Open Question 3: the reference
// loader never deduplicates, so this pass is opt-in (LoadOptions.Dedup)
// rather than applied unconditionally.
func Deduplicate(el *EdgeList) {
	seen := make(map[uint64]struct{}, len(el.Edges))
	out := el.Edges[:0]
	for _, e := range el.Edges {
		key := pairKey(e.S, e.T)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, e)
	}
	el.Edges = out
}

func pairKey(a, b int32) uint64 {
	if a > b {
		a, b = b, a
	}
	return uint64(uint32(a))<<32 | uint64(uint32(b))
}
