package clique

// countAtLevel is the color-pruned recursive clique enumeration core.
// Level 2 is the base case: every remaining edge closes exactly one
// clique with the ancestors fixed so far, so the count is just the sum of
// remaining degrees, no recursion needed. At every other level, a node
// whose color can't possibly extend the current (l-1)-deep chain into a
// clique (color[u] < l-1) is skipped outright — the color-pruning
// invariant. Surviving nodes filter their out-neighborhood down to the
// "still active" set in place (swap-to-back compaction, which must leave
// every displaced element somewhere in the row rather than discard it,
// because a later sibling at the same level re-filters the very same row
// from its original length), recurse one level down, then restore labels
// for the next sibling at this level.
func countAtLevel(l int, sg *arena, count *uint64) {
	if l == 2 {
		for i := int32(0); i < sg.n[2]; i++ {
			u := sg.nodes[2][i]
			*count += uint64(sg.d[2][u])
		}
		return
	}
	if int32(l) > sg.n[l] {
		return
	}

	for i := int32(0); i < sg.n[l]; i++ {
		u := sg.nodes[l][i]
		if sg.color[u] < int32(l-1) {
			continue
		}

		sg.n[l-1] = 0
		row := sg.adj[sg.core*u : sg.core*u+sg.d[l][u]]
		for _, v := range row {
			if sg.lab[v] == int32(l) {
				sg.lab[v] = int32(l - 1)
				sg.nodes[l-1][sg.n[l-1]] = v
				sg.n[l-1]++
				sg.d[l-1][v] = 0
			}
		}

		for j := int32(0); j < sg.n[l-1]; j++ {
			v := sg.nodes[l-1][j]
			base := sg.core * v
			end := sg.d[l][v]
			idx := int32(0)
			for idx < end {
				w := sg.adj[base+idx]
				if sg.lab[w] == int32(l-1) {
					sg.d[l-1][v]++
					idx++
				} else {
					end--
					sg.adj[base+idx] = sg.adj[base+end]
					sg.adj[base+end] = w
				}
			}
		}

		countAtLevel(l-1, sg, count)

		for j := int32(0); j < sg.n[l-1]; j++ {
			v := sg.nodes[l-1][j]
			sg.lab[v] = int32(l)
		}
	}
}
