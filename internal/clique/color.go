package clique

import "sort"

// assignColors greedily colors the m local vertices described by
// sg.degree0 and sg.adj (each vertex i's full symmetric neighbor list
// occupies sg.adj[core*i : core*i+degree0[i]]), writing the result into
// sg.color[0:m]. Vertices are colored in degree-descending order — the
// largest-degree-first heuristic — and each gets the smallest color not
// already used by a higher-priority neighbor, bounding the color count by
// the maximum degree plus one.
func assignColors(sg *arena, m int32) {
	if m == 0 {
		return
	}

	order := sg.order[:m]
	pos := sg.pos[:m]
	for i := int32(0); i < m; i++ {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return sg.degree0[order[a]] > sg.degree0[order[b]] })
	for i, id := range order {
		pos[id] = int32(i)
	}

	colorOf := make([]int32, m)
	for i := range colorOf {
		colorOf[i] = -1
	}
	colorOf[0] = 0

	conflict := sg.conflict
	maxDegree := sg.degree0[order[0]]

	for i := int32(1); i < m; i++ {
		id := order[i]
		row := sg.adj[sg.core*id : sg.core*id+sg.degree0[id]]

		for _, w := range row {
			if p := pos[w]; colorOf[p] != -1 {
				conflict[colorOf[p]] = true
			}
		}

		for c := int32(0); c <= maxDegree; c++ {
			if !conflict[c] {
				colorOf[i] = c
				break
			}
		}

		for _, w := range row {
			if p := pos[w]; colorOf[p] != -1 {
				conflict[colorOf[p]] = false
			}
		}
	}

	for id := int32(0); id < m; id++ {
		sg.color[id] = colorOf[pos[id]]
	}
}
