package clique

import "github.com/junjiewwang/kclique/internal/dag"

// buildSubgraph builds pivot u's color-ordered neighborhood subgraph into
// sg, reusing sg's backing arrays across pivots. g must be forward-only
// (every edge oriented from higher to lower degeneracy rank); u's
// out-neighbors become the level-(k-1) vertex set.
//
// It makes two passes over g's forward adjacency of each neighbor: the
// first builds the symmetric induced-neighborhood adjacency used only to
// compute a greedy coloring, the second rebuilds the same adjacency
// reoriented so each edge points from its higher-colored endpoint to its
// lower-colored one — the directional re-filter that lets kclique recurse
// without ever re-examining an edge from both ends.
func buildSubgraph(g *dag.DAG, u int32, sg *arena) {
	k := sg.k
	top := k - 1

	prevM := sg.n[top]
	for i := int32(0); i < prevM; i++ {
		sg.lab[i] = 0
	}

	neighbors := g.OutNeighbors(u)
	m := int32(len(neighbors))
	for j, v := range neighbors {
		jj := int32(j)
		sg.newID[v] = jj
		sg.oldID[jj] = v
		sg.lab[jj] = int32(top)
		sg.nodes[top][jj] = jj
		sg.d[top][jj] = 0
		sg.degree0[jj] = 0
	}
	sg.n[top] = m

	for i := int32(0); i < m; i++ {
		v := sg.oldID[i]
		for _, w := range g.OutNeighbors(v) {
			j := sg.newID[w]
			if j == -1 {
				continue
			}
			sg.adj[sg.core*i+sg.d[top][i]] = j
			sg.d[top][i]++
			sg.adj[sg.core*j+sg.d[top][j]] = i
			sg.d[top][j]++
			sg.degree0[i]++
			sg.degree0[j]++
		}
	}

	assignColors(sg, m)

	for i := int32(0); i < m; i++ {
		sg.d[top][i] = 0
	}
	for i := int32(0); i < m; i++ {
		v := sg.oldID[i]
		for _, w := range g.OutNeighbors(v) {
			j := sg.newID[w]
			if j == -1 {
				continue
			}
			if sg.color[i] > sg.color[j] {
				sg.adj[sg.core*i+sg.d[top][i]] = j
				sg.d[top][i]++
			} else {
				sg.adj[sg.core*j+sg.d[top][j]] = i
				sg.d[top][j]++
			}
		}
	}

	for _, v := range neighbors {
		sg.newID[v] = -1
	}
}
