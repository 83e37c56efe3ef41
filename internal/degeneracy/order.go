package degeneracy

import (
	"github.com/junjiewwang/kclique/internal/ingest"
)

// Result holds the degeneracy ordering and the graph's degeneracy.
type Result struct {
	// Rank[v] is v's position in the degeneracy ordering; Rank[v] == n-1
	// for the vertex popped first (lowest residual degree).
	Rank []int32

	// D is the degeneracy: the maximum residual degree observed at the
	// moment its vertex was popped.
	D int32
}

// CoreOrder computes the degeneracy ordering of el by repeatedly removing
// the minimum-residual-degree vertex from a temporary undirected adjacency
// built from el.Edges. It also writes the resulting Rank into el.Rank, per
// the core API (coreOrder(EdgeList) → Rank[], also writes rank into
// EdgeList).
func CoreOrder(el *ingest.EdgeList) *Result {
	n := int(el.N)
	adj, degree := buildUndirectedAdjacency(el)

	h := newHeap(n)
	for v := 0; v < n; v++ {
		h.insert(int32(v), degree[v])
	}

	rank := make([]int32, n)
	var maxVal int32

	for i := 0; i < n; i++ {
		popped := h.popMin()
		if popped.val > maxVal {
			maxVal = popped.val
		}
		rank[popped.key] = int32(n - 1 - i)
		for _, w := range adj[popped.key] {
			h.decrement(w)
		}
	}

	el.Rank = rank
	return &Result{Rank: rank, D: maxVal}
}

// buildUndirectedAdjacency returns, for each vertex, the list of its
// undirected neighbors, plus the parallel degree slice used to seed the
// heap. This is a plain adjacency list, not a CSR: CoreOrder runs once,
// serially, before any stage that needs the denser representation.
func buildUndirectedAdjacency(el *ingest.EdgeList) ([][]int32, []int32) {
	n := int(el.N)
	degree := make([]int32, n)
	for _, e := range el.Edges {
		degree[e.S]++
		degree[e.T]++
	}

	adj := make([][]int32, n)
	for v := 0; v < n; v++ {
		adj[v] = make([]int32, 0, degree[v])
	}
	for _, e := range el.Edges {
		adj[e.S] = append(adj[e.S], e.T)
		adj[e.T] = append(adj[e.T], e.S)
	}
	return adj, degree
}
