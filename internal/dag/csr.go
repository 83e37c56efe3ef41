// Package dag implements S3: relabeling the edge list by degeneracy rank
// and building the forward-only CSR adjacency each later stage walks.
package dag

import "github.com/junjiewwang/kclique/internal/ingest"

// DAG is a forward-only CSR: vertex v's out-neighbors (all of lower rank,
// once el has been relabeled and oriented) occupy Adj[CD[v]:CD[v+1]].
type DAG struct {
	N   int32
	CD  []int32
	Adj []int32

	// D is the maximum out-degree, i.e. the degeneracy, used to size
	// every per-worker scratch structure in S4 and S5.
	D int32
}

// Build constructs the CSR from el, which must already be relabeled and
// oriented (every edge has S at higher rank than T — see Relabel). Degree
// counting and the scatter pass are serial; the cumulative-offset pass
// uses ParallelPrefixSum so the construction cost is dominated by the two
// genuinely serial linear scans rather than a hidden third one.
func Build(el *ingest.EdgeList, workers int) *DAG {
	n := int(el.N)
	outDeg := make([]int32, n)
	for _, e := range el.Edges {
		outDeg[e.S]++
	}

	cd := ParallelPrefixSum(outDeg, workers)

	var maxDeg int32
	for _, d := range outDeg {
		if d > maxDeg {
			maxDeg = d
		}
	}

	adj := make([]int32, cd[n])
	cursor := make([]int32, n)
	for _, e := range el.Edges {
		slot := cd[e.S] + cursor[e.S]
		adj[slot] = e.T
		cursor[e.S]++
	}

	return &DAG{N: el.N, CD: cd, Adj: adj, D: maxDeg}
}

// OutNeighbors returns v's out-neighbor slice.
func (g *DAG) OutNeighbors(v int32) []int32 {
	return g.Adj[g.CD[v]:g.CD[v+1]]
}

// OutDegree returns v's out-degree.
func (g *DAG) OutDegree(v int32) int32 {
	return g.CD[v+1] - g.CD[v]
}
