package truss

import "github.com/junjiewwang/kclique/internal/dag"

// ExtractFiltered rebuilds a forward-only DAG containing only the edges
// whose final support is at or above threshold, preserving each
// surviving edge's (s,t) orientation from c.EdgeOf. The offset pass reuses
// dag.ParallelPrefixSum; the scatter pass is a single serial scan, the
// same tradeoff dag.Build makes for its own scatter pass.
func ExtractFiltered(c *CSR, supp []int32, threshold int32, workers int) *dag.DAG {
	n := c.N
	outDeg := make([]int32, n)
	for e := int32(0); e < c.M; e++ {
		if supp[e] >= threshold {
			outDeg[c.EdgeOf[e].S]++
		}
	}

	cd := dag.ParallelPrefixSum(outDeg, workers)

	var maxDeg int32
	for _, d := range outDeg {
		if d > maxDeg {
			maxDeg = d
		}
	}

	adj := make([]int32, cd[n])
	cursor := make([]int32, n)
	for e := int32(0); e < c.M; e++ {
		if supp[e] < threshold {
			continue
		}
		edge := c.EdgeOf[e]
		adj[cd[edge.S]+cursor[edge.S]] = edge.T
		cursor[edge.S]++
	}

	return &dag.DAG{N: n, CD: cd, Adj: adj, D: maxDeg}
}

// EdgeCount reports how many of c's edges survive at the given threshold.
func EdgeCount(supp []int32, threshold int32) int {
	var n int
	for _, s := range supp {
		if s >= threshold {
			n++
		}
	}
	return n
}
