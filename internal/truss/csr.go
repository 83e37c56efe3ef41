// Package truss implements S4, the parallel k-truss edge filter: triangle
// counting followed by bulk-synchronous support-based peeling.
package truss

import (
	"sort"
	"sync"
	"sync/atomic"

	"github.com/junjiewwang/kclique/internal/dag"
	"github.com/junjiewwang/kclique/internal/ingest"
)

// CSR is the undirected adjacency with edge ids described in the data
// model: CD/Adj give both forward and backward entries for every edge, EID
// maps each adjacency slot to a unique edge id, and EdgeOf maps an edge id
// back to the oriented pair (s,t) with rank(s) > rank(t).
type CSR struct {
	N      int32
	M      int32
	CD     []int32
	Adj    []int32
	EID    []int32
	EdgeOf []ingest.Edge

	// fwdCount[v] is the number of v's forward (DAG) out-neighbors, i.e.
	// the split point within CD[v]:CD[v+1] between v's own assigned edges
	// and the backward entries contributed by higher-rank neighbors.
	fwdCount []int32
}

// BuildCSR constructs the undirected, edge-id-tagged CSR from g, inducing
// on the vertex set touched starting at startV and stepping by stride —
// the sharding hook the reference implementation exposes but never uses
// with anything but (0, 1). The pipeline driver always calls this with
// (0, 1); other values are honored but unexercised by default.
func BuildCSR(g *dag.DAG, startV, stride int32, workers int) *CSR {
	n := g.N
	vExist := markInducedVertices(g, startV, stride)

	fwdCount := make([]int32, n)
	totalDeg := make([]int32, n)
	var maxFwd int32

	for v := int32(0); v < n; v++ {
		if !vExist[v] {
			continue
		}
		for _, w := range g.OutNeighbors(v) {
			if !vExist[w] {
				continue
			}
			fwdCount[v]++
			totalDeg[w]++
		}
		totalDeg[v] += fwdCount[v]
		if fwdCount[v] > maxFwd {
			maxFwd = fwdCount[v]
		}
	}

	cd := dag.ParallelPrefixSum(totalDeg, workers)
	uniqE := dag.ParallelPrefixSum(fwdCount, workers)
	m := uniqE[n]

	adj := make([]int32, cd[n])
	eid := make([]int32, cd[n])
	edgeOf := make([]ingest.Edge, m)
	backCursor := make([]int32, n)

	for v := int32(0); v < n; v++ {
		if !vExist[v] {
			continue
		}
		var deg int32
		for _, w := range g.OutNeighbors(v) {
			if !vExist[w] {
				continue
			}
			e := uniqE[v] + deg
			edgeOf[e] = ingest.Edge{S: v, T: w}

			adj[cd[v]+deg] = w
			eid[cd[v]+deg] = e
			deg++

			prev := atomic.AddInt32(&backCursor[w], 1) - 1
			adj[cd[w]+fwdCount[w]+prev] = v
			eid[cd[w]+fwdCount[w]+prev] = e
		}
	}

	sortRows(cd, adj, eid, n, vExist)

	return &CSR{
		N: n, M: m,
		CD: cd, Adj: adj, EID: eid, EdgeOf: edgeOf,
		fwdCount: fwdCount,
	}
}

func markInducedVertices(g *dag.DAG, startV, stride int32) []bool {
	n := g.N
	vExist := make([]bool, n)
	if stride <= 0 {
		stride = 1
	}
	for i := startV; i < n; i += stride {
		vExist[i] = true
		for _, w := range g.OutNeighbors(i) {
			vExist[w] = true
		}
	}
	return vExist
}

// sortRows sorts each vertex's adjacency row (and the parallel edge-id
// row) by neighbor id, in parallel across vertices. The peeling protocol's
// two-pointer intersection requires sorted rows; unlike the reference,
// which only sorted the backward half and relied on the forward half's
// construction order already being sorted, this sorts every row outright
// to not depend on scheduling-order coincidences.
func sortRows(cd, adj, eid []int32, n int32, vExist []bool) {
	var wg sync.WaitGroup
	workers := 8
	chunk := (int(n) + workers - 1) / workers
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if end > int(n) {
			end = int(n)
		}
		if start >= end {
			continue
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for v := start; v < end; v++ {
				if !vExist[v] {
					continue
				}
				lo, hi := cd[v], cd[v+1]
				if hi-lo < 2 {
					continue
				}
				row := adj[lo:hi]
				rowEid := eid[lo:hi]
				idx := make([]int, len(row))
				for i := range idx {
					idx[i] = i
				}
				sort.Slice(idx, func(a, b int) bool { return row[idx[a]] < row[idx[b]] })
				sortedAdj := make([]int32, len(row))
				sortedEid := make([]int32, len(row))
				for i, j := range idx {
					sortedAdj[i] = row[j]
					sortedEid[i] = rowEid[j]
				}
				copy(row, sortedAdj)
				copy(rowEid, sortedEid)
			}
		}(start, end)
	}
	wg.Wait()
}

// OutRow returns the full adjacency/edge-id row for vertex v.
func (c *CSR) OutRow(v int32) ([]int32, []int32) {
	return c.Adj[c.CD[v]:c.CD[v+1]], c.EID[c.CD[v]:c.CD[v+1]]
}
