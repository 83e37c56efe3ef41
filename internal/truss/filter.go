package truss

import "github.com/junjiewwang/kclique/internal/dag"

// Filter runs the full k-truss pipeline against g: build the undirected
// edge-id CSR, count initial triangle support, peel away every edge whose
// support never reaches k-2, and rebuild a forward-only DAG from what
// survives. Every k-clique lives entirely inside the (k-2)-truss, so this
// never discards an edge any k-clique could use.
//
// g must already be relabeled and oriented (see dag.Relabel). startV and
// stride select the induced vertex subset CSR construction scans from —
// the pipeline driver always passes (0, 1).
func Filter(g *dag.DAG, k int, startV, stride int32, workers int) *dag.DAG {
	threshold := int32(k - 2)
	c := BuildCSR(g, startV, stride, workers)
	supp := CountTriangles(c, workers)
	Peel(c, supp, threshold, workers)
	return ExtractFiltered(c, supp, threshold, workers)
}
