package dag

import "github.com/junjiewwang/kclique/internal/ingest"

// Relabel renames every vertex to its degeneracy rank and orients each
// edge so S carries the higher rank, in place. After Relabel, vertex ids
// throughout el are rank values: the vertex formerly known as v is now
// addressed as rank[v]. This matches the reference implementation, which
// folds relabeling and orientation into a single pass rather than keeping
// the rank mapping as a separate indirection through later stages.
func Relabel(el *ingest.EdgeList, rank []int32) {
	for i, e := range el.Edges {
		s, t := rank[e.S], rank[e.T]
		if s < t {
			s, t = t, s
		}
		el.Edges[i] = ingest.Edge{S: s, T: t}
	}
}
