package truss

import (
	"context"
	"sync/atomic"

	"github.com/junjiewwang/kclique/pkg/collections"
	"github.com/junjiewwang/kclique/pkg/parallel"
)

// CountTriangles computes each edge's initial triangle support: for every
// vertex i, hash i's forward (within-CSR-row) neighbors by vertex id→edge
// id, then probe each neighbor j's row against that hash set. A hit at
// neighbor-of-neighbor w identifies triangle {i,j,w}; all three of its
// edges get an atomic +1. Each triangle is discovered exactly once because
// only the forward half of each row (the edges assigned to i by BuildCSR)
// is scanned as the outer edge.
//
// The per-vertex range is handed to a parallel.ChunkProcessor so each
// worker keeps its own ScratchSet/neighEdge map across its whole chunk
// instead of reallocating them per vertex; the reducer is a no-op since
// every write lands in supp via atomic.AddInt32.
func CountTriangles(c *CSR, workers int) []int32 {
	supp := make([]int32, c.M)
	if workers < 1 {
		workers = 1
	}

	vertices := make([]int32, c.N)
	for i := range vertices {
		vertices[i] = int32(i)
	}

	cfg := parallel.DefaultPoolConfig().WithWorkers(workers)
	cp := parallel.NewChunkProcessor[int32, struct{}](cfg)
	cp.ProcessChunks(context.Background(), vertices,
		func(ctx context.Context, chunk []int32, workerID int) struct{} {
			neigh := collections.NewScratchSet(int(c.N))
			neighEdge := make(map[int32]int32, 64)

			for _, i := range chunk {
				fwd := c.fwdCount[i]
				row, rowEid := c.OutRow(i)
				for j := int32(0); j < fwd; j++ {
					neigh.Add(row[j])
					neighEdge[row[j]] = rowEid[j]
				}

				for j := int32(0); j < fwd; j++ {
					nv := row[j]
					e1 := rowEid[j]
					nvFwd := c.fwdCount[nv]
					nvRow, nvEid := c.OutRow(nv)
					for k := int32(0); k < nvFwd; k++ {
						non := nvRow[k]
						if !neigh.Has(non) {
							continue
						}
						e2 := nvEid[k]
						e3 := neighEdge[non]
						atomic.AddInt32(&supp[e1], 1)
						atomic.AddInt32(&supp[e2], 1)
						atomic.AddInt32(&supp[e3], 1)
					}
				}

				for j := int32(0); j < fwd; j++ {
					delete(neighEdge, row[j])
				}
				neigh.Reset()
			}
			return struct{}{}
		},
		func(results []struct{}) struct{} { return struct{}{} },
	)

	return supp
}
