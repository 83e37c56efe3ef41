package clique

import (
	"context"
	"sync"
	"sync/atomic"

	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"github.com/junjiewwang/kclique/internal/dag"
	kcerrors "github.com/junjiewwang/kclique/pkg/errors"
)

// CountCliques counts k-cliques in g, a degeneracy-oriented forward-only
// DAG (optionally already truss-filtered). Work is node-parallel: every
// vertex u is an independent pivot whose neighborhood subgraph is built
// and recursed into on its own, so workers pull pivots off a shared
// dynamic-chunk-of-one counter rather than a static split, the same
// load-balancing the reference gives each OpenMP thread via
// schedule(dynamic, 1) — pivot subtree sizes vary enormously and a static
// split starves idle workers behind one slow pivot.
func CountCliques(ctx context.Context, g *dag.DAG, k int, workers int) (uint64, error) {
	if k < 1 {
		return 0, kcerrors.Wrap(kcerrors.CodeInvalidInput, "k must be >= 1", nil)
	}
	if k == 1 {
		return uint64(g.N), nil
	}
	if k == 2 {
		var edges uint64
		for v := int32(0); v < g.N; v++ {
			edges += uint64(g.OutDegree(v))
		}
		return edges, nil
	}
	if workers < 1 {
		workers = 1
	}

	var total uint64
	var nextU int32
	var workerErrs []error
	var errMu sync.Mutex

	var eg errgroup.Group
	for w := 0; w < workers; w++ {
		eg.Go(func() error {
			sg := newArena(g.N, g.D, k)
			var local uint64

			for {
				if err := ctx.Err(); err != nil {
					errMu.Lock()
					workerErrs = append(workerErrs, err)
					errMu.Unlock()
					break
				}
				u := atomic.AddInt32(&nextU, 1) - 1
				if u >= g.N {
					break
				}
				buildSubgraph(g, u, sg)
				countAtLevel(k-1, sg, &local)
			}

			atomic.AddUint64(&total, local)
			return nil
		})
	}
	_ = eg.Wait()

	if err := multierr.Combine(workerErrs...); err != nil {
		return 0, kcerrors.Wrap(kcerrors.CodeInvariant, "clique counting canceled", err)
	}
	return total, nil
}
