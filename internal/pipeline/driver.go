// Package pipeline composes S1-S5 into the single batch run described in
// §5: load → core-order → relabel → build DAG → run truss filter → run
// clique engine, returning the count for the CLI to print. There is no task routing or multi-request
// dispatch here — one process, one graph, one k, one answer — so unlike
// the teacher's analyzer Manager/registry, the driver is a fixed pipeline
// rather than a map of pluggable stages.
package pipeline

import (
	"context"

	"go.opentelemetry.io/otel"

	"github.com/junjiewwang/kclique/internal/clique"
	"github.com/junjiewwang/kclique/internal/dag"
	"github.com/junjiewwang/kclique/internal/degeneracy"
	"github.com/junjiewwang/kclique/internal/ingest"
	"github.com/junjiewwang/kclique/internal/truss"
	kcerrors "github.com/junjiewwang/kclique/pkg/errors"
	"github.com/junjiewwang/kclique/pkg/utils"
)

const tracerName = "kclique/pipeline"

// Options configures a single run of the pipeline.
type Options struct {
	EdgelistPath string
	K            int
	Workers      int

	// TrussEnabled runs S4 before S5. Resolved Open Question: the
	// reference computes the filtered DAG and then discards it, counting
	// cliques on the unfiltered graph instead — read as a bug, not a
	// feature, so the config default (pipeline.truss_enabled) is true.
	TrussEnabled bool

	// Dedup removes duplicate edges at load time. Off by default to match
	// the reference's "repeated edges are treated as repeated" behavior.
	Dedup bool

	// StartV/Stride select the induced vertex subset the truss filter's
	// CSR construction scans. The driver always passes (0, 1); non-default
	// values are an unused extension point, not something the CLI exposes.
	StartV, Stride int32
}

// Result is everything the CLI needs to print and everything a caller
// might want to assert on in a test.
type Result struct {
	Count             uint64
	Degeneracy        int32
	VertexCount       int32
	EdgeCount         int
	TrussFilteredOut  bool
	FilteredEdgeCount int
	Timer             *utils.Timer
}

// Run executes the full pipeline and returns the k-clique count.
func Run(ctx context.Context, opts Options, logger utils.Logger) (*Result, error) {
	timer := utils.NewTimer("kclique", utils.WithLogger(logger))
	tracer := otel.Tracer(tracerName)

	ctx, span := tracer.Start(ctx, "ingest")
	pt := timer.Start("ingest")
	el, err := ingest.LoadEdges(ctx, opts.EdgelistPath, ingest.LoadOptions{Dedup: opts.Dedup})
	pt.Stop()
	span.End()
	if err != nil {
		return nil, err
	}
	logger.Info("loaded edge list: %d vertices, %d edges", el.N, len(el.Edges))

	_, span = tracer.Start(ctx, "degeneracy-order")
	pt = timer.Start("degeneracy-order")
	order := degeneracy.CoreOrder(el)
	pt.Stop()
	span.End()
	logger.Info("degeneracy = %d", order.D)

	_, span = tracer.Start(ctx, "relabel-and-build-dag")
	pt = timer.Start("relabel-and-build-dag")
	dag.Relabel(el, order.Rank)
	g := dag.Build(el, opts.Workers)
	pt.Stop()
	span.End()

	result := &Result{
		Degeneracy:  order.D,
		VertexCount: g.N,
		EdgeCount:   int(totalOutDegree(g)),
	}

	finalDAG := g
	if opts.TrussEnabled {
		_, span = tracer.Start(ctx, "truss-filter")
		pt = timer.Start("truss-filter")
		startV, stride := opts.StartV, opts.Stride
		if stride <= 0 {
			stride = 1
		}
		filtered := truss.Filter(g, opts.K, startV, stride, opts.Workers)
		pt.Stop()
		span.End()

		result.TrussFilteredOut = true
		result.FilteredEdgeCount = int(totalOutDegree(filtered))
		logger.Info("truss filter: %d edges survived (started with %d)", result.FilteredEdgeCount, result.EdgeCount)
		finalDAG = filtered
	}

	_, span = tracer.Start(ctx, "clique-count")
	pt = timer.Start("clique-count")
	count, err := clique.CountCliques(ctx, finalDAG, opts.K, opts.Workers)
	pt.Stop()
	span.End()
	if err != nil {
		return nil, kcerrors.Wrap(kcerrors.CodeInvariant, "clique counting failed", err)
	}

	result.Count = count
	result.Timer = timer
	return result, nil
}

func totalOutDegree(g *dag.DAG) int32 {
	var total int32
	for v := int32(0); v < g.N; v++ {
		total += g.OutDegree(v)
	}
	return total
}
