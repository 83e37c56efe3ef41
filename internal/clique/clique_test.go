package clique

import (
	"context"
	"math/rand"
	"testing"

	"github.com/junjiewwang/kclique/internal/dag"
	"github.com/junjiewwang/kclique/internal/degeneracy"
	"github.com/junjiewwang/kclique/internal/ingest"
)

func buildDAG(n int32, pairs [][2]int32) *dag.DAG {
	el := &ingest.EdgeList{N: n}
	for _, p := range pairs {
		el.Edges = append(el.Edges, ingest.Edge{S: p[0], T: p[1]})
	}
	res := degeneracy.CoreOrder(el)
	dag.Relabel(el, res.Rank)
	return dag.Build(el, 2)
}

func kN(n int32) [][2]int32 {
	var pairs [][2]int32
	for i := int32(0); i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, [2]int32{i, j})
		}
	}
	return pairs
}

func countOrFatal(t *testing.T, g *dag.DAG, k, workers int) uint64 {
	t.Helper()
	n, err := CountCliques(context.Background(), g, k, workers)
	if err != nil {
		t.Fatalf("CountCliques(k=%d): %v", k, err)
	}
	return n
}

func TestTriangleHasOneThreeClique(t *testing.T) {
	g := buildDAG(3, [][2]int32{{0, 1}, {1, 2}, {0, 2}})
	if n := countOrFatal(t, g, 3, 2); n != 1 {
		t.Errorf("expected 1, got %d", n)
	}
}

func TestK5CliqueCountsAcrossK(t *testing.T) {
	g := buildDAG(5, kN(5))
	want := map[int]uint64{3: 10, 4: 5, 5: 1, 6: 0}
	for k, expect := range want {
		if n := countOrFatal(t, g, k, 2); n != expect {
			t.Errorf("k=%d: expected %d, got %d", k, expect, n)
		}
	}
}

func TestTwoDisjointTrianglesHasTwoThreeCliques(t *testing.T) {
	pairs := [][2]int32{{0, 1}, {1, 2}, {0, 2}, {3, 4}, {4, 5}, {3, 5}}
	g := buildDAG(6, pairs)
	if n := countOrFatal(t, g, 3, 2); n != 2 {
		t.Errorf("expected 2, got %d", n)
	}
}

func TestPathOfFiveHasNoThreeCliques(t *testing.T) {
	pairs := [][2]int32{{0, 1}, {1, 2}, {2, 3}, {3, 4}}
	g := buildDAG(5, pairs)
	if n := countOrFatal(t, g, 3, 2); n != 0 {
		t.Errorf("expected 0, got %d", n)
	}
}

func TestBowtieHasTwoThreeCliques(t *testing.T) {
	pairs := [][2]int32{{0, 1}, {0, 2}, {1, 2}, {0, 3}, {0, 4}, {3, 4}}
	g := buildDAG(5, pairs)
	if n := countOrFatal(t, g, 3, 2); n != 2 {
		t.Errorf("expected 2, got %d", n)
	}
}

func TestK4PlusPendantHasFourThreeCliques(t *testing.T) {
	pairs := [][2]int32{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}, {3, 4}}
	g := buildDAG(5, pairs)
	if n := countOrFatal(t, g, 3, 2); n != 4 {
		t.Errorf("expected 4, got %d", n)
	}
	if n := countOrFatal(t, g, 4, 2); n != 1 {
		t.Errorf("k=4: expected 1, got %d", n)
	}
}

func TestCliqueCountIsIndependentOfWorkerCount(t *testing.T) {
	g := buildDAG(6, kN(6))
	var prev uint64
	for i, workers := range []int{1, 2, 3, 8} {
		n := countOrFatal(t, g, 4, workers)
		if i > 0 && n != prev {
			t.Fatalf("workers=%d: got %d, expected %d (same as workers=1)", workers, n, prev)
		}
		prev = n
	}
}

func TestKEqualsOneCountsVertices(t *testing.T) {
	g := buildDAG(7, kN(7))
	if n := countOrFatal(t, g, 1, 2); n != 7 {
		t.Errorf("expected 7, got %d", n)
	}
}

func TestKEqualsTwoCountsEdges(t *testing.T) {
	pairs := kN(5)
	g := buildDAG(5, pairs)
	if n := countOrFatal(t, g, 2, 2); n != uint64(len(pairs)) {
		t.Errorf("expected %d, got %d", len(pairs), n)
	}
}

// erdosRenyi draws a G(n,p) graph: every one of the C(n,2) candidate
// edges is included independently with probability p.
func erdosRenyi(rng *rand.Rand, n int32, p float64) [][2]int32 {
	var pairs [][2]int32
	for i := int32(0); i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				pairs = append(pairs, [2]int32{i, j})
			}
		}
	}
	return pairs
}

// bruteForceCliqueCount enumerates every size-k vertex subset of {0,...,n-1}
// and counts how many induce a complete subgraph under adj, the
// straightforward reference an optimized counter like CountCliques must
// agree with.
func bruteForceCliqueCount(n int32, pairs [][2]int32, k int) uint64 {
	adj := make([][]bool, n)
	for i := range adj {
		adj[i] = make([]bool, n)
	}
	for _, p := range pairs {
		adj[p[0]][p[1]] = true
		adj[p[1]][p[0]] = true
	}

	var count uint64
	combo := make([]int32, k)
	var recurse func(start int, depth int)
	recurse = func(start int, depth int) {
		if depth == k {
			for a := 0; a < k; a++ {
				for b := a + 1; b < k; b++ {
					if !adj[combo[a]][combo[b]] {
						return
					}
				}
			}
			count++
			return
		}
		for v := start; int32(v) < n; v++ {
			combo[depth] = int32(v)
			recurse(v+1, depth+1)
		}
	}
	recurse(0, 0)
	return count
}

// TestCountCliquesMatchesBruteForceOnRandomGraphs cross-checks CountCliques
// against bruteForceCliqueCount on random G(n,p) graphs with n <= 20, for
// k in {3,4,5}, the property test described in the design notes.
func TestCountCliquesMatchesBruteForceOnRandomGraphs(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	probs := []float64{0.1, 0.3, 0.5, 0.7, 0.9}

	for trial := 0; trial < 30; trial++ {
		n := int32(4 + rng.Intn(17)) // 4..20
		p := probs[rng.Intn(len(probs))]
		pairs := erdosRenyi(rng, n, p)

		g := buildDAG(n, pairs)

		for _, k := range []int{3, 4, 5} {
			want := bruteForceCliqueCount(n, pairs, k)
			got := countOrFatal(t, g, k, 2)
			if got != want {
				t.Fatalf("trial %d (n=%d, p=%.1f, k=%d): CountCliques=%d, brute force=%d",
					trial, n, p, k, got, want)
			}
		}
	}
}

func TestAssignColorsProducesProperColoring(t *testing.T) {
	g := buildDAG(5, kN(5))
	sg := newArena(g.N, g.D, 5)
	// vertex ids are rank-dependent after relabel, so use the lowest-id
	// vertex that has any out-neighbors as the pivot.
	var pivot int32 = -1
	for v := int32(0); v < g.N; v++ {
		if g.OutDegree(v) > 0 {
			pivot = v
			break
		}
	}
	if pivot == -1 {
		t.Fatal("expected at least one vertex with out-neighbors in K5")
	}
	buildSubgraph(g, pivot, sg)

	m := sg.n[4]
	for i := int32(0); i < m; i++ {
		row := sg.adj[sg.core*i : sg.core*i+sg.d[4][i]]
		for _, w := range row {
			if sg.color[i] == sg.color[w] {
				t.Errorf("adjacent local vertices %d and %d share color %d", i, w, sg.color[i])
			}
		}
	}
}
