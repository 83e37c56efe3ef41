// Package ingest implements S1, the edge-list loader: reading a raw
// edge-list file into a dense, in-memory EdgeList.
package ingest

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	kcerrors "github.com/junjiewwang/kclique/pkg/errors"
)

// Edge is an unordered pair of vertex ids. Before S3 relabels it, S and T
// carry no ordering guarantee; after relabeling, S always has higher rank.
type Edge struct {
	S, T int32
}

// EdgeList is a dense sequence of Edges over vertex ids in [0, N). Rank is
// nil until CoreOrder runs; once populated, Rank[v] gives v's position in
// the degeneracy ordering.
type EdgeList struct {
	N     int32
	Edges []Edge
	Rank  []int32
}

// LoadOptions configures LoadEdges.
type LoadOptions struct {
	// Dedup removes duplicate unordered pairs after loading. Off by
	// default: the reference pipeline treats repeated edges as repeated,
	// trusting the input to already be simple.
	Dedup bool
}

// LoadEdges reads path, one edge per line as two whitespace-separated
// non-negative integer vertex ids, skipping self-loops and blank lines. It
// returns an IOFatal AppError if the file cannot be opened or a line fails
// to parse as two integers.
func LoadEdges(ctx context.Context, path string, opts LoadOptions) (*EdgeList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, kcerrors.Wrap(kcerrors.CodeIOFatal, "cannot open edge list", err)
	}
	defer f.Close()

	el, err := parseEdgeList(ctx, f)
	if err != nil {
		return nil, err
	}

	if opts.Dedup {
		Deduplicate(el)
	}

	return el, nil
}

func parseEdgeList(ctx context.Context, r io.Reader) (*EdgeList, error) {
	edges := make([]Edge, 0, 1<<16)
	var maxID int32 = -1

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	lineNum := 0

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return nil, kcerrors.Wrap(kcerrors.CodeIOFatal, "edge list load cancelled", ctx.Err())
		default:
		}

		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, kcerrors.New(kcerrors.CodeIOFatal,
				fmt.Sprintf("edge list line %d: expected 2 fields, got %d", lineNum, len(fields)))
		}

		s, err := parseVertexID(fields[0])
		if err != nil {
			return nil, kcerrors.Wrap(kcerrors.CodeIOFatal, fmt.Sprintf("edge list line %d", lineNum), err)
		}
		t, err := parseVertexID(fields[1])
		if err != nil {
			return nil, kcerrors.Wrap(kcerrors.CodeIOFatal, fmt.Sprintf("edge list line %d", lineNum), err)
		}

		if s == t {
			continue // self-loop, ignored per spec
		}

		edges = append(edges, Edge{S: s, T: t})
		if s > maxID {
			maxID = s
		}
		if t > maxID {
			maxID = t
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, kcerrors.Wrap(kcerrors.CodeIOFatal, "error reading edge list", err)
	}

	return &EdgeList{N: maxID + 1, Edges: edges}, nil
}

func parseVertexID(s string) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid vertex id %q: %w", s, err)
	}
	if v < 0 {
		return 0, fmt.Errorf("vertex id must be non-negative, got %d", v)
	}
	return int32(v), nil
}
