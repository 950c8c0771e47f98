package io

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	apperrors "github.com/matzehuels/spacegraph/pkg/errors"
	"github.com/matzehuels/spacegraph/pkg/graph"
)

// ReadText decodes an edge-list text description from r: the vertex count,
// the edge count, then one "v w" pair per line. The number of pairs must
// match the declared edge count. ReadText does not close r.
func ReadText(r io.Reader) (*graph.Graph, error) {
	sc := bufio.NewScanner(r)
	var (
		header []int // vertex count, edge count
		edges  []graph.Edge
		lineNo int
	)

	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(header) < 2 {
			if len(fields) != 1 {
				return nil, apperrors.New(apperrors.ErrCodeInvalidFormat, "line %d: want a single count, got %q", lineNo, line)
			}
			n, err := parseInt(fields[0], lineNo)
			if err != nil {
				return nil, err
			}
			header = append(header, n)
			continue
		}

		if len(fields) != 2 {
			return nil, apperrors.New(apperrors.ErrCodeInvalidFormat, "line %d: want \"v w\", got %q", lineNo, line)
		}
		v, err := parseInt(fields[0], lineNo)
		if err != nil {
			return nil, err
		}
		w, err := parseInt(fields[1], lineNo)
		if err != nil {
			return nil, err
		}
		edges = append(edges, graph.Edge{V: v, W: w})
	}
	if err := sc.Err(); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidFormat, err, "read edge list")
	}

	if len(header) < 2 {
		return nil, apperrors.New(apperrors.ErrCodeInvalidFormat, "missing vertex or edge count")
	}
	if declared := header[1]; declared != len(edges) {
		return nil, apperrors.New(apperrors.ErrCodeInvalidFormat, "declared %d edges, found %d", declared, len(edges))
	}

	return description{vertices: &header[0], edges: edges}.build()
}

func parseInt(s string, lineNo int) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrCodeInvalidFormat, err, "line %d: %q is not an integer", lineNo, s)
	}
	return n, nil
}
