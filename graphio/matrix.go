package graphio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/msqueue/core"
)

// ReadAdjacencyMatrix parses the adjacency-matrix format: a first line "V",
// followed by V*V whitespace-separated integers in row-major order. A zero
// entry means no edge; a positive entry at row i, column j is an edge i->j
// of that weight.
func ReadAdjacencyMatrix(r io.Reader) (*core.Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)
	sc.Split(bufio.ScanWords)

	if !sc.Scan() {
		return nil, fmt.Errorf("%w: empty input", ErrMalformedHeader)
	}
	v, err := strconv.Atoi(sc.Text())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedHeader, err)
	}

	g, err := core.NewGraph(v)
	if err != nil {
		return nil, err
	}

	for i := 0; i < v; i++ {
		for j := 0; j < v; j++ {
			if !sc.Scan() {
				return nil, fmt.Errorf("%w: matrix truncated at row %d col %d", ErrMalformedLine, i, j)
			}
			weight, err := strconv.Atoi(sc.Text())
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrMalformedLine, err)
			}
			if weight <= 0 {
				continue
			}
			if err := g.AddEdge(core.Vertex(i), core.Vertex(j), int32(weight)); err != nil {
				return nil, err
			}
		}
	}

	if err := sc.Err(); err != nil {
		return nil, err
	}

	return g, nil
}

