// Package graphio reads and writes the plain-text graph and result formats
// the cmd/msq driver consumes: an edge-list or adjacency-matrix input file,
// and a one-distance-per-line output file. Parsing favors explicit
// bufio.Scanner + strconv over reflection-based decoders, matching how the
// rest of the example corpus reads line-oriented input files.
package graphio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/msqueue/core"
)

// ErrMalformedHeader is returned when an input file's first line cannot be
// parsed as the expected header.
var ErrMalformedHeader = errors.New("graphio: malformed header line")

// ErrMalformedLine is returned when a data line cannot be parsed into the
// expected number of integer fields.
var ErrMalformedLine = errors.New("graphio: malformed data line")

// ReadEdgeList parses the edge-list format: a first line "V E", followed by
// E lines of "from to weight". vertexNumerationOffset is added to every
// from/to value before use (e.g. -1 to translate 1-based input into this
// module's 0-based vertex ids). Edges with weight <= 0 after translation
// are silently discarded, mirroring the reference reader's convention that
// a non-positive weight means "no edge" rather than a parse error.
func ReadEdgeList(r io.Reader, vertexNumerationOffset int) (*core.Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	if !sc.Scan() {
		return nil, fmt.Errorf("%w: empty input", ErrMalformedHeader)
	}
	v, e, err := parseTwoInts(sc.Text())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedHeader, err)
	}

	g, err := core.NewGraph(v)
	if err != nil {
		return nil, err
	}

	for i := 0; i < e; i++ {
		if !sc.Scan() {
			return nil, fmt.Errorf("%w: expected %d edges, found %d", ErrMalformedLine, e, i)
		}
		fields := strings.Fields(sc.Text())
		if len(fields) != 3 {
			return nil, fmt.Errorf("%w: %q", ErrMalformedLine, sc.Text())
		}

		from, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedLine, err)
		}
		to, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedLine, err)
		}
		weight, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedLine, err)
		}

		if weight <= 0 {
			continue
		}
		from += vertexNumerationOffset
		to += vertexNumerationOffset
		if err := g.AddEdge(core.Vertex(from), core.Vertex(to), int32(weight)); err != nil {
			return nil, err
		}
	}

	if err := sc.Err(); err != nil {
		return nil, err
	}

	return g, nil
}

func parseTwoInts(line string) (int, int, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("expected 2 fields, got %d", len(fields))
	}

	a, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, err
	}
	b, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, err
	}

	return a, b, nil
}
