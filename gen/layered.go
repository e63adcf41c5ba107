// Package gen synthesizes the one graph topology this module's benchmarks
// need: a layered DAG with a single source and sink, built deterministically
// from a target vertex-count scale. It is a small functional-option
// constructor in the style of the teacher corpus's graph builders, trimmed
// to this one topology rather than a general-purpose shape library.
package gen

import (
	"errors"
	"math"

	"github.com/katalvlaran/msqueue/core"
)

// ErrTooFewVertices is returned when n is too small to form even a single
// layer between a source and a sink.
var ErrTooFewVertices = errors.New("gen: n too small to form a layered graph")

// Option configures Layered.
type Option func(*config)

type config struct {
	weight     int32
	bidirected bool
}

func defaultConfig() config {
	return config{weight: 1, bidirected: false}
}

// WithWeight sets the weight applied to every edge. Default 1.
func WithWeight(w int32) Option {
	return func(c *config) { c.weight = w }
}

// WithBidirected mirrors every edge, adding the reverse direction at the
// same weight.
func WithBidirected() Option {
	return func(c *config) { c.bidirected = true }
}

// Layered builds a graph scaled from n: with L = floor(sqrt(n)), the graph
// has L layers of L vertices each, plus a dedicated source (vertex 0) and
// sink (vertex L*L+1). Source connects to every vertex in layer 0; each
// layer connects fully to the next; the last layer connects to the sink.
// The resulting graph's vertex count is L*L+2, which only equals n when n
// is a perfect square plus 2 — callers needing the actual size should read
// it back from the returned *core.Graph rather than assume it equals n.
func Layered(n int, opts ...Option) (*core.Graph, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	l := int(math.Sqrt(float64(n)))
	if l < 1 {
		return nil, ErrTooFewVertices
	}

	numVertices := l*l + 2
	g, err := core.NewGraph(numVertices)
	if err != nil {
		return nil, err
	}

	source := core.Vertex(0)
	sink := core.Vertex(numVertices - 1)

	layerVertex := func(layer, offset int) core.Vertex {
		return core.Vertex(1 + layer*l + offset)
	}

	addEdge := func(from, to core.Vertex) error {
		if err := g.AddEdge(from, to, cfg.weight); err != nil {
			return err
		}
		if cfg.bidirected {
			if err := g.AddEdge(to, from, cfg.weight); err != nil {
				return err
			}
		}

		return nil
	}

	for i := 0; i < l; i++ {
		if err := addEdge(source, layerVertex(0, i)); err != nil {
			return nil, err
		}
	}

	for layer := 0; layer < l-1; layer++ {
		for i := 0; i < l; i++ {
			for j := 0; j < l; j++ {
				if err := addEdge(layerVertex(layer, i), layerVertex(layer+1, j)); err != nil {
					return nil, err
				}
			}
		}
	}

	for i := 0; i < l; i++ {
		if err := addEdge(layerVertex(l-1, i), sink); err != nil {
			return nil, err
		}
	}

	return g, nil
}
