// Package msqstats aggregates per-run performance counters — pushes,
// pulls, edges visited, per-heap peak occupancy — into a plain Go snapshot
// for stderr reporting and a Prometheus collector for scrape-based
// observability, matching how the rest of the example corpus instruments
// services (github.com/prometheus/client_golang).
package msqstats

import (
	"fmt"
	"io"
	"time"
)

// Report is a point-in-time summary of one sssp.Run (or dijkstra.Run)
// invocation, suitable for a single stderr block.
type Report struct {
	Elapsed          time.Duration
	TotalPulls       int64
	PullRatio        float64 // TotalPulls / numVertices
	TotalPushes      int64
	UselessPushes    int64 // TotalPushes - TotalPulls
	EdgesAccessed    int64
	WeightedOverhead float64 // TotalPushes / numVertices
	MaxQueueSize     int64
}

// BuildReport derives a Report from raw counters. numVertices must be > 0
// for PullRatio/WeightedOverhead to be meaningful; a zero numVertices
// yields zero ratios rather than dividing by zero.
func BuildReport(elapsed time.Duration, numVertices int, totalPulls, totalPushes, edgesAccessed int64, perHeapPeaks []int64) Report {
	var pullRatio, weightedOverhead float64
	if numVertices > 0 {
		pullRatio = float64(totalPulls) / float64(numVertices)
		weightedOverhead = float64(totalPushes) / float64(numVertices)
	}

	var maxQueueSize int64
	for _, peak := range perHeapPeaks {
		if peak > maxQueueSize {
			maxQueueSize = peak
		}
	}

	return Report{
		Elapsed:          elapsed,
		TotalPulls:       totalPulls,
		PullRatio:        pullRatio,
		TotalPushes:      totalPushes,
		UselessPushes:    totalPushes - totalPulls,
		EdgesAccessed:    edgesAccessed,
		WeightedOverhead: weightedOverhead,
		MaxQueueSize:     maxQueueSize,
	}
}

// WriteTo writes the report as a human-readable stderr block.
func (r Report) WriteTo(w io.Writer) (int64, error) {
	n, err := fmt.Fprintf(w,
		"elapsed=%s pulls=%d pull_ratio=%.3f pushes=%d useless_pushes=%d edges_accessed=%d weighted_overhead=%.3f max_queue_size=%d\n",
		r.Elapsed, r.TotalPulls, r.PullRatio, r.TotalPushes, r.UselessPushes, r.EdgesAccessed, r.WeightedOverhead, r.MaxQueueSize,
	)

	return int64(n), err
}
