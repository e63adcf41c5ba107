package msqstats

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector exposes the most recently recorded Report as Prometheus
// metrics. Implements prometheus.Collector so it can be registered
// directly into a *prometheus.Registry (see cmd/msq).
type Collector struct {
	mu     sync.Mutex
	latest Report

	pulls            *prometheus.Desc
	pullRatio        *prometheus.Desc
	pushes           *prometheus.Desc
	uselessPushes    *prometheus.Desc
	edgesAccessed    *prometheus.Desc
	weightedOverhead *prometheus.Desc
	maxQueueSize     *prometheus.Desc
	elapsedSeconds   *prometheus.Desc
}

// NewCollector builds a Collector with metric names under the given
// namespace/subsystem (via prometheus.BuildFQName).
func NewCollector(namespace, subsystem string) *Collector {
	return &Collector{
		pulls: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "pulls_total"),
			"Total vertices popped from the queue in the most recent run", nil, nil),
		pullRatio: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "pull_ratio"),
			"Pulls divided by vertex count in the most recent run", nil, nil),
		pushes: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "pushes_total"),
			"Total pushes issued in the most recent run", nil, nil),
		uselessPushes: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "useless_pushes_total"),
			"Pushes superseded before being popped at that key", nil, nil),
		edgesAccessed: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "edges_accessed_total"),
			"Total edge relaxation attempts in the most recent run", nil, nil),
		weightedOverhead: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "weighted_overhead"),
			"Pushes divided by vertex count in the most recent run", nil, nil),
		maxQueueSize: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "max_queue_size"),
			"Peak occupancy across all heaps in the most recent run", nil, nil),
		elapsedSeconds: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "elapsed_seconds"),
			"Wall-clock duration of the most recent run", nil, nil),
	}
}

// Observe records r as the latest report; the next Collect call reports it.
func (c *Collector) Observe(r Report) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.latest = r
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.pulls
	ch <- c.pullRatio
	ch <- c.pushes
	ch <- c.uselessPushes
	ch <- c.edgesAccessed
	ch <- c.weightedOverhead
	ch <- c.maxQueueSize
	ch <- c.elapsedSeconds
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.mu.Lock()
	r := c.latest
	c.mu.Unlock()

	ch <- prometheus.MustNewConstMetric(c.pulls, prometheus.CounterValue, float64(r.TotalPulls))
	ch <- prometheus.MustNewConstMetric(c.pullRatio, prometheus.GaugeValue, r.PullRatio)
	ch <- prometheus.MustNewConstMetric(c.pushes, prometheus.CounterValue, float64(r.TotalPushes))
	ch <- prometheus.MustNewConstMetric(c.uselessPushes, prometheus.CounterValue, float64(r.UselessPushes))
	ch <- prometheus.MustNewConstMetric(c.edgesAccessed, prometheus.CounterValue, float64(r.EdgesAccessed))
	ch <- prometheus.MustNewConstMetric(c.weightedOverhead, prometheus.GaugeValue, r.WeightedOverhead)
	ch <- prometheus.MustNewConstMetric(c.maxQueueSize, prometheus.GaugeValue, float64(r.MaxQueueSize))
	ch <- prometheus.MustNewConstMetric(c.elapsedSeconds, prometheus.GaugeValue, r.Elapsed.Seconds())
}
