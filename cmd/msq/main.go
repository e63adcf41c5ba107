// Command msq drives the concurrent SSSP engine: it loads (or synthesizes)
// a graph, runs one or more queue implementations over it, validates each
// against the sequential reference, and reports per-run statistics.
//
// Usage:
//
//	msq [-metrics-addr=host:port] <input_filename_no_ext> <params_filename> \
//	    <one_queue_reserve_size> <use_try_lock:0|1> <run_blocking_queue:0|1> \
//	    <run_regular_queue:0|1> <gen_graph_size>
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/msqueue/blockingqueue"
	"github.com/katalvlaran/msqueue/core"
	"github.com/katalvlaran/msqueue/dijkstra"
	"github.com/katalvlaran/msqueue/gen"
	"github.com/katalvlaran/msqueue/graphio"
	"github.com/katalvlaran/msqueue/msqstats"
	"github.com/katalvlaran/msqueue/multiqueue"
	"github.com/katalvlaran/msqueue/queue"
	"github.com/katalvlaran/msqueue/regularqueue"
	"github.com/katalvlaran/msqueue/sssp"
)

const usageMessage = `
msq runs the concurrent MultiQueue SSSP engine and benchmarks it against
a sequential Dijkstra reference.

Usage:
  msq [-metrics-addr=host:port] <input_filename_no_ext> <params_filename> \
      <one_queue_reserve_size> <use_try_lock:0|1> <run_blocking_queue:0|1> \
      <run_regular_queue:0|1> <gen_graph_size>

  input_filename_no_ext  path prefix; "<prefix>.in" holds the graph.
  params_filename        whitespace-separated (num_workers, size_multiple) pairs.
  one_queue_reserve_size  initial per-heap capacity.
  use_try_lock            1 to enable the try-lock push variant.
  run_blocking_queue      1 to also run the single-mutex baseline.
  run_regular_queue       1 to also run the unlocked sequential baseline.
  gen_graph_size          if > 0, synthesize a layered graph instead of reading input.
`

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("msq", flag.ContinueOnError)
	metricsAddr := fs.String("metrics-addr", "", "if set, serve Prometheus /metrics on this address for the run's duration")
	fs.Usage = func() { fmt.Fprint(os.Stderr, usageMessage) }
	if err := fs.Parse(args); err != nil {
		return 1
	}

	positionals := fs.Args()
	if len(positionals) != 7 {
		fs.Usage()
		return 1
	}

	cfg, err := parsePositionals(positionals)
	if err != nil {
		fmt.Fprintln(os.Stderr, "msq:", err)
		return 1
	}

	registry := prometheus.NewRegistry()
	collector := msqstats.NewCollector("msq", "run")
	registry.MustRegister(collector)

	if *metricsAddr != "" {
		stop := serveMetrics(*metricsAddr, registry)
		defer stop()
	}

	g, err := loadGraph(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "msq:", err)
		return 1
	}

	return benchmark(g, cfg, collector)
}

type cliConfig struct {
	inputPrefix         string
	paramsFilename      string
	oneQueueReserveSize int
	useTryLock          bool
	runBlockingQueue    bool
	runRegularQueue     bool
	genGraphSize        int
}

func parsePositionals(args []string) (cliConfig, error) {
	reserveSize, err := strconv.Atoi(args[2])
	if err != nil {
		return cliConfig{}, fmt.Errorf("one_queue_reserve_size: %w", err)
	}
	useTryLock, err := parseBoolFlag(args[3])
	if err != nil {
		return cliConfig{}, fmt.Errorf("use_try_lock: %w", err)
	}
	runBlocking, err := parseBoolFlag(args[4])
	if err != nil {
		return cliConfig{}, fmt.Errorf("run_blocking_queue: %w", err)
	}
	runRegular, err := parseBoolFlag(args[5])
	if err != nil {
		return cliConfig{}, fmt.Errorf("run_regular_queue: %w", err)
	}
	genSize, err := strconv.Atoi(args[6])
	if err != nil {
		return cliConfig{}, fmt.Errorf("gen_graph_size: %w", err)
	}

	return cliConfig{
		inputPrefix:         args[0],
		paramsFilename:      args[1],
		oneQueueReserveSize: reserveSize,
		useTryLock:          useTryLock,
		runBlockingQueue:    runBlocking,
		runRegularQueue:     runRegular,
		genGraphSize:        genSize,
	}, nil
}

func parseBoolFlag(s string) (bool, error) {
	switch s {
	case "0":
		return false, nil
	case "1":
		return true, nil
	default:
		return false, fmt.Errorf("expected 0 or 1, got %q", s)
	}
}

func loadGraph(cfg cliConfig) (*core.Graph, error) {
	if cfg.genGraphSize > 0 {
		return gen.Layered(cfg.genGraphSize)
	}

	f, err := os.Open(cfg.inputPrefix + ".in")
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return graphio.ReadEdgeList(f, -1)
}

// workerParams is one (num_workers, size_multiple) pair read from the
// params file.
type workerParams struct {
	numWorkers   int
	sizeMultiple int
}

func readParams(filename string) ([]workerParams, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var params []workerParams
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return nil, fmt.Errorf("params file: expected 2 fields, got %d in %q", len(fields), sc.Text())
		}
		numWorkers, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, err
		}
		sizeMultiple, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, err
		}
		params = append(params, workerParams{numWorkers: numWorkers, sizeMultiple: sizeMultiple})
	}

	return params, sc.Err()
}

// benchmark runs the sequential reference once (implementation 0), then
// each configured MultiQueue parameter set plus the requested baselines,
// reporting stats to stderr and dumping mismatches to "<prefix>.out<i>"
// (with the reference distances in "<prefix>.out0").
func benchmark(g *core.Graph, cfg cliConfig, collector *msqstats.Collector) int {
	params, err := readParams(cfg.paramsFilename)
	if err != nil {
		fmt.Fprintln(os.Stderr, "msq:", err)
		return 1
	}

	start := time.Now()
	refDist, _, err := dijkstra.Run(g, dijkstra.Source(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, "msq: reference run:", err)
		return 1
	}
	fmt.Fprintf(os.Stderr, "implementation 0 (sequential reference): elapsed=%s\n", time.Since(start))

	implIdx := 1
	exitCode := 0

	for _, p := range params {
		opts := []multiqueue.Option{multiqueue.WithOneQueueReserveSize(cfg.oneQueueReserveSize)}
		if p.sizeMultiple > 0 {
			opts = append(opts, multiqueue.WithSizeMultiple(p.sizeMultiple))
		}
		if cfg.useTryLock {
			opts = append(opts, multiqueue.WithTryLock(3))
		}

		mq, err := multiqueue.New(p.numWorkers, opts...)
		if err != nil {
			fmt.Fprintln(os.Stderr, "msq:", err)
			exitCode = 1
			continue
		}

		if !runAndReport(g, mq, p.numWorkers, refDist, cfg.inputPrefix, implIdx, collector) {
			exitCode = 1
		}
		implIdx++
	}

	if cfg.runBlockingQueue {
		q := blockingqueue.New(cfg.oneQueueReserveSize)
		numWorkers := maxWorkers(params)
		if !runAndReport(g, q, numWorkers, refDist, cfg.inputPrefix, implIdx, collector) {
			exitCode = 1
		}
		implIdx++
	}

	if cfg.runRegularQueue {
		q := regularqueue.New(cfg.oneQueueReserveSize)
		if !runAndReport(g, q, 1, refDist, cfg.inputPrefix, implIdx, collector) {
			exitCode = 1
		}
	}

	return exitCode
}

func maxWorkers(params []workerParams) int {
	max := 1
	for _, p := range params {
		if p.numWorkers > max {
			max = p.numWorkers
		}
	}

	return max
}

// runAndReport runs q's implementation of sssp.Run, reports its stats to
// stderr, and compares its distances against refDist. On a mismatch it
// writes both vectors to disk ("<prefix>.out<implIdx>" and
// "<prefix>.out0") rather than aborting the benchmark. Returns false on
// mismatch or error.
func runAndReport(g *core.Graph, q queue.Queue, numWorkers int, refDist []int64, inputPrefix string, implIdx int, collector *msqstats.Collector) bool {
	start := time.Now()
	res, err := sssp.Run(context.Background(), g, q, 0, numWorkers)
	elapsed := time.Since(start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "implementation %d: error: %v\n", implIdx, err)
		return false
	}

	var peaks []int64
	if mq, ok := q.(*multiqueue.MultiQueue); ok {
		peaks = mq.Snapshot().PerHeapPeaks
	}

	report := msqstats.BuildReport(elapsed, g.NumVertices(), res.TotalPulls, sumPushes(q), res.EdgesVisited, peaks)
	collector.Observe(report)
	fmt.Fprintf(os.Stderr, "implementation %d: ", implIdx)
	report.WriteTo(os.Stderr)

	dist := res.Distances()
	ok := distancesMatch(dist, refDist)
	if !ok {
		fmt.Fprintf(os.Stderr, "implementation %d: MISMATCH against reference\n", implIdx)
		if err := writeMismatch(inputPrefix, implIdx, dist); err != nil {
			fmt.Fprintf(os.Stderr, "implementation %d: failed to write mismatch dump: %v\n", implIdx, err)
		}
		ref, err := os.Create(fmt.Sprintf("%s.out0", inputPrefix))
		if err == nil {
			err = graphio.WriteDistances(ref, refDist)
			ref.Close()
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "implementation %d: failed to write reference dump: %v\n", implIdx, err)
		}
	}

	return ok
}

func sumPushes(q queue.Queue) int64 {
	if mq, ok := q.(*multiqueue.MultiQueue); ok {
		return mq.Snapshot().Pushes
	}

	return 0
}

func distancesMatch(got []int32, want []int64) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if int64(got[i]) != want[i] {
			return false
		}
	}

	return true
}

func writeMismatch(inputPrefix string, implIdx int, dist []int32) error {
	f, err := os.Create(fmt.Sprintf("%s.out%d", inputPrefix, implIdx))
	if err != nil {
		return err
	}
	defer f.Close()

	wide := make([]int64, len(dist))
	for i, d := range dist {
		wide[i] = int64(d)
	}

	return graphio.WriteDistances(f, wide)
}

func serveMetrics(addr string, registry *prometheus.Registry) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	server := &http.Server{Addr: addr, Handler: mux}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Fprintln(os.Stderr, "msq: metrics server:", err)
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}
}
