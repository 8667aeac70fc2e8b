package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/dd0wney/cluso-bfs/pkg/bfs"
	"github.com/dd0wney/cluso-bfs/pkg/config"
	"github.com/dd0wney/cluso-bfs/pkg/graph"
	"github.com/dd0wney/cluso-bfs/pkg/logging"
	"github.com/dd0wney/cluso-bfs/pkg/metrics"
	"github.com/dd0wney/cluso-bfs/pkg/parallel"
	"github.com/dd0wney/cluso-bfs/pkg/prng"
	"github.com/dd0wney/cluso-bfs/pkg/report"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		os.Exit(1)
	}
}

// options is the parsed command line
type options struct {
	cfg           config.Config
	levelFromFlag bool
	metrics       bool
	summary       bool
}

func parseOptions(args []string, stderr io.Writer) (options, error) {
	var opts options
	def := config.Default()

	fs := flag.NewFlagSet("bfs-benchmark", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "", "YAML config file (flags override its values)")
	nodes := fs.Int("nodes", def.Nodes, "Number of nodes")
	edges := fs.Int("edges", def.Edges, "Number of random edge attempts")
	start := fs.Int("start", def.Start, "Start node")
	seed := fs.Int64("seed", def.Seed, "Random seed")
	source := fs.String("prng", def.PRNG, "Random source: glibc or go")
	workers := fs.Int("workers", def.Workers, "0 = sequential BFS, N = parallel BFS on N workers, -1 = CPU count")
	logLevel := fs.String("log-level", def.LogLevel, "Log level: debug, info, warn, error")
	maxMemory := fs.Uint64("max-memory", def.MaxMemoryBytes, "Refuse graphs estimated above this many bytes (0 = GOMEMLIMIT or physical memory)")
	quiet := fs.Bool("quiet", def.Quiet, "Skip per-node distance lines")
	fs.BoolVar(&opts.metrics, "metrics", false, "Dump Prometheus metrics to stderr at exit")
	fs.BoolVar(&opts.summary, "summary", false, "Print a run summary to stderr")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		return opts, fmt.Errorf("unexpected arguments %q: %w", fs.Args(), graph.ErrInvalidArgument)
	}

	cfg := def
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return opts, err
		}
		cfg = loaded
	}

	// Only explicitly set flags override the file
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "nodes":
			cfg.Nodes = *nodes
		case "edges":
			cfg.Edges = *edges
		case "start":
			cfg.Start = *start
		case "seed":
			cfg.Seed = *seed
		case "prng":
			cfg.PRNG = *source
		case "workers":
			cfg.Workers = *workers
		case "log-level":
			cfg.LogLevel = *logLevel
			opts.levelFromFlag = true
		case "max-memory":
			cfg.MaxMemoryBytes = *maxMemory
		case "quiet":
			cfg.Quiet = *quiet
		}
	})

	opts.cfg = cfg
	return opts, nil
}

// run executes one benchmark. Report lines go to stdout, everything else to
// stderr.
func run(args []string, stdout, stderr io.Writer) error {
	logger := logging.NewJSONLogger(stderr, logging.FromEnv(logging.InfoLevel)).
		With(logging.RunID(uuid.New().String()), logging.Component("bfs-benchmark"))

	opts, err := parseOptions(args, stderr)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			logger.Error("invalid arguments", logging.Error(err))
		}
		return err
	}

	cfg := opts.cfg
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", logging.Error(err))
		return err
	}

	level, _ := logging.ParseLevel(cfg.LogLevel)
	if !opts.levelFromFlag {
		level = logging.FromEnv(level)
	}
	logger.SetLevel(level)

	logger.Info("configuration loaded",
		logging.Nodes(cfg.Nodes),
		logging.Edges(cfg.Edges),
		logging.Node(cfg.Start),
		logging.Seed(cfg.Seed),
		logging.String("prng", cfg.PRNG),
		logging.Workers(cfg.Workers),
	)

	b := &benchmark{
		cfg:     cfg,
		logger:  logger,
		metrics: metrics.NewRegistry(),
	}

	sum, err := b.execute(stdout)
	if err != nil {
		logger.Error("benchmark failed", logging.Error(err))
		return err
	}

	if opts.metrics {
		b.metrics.SampleRuntime()
		if err := b.metrics.WriteText(stderr); err != nil {
			logger.Warn("metrics dump failed", logging.Error(err))
		}
	}
	if opts.summary {
		fmt.Fprintln(stderr, sum.render())
	}
	return nil
}

// benchmark holds the state of one run
type benchmark struct {
	cfg     config.Config
	logger  logging.Logger
	metrics *metrics.Registry
}

// execute generates the graph, times the traversal alone and writes the
// report.
func (b *benchmark) execute(stdout io.Writer) (*runSummary, error) {
	g, stats, genTime, err := b.generate()
	if err != nil {
		return nil, err
	}

	mode := metrics.ModeSequential
	workers := 1
	traverse := func(start int) (*bfs.Result, error) {
		return bfs.Run(g, start)
	}

	if b.cfg.Parallel() {
		// -1 means every CPU; the traverser treats non-positive counts that way
		pt, err := parallel.NewTraverser(g, max(b.cfg.Workers, 0), b.logger.With(logging.Component("parallel")))
		if err != nil {
			return nil, fmt.Errorf("start parallel traversal: %w", err)
		}
		defer pt.Close()

		mode = metrics.ModeParallel
		workers = pt.Workers()
		traverse = pt.Run
	}

	begin := time.Now()
	res, err := traverse(b.cfg.Start)
	elapsed := time.Since(begin)
	if err != nil {
		b.metrics.RecordTraversalError(mode)
		return nil, fmt.Errorf("traverse: %w", err)
	}

	b.metrics.RecordTraversal(mode, elapsed, res.Visited, res.MaxDepth())
	b.logger.Info("traversal complete",
		logging.String("mode", mode),
		logging.Workers(workers),
		logging.Count(res.Visited),
		logging.Depth(res.MaxDepth()),
		logging.Latency(elapsed),
	)

	w := report.NewWriter(stdout)
	if !b.cfg.Quiet {
		if err := w.WriteDistances(res.Distances); err != nil {
			return nil, fmt.Errorf("write report: %w", err)
		}
	}
	if err := w.WriteElapsed(elapsed); err != nil {
		return nil, fmt.Errorf("write report: %w", err)
	}
	if err := w.Flush(); err != nil {
		return nil, fmt.Errorf("write report: %w", err)
	}

	return &runSummary{
		cfg:          b.cfg,
		stats:        stats,
		realized:     g.NumEdges(),
		mode:         mode,
		workers:      workers,
		visited:      res.Visited,
		maxDepth:     res.MaxDepth(),
		generateTime: genTime,
		traverseTime: elapsed,
		reportLines:  w.Lines(),
	}, nil
}

func (b *benchmark) generate() (*graph.Graph, graph.GenerateStats, time.Duration, error) {
	src, err := prng.New(b.cfg.PRNG, b.cfg.Seed)
	if err != nil {
		return nil, graph.GenerateStats{}, 0, err
	}

	limit := b.cfg.MemoryLimit()
	timer := logging.StartTimer(b.logger, "graph generated",
		logging.Nodes(b.cfg.Nodes),
		logging.Edges(b.cfg.Edges),
		logging.Seed(b.cfg.Seed),
		logging.Uint64("memory_limit", limit),
	)

	g, stats, err := graph.Generate(graph.GenerateOptions{
		Nodes:    b.cfg.Nodes,
		Edges:    b.cfg.Edges,
		Source:   src,
		MaxBytes: limit,
	})
	if err != nil {
		timer.EndError(err)
		return nil, stats, 0, fmt.Errorf("generate graph: %w", err)
	}

	elapsed := timer.End(
		logging.Int("accepted", stats.Accepted),
		logging.Int("self_loops_rejected", stats.SelfLoopsRejected),
		logging.Uint64("estimated_bytes", stats.EstimatedBytes),
	)
	b.metrics.RecordGeneration(g.NumNodes(), g.NumEdges(), stats.Attempts, stats.SelfLoopsRejected, elapsed)
	return g, stats, elapsed, nil
}
