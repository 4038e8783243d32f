package viewpython

import (
	"log/slog"

	"github.com/Pulkit12dhingra/view-python/internal/graph"
	"github.com/Pulkit12dhingra/view-python/internal/logging"
	"github.com/Pulkit12dhingra/view-python/internal/runtime"
	"github.com/Pulkit12dhingra/view-python/pkg/domain"
	"github.com/Pulkit12dhingra/view-python/pkg/observability"
)

// Version is reported by the CLI and the HTTP/MCP adapters.
var Version = "0.2.0"

// Engine is the high-level entry point for the view-python library.
// It wraps the internal orchestrator and provides a simplified API for
// consumers. Safe for concurrent use: every run owns its namespaces.
type Engine struct {
	orchestrator *runtime.Orchestrator
	logger       *slog.Logger
	metrics      *observability.Metrics
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithMetrics enables Prometheus instrumentation.
func WithMetrics(metrics *observability.Metrics) Option {
	return func(e *Engine) {
		e.metrics = metrics
	}
}

// New initializes a new view-python Engine.
func New(opts ...Option) *Engine {
	eng := &Engine{}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.logger == nil {
		eng.logger = logging.NewNop()
	}

	eng.orchestrator = runtime.NewOrchestrator(
		runtime.WithLogger(eng.logger),
		runtime.WithMetrics(eng.metrics),
	)
	return eng
}

// BuildGraph infers the dependency graph from cell sources in authoring
// order. Blank cells produce no nodes; node ids are cell-1..cell-n over the
// retained cells.
func (e *Engine) BuildGraph(cells []string) domain.Graph {
	return graph.Build(cells)
}

// RunGraph executes a node/edge collection (auto-built or user-edited):
// components run one after another in discovery order, each against a fresh
// namespace, stopping at the first fault.
func (e *Engine) RunGraph(nodes []domain.Node, edges []domain.Edge) domain.GraphRunResult {
	return e.orchestrator.RunGraph(nodes, edges)
}

// RunCells executes a flat cell list in the given order with one shared
// namespace (legacy linear mode, no graph).
func (e *Engine) RunCells(cells []string) domain.LinearRunResult {
	return e.orchestrator.RunLinear(cells)
}
