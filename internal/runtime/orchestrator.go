package runtime

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Pulkit12dhingra/view-python/internal/graph"
	"github.com/Pulkit12dhingra/view-python/internal/logging"
	"github.com/Pulkit12dhingra/view-python/pkg/domain"
	"github.com/Pulkit12dhingra/view-python/pkg/observability"
)

// Orchestrator composes segmentation, scheduling and execution into full
// workflow runs. A run is fully synchronous: it completes or reaches its
// first fault before returning, and no state survives between invocations.
type Orchestrator struct {
	engine  *Engine
	logger  *slog.Logger
	metrics *observability.Metrics
}

// Option configures the Orchestrator.
type Option func(*Orchestrator)

// WithLogger sets a structured logger for run events.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// WithMetrics enables Prometheus instrumentation.
func WithMetrics(metrics *observability.Metrics) Option {
	return func(o *Orchestrator) {
		o.metrics = metrics
	}
}

// NewOrchestrator creates an orchestrator with its own cell engine.
func NewOrchestrator(opts ...Option) *Orchestrator {
	o := &Orchestrator{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(o)
	}
	o.engine = NewEngine(WithEngineLogger(o.logger))
	return o
}

// RunGraph executes a (possibly user-edited) node/edge collection.
//
// Blank nodes are filtered, the rest segmented into weakly connected
// components, each component topologically ordered and executed against a
// fresh namespace. Components run strictly one after another in discovery
// order. The first fault stops the run as a barrier: no further cell runs
// and no further component starts.
func (o *Orchestrator) RunGraph(nodes []domain.Node, edges []domain.Edge) domain.GraphRunResult {
	runID := uuid.NewString()
	start := time.Now()
	logger := o.logger.With("run_id", runID, "mode", "graph")

	seg := graph.Segment(nodes, edges)
	logger.Info("run started", "nodes", len(seg.Nodes), "components", len(seg.Components))

	logs := []domain.ExecutionLog{}
	for ci, component := range seg.Components {
		sched := graph.Order(component, edges)
		if len(sched.Residual) > 0 {
			logger.Warn("component contains a cycle, order is best-effort",
				"component", ci, "residual", sched.Residual)
		}

		ns := NewNamespace()
		for _, id := range sched.Order {
			node := seg.Nodes[id]
			stdout, err := o.engine.ExecCell(id, node.Code, ns)
			if err != nil {
				fault := err.(*domain.CellFault)
				o.metrics.CellFault()
				o.metrics.ObserveRun("graph", false, time.Since(start))
				logger.Warn("run aborted", "failed_node", id, "component", ci)

				componentIdx := ci
				return domain.GraphRunResult{
					OK:         false,
					FailedNode: id,
					Component:  &componentIdx,
					Stdout:     fault.Output,
					Logs:       logs,
				}
			}
			o.metrics.CellExecuted()
			logs = append(logs, domain.ExecutionLog{Node: id, Component: ci, Stdout: stdout})
		}
	}

	o.metrics.ObserveRun("graph", true, time.Since(start))
	logger.Info("run finished", "cells", len(logs))
	return domain.GraphRunResult{OK: true, Logs: logs}
}

// RunLinear executes a flat cell list in the given order: no graph, one
// shared namespace, one implicit component. On fault, FailedCell is one
// past the last successful log.
func (o *Orchestrator) RunLinear(cells []string) domain.LinearRunResult {
	runID := uuid.NewString()
	start := time.Now()
	logger := o.logger.With("run_id", runID, "mode", "linear")

	filtered := make([]string, 0, len(cells))
	for _, code := range cells {
		if strings.TrimSpace(code) != "" {
			filtered = append(filtered, code)
		}
	}
	logger.Info("run started", "cells", len(filtered))

	ns := NewNamespace()
	logs := []domain.LinearLog{}
	for i, code := range filtered {
		id := fmt.Sprintf("cell-%d", i+1)
		stdout, err := o.engine.ExecCell(id, code, ns)
		if err != nil {
			fault := err.(*domain.CellFault)
			o.metrics.CellFault()
			o.metrics.ObserveRun("linear", false, time.Since(start))
			logger.Warn("run aborted", "failed_cell", id)

			return domain.LinearRunResult{
				OK:         false,
				FailedCell: id,
				Stdout:     fault.Output,
				Logs:       logs,
			}
		}
		o.metrics.CellExecuted()
		logs = append(logs, domain.LinearLog{Cell: id, Stdout: stdout})
	}

	o.metrics.ObserveRun("linear", true, time.Since(start))
	logger.Info("run finished", "cells", len(logs))
	return domain.LinearRunResult{OK: true, Logs: logs}
}
