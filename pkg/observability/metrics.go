package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics aggregates the engine's Prometheus collectors.
// A nil *Metrics is valid and records nothing, so callers never need to
// branch on whether instrumentation is enabled.
type Metrics struct {
	registry *prometheus.Registry

	runsTotal     *prometheus.CounterVec
	runDuration   *prometheus.HistogramVec
	cellsExecuted prometheus.Counter
	cellFaults    prometheus.Counter
	httpRequests  *prometheus.CounterVec
}

// New creates a Metrics value with its own registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		runsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "viewpython",
			Name:      "runs_total",
			Help:      "Workflow runs by mode (graph, linear) and status (ok, fault).",
		}, []string{"mode", "status"}),
		runDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "viewpython",
			Name:      "run_duration_seconds",
			Help:      "Wall-clock duration of a full workflow run.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"mode"}),
		cellsExecuted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "viewpython",
			Name:      "cells_executed_total",
			Help:      "Cells that completed successfully.",
		}),
		cellFaults: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "viewpython",
			Name:      "cell_faults_total",
			Help:      "Cells that raised a parse or runtime fault.",
		}),
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "viewpython",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "code"}),
	}
}

// ObserveRun records a completed run of the given mode ("graph" or "linear").
func (m *Metrics) ObserveRun(mode string, ok bool, elapsed time.Duration) {
	if m == nil {
		return
	}
	status := "ok"
	if !ok {
		status = "fault"
	}
	m.runsTotal.WithLabelValues(mode, status).Inc()
	m.runDuration.WithLabelValues(mode).Observe(elapsed.Seconds())
}

// CellExecuted records one successfully executed cell.
func (m *Metrics) CellExecuted() {
	if m == nil {
		return
	}
	m.cellsExecuted.Inc()
}

// CellFault records one failed cell.
func (m *Metrics) CellFault() {
	if m == nil {
		return
	}
	m.cellFaults.Inc()
}

// HTTPRequest records one handled HTTP request.
func (m *Metrics) HTTPRequest(method, route string, code int) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
}

// Handler exposes the registry in Prometheus text format.
// Returns a no-op handler when metrics are disabled.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
