// Package runtime executes notebook cells against a shared Starlark
// namespace and orchestrates full graph-driven and linear runs.
package runtime

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/Pulkit12dhingra/view-python/internal/analyzer"
	"github.com/Pulkit12dhingra/view-python/internal/logging"
	"github.com/Pulkit12dhingra/view-python/pkg/domain"
)

// Namespace is the mutable variable environment shared by all cells executed
// within one component. It is owned by the caller, never a process-wide
// singleton, and is discarded when the component finishes.
type Namespace starlark.StringDict

// NewNamespace returns a fresh, empty namespace.
func NewNamespace() Namespace {
	return Namespace{}
}

// Engine executes individual cells. It is stateless; all mutable state lives
// in the Namespace passed to ExecCell.
type Engine struct {
	logger *slog.Logger
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithEngineLogger sets a structured logger for cell execution events.
func WithEngineLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.logger = logger
	}
}

// NewEngine creates a cell execution engine.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExecCell runs one cell against ns and returns everything it printed.
//
// Like an interactive notebook, a trailing bare expression is echoed: the
// statements before it execute first, then the expression is evaluated
// against the same namespace and its repr written to the captured output
// (None stays silent). Cells without a trailing expression run as a plain
// statement sequence.
//
// Any parse or runtime fault is returned as a *domain.CellFault whose
// Output is the captured output so far with the full trace text appended.
func (e *Engine) ExecCell(id, code string, ns Namespace) (string, error) {
	var buf strings.Builder
	thread := &starlark.Thread{
		Name: id,
		Print: func(_ *starlark.Thread, msg string) {
			fmt.Fprintln(&buf, msg)
		},
	}

	f, err := analyzer.FileOptions.Parse(id, code, 0)
	if err != nil {
		return "", e.fault(id, &buf, err)
	}

	globals := starlark.StringDict(ns)

	// Detach a trailing bare expression so it can be evaluated separately
	// for the echo.
	var trailing syntax.Expr
	if n := len(f.Stmts); n > 0 {
		if last, ok := f.Stmts[n-1].(*syntax.ExprStmt); ok {
			trailing = last.X
			f.Stmts = f.Stmts[:n-1]
		}
	}

	if len(f.Stmts) > 0 {
		if err := starlark.ExecREPLChunk(f, thread, globals); err != nil {
			return "", e.fault(id, &buf, err)
		}
	}

	if trailing != nil {
		value, err := starlark.EvalExprOptions(analyzer.FileOptions, thread, trailing, globals)
		if err != nil {
			return "", e.fault(id, &buf, err)
		}
		if value != starlark.None {
			fmt.Fprintln(&buf, value.String())
		}
	}

	return buf.String(), nil
}

// fault captures the fullest trace text the error can give, appended to the
// output already produced by the cell.
func (e *Engine) fault(id string, buf *strings.Builder, err error) error {
	var evalErr *starlark.EvalError
	if errors.As(err, &evalErr) {
		buf.WriteString(evalErr.Backtrace())
	} else {
		buf.WriteString(err.Error())
	}
	if !strings.HasSuffix(buf.String(), "\n") {
		buf.WriteString("\n")
	}

	e.logger.Warn("cell execution failed", "cell", id, "err", err)
	return &domain.CellFault{Node: id, Output: buf.String()}
}
