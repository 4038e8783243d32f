// Package analyzer performs static name analysis of a single notebook cell.
//
// The analysis is deliberately flow-insensitive: any name defined anywhere
// in the cell counts as locally defined for the whole cell, even when a use
// lexically precedes it. This is a known imprecision, not a bug; dependency
// inference relies on it.
package analyzer

import (
	"go.starlark.net/syntax"
)

// FileOptions enables the statement forms notebook cells rely on.
// It is shared with the execution engine so that a cell the analyzer can
// read is exactly a cell the engine can run.
var FileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
	GlobalReassign:  true,
	Recursion:       true,
}

// Analyze scans one cell and returns its definition set and its unresolved
// use set (names the cell reads but does not itself bind). A cell that
// fails to parse contributes two empty sets rather than an error, so a
// malformed cell never aborts graph construction for the whole batch.
func Analyze(code string) (defs, uses map[string]bool) {
	c := &collector{
		defs: make(map[string]bool),
		uses: make(map[string]bool),
	}

	f, err := FileOptions.Parse("<cell>", code, 0)
	if err != nil {
		return c.defs, c.uses
	}

	c.stmts(f.Stmts)

	// Unresolved uses: only names the cell does not supply itself are
	// eligible to be satisfied by an earlier cell.
	for name := range c.defs {
		delete(c.uses, name)
	}
	return c.defs, c.uses
}

type collector struct {
	defs map[string]bool
	uses map[string]bool
}

func (c *collector) stmts(stmts []syntax.Stmt) {
	for _, s := range stmts {
		c.stmt(s)
	}
}

func (c *collector) stmt(s syntax.Stmt) {
	switch s := s.(type) {
	case *syntax.AssignStmt:
		// Plain and augmented assignments both bind their target.
		c.target(s.LHS)
		c.expr(s.RHS)
	case *syntax.DefStmt:
		c.defs[s.Name.Name] = true
		c.params(s.Params)
		c.stmts(s.Body)
	case *syntax.LoadStmt:
		// The local binding, which is the alias when one is given.
		for _, to := range s.To {
			c.defs[to.Name] = true
		}
	case *syntax.ExprStmt:
		c.expr(s.X)
	case *syntax.ForStmt:
		// The binding occurrence of the loop variable defines nothing at
		// cell level; reads of it in the body count as uses like any
		// other name.
		c.expr(s.X)
		c.stmts(s.Body)
	case *syntax.WhileStmt:
		c.expr(s.Cond)
		c.stmts(s.Body)
	case *syntax.IfStmt:
		c.expr(s.Cond)
		c.stmts(s.True)
		c.stmts(s.False)
	case *syntax.ReturnStmt:
		if s.Result != nil {
			c.expr(s.Result)
		}
	}
}

// target collects the leaf names bound by an assignment target, recursing
// into tuple/list destructuring. Index and attribute targets do not bind a
// name; the identifiers inside them are reads.
func (c *collector) target(e syntax.Expr) {
	switch e := e.(type) {
	case *syntax.Ident:
		c.defs[e.Name] = true
	case *syntax.TupleExpr:
		for _, elt := range e.List {
			c.target(elt)
		}
	case *syntax.ListExpr:
		for _, elt := range e.List {
			c.target(elt)
		}
	case *syntax.ParenExpr:
		c.target(e.X)
	default:
		c.expr(e)
	}
}

func (c *collector) expr(e syntax.Expr) {
	switch e := e.(type) {
	case *syntax.Ident:
		c.uses[e.Name] = true
	case *syntax.Literal:
		// No names.
	case *syntax.ParenExpr:
		c.expr(e.X)
	case *syntax.UnaryExpr:
		if e.X != nil {
			c.expr(e.X)
		}
	case *syntax.BinaryExpr:
		c.expr(e.X)
		c.expr(e.Y)
	case *syntax.DotExpr:
		// Attribute names are not identifier references.
		c.expr(e.X)
	case *syntax.IndexExpr:
		c.expr(e.X)
		c.expr(e.Y)
	case *syntax.SliceExpr:
		c.expr(e.X)
		for _, part := range []syntax.Expr{e.Lo, e.Hi, e.Step} {
			if part != nil {
				c.expr(part)
			}
		}
	case *syntax.CallExpr:
		c.expr(e.Fn)
		for _, arg := range e.Args {
			// f(name=value): the keyword is a parameter label, not a use.
			if bin, ok := arg.(*syntax.BinaryExpr); ok && bin.Op == syntax.EQ {
				c.expr(bin.Y)
				continue
			}
			c.expr(arg)
		}
	case *syntax.ListExpr:
		for _, elt := range e.List {
			c.expr(elt)
		}
	case *syntax.TupleExpr:
		for _, elt := range e.List {
			c.expr(elt)
		}
	case *syntax.DictExpr:
		for _, entry := range e.List {
			c.expr(entry)
		}
	case *syntax.DictEntry:
		c.expr(e.Key)
		c.expr(e.Value)
	case *syntax.CondExpr:
		c.expr(e.Cond)
		c.expr(e.True)
		c.expr(e.False)
	case *syntax.Comprehension:
		c.expr(e.Body)
		for _, clause := range e.Clauses {
			switch clause := clause.(type) {
			case *syntax.ForClause:
				// Same treatment as ForStmt: the clause variable binds
				// nothing, but the body may read it as a use.
				c.expr(clause.X)
			case *syntax.IfClause:
				c.expr(clause.Cond)
			}
		}
	case *syntax.LambdaExpr:
		c.params(e.Params)
		c.expr(e.Body)
	}
}

// params walks parameter lists. Parameter names never bind at cell level
// (so body reads of them surface as uses); default values are ordinary
// reads.
func (c *collector) params(params []syntax.Expr) {
	for _, p := range params {
		if bin, ok := p.(*syntax.BinaryExpr); ok && bin.Op == syntax.EQ {
			c.expr(bin.Y)
		}
	}
}
