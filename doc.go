/*
Package viewpython turns independently authored notebook cells into a
dependency-ordered, executable workflow.

It infers data dependencies between cells by static name analysis, partitions
the cells into independent execution groups, linearizes each group respecting
dependency order, and executes the group's cells sequentially against a
private shared namespace, capturing output and halting cleanly on the first
fault. Cells are Starlark source; execution is hosted in-process with
notebook-style echoing of a trailing bare expression.

# Concept

The engine is the core of a notebook DAG viewer: the transport layer hands it
an ordered list of cell sources (from a request payload or an uploaded
.ipynb), and it hands back a JSON-shaped graph or run result. The engine
itself holds no state between runs; every run starts from empty namespaces.

# Usage

	package main

	import (
		"fmt"
		"log"

		viewpython "github.com/Pulkit12dhingra/view-python"
	)

	func main() {
		eng := viewpython.New()

		// Infer the dependency graph from cells in authoring order.
		g := eng.BuildGraph([]string{"x = 1", "print(x + 1)"})

		// Run it: each weakly connected component gets a fresh namespace.
		res := eng.RunGraph(g.Nodes, g.Edges)
		if !res.OK {
			log.Fatalf("run failed at %s: %s", res.FailedNode, res.Stdout)
		}
		for _, entry := range res.Logs {
			fmt.Printf("%s> %s", entry.Node, entry.Stdout)
		}
	}
*/
package viewpython
