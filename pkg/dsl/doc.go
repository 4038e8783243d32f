/*
Package dsl provides a fluent Go builder for constructing notebook
dependency graphs programmatically.

The HTTP API accepts user-edited graphs, and Go callers embedding the
engine often want the same power without hand-assembling node and edge
slices. The builder gives them a type-checked way to do it, which is
also convenient in tests and for dynamically generated workloads.

Example usage:

	package main

	import (
		viewpython "github.com/Pulkit12dhingra/view-python"
		"github.com/Pulkit12dhingra/view-python/pkg/dsl"
	)

	func main() {
		b := dsl.New()

		b.Cell("load").Code("data = [1, 2, 3]")
		b.Cell("total").Code("total = 0\nfor n in data:\n    total += n").
			After("load", "data")
		b.Cell("report").Code("print(total)").
			After("total", "total")

		g, err := b.Build()
		if err != nil {
			panic(err)
		}

		engine := viewpython.New()
		result := engine.RunGraph(g.Nodes, g.Edges)
		_ = result
	}

Explicit edges declared with After are authoritative: Build does not run
name analysis, so the caller decides the dependency structure, exactly
like submitting an edited graph over the API.
*/
package dsl
