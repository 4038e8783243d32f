package dsl

import "github.com/Pulkit12dhingra/view-python/pkg/domain"

// CellBuilder provides a fluent API for configuring a cell.
type CellBuilder struct {
	node    domain.Node
	edges   []domain.Edge
	builder *Builder
}

// Code sets the cell's source text.
func (c *CellBuilder) Code(src string) *CellBuilder {
	c.node.Code = src
	return c
}

// Label sets a human-readable label shown in graph renderings.
// Defaults to the cell id.
func (c *CellBuilder) Label(label string) *CellBuilder {
	c.node.Label = label
	return c
}

// After declares that this cell runs after source, optionally naming the
// variables that flow across the edge (used as edge labels in renderings).
func (c *CellBuilder) After(source string, names ...string) *CellBuilder {
	c.edges = append(c.edges, domain.Edge{
		Source: source,
		Target: c.node.ID,
		Labels: names,
	})
	return c
}

// Build returns the underlying domain.Node.
// This is primarily used by the Builder, but exposed for advanced usage.
func (c *CellBuilder) Build() domain.Node {
	return c.node
}
