package dsl

import (
	"fmt"

	"github.com/Pulkit12dhingra/view-python/pkg/domain"
)

// Builder manages the graph construction.
type Builder struct {
	order []string
	cells map[string]*CellBuilder
}

// New creates a new graph builder.
func New() *Builder {
	return &Builder{
		cells: make(map[string]*CellBuilder),
	}
}

// Cell creates a new cell in the graph.
// If the cell already exists, it returns the existing builder.
func (b *Builder) Cell(id string) *CellBuilder {
	if cb, ok := b.cells[id]; ok {
		return cb
	}
	cb := &CellBuilder{
		node: domain.Node{
			ID:    id,
			Label: id,
		},
		builder: b,
	}
	b.order = append(b.order, id)
	b.cells[id] = cb
	return cb
}

// Build compiles the declared cells and edges into a graph.
// Cells keep their declaration order. Every edge must reference declared
// cells and must not be a self-edge; the runtime would silently drop such
// edges, so the builder rejects them up front instead.
func (b *Builder) Build() (domain.Graph, error) {
	g := domain.Graph{
		Nodes: make([]domain.Node, 0, len(b.order)),
		Edges: []domain.Edge{},
	}

	for _, id := range b.order {
		cb := b.cells[id]
		if cb.node.Code == "" {
			return domain.Graph{}, fmt.Errorf("cell %q has no code", id)
		}
		g.Nodes = append(g.Nodes, cb.node)
	}

	for _, id := range b.order {
		for _, e := range b.cells[id].edges {
			if e.Source == e.Target {
				return domain.Graph{}, fmt.Errorf("cell %q depends on itself", id)
			}
			if _, ok := b.cells[e.Source]; !ok {
				return domain.Graph{}, fmt.Errorf("cell %q depends on undeclared cell %q", id, e.Source)
			}
			g.Edges = append(g.Edges, e)
		}
	}

	return g, nil
}
