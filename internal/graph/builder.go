// Package graph builds, partitions and linearizes the cell dependency graph.
package graph

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Pulkit12dhingra/view-python/internal/analyzer"
	"github.com/Pulkit12dhingra/view-python/pkg/domain"
)

// Build infers a dependency graph from cell sources in authoring order.
// Blank and whitespace-only cells are dropped before numbering, so node ids
// are exactly cell-1..cell-n over the retained cells.
//
// An edge i -> j exists when cell i defines a name that cell j reads but
// does not define itself. The direction is fixed: a later definition never
// satisfies an earlier cell's use. Pure function of its input.
func Build(cells []string) domain.Graph {
	filtered := make([]string, 0, len(cells))
	for _, code := range cells {
		if strings.TrimSpace(code) != "" {
			filtered = append(filtered, code)
		}
	}

	defs := make([]map[string]bool, len(filtered))
	uses := make([]map[string]bool, len(filtered))
	for i, code := range filtered {
		defs[i], uses[i] = analyzer.Analyze(code)
	}

	g := domain.Graph{
		Nodes: make([]domain.Node, len(filtered)),
		Edges: []domain.Edge{},
	}
	for i, code := range filtered {
		g.Nodes[i] = domain.Node{
			ID:    fmt.Sprintf("cell-%d", i+1),
			Label: fmt.Sprintf("Cell %d", i+1),
			Code:  code,
		}
	}

	for i := range filtered {
		for j := i + 1; j < len(filtered); j++ {
			shared := sharedNames(defs[i], uses[j])
			if len(shared) == 0 {
				continue
			}
			g.Edges = append(g.Edges, domain.Edge{
				Source: g.Nodes[i].ID,
				Target: g.Nodes[j].ID,
				Labels: shared,
			})
		}
	}

	return g
}

// sharedNames returns the sorted intersection of a definition set and an
// unresolved-use set.
func sharedNames(defs, uses map[string]bool) []string {
	var shared []string
	for name := range defs {
		if uses[name] {
			shared = append(shared, name)
		}
	}
	sort.Strings(shared)
	return shared
}
