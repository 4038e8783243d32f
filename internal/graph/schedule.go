package graph

import (
	"github.com/Pulkit12dhingra/view-python/pkg/domain"
)

// Schedule is the linearization of one component.
// Order is always a full permutation of the component's node ids. When the
// component contains a cycle, Residual lists the nodes that could not be
// placed by dependency order; they are appended to Order in their original
// component order, so the linearization is best-effort rather than strict
// past the cyclic subset.
type Schedule struct {
	Order    []string
	Edges    []domain.Edge
	Residual []string
}

// Order linearizes a component with Kahn's algorithm, restricted to edges
// internal to the component. Self-edges and duplicate directed pairs are
// ignored; ties break in component-list order.
func Order(component []string, edges []domain.Edge) Schedule {
	member := make(map[string]bool, len(component))
	inDegree := make(map[string]int, len(component))
	for _, id := range component {
		member[id] = true
		inDegree[id] = 0
	}

	adj := make(map[string][]string)
	seen := make(map[[2]string]bool)
	internal := []domain.Edge{}
	for _, e := range edges {
		if e.Source == e.Target || !member[e.Source] || !member[e.Target] {
			continue
		}
		pair := [2]string{e.Source, e.Target}
		if seen[pair] {
			continue
		}
		seen[pair] = true
		internal = append(internal, e)
		adj[e.Source] = append(adj[e.Source], e.Target)
		inDegree[e.Target]++
	}

	queue := []string{}
	for _, id := range component {
		if inDegree[id] == 0 {
			queue = append(queue, id)
		}
	}

	order := make([]string, 0, len(component))
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		order = append(order, id)
		for _, next := range adj[id] {
			inDegree[next]--
			if inDegree[next] == 0 {
				queue = append(queue, next)
			}
		}
	}

	// Cycle tolerance: whatever Kahn could not place still has positive
	// in-degree. Append those nodes in component order so the result is a
	// complete permutation and the run can proceed.
	var residual []string
	if len(order) < len(component) {
		placed := make(map[string]bool, len(order))
		for _, id := range order {
			placed[id] = true
		}
		for _, id := range component {
			if !placed[id] {
				residual = append(residual, id)
				order = append(order, id)
			}
		}
	}

	return Schedule{Order: order, Edges: internal, Residual: residual}
}
