package graph

import (
	"strings"

	"github.com/Pulkit12dhingra/view-python/pkg/domain"
)

// Segmentation partitions a graph into weakly connected components.
// Components are listed in discovery order; every retained node belongs to
// exactly one of them. Nodes is the filtered lookup by id, with blank-code
// nodes excluded.
type Segmentation struct {
	Components [][]string
	Nodes      map[string]domain.Node
}

// Segment partitions an arbitrary node/edge collection. The input may be
// hand-edited by a caller and thus inconsistent: blank nodes, self-edges,
// edges with a dangling endpoint and duplicate edges are all silently
// dropped rather than rejected.
func Segment(nodes []domain.Node, edges []domain.Edge) *Segmentation {
	seg := &Segmentation{
		Components: [][]string{},
		Nodes:      make(map[string]domain.Node),
	}

	// Node map in input order, blank cells excluded.
	order := make([]string, 0, len(nodes))
	for _, n := range nodes {
		if strings.TrimSpace(n.Code) == "" {
			continue
		}
		if _, ok := seg.Nodes[n.ID]; !ok {
			order = append(order, n.ID)
		}
		seg.Nodes[n.ID] = n
	}

	// Undirected adjacency over the valid, deduplicated edges.
	und := make(map[string][]string)
	seen := make(map[[2]string]bool)
	for _, e := range edges {
		if e.Source == e.Target {
			continue
		}
		if _, ok := seg.Nodes[e.Source]; !ok {
			continue
		}
		if _, ok := seg.Nodes[e.Target]; !ok {
			continue
		}
		pair := [2]string{e.Source, e.Target}
		if seen[pair] {
			continue
		}
		seen[pair] = true
		und[e.Source] = append(und[e.Source], e.Target)
		und[e.Target] = append(und[e.Target], e.Source)
	}

	// Breadth-first traversal from each unvisited node, in node-map order.
	visited := make(map[string]bool)
	for _, start := range order {
		if visited[start] {
			continue
		}
		component := []string{}
		queue := []string{start}
		visited[start] = true
		for len(queue) > 0 {
			id := queue[0]
			queue = queue[1:]
			component = append(component, id)
			for _, next := range und[id] {
				if !visited[next] {
					visited[next] = true
					queue = append(queue, next)
				}
			}
		}
		seg.Components = append(seg.Components, component)
	}

	return seg
}
