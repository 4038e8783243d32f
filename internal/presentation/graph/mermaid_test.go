package graph_test

import (
	"strings"
	"testing"

	"github.com/Pulkit12dhingra/view-python/internal/presentation/graph"
	"github.com/Pulkit12dhingra/view-python/pkg/domain"
)

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name     string
		g        domain.Graph
		overlay  *graph.Overlay
		contains []string
	}{
		{
			name: "Nodes and Labeled Edge",
			g: domain.Graph{
				Nodes: []domain.Node{
					{ID: "cell-1", Label: "Cell 1"},
					{ID: "cell-2", Label: "Cell 2"},
				},
				Edges: []domain.Edge{
					{Source: "cell-1", Target: "cell-2", Labels: []string{"x", "y"}},
				},
			},
			contains: []string{
				"graph TD",
				"cell_1[\"Cell 1\"]",
				"cell_2[\"Cell 2\"]",
				"cell_1 -- \"x, y\" --> cell_2",
			},
		},
		{
			name: "Unlabeled Edge",
			g: domain.Graph{
				Nodes: []domain.Node{
					{ID: "a", Label: "a"},
					{ID: "b", Label: "b"},
				},
				Edges: []domain.Edge{{Source: "a", Target: "b"}},
			},
			contains: []string{
				"a --> b",
			},
		},
		{
			name: "ID Sanitization",
			g: domain.Graph{
				Nodes: []domain.Node{{ID: "path/to.cell-3", Label: "odd"}},
			},
			contains: []string{
				"path_to_cell_3[\"odd\"]",
			},
		},
		{
			name: "Overlay Styles",
			g: domain.Graph{
				Nodes: []domain.Node{
					{ID: "cell-1", Label: "Cell 1"},
					{ID: "cell-2", Label: "Cell 2"},
				},
			},
			overlay: &graph.Overlay{
				ExecutedNodes: []string{"cell-1", "cell-1"},
				FailedNode:    "cell-2",
			},
			contains: []string{
				"classDef executed",
				"classDef failed",
				"class cell_1 executed;",
				"class cell_2 failed;",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := graph.GenerateMermaid(tt.g, tt.overlay)
			for _, want := range tt.contains {
				if !strings.Contains(out, want) {
					t.Errorf("expected output to contain %q, got:\n%s", want, out)
				}
			}
		})
	}
}

func TestGenerateMermaid_DuplicateOverlayEntriesCollapse(t *testing.T) {
	g := domain.Graph{Nodes: []domain.Node{{ID: "cell-1", Label: "Cell 1"}}}
	out := graph.GenerateMermaid(g, &graph.Overlay{ExecutedNodes: []string{"cell-1", "cell-1"}})

	if got := strings.Count(out, "class cell_1 executed;"); got != 1 {
		t.Errorf("expected one executed class line, got %d:\n%s", got, out)
	}
}
