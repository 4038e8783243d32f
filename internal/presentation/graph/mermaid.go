// Package graph renders the dependency graph for human consumption.
package graph

import (
	"fmt"
	"strings"

	"github.com/Pulkit12dhingra/view-python/pkg/domain"
)

// Overlay contains dynamic run data to visualize on the graph.
type Overlay struct {
	ExecutedNodes []string
	FailedNode    string
}

// GenerateMermaid produces a Mermaid flowchart from a dependency graph.
// Edge labels carry the shared names that induced the dependency. Overlay
// styles (executed/failed) are applied if provided.
func GenerateMermaid(g domain.Graph, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, node := range g.Nodes {
		safeID := sanitizeMermaidID(node.ID)
		sb.WriteString(fmt.Sprintf("    %s[\"%s\"]\n", safeID, node.Label))
	}

	for _, edge := range g.Edges {
		safeFrom := sanitizeMermaidID(edge.Source)
		safeTo := sanitizeMermaidID(edge.Target)

		arrow := "-->"
		if len(edge.Labels) > 0 {
			// Escape double quotes in the label for Mermaid
			label := strings.ReplaceAll(strings.Join(edge.Labels, ", "), "\"", "'")
			arrow = fmt.Sprintf("-- \"%s\" -->", label)
		}
		sb.WriteString(fmt.Sprintf("    %s %s %s\n", safeFrom, arrow, safeTo))
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text for high-contrast on light backgrounds, regardless of theme
		sb.WriteString("    classDef executed fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef failed fill:#ffcdd2,stroke:#b71c1c,stroke-width:4px,color:#000;\n")

		executedSet := make(map[string]bool)
		for _, id := range overlay.ExecutedNodes {
			safeID := sanitizeMermaidID(id)
			if !executedSet[safeID] && safeID != "" {
				executedSet[safeID] = true
				sb.WriteString(fmt.Sprintf("    class %s executed;\n", safeID))
			}
		}

		if overlay.FailedNode != "" {
			sb.WriteString(fmt.Sprintf("    class %s failed;\n", sanitizeMermaidID(overlay.FailedNode)))
		}
	}

	return sb.String()
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	return s
}
