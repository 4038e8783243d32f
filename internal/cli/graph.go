package cli

import (
	"encoding/json"
	"fmt"
	"os"

	viewpython "github.com/Pulkit12dhingra/view-python"
	graphview "github.com/Pulkit12dhingra/view-python/internal/presentation/graph"
)

// GraphOptions contains the configuration for the graph command.
type GraphOptions struct {
	Path   string
	Format string // "json" or "mermaid"
	Debug  bool
}

// Graph builds the dependency graph for a notebook and prints it.
func Graph(opts GraphOptions) error {
	logger := newLogger(opts.Debug)
	engine := viewpython.New(viewpython.WithLogger(logger))

	cells, _, err := loadCells(opts.Path)
	if err != nil {
		return err
	}

	g := engine.BuildGraph(cells)

	switch opts.Format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(g)
	case "mermaid":
		fmt.Print(graphview.GenerateMermaid(g, nil))
		return nil
	default:
		return fmt.Errorf("unknown format %q (expected json or mermaid)", opts.Format)
	}
}
