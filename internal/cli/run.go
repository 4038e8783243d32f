package cli

import (
	"encoding/json"
	"fmt"
	"os"

	viewpython "github.com/Pulkit12dhingra/view-python"
	"github.com/Pulkit12dhingra/view-python/internal/presentation/tui"
)

// RunOptions contains the configuration for the run command.
type RunOptions struct {
	Path   string
	Linear bool // execute in authoring order instead of graph order
	JSON   bool // machine-readable output on stdout
	Debug  bool
}

// Run executes a notebook or cell script and prints the logs.
func Run(opts RunOptions) error {
	logger := newLogger(opts.Debug)
	engine := viewpython.New(viewpython.WithLogger(logger))

	cells, markdown, err := loadCells(opts.Path)
	if err != nil {
		return err
	}

	if opts.JSON {
		return runJSON(engine, cells, opts.Linear)
	}

	tui.PrintBanner(viewpython.Version)

	// Show the notebook's prose before the run output, like opening the
	// notebook itself.
	if len(markdown) > 0 {
		render := tui.NewRenderer()
		for _, md := range markdown {
			if out, err := render(md); err == nil {
				fmt.Print(out)
			}
		}
	}

	if opts.Linear {
		res := engine.RunCells(cells)
		for _, entry := range res.Logs {
			printCell(entry.Cell, entry.Stdout)
		}
		if !res.OK {
			printCell(res.FailedCell, res.Stdout)
			return fmt.Errorf("run failed at %s", res.FailedCell)
		}
		return nil
	}

	g := engine.BuildGraph(cells)
	res := engine.RunGraph(g.Nodes, g.Edges)
	for _, entry := range res.Logs {
		printCell(fmt.Sprintf("%s (component %d)", entry.Node, entry.Component), entry.Stdout)
	}
	if !res.OK {
		printCell(res.FailedNode, res.Stdout)
		return fmt.Errorf("run failed at %s", res.FailedNode)
	}
	return nil
}

func runJSON(engine *viewpython.Engine, cells []string, linear bool) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	if linear {
		return enc.Encode(engine.RunCells(cells))
	}
	g := engine.BuildGraph(cells)
	return enc.Encode(engine.RunGraph(g.Nodes, g.Edges))
}

func printCell(id, stdout string) {
	fmt.Printf("--- %s ---\n", id)
	if stdout != "" {
		fmt.Print(stdout)
	}
}
