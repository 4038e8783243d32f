// Package cli contains the command logic behind the viewpython binary.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/Pulkit12dhingra/view-python/internal/logging"
	"github.com/Pulkit12dhingra/view-python/internal/notebook"
)

// newLogger creates the standard CLI logger.
func newLogger(debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return logging.New(level)
}

// loadCells reads cell sources from a file. A .ipynb is parsed as a
// notebook (markdown cells returned separately for rendering); any other
// file is treated as a script whose cells are separated by "# %%" markers,
// the convention editors use for script-style notebooks.
func loadCells(path string) (code, markdown []string, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if strings.HasSuffix(path, ".ipynb") {
		doc, err := notebook.Parse(data)
		if err != nil {
			return nil, nil, err
		}
		return doc.CodeCells(), doc.MarkdownCells(), nil
	}

	return splitScriptCells(string(data)), nil, nil
}

// splitScriptCells splits a script on "# %%" cell markers. A script with no
// markers is one cell.
func splitScriptCells(src string) []string {
	var cells []string
	var current []string

	flush := func() {
		cell := strings.Join(current, "\n")
		if strings.TrimSpace(cell) != "" {
			cells = append(cells, cell)
		}
		current = current[:0]
	}

	for _, line := range strings.Split(src, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "# %%") {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()

	return cells
}
