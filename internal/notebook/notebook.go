// Package notebook parses Jupyter notebook (.ipynb, nbformat v4) documents
// and extracts their cell sources.
package notebook

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// Cell is one raw notebook cell. Source is either a single string or a list
// of line strings on disk; use Text to get the joined form.
type Cell struct {
	CellType string         `mapstructure:"cell_type"`
	Source   any            `mapstructure:"source"`
	Metadata map[string]any `mapstructure:"metadata"`
}

// Document is a parsed notebook.
type Document struct {
	Cells    []Cell `mapstructure:"cells"`
	NBFormat int    `mapstructure:"nbformat"`
}

// Parse decodes a notebook document from its JSON bytes.
// The nbformat schema carries plenty of fields we do not care about, so the
// raw JSON is decoded generically first and only the typed view extracted.
func Parse(data []byte) (*Document, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid notebook JSON: %w", err)
	}

	var doc Document
	if err := mapstructure.Decode(raw, &doc); err != nil {
		return nil, fmt.Errorf("unexpected notebook structure: %w", err)
	}

	return &doc, nil
}

// Text returns the cell source with multi-line list form joined.
func (c *Cell) Text() string {
	switch src := c.Source.(type) {
	case string:
		return src
	case []any:
		var sb strings.Builder
		for _, line := range src {
			if s, ok := line.(string); ok {
				sb.WriteString(s)
			}
		}
		return sb.String()
	}
	return ""
}

// CodeCells returns the non-blank code cell sources in cell order.
// Blank cells are dropped here as well, mirroring graph construction.
func (d *Document) CodeCells() []string {
	var cells []string
	for i := range d.Cells {
		if d.Cells[i].CellType != "code" {
			continue
		}
		text := d.Cells[i].Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		cells = append(cells, text)
	}
	return cells
}

// MarkdownCells returns the markdown cell sources in cell order.
func (d *Document) MarkdownCells() []string {
	var cells []string
	for i := range d.Cells {
		if d.Cells[i].CellType == "markdown" {
			cells = append(cells, d.Cells[i].Text())
		}
	}
	return cells
}
