package notebook_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pulkit12dhingra/view-python/internal/notebook"
)

const sampleNotebook = `{
  "cells": [
    {"cell_type": "markdown", "metadata": {}, "source": ["# Title\n", "Intro text."]},
    {"cell_type": "code", "execution_count": 1, "metadata": {}, "outputs": [],
     "source": ["x = 1\n", "print(x)"]},
    {"cell_type": "code", "execution_count": null, "metadata": {}, "outputs": [],
     "source": "y = x + 1"},
    {"cell_type": "code", "execution_count": null, "metadata": {}, "outputs": [],
     "source": "   \n"},
    {"cell_type": "raw", "metadata": {}, "source": "ignored"}
  ],
  "metadata": {"kernelspec": {"name": "python3"}},
  "nbformat": 4,
  "nbformat_minor": 5
}`

func TestParse(t *testing.T) {
	doc, err := notebook.Parse([]byte(sampleNotebook))
	require.NoError(t, err)

	assert.Equal(t, 4, doc.NBFormat)
	require.Len(t, doc.Cells, 5)
	assert.Equal(t, "markdown", doc.Cells[0].CellType)
	assert.Equal(t, "code", doc.Cells[1].CellType)
}

func TestParse_InvalidJSON(t *testing.T) {
	_, err := notebook.Parse([]byte("{not json"))
	assert.Error(t, err)
}

func TestCell_Text(t *testing.T) {
	doc, err := notebook.Parse([]byte(sampleNotebook))
	require.NoError(t, err)

	// List form joins without separators: lines carry their own newlines.
	assert.Equal(t, "x = 1\nprint(x)", doc.Cells[1].Text())
	// String form passes through.
	assert.Equal(t, "y = x + 1", doc.Cells[2].Text())
}

func TestDocument_CodeCells(t *testing.T) {
	doc, err := notebook.Parse([]byte(sampleNotebook))
	require.NoError(t, err)

	cells := doc.CodeCells()
	// Markdown, raw and blank code cells are all excluded.
	require.Len(t, cells, 2)
	assert.Equal(t, "x = 1\nprint(x)", cells[0])
	assert.Equal(t, "y = x + 1", cells[1])
}

func TestDocument_MarkdownCells(t *testing.T) {
	doc, err := notebook.Parse([]byte(sampleNotebook))
	require.NoError(t, err)

	cells := doc.MarkdownCells()
	require.Len(t, cells, 1)
	assert.Equal(t, "# Title\nIntro text.", cells[0])
}

func TestParse_EmptyNotebook(t *testing.T) {
	doc, err := notebook.Parse([]byte(`{"cells": [], "nbformat": 4}`))
	require.NoError(t, err)
	assert.Empty(t, doc.CodeCells())
	assert.Empty(t, doc.MarkdownCells())
}
