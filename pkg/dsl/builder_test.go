package dsl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	viewpython "github.com/Pulkit12dhingra/view-python"
	"github.com/Pulkit12dhingra/view-python/pkg/dsl"
)

func TestBuilder_Build(t *testing.T) {
	b := dsl.New()
	b.Cell("load").Code("data = [1, 2, 3]")
	b.Cell("total").Code("total = 0\nfor n in data:\n    total += n").
		After("load", "data")

	g, err := b.Build()
	require.NoError(t, err)

	require.Len(t, g.Nodes, 2)
	assert.Equal(t, "load", g.Nodes[0].ID)
	assert.Equal(t, "total", g.Nodes[1].ID)
	require.Len(t, g.Edges, 1)
	assert.Equal(t, "load", g.Edges[0].Source)
	assert.Equal(t, "total", g.Edges[0].Target)
	assert.Equal(t, []string{"data"}, g.Edges[0].Labels)
}

func TestBuilder_CellIsIdempotent(t *testing.T) {
	b := dsl.New()
	b.Cell("a").Code("x = 1")
	b.Cell("a").Label("first")

	g, err := b.Build()
	require.NoError(t, err)
	require.Len(t, g.Nodes, 1)
	assert.Equal(t, "first", g.Nodes[0].Label)
	assert.Equal(t, "x = 1", g.Nodes[0].Code)
}

func TestBuilder_RejectsMissingCode(t *testing.T) {
	b := dsl.New()
	b.Cell("empty")

	_, err := b.Build()
	assert.ErrorContains(t, err, "has no code")
}

func TestBuilder_RejectsUndeclaredDependency(t *testing.T) {
	b := dsl.New()
	b.Cell("a").Code("x = 1").After("ghost")

	_, err := b.Build()
	assert.ErrorContains(t, err, "undeclared")
}

func TestBuilder_RejectsSelfDependency(t *testing.T) {
	b := dsl.New()
	b.Cell("a").Code("x = 1").After("a")

	_, err := b.Build()
	assert.ErrorContains(t, err, "depends on itself")
}

func TestBuilder_GraphRuns(t *testing.T) {
	b := dsl.New()
	// Declared consumer-first: the explicit edge, not declaration order,
	// drives the schedule.
	b.Cell("report").Code("print(total)").After("compute", "total")
	b.Cell("compute").Code("total = 6 * 7")

	g, err := b.Build()
	require.NoError(t, err)

	result := viewpython.New().RunGraph(g.Nodes, g.Edges)
	require.True(t, result.OK)
	require.Len(t, result.Logs, 2)
	assert.Equal(t, "compute", result.Logs[0].Node)
	assert.Equal(t, "42\n", result.Logs[1].Stdout)
}
