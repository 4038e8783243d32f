package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pulkit12dhingra/view-python/internal/graph"
	"github.com/Pulkit12dhingra/view-python/pkg/domain"
)

func node(id, code string) domain.Node {
	return domain.Node{ID: id, Label: id, Code: code}
}

func edge(src, dst string) domain.Edge {
	return domain.Edge{Source: src, Target: dst}
}

func TestSegment_SingleComponent(t *testing.T) {
	seg := graph.Segment(
		[]domain.Node{node("a", "x = 1"), node("b", "y = x")},
		[]domain.Edge{edge("a", "b")},
	)

	require.Len(t, seg.Components, 1)
	assert.Equal(t, []string{"a", "b"}, seg.Components[0])
}

func TestSegment_DisjointComponents(t *testing.T) {
	seg := graph.Segment(
		[]domain.Node{node("a", "x = 1"), node("b", "y = 2"), node("c", "z = x")},
		[]domain.Edge{edge("a", "c")},
	)

	require.Len(t, seg.Components, 2)
	assert.Equal(t, []string{"a", "c"}, seg.Components[0])
	assert.Equal(t, []string{"b"}, seg.Components[1])
}

func TestSegment_WeakConnectivityIgnoresDirection(t *testing.T) {
	// b -> a and b -> c: a, b, c are one component even though no directed
	// path joins a and c.
	seg := graph.Segment(
		[]domain.Node{node("a", "1"), node("b", "2"), node("c", "3")},
		[]domain.Edge{edge("b", "a"), edge("b", "c")},
	)

	require.Len(t, seg.Components, 1)
	assert.ElementsMatch(t, []string{"a", "b", "c"}, seg.Components[0])
}

func TestSegment_PartitionInvariant(t *testing.T) {
	nodes := []domain.Node{
		node("a", "1"), node("b", "2"), node("c", "3"), node("d", "4"),
	}
	seg := graph.Segment(nodes, []domain.Edge{edge("a", "b"), edge("c", "d")})

	seenIDs := map[string]int{}
	for _, component := range seg.Components {
		for _, id := range component {
			seenIDs[id]++
		}
	}
	require.Len(t, seenIDs, len(nodes))
	for id, count := range seenIDs {
		assert.Equalf(t, 1, count, "node %s assigned to %d components", id, count)
	}
}

func TestSegment_DropsBlankNodes(t *testing.T) {
	seg := graph.Segment(
		[]domain.Node{node("a", "x = 1"), node("blank", "   \n")},
		nil,
	)

	require.Len(t, seg.Components, 1)
	assert.Equal(t, []string{"a"}, seg.Components[0])
	assert.NotContains(t, seg.Nodes, "blank")
}

func TestSegment_DropsInvalidEdges(t *testing.T) {
	seg := graph.Segment(
		[]domain.Node{node("a", "1"), node("b", "2")},
		[]domain.Edge{
			edge("a", "a"),     // self-edge
			edge("a", "ghost"), // dangling target
			edge("ghost", "b"), // dangling source
		},
	)

	// None of the edges survive, so a and b stay separate.
	require.Len(t, seg.Components, 2)
}

func TestSegment_DuplicateEdgesCollapse(t *testing.T) {
	seg := graph.Segment(
		[]domain.Node{node("a", "1"), node("b", "2")},
		[]domain.Edge{edge("a", "b"), edge("a", "b"), edge("a", "b")},
	)

	require.Len(t, seg.Components, 1)
	assert.Equal(t, []string{"a", "b"}, seg.Components[0])
}

func TestSegment_DiscoveryOrderFollowsInput(t *testing.T) {
	seg := graph.Segment(
		[]domain.Node{node("z", "1"), node("m", "2"), node("a", "3")},
		nil,
	)

	require.Len(t, seg.Components, 3)
	assert.Equal(t, []string{"z"}, seg.Components[0])
	assert.Equal(t, []string{"m"}, seg.Components[1])
	assert.Equal(t, []string{"a"}, seg.Components[2])
}

func TestSegment_Empty(t *testing.T) {
	seg := graph.Segment(nil, nil)
	assert.Empty(t, seg.Components)
	assert.Empty(t, seg.Nodes)
}
