package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/infotrace/graph"
	"github.com/katalvlaran/infotrace/validation"
)

func TestReachable_BreadthFirstOrder(t *testing.T) {
	g, err := graph.New(
		[]graph.Node{{ID: "A"}, {ID: "B"}, {ID: "C"}, {ID: "D"}, {ID: "E"}},
		[]graph.Edge{{From: "A", To: "C"}, {From: "A", To: "B"}, {From: "C", To: "D"}, {From: "E", To: "A"}},
	)
	require.NoError(t, err)

	got, err := g.Reachable("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "B", "D"}, got)

	got, err = g.Reachable("D")
	require.NoError(t, err)
	assert.Equal(t, []string{"D"}, got)

	_, err = g.Reachable("Z")
	assert.ErrorIs(t, err, graph.ErrNodeNotFound)
	assert.True(t, validation.Is(err))
}

func TestIsStronglyConnected(t *testing.T) {
	ring, err := graph.Cycle(5, nil)
	require.NoError(t, err)
	assert.True(t, ring.IsStronglyConnected())

	chain, err := graph.Path(5, nil)
	require.NoError(t, err)
	assert.False(t, chain.IsStronglyConnected(), "forward reach only")

	// every node reaches A but A reaches nothing
	star, err := graph.New(
		[]graph.Node{{ID: "A"}, {ID: "B"}, {ID: "C"}},
		[]graph.Edge{{From: "B", To: "A"}, {From: "C", To: "A"}},
	)
	require.NoError(t, err)
	assert.False(t, star.IsStronglyConnected())

	assert.True(t, graph.NewGraph().IsStronglyConnected())
}
