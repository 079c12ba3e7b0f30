package graph_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/infotrace/graph"
	"github.com/katalvlaran/infotrace/validation"
)

type GraphSuite struct {
	suite.Suite
	g *graph.Graph
}

func (s *GraphSuite) SetupTest() {
	s.g = graph.NewGraph()
	for _, id := range []string{"A", "B", "C", "D"} {
		s.Require().NoError(s.g.AddNode(id))
	}
}

func (s *GraphSuite) TestAddNodeRejectsEmptyAndDuplicate() {
	err := s.g.AddNode("")
	s.ErrorIs(err, graph.ErrEmptyNodeID)
	s.True(validation.Is(err))

	s.ErrorIs(s.g.AddNode("A"), graph.ErrDuplicateNode)
	s.Equal(4, s.g.NodeCount())
}

func (s *GraphSuite) TestNodeOptions() {
	s.Require().NoError(s.g.AddNode("E", graph.WithLabel("east"), graph.WithPosition(3, 4)))
	nodes := s.g.Nodes()
	last := nodes[len(nodes)-1]
	s.Equal(graph.Node{ID: "E", Label: "east", Position: graph.Point{X: 3, Y: 4}}, last)
	s.Equal("A", nodes[0].Label, "label defaults to ID")
}

func (s *GraphSuite) TestAddEdgeGeneratesUUID() {
	id, err := s.g.AddEdge("A", "B")
	s.Require().NoError(err)
	_, perr := uuid.Parse(id)
	s.NoError(perr)
	s.True(s.g.HasEdge("A", "B"))
	s.False(s.g.HasEdge("B", "A"), "edges are directed")
}

func (s *GraphSuite) TestAddEdgeRejections() {
	_, err := s.g.AddEdge("A", "Z")
	s.ErrorIs(err, graph.ErrNodeNotFound)

	_, err = s.g.AddEdge("A", "A")
	s.ErrorIs(err, graph.ErrLoopNotAllowed)

	_, err = s.g.AddEdge("", "A")
	s.ErrorIs(err, graph.ErrEmptyNodeID)

	_, err = s.g.AddEdge("A", "B", graph.WithEdgeID("ab"))
	s.Require().NoError(err)
	_, err = s.g.AddEdge("A", "B")
	s.ErrorIs(err, graph.ErrDuplicateEdge)
	_, err = s.g.AddEdge("B", "C", graph.WithEdgeID("ab"))
	s.ErrorIs(err, graph.ErrDuplicateEdgeID)
	s.Equal(1, s.g.EdgeCount())
}

func (s *GraphSuite) TestNeighborsFollowEdgeOrder() {
	for _, to := range []string{"D", "B", "C"} {
		_, err := s.g.AddEdge("A", to)
		s.Require().NoError(err)
	}
	s.Equal([]string{"D", "B", "C"}, s.g.Neighbors("A"))
	s.Empty(s.g.Neighbors("B"))

	adj := s.g.Adjacency()
	s.Equal([]string{"D", "B", "C"}, adj["A"])
	s.NotNil(adj["B"])
	s.Empty(adj["B"])
}

func (s *GraphSuite) TestRemoveNodePrunesDanglingEdges() {
	_, _ = s.g.AddEdge("A", "B")
	_, _ = s.g.AddEdge("B", "C")
	_, _ = s.g.AddEdge("C", "A")
	_, _ = s.g.AddEdge("C", "D")

	s.Require().NoError(s.g.RemoveNode("B"))
	s.False(s.g.HasNode("B"))
	s.Equal([]string{"A", "C", "D"}, s.g.NodeIDs())
	s.Equal(2, s.g.EdgeCount())
	for _, e := range s.g.Edges() {
		s.NotEqual("B", e.From)
		s.NotEqual("B", e.To)
	}
	s.True(s.g.HasEdge("C", "A"))

	// positions of later nodes are reindexed after a removal
	s.Require().NoError(s.g.RemoveNode("D"))
	s.Equal([]string{"A", "C"}, s.g.NodeIDs())

	s.ErrorIs(s.g.RemoveNode("B"), graph.ErrNodeNotFound)
}

func (s *GraphSuite) TestRemoveEdge() {
	id, err := s.g.AddEdge("A", "B")
	s.Require().NoError(err)
	s.Require().NoError(s.g.RemoveEdge(id))
	s.False(s.g.HasEdge("A", "B"))
	s.ErrorIs(s.g.RemoveEdge(id), graph.ErrEdgeNotFound)

	// the pair is free again
	_, err = s.g.AddEdge("A", "B")
	s.NoError(err)
}

func (s *GraphSuite) TestCloneIsIndependent() {
	_, _ = s.g.AddEdge("A", "B")
	c := s.g.Clone()
	s.Require().NoError(c.RemoveNode("A"))
	_, err := c.AddEdge("B", "C")
	s.Require().NoError(err)

	s.True(s.g.HasNode("A"))
	s.True(s.g.HasEdge("A", "B"))
	s.False(s.g.HasEdge("B", "C"))
	s.Equal(4, s.g.NodeCount())
	s.Equal(3, c.NodeCount())
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

func TestNew(t *testing.T) {
	g, err := graph.New(
		[]graph.Node{{ID: "A"}, {ID: "B", Label: "bee"}},
		[]graph.Edge{{ID: "e1", From: "A", To: "B"}, {From: "B", To: "A"}},
	)
	require.NoError(t, err)
	assert.Equal(t, 2, g.NodeCount())
	edges := g.Edges()
	require.Len(t, edges, 2)
	assert.Equal(t, "e1", edges[0].ID)
	assert.NotEmpty(t, edges[1].ID)
	assert.Equal(t, "bee", g.Nodes()[1].Label)

	_, err = graph.New([]graph.Node{{ID: "A"}, {ID: "A"}}, nil)
	assert.ErrorIs(t, err, graph.ErrDuplicateNode)

	_, err = graph.New([]graph.Node{{ID: "A"}}, []graph.Edge{{From: "A", To: "B"}})
	assert.ErrorIs(t, err, graph.ErrNodeNotFound)
}

func TestWithEdgeID_PanicsOnEmpty(t *testing.T) {
	assert.Panics(t, func() { graph.WithEdgeID("") })
}

func TestZeroValueGraph(t *testing.T) {
	var g graph.Graph
	assert.False(t, g.HasNode("A"))
	assert.ErrorIs(t, g.RemoveNode("A"), graph.ErrNodeNotFound)

	require.NoError(t, g.AddNode("A"))
	require.NoError(t, g.AddNode("B"))
	_, err := g.AddEdge("A", "B", graph.WithEdgeID("ab"))
	require.NoError(t, err)
	assert.True(t, g.HasEdge("A", "B"))
	assert.Equal(t, []string{"B"}, g.Neighbors("A"))
}
