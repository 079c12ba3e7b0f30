// SPDX-License-Identifier: MIT
// Package: infotrace/graph
//
// methods.go — node and edge management, queries and cloning.

package graph

import (
	"github.com/google/uuid"

	"github.com/katalvlaran/infotrace/validation"
)

const (
	opAddNode    = "graph.AddNode"
	opRemoveNode = "graph.RemoveNode"
	opAddEdge    = "graph.AddEdge"
	opRemoveEdge = "graph.RemoveEdge"
)

// New builds a graph from plain node and edge slices, in order.
// Nodes with an empty Label get their ID as label; edges with an empty ID
// get a generated one. The first failing insertion aborts construction.
func New(nodes []Node, edges []Edge) (*Graph, error) {
	g := NewGraph()
	for _, n := range nodes {
		if err := g.AddNode(n.ID, WithLabel(n.Label), WithPosition(n.Position.X, n.Position.Y)); err != nil {
			return nil, err
		}
	}
	for _, e := range edges {
		var opts []EdgeOption
		if e.ID != "" {
			opts = append(opts, WithEdgeID(e.ID))
		}
		if _, err := g.AddEdge(e.From, e.To, opts...); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// lazyInit allocates the lookup maps of a zero-value Graph.
func (g *Graph) lazyInit() {
	if g.index == nil {
		g.index = make(map[string]int)
		g.edgeIDs = make(map[string]struct{})
		g.pairs = make(map[[2]string]string)
	}
}

// AddNode appends a node. Returns ErrEmptyNodeID or ErrDuplicateNode.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id string, opts ...NodeOption) error {
	if id == "" {
		return validation.New(opAddNode, ErrEmptyNodeID)
	}
	if _, exists := g.index[id]; exists {
		return validation.Newf(opAddNode, ErrDuplicateNode, "%q", id)
	}
	g.lazyInit()

	n := Node{ID: id}
	for _, opt := range opts {
		opt(&n)
	}
	if n.Label == "" {
		n.Label = id
	}
	g.index[id] = len(g.nodes)
	g.nodes = append(g.nodes, n)

	return nil
}

// RemoveNode deletes the node and prunes every edge that touches it.
// Complexity: O(V + E).
func (g *Graph) RemoveNode(id string) error {
	pos, ok := g.index[id]
	if !ok {
		return validation.Newf(opRemoveNode, ErrNodeNotFound, "%q", id)
	}

	// drop the node and reindex the tail
	g.nodes = append(g.nodes[:pos], g.nodes[pos+1:]...)
	delete(g.index, id)
	for i := pos; i < len(g.nodes); i++ {
		g.index[g.nodes[i].ID] = i
	}

	// prune dangling edges, keeping the order of the survivors
	kept := g.edges[:0]
	for _, e := range g.edges {
		if e.From == id || e.To == id {
			delete(g.edgeIDs, e.ID)
			delete(g.pairs, [2]string{e.From, e.To})
			continue
		}
		kept = append(kept, e)
	}
	g.edges = kept

	return nil
}

// AddEdge appends a directed edge and returns its ID, a random UUID unless
// WithEdgeID is given. Both endpoints must exist.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, opts ...EdgeOption) (string, error) {
	if from == "" || to == "" {
		return "", validation.New(opAddEdge, ErrEmptyNodeID)
	}
	if !g.HasNode(from) {
		return "", validation.Newf(opAddEdge, ErrNodeNotFound, "%q", from)
	}
	if !g.HasNode(to) {
		return "", validation.Newf(opAddEdge, ErrNodeNotFound, "%q", to)
	}
	if from == to {
		return "", validation.Newf(opAddEdge, ErrLoopNotAllowed, "%q", from)
	}
	pair := [2]string{from, to}
	if _, dup := g.pairs[pair]; dup {
		return "", validation.Newf(opAddEdge, ErrDuplicateEdge, "%s→%s", from, to)
	}

	e := Edge{From: from, To: to}
	for _, opt := range opts {
		opt(&e)
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if _, dup := g.edgeIDs[e.ID]; dup {
		return "", validation.Newf(opAddEdge, ErrDuplicateEdgeID, "%q", e.ID)
	}

	g.edges = append(g.edges, e)
	g.edgeIDs[e.ID] = struct{}{}
	g.pairs[pair] = e.ID

	return e.ID, nil
}

// RemoveEdge deletes the edge with the given ID.
// Complexity: O(E).
func (g *Graph) RemoveEdge(id string) error {
	if _, ok := g.edgeIDs[id]; !ok {
		return validation.Newf(opRemoveEdge, ErrEdgeNotFound, "%q", id)
	}
	for i, e := range g.edges {
		if e.ID == id {
			g.edges = append(g.edges[:i], g.edges[i+1:]...)
			delete(g.edgeIDs, id)
			delete(g.pairs, [2]string{e.From, e.To})
			break
		}
	}

	return nil
}

// HasNode reports whether id is a node of g.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.index[id]

	return ok
}

// HasEdge reports whether the directed edge from→to exists.
func (g *Graph) HasEdge(from, to string) bool {
	_, ok := g.pairs[[2]string{from, to}]

	return ok
}

// Neighbors returns the targets of edges leaving id, in edge order.
// Complexity: O(E).
func (g *Graph) Neighbors(id string) []string {
	var out []string
	for _, e := range g.edges {
		if e.From == id {
			out = append(out, e.To)
		}
	}

	return out
}

// Adjacency returns every node's out-neighbors in edge order. Nodes without
// outgoing edges map to an empty slice.
// Complexity: O(V + E).
func (g *Graph) Adjacency() map[string][]string {
	adj := make(map[string][]string, len(g.nodes))
	for _, n := range g.nodes {
		adj[n.ID] = []string{}
	}
	for _, e := range g.edges {
		adj[e.From] = append(adj[e.From], e.To)
	}

	return adj
}

// Nodes returns a copy of the nodes in insertion order.
func (g *Graph) Nodes() []Node {
	return append([]Node(nil), g.nodes...)
}

// NodeIDs returns the node IDs in insertion order.
func (g *Graph) NodeIDs() []string {
	ids := make([]string, len(g.nodes))
	for i, n := range g.nodes {
		ids[i] = n.ID
	}

	return ids
}

// Edges returns a copy of the edges in insertion order.
func (g *Graph) Edges() []Edge {
	return append([]Edge(nil), g.edges...)
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Clone returns an independent deep copy of g.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	c := NewGraph()
	c.nodes = g.Nodes()
	c.edges = g.Edges()
	for id, i := range g.index {
		c.index[id] = i
	}
	for id := range g.edgeIDs {
		c.edgeIDs[id] = struct{}{}
	}
	for p, id := range g.pairs {
		c.pairs[p] = id
	}

	return c
}
