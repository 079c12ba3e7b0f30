// SPDX-License-Identifier: MIT
// Package: infotrace/graph
//
// reach.go — breadth-first reachability and strong connectivity.
//
// A directed graph with a Hamilton cycle is strongly connected, so
// IsStronglyConnected is a cheap necessary condition ahead of the
// factorial search.

package graph

import "github.com/katalvlaran/infotrace/validation"

const opReachable = "graph.Reachable"

// walker holds the mutable state of one breadth-first pass.
type walker struct {
	adj     map[string][]string
	queue   []string
	visited map[string]bool
	order   []string
}

func (w *walker) enqueue(id string) {
	w.visited[id] = true
	w.queue = append(w.queue, id)
}

// loop drains the queue, visiting neighbors in adjacency order.
func (w *walker) loop() {
	for len(w.queue) > 0 {
		id := w.queue[0]
		w.queue = w.queue[1:]
		w.order = append(w.order, id)
		for _, nbr := range w.adj[id] {
			if !w.visited[nbr] {
				w.enqueue(nbr)
			}
		}
	}
}

func walk(adj map[string][]string, start string) []string {
	w := &walker{
		adj:     adj,
		queue:   make([]string, 0, len(adj)),
		visited: make(map[string]bool, len(adj)),
	}
	w.enqueue(start)
	w.loop()

	return w.order
}

// Reachable returns every node reachable from start along edge direction,
// start first, in breadth-first order. Returns ErrNodeNotFound for an
// unknown start.
// Complexity: O(V + E).
func (g *Graph) Reachable(start string) ([]string, error) {
	if !g.HasNode(start) {
		return nil, validation.Newf(opReachable, ErrNodeNotFound, "%q", start)
	}

	return walk(g.Adjacency(), start), nil
}

// IsStronglyConnected reports whether every node reaches every other node.
// The empty graph and single nodes are strongly connected.
// Complexity: O(V + E).
func (g *Graph) IsStronglyConnected() bool {
	if len(g.nodes) < 2 {
		return true
	}
	start := g.nodes[0].ID
	if len(walk(g.Adjacency(), start)) != len(g.nodes) {
		return false
	}

	reverse := make(map[string][]string, len(g.nodes))
	for _, e := range g.edges {
		reverse[e.To] = append(reverse[e.To], e.From)
	}

	return len(walk(reverse, start)) == len(g.nodes)
}
