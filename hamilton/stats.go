package hamilton

import "github.com/katalvlaran/infotrace/graph"

// Stats returns node and edge counts, density, completeness and strong
// connectivity of g. A nil g is treated as an empty graph.
func Stats(g *graph.Graph) GraphStats {
	if g == nil {
		return GraphStats{IsComplete: true, StronglyConnected: true}
	}

	n, m := g.NodeCount(), g.EdgeCount()
	st := GraphStats{
		Nodes:             n,
		Edges:             m,
		IsComplete:        IsComplete(g),
		StronglyConnected: g.IsStronglyConnected(),
	}
	if n > 1 {
		st.Density = float64(m) / float64(n*(n-1)) * 100
	}

	return st
}

// IsComplete reports whether every ordered pair of distinct nodes is joined
// by an edge. Graphs with fewer than two nodes are trivially complete.
// Complexity: O(V²).
func IsComplete(g *graph.Graph) bool {
	if g == nil {
		return true
	}
	n := g.NodeCount()
	if g.EdgeCount() < n*(n-1) {
		return false
	}

	ids := g.NodeIDs()
	for _, from := range ids {
		for _, to := range ids {
			if from != to && !g.HasEdge(from, to) {
				return false
			}
		}
	}

	return true
}
