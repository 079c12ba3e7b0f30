package hamilton

import (
	"fmt"

	"github.com/katalvlaran/infotrace/graph"
)

// ValidatePath checks whether path is a Hamilton cycle of g. It does not
// search; it accumulates every violation it finds:
//
//   - the path does not end where it starts;
//   - the distinct nodes, ignoring the closing one, do not cover g;
//   - a node other than the closing one repeats (reported once per node);
//   - a node is not in g (reported per occurrence);
//   - a consecutive pair is not a directed edge of g.
//
// An empty path yields a single issue. A nil g is treated as empty.
//
// Complexity: O(len(path) + V + E).
func ValidatePath(path []string, g *graph.Graph) Validation {
	if len(path) == 0 {
		return Validation{
			Message: "Path is empty",
			Issues:  []string{"Path contains no nodes"},
		}
	}
	if g == nil {
		g = graph.NewGraph()
	}

	var issues []string
	first, last := path[0], path[len(path)-1]
	if first != last {
		issues = append(issues, fmt.Sprintf("Path does not form a cycle: starts at %s, ends at %s", first, last))
	}

	unique := make(map[string]int, len(path))
	var repeated []string
	for _, id := range path[:len(path)-1] {
		unique[id]++
		if unique[id] == 2 {
			repeated = append(repeated, id)
		}
	}
	if n := g.NodeCount(); len(unique) != n {
		issues = append(issues, fmt.Sprintf("Path visits %d unique nodes, but graph has %d nodes", len(unique), n))
	}
	for _, id := range repeated {
		issues = append(issues, fmt.Sprintf("Node '%s' is visited more than once", id))
	}

	for _, id := range path {
		if !g.HasNode(id) {
			issues = append(issues, fmt.Sprintf("Node '%s' does not exist in graph", id))
		}
	}

	for i := 0; i+1 < len(path); i++ {
		if !g.HasEdge(path[i], path[i+1]) {
			issues = append(issues, fmt.Sprintf("Edge from '%s' to '%s' does not exist", path[i], path[i+1]))
		}
	}

	if len(issues) == 0 {
		return Validation{
			IsValid: true,
			Message: fmt.Sprintf("Valid Hamilton cycle! All %d nodes visited exactly once.", g.NodeCount()),
			Issues:  []string{},
		}
	}

	plural := ""
	if len(issues) > 1 {
		plural = "s"
	}

	return Validation{
		Message: fmt.Sprintf("Invalid path: %d issue%s found", len(issues), plural),
		Issues:  issues,
	}
}
