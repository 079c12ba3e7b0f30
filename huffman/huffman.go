package huffman

import (
	"container/heap"
	"fmt"
	"sort"

	"github.com/katalvlaran/infotrace/alphabet"
	"github.com/katalvlaran/infotrace/trace"
)

const (
	opBuild    = "huffman.Build"
	minSymbols = 2
)

// Build constructs the Huffman tree for a and extracts a code per symbol.
// a must hold at least two valid symbols; weights need not be normalised.
//
// Returns a *validation.Error wrapping an alphabet sentinel on bad input;
// no steps are produced in that case.
func Build(a alphabet.Alphabet, opts ...Option) (Result, error) {
	if err := alphabet.Validate(opBuild, a, minSymbols); err != nil {
		return Result{}, err
	}

	cfg := options{floor: alphabet.DefaultFloor}
	for _, opt := range opts {
		opt(&cfg)
	}
	norm := alphabet.Normalize(a, cfg.floor)

	var (
		tree  = Tree{Nodes: make([]Node, 0, 2*len(norm)-1)}
		steps = make([]Step, 0, 2*len(norm)-1)
		q     = make(nodeQueue, 0, len(norm))
	)

	// 1) One leaf per symbol, in input order.
	for _, s := range norm {
		id := len(tree.Nodes)
		tree.Nodes = append(tree.Nodes, Node{ID: id, Char: s.Char, Weight: s.Probability, Left: NoChild, Right: NoChild})
		q = append(q, queued{id: id, weight: s.Probability})
		steps = append(steps, Step{
			Action:  trace.Initialize,
			Message: fmt.Sprintf("Created leaf node for '%s' with probability %.3f", s.Char, s.Probability),
			NodeID:  id,
			Left:    NoChild,
			Right:   NoChild,
			Weight:  s.Probability,
		})
	}
	heap.Init(&q)

	// 2) Merge the two lightest nodes until one remains.
	for q.Len() > 1 {
		left := heap.Pop(&q).(queued)
		right := heap.Pop(&q).(queued)

		id := len(tree.Nodes)
		w := left.weight + right.weight
		tree.Nodes = append(tree.Nodes, Node{ID: id, Weight: w, Left: left.id, Right: right.id})
		heap.Push(&q, queued{id: id, weight: w})

		steps = append(steps, Step{
			Action:  trace.Combine,
			Message: fmt.Sprintf("Combined nodes with frequencies %.3f and %.3f = %.3f", left.weight, right.weight, w),
			NodeID:  id,
			Left:    left.id,
			Right:   right.id,
			Weight:  w,
		})
	}
	root := q[0].id

	// 3) Walk the finished tree: left edge '0', right edge '1'.
	codes := make(alphabet.CodeTable, 0, len(norm))
	tree.walk(root, "", func(n Node, code string) {
		if code == "" {
			code = "0" // single-leaf tree
		}
		codes = append(codes, alphabet.CodeResult{Char: n.Char, Code: code, Probability: n.Weight})
	})
	sort.SliceStable(codes, func(i, j int) bool { return codes[i].Char < codes[j].Char })

	return Result{Steps: steps, Codes: codes, Tree: tree, Root: root}, nil
}

// walk visits every leaf below id depth-first, passing the accumulated code.
func (t Tree) walk(id int, prefix string, leaf func(Node, string)) {
	n := t.Nodes[id]
	if n.IsLeaf() {
		leaf(n, prefix)
		return
	}
	if n.Left != NoChild {
		t.walk(n.Left, prefix+"0", leaf)
	}
	if n.Right != NoChild {
		t.walk(n.Right, prefix+"1", leaf)
	}
}

// queued is a heap entry; id doubles as insertion sequence for tie-breaking.
type queued struct {
	id     int
	weight float64
}

// nodeQueue is a min-heap ordered by (weight, id).
type nodeQueue []queued

func (q nodeQueue) Len() int { return len(q) }
func (q nodeQueue) Less(i, j int) bool {
	if q[i].weight != q[j].weight {
		return q[i].weight < q[j].weight
	}

	return q[i].id < q[j].id
}
func (q nodeQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *nodeQueue) Push(x any)   { *q = append(*q, x.(queued)) }
func (q *nodeQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]

	return item
}
