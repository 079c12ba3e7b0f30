package huffman

import (
	"github.com/katalvlaran/infotrace/alphabet"
	"github.com/katalvlaran/infotrace/trace"
)

// NoChild marks a missing child reference in the arena.
const NoChild = -1

// Node is one arena entry: a leaf (Char set, no children) or an internal node.
type Node struct {
	// ID is the node's index in Tree.Nodes and doubles as its insertion sequence.
	ID int

	// Char is the symbol for leaves and empty for internal nodes.
	Char string

	// Weight is the normalised probability (sum of children for internal nodes).
	Weight float64

	// Left and Right are child IDs, or NoChild.
	Left, Right int
}

// IsLeaf reports whether n has no children.
func (n Node) IsLeaf() bool { return n.Left == NoChild && n.Right == NoChild }

// Tree is the arena holding every node created during one Build.
type Tree struct {
	Nodes []Node
}

// Node returns the node with the given ID.
func (t Tree) Node(id int) (Node, bool) {
	if id < 0 || id >= len(t.Nodes) {
		return Node{}, false
	}

	return t.Nodes[id], true
}

// Subtree returns the nodes reachable from id in pre-order (node, left, right).
// An unknown id yields nil.
func (t Tree) Subtree(id int) []Node {
	root, ok := t.Node(id)
	if !ok {
		return nil
	}

	var out []Node
	stack := []Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, n)
		// push right first so left is visited first
		if n.Right != NoChild {
			stack = append(stack, t.Nodes[n.Right])
		}
		if n.Left != NoChild {
			stack = append(stack, t.Nodes[n.Left])
		}
	}

	return out
}

// Step records one construction event.
type Step struct {
	Action  trace.Action
	Message string

	// NodeID is the node created by this step.
	NodeID int

	// Left and Right are the merged children for Combine steps, NoChild otherwise.
	Left, Right int

	// Weight of the created node.
	Weight float64
}

// Result is the outcome of Build.
type Result struct {
	// Steps holds one Initialize step per leaf, then one Combine step per merge.
	Steps []Step

	// Codes is sorted by Char; probabilities are the normalised weights.
	Codes alphabet.CodeTable

	// Tree is the full arena; Root is the ID of the final node.
	Tree Tree
	Root int
}

// Option configures Build.
type Option func(*options)

type options struct {
	floor float64
}

// WithFloor sets the minimum weight applied before normalisation
// (default alphabet.DefaultFloor). Panics on a non-positive floor.
func WithFloor(floor float64) Option {
	if floor <= 0 {
		panic("huffman: WithFloor requires floor > 0")
	}

	return func(o *options) { o.floor = floor }
}
