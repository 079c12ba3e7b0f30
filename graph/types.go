// SPDX-License-Identifier: MIT
// Package: infotrace/graph
//
// types.go — Node, Edge and Graph types, options and sentinel errors.
//
// A Graph is a small directed graph that keeps nodes and edges in insertion
// order. Edges reference nodes by ID only; adjacency is derived from the edge
// list so that iteration order is the order in which edges were added.
//
// Graph is not safe for concurrent mutation. Engines read it from a single
// goroutine; callers that share one across goroutines must Clone it.
//
// Errors:
//
//	ErrEmptyNodeID     - node ID is the empty string.
//	ErrDuplicateNode   - node ID already present.
//	ErrNodeNotFound    - operation referenced an unknown node.
//	ErrEdgeNotFound    - operation referenced an unknown edge.
//	ErrLoopNotAllowed  - edge from a node to itself.
//	ErrDuplicateEdge   - an edge with the same From→To already exists.
//	ErrDuplicateEdgeID - an edge with the same ID already exists.
package graph

import (
	"errors"
)

// Sentinel errors for graph operations.
var (
	// ErrEmptyNodeID indicates that a node ID is empty.
	ErrEmptyNodeID = errors.New("graph: node ID is empty")

	// ErrDuplicateNode indicates that a node ID is already taken.
	ErrDuplicateNode = errors.New("graph: duplicate node")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("graph: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("graph: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("graph: self-loop not allowed")

	// ErrDuplicateEdge indicates a parallel edge was attempted.
	ErrDuplicateEdge = errors.New("graph: duplicate edge")

	// ErrDuplicateEdgeID indicates an explicit edge ID collides with an existing one.
	ErrDuplicateEdgeID = errors.New("graph: duplicate edge ID")
)

// Point is a 2D layout position. It carries no meaning for the algorithms.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Node is a graph vertex.
type Node struct {
	// ID uniquely identifies the node within its Graph.
	ID string `yaml:"id"`

	// Label is a display name; it defaults to ID.
	Label string `yaml:"label,omitempty"`

	// Position is an optional layout hint.
	Position Point `yaml:"position,omitempty"`
}

// Edge is a directed connection From→To.
type Edge struct {
	ID   string `yaml:"id,omitempty"`
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// Graph is an insertion-ordered directed graph without loops or parallel edges.
// The zero value is an empty graph ready to use.
type Graph struct {
	nodes []Node
	index map[string]int // node ID → position in nodes

	edges   []Edge
	edgeIDs map[string]struct{}
	pairs   map[[2]string]string // {from,to} → edge ID
}

// NodeOption customizes a node in AddNode.
type NodeOption func(*Node)

// WithLabel sets a display label.
func WithLabel(label string) NodeOption {
	return func(n *Node) { n.Label = label }
}

// WithPosition sets a layout position.
func WithPosition(x, y float64) NodeOption {
	return func(n *Node) { n.Position = Point{X: x, Y: y} }
}

// EdgeOption customizes an edge in AddEdge.
type EdgeOption func(*Edge)

// WithEdgeID overrides the generated edge ID.
// Panics if id is empty.
func WithEdgeID(id string) EdgeOption {
	if id == "" {
		panic("graph: WithEdgeID(\"\")")
	}

	return func(e *Edge) { e.ID = id }
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{
		index:   make(map[string]int),
		edgeIDs: make(map[string]struct{}),
		pairs:   make(map[[2]string]string),
	}
}
