// Package hamilton enumerates Hamilton cycles in small directed graphs by
// exhaustive backtracking, validates candidate cycles, and reports basic
// graph statistics.
//
// Search order is fully determined by the graph: start nodes are tried in
// node insertion order and neighbors in edge insertion order. The result cap
// applies across all start nodes. Search time is factorial in the worst case,
// which is acceptable for the interactive sizes this package targets.
//
// Errors:
//
//	ErrNilGraph    - graph pointer is nil.
//	ErrEmptyGraph  - graph has no nodes.
//	ErrBadMaxCount - maxCount < 1.
package hamilton

import (
	"errors"

	"github.com/katalvlaran/infotrace/trace"
)

// DefaultMaxCycles is the conventional result cap for interactive use.
const DefaultMaxCycles = 10

// Sentinel errors.
var (
	ErrNilGraph    = errors.New("hamilton: graph is nil")
	ErrEmptyGraph  = errors.New("hamilton: graph has no nodes")
	ErrBadMaxCount = errors.New("hamilton: maxCount must be at least 1")
)

// Cycle is a closed walk [start, ..., start] through every node once.
type Cycle struct {
	Path    []string `yaml:"path"`
	IsValid bool     `yaml:"valid"`
	Message string   `yaml:"message"`
}

// Option configures FindCycles.
type Option func(*Options)

// Options holds search hooks and policies. Hooks receive the live path and
// must not retain or modify it. A hook error aborts the search.
type Options struct {
	// OnVisit is called after node is pushed onto path.
	OnVisit func(node string, path []string) error

	// OnBacktrack is called before node is popped from path.
	OnBacktrack func(node string, path []string) error

	// OnCycle is called for every recorded cycle.
	OnCycle func(c Cycle) error

	// UniqueRotations collapses cycles that are rotations of each other.
	UniqueRotations bool
}

// DefaultOptions returns options with no hooks and rotation dedupe off.
func DefaultOptions() Options {
	return Options{}
}

// WithOnVisit installs fn as a push hook.
func WithOnVisit(fn func(node string, path []string) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithOnBacktrack installs fn as a pop hook.
func WithOnBacktrack(fn func(node string, path []string) error) Option {
	return func(o *Options) { o.OnBacktrack = fn }
}

// WithOnCycle installs fn as a cycle hook.
func WithOnCycle(fn func(c Cycle) error) Option {
	return func(o *Options) { o.OnCycle = fn }
}

// WithUniqueRotations reports each directed cycle once, whatever node it was
// found from. By default a cycle is reported once per start node.
func WithUniqueRotations() Option {
	return func(o *Options) { o.UniqueRotations = true }
}

// Step is one traced search event.
type Step struct {
	Action  trace.Action
	Message string

	// Current is the node being entered, left, or closing a cycle.
	Current string

	// Visited is the visited set in graph node order; Path is the walk from
	// the start node. Both are snapshots.
	Visited []string
	Path    []string

	// Candidates are the unvisited out-neighbors of Current.
	Candidates []string
}

// TraceResult is the outcome of Trace.
type TraceResult struct {
	Steps  []Step
	Cycles []Cycle
}

// Validation is the outcome of ValidatePath.
type Validation struct {
	IsValid bool     `yaml:"valid"`
	Message string   `yaml:"message"`
	Issues  []string `yaml:"issues"`
}

// GraphStats summarizes a graph.
type GraphStats struct {
	Nodes int `yaml:"nodes"`
	Edges int `yaml:"edges"`

	// Density is edges / (nodes·(nodes-1)) in percent; 0 when nodes ≤ 1.
	Density float64 `yaml:"density"`

	IsComplete bool `yaml:"complete"`

	// StronglyConnected is necessary for any Hamilton cycle to exist.
	StronglyConnected bool `yaml:"strongly_connected"`
}
