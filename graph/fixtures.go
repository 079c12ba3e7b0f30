// SPDX-License-Identifier: MIT
// Package: infotrace/graph
//
// fixtures.go — deterministic graph constructors for demos, benchmarks and
// tests.
//
// Contract:
//   • Nodes are added in ascending index order with IDs from idFn.
//   • Nodes are laid out on a circle so a renderer has usable positions.
//   • Edges are emitted in a stable order documented per constructor.
//   • Bad n yields a validation error wrapping ErrTooFewNodes; never panics.

package graph

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/katalvlaran/infotrace/validation"
)

const (
	methodComplete = "Complete"
	methodCycle    = "Cycle"
	methodPath     = "Path"

	minCompleteNodes = 1
	minCycleNodes    = 2
	minPathNodes     = 1

	layoutRadius = 150.0
	layoutCenter = 200.0
)

// ErrTooFewNodes indicates a fixture size below the constructor minimum.
var ErrTooFewNodes = errors.New("graph: too few nodes")

// IDFn generates a node identifier from its zero-based index.
// It must be pure and deterministic.
type IDFn func(idx int) string

// LetterID returns spreadsheet-style column names: 0→"A", 25→"Z", 26→"AA".
// Panics if idx < 0.
func LetterID(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("LetterID: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// NumberID returns the decimal string of idx.
func NumberID(idx int) string {
	return strconv.Itoa(idx)
}

// Complete returns the complete directed graph on n nodes: every ordered pair
// of distinct nodes has an edge. Edges are emitted for i ascending, then j
// ascending.
func Complete(n int, idFn IDFn) (*Graph, error) {
	g, ids, err := ring(methodComplete, n, minCompleteNodes, idFn)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if err = link(g, methodComplete, ids[i], ids[j]); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// Cycle returns the directed ring i→(i+1)%n.
func Cycle(n int, idFn IDFn) (*Graph, error) {
	g, ids, err := ring(methodCycle, n, minCycleNodes, idFn)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		if err = link(g, methodCycle, ids[i], ids[(i+1)%n]); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Path returns the directed chain i→i+1; it has no Hamilton cycle for n > 1.
func Path(n int, idFn IDFn) (*Graph, error) {
	g, ids, err := ring(methodPath, n, minPathNodes, idFn)
	if err != nil {
		return nil, err
	}
	for i := 0; i+1 < n; i++ {
		if err = link(g, methodPath, ids[i], ids[i+1]); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// ring adds n nodes laid out on a circle and returns their IDs in order.
// A nil idFn falls back to LetterID.
func ring(method string, n, minNodes int, idFn IDFn) (*Graph, []string, error) {
	if n < minNodes {
		return nil, nil, validation.Newf("graph."+method, ErrTooFewNodes, "n=%d < min=%d", n, minNodes)
	}
	if idFn == nil {
		idFn = LetterID
	}

	g := NewGraph()
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		x := layoutCenter + layoutRadius*math.Cos(angle)
		y := layoutCenter + layoutRadius*math.Sin(angle)
		ids[i] = idFn(i)
		if err := g.AddNode(ids[i], WithPosition(x, y)); err != nil {
			return nil, nil, fmt.Errorf("%s: AddNode(%s): %w", method, ids[i], err)
		}
	}

	return g, ids, nil
}

func link(g *Graph, method, from, to string) error {
	if _, err := g.AddEdge(from, to, WithEdgeID(from+"->"+to)); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s): %w", method, from, to, err)
	}

	return nil
}
