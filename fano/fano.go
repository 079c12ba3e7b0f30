// Package fano implements Fano's top-down prefix coding: the alphabet is
// sorted by descending probability, then split recursively into two
// contiguous groups of roughly equal weight. The left group extends the code
// with '0', the right group with '1'.
//
// Every division emits a Split step before recursing; every singleton emits an
// Assign step. The result is a valid prefix-free code, not necessarily optimal.
//
// Complexity: O(n²) in the worst case (one prefix scan per split level).
package fano

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/infotrace/alphabet"
	"github.com/katalvlaran/infotrace/trace"
)

const (
	opEncode   = "fano.Encode"
	minSymbols = 2
)

// Step records one split or assignment.
type Step struct {
	Action  trace.Action
	Message string

	// Group is the symbol group being processed, in sorted order.
	Group []string

	// Left and Right are the two halves of a Split (both nil for Assign).
	Left, Right []string

	// LeftWeight and RightWeight are the probability sums of the halves.
	LeftWeight, RightWeight float64

	// Prefix is the code accumulated before this step; Depth is its length.
	Prefix string
	Depth  int

	// Codes is a snapshot of all codes assigned so far, char → code.
	Codes map[string]string
}

// Result is the outcome of Encode.
type Result struct {
	Steps []Step

	// Codes maps char → code.
	Codes map[string]string

	// Results lists symbols in descending-probability order with their codes.
	Results alphabet.CodeTable
}

// Encode sorts a by descending probability (stable) and assigns Fano codes.
// a must hold at least two valid symbols; probabilities are used as given.
func Encode(a alphabet.Alphabet) (Result, error) {
	if err := alphabet.Validate(opEncode, a, minSymbols); err != nil {
		return Result{}, err
	}

	sorted := alphabet.SortDescending(a)
	e := encoder{codes: make(map[string]string, len(sorted))}
	e.divide(sorted, "")

	results := make(alphabet.CodeTable, len(sorted))
	for i, s := range sorted {
		results[i] = alphabet.CodeResult{Char: s.Char, Code: e.codes[s.Char], Probability: s.Probability}
	}

	return Result{Steps: e.steps, Codes: e.codes, Results: results}, nil
}

type encoder struct {
	steps []Step
	codes map[string]string
}

// divide assigns codes within group, all of which share prefix.
func (e *encoder) divide(group alphabet.Alphabet, prefix string) {
	if len(group) == 0 {
		return
	}
	if len(group) == 1 {
		code := prefix
		if code == "" {
			code = "0"
		}
		e.codes[group[0].Char] = code
		e.steps = append(e.steps, Step{
			Action:  trace.Assign,
			Message: fmt.Sprintf("Assigned code '%s' to symbol '%s'", code, group[0].Char),
			Group:   group.Chars(),
			Prefix:  prefix,
			Depth:   len(prefix),
			Codes:   e.snapshot(),
		})
		return
	}

	split := splitIndex(group)
	left, right := group[:split], group[split:]
	lw, rw := left.Total(), right.Total()

	e.steps = append(e.steps, Step{
		Action: trace.Split,
		Message: fmt.Sprintf("Split into groups: %s (prob: %.3f) and %s (prob: %.3f)",
			strings.Join(left.Chars(), ","), lw, strings.Join(right.Chars(), ","), rw),
		Group:       group.Chars(),
		Left:        left.Chars(),
		Right:       right.Chars(),
		LeftWeight:  lw,
		RightWeight: rw,
		Prefix:      prefix,
		Depth:       len(prefix),
		Codes:       e.snapshot(),
	})

	e.divide(left, prefix+"0")
	e.divide(right, prefix+"1")
}

// splitIndex returns the smallest i such that the sum of group[:i] reaches
// half the group total, clamped to [1, len-1] so neither half is empty.
func splitIndex(group alphabet.Alphabet) int {
	half := group.Total() / 2
	var sum float64
	for i, s := range group {
		sum += s.Probability
		if sum >= half {
			return clamp(i+1, 1, len(group)-1)
		}
	}

	return len(group) - 1
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

func (e *encoder) snapshot() map[string]string {
	m := make(map[string]string, len(e.codes))
	for k, v := range e.codes {
		m[k] = v
	}

	return m
}
