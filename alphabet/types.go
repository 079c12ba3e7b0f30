// SPDX-License-Identifier: MIT
// Package: infotrace/alphabet
//
// types.go — Symbol/Alphabet value types, sentinel errors and input validation
// shared by the Huffman, Fano and Shannon-Fano-Elias coders.
//
// Errors:
//
//	ErrTooFewSymbols   - alphabet smaller than the engine minimum.
//	ErrBadChar         - symbol char is empty or longer than one character.
//	ErrDuplicateChar   - the same char appears twice.
//	ErrBadProbability  - probability is NaN, infinite, zero or negative.
//	ErrUnknownSymbol   - Encode met a char with no code.
//	ErrMalformedBits   - Decode met a char other than '0'/'1' or trailing bits.
//
// All of them reach callers wrapped in *validation.Error.
package alphabet

import (
	"errors"
	"math"
	"sort"
	"unicode/utf8"

	"github.com/katalvlaran/infotrace/validation"
)

// Sentinel errors for alphabet validation and code tables.
var (
	ErrTooFewSymbols  = errors.New("alphabet: too few symbols")
	ErrBadChar        = errors.New("alphabet: symbol must be exactly one character")
	ErrDuplicateChar  = errors.New("alphabet: duplicate symbol")
	ErrBadProbability = errors.New("alphabet: probability must be positive and finite")
	ErrUnknownSymbol  = errors.New("alphabet: symbol has no code")
	ErrMalformedBits  = errors.New("alphabet: malformed bit string")
)

// DefaultFloor is the minimum weight applied before normalisation.
const DefaultFloor = 0.01

// Symbol is one alphabet entry. Probability may be a raw frequency; engines
// that need a distribution normalise it themselves.
type Symbol struct {
	Char        string  `yaml:"char"`
	Probability float64 `yaml:"probability"`
}

// Alphabet is an ordered collection of symbols. Order matters: it is the
// tie-breaking order for every engine.
type Alphabet []Symbol

// Validate checks that a has at least min symbols, each a single character,
// unique, with a positive finite probability. op tags the returned error.
//
// Complexity: O(n) time, O(n) space.
func Validate(op string, a Alphabet, min int) error {
	if len(a) < min {
		return validation.Newf(op, ErrTooFewSymbols, "got %d, need at least %d", len(a), min)
	}

	seen := make(map[string]struct{}, len(a))
	for _, s := range a {
		if utf8.RuneCountInString(s.Char) != 1 {
			return validation.Newf(op, ErrBadChar, "%q", s.Char)
		}
		if _, dup := seen[s.Char]; dup {
			return validation.Newf(op, ErrDuplicateChar, "%q", s.Char)
		}
		seen[s.Char] = struct{}{}

		if math.IsNaN(s.Probability) || math.IsInf(s.Probability, 0) || s.Probability <= 0 {
			return validation.Newf(op, ErrBadProbability, "%q has %v", s.Char, s.Probability)
		}
	}

	return nil
}

// Total returns the sum of all probabilities.
func (a Alphabet) Total() float64 {
	var sum float64
	for _, s := range a {
		sum += s.Probability
	}

	return sum
}

// Chars returns the symbol characters in order.
func (a Alphabet) Chars() []string {
	out := make([]string, len(a))
	for i, s := range a {
		out[i] = s.Char
	}

	return out
}

// Clone returns an independent copy.
func (a Alphabet) Clone() Alphabet {
	return append(Alphabet(nil), a...)
}

// Normalize clamps each weight to at least floor and rescales so the
// weights sum to 1. A non-positive floor falls back to DefaultFloor.
// The input is not modified.
func Normalize(a Alphabet, floor float64) Alphabet {
	if floor <= 0 {
		floor = DefaultFloor
	}

	out := a.Clone()
	for i := range out {
		out[i].Probability = math.Max(floor, out[i].Probability)
	}
	total := out.Total()
	for i := range out {
		out[i].Probability /= total
	}

	return out
}

// SortDescending returns a copy ordered by probability, highest first.
// Ties keep their input order.
func SortDescending(a Alphabet) Alphabet {
	out := a.Clone()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Probability > out[j].Probability
	})

	return out
}

// Entropy returns the Shannon entropy of a in bits per symbol, computed over
// the distribution obtained by dividing each weight by the total.
func Entropy(a Alphabet) float64 {
	total := a.Total()
	if total <= 0 {
		return 0
	}

	var h float64
	for _, s := range a {
		if s.Probability <= 0 {
			continue
		}
		p := s.Probability / total
		h -= p * math.Log2(p)
	}

	return h
}
