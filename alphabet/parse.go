// SPDX-License-Identifier: MIT
// Package: infotrace/alphabet
//
// parse.go — building alphabets from user input: "A=0.3,B=0.1" lists and raw text.

package alphabet

import (
	"errors"
	"strconv"
	"strings"

	"github.com/katalvlaran/infotrace/validation"
)

// ErrSyntax indicates a malformed "char=weight" list.
var ErrSyntax = errors.New("alphabet: expected char=weight pairs")

// Parse reads a comma-separated list of char=weight pairs, e.g. "A=0.3, B=0.1".
// Only syntax is checked here; use Validate for engine preconditions.
func Parse(list string) (Alphabet, error) {
	const op = "alphabet.Parse"
	var out Alphabet
	for _, field := range strings.Split(list, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		char, weight, ok := strings.Cut(field, "=")
		if !ok {
			return nil, validation.Newf(op, ErrSyntax, "%q", field)
		}
		p, err := strconv.ParseFloat(strings.TrimSpace(weight), 64)
		if err != nil {
			return nil, validation.Newf(op, ErrSyntax, "%q: %v", field, err)
		}
		out = append(out, Symbol{Char: strings.TrimSpace(char), Probability: p})
	}

	return out, nil
}

// FromText counts every character of text and returns raw frequencies in
// first-occurrence order, e.g. "AAABBC" → A=3, B=2, C=1.
func FromText(text string) Alphabet {
	index := make(map[string]int)
	var out Alphabet
	for _, r := range text {
		ch := string(r)
		if i, ok := index[ch]; ok {
			out[i].Probability++
			continue
		}
		index[ch] = len(out)
		out = append(out, Symbol{Char: ch, Probability: 1})
	}

	return out
}
