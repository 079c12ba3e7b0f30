// SPDX-License-Identifier: MIT
// Package: infotrace/alphabet
//
// codes.go — final symbol→code tables and the operations every prefix coder
// shares: prefix-freeness check, expected length, encode and decode.

package alphabet

import (
	"sort"
	"strings"

	"github.com/katalvlaran/infotrace/validation"
)

// CodeResult maps one symbol to its binary code.
type CodeResult struct {
	Char        string  `yaml:"char"`
	Code        string  `yaml:"code"`
	Probability float64 `yaml:"probability"`
}

// CodeTable is the final code assignment of one engine run.
type CodeTable []CodeResult

// Map returns char → code.
func (t CodeTable) Map() map[string]string {
	m := make(map[string]string, len(t))
	for _, r := range t {
		m[r.Char] = r.Code
	}

	return m
}

// Lookup finds the entry for char.
func (t CodeTable) Lookup(char string) (CodeResult, bool) {
	for _, r := range t {
		if r.Char == char {
			return r, true
		}
	}

	return CodeResult{}, false
}

// SortedByChar returns a copy ordered by Char ascending.
func (t CodeTable) SortedByChar() CodeTable {
	out := append(CodeTable(nil), t...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Char < out[j].Char })

	return out
}

// IsPrefixFree reports whether no code is a prefix of (or equal to) another.
//
// Complexity: O(n²·L).
func (t CodeTable) IsPrefixFree() bool {
	for i := range t {
		for j := range t {
			if i != j && strings.HasPrefix(t[j].Code, t[i].Code) {
				return false
			}
		}
	}

	return true
}

// AverageLength returns Σ p·len(code) using the stored probabilities.
func (t CodeTable) AverageLength() float64 {
	var avg float64
	for _, r := range t {
		avg += r.Probability * float64(len(r.Code))
	}

	return avg
}

// Encode concatenates the code of every character of text.
func (t CodeTable) Encode(text string) (string, error) {
	const op = "alphabet.Encode"
	codes := t.Map()

	var b strings.Builder
	for _, r := range text {
		code, ok := codes[string(r)]
		if !ok {
			return "", validation.Newf(op, ErrUnknownSymbol, "%q", string(r))
		}
		b.WriteString(code)
	}

	return b.String(), nil
}

// Decode greedily matches code prefixes of bits and returns the decoded text.
// The table must be prefix-free for the result to be unambiguous.
func (t CodeTable) Decode(bits string) (string, error) {
	const op = "alphabet.Decode"
	byCode := make(map[string]string, len(t))
	for _, r := range t {
		byCode[r.Code] = r.Char
	}

	var (
		out strings.Builder
		cur strings.Builder
	)
	for i, c := range bits {
		if c != '0' && c != '1' {
			return "", validation.Newf(op, ErrMalformedBits, "char %q at %d", c, i)
		}
		cur.WriteRune(c)
		if ch, ok := byCode[cur.String()]; ok {
			out.WriteString(ch)
			cur.Reset()
		}
	}
	if cur.Len() > 0 {
		return "", validation.Newf(op, ErrMalformedBits, "trailing bits %q", cur.String())
	}

	return out.String(), nil
}

// CompressionMetrics summarises a size reduction.
type CompressionMetrics struct {
	// Ratio is the percentage saved: (1 - compressed/original) * 100.
	Ratio        float64
	OriginalBits int
	SavedBits    int
}

// Metrics compares byte-sized original and compressed lengths.
// A non-positive original size yields the zero value.
func Metrics(originalSize, compressedSize int) CompressionMetrics {
	if originalSize <= 0 {
		return CompressionMetrics{}
	}
	originalBits := originalSize * 8

	return CompressionMetrics{
		Ratio:        (1 - float64(compressedSize)/float64(originalSize)) * 100,
		OriginalBits: originalBits,
		SavedBits:    originalBits - compressedSize*8,
	}
}
