// SPDX-License-Identifier: MIT
// Package: infotrace/lz
//
// lz.go — greedy sliding-window dictionary matcher (LZ77 style) and its
// token replay.
//
// Compress walks the text rune by rune. At each cursor it searches the
// preceding window (at most W runes) for the longest prefix of the lookahead
// (at most K runes). Candidates are scanned from the nearest start backward
// and replaced only by a strictly longer match, so ties go to the most recent
// occurrence. The match never extends past the cursor and is capped one rune
// short of the end of the text so every token carries a literal NextChar.
//
// Each token appends match+NextChar to an append-only dictionary unless the
// sequence is already present, then advances the cursor by Length+1.
//
// Errors:
//
//	ErrEmptyText      - Compress was given an empty string.
//	ErrBadWindow      - window or lookahead size is not positive.
//	ErrMalformedToken - Decompress met a token that cannot be replayed.
package lz

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/katalvlaran/infotrace/trace"
	"github.com/katalvlaran/infotrace/validation"
)

const (
	opCompress   = "lz.Compress"
	opDecompress = "lz.Decompress"

	// DefaultWindowSize is the history horizon W.
	DefaultWindowSize = 4096
	// DefaultLookaheadSize is the maximum match length K.
	DefaultLookaheadSize = 18
)

// Sentinel errors.
var (
	ErrEmptyText      = errors.New("lz: text is empty")
	ErrBadWindow      = errors.New("lz: window and lookahead sizes must be positive")
	ErrMalformedToken = errors.New("lz: malformed token")
)

// Option configures Compress.
type Option func(*options)

type options struct {
	window    int
	lookahead int
}

// WithWindowSize sets how many preceding runes are searched for a match.
func WithWindowSize(w int) Option {
	return func(o *options) { o.window = w }
}

// WithLookaheadSize sets the maximum match length.
func WithLookaheadSize(k int) Option {
	return func(o *options) { o.lookahead = k }
}

// Token is one (position, offset, length, nextChar) triple plus the index of
// the dictionary entry for match+NextChar.
type Token struct {
	// Position is the cursor, in runes, where the token starts.
	Position int
	// Offset is the backward distance from Position to the match start; 0 when Length is 0.
	Offset int
	// Length is the match length in runes.
	Length int
	// NextChar is the literal rune following the match.
	NextChar string
	// DictionaryIndex locates match+NextChar in Result.Dictionary.
	DictionaryIndex int
}

// Step is a Token with its trace annotation.
type Step struct {
	Token
	Action  trace.Action
	Message string
}

// Result is the outcome of Compress.
type Result struct {
	Steps      []Step
	Dictionary []string
}

// Tokens returns the bare token stream.
func (r Result) Tokens() []Token {
	out := make([]Token, len(r.Steps))
	for i, s := range r.Steps {
		out[i] = s.Token
	}

	return out
}

// CompressionRatio estimates space saved, in percent, counting two units per
// token against textLen input runes. It is negative when the token stream is
// larger than the text and 0 for a non-positive textLen.
func (r Result) CompressionRatio(textLen int) float64 {
	if textLen <= 0 {
		return 0
	}

	return (1 - float64(len(r.Steps)*2)/float64(textLen)) * 100
}

// Compress tokenizes text. Defaults are DefaultWindowSize and
// DefaultLookaheadSize.
//
// Complexity: O(n·W·K) time, O(n) space.
func Compress(text string, opts ...Option) (Result, error) {
	cfg := options{window: DefaultWindowSize, lookahead: DefaultLookaheadSize}
	for _, opt := range opts {
		opt(&cfg)
	}
	if text == "" {
		return Result{}, validation.New(opCompress, ErrEmptyText)
	}
	if cfg.window <= 0 || cfg.lookahead <= 0 {
		return Result{}, validation.Newf(opCompress, ErrBadWindow, "window=%d lookahead=%d", cfg.window, cfg.lookahead)
	}

	runes := []rune(text)
	var (
		steps []Step
		dict  []string
		index = make(map[string]int)
	)
	for pos := 0; pos < len(runes); {
		offset, length := longestMatch(runes, pos, cfg.window, cfg.lookahead)
		next := string(runes[pos+length])

		entry := string(runes[pos : pos+length+1])
		di, ok := index[entry]
		if !ok {
			di = len(dict)
			dict = append(dict, entry)
			index[entry] = di
		}

		steps = append(steps, Step{
			Token: Token{
				Position:        pos,
				Offset:          offset,
				Length:          length,
				NextChar:        next,
				DictionaryIndex: di,
			},
			Action:  trace.Match,
			Message: fmt.Sprintf("Match at offset %d, length %d, next char: '%s'", offset, length, next),
		})
		pos += length + 1
	}

	return Result{Steps: steps, Dictionary: dict}, nil
}

// longestMatch returns the offset and length of the longest window match for
// the lookahead at pos. Ties keep the nearest start.
func longestMatch(runes []rune, pos, window, lookahead int) (offset, length int) {
	limit := lookahead
	if rest := len(runes) - pos - 1; rest < limit {
		limit = rest
	}
	if limit <= 0 {
		return 0, 0
	}

	start := pos - window
	if start < 0 {
		start = 0
	}
	for i := pos - 1; i >= start; i-- {
		n := 0
		for n < limit && i+n < pos && runes[i+n] == runes[pos+n] {
			n++
		}
		if n > length {
			offset, length = pos-i, n
			if length == limit {
				break
			}
		}
	}

	return offset, length
}

// Decompress replays tokens and returns the reconstructed text. Each token
// copies Length runes starting Offset runes back, then appends NextChar.
//
// Complexity: O(Σ Length) time.
func Decompress(tokens []Token) (string, error) {
	var out []rune
	for i, t := range tokens {
		if t.Position != len(out) {
			return "", validation.Newf(opDecompress, ErrMalformedToken, "token %d at position %d, expected %d", i, t.Position, len(out))
		}
		if t.Length < 0 || t.Offset < 0 || (t.Length > 0 && (t.Offset == 0 || t.Offset > len(out))) {
			return "", validation.Newf(opDecompress, ErrMalformedToken, "token %d has offset %d length %d", i, t.Offset, t.Length)
		}
		if utf8.RuneCountInString(t.NextChar) != 1 {
			return "", validation.Newf(opDecompress, ErrMalformedToken, "token %d next char %q", i, t.NextChar)
		}

		from := len(out) - t.Offset
		for k := 0; k < t.Length; k++ {
			out = append(out, out[from+k])
		}
		out = append(out, []rune(t.NextChar)...)
	}

	return string(out), nil
}
