// Package sfe implements Shannon-Fano-Elias coding over a cumulative
// probability distribution.
//
// Symbols are visited in descending probability order (stable). For each
// symbol with probability p and running cumulative F:
//
//	Z = F + p/2
//	L = ceil(-log2 p)
//	code = first L bits of the binary fraction of Z
//
// The binary fraction is produced by repeated doubling and truncation rather
// than by formatting a float, so results do not depend on string conversion.
//
// Complexity: O(n log n + Σ L_i).
package sfe

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/infotrace/alphabet"
	"github.com/katalvlaran/infotrace/trace"
	"github.com/katalvlaran/infotrace/validation"
)

const (
	opEncode   = "sfe.Encode"
	minSymbols = 1

	// sumTolerance absorbs rounding when user probabilities add to exactly 1.
	sumTolerance = 1e-9
)

// Sentinel errors specific to cumulative coding.
var (
	// ErrProbabilityRange indicates a probability above 1.
	ErrProbabilityRange = errors.New("sfe: probability must be in (0,1]")

	// ErrProbabilitySum indicates the distribution sums to more than 1.
	ErrProbabilitySum = errors.New("sfe: probabilities sum to more than 1")
)

// Step records the encoding of one symbol.
type Step struct {
	Action  trace.Action
	Message string

	Char        string
	Probability float64

	// IntervalStart is F before this symbol; IntervalEnd is F + p.
	IntervalStart float64
	IntervalEnd   float64

	// Midpoint is Z = IntervalStart + p/2.
	Midpoint float64

	// Length is the code length L; Code is the truncated expansion of Z.
	Length int
	Code   string

	// Codes is a snapshot of every code assigned so far, in encoding order.
	Codes alphabet.CodeTable
}

// Result is the outcome of Encode.
type Result struct {
	Steps []Step

	// Codes lists symbols in encoding (descending probability) order.
	Codes alphabet.CodeTable
}

// Encode assigns Shannon-Fano-Elias codes. Every probability must lie in
// (0,1] and the total must not exceed 1.
func Encode(a alphabet.Alphabet) (Result, error) {
	if err := validate(a); err != nil {
		return Result{}, err
	}

	sorted := alphabet.SortDescending(a)
	var (
		steps = make([]Step, 0, len(sorted))
		codes = make(alphabet.CodeTable, 0, len(sorted))
		f     float64
	)
	for _, s := range sorted {
		p := s.Probability
		z := f + p/2
		l := CodeLength(p)
		code := BinaryFraction(z, l)

		codes = append(codes, alphabet.CodeResult{Char: s.Char, Code: code, Probability: p})
		steps = append(steps, Step{
			Action: trace.Encode,
			Message: fmt.Sprintf("%s: P=%.2f, Range=[%.2f, %.2f], Mid=%.4f, Code=%s",
				s.Char, p, f, f+p, z, code),
			Char:          s.Char,
			Probability:   p,
			IntervalStart: f,
			IntervalEnd:   f + p,
			Midpoint:      z,
			Length:        l,
			Code:          code,
			Codes:         append(alphabet.CodeTable(nil), codes...),
		})
		f += p
	}

	return Result{Steps: steps, Codes: codes}, nil
}

func validate(a alphabet.Alphabet) error {
	if err := alphabet.Validate(opEncode, a, minSymbols); err != nil {
		return err
	}
	for _, s := range a {
		if s.Probability > 1 {
			return validation.Newf(opEncode, ErrProbabilityRange, "%q has %v", s.Char, s.Probability)
		}
	}
	if total := a.Total(); total > 1+sumTolerance {
		return validation.Newf(opEncode, ErrProbabilitySum, "total %v", total)
	}

	return nil
}

// CodeLength returns ceil(-log2 p), never less than 1 so that p == 1 still
// yields a usable one-bit code. p must be in (0,1].
func CodeLength(p float64) int {
	l := int(math.Ceil(-math.Log2(p)))
	if l < 1 {
		return 1
	}

	return l
}

// BinaryFraction returns the first n bits after the binary point of z,
// for z in [0,1), by repeated doubling and truncation.
func BinaryFraction(z float64, n int) string {
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		z *= 2
		if z >= 1 {
			b.WriteByte('1')
			z--
		} else {
			b.WriteByte('0')
		}
	}

	return b.String()
}
