// Package hamming implements a fixed (7,4) parity codec with step tracing.
//
// Codeword layout, 1-indexed: [p1 p2 d1 p4 d2 d3 d4].
//
// Encode uses the fixed parity formulas
//
//	p1 = d1 ⊕ d3
//	p2 = d1 ⊕ d2
//	p4 = d2 ⊕ d3 ⊕ d4
//
// Decode recomputes the positional checks over {1,3,5,7}, {2,3,6,7} and
// {4,5,6,7}; their weighted sum is the 1-indexed error position (0 = none).
// A nonzero position is flipped and the data bits are read from 3,5,6,7.
//
// The encoder formulas agree with the positional checks exactly when
// d2 ⊕ d3 ⊕ d4 == 0 (for example 1011); other words decode with a nonzero
// syndrome. Both sides are kept as defined.
package hamming

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/infotrace/trace"
	"github.com/katalvlaran/infotrace/validation"
)

const (
	opEncode = "hamming.Encode"
	opDecode = "hamming.Decode"
	opFlip   = "hamming.Flip"

	// DataBits is the input width of Encode.
	DataBits = 4
	// CodeBits is the input width of Decode.
	CodeBits = 7
)

// Sentinel errors.
var (
	ErrLength    = errors.New("hamming: wrong bit length")
	ErrNotBinary = errors.New("hamming: input must contain only '0' and '1'")
	ErrPosition  = errors.New("hamming: bit position out of range")
)

// Step is one traced transition. Bits is the codeword as known after the
// step, '?' marking positions not yet computed.
type Step struct {
	Action   trace.Action
	Message  string
	Bits     string
	Position int
}

// EncodeResult is the outcome of Encode.
type EncodeResult struct {
	Steps   []Step
	Encoded string
}

// DecodeResult is the outcome of Decode.
type DecodeResult struct {
	Steps []Step
	// Corrected is the codeword after flipping ErrorPosition, if any.
	Corrected string
	// Data holds bits 3,5,6,7 of Corrected.
	Data string
	// ErrorPosition is 1..7, or 0 when every check passed.
	ErrorPosition int
}

// Encode turns four data bits into a seven-bit codeword.
func Encode(data string) (EncodeResult, error) {
	d, err := parse(opEncode, data, DataBits)
	if err != nil {
		return EncodeResult{}, err
	}

	code := []byte("???????")
	steps := []Step{{
		Action:  trace.Input,
		Message: fmt.Sprintf("Input data bits: d1=%d, d2=%d, d3=%d, d4=%d", d[0], d[1], d[2], d[3]),
		Bits:    string(code),
	}}

	code[2], code[4], code[5], code[6] = bit(d[0]), bit(d[1]), bit(d[2]), bit(d[3])
	steps = append(steps, Step{
		Action:  trace.Assign,
		Message: "Assign data bits to positions (non-parity positions): p1=?, p2=?, d1=3, d2=5, d3=6, d4=7",
		Bits:    string(code),
	})

	p1 := d[0] ^ d[2]
	code[0] = bit(p1)
	steps = append(steps, Step{
		Action:   trace.Parity,
		Message:  fmt.Sprintf("P1 (covers positions 1,3,5,7): p1 = d1 ⊕ d3 = %d ⊕ %d = %d", d[0], d[2], p1),
		Bits:     string(code),
		Position: 1,
	})

	p2 := d[0] ^ d[1]
	code[1] = bit(p2)
	steps = append(steps, Step{
		Action:   trace.Parity,
		Message:  fmt.Sprintf("P2 (covers positions 2,3,6,7): p2 = d1 ⊕ d2 = %d ⊕ %d = %d", d[0], d[1], p2),
		Bits:     string(code),
		Position: 2,
	})

	p4 := d[1] ^ d[2] ^ d[3]
	code[3] = bit(p4)
	steps = append(steps, Step{
		Action:   trace.Parity,
		Message:  fmt.Sprintf("P4 (covers positions 4,5,6,7): p4 = d2 ⊕ d3 ⊕ d4 = %d ⊕ %d ⊕ %d = %d", d[1], d[2], d[3], p4),
		Bits:     string(code),
		Position: 4,
	})

	encoded := string(code)
	steps = append(steps, Step{
		Action:  trace.Complete,
		Message: fmt.Sprintf("Encoded result: %s (7 bits with 3 parity bits)", encoded),
		Bits:    encoded,
	})

	return EncodeResult{Steps: steps, Encoded: encoded}, nil
}

// parity check coverage, 0-indexed, with the syndrome weight of each check.
var checks = []struct {
	weight int
	label  string
	cover  [4]int
}{
	{1, "P1 check (positions 1,3,5,7)", [4]int{0, 2, 4, 6}},
	{2, "P2 check (positions 2,3,6,7)", [4]int{1, 2, 5, 6}},
	{4, "P4 check (positions 4,5,6,7)", [4]int{3, 4, 5, 6}},
}

// Decode checks a seven-bit codeword, corrects at most one flipped bit and
// extracts the data bits.
func Decode(codeword string) (DecodeResult, error) {
	b, err := parse(opDecode, codeword, CodeBits)
	if err != nil {
		return DecodeResult{}, err
	}

	steps := []Step{{
		Action:  trace.Received,
		Message: fmt.Sprintf("Received: %s. Checking parity bits to detect errors...", codeword),
		Bits:    codeword,
	}}

	errPos := 0
	for _, c := range checks {
		i := c.cover
		v := b[i[0]] ^ b[i[1]] ^ b[i[2]] ^ b[i[3]]
		verdict := "✓ OK"
		if v == 1 {
			verdict = "✗ ERROR"
			errPos += c.weight
		}
		steps = append(steps, Step{
			Action: trace.Check,
			Message: fmt.Sprintf("%s: %d ⊕ %d ⊕ %d ⊕ %d = %d %s",
				c.label, b[i[0]], b[i[1]], b[i[2]], b[i[3]], v, verdict),
			Bits:     codeword,
			Position: c.weight,
		})
	}

	corrected := []byte(codeword)
	if errPos == 0 {
		steps = append(steps, Step{
			Action:  trace.Valid,
			Message: "No errors detected! Code is valid.",
			Bits:    codeword,
		})
	} else {
		steps = append(steps, Step{
			Action:   trace.ErrorFound,
			Message:  fmt.Sprintf("Error detected at position %d! Flipping bit at position %d...", errPos, errPos),
			Bits:     codeword,
			Position: errPos,
		})
		corrected[errPos-1] ^= '0' ^ '1'
		steps = append(steps, Step{
			Action: trace.Corrected,
			Message: fmt.Sprintf("Corrected code: %s. Extracted data bits from positions 3,5,6,7: %s",
				corrected, extract(corrected)),
			Bits:     string(corrected),
			Position: errPos,
		})
	}

	return DecodeResult{
		Steps:         steps,
		Corrected:     string(corrected),
		Data:          extract(corrected),
		ErrorPosition: errPos,
	}, nil
}

// Flip returns codeword with the bit at 1-indexed position inverted.
func Flip(codeword string, position int) (string, error) {
	if _, err := parse(opFlip, codeword, len(codeword)); err != nil {
		return "", err
	}
	if position < 1 || position > len(codeword) {
		return "", validation.Newf(opFlip, ErrPosition, "%d not in [1,%d]", position, len(codeword))
	}
	out := []byte(codeword)
	out[position-1] ^= '0' ^ '1'

	return string(out), nil
}

// parse converts a '0'/'1' string of exactly n characters to bit values.
func parse(op, s string, n int) ([]int, error) {
	if len(s) != n {
		return nil, validation.Newf(op, ErrLength, "input must be exactly %d bits, got %d", n, len(s))
	}
	out := make([]int, n)
	for i := 0; i < n; i++ {
		switch s[i] {
		case '0':
		case '1':
			out[i] = 1
		default:
			return nil, validation.Newf(op, ErrNotBinary, "%q at position %d", s[i], i+1)
		}
	}

	return out, nil
}

func bit(v int) byte {
	return byte('0' + v)
}

func extract(code []byte) string {
	var sb strings.Builder
	for _, i := range [4]int{2, 4, 5, 6} {
		sb.WriteByte(code[i])
	}

	return sb.String()
}
