// Package bench - RNG and synthetic input generation.
//
// Goals:
//   - Determinism: same seed ⇒ identical alphabets across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
package bench

import (
	"math"
	"math/rand"
	"strings"

	"github.com/katalvlaran/infotrace/alphabet"
)

// defaultRNGSeed is used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// letters is the draw set for GenerateAlphabet.
const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// lzCopiesPerUnit scales a probability into a repeat count for LZ input text.
const lzCopiesPerUnit = 100

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// GenerateAlphabet draws size letters uniformly from A–Z and returns the
// distinct letters in first-draw order, each with probability
// (occurrences / size). The probabilities sum to 1 up to rounding.
// For size ≥ 2 the result holds at least two letters: when every earlier
// draw hit the same letter, the final draw picks uniformly among the other 25.
// A nil rng uses the default seed.
//
// Complexity: O(size).
func GenerateAlphabet(size int, rng *rand.Rand) alphabet.Alphabet {
	if rng == nil {
		rng = rngFromSeed(0)
	}

	var (
		out   alphabet.Alphabet
		index = make(map[byte]int, len(letters))
		unit  = 1 / float64(size)
	)
	for i := 0; i < size; i++ {
		c := letters[rng.Intn(len(letters))]
		if i == size-1 && len(out) == 1 && out[0].Char[0] == c {
			shift := 1 + rng.Intn(len(letters)-1)
			c = letters[(strings.IndexByte(letters, c)+shift)%len(letters)]
		}
		if j, ok := index[c]; ok {
			out[j].Probability += unit
			continue
		}
		index[c] = len(out)
		out = append(out, alphabet.Symbol{Char: string(c), Probability: unit})
	}

	return out
}

// lzText expands an alphabet into text where each char repeats
// ceil(p·100) times, in alphabet order.
func lzText(a alphabet.Alphabet) string {
	var sb strings.Builder
	for _, s := range a {
		sb.WriteString(strings.Repeat(s.Char, int(math.Ceil(s.Probability*lzCopiesPerUnit))))
	}

	return sb.String()
}
