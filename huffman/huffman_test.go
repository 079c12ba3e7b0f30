package huffman_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/infotrace/alphabet"
	"github.com/katalvlaran/infotrace/huffman"
	"github.com/katalvlaran/infotrace/trace"
	"github.com/katalvlaran/infotrace/validation"
)

func TestBuild_TooFewSymbols(t *testing.T) {
	res, err := huffman.Build(alphabet.Alphabet{{Char: "A", Probability: 1}})
	assert.ErrorIs(t, err, alphabet.ErrTooFewSymbols)
	assert.True(t, validation.Is(err))
	assert.Empty(t, res.Steps)
	assert.Empty(t, res.Codes)
}

func TestBuild_RejectsNonPositiveWeight(t *testing.T) {
	_, err := huffman.Build(alphabet.Alphabet{{Char: "A", Probability: 1}, {Char: "B", Probability: 0}})
	assert.ErrorIs(t, err, alphabet.ErrBadProbability)
}

// Frequencies {A:3,B:2,C:1} give lengths {1,2,2}; "AAABBC" then costs 9 bits.
func TestBuild_FrequencyExample(t *testing.T) {
	res, err := huffman.Build(alphabet.FromText("AAABBC"))
	require.NoError(t, err)

	lengths := map[string]int{}
	for _, c := range res.Codes {
		lengths[c.Char] = len(c.Code)
	}
	assert.Equal(t, map[string]int{"A": 1, "B": 2, "C": 2}, lengths)

	bits, err := res.Codes.Encode("AAABBC")
	require.NoError(t, err)
	assert.Len(t, bits, 9)

	text, err := res.Codes.Decode(bits)
	require.NoError(t, err)
	assert.Equal(t, "AAABBC", text)
}

func TestBuild_TiesBrokenByInsertionOrder(t *testing.T) {
	a := alphabet.Alphabet{
		{Char: "A", Probability: 1},
		{Char: "B", Probability: 1},
		{Char: "C", Probability: 1},
		{Char: "D", Probability: 1},
	}
	res, err := huffman.Build(a)
	require.NoError(t, err)

	want := map[string]string{"A": "00", "B": "01", "C": "10", "D": "11"}
	if diff := cmp.Diff(want, res.Codes.Map()); diff != "" {
		t.Fatalf("codes mismatch (-want +got):\n%s", diff)
	}

	// merges: (A,B)→4, (C,D)→5, (4,5)→6
	combines := res.Steps[len(a):]
	require.Len(t, combines, 3)
	assert.Equal(t, [2]int{0, 1}, [2]int{combines[0].Left, combines[0].Right})
	assert.Equal(t, [2]int{2, 3}, [2]int{combines[1].Left, combines[1].Right})
	assert.Equal(t, [2]int{4, 5}, [2]int{combines[2].Left, combines[2].Right})
	assert.Equal(t, 6, res.Root)
}

func TestBuild_StepShape(t *testing.T) {
	a := alphabet.Alphabet{
		{Char: "A", Probability: 0.3},
		{Char: "B", Probability: 0.1},
		{Char: "C", Probability: 0.1},
		{Char: "D", Probability: 0.5},
	}
	res, err := huffman.Build(a)
	require.NoError(t, err)

	require.Len(t, res.Steps, 2*len(a)-1)
	for i := 0; i < len(a); i++ {
		assert.Equal(t, trace.Initialize, res.Steps[i].Action)
		assert.Equal(t, i, res.Steps[i].NodeID)
	}
	for _, s := range res.Steps[len(a):] {
		assert.Equal(t, trace.Combine, s.Action)
	}
	assert.Equal(t, "Created leaf node for 'A' with probability 0.300", res.Steps[0].Message)

	root, ok := res.Tree.Node(res.Root)
	require.True(t, ok)
	assert.InDelta(t, 1.0, root.Weight, 1e-9)
	assert.Len(t, res.Tree.Subtree(res.Root), 2*len(a)-1)
	assert.Nil(t, res.Tree.Subtree(99))

	// the most probable symbol gets the shortest code
	d, _ := res.Codes.Lookup("D")
	assert.Len(t, d.Code, 1)
}

func TestBuild_CodesSortedByChar(t *testing.T) {
	res, err := huffman.Build(alphabet.Alphabet{{Char: "Z", Probability: 2}, {Char: "M", Probability: 1}, {Char: "A", Probability: 1}})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "M", "Z"}, []string{res.Codes[0].Char, res.Codes[1].Char, res.Codes[2].Char})
}

func TestBuild_RandomAlphabetsArePrefixFree(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 50; trial++ {
		n := 2 + rng.Intn(20)
		a := make(alphabet.Alphabet, n)
		for i := range a {
			a[i] = alphabet.Symbol{Char: string(rune('a' + i)), Probability: rng.Float64() + 0.001}
		}

		res, err := huffman.Build(a)
		require.NoError(t, err, "trial %d", trial)
		assert.Len(t, res.Codes, n, "every leaf has a code")
		assert.True(t, res.Codes.IsPrefixFree(), "trial %d: %v", trial, res.Codes)
		assert.GreaterOrEqual(t, res.Codes.AverageLength()+1e-9, alphabet.Entropy(alphabet.Normalize(a, alphabet.DefaultFloor)))
	}
}

func TestWithFloor_PanicsOnNonPositive(t *testing.T) {
	assert.Panics(t, func() { huffman.WithFloor(0) })
}

func TestWithFloor_LiftsTinyWeights(t *testing.T) {
	a := alphabet.Alphabet{{Char: "A", Probability: 1}, {Char: "B", Probability: 1e-6}}
	res, err := huffman.Build(a, huffman.WithFloor(0.5))
	require.NoError(t, err)
	b, _ := res.Codes.Lookup("B")
	assert.InDelta(t, 0.5/1.5, b.Probability, 1e-12)
}
