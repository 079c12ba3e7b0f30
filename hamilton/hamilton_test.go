package hamilton_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/infotrace/graph"
	"github.com/katalvlaran/infotrace/hamilton"
	"github.com/katalvlaran/infotrace/trace"
	"github.com/katalvlaran/infotrace/validation"
)

// square builds A→B, B→C, C→D, D→A plus chords A→C and B→D.
func square(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.New(
		[]graph.Node{{ID: "A"}, {ID: "B"}, {ID: "C"}, {ID: "D"}},
		[]graph.Edge{
			{From: "A", To: "B"}, {From: "B", To: "C"}, {From: "C", To: "D"},
			{From: "D", To: "A"}, {From: "A", To: "C"}, {From: "B", To: "D"},
		},
	)
	require.NoError(t, err)

	return g
}

func paths(cs []hamilton.Cycle) [][]string {
	out := make([][]string, len(cs))
	for i, c := range cs {
		out[i] = c.Path
	}

	return out
}

func TestFindCycles_Square(t *testing.T) {
	g := square(t)
	cycles, err := hamilton.FindCycles(g, hamilton.DefaultMaxCycles)
	require.NoError(t, err)

	want := [][]string{
		{"A", "B", "C", "D", "A"},
		{"B", "C", "D", "A", "B"},
		{"C", "D", "A", "B", "C"},
		{"D", "A", "B", "C", "D"},
	}
	if diff := cmp.Diff(want, paths(cycles)); diff != "" {
		t.Fatalf("cycles mismatch (-want +got):\n%s", diff)
	}
	for _, c := range cycles {
		assert.True(t, c.IsValid)
		assert.Len(t, c.Path, g.NodeCount()+1)
		assert.True(t, hamilton.ValidatePath(c.Path, g).IsValid)
	}
	assert.Equal(t, "Valid Hamilton cycle: A-B-C-D → A", cycles[0].Message)
}

func TestFindCycles_GlobalCap(t *testing.T) {
	cycles, err := hamilton.FindCycles(square(t), 2)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A", "B", "C", "D", "A"}, {"B", "C", "D", "A", "B"}}, paths(cycles))

	k4, err := graph.Complete(4, graph.LetterID)
	require.NoError(t, err)
	cycles, err = hamilton.FindCycles(k4, 3)
	require.NoError(t, err)
	assert.Len(t, cycles, 3, "cap holds even when one start has more cycles")
	for _, c := range cycles {
		assert.Equal(t, "A", c.Path[0])
	}
}

func TestFindCycles_UniqueRotations(t *testing.T) {
	cycles, err := hamilton.FindCycles(square(t), 10, hamilton.WithUniqueRotations())
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A", "B", "C", "D", "A"}}, paths(cycles))

	// K4 has 3! = 6 directed Hamilton cycles up to rotation
	k4, err := graph.Complete(4, nil)
	require.NoError(t, err)
	cycles, err = hamilton.FindCycles(k4, 100, hamilton.WithUniqueRotations())
	require.NoError(t, err)
	assert.Len(t, cycles, 6)

	all, err := hamilton.FindCycles(k4, 100)
	require.NoError(t, err)
	assert.Len(t, all, 24)
}

func TestFindCycles_NoCycle(t *testing.T) {
	p, err := graph.Path(4, nil)
	require.NoError(t, err)
	cycles, err := hamilton.FindCycles(p, 5)
	require.NoError(t, err)
	assert.Empty(t, cycles)

	single, err := graph.Complete(1, nil)
	require.NoError(t, err)
	cycles, err = hamilton.FindCycles(single, 5)
	require.NoError(t, err)
	assert.Empty(t, cycles, "a lone node has no loop back to itself")
}

func TestFindCycles_Rejections(t *testing.T) {
	_, err := hamilton.FindCycles(nil, 1)
	assert.ErrorIs(t, err, hamilton.ErrNilGraph)

	_, err = hamilton.FindCycles(graph.NewGraph(), 1)
	assert.ErrorIs(t, err, hamilton.ErrEmptyGraph)

	_, err = hamilton.FindCycles(square(t), 0)
	assert.ErrorIs(t, err, hamilton.ErrBadMaxCount)
	assert.True(t, validation.Is(err))
}

func TestFindCycles_HooksAndAbort(t *testing.T) {
	var visits, backtracks, found int
	_, err := hamilton.FindCycles(square(t), 10,
		hamilton.WithOnVisit(func(string, []string) error { visits++; return nil }),
		hamilton.WithOnBacktrack(func(string, []string) error { backtracks++; return nil }),
		hamilton.WithOnCycle(func(hamilton.Cycle) error { found++; return nil }),
	)
	require.NoError(t, err)
	assert.Equal(t, visits, backtracks, "every push is popped")
	assert.Equal(t, 4, found)

	stop := errors.New("stop")
	cycles, err := hamilton.FindCycles(square(t), 10,
		hamilton.WithOnCycle(func(hamilton.Cycle) error { return stop }),
	)
	assert.ErrorIs(t, err, stop)
	assert.Nil(t, cycles)
}

func TestTrace_Steps(t *testing.T) {
	res, err := hamilton.Trace(square(t), 1)
	require.NoError(t, err)
	require.Len(t, res.Cycles, 1)

	acts := make([]trace.Action, len(res.Steps))
	for i, s := range res.Steps {
		acts[i] = s.Action
	}
	assert.Equal(t, []trace.Action{
		trace.Visit, trace.Visit, trace.Visit, trace.Visit,
		trace.Cycle,
		trace.Backtrack, trace.Backtrack, trace.Backtrack, trace.Backtrack,
	}, acts)

	first := res.Steps[0]
	assert.Equal(t, "A", first.Current)
	assert.Equal(t, []string{"A"}, first.Path)
	assert.Equal(t, []string{"B", "C"}, first.Candidates)
	assert.Equal(t, "Visit A, path: A", first.Message)

	c := res.Steps[4]
	assert.Equal(t, "D", c.Current)
	assert.Equal(t, []string{"A", "B", "C", "D"}, c.Visited)
	assert.Empty(t, c.Candidates)
	assert.Equal(t, res.Cycles[0].Message, c.Message)

	_, err = hamilton.Trace(nil, 1)
	assert.ErrorIs(t, err, hamilton.ErrNilGraph)
}

func TestValidatePath(t *testing.T) {
	g := square(t)

	ok := hamilton.ValidatePath([]string{"A", "B", "C", "D", "A"}, g)
	assert.True(t, ok.IsValid)
	assert.Empty(t, ok.Issues)
	assert.Equal(t, "Valid Hamilton cycle! All 4 nodes visited exactly once.", ok.Message)

	missing := hamilton.ValidatePath([]string{"A", "B", "D", "A"}, g)
	assert.False(t, missing.IsValid)
	assert.Equal(t, []string{"Path visits 3 unique nodes, but graph has 4 nodes"}, missing.Issues)
	assert.Equal(t, "Invalid path: 1 issue found", missing.Message)

	empty := hamilton.ValidatePath(nil, g)
	assert.False(t, empty.IsValid)
	assert.Equal(t, "Path is empty", empty.Message)
	assert.Equal(t, []string{"Path contains no nodes"}, empty.Issues)
}

func TestValidatePath_AccumulatesIssues(t *testing.T) {
	res := hamilton.ValidatePath([]string{"A", "C", "B", "X"}, square(t))
	assert.False(t, res.IsValid)

	want := []string{
		"Path does not form a cycle: starts at A, ends at X",
		"Path visits 3 unique nodes, but graph has 4 nodes",
		"Node 'X' does not exist in graph",
		"Edge from 'C' to 'B' does not exist",
		"Edge from 'B' to 'X' does not exist",
	}
	if diff := cmp.Diff(want, res.Issues); diff != "" {
		t.Fatalf("issues mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "Invalid path: 5 issues found", res.Message)

	// covers every node and uses only real edges, but returns to A midway
	k3, err := graph.Complete(3, nil)
	require.NoError(t, err)
	revisit := hamilton.ValidatePath([]string{"A", "B", "A", "C", "A"}, k3)
	assert.False(t, revisit.IsValid)
	assert.Equal(t, []string{"Node 'A' is visited more than once"}, revisit.Issues)
	assert.Equal(t, "Invalid path: 1 issue found", revisit.Message)
}

func TestStats(t *testing.T) {
	st := hamilton.Stats(square(t))
	assert.Equal(t, 4, st.Nodes)
	assert.Equal(t, 6, st.Edges)
	assert.InDelta(t, 50.0, st.Density, 1e-9)
	assert.False(t, st.IsComplete)
	assert.True(t, st.StronglyConnected)

	chain, err := graph.Path(3, nil)
	require.NoError(t, err)
	assert.False(t, hamilton.Stats(chain).StronglyConnected)

	k3, err := graph.Complete(3, nil)
	require.NoError(t, err)
	st = hamilton.Stats(k3)
	assert.InDelta(t, 100.0, st.Density, 1e-9)
	assert.True(t, st.IsComplete)
	assert.True(t, hamilton.IsComplete(k3))

	one, err := graph.Complete(1, nil)
	require.NoError(t, err)
	assert.Zero(t, hamilton.Stats(one).Density)
}
