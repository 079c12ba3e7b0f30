package hamilton

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/infotrace/graph"
	"github.com/katalvlaran/infotrace/trace"
	"github.com/katalvlaran/infotrace/validation"
)

const (
	opFindCycles = "hamilton.FindCycles"
	opTrace      = "hamilton.Trace"
)

// FindCycles returns up to maxCount Hamilton cycles of g in discovery order.
// Each start node is tried in node order; from each node the search follows
// out-edges in edge order, backtracking on dead ends. Every returned cycle has
// IsValid set.
//
// Complexity: O(n!) time in the worst case, O(n) stack depth.
func FindCycles(g *graph.Graph, maxCount int, opts ...Option) ([]Cycle, error) {
	if err := checkInput(opFindCycles, g, maxCount); err != nil {
		return nil, err
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	s := newSearcher(g, maxCount, cfg)
	if err := s.run(); err != nil {
		return nil, err
	}

	return s.cycles, nil
}

// Trace runs FindCycles and records a visit step for every push, a
// backtrack step for every pop and a cycle step for every recorded cycle.
// Hooks passed in opts are replaced by the recorder; policies such as
// WithUniqueRotations still apply.
func Trace(g *graph.Graph, maxCount int, opts ...Option) (TraceResult, error) {
	if err := checkInput(opTrace, g, maxCount); err != nil {
		return TraceResult{}, err
	}

	var (
		steps []Step
		adj   = g.Adjacency()
		order = g.NodeIDs()
	)
	snapshot := func(act trace.Action, node, msg string, path []string) {
		onPath := make(map[string]bool, len(path))
		for _, id := range path {
			onPath[id] = true
		}
		var visited, candidates []string
		for _, id := range order {
			if onPath[id] {
				visited = append(visited, id)
			}
		}
		for _, nb := range adj[node] {
			if !onPath[nb] {
				candidates = append(candidates, nb)
			}
		}
		steps = append(steps, Step{
			Action:     act,
			Message:    msg,
			Current:    node,
			Visited:    visited,
			Path:       append([]string(nil), path...),
			Candidates: candidates,
		})
	}

	hooks := []Option{
		WithOnVisit(func(node string, path []string) error {
			snapshot(trace.Visit, node, fmt.Sprintf("Visit %s, path: %s", node, strings.Join(path, " → ")), path)
			return nil
		}),
		WithOnBacktrack(func(node string, path []string) error {
			snapshot(trace.Backtrack, node, fmt.Sprintf("Backtrack from %s", node), path)
			return nil
		}),
		WithOnCycle(func(c Cycle) error {
			last := c.Path[len(c.Path)-2]
			snapshot(trace.Cycle, last, c.Message, c.Path[:len(c.Path)-1])
			return nil
		}),
	}
	cycles, err := FindCycles(g, maxCount, append(append([]Option(nil), opts...), hooks...)...)
	if err != nil {
		return TraceResult{}, err
	}

	return TraceResult{Steps: steps, Cycles: cycles}, nil
}

func checkInput(op string, g *graph.Graph, maxCount int) error {
	if g == nil {
		return validation.New(op, ErrNilGraph)
	}
	if g.NodeCount() == 0 {
		return validation.New(op, ErrEmptyGraph)
	}
	if maxCount < 1 {
		return validation.Newf(op, ErrBadMaxCount, "got %d", maxCount)
	}

	return nil
}

// searcher holds the backtracking state for one FindCycles call.
type searcher struct {
	ids []string
	adj map[string][]string
	max int
	cfg Options

	path   []string
	onPath map[string]bool
	seen   map[string]struct{}
	cycles []Cycle
}

func newSearcher(g *graph.Graph, maxCount int, cfg Options) *searcher {
	return &searcher{
		ids:    g.NodeIDs(),
		adj:    g.Adjacency(),
		max:    maxCount,
		cfg:    cfg,
		onPath: make(map[string]bool),
		seen:   make(map[string]struct{}),
	}
}

func (s *searcher) full() bool { return len(s.cycles) >= s.max }

func (s *searcher) run() error {
	for _, start := range s.ids {
		if s.full() {
			break
		}
		if err := s.push(start); err != nil {
			return err
		}
		if err := s.extend(start, start); err != nil {
			return err
		}
		if err := s.pop(); err != nil {
			return err
		}
	}

	return nil
}

// extend grows the path from cur, recording a cycle when every node is on
// the path and cur links back to start.
func (s *searcher) extend(start, cur string) error {
	if s.full() {
		return nil
	}
	if len(s.path) == len(s.ids) {
		if s.linked(cur, start) {
			return s.record()
		}
		return nil
	}

	for _, nb := range s.adj[cur] {
		if s.onPath[nb] {
			continue
		}
		if s.full() {
			return nil
		}
		if err := s.push(nb); err != nil {
			return err
		}
		if err := s.extend(start, nb); err != nil {
			return err
		}
		if err := s.pop(); err != nil {
			return err
		}
	}

	return nil
}

func (s *searcher) linked(from, to string) bool {
	for _, nb := range s.adj[from] {
		if nb == to {
			return true
		}
	}

	return false
}

func (s *searcher) push(node string) error {
	s.path = append(s.path, node)
	s.onPath[node] = true
	if s.cfg.OnVisit != nil {
		if err := s.cfg.OnVisit(node, s.path); err != nil {
			return fmt.Errorf("hamilton: OnVisit(%s): %w", node, err)
		}
	}

	return nil
}

func (s *searcher) pop() error {
	node := s.path[len(s.path)-1]
	if s.cfg.OnBacktrack != nil {
		if err := s.cfg.OnBacktrack(node, s.path); err != nil {
			return fmt.Errorf("hamilton: OnBacktrack(%s): %w", node, err)
		}
	}
	s.path = s.path[:len(s.path)-1]
	delete(s.onPath, node)

	return nil
}

func (s *searcher) record() error {
	key := strings.Join(s.path, "-")
	dedupe := key
	if s.cfg.UniqueRotations {
		dedupe = rotationKey(s.path)
	}
	if _, dup := s.seen[dedupe]; dup {
		return nil
	}
	s.seen[dedupe] = struct{}{}

	start := s.path[0]
	closed := make([]string, 0, len(s.path)+1)
	closed = append(closed, s.path...)
	closed = append(closed, start)
	c := Cycle{
		Path:    closed,
		IsValid: true,
		Message: fmt.Sprintf("Valid Hamilton cycle: %s → %s", key, start),
	}
	s.cycles = append(s.cycles, c)

	if s.cfg.OnCycle != nil {
		if err := s.cfg.OnCycle(c); err != nil {
			return fmt.Errorf("hamilton: OnCycle: %w", err)
		}
	}

	return nil
}
