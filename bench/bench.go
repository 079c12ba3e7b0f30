// Package bench times the compression engines over synthetic alphabets.
//
// It is a timing wrapper only: every run drives the real engine and any
// engine error is returned as is, wrapped with the algorithm ID. The
// generated input is built once per Run and reused for every iteration, so
// iterations differ only in timing.
package bench

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/infotrace/alphabet"
	"github.com/katalvlaran/infotrace/catalog"
	"github.com/katalvlaran/infotrace/fano"
	"github.com/katalvlaran/infotrace/huffman"
	"github.com/katalvlaran/infotrace/lz"
	"github.com/katalvlaran/infotrace/sfe"
	"github.com/katalvlaran/infotrace/validation"
)

const (
	opRun     = "bench.Run"
	opCompare = "bench.Compare"

	// DefaultIterations matches the comparison dashboard default.
	DefaultIterations = 5

	// minDataSize guarantees two distinct letters, the minimum of the tree coders.
	minDataSize = 2
)

// Sentinel errors.
var (
	ErrNotBenchmarkable = errors.New("bench: algorithm is not a compression engine")
	ErrBadDataSize      = errors.New("bench: data size must be at least 2")
	ErrBadIterations    = errors.New("bench: iterations must be at least 1")
)

// Result reports the timings of one Run.
type Result struct {
	Algorithm  string          `yaml:"algorithm"`
	DataSize   int             `yaml:"data_size"`
	Iterations int             `yaml:"iterations"`
	TotalTime  time.Duration   `yaml:"total_time"`
	AvgTime    time.Duration   `yaml:"avg_time"`
	Runs       []time.Duration `yaml:"runs"`
}

// Option configures Run and Compare.
type Option func(*config)

type config struct {
	rng    *rand.Rand
	logger *zap.Logger
	now    func() time.Time
}

// WithSeed makes input generation deterministic for seed (0 ⇒ default seed).
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rngFromSeed(seed) }
}

// WithRand uses r for input generation. Panics if r is nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("bench: WithRand(nil)")
	}

	return func(c *config) { c.rng = r }
}

// WithLogger sets the logger for per-iteration debug output. Panics if l is nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("bench: WithLogger(nil)")
	}

	return func(c *config) { c.logger = l }
}

// WithClock replaces time.Now. Panics if now is nil.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("bench: WithClock(nil)")
	}

	return func(c *config) { c.now = now }
}

func newConfig(opts []Option) config {
	c := config{logger: zap.NewNop(), now: time.Now}
	for _, opt := range opts {
		opt(&c)
	}
	if c.rng == nil {
		c.rng = rngFromSeed(0)
	}

	return c
}

// runner executes one engine over prepared input.
type runner func() error

// prepare builds the input for id once and returns a closure that runs the
// engine over it.
func prepare(id string, a alphabet.Alphabet) (runner, error) {
	switch id {
	case catalog.Huffman:
		return func() error { _, err := huffman.Build(a); return err }, nil
	case catalog.Fano:
		return func() error { _, err := fano.Encode(a); return err }, nil
	case catalog.ShannonFanoElias:
		return func() error { _, err := sfe.Encode(a); return err }, nil
	case catalog.LempelZiv:
		text := lzText(a)
		return func() error { _, err := lz.Compress(text); return err }, nil
	}
	if _, err := catalog.Get(id); err != nil {
		return nil, validation.Newf(opRun, catalog.ErrUnknownAlgorithm, "%q", id)
	}

	return nil, validation.Newf(opRun, ErrNotBenchmarkable, "%q", id)
}

// Run times algorithmID over a generated alphabet of dataSize draws,
// iterations times. dataSize must be at least 2 so every engine receives two
// distinct letters.
func Run(algorithmID string, dataSize, iterations int, opts ...Option) (Result, error) {
	if dataSize < minDataSize {
		return Result{}, validation.Newf(opRun, ErrBadDataSize, "got %d", dataSize)
	}
	if iterations < 1 {
		return Result{}, validation.Newf(opRun, ErrBadIterations, "got %d", iterations)
	}
	cfg := newConfig(opts)

	return run(cfg, algorithmID, GenerateAlphabet(dataSize, cfg.rng), dataSize, iterations)
}

func run(cfg config, id string, a alphabet.Alphabet, dataSize, iterations int) (Result, error) {
	exec, err := prepare(id, a)
	if err != nil {
		return Result{}, err
	}

	res := Result{Algorithm: id, DataSize: dataSize, Iterations: iterations, Runs: make([]time.Duration, 0, iterations)}
	for i := 0; i < iterations; i++ {
		start := cfg.now()
		if err = exec(); err != nil {
			return Result{}, fmt.Errorf("bench: %s iteration %d: %w", id, i, err)
		}
		d := cfg.now().Sub(start)
		res.Runs = append(res.Runs, d)
		res.TotalTime += d
		cfg.logger.Debug("bench iteration",
			zap.String("algorithm", id),
			zap.Int("iteration", i),
			zap.Int("symbols", len(a)),
			zap.Duration("elapsed", d))
	}
	res.AvgTime = res.TotalTime / time.Duration(iterations)
	cfg.logger.Info("bench finished",
		zap.String("algorithm", id),
		zap.Int("data_size", dataSize),
		zap.Duration("total", res.TotalTime),
		zap.Duration("avg", res.AvgTime))

	return res, nil
}

// Compare runs every compression engine over one shared generated alphabet
// and returns the results fastest first. Ties keep catalog order.
func Compare(dataSize, iterations int, opts ...Option) ([]Result, error) {
	if dataSize < minDataSize {
		return nil, validation.Newf(opCompare, ErrBadDataSize, "got %d", dataSize)
	}
	if iterations < 1 {
		return nil, validation.Newf(opCompare, ErrBadIterations, "got %d", iterations)
	}
	cfg := newConfig(opts)
	a := GenerateAlphabet(dataSize, cfg.rng)

	var out []Result
	for _, id := range catalog.CompressionIDs() {
		res, err := run(cfg, id, a, dataSize, iterations)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].AvgTime < out[j].AvgTime })

	return out, nil
}
