package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/infotrace/bench"
	"github.com/katalvlaran/infotrace/catalog"
)

// benchFlags are shared by bench and compare; unset flags fall back to config.
type benchFlags struct {
	size       int
	iterations int
	seed       int64
}

func (f *benchFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.size, "size", 0, "number of symbol draws (default bench.data_size)")
	cmd.Flags().IntVar(&f.iterations, "iterations", 0, "timed runs per algorithm (default bench.iterations)")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "input generation seed (default bench.seed)")
}

func (f *benchFlags) resolve(a *app, cmd *cobra.Command) []bench.Option {
	if !cmd.Flags().Changed("size") {
		f.size = a.cfg.Bench.DataSize
	}
	if !cmd.Flags().Changed("iterations") {
		f.iterations = a.cfg.Bench.Iterations
	}
	if !cmd.Flags().Changed("seed") {
		f.seed = a.cfg.Bench.Seed
	}

	return []bench.Option{bench.WithSeed(f.seed), bench.WithLogger(a.logger)}
}

func printBench(a *app, rs []bench.Result) {
	fmt.Fprintf(a.out, "%-18s %8s %6s %14s %14s\n", "algorithm", "size", "iters", "total", "avg")
	for _, r := range rs {
		fmt.Fprintf(a.out, "%-18s %8d %6d %14s %14s\n", r.Algorithm, r.DataSize, r.Iterations, r.TotalTime, r.AvgTime)
	}
}

func (a *app) benchCmd() *cobra.Command {
	var f benchFlags
	cmd := &cobra.Command{
		Use:       "bench <algorithm>",
		Short:     "Time one compression engine over a generated alphabet",
		Args:      cobra.ExactArgs(1),
		ValidArgs: catalog.CompressionIDs(),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := f.resolve(a, cmd)
			res, err := bench.Run(args[0], f.size, f.iterations, opts...)
			if err != nil {
				return err
			}

			return a.emit(res, func() { printBench(a, []bench.Result{res}) })
		},
	}
	f.register(cmd)

	return cmd
}

func (a *app) compareCmd() *cobra.Command {
	var f benchFlags
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Time every compression engine over one shared alphabet, fastest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := f.resolve(a, cmd)
			rs, err := bench.Compare(f.size, f.iterations, opts...)
			if err != nil {
				return err
			}

			return a.emit(rs, func() { printBench(a, rs) })
		},
	}
	f.register(cmd)

	return cmd
}

func (a *app) infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "info [algorithm]",
		Short:     "Describe an algorithm, or list every algorithm",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: catalog.IDs(),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				all := catalog.All()

				return a.emit(all, func() {
					for _, in := range all {
						fmt.Fprintf(a.out, "%-18s %-17s %s\n", in.ID, in.Type, in.Name)
					}
				})
			}
			in, err := catalog.Get(args[0])
			if err != nil {
				return err
			}

			return a.emit(in, func() {
				fmt.Fprintf(a.out, "%s (%s)\n\n%s\n\n", in.Name, in.Type, in.Description)
				fmt.Fprintf(a.out, "time:  best %s, average %s, worst %s\nspace: %s\n",
					in.TimeComplexity.Best, in.TimeComplexity.Average, in.TimeComplexity.Worst, in.SpaceComplexity)
				for _, sec := range []struct {
					title string
					items []string
				}{{"use cases", in.UseCases}, {"pros", in.Pros}, {"cons", in.Cons}} {
					fmt.Fprintf(a.out, "\n%s:\n  - %s\n", sec.title, strings.Join(sec.items, "\n  - "))
				}
			})
		},
	}
}
