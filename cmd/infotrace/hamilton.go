package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/infotrace/graph"
	"github.com/katalvlaran/infotrace/hamilton"
	"github.com/katalvlaran/infotrace/trace"
)

// graphFile is the YAML layout accepted by --graph.
type graphFile struct {
	Nodes []graph.Node `yaml:"nodes"`
	Edges []graph.Edge `yaml:"edges"`
}

// graphSource selects where the graph comes from.
type graphSource struct {
	file     string
	complete int
	ring     int
}

var errNoGraph = errors.New("exactly one of --graph, --complete or --ring is required")

func (s *graphSource) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&s.file, "graph", "g", "", "YAML file with nodes and edges")
	cmd.Flags().IntVar(&s.complete, "complete", 0, "use the complete directed graph on N nodes")
	cmd.Flags().IntVar(&s.ring, "ring", 0, "use the directed ring on N nodes")
}

func (s *graphSource) load() (*graph.Graph, error) {
	sources := 0
	for _, set := range []bool{s.file != "", s.complete != 0, s.ring != 0} {
		if set {
			sources++
		}
	}
	if sources != 1 {
		return nil, errNoGraph
	}

	switch {
	case s.complete != 0:
		return graph.Complete(s.complete, graph.LetterID)
	case s.ring != 0:
		return graph.Cycle(s.ring, graph.LetterID)
	}
	data, err := os.ReadFile(s.file)
	if err != nil {
		return nil, fmt.Errorf("failed to read graph: %w", err)
	}
	var gf graphFile
	if err = yaml.Unmarshal(data, &gf); err != nil {
		return nil, fmt.Errorf("failed to parse graph: %w", err)
	}

	return graph.New(gf.Nodes, gf.Edges)
}

type hamiltonReport struct {
	Steps  []stepLine       `yaml:"steps"`
	Cycles []hamilton.Cycle `yaml:"cycles"`
}

func (a *app) hamiltonCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hamilton",
		Short: "Hamilton cycle search, path validation and graph statistics",
	}
	cmd.AddCommand(a.hamiltonFindCmd(), a.hamiltonValidateCmd(), a.hamiltonStatsCmd())

	return cmd
}

func (a *app) hamiltonFindCmd() *cobra.Command {
	var (
		src       graphSource
		maxCycles int
		unique    bool
	)
	cmd := &cobra.Command{
		Use:   "find",
		Short: "Enumerate Hamilton cycles by backtracking",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := src.load()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("max") {
				maxCycles = a.cfg.Hamilton.MaxCycles
			}
			if !cmd.Flags().Changed("unique") {
				unique = a.cfg.Hamilton.UniqueRotations
			}
			var opts []hamilton.Option
			if unique {
				opts = append(opts, hamilton.WithUniqueRotations())
			}
			a.logger.Debug("searching",
				zap.Int("nodes", g.NodeCount()),
				zap.Int("edges", g.EdgeCount()),
				zap.Int("max", maxCycles),
				zap.Bool("unique", unique))

			res, err := hamilton.Trace(g, maxCycles, opts...)
			if err != nil {
				return err
			}
			line := func(s hamilton.Step) (trace.Action, string) { return s.Action, s.Message }
			rep := hamiltonReport{Steps: stepLines(res.Steps, line), Cycles: res.Cycles}

			return a.emit(rep, func() {
				play(a, res.Steps, line)
				fmt.Fprintf(a.out, "\n%d cycle(s)\n", len(res.Cycles))
				for _, c := range res.Cycles {
					fmt.Fprintln(a.out, strings.Join(c.Path, " → "))
				}
			})
		},
	}
	src.register(cmd)
	cmd.Flags().IntVar(&maxCycles, "max", hamilton.DefaultMaxCycles, "stop after N cycles (default hamilton.max_cycles)")
	cmd.Flags().BoolVar(&unique, "unique", false, "report each cycle once regardless of start node")

	return cmd
}

func (a *app) hamiltonValidateCmd() *cobra.Command {
	var (
		src  graphSource
		path string
	)
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check whether a closed path is a Hamilton cycle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := src.load()
			if err != nil {
				return err
			}
			v := hamilton.ValidatePath(splitPath(path), g)

			return a.emit(v, func() {
				fmt.Fprintln(a.out, v.Message)
				for _, issue := range v.Issues {
					fmt.Fprintf(a.out, "  - %s\n", issue)
				}
			})
		},
	}
	src.register(cmd)
	cmd.Flags().StringVarP(&path, "path", "p", "", "comma-separated node IDs, e.g. A,B,C,A")

	return cmd
}

func (a *app) hamiltonStatsCmd() *cobra.Command {
	var src graphSource
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Report node and edge counts, density and completeness",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := src.load()
			if err != nil {
				return err
			}
			st := hamilton.Stats(g)

			return a.emit(st, func() {
				fmt.Fprintf(a.out, "nodes:     %d\nedges:     %d\ndensity:   %.2f%%\ncomplete:  %t\nconnected: %t\n",
					st.Nodes, st.Edges, st.Density, st.IsComplete, st.StronglyConnected)
			})
		},
	}
	src.register(cmd)

	return cmd
}

// splitPath parses "A, B,C" into node IDs, dropping empty fields.
func splitPath(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}

	return out
}
