package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/infotrace/lz"
	"github.com/katalvlaran/infotrace/trace"
)

type lzReport struct {
	Steps            []stepLine `yaml:"steps"`
	Tokens           []lz.Token `yaml:"tokens"`
	Dictionary       []string   `yaml:"dictionary"`
	CompressionRatio float64    `yaml:"compression_ratio"`
	RoundTrip        bool       `yaml:"round_trip"`
}

func (a *app) lzCmd() *cobra.Command {
	var window, lookahead int

	cmd := &cobra.Command{
		Use:   "lz <text>",
		Short: "Compress text into (offset, length, next char) tokens",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("window") {
				window = a.cfg.LZ.WindowSize
			}
			if !cmd.Flags().Changed("lookahead") {
				lookahead = a.cfg.LZ.LookaheadSize
			}
			text := args[0]
			a.logger.Debug("compressing", zap.Int("window", window), zap.Int("lookahead", lookahead))

			res, err := lz.Compress(text, lz.WithWindowSize(window), lz.WithLookaheadSize(lookahead))
			if err != nil {
				return err
			}
			tokens := res.Tokens()
			restored, err := lz.Decompress(tokens)
			if err != nil {
				return err
			}
			line := func(s lz.Step) (trace.Action, string) { return s.Action, s.Message }
			rep := lzReport{
				Steps:            stepLines(res.Steps, line),
				Tokens:           tokens,
				Dictionary:       res.Dictionary,
				CompressionRatio: res.CompressionRatio(len([]rune(text))),
				RoundTrip:        restored == text,
			}

			return a.emit(rep, func() {
				play(a, res.Steps, line)
				fmt.Fprintln(a.out, "\npos  off  len  next  dict")
				for _, t := range tokens {
					fmt.Fprintf(a.out, "%3d  %3d  %3d  %-4q  %d\n", t.Position, t.Offset, t.Length, t.NextChar, t.DictionaryIndex)
				}
				fmt.Fprintf(a.out, "\ndictionary: %q\nratio:      %.2f%%\nround trip: %t\n",
					rep.Dictionary, rep.CompressionRatio, rep.RoundTrip)
			})
		},
	}
	cmd.Flags().IntVar(&window, "window", 0, "search window in runes (default lz.window_size)")
	cmd.Flags().IntVar(&lookahead, "lookahead", 0, "maximum match length (default lz.lookahead_size)")

	return cmd
}
