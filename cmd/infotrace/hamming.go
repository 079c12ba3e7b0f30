package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/infotrace/hamming"
	"github.com/katalvlaran/infotrace/trace"
)

type hammingReport struct {
	Steps         []stepLine `yaml:"steps"`
	Input         string     `yaml:"input"`
	Encoded       string     `yaml:"encoded,omitempty"`
	Corrected     string     `yaml:"corrected,omitempty"`
	Data          string     `yaml:"data,omitempty"`
	ErrorPosition int        `yaml:"error_position,omitempty"`
}

func hammingLine(s hamming.Step) (trace.Action, string) { return s.Action, s.Message }

func (a *app) hammingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hamming",
		Short: "Hamming(7,4) encoding and single-error correction",
	}

	encode := &cobra.Command{
		Use:   "encode <bits4>",
		Short: "Encode four data bits into a seven-bit codeword",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := hamming.Encode(args[0])
			if err != nil {
				return err
			}
			rep := hammingReport{Steps: stepLines(res.Steps, hammingLine), Input: args[0], Encoded: res.Encoded}

			return a.emit(rep, func() {
				play(a, res.Steps, hammingLine)
				fmt.Fprintf(a.out, "\nencoded: %s\n", res.Encoded)
			})
		},
	}

	var flip int
	decode := &cobra.Command{
		Use:   "decode <bits7>",
		Short: "Check a seven-bit codeword and correct a single flipped bit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			word := args[0]
			if flip != 0 {
				var err error
				if word, err = hamming.Flip(word, flip); err != nil {
					return err
				}
			}
			res, err := hamming.Decode(word)
			if err != nil {
				return err
			}
			rep := hammingReport{
				Steps:         stepLines(res.Steps, hammingLine),
				Input:         word,
				Corrected:     res.Corrected,
				Data:          res.Data,
				ErrorPosition: res.ErrorPosition,
			}

			return a.emit(rep, func() {
				play(a, res.Steps, hammingLine)
				fmt.Fprintf(a.out, "\nreceived:  %s\ncorrected: %s\ndata:      %s\n", word, res.Corrected, res.Data)
			})
		},
	}
	decode.Flags().IntVar(&flip, "flip", 0, "flip bit N (1-7) before decoding")

	cmd.AddCommand(encode, decode)

	return cmd
}
