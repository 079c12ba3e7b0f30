package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/infotrace/alphabet"
	"github.com/katalvlaran/infotrace/catalog"
	"github.com/katalvlaran/infotrace/fano"
	"github.com/katalvlaran/infotrace/huffman"
	"github.com/katalvlaran/infotrace/sfe"
	"github.com/katalvlaran/infotrace/trace"
)

// coder adapts one prefix-code engine to the common report shape.
type coder struct {
	use   string
	id    string
	short string
	run   func(alphabet.Alphabet) ([]stepLine, alphabet.CodeTable, error)
}

// codingReport is the output of huffman, fano and sfe.
type codingReport struct {
	Algorithm     string             `yaml:"algorithm"`
	Steps         []stepLine         `yaml:"steps"`
	Codes         alphabet.CodeTable `yaml:"codes"`
	PrefixFree    bool               `yaml:"prefix_free"`
	AverageLength float64            `yaml:"average_length"`
	Entropy       float64            `yaml:"entropy"`
}

var (
	huffmanCoder = coder{
		use:   "huffman",
		id:    catalog.Huffman,
		short: "Build a Huffman code",
		run: func(a alphabet.Alphabet) ([]stepLine, alphabet.CodeTable, error) {
			res, err := huffman.Build(a)
			if err != nil {
				return nil, nil, err
			}

			return stepLines(res.Steps, func(s huffman.Step) (trace.Action, string) { return s.Action, s.Message }), res.Codes, nil
		},
	}
	fanoCoder = coder{
		use:   "fano",
		id:    catalog.Fano,
		short: "Build a Shannon-Fano code by recursive splitting",
		run: func(a alphabet.Alphabet) ([]stepLine, alphabet.CodeTable, error) {
			res, err := fano.Encode(a)
			if err != nil {
				return nil, nil, err
			}

			return stepLines(res.Steps, func(s fano.Step) (trace.Action, string) { return s.Action, s.Message }), res.Results, nil
		},
	}
	sfeCoder = coder{
		use:   "sfe",
		id:    catalog.ShannonFanoElias,
		short: "Build a Shannon-Fano-Elias code from interval midpoints",
		run: func(a alphabet.Alphabet) ([]stepLine, alphabet.CodeTable, error) {
			res, err := sfe.Encode(a)
			if err != nil {
				return nil, nil, err
			}

			return stepLines(res.Steps, func(s sfe.Step) (trace.Action, string) { return s.Action, s.Message }), res.Codes, nil
		},
	}
)

func (a *app) coderCmd(c coder) *cobra.Command {
	var symbols, file string

	cmd := &cobra.Command{
		Use:   c.use + " [text]",
		Short: c.short,
		Long: c.short + `.

The alphabet comes from exactly one of:
  --symbols "A=0.4,B=0.3,C=0.2,D=0.1"
  --file alphabet.yaml   (a YAML list of {char, probability})
  a text argument        (character frequencies, normalised)`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			alpha, err := readAlphabet(symbols, file, args)
			if err != nil {
				return err
			}
			a.logger.Debug("encoding", zap.String("algorithm", c.id), zap.Int("symbols", len(alpha)))

			steps, codes, err := c.run(alpha)
			if err != nil {
				return err
			}
			rep := codingReport{
				Algorithm:     c.id,
				Steps:         steps,
				Codes:         codes,
				PrefixFree:    codes.IsPrefixFree(),
				AverageLength: codes.AverageLength(),
				Entropy:       alphabet.Entropy(alpha),
			}

			return a.emit(rep, func() {
				play(a, steps, func(s stepLine) (trace.Action, string) { return s.Action, s.Message })
				fmt.Fprintln(a.out)
				printCodeTable(a, codes)
				fmt.Fprintf(a.out, "\naverage length: %.4f bits\nentropy:        %.4f bits\nprefix-free:    %t\n",
					rep.AverageLength, rep.Entropy, rep.PrefixFree)
			})
		},
	}
	cmd.Flags().StringVarP(&symbols, "symbols", "s", "", "comma-separated char=probability list")
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML file holding the alphabet")

	return cmd
}

var errNoAlphabet = errors.New("one of --symbols, --file or a text argument is required")

// readAlphabet resolves the single alphabet source given on the command line.
func readAlphabet(symbols, file string, args []string) (alphabet.Alphabet, error) {
	sources := 0
	for _, set := range []bool{symbols != "", file != "", len(args) > 0} {
		if set {
			sources++
		}
	}
	if sources != 1 {
		return nil, errNoAlphabet
	}

	switch {
	case symbols != "":
		return alphabet.Parse(symbols)
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read alphabet: %w", err)
		}
		var alpha alphabet.Alphabet
		if err = yaml.Unmarshal(data, &alpha); err != nil {
			return nil, fmt.Errorf("failed to parse alphabet: %w", err)
		}

		return alpha, nil
	default:
		return alphabet.Normalize(alphabet.FromText(args[0]), alphabet.DefaultFloor), nil
	}
}
