package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/infotrace/internal/config"
)

const (
	outputText = "text"
	outputYAML = "yaml"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	out io.Writer

	// flags
	configPath string
	verbose    bool
	output     string
	delay      time.Duration

	cfg    *config.Config
	logger *zap.Logger

	// sleep paces step playback; tests replace it.
	sleep func(time.Duration)
}

// newRootCmd builds the command tree writing results to out.
func newRootCmd(out io.Writer) *cobra.Command {
	return newApp(out).rootCmd()
}

func newApp(out io.Writer) *app {
	return &app{out: out, sleep: time.Sleep}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "infotrace",
		Short: "Step-traced information theory and graph algorithms",
		Long: `infotrace runs small textbook algorithms and prints every step they take:
Huffman, Fano and Shannon-Fano-Elias prefix codes, LZ77-style dictionary
compression, Hamming(7,4) error correction and Hamilton cycle search.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.SetOut(a.out)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "infotrace.yaml", "config file (missing file uses defaults)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	pf.StringVarP(&a.output, "output", "o", outputText, "output format: text or yaml")
	pf.DurationVar(&a.delay, "delay", 0, "pause between printed steps (overrides playback.delay)")

	root.AddCommand(
		a.coderCmd(huffmanCoder),
		a.coderCmd(fanoCoder),
		a.coderCmd(sfeCoder),
		a.lzCmd(),
		a.hammingCmd(),
		a.hamiltonCmd(),
		a.benchCmd(),
		a.compareCmd(),
		a.infoCmd(),
	)

	return root
}

// setup loads configuration and builds the logger before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	switch a.output {
	case outputText, outputYAML:
	default:
		return fmt.Errorf("unknown output format %q (want %s or %s)", a.output, outputText, outputYAML)
	}

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("delay") {
		if a.delay < 0 {
			return fmt.Errorf("%w: --delay=%s", config.ErrInvalid, a.delay)
		}
		cfg.Playback.Delay = a.delay
	}
	a.cfg = cfg

	level, err := zapcore.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %w", err)
	}
	if a.verbose {
		level = zapcore.DebugLevel
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	if a.logger, err = zc.Build(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger.Debug("config loaded",
		zap.String("path", a.configPath),
		zap.Duration("delay", cfg.Playback.Delay))

	return nil
}
