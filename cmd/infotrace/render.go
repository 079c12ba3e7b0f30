package main

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/infotrace/alphabet"
	"github.com/katalvlaran/infotrace/trace"
)

// play prints one numbered line per step, pausing cfg.Playback.Delay between
// lines. Nothing is printed in yaml mode; the report carries the steps.
func play[S any](a *app, steps []S, line func(S) (trace.Action, string)) {
	if a.output != outputText {
		return
	}
	c := trace.NewCursor(steps)
	for {
		s, ok := c.Current()
		if !ok {
			return
		}
		action, msg := line(s)
		fmt.Fprintf(a.out, "%3d  %-11s %s\n", c.Index()+1, action, msg)
		if !c.Next() {
			return
		}
		if d := a.cfg.Playback.Delay; d > 0 {
			a.sleep(d)
		}
	}
}

// emit writes v as YAML in yaml mode, otherwise calls text.
func (a *app) emit(v any, text func()) error {
	if a.output == outputYAML {
		enc := yaml.NewEncoder(a.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode output: %w", err)
		}

		return enc.Close()
	}
	text()

	return nil
}

// stepLine is the yaml form of one step.
type stepLine struct {
	Action  trace.Action `yaml:"action"`
	Message string       `yaml:"message"`
}

func stepLines[S any](steps []S, line func(S) (trace.Action, string)) []stepLine {
	out := make([]stepLine, len(steps))
	for i, s := range steps {
		out[i].Action, out[i].Message = line(s)
	}

	return out
}

func printCodeTable(a *app, t alphabet.CodeTable) {
	fmt.Fprintln(a.out, "char  prob    code")
	for _, r := range t {
		fmt.Fprintf(a.out, "%-4s  %.4f  %s\n", r.Char, r.Probability, r.Code)
	}
}
