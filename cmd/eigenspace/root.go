// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"math/big"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/eigenspace/eigenspace"
	"github.com/katalvlaran/eigenspace/internal/problem"
	"github.com/katalvlaran/eigenspace/sqrtext"
)

const (
	appName = "eigenspace"
	version = "v0.3.0"
)

// vectorError is the diagnostic type produced by the Q(√r) engine.
type vectorError = eigenspace.VectorError[*sqrtext.Value[*big.Rat]]

// logOptions are the persistent logging flags.
type logOptions struct {
	level string
	json  bool
}

func (o *logOptions) bind(fs *pflag.FlagSet) {
	fs.StringVar(&o.level, "log-level", "warn", "Log level (trace|debug|info|warn|error)")
	fs.BoolVar(&o.json, "json-log", false, "Emit JSON logs instead of console output")
}

// setup points the global logger at w. Every record carries a run id.
func (o *logOptions) setup(w io.Writer) error {
	lvl, err := zerolog.ParseLevel(o.level)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", o.level, err)
	}
	zerolog.TimeFieldFormat = time.RFC3339

	var sink io.Writer = w
	if !o.json {
		sink = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen, NoColor: !isTerminal(w)}
	}
	log.Logger = zerolog.New(sink).Level(lvl).With().
		Timestamp().
		Str("run", uuid.NewString()).
		Logger()

	return nil
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func newRootCmd() *cobra.Command {
	var logs logOptions
	root := &cobra.Command{
		Use:     appName,
		Short:   "Exact Gram realization of cosine tables",
		Version: version,
		Long: `eigenspace builds explicit coordinates for unit vectors with prescribed
pairwise inner products, computing exactly over the rationals extended by
square roots. Problems are YAML files with a dimension and a cosine table.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logs.setup(cmd.ErrOrStderr())
		},
	}
	logs.bind(root.PersistentFlags())

	root.AddCommand(realizeCmd(), vectorCmd(), checkCmd(), generateCmd(), watchCmd())

	return root
}

// loadEngine reads a problem file and builds its engine with the global logger.
func loadEngine(path string) (*problem.Problem, *eigenspace.Rational, error) {
	p, err := problem.Load(path)
	if err != nil {
		return nil, nil, err
	}
	es, err := p.Engine(eigenspace.WithLogger(log.Logger))
	if err != nil {
		return nil, nil, err
	}
	log.Info().
		Str("problem", p.Name).
		Int("dimension", p.Dimension).
		Int("vectors", p.Vectors).
		Int("cosines", len(p.Cosines)).
		Msg("problem loaded")

	return p, es, nil
}
