// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/eigenspace/eigenspace"
	"github.com/katalvlaran/eigenspace/sqrtext"
)

// realization is the YAML rendering of a result.
type realization struct {
	Name      string     `yaml:"name,omitempty"`
	Dimension int        `yaml:"dimension"`
	Vectors   [][]string `yaml:"vectors"`
}

func realizeCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "realize <problem.yaml>",
		Short: "Realize every vector of a problem",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, es, err := loadEngine(args[0])
			if err != nil {
				return err
			}
			m, err := es.Vectors(p.Index())
			if err != nil {
				reportFailure(cmd.OutOrStdout(), err)
				return err
			}

			switch output {
			case "text":
				printRows(cmd.OutOrStdout(), m)
			case "yaml":
				out := realization{Name: p.Name, Dimension: m.Cols(), Vectors: rowsAsStrings(m)}
				data, err := yaml.Marshal(out)
				if err != nil {
					return fmt.Errorf("failed to encode result: %w", err)
				}
				_, _ = cmd.OutOrStdout().Write(data)
			default:
				return fmt.Errorf("unsupported --output %q (text|yaml)", output)
			}

			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format (text|yaml)")

	return cmd
}

// rowsAsStrings renders every coordinate in canonical text form.
func rowsAsStrings(m *eigenspace.Matrix[*sqrtext.Value[*big.Rat]]) [][]string {
	out := make([][]string, m.Rows())
	for i := range out {
		row := m.Row(i)
		out[i] = make([]string, len(row))
		for j, x := range row {
			out[i][j] = x.String()
		}
	}

	return out
}

func printRows(w io.Writer, m *eigenspace.Matrix[*sqrtext.Value[*big.Rat]]) {
	for i, row := range rowsAsStrings(m) {
		fmt.Fprintf(w, "v%d = [%s]\n", i, strings.Join(row, ", "))
	}
}

// reportFailure prints the VectorError diagnostic when err carries one and
// reports whether it did.
func reportFailure(w io.Writer, err error) bool {
	var ve *vectorError
	if !errors.As(err, &ve) {
		return false
	}
	fmt.Fprintf(w, "infeasible: %v\n", ve.Cause)
	if ve.Solving >= 0 {
		fmt.Fprintf(w, "  solving:  v%d\n", ve.Solving)
	}
	fmt.Fprintf(w, "  row:      %d\n", ve.Row)
	fmt.Fprintf(w, "  col:      %d\n", ve.Col)
	fmt.Fprintf(w, "  residual: %s\n", ve.Residual)
	fmt.Fprintf(w, "  vector:   %s\n", joinValues(ve.Vector))

	return true
}

// joinValues renders values as "[a, b, ...]".
func joinValues(vs []*sqrtext.Value[*big.Rat]) string {
	out := make([]string, len(vs))
	for k, x := range vs {
		out[k] = x.String()
	}

	return "[" + strings.Join(out, ", ") + "]"
}
