// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/eigenspace/field"
	"github.com/katalvlaran/eigenspace/tables"
)

func generateCmd() *cobra.Command {
	var (
		n      int
		dim    int
		cosine string
		name   string
		out    string
	)
	cmd := &cobra.Command{
		Use:   "generate <family>",
		Short: "Write the problem file of a classical configuration",
		Long: `generate emits a problem file for one of the built-in families:
simplex, cross-polytope, hypercube, orthonormal (sized by --n),
equiangular (--n vectors at --cos), or a Platonic solid by name
(tetrahedron, cube, octahedron).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				family tables.Family
				err    error
			)
			if args[0] == "equiangular" {
				c, perr := field.ParseRat(cosine)
				if perr != nil {
					return fmt.Errorf("invalid --cos: %w", perr)
				}
				family = tables.Equiangular(n, c)
			} else if family, err = tables.Named(args[0], n); err != nil {
				return err
			}

			var opts []tables.Option
			if dim > 0 {
				opts = append(opts, tables.WithDimension(dim))
			}
			if name != "" {
				opts = append(opts, tables.WithName(name))
			}
			t, err := tables.Build(family, opts...)
			if err != nil {
				return err
			}
			data, err := t.YAML()
			if err != nil {
				return err
			}
			log.Info().Str("family", args[0]).Int("vectors", t.Vectors()).Int("cosines", len(t.Cosines)).Msg("table generated")

			if out == "" || out == "-" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err = os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("failed to write problem file: %w", err)
			}

			return nil
		},
	}
	cmd.Flags().IntVarP(&n, "n", "n", 3, "Family size (vectors, or dimension for cross-polytope/hypercube)")
	cmd.Flags().IntVar(&dim, "dim", 0, "Override the ambient dimension (0 keeps the natural one)")
	cmd.Flags().StringVar(&cosine, "cos", "1/2", "Pairwise cosine for the equiangular family")
	cmd.Flags().StringVar(&name, "name", "", "Problem name override")
	cmd.Flags().StringVarP(&out, "out", "f", "", "Output file (default stdout)")

	return cmd
}
