// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func vectorCmd() *cobra.Command {
	var (
		rows    int
		targets []int
	)
	cmd := &cobra.Command{
		Use:   "vector <problem.yaml>",
		Short: "Solve one vector against the first realized rows",
		Long: `vector realizes the first --rows vectors of the problem, then solves for
the coordinates of a further vector whose inner products with them are the
cosines listed by --targets (indices into the cosine table).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, es, err := loadEngine(args[0])
			if err != nil {
				return err
			}
			if rows <= 0 || rows > p.Vectors {
				return fmt.Errorf("--rows must be in [1,%d], got %d", p.Vectors, rows)
			}
			ref, err := es.Vectors(p.Index()[:rows])
			if err != nil {
				reportFailure(cmd.OutOrStdout(), err)
				return err
			}
			log.Debug().Int("rows", rows).Ints("targets", targets).Msg("solving single vector")

			v, err := es.Vector(ref, targets)
			if err != nil {
				reportFailure(cmd.OutOrStdout(), err)
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "v = %s\n", joinValues(v))

			return nil
		},
	}
	cmd.Flags().IntVar(&rows, "rows", 1, "Number of reference vectors to realize")
	cmd.Flags().IntSliceVar(&targets, "targets", nil, "Cosine indices, one per reference vector")

	return cmd
}
