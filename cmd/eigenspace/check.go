// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/eigenspace/matrix"
)

func checkCmd() *cobra.Command {
	var prec uint
	cmd := &cobra.Command{
		Use:   "check <problem.yaml>",
		Short: "Realize, verify exactly and print the approximate Gram matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, es, err := loadEngine(args[0])
			if err != nil {
				return err
			}
			idx := p.Index()
			m, err := es.Vectors(idx)
			if err != nil {
				reportFailure(cmd.OutOrStdout(), err)
				return err
			}
			if err = es.Verify(m, idx); err != nil {
				return err
			}

			approx, err := m.Approx(prec)
			if err != nil {
				return err
			}
			gram, err := matrix.Gram(approx)
			if err != nil {
				return err
			}
			table, err := matrix.NewDense(m.Rows(), m.Rows())
			if err != nil {
				return err
			}
			for i := 0; i < m.Rows(); i++ {
				_ = table.Set(i, i, 1)
				for j := 0; j < i; j++ {
					c, _ := es.Cosine(idx[i][j]) // in range after Verify
					x, _ := c.Approx(prec).Float64()
					_ = table.Set(i, j, x)
					_ = table.Set(j, i, x)
				}
			}
			diff, err := matrix.MaxAbsDiff(gram, table)
			if err != nil {
				return err
			}
			log.Info().Float64("max_abs_diff", diff).Uint("prec", prec).Msg("approximate gram computed")

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, "exact: ok")
			fmt.Fprintf(w, "gram (prec %d):\n%s", prec, gram)
			fmt.Fprintf(w, "max |gram - table| = %.3g\n", diff)

			return nil
		},
	}
	cmd.Flags().UintVar(&prec, "prec", 64, "Binary precision of the approximation")

	return cmd
}
