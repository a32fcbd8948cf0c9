// SPDX-License-Identifier: MIT

// Command eigenspace realizes cosine tables as exact unit-vector coordinates.
//
//	eigenspace realize testdata/equiangular.yaml
//	eigenspace vector testdata/triangle.yaml --rows 2 --targets 1,2
//	eigenspace check testdata/tetrahedron.yaml --prec 128
//	eigenspace generate hypercube -n 3 -f cube.yaml
//	eigenspace watch cube.yaml
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("eigenspace failed")
		stop()
		os.Exit(1)
	}
}
