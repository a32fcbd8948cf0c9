// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch <problem.yaml>",
		Short: "Re-realize a problem every time its file is written",
		Long: `watch realizes the problem once, then again after every write to the file,
until interrupted. Failures are printed and watching continues.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("failed to resolve %s: %w", args[0], err)
			}
			w, err := fsnotify.NewWatcher()
			if err != nil {
				return fmt.Errorf("failed to create watcher: %w", err)
			}
			defer w.Close()

			// editors often replace the file, so watch its directory
			if err = w.Add(filepath.Dir(path)); err != nil {
				return fmt.Errorf("failed to watch %s: %w", filepath.Dir(path), err)
			}
			out := cmd.OutOrStdout()
			realizeOnce(out, path)

			ctx := cmd.Context()
			for {
				select {
				case <-ctx.Done():
					return nil
				case ev, ok := <-w.Events:
					if !ok {
						return nil
					}
					if filepath.Clean(ev.Name) != path || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
						continue
					}
					log.Debug().Str("file", ev.Name).Str("op", ev.Op.String()).Msg("problem changed")
					realizeOnce(out, path)
				case err, ok := <-w.Errors:
					if !ok {
						return nil
					}
					log.Warn().Err(err).Msg("watch error")
				}
			}
		},
	}
}

// realizeOnce realizes path and prints the rows or the failure.
func realizeOnce(out io.Writer, path string) {
	fmt.Fprintf(out, "# %s\n", filepath.Base(path))
	p, es, err := loadEngine(path)
	if err != nil {
		fmt.Fprintf(out, "error: %v\n", err)
		return
	}
	m, err := es.Vectors(p.Index())
	if err != nil {
		if !reportFailure(out, err) {
			fmt.Fprintf(out, "error: %v\n", err)
		}
		return
	}
	printRows(out, m)
}
