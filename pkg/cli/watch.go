/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/xpansion-tools/xpcheck/pkg/defaults"
	"github.com/xpansion-tools/xpcheck/pkg/watch"
)

func watchCmd() *cli.Command {
	return &cli.Command{
		Name:                  "watch",
		EnableShellCompletion: true,
		Usage:                 "Check a study again each time its inputs change",
		Description: `Run the study check once, then again each time the candidates or
settings file changes, until interrupted. Bursts of changes are folded into
one check after --debounce of quiet.

A rewrite made by the check itself triggers one more check, which finds
nothing left to prune.

# Examples

  xpcheck watch --root ./my-study
  xpcheck watch --layout layout.toml -t table`,
		Flags: append(studyFlags(),
			&cli.DurationFlag{
				Name:  "debounce",
				Value: defaults.WatchDebounce,
				Usage: "Quiet period after the last change before checking again",
			},
			outputFlag(),
			formatFlag(),
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			lay, err := studyLayout(cmd)
			if err != nil {
				return err
			}

			check := func(ctx context.Context) error {
				rep, err := checkStudy(lay)
				if err != nil {
					return err
				}
				return writeReport(ctx, cmd, rep)
			}

			w, err := watch.New(lay.Files(), check, watch.WithDebounce(cmd.Duration("debounce")))
			if err != nil {
				return fmt.Errorf("failed to create watcher: %w", err)
			}
			if err := check(ctx); err != nil {
				return err
			}
			return w.Run(ctx)
		},
	}
}
