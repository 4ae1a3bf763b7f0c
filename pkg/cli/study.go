/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"

	"github.com/urfave/cli/v3"
)

func studyCmd() *cli.Command {
	return &cli.Command{
		Name:                  "study",
		EnableShellCompletion: true,
		Usage:                 "Check the candidates and settings files of a study",
		Description: `Check every expansion input of a study: the candidates file first, then
the settings file. The run stops at the first rejected input.

Inputs are located either from the study directory (--root), using
user/expansion/candidates.ini, user/expansion/settings.ini and
user/expansion/capa, or from a layout file (--layout):

  candidates: inputs/candidates.ini
  settings: inputs/settings.ini
  capacityDir: inputs/capa
  weightsDir: inputs/weights

Relative paths in a layout file are resolved against its directory.

# Examples

Check a study:
  xpcheck study --root ./my-study

Check inputs described by a layout file, writing a report:
  xpcheck study --layout layout.yaml -o report.json`,
		Flags: append(studyFlags(),
			failOnErrorFlag(),
			outputFlag(),
			formatFlag(),
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			lay, err := studyLayout(cmd)
			if err != nil {
				return err
			}
			rep, err := checkStudy(lay)
			if err != nil {
				return err
			}
			return writeReport(ctx, cmd, rep)
		},
	}
}
