/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/xpansion-tools/xpcheck/pkg/defaults"
	"github.com/xpansion-tools/xpcheck/pkg/layout"
	"github.com/xpansion-tools/xpcheck/pkg/report"
)

func settingsCmd() *cli.Command {
	return &cli.Command{
		Name:                  "settings",
		EnableShellCompletion: true,
		Usage:                 "Check a settings file",
		Description: `Check the options of an expansion settings file.

Every option must be known and hold a value of the expected type and
domain. A yearly_weights file, when named, is checked against --weights-dir
and cannot be combined with cut_type = average. The settings file is never
modified.

# Examples

Check a settings file:
  xpcheck settings --file study/user/expansion/settings.ini

Use an explicit weights directory:
  xpcheck settings -f settings.ini -w ./weights`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Aliases:  []string{"f"},
				Required: true,
				Usage:    "Path to the settings file",
				Sources:  cli.EnvVars("XPCHECK_SETTINGS"),
			},
			&cli.StringFlag{
				Name:    "weights-dir",
				Aliases: []string{"w"},
				Usage:   "Directory holding yearly weights files (default: capa next to the file)",
				Sources: cli.EnvVars("XPCHECK_WEIGHTS_DIR"),
			},
			failOnErrorFlag(),
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			file := cmd.String("file")
			weights := cmd.String("weights-dir")
			if weights == "" {
				weights = filepath.Join(filepath.Dir(file), defaults.WeightsDirName)
			}
			lay := &layout.Layout{Settings: file, WeightsDir: weights}

			rep := report.New(report.KindSettingsReport, version)
			if err := checkSettingsFile(rep, lay); err != nil {
				return err
			}
			return writeReport(ctx, cmd, rep.Finish())
		},
	}
}
