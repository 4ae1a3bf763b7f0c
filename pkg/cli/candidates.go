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

func candidatesCmd() *cli.Command {
	return &cli.Command{
		Name:                  "candidates",
		EnableShellCompletion: true,
		Usage:                 "Check a candidates file and prune candidates that cannot be built",
		Description: `Check the consistency of an investment candidates file.

Each section of the file describes one candidate. The check runs in order:

  1. every option is known and its value has the expected type and domain
  2. each candidate has a name without spaces and a link
  3. names are unique, and links are unique
  4. sizing uses either max-investment or unit-size with max-units
  5. candidates without a non-null capacity profile are removed
  6. has-link-profile flags agree with the profile files that exist

The first failing rule rejects the file and nothing is written. When
candidates were removed, the file is copied to <file>.bak and rewritten
without them.

Profile names are resolved against --capacity-dir, which defaults to the
"capa" directory next to the candidates file.

# Examples

Check a candidates file:
  xpcheck candidates --file study/user/expansion/candidates.ini

Use an explicit capacity directory and a JSON report:
  xpcheck candidates -f candidates.ini -c ./capa -t json

Fail the command when the file is rejected (useful for CI/CD):
  xpcheck candidates -f candidates.ini --fail-on-error`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Aliases:  []string{"f"},
				Required: true,
				Usage:    "Path to the candidates file",
				Sources:  cli.EnvVars("XPCHECK_CANDIDATES"),
			},
			&cli.StringFlag{
				Name:    "capacity-dir",
				Aliases: []string{"c"},
				Usage:   "Directory holding capacity profile files (default: capa next to the file)",
				Sources: cli.EnvVars("XPCHECK_CAPACITY_DIR"),
			},
			failOnErrorFlag(),
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			file := cmd.String("file")
			capa := cmd.String("capacity-dir")
			if capa == "" {
				capa = filepath.Join(filepath.Dir(file), defaults.CapacityDirName)
			}
			lay := &layout.Layout{Candidates: file, CapacityDir: capa}

			rep := report.New(report.KindCandidatesReport, version)
			if err := checkCandidatesFile(rep, lay); err != nil {
				return err
			}
			return writeReport(ctx, cmd, rep.Finish())
		},
	}
}
