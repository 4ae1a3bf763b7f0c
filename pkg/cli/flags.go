/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/xpansion-tools/xpcheck/pkg/serializer"
)

// Flags are built per command since urfave flags keep their parsed value.

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Path to the report file (default: stdout)",
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatYAML),
		Usage: fmt.Sprintf("Report format (%s). When unset and --output has a known extension, the extension decides",
			strings.Join(serializer.SupportedFormats(), ", ")),
	}
}

func failOnErrorFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  "fail-on-error",
		Usage: "Exit with non-zero status when an input is rejected",
	}
}

func studyFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "root",
			Aliases: []string{"r"},
			Usage:   "Study directory; inputs are looked up in their default locations under it",
			Sources: cli.EnvVars("XPCHECK_STUDY"),
		},
		&cli.StringFlag{
			Name:    "layout",
			Aliases: []string{"l"},
			Usage:   "Layout file (YAML or TOML) naming the input files and directories",
			Sources: cli.EnvVars("XPCHECK_LAYOUT"),
		},
	}
}

// parseOutputFormat returns the report format selected on cmd.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	value := cmd.String("format")
	if !cmd.IsSet("format") && cmd.String("output") != "" {
		value = string(serializer.FormatFromPath(cmd.String("output")))
	}
	format := serializer.Format(value)
	if format.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q", value)
	}
	return format, nil
}
