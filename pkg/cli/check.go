/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/xpansion-tools/xpcheck/pkg/candidates"
	"github.com/xpansion-tools/xpcheck/pkg/errors"
	"github.com/xpansion-tools/xpcheck/pkg/layout"
	"github.com/xpansion-tools/xpcheck/pkg/report"
	"github.com/xpansion-tools/xpcheck/pkg/serializer"
	"github.com/xpansion-tools/xpcheck/pkg/settings"
)

const (
	checkCandidates = "candidates"
	checkSettings   = "settings"
)

// checkCandidatesFile validates and, when needed, rewrites the candidates
// file of lay. Rejections are recorded in rep; only failures of the tool
// itself are returned.
func checkCandidatesFile(rep *report.Report, lay *layout.Layout) error {
	slog.Info("validating candidates", "path", lay.Candidates, "capacityDir", lay.CapacityDir)

	eng := candidates.New(
		candidates.WithResolver(lay.CapacityFile),
		candidates.WithVersion(version),
	)
	res, err := eng.ValidateFile(lay.Candidates)
	if err != nil {
		if !errors.IsValidation(err) {
			return fmt.Errorf("failed to check candidates %q: %w", lay.Candidates, err)
		}
		slog.Warn("candidates rejected", "path", lay.Candidates, "code", errors.CodeOf(err))
		rep.Fail(checkCandidates, lay.Candidates, err)
		return nil
	}

	pruned := make([]report.Pruned, 0, len(res.Pruned))
	for _, p := range res.Pruned {
		pruned = append(pruned, report.Pruned{Section: p.Section, Name: p.Name})
	}
	rep.Pass(checkCandidates, lay.Candidates, pruned, res.Backup)
	return nil
}

// checkSettingsFile validates the settings file of lay.
func checkSettingsFile(rep *report.Report, lay *layout.Layout) error {
	slog.Info("validating settings", "path", lay.Settings, "weightsDir", lay.WeightsDir)

	eng := settings.New(
		settings.WithResolver(lay.WeightsFile),
		settings.WithVersion(version),
	)
	if _, err := eng.ValidateFile(lay.Settings); err != nil {
		if !errors.IsValidation(err) {
			return fmt.Errorf("failed to check settings %q: %w", lay.Settings, err)
		}
		slog.Warn("settings rejected", "path", lay.Settings, "code", errors.CodeOf(err))
		rep.Fail(checkSettings, lay.Settings, err)
		return nil
	}
	rep.Pass(checkSettings, lay.Settings, nil, "")
	return nil
}

// checkStudy runs the candidates check then the settings check, stopping at
// the first rejected input.
func checkStudy(lay *layout.Layout) (*report.Report, error) {
	rep := report.New(report.KindStudyReport, version)
	if err := checkCandidatesFile(rep, lay); err != nil {
		return nil, err
	}
	if !rep.Passed() {
		return rep.Finish(), nil
	}
	if err := checkSettingsFile(rep, lay); err != nil {
		return nil, err
	}
	return rep.Finish(), nil
}

// writeReport serializes rep to the output selected on cmd and applies
// --fail-on-error.
func writeReport(ctx context.Context, cmd *cli.Command, rep *report.Report) error {
	outFormat, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	ser, err := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
	if err != nil {
		return fmt.Errorf("failed to open report output: %w", err)
	}
	defer func() {
		if err := ser.Close(); err != nil {
			slog.Warn("failed to close serializer", "error", err)
		}
	}()

	if err := ser.Serialize(ctx, rep); err != nil {
		return fmt.Errorf("failed to serialize report: %w", err)
	}

	slog.Info("check completed",
		"kind", rep.Kind,
		"runId", rep.RunID,
		"status", rep.Status,
		"checks", len(rep.Checks),
		"duration", rep.Duration)

	if cmd.Bool("fail-on-error") && !rep.Passed() {
		return failure(rep)
	}
	return nil
}

func failure(rep *report.Report) error {
	for _, c := range rep.Checks {
		if c.Status == report.StatusFail && c.Error != nil {
			return fmt.Errorf("%s rejected: %s: %s", c.Name, c.Error.Code, c.Error.Message)
		}
	}
	return fmt.Errorf("validation failed")
}

// studyLayout resolves the layout selected by --root or --layout.
func studyLayout(cmd *cli.Command) (*layout.Layout, error) {
	root, file := cmd.String("root"), cmd.String("layout")
	switch {
	case root != "" && file != "":
		return nil, fmt.Errorf("--root and --layout are mutually exclusive")
	case file != "":
		lay, err := layout.Load(file)
		if err != nil {
			return nil, fmt.Errorf("failed to load layout: %w", err)
		}
		return lay, nil
	case root != "":
		return layout.FromStudy(root), nil
	default:
		return nil, fmt.Errorf("one of --root or --layout is required")
	}
}
