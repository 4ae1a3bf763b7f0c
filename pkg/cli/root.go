/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v3"

	"github.com/xpansion-tools/xpcheck/pkg/logging"
)

const (
	name           = "xpcheck"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Usage:                 "xpcheck - expansion input checker",
		Version:               fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		EnableShellCompletion: true,
		Description: `Checks the inputs of an investment study before it is solved:

candidates - investment candidates file, pruned and rewritten when needed
settings   - expansion settings file
study      - both inputs of a study, located from its directory or a layout file
watch      - re-checks a study each time its inputs change`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "Log level (debug, info, warn, error)",
				Sources: cli.EnvVars(logLevelEnv),
			},
			&cli.StringSliceFlag{
				Name:  "env-file",
				Usage: "Load environment variables from dotenv files; the process environment takes precedence",
			},
			&cli.StringFlag{
				Name:    "metrics-file",
				Usage:   "Write Prometheus metrics in text format to this file when the command ends",
				Sources: cli.EnvVars("XPCHECK_METRICS_FILE"),
			},
		},
		Before: before,
		After:  after,
		Commands: []*cli.Command{
			candidatesCmd(),
			settingsCmd(),
			studyCmd(),
			watchCmd(),
		},
	}
}

const logLevelEnv = "XPCHECK_LOG_LEVEL"

// before loads env files and configures slog once flags are parsed so that
// overrides like --log-level take effect before any command executes.
func before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if files := cmd.StringSlice("env-file"); len(files) > 0 {
		if err := godotenv.Load(files...); err != nil {
			return ctx, fmt.Errorf("failed to load env files: %w", err)
		}
	}

	logLevel := cmd.String("log-level")
	if !cmd.IsSet("log-level") {
		// env files are loaded after flag parsing
		if v := os.Getenv(logLevelEnv); v != "" {
			logLevel = v
		}
	}
	initLogger(logLevel)
	return ctx, nil
}

func after(_ context.Context, cmd *cli.Command) error {
	path := cmd.String("metrics-file")
	if path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		return fmt.Errorf("failed to write metrics to %q: %w", path, err)
	}
	slog.Debug("metrics written", "path", path)
	return nil
}

// Execute runs the root command with the process arguments.
// This is called by main.main().
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM for graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, shutting down gracefully...")
		cancel()
	}()

	if err := newRootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initLogger(logLevel string) {
	logging.SetDefaultStructuredLoggerWithLevel(name, version, logLevel)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
		"logLevel", logLevel)
}
