// Copyright (c) 2025 Querydash
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface for querydash.
// It implements one-shot queries, an interactive dashboard and configuration
// commands using the Cobra CLI framework, with pterm for terminal output.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	qerrors "querydash/cli/internal/errors"
	"querydash/cli/internal/config"
	"querydash/cli/internal/logging"
	"querydash/cli/internal/processor"
	"querydash/cli/internal/render"
	"querydash/cli/internal/session"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	showVersion     bool
	flagLatency     time.Duration
	flagFailureRate float64
	flagVerbose     bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:           "querydash",
	Short:         "Ask analytics questions and get charted answers in the terminal",
	Long:          `querydash turns natural-language analytics questions into charted results. Answers come from a built-in catalogue with simulated processing latency and occasional failures.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			printVersion(cmd)
			return nil
		}
		return cmd.Help()
	},
}

// Execute runs the CLI application.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var reported silentError
		if !errors.As(err, &reported) {
			fmt.Fprintln(os.Stderr, logging.PresentError("", err))
		}
		os.Exit(1)
	}
}

// silentError marks an error the command has already shown to the user.
type silentError struct{ err error }

func (e silentError) Error() string { return e.err.Error() }
func (e silentError) Unwrap() error { return e.err }

func silent(err error) error { return silentError{err: err} }

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show version information")
	rootCmd.PersistentFlags().DurationVar(&flagLatency, "latency", 0, "Simulated processing latency (overrides config)")
	rootCmd.PersistentFlags().Float64Var(&flagFailureRate, "failure-rate", 0, "Probability in [0,1] that a query fails (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
}

// app bundles the components a query command needs.
type app struct {
	cfg    config.Config
	logger *pterm.Logger
	proc   *processor.Processor
	store  *session.Store
	view   *render.Renderer
}

// loadConfig reads the config file, then applies environment and flag overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return cfg, qerrors.Wrap(qerrors.InvalidConfig, "invalid environment override", err)
	}
	flags := cmd.Flags()
	if flags.Changed("latency") {
		cfg.LatencyMS = int(flagLatency / time.Millisecond)
	}
	if flags.Changed("failure-rate") {
		cfg.FailureRate = flagFailureRate
	}
	if flags.Changed("verbose") && flagVerbose {
		cfg.LogLevel = "debug"
	}
	return cfg, cfg.Validate()
}

// newApp wires config, logging, processor, store and renderer together.
func newApp(cmd *cobra.Command, opts ...processor.Option) (*app, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	logger := logging.New(cfg.LogLevel, cmd.ErrOrStderr())

	opts = append([]processor.Option{processor.WithLogger(logger)}, opts...)
	proc := processor.New(processor.Config{
		Latency:     cfg.Latency(),
		FailureRate: cfg.FailureRate,
	}, opts...)

	view := render.New()
	view.Out = cmd.OutOrStdout()

	logger.Debug("configured", logger.Args(
		"latency", cfg.Latency().String(),
		"failure_rate", cfg.FailureRate,
		"log_level", cfg.LogLevel,
	))

	return &app{
		cfg:    cfg,
		logger: logger,
		proc:   proc,
		store:  session.NewStore(proc, session.WithStoreLogger(logger)),
		view:   view,
	}, nil
}
